package officeparser

import (
	"fmt"
	"io"
	"regexp"

	"github.com/samber/lo"
)

// Word (.docx) packaging: body text lives in word/document.xml, with optional
// footnote and endnote parts alongside. All text runs are w:t elements and
// runs belonging to one paragraph are grouped under a w:p element.
var wordEntryPattern = regexp.MustCompile(`^word/(document|footnotes|endnotes)\.xml$`)

const wordMainEntry = "word/document.xml"

// parseWord extracts text from a .docx archive. word/document.xml must exist;
// footnotes and endnotes are included when present, after the body, in
// archive order.
func parseWord(reader io.ReaderAt, size int64, cfg *Config) (string, error) {
	entries, err := selectEntries(reader, size, wordEntryPattern)
	if err != nil {
		return "", err
	}
	if !lo.SomeBy(entries, func(e rawEntry) bool { return e.name == wordMainEntry }) {
		return "", fmt.Errorf("required entry %s missing", wordMainEntry)
	}

	fragments := make([]string, 0, len(entries))
	for _, entry := range entries {
		tree, err := parseMarkup(entry.content)
		if err != nil {
			return "", fmt.Errorf("entry %s: %w", entry.name, err)
		}
		fragments = append(fragments, paragraphText(tree.Root(), "w:p", "w:t", cfg.delimiter()))
	}
	return joinNonEmpty(fragments, cfg.delimiter()), nil
}
