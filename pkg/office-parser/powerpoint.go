package officeparser

import (
	"fmt"
	"io"
	"regexp"

	"github.com/samber/lo"
)

// PowerPoint (.pptx) packaging: one XML part per slide under ppt/slides and,
// when speaker notes exist, a matching part under ppt/notesSlides. Slide
// text uses the drawingml paragraph/run shape (a:p grouping a:t runs).
var (
	pptSlidePattern = regexp.MustCompile(`^ppt/slides/slide\d+\.xml$`)
	pptNotesPattern = regexp.MustCompile(`^ppt/notesSlides/notesSlide\d+\.xml$`)
)

// parsePowerPoint extracts text from a .pptx archive. At least one slide
// entry must exist. With IgnoreNotes the notes entries are never selected or
// read; with PutNotesAtLast the selected entries are reordered so every
// slide precedes every notes slide, both groups keeping archive order.
func parsePowerPoint(reader io.ReaderAt, size int64, cfg *Config) (string, error) {
	patterns := []*regexp.Regexp{pptSlidePattern}
	if !cfg.IgnoreNotes {
		patterns = append(patterns, pptNotesPattern)
	}

	entries, err := selectEntries(reader, size, patterns...)
	if err != nil {
		return "", err
	}
	if !lo.SomeBy(entries, func(e rawEntry) bool { return pptSlidePattern.MatchString(e.name) }) {
		return "", fmt.Errorf("no slide entry matches %s", pptSlidePattern)
	}

	if !cfg.IgnoreNotes && cfg.PutNotesAtLast {
		slides := lo.Filter(entries, func(e rawEntry, _ int) bool { return !pptNotesPattern.MatchString(e.name) })
		notes := lo.Filter(entries, func(e rawEntry, _ int) bool { return pptNotesPattern.MatchString(e.name) })
		entries = append(slides, notes...)
	}

	fragments := make([]string, 0, len(entries))
	for _, entry := range entries {
		tree, err := parseMarkup(entry.content)
		if err != nil {
			return "", fmt.Errorf("entry %s: %w", entry.name, err)
		}
		fragments = append(fragments, paragraphText(tree.Root(), "a:p", "a:t", cfg.delimiter()))
	}
	return joinNonEmpty(fragments, cfg.delimiter()), nil
}
