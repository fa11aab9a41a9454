package officeparser

import (
	"strings"

	"github.com/beevik/etree"
)

// joinNonEmpty joins fragments with the delimiter, dropping empty ones so no
// boundary ever produces a stray delimiter.
func joinNonEmpty(fragments []string, delimiter string) string {
	nonEmpty := fragments[:0:0]
	for _, f := range fragments {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, delimiter)
}

// paragraphText assembles the text of every paragraph-tagged element under
// root: the values of its run-tagged descendants are concatenated into one
// fragment per paragraph, paragraphs with no runs contribute nothing, and the
// fragments join with the delimiter in document order. This is the shared
// paragraph/run shape of Word bodies, slides and spreadsheet drawings.
func paragraphText(root *etree.Element, paragraphTag, runTag, delimiter string) string {
	paragraphs := elementsByTag(root, paragraphTag)
	fragments := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		var sb strings.Builder
		for _, run := range elementsByTag(p, runTag) {
			sb.WriteString(run.Text())
		}
		fragments = append(fragments, sb.String())
	}
	return joinNonEmpty(fragments, delimiter)
}
