package officeparser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// OpenDocument (.odt, .odp, .ods) packaging: the whole document body lives in
// content.xml, embedded objects (charts and the like) carry their own
// "Object N/content.xml" part. Body text sits under text:p and text:h
// elements, with arbitrary formatting markup nested inside; presentation
// speaker notes sit under a presentation:notes container.
var (
	odfMainPattern   = regexp.MustCompile(`^content\.xml$`)
	odfObjectPattern = regexp.MustCompile(`^Object \d+/content\.xml$`)
)

const (
	odfMainEntry = "content.xml"
	odfNotesTag  = "presentation:notes"
)

func isTextHolder(el *etree.Element) bool {
	tag := el.FullTag()
	return tag == "text:p" || tag == "text:h"
}

// parseOpenOffice extracts text from an OpenDocument archive. content.xml
// must exist; object parts are processed after it regardless of archive
// order. Notes handling: with IgnoreNotes the notes subtrees are traversed
// but contribute nothing; with PutNotesAtLast their fragments are collected
// in traversal order and appended once after all entries; with neither set
// they stay inline in document order.
func parseOpenOffice(reader io.ReaderAt, size int64, cfg *Config) (string, error) {
	entries, err := selectEntries(reader, size, odfMainPattern, odfObjectPattern)
	if err != nil {
		return "", err
	}

	ordered := make([]rawEntry, 0, len(entries))
	found := false
	for _, entry := range entries {
		if entry.name == odfMainEntry {
			ordered = append([]rawEntry{entry}, ordered...)
			found = true
			continue
		}
		ordered = append(ordered, entry)
	}
	if !found {
		return "", fmt.Errorf("required entry %s missing", odfMainEntry)
	}

	var fragments []string
	var notesBucket []string
	for _, entry := range ordered {
		tree, err := parseMarkup(entry.content)
		if err != nil {
			return "", fmt.Errorf("entry %s: %w", entry.name, err)
		}
		entryFragments := openDocumentFragments(tree.Root(), cfg, &notesBucket)
		fragments = append(fragments, joinNonEmpty(entryFragments, cfg.delimiter()))
	}

	if !cfg.IgnoreNotes && cfg.PutNotesAtLast {
		fragments = append(fragments, notesBucket...)
	}
	return joinNonEmpty(fragments, cfg.delimiter()), nil
}

// openDocumentFragments walks one content tree and returns the main-sequence
// fragments, one per top-level text holder. Holders living under a notes
// container are routed to the bucket (kept for later) or discarded outright
// when notes are ignored; traversal always visits them either way.
func openDocumentFragments(root *etree.Element, cfg *Config, notesBucket *[]string) []string {
	var fragments []string
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if isTextHolder(el) {
			// Nested holders are collected inside holderText; descending
			// further here would emit them twice.
			text := holderText(el, cfg.delimiter())
			if text == "" {
				return
			}
			if hasAncestorTag(el, odfNotesTag) && (cfg.IgnoreNotes || cfg.PutNotesAtLast) {
				if !cfg.IgnoreNotes {
					*notesBucket = append(*notesBucket, text)
				}
				return
			}
			fragments = append(fragments, text)
			return
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)
	return fragments
}

// holderText collects all qualifying leaf text under one top-level holder
// into a single fragment. Leaf text counts only when its immediate parent is
// text-namespace markup (the holder itself, spans, links and other inline
// formatting). Text contributed by a distinct nested holder is separated
// from the preceding content by the delimiter, never before the first.
func holderText(holder *etree.Element, delimiter string) string {
	var contributions []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			contributions = append(contributions, current.String())
			current.Reset()
		}
	}

	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, token := range el.Child {
			switch t := token.(type) {
			case *etree.CharData:
				if strings.HasPrefix(el.FullTag(), "text:") {
					current.WriteString(t.Data)
				}
			case *etree.Element:
				if isTextHolder(t) {
					flush()
					walk(t)
					flush()
					continue
				}
				walk(t)
			}
		}
	}
	walk(holder)
	flush()
	return strings.Join(contributions, delimiter)
}
