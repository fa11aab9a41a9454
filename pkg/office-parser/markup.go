package officeparser

import (
	"errors"

	"github.com/beevik/etree"
)

// errMarkupInvalid reports markup that failed to parse into a tree. Format
// extractors map it to CorruptedError at their boundary.
var errMarkupInvalid = errors.New("invalid markup")

// parseMarkup parses one archive entry's content into a navigable element
// tree. OOXML and ODF prefixes (w:, a:, text:, ...) are kept verbatim in the
// element tags; nothing resolves namespace URIs, matching is on the qualified
// name exactly as written in the entry.
func parseMarkup(content []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, errMarkupInvalid
	}
	if doc.Root() == nil {
		return nil, errMarkupInvalid
	}
	return doc, nil
}

// elementsByTag returns every descendant of root whose qualified tag equals
// tag, in document order (depth-first).
func elementsByTag(root *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.FullTag() == tag {
			out = append(out, el)
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)
	return out
}

// firstElementByTag returns the first descendant with the given qualified
// tag, or nil.
func firstElementByTag(root *etree.Element, tag string) *etree.Element {
	for _, child := range root.ChildElements() {
		if child.FullTag() == tag {
			return child
		}
		if found := firstElementByTag(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// hasAncestorTag reports whether el or any of its ancestors carries one of
// the given qualified tags. Iterative parent walk, bounded by tree depth.
func hasAncestorTag(el *etree.Element, tags ...string) bool {
	for node := el; node != nil; node = node.Parent() {
		for _, tag := range tags {
			if node.FullTag() == tag {
				return true
			}
		}
	}
	return false
}
