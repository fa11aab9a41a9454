package officeparser

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
)

// rawEntry is one archive member that matched a selection pattern: its
// archive-relative name plus the fully read content.
type rawEntry struct {
	name    string
	content []byte
}

// selectEntries opens a zip archive from reader and returns the members whose
// names match any of the patterns, read in full, preserving archive
// enumeration order (not pattern order).
func selectEntries(reader io.ReaderAt, size int64, patterns ...*regexp.Regexp) ([]rawEntry, error) {
	zr, err := zip.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	var entries []rawEntry
	for _, f := range zr.File {
		if !matchesAny(f.Name, patterns) {
			continue
		}
		content, err := readMember(f)
		if err != nil {
			return nil, fmt.Errorf("read archive member %s: %w", f.Name, err)
		}
		entries = append(entries, rawEntry{name: f.Name, content: content})
	}
	return entries, nil
}

func matchesAny(name string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
