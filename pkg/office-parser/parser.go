// Package officeparser extracts plain text from office documents.
//
// Supported formats:
//   - .docx — Word (archive/zip → word/document.xml + notes parts)
//   - .pptx — PowerPoint (archive/zip → ppt/slides, ppt/notesSlides)
//   - .xlsx — Excel (archive/zip → worksheets, shared strings, drawings, charts)
//   - .odt / .odp / .ods — OpenDocument suite (archive/zip → content.xml)
//   - .pdf  — PDF byte streams (delegated to ledongthuc/pdf)
//
// Each call produces exactly one flattened text string per document, with
// fragments joined by the configured delimiter.
//
// Usage:
//
//	parser := officeparser.NewOfficeParser(officeparser.Config{})
//	text, err := parser.Extract("report.docx")
package officeparser

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// OfficeParser extracts text from office files. Each extraction call is
// independent and shares no state, so one parser may be used from multiple
// goroutines.
type OfficeParser struct {
	cfg Config
}

// NewOfficeParser creates a parser with the given configuration.
func NewOfficeParser(cfg Config) *OfficeParser {
	cfg.defaults()
	return &OfficeParser{cfg: cfg}
}

var supportedExtensions = map[string]bool{
	"docx": true, "pptx": true, "xlsx": true,
	"odt": true, "odp": true, "ods": true,
	"pdf": true,
}

// Extract processes the given source, either a file path or a byte slice,
// and returns the extracted text.
func (p *OfficeParser) Extract(source interface{}) (string, error) {
	switch s := source.(type) {
	case []byte:
		return p.ExtractBytes(s)
	case string:
		return p.ExtractFile(s)
	default:
		return "", errors.New("officeparser: source must be a file path string or a byte slice")
	}
}

// ExtractFile extracts text from the file at path. The format is resolved
// from the lowercased filename extension; nothing is read from disk before
// the extension is known to be supported.
func (p *OfficeParser) ExtractFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", &NotFoundError{Path: path}
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !supportedExtensions[ext] {
		return "", &UnsupportedExtensionError{Extension: ext}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", corrupted(path, err)
	}
	return p.dispatch(ext, path, data)
}

// ExtractBytes extracts text from an in-memory document. The format is
// resolved from magic bytes; unrecognized content fails with
// ErrImproperInput.
func (p *OfficeParser) ExtractBytes(data []byte) (string, error) {
	ext := extensionFromBuffer(data)
	if ext == "" {
		return "", ErrImproperInput
	}
	if !supportedExtensions[ext] {
		return "", &UnsupportedExtensionError{Extension: ext}
	}
	return p.dispatch(ext, "buffer."+ext, data)
}

// dispatch maps a resolved extension to its format extractor and normalizes
// every extractor failure to CorruptedError tagged with the offending path.
func (p *OfficeParser) dispatch(ext, path string, data []byte) (string, error) {
	p.cfg.Logger.Debug("extracting document", "path", path, "format", ext)

	reader := bytes.NewReader(data)
	size := int64(len(data))

	var text string
	var err error
	switch ext {
	case "docx":
		text, err = parseWord(reader, size, &p.cfg)
	case "pptx":
		text, err = parsePowerPoint(reader, size, &p.cfg)
	case "xlsx":
		text, err = parseExcel(reader, size, &p.cfg)
	case "odt", "odp", "ods":
		text, err = parseOpenOffice(reader, size, &p.cfg)
	case "pdf":
		text, err = parsePDF(data, &p.cfg)
	default:
		return "", &UnsupportedExtensionError{Extension: ext}
	}
	if err != nil {
		return "", corrupted(path, err)
	}
	return text, nil
}

// ParseOffice is a one-shot convenience wrapper around NewOfficeParser and
// Extract.
func ParseOffice(source interface{}, cfg Config) (string, error) {
	return NewOfficeParser(cfg).Extract(source)
}

// SupportedExtensions returns the recognized file extensions.
func SupportedExtensions() []string {
	return []string{"docx", "pptx", "xlsx", "odt", "odp", "ods", "pdf"}
}
