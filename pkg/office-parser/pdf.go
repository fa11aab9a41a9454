package officeparser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// parsePDF extracts plain text from a PDF byte stream. The structural work is
// delegated to ledongthuc/pdf; this layer only applies the delimiter
// substitution afterward. That library panics on some malformed inputs, so
// the call is fenced and every failure surfaces as a plain error for the
// dispatcher to normalize.
func parsePDF(data []byte, cfg *Config) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf open: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}

	text = buf.String()
	if d := cfg.delimiter(); d != "\n" {
		text = strings.ReplaceAll(text, "\n", d)
	}
	return text, nil
}
