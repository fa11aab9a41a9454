package officeparser

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Excel (.xlsx) packaging: cell values live in per-sheet parts under
// xl/worksheets. A cell (c element) carrying a value holds it in a v child;
// when the cell's type attribute is "s" the value is an index into the
// workbook-wide shared-string table (xl/sharedStrings.xml, one t element per
// string). Shape text lives in drawing parts (drawingml paragraphs/runs) and
// chart labels in chart parts (one c:v element per label).
var (
	xlsxSheetPattern   = regexp.MustCompile(`^xl/worksheets/sheet\d+\.xml$`)
	xlsxDrawingPattern = regexp.MustCompile(`^xl/drawings/drawing\d+\.xml$`)
	xlsxChartPattern   = regexp.MustCompile(`^xl/charts/chart\d+\.xml$`)
	xlsxStringsPattern = regexp.MustCompile(`^xl/sharedStrings\.xml$`)
)

// parseExcel extracts text from a .xlsx archive. At least one worksheet must
// exist. The shared-string table is resolved before any sheet is assembled;
// output order is all worksheets, then all drawings, then all charts, each
// group in archive order.
func parseExcel(reader io.ReaderAt, size int64, cfg *Config) (string, error) {
	entries, err := selectEntries(reader, size,
		xlsxSheetPattern, xlsxDrawingPattern, xlsxChartPattern, xlsxStringsPattern)
	if err != nil {
		return "", err
	}

	var sheets, drawings, charts []rawEntry
	var sharedStringsEntry *rawEntry
	for i, entry := range entries {
		switch {
		case strings.HasPrefix(entry.name, "xl/worksheets/"):
			sheets = append(sheets, entry)
		case strings.HasPrefix(entry.name, "xl/drawings/"):
			drawings = append(drawings, entry)
		case strings.HasPrefix(entry.name, "xl/charts/"):
			charts = append(charts, entry)
		default:
			sharedStringsEntry = &entries[i]
		}
	}
	if len(sheets) == 0 {
		return "", fmt.Errorf("no worksheet entry matches %s", xlsxSheetPattern)
	}

	sharedStrings, err := parseSharedStrings(sharedStringsEntry)
	if err != nil {
		return "", err
	}

	var fragments []string
	for _, entry := range sheets {
		tree, err := parseMarkup(entry.content)
		if err != nil {
			return "", fmt.Errorf("entry %s: %w", entry.name, err)
		}
		text, err := sheetText(tree.Root(), sharedStrings, cfg.delimiter())
		if err != nil {
			return "", fmt.Errorf("entry %s: %w", entry.name, err)
		}
		fragments = append(fragments, text)
	}
	for _, entry := range drawings {
		tree, err := parseMarkup(entry.content)
		if err != nil {
			return "", fmt.Errorf("entry %s: %w", entry.name, err)
		}
		fragments = append(fragments, paragraphText(tree.Root(), "a:p", "a:t", cfg.delimiter()))
	}
	for _, entry := range charts {
		tree, err := parseMarkup(entry.content)
		if err != nil {
			return "", fmt.Errorf("entry %s: %w", entry.name, err)
		}
		var labels []string
		for _, v := range elementsByTag(tree.Root(), "c:v") {
			labels = append(labels, v.Text())
		}
		fragments = append(fragments, joinNonEmpty(labels, cfg.delimiter()))
	}
	return joinNonEmpty(fragments, cfg.delimiter()), nil
}

// parseSharedStrings builds the index-ordered shared-string table. A missing
// entry yields an empty table: workbooks without string cells simply have no
// xl/sharedStrings.xml part.
func parseSharedStrings(entry *rawEntry) ([]string, error) {
	if entry == nil {
		return nil, nil
	}
	tree, err := parseMarkup(entry.content)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", entry.name, err)
	}
	var table []string
	for _, t := range elementsByTag(tree.Root(), "t") {
		table = append(table, t.Text())
	}
	return table, nil
}

// sheetText emits one fragment per value-carrying cell, in document order.
// Shared-string cells resolve through the table; an index that does not
// parse or falls outside the table is a corruption signal, never silent
// garbage.
func sheetText(root *etree.Element, sharedStrings []string, delimiter string) (string, error) {
	var fragments []string
	for _, cell := range elementsByTag(root, "c") {
		value := firstElementByTag(cell, "v")
		if value == nil {
			continue
		}
		if cell.SelectAttrValue("t", "") == "s" {
			index, err := strconv.Atoi(strings.TrimSpace(value.Text()))
			if err != nil {
				return "", fmt.Errorf("shared string index %q: %w", value.Text(), err)
			}
			if index < 0 || index >= len(sharedStrings) {
				return "", fmt.Errorf("shared string index %d out of range (table size %d)", index, len(sharedStrings))
			}
			fragments = append(fragments, sharedStrings[index])
			continue
		}
		fragments = append(fragments, value.Text())
	}
	return joinNonEmpty(fragments, delimiter), nil
}
