package officeparser

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

type zipEntry struct {
	name    string
	content string
}

// buildZip assembles an in-memory archive whose member order follows the
// entries slice, so tests control archive enumeration order exactly.
func buildZip(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildODF assembles an OpenDocument archive: the uncompressed mimetype
// member first (stored, so the mime string sits at byte offset 38 where
// sniffers expect it), then content.xml and any extra members.
func buildODF(t *testing.T, mime, contentXML string, extra ...zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.CreateRaw(&zip.FileHeader{
		Name:               "mimetype",
		Method:             zip.Store,
		CRC32:              crc32.ChecksumIEEE([]byte(mime)),
		CompressedSize64:   uint64(len(mime)),
		UncompressedSize64: uint64(len(mime)),
	})
	require.NoError(t, err)
	_, err = w.Write([]byte(mime))
	require.NoError(t, err)

	rest := append([]zipEntry{{"content.xml", contentXML}}, extra...)
	for _, e := range rest {
		cw, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = cw.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// writeTemp drops a fixture into a per-test directory and returns its path.
func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// buildPDF writes a minimal one-page PDF with an uncompressed content stream
// so the text is recoverable without any font tables. Offsets are tracked
// while writing so the cross-reference table is exact.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	offsets := make([]int, 6)
	add := func(n int, body string) {
		offsets[n] = buf.Len()
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")
	add(1, "1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	add(2, "2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	add(3, "3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
		"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n")
	add(4, "4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")
	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	add(5, fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream))

	xref := buf.Len()
	buf.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return buf.Bytes()
}

// buildOLE assembles a minimal OLE2 compound file (the legacy doc/xls/ppt
// container): header sector, one FAT sector, one directory sector holding the
// root entry plus a single empty stream with the given name.
func buildOLE(t *testing.T, streamName string) []byte {
	t.Helper()
	buf := make([]byte, 512*3)
	le := binary.LittleEndian

	copy(buf, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	le.PutUint16(buf[24:], 0x003E)     // minor version
	le.PutUint16(buf[26:], 0x0003)     // major version 3: 512-byte sectors
	le.PutUint16(buf[28:], 0xFFFE)     // little-endian byte order mark
	le.PutUint16(buf[30:], 0x0009)     // sector shift
	le.PutUint16(buf[32:], 0x0006)     // mini sector shift
	le.PutUint32(buf[44:], 1)          // one FAT sector
	le.PutUint32(buf[48:], 1)          // directory chain starts at sector 1
	le.PutUint32(buf[56:], 4096)       // mini stream cutoff
	le.PutUint32(buf[60:], 0xFFFFFFFE) // no mini FAT
	le.PutUint32(buf[68:], 0xFFFFFFFE) // no DIFAT chain
	le.PutUint32(buf[76:], 0)          // DIFAT[0]: FAT lives in sector 0
	for i := 80; i < 512; i += 4 {
		le.PutUint32(buf[i:], 0xFFFFFFFF)
	}

	fat := buf[512:1024]
	le.PutUint32(fat[0:], 0xFFFFFFFD) // sector 0 is the FAT itself
	le.PutUint32(fat[4:], 0xFFFFFFFE) // sector 1 ends the directory chain
	for i := 8; i < 512; i += 4 {
		le.PutUint32(fat[i:], 0xFFFFFFFF)
	}

	dir := buf[1024:]
	writeOLEDirEntry(dir[0:128], "Root Entry", 5, 1)
	writeOLEDirEntry(dir[128:256], streamName, 2, 0xFFFFFFFF)
	return buf
}

func writeOLEDirEntry(b []byte, name string, objectType byte, child uint32) {
	le := binary.LittleEndian
	encoded := utf16.Encode([]rune(name))
	for i, c := range encoded {
		le.PutUint16(b[i*2:], c)
	}
	le.PutUint16(b[64:], uint16((len(encoded)+1)*2))
	b[66] = objectType
	b[67] = 1                          // black node
	le.PutUint32(b[68:], 0xFFFFFFFF)   // no left sibling
	le.PutUint32(b[72:], 0xFFFFFFFF)   // no right sibling
	le.PutUint32(b[76:], child)
	le.PutUint32(b[116:], 0xFFFFFFFE) // empty stream, no start sector
}

// Shared XML fixtures.

const docxHelloWorld = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>World</w:t></w:r></w:p>
<w:p><w:r></w:r></w:p>
</w:body>
</w:document>`

func pptxSlide(texts ...string) string {
	var runs string
	for _, tx := range texts {
		runs += fmt.Sprintf("<a:p><a:r><a:t>%s</a:t></a:r></a:p>", tx)
	}
	return `<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<p:cSld><p:spTree><p:sp><p:txBody>` + runs + `</p:txBody></p:sp></p:spTree></p:cSld>
</p:sld>`
}

func pptxNotesSlide(texts ...string) string {
	var runs string
	for _, tx := range texts {
		runs += fmt.Sprintf("<a:p><a:r><a:t>%s</a:t></a:r></a:p>", tx)
	}
	return `<?xml version="1.0" encoding="UTF-8"?>
<p:notes xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<p:cSld><p:spTree><p:sp><p:txBody>` + runs + `</p:txBody></p:sp></p:spTree></p:cSld>
</p:notes>`
}

func xlsxSheet(cells string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<sheetData><row r="1">` + cells + `</row></sheetData>
</worksheet>`
}

func xlsxSharedStrings(strings ...string) string {
	var items string
	for _, s := range strings {
		items += fmt.Sprintf("<si><t>%s</t></si>", s)
	}
	return `<?xml version="1.0" encoding="UTF-8"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">` + items + `</sst>`
}

func odfContent(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" xmlns:draw="urn:oasis:names:tc:opendocument:xmlns:drawing:1.0" xmlns:presentation="urn:oasis:names:tc:opendocument:xmlns:presentation:1.0">
<office:body>` + body + `</office:body>
</office:document-content>`
}
