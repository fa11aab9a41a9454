package officeparser

import (
	"bytes"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/richardlehane/mscfb"
)

// extensionFromBuffer resolves a raw byte buffer to one of the recognized
// file extensions, or "" when the content type is unknown. OpenDocument
// containers are checked first: generic matchers see them as plain zip.
// Legacy OLE compound files resolve to their real extension (doc, xls, ppt)
// so the dispatcher can name the format in its unsupported-extension error
// instead of reporting unrecognizable input.
func extensionFromBuffer(data []byte) string {
	if ext := odfExtension(data); ext != "" {
		return ext
	}
	if kind, err := filetype.Match(data); err == nil && kind != types.Unknown {
		switch kind.Extension {
		case "docx", "pptx", "xlsx", "pdf", "doc", "xls", "ppt":
			return kind.Extension
		}
	}
	return oleExtension(data)
}

// ODF mime strings as stored in the uncompressed "mimetype" member that every
// OpenDocument archive carries as its first entry.
var odfMimeExtensions = map[string]string{
	"application/vnd.oasis.opendocument.text":         "odt",
	"application/vnd.oasis.opendocument.presentation": "odp",
	"application/vnd.oasis.opendocument.spreadsheet":  "ods",
}

// odfExtension sniffs the OpenDocument mimetype member. The zip local header
// is 30 bytes, the member name "mimetype" is 8, so the mime string starts at
// offset 38 — the same technique filetype itself uses for epub.
func odfExtension(data []byte) string {
	if len(data) < 38 || !bytes.HasPrefix(data, []byte("PK\x03\x04")) {
		return ""
	}
	if string(data[30:38]) != "mimetype" {
		return ""
	}
	for mime, ext := range odfMimeExtensions {
		if bytes.HasPrefix(data[38:], []byte(mime)) {
			return ext
		}
	}
	return ""
}

// oleExtension opens the buffer as an OLE compound file and maps its
// directory stream names to the legacy office extension. Returns "" when the
// buffer is not a compound file or holds none of the known streams.
func oleExtension(data []byte) string {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "WordDocument":
			return "doc"
		case "Workbook", "Book":
			return "xls"
		case "PowerPoint Document":
			return "ppt"
		}
	}
	return ""
}
