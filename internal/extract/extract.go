// Package extract validates uploaded study documents and pulls plain text
// out of them for question generation.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxFileSize is the largest document accepted, in bytes.
const MaxFileSize = 10 << 20 // 10MB

// allowedExtensions lists the file types accepted at validation.
// Presentations are rejected up front: there is no reliable text path
// out of them, so asking for a PDF/DOCX conversion early beats failing
// after upload.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Document is the text extracted from one uploaded file.
type Document struct {
	Text      string
	WordCount int

	// PageCount is only known for PDFs; zero otherwise.
	PageCount int
}

// Validate checks a file's name and size before any parsing happens.
func Validate(name string, size int64) error {
	if size > MaxFileSize {
		return ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return &UnsupportedTypeError{Ext: ext}
	}
	return nil
}

// Parse reads the file at path and extracts its text, dispatching on the
// file extension. Callers should Validate first; Parse re-checks the
// extension but not the size.
func Parse(path string) (*Document, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return parsePDF(path)
	case ".docx":
		return parseDOCX(path)
	case ".doc":
		// Legacy binary Word documents have no zip container to read.
		return nil, &ParseError{
			Format: "DOC",
			Err:    fmt.Errorf("legacy .doc files are not supported: save as .docx or PDF first"),
		}
	default:
		return nil, &UnsupportedTypeError{Ext: ext}
	}
}

func parsePDF(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, &ParseError{Format: "PDF", Corrupt: true, Err: err}
	}
	defer f.Close()

	text, err := extractPDFText(reader)
	if err != nil {
		return nil, &ParseError{Format: "PDF", Corrupt: true, Err: err}
	}

	return &Document{
		Text:      text,
		WordCount: len(strings.Fields(text)),
		PageCount: reader.NumPage(),
	}, nil
}

// extractPDFText pulls the plain text stream out of an open PDF reader.
// The underlying library panics on some malformed cross-reference tables,
// so the panic is converted to an error here.
func extractPDFText(reader *pdf.Reader) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid PDF structure: %v", r)
		}
	}()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
