package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		size    int64
		wantErr bool
	}{
		{"pdf ok", "notes.pdf", 1024, false},
		{"docx ok", "notes.docx", 1024, false},
		{"doc ok", "notes.doc", 1024, false},
		{"uppercase extension", "NOTES.PDF", 1024, false},
		{"at size limit", "notes.pdf", MaxFileSize, false},
		{"over size limit", "notes.pdf", MaxFileSize + 1, true},
		{"ppt rejected", "slides.ppt", 1024, true},
		{"pptx rejected", "slides.pptx", 1024, true},
		{"txt rejected", "notes.txt", 1024, true},
		{"no extension", "notes", 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.file, tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q, %d) error = %v, wantErr %v", tt.file, tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_OversizeError(t *testing.T) {
	err := Validate("notes.pdf", MaxFileSize+1)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got: %v", err)
	}
}

func TestValidate_UnsupportedTypeError(t *testing.T) {
	err := Validate("slides.pptx", 1024)
	var typeErr *UnsupportedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected UnsupportedTypeError, got: %v", err)
	}
	if typeErr.Ext != ".pptx" {
		t.Fatalf("expected ext .pptx, got %q", typeErr.Ext)
	}
}

// buildDOCX assembles a minimal docx archive with the given document body.
func buildDOCX(t *testing.T, documentXML string) *bytes.Reader {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	return bytes.NewReader(buf.Bytes())
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Photosynthesis converts light into</w:t></w:r><w:r><w:t xml:space="preserve"> chemical energy.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Chlorophyll absorbs red and blue light.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestParseDOCX_ExtractsParagraphs(t *testing.T) {
	r := buildDOCX(t, sampleDocumentXML)

	doc, err := parseDOCXReader(r, r.Size())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Photosynthesis converts light into chemical energy.\nChlorophyll absorbs red and blue light."
	if doc.Text != want {
		t.Fatalf("unexpected text:\ngot:  %q\nwant: %q", doc.Text, want)
	}
	if doc.WordCount != 12 {
		t.Fatalf("expected 12 words, got %d", doc.WordCount)
	}
	if doc.PageCount != 0 {
		t.Fatalf("expected no page count for docx, got %d", doc.PageCount)
	}
}

func TestParseDOCX_NotAZip(t *testing.T) {
	r := bytes.NewReader([]byte("this is not a zip archive"))

	_, err := parseDOCXReader(r, r.Size())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got: %v", err)
	}
	if !parseErr.Corrupt {
		t.Fatal("expected Corrupt to be set")
	}
}

func TestParseDOCX_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/styles.xml")
	w.Write([]byte("<styles/>"))
	zw.Close()

	r := bytes.NewReader(buf.Bytes())
	_, err := parseDOCXReader(r, r.Size())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got: %v", err)
	}
	if !parseErr.Corrupt {
		t.Fatal("expected Corrupt to be set")
	}
}

func TestParse_LegacyDocRejected(t *testing.T) {
	_, err := Parse("notes.doc")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got: %v", err)
	}
	if !strings.Contains(err.Error(), ".docx or PDF") {
		t.Fatalf("expected conversion hint, got: %v", err)
	}
}

func TestParse_UnknownExtension(t *testing.T) {
	_, err := Parse("notes.txt")
	var typeErr *UnsupportedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected UnsupportedTypeError, got: %v", err)
	}
}

func TestWordprocessingText_TabsAndBreaks(t *testing.T) {
	const doc = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Left</w:t><w:tab/><w:t>Right</w:t></w:r></w:p>
    <w:p><w:r><w:t>First line</w:t><w:br/><w:t>Second line</w:t></w:r></w:p>
  </w:body>
</w:document>`

	r := buildDOCX(t, doc)
	parsed, err := parseDOCXReader(r, r.Size())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Left\tRight\nFirst line\nSecond line"
	if parsed.Text != want {
		t.Fatalf("unexpected text:\ngot:  %q\nwant: %q", parsed.Text, want)
	}
}
