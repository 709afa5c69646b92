package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// parseDOCX extracts the text of a .docx file. A docx is a zip container;
// the body lives in word/document.xml as WordprocessingML.
func parseDOCX(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return parseDOCXReader(f, info.Size())
}

func parseDOCXReader(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, &ParseError{Format: "DOCX", Corrupt: true, Err: err}
	}

	var body *zip.File
	for _, zf := range zr.File {
		if zf.Name == "word/document.xml" {
			body = zf
			break
		}
	}
	if body == nil {
		return nil, &ParseError{
			Format:  "DOCX",
			Corrupt: true,
			Err:     fmt.Errorf("word/document.xml not found in archive"),
		}
	}

	rc, err := body.Open()
	if err != nil {
		return nil, &ParseError{Format: "DOCX", Corrupt: true, Err: err}
	}
	defer rc.Close()

	text, err := wordprocessingText(rc)
	if err != nil {
		return nil, &ParseError{Format: "DOCX", Corrupt: true, Err: err}
	}

	return &Document{
		Text:      text,
		WordCount: len(strings.Fields(text)),
	}, nil
}

// wordprocessingText walks the WordprocessingML token stream collecting
// run text (w:t) and paragraph breaks (w:p).
func wordprocessingText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var b strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
