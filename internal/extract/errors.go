package extract

import "fmt"

// ErrTooLarge is returned by Validate for files over MaxFileSize.
var ErrTooLarge = fmt.Errorf("file size exceeds 10MB limit")

// UnsupportedTypeError indicates a file type the parser cannot handle.
type UnsupportedTypeError struct {
	Ext string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Ext == "" {
		return "unsupported file type: unknown"
	}
	return fmt.Sprintf("unsupported file type %q: upload a PDF or DOCX file", e.Ext)
}

// ParseError indicates a document could not be parsed. Corrupt is set when
// the file is recognizably the right format but structurally broken, which
// calls for re-exporting the file rather than picking a different one.
type ParseError struct {
	Format  string
	Corrupt bool
	Err     error
}

func (e *ParseError) Error() string {
	if e.Corrupt {
		return fmt.Sprintf("the %s appears to be corrupted or has an invalid structure: re-export or re-download the file and try again", e.Format)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
