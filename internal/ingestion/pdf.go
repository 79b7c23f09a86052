// Package ingestion validates uploaded resume files before grading.
package ingestion

import (
	"bytes"
	"errors"
	"fmt"
)

// MaxPDFBytes is the upload size cap. Resumes for entry-level candidates are
// expected to fit on a single page.
const MaxPDFBytes = 1 << 20

var (
	// ErrNotPDF is returned when the upload is not a PDF file.
	ErrNotPDF = errors.New("file is not a PDF")

	// ErrTooLarge is returned when the upload exceeds MaxPDFBytes.
	ErrTooLarge = errors.New("file exceeds maximum size")

	// ErrMultiPage is returned when the PDF has more than one page.
	ErrMultiPage = errors.New("resume must be a single page")
)

var pdfMagic = []byte("%PDF-")

// ValidatePDF checks that data is a single-page PDF within the size cap.
func ValidatePDF(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: file is empty", ErrNotPDF)
	}
	if len(data) > MaxPDFBytes {
		return fmt.Errorf("%w: got %d bytes, limit %d", ErrTooLarge, len(data), MaxPDFBytes)
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return fmt.Errorf("%w: missing PDF header", ErrNotPDF)
	}
	if pages := countPages(data); pages > 1 {
		return fmt.Errorf("%w: found %d pages", ErrMultiPage, pages)
	}
	return nil
}

// countPages counts page objects in the raw PDF. This is a structural scan,
// not a full parse; compressed object streams fall back to a count of 1.
func countPages(data []byte) int {
	count := bytes.Count(data, []byte("/Type /Page\n")) +
		bytes.Count(data, []byte("/Type /Page\r")) +
		bytes.Count(data, []byte("/Type /Page>")) +
		bytes.Count(data, []byte("/Type /Page/")) +
		bytes.Count(data, []byte("/Type/Page\n")) +
		bytes.Count(data, []byte("/Type/Page\r")) +
		bytes.Count(data, []byte("/Type/Page>")) +
		bytes.Count(data, []byte("/Type/Page/"))
	if count == 0 {
		return 1
	}
	return count
}
