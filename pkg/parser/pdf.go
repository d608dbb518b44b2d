package parser

import (
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// ReadPDFText reads a PDF file and returns its text content
func ReadPDFText(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if f != nil {
		defer f.Close()
	}
	if err != nil {
		return "", fmt.Errorf("error opening PDF: %w", err)
	}

	plainText, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("error extracting text from PDF: %w", err)
	}

	bytes, err := io.ReadAll(plainText)
	if err != nil {
		return "", fmt.Errorf("error reading plain text from PDF: %w", err)
	}

	return string(bytes), nil
}
