// Package extract pulls plain text out of uploaded resume documents.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// PDF extracts text from PDF payloads using github.com/ledongthuc/pdf.
// It implements resumes.TextExtractor.
type PDF struct{}

// ExtractText returns the text of every page concatenated in page order.
func (PDF) ExtractText(data []byte) (string, error) {
	return Text(data)
}

// Text extracts the plain text of an in-memory PDF document.
func Text(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty document")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
