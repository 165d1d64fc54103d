package utils

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
)

// DocumentExtractor extracts text from resume documents
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

var supportedFormats = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".rtf":  "application/rtf",
	".odt":  "application/vnd.oasis.opendocument.text",
	".txt":  "text/plain",
	".md":   "text/plain",
}

// ExtractText extracts plain text from file content based on its extension.
// A document with no text layer (e.g. a scanned PDF) yields an empty string
// and no error.
func (e *DocumentExtractor) ExtractText(filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt", ".md":
		if !utf8.Valid(content) {
			return "", fmt.Errorf("text file is not valid UTF-8")
		}
		return strings.TrimSpace(string(content)), nil

	case ".pdf", ".doc", ".docx", ".rtf", ".odt":
		res, err := docconv.Convert(bytes.NewReader(content), supportedFormats[ext], false)
		if err != nil {
			return "", fmt.Errorf("failed to parse document: %w", err)
		}
		return strings.TrimSpace(res.Body), nil

	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	_, ok := supportedFormats[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// MimeType returns the content type for a supported file, falling back to
// application/octet-stream
func (e *DocumentExtractor) MimeType(filename string) string {
	if mime, ok := supportedFormats[strings.ToLower(filepath.Ext(filename))]; ok {
		return mime
	}
	return "application/octet-stream"
}
