package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentExtractor_PlainText(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.ExtractText("resume.TXT", []byte("  Jane Doe\nGo engineer\n"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo engineer", text)

	_, err = e.ExtractText("resume.txt", []byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)
}

func TestDocumentExtractor_Unsupported(t *testing.T) {
	e := NewDocumentExtractor()
	_, err := e.ExtractText("photo.png", []byte("x"))
	assert.Error(t, err)
}

func TestDocumentExtractor_Formats(t *testing.T) {
	e := NewDocumentExtractor()

	tests := []struct {
		filename  string
		supported bool
		mime      string
	}{
		{"cv.pdf", true, "application/pdf"},
		{"cv.DOCX", true, "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"cv.txt", true, "text/plain"},
		{"cv.exe", false, "application/octet-stream"},
		{"noext", false, "application/octet-stream"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.supported, e.IsSupportedFormat(tt.filename), tt.filename)
		assert.Equal(t, tt.mime, e.MimeType(tt.filename), tt.filename)
	}
}
