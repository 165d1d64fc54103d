package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploadedFile is a fully read multipart file
type uploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// readUpload reads the named multipart file, rejecting files over maxBytes
func readUpload(c *gin.Context, field string, maxBytes int64) (*uploadedFile, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%s is required", field)
	}
	defer file.Close()

	return readPart(file, header, maxBytes)
}

func readPart(file multipart.File, header *multipart.FileHeader, maxBytes int64) (*uploadedFile, error) {
	if header.Size > maxBytes {
		return nil, fmt.Errorf("file exceeds the %d MB limit", maxBytes>>20)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file")
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("file exceeds the %d MB limit", maxBytes>>20)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	return &uploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
