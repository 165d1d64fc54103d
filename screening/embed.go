package screening

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hireflow/backend/models"
)

// Chunking parameters, in runes
const (
	ChunkSize     = 2000
	ChunkOverlap  = 200
	ChunkStrategy = "sliding_window"
)

// ErrEmbeddingsUnavailable is returned when no embedder is configured
var ErrEmbeddingsUnavailable = errors.New("embeddings not configured")

// ChunkText splits text into windows of size runes where consecutive
// windows share overlap runes
func ChunkText(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if overlap >= size {
		overlap = 0
	}

	var chunks []string
	step := size - overlap
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}

// MeanPool averages equal-length vectors element-wise
func MeanPool(vectors [][]float32) ([]float32, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no vectors to pool")
	}

	dim := len(vectors[0])
	pooled := make([]float32, dim)
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector %d has dimension %d, want %d", i, len(v), dim)
		}
		for j, x := range v {
			pooled[j] += x
		}
	}
	n := float32(len(vectors))
	for j := range pooled {
		pooled[j] /= n
	}
	return pooled, nil
}

// Embed chunks text, embeds each chunk in order and mean-pools the result
func (s *Service) Embed(ctx context.Context, text string) (*models.EmbeddingResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, required("text")
	}
	if s.embedder == nil {
		return nil, ErrEmbeddingsUnavailable
	}

	chunks := ChunkText(text, ChunkSize, ChunkOverlap)
	vectors := make([][]float32, 0, len(chunks))
	for i, chunk := range chunks {
		vec, err := s.embedder.Embed(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunk %d/%d: %w", i+1, len(chunks), err)
		}
		vectors = append(vectors, vec)
	}

	pooled, err := MeanPool(vectors)
	if err != nil {
		return nil, fmt.Errorf("failed to pool embeddings: %w", err)
	}

	return &models.EmbeddingResponse{
		Embedding: pooled,
		Model:     s.embedder.Model(),
		ChunkingInfo: models.ChunkingInfo{
			TotalChunks:     len(chunks),
			ChunkSize:       ChunkSize,
			Overlap:         ChunkOverlap,
			Strategy:        ChunkStrategy,
			TotalCharacters: len([]rune(text)),
		},
	}, nil
}
