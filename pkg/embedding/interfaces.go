package embedding

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the embedding capability could not be loaded or
// reached. Callers that want a different clustering method must choose it
// explicitly; nothing in this package falls back on their behalf.
var ErrUnavailable = errors.New("semantic clustering unavailable: embedding capability not loaded")

// Encoder converts raw keyword texts into fixed-dimension dense vectors
type Encoder interface {
	// Encode embeds all texts in one batch call. The result has one vector
	// per input text, in input order.
	Encode(ctx context.Context, texts []string) ([][]float32, error)

	// Model identifies the embedding model, used in logs so cluster
	// boundaries are attributable to a model version
	Model() string

	// Dimension returns the embedding vector size
	Dimension() int
}
