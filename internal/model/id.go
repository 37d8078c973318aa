package model

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

// NewID returns a fresh ULID for a newly created entity.
func NewID() string {
	now := time.Now().UTC()
	entropy := ulid.Monotonic(randReader{}, 0)
	id, err := ulid.New(ulid.Timestamp(now), entropy)
	if err != nil {
		return fmt.Sprintf("%d", now.UnixNano())
	}
	return id.String()
}
