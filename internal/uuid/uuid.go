// Package uuid generates record identifiers for expenses and budgets.
package uuid

import (
	"fmt"
	"sync/atomic"

	googleuuid "github.com/google/uuid"
)

// Generator returns a new unique identifier on every call.
type Generator func() string

// New returns a time-ordered UUIDv7, so newer records sort after older ones.
// Falls back to a random UUIDv4 if the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// Sequence returns a Generator producing prefix-1, prefix-2, ... It is handy for
// deterministic fixtures.
func Sequence(prefix string) Generator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
