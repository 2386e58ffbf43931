// Package id generates sortable unique identifiers.
package id

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// New returns a new lowercase ULID string.
func New() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}
