package id

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. ULIDs sort lexicographically by creation time.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// At returns a ULID whose timestamp component is t, so ids created for
// backdated records still sort by their own time.
func At(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}
