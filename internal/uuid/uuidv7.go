// Package uuid issues time-ordered identifiers for records created outside
// the relational store, such as savings goals.
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	googleuuid "github.com/google/uuid"
)

// New generates a UUIDv7 for the current instant.
func New() string {
	return NewAt(time.Now())
}

// NewAt generates a UUIDv7 whose embedded timestamp is t, so identifiers sort
// in creation order.
//
// Layout: 48 bits Unix milliseconds, 4 bits version (7), 12 random bits,
// 2 bits variant (10), 62 random bits.
func NewAt(t time.Time) string {
	var id googleuuid.UUID

	binary.BigEndian.PutUint64(id[0:8], uint64(t.UnixMilli())<<16)

	if _, err := rand.Read(id[6:]); err != nil {
		return googleuuid.New().String()
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return id.String()
}

// Time returns the creation instant embedded in a UUIDv7 string.
func Time(s string) (time.Time, bool) {
	parsed, err := googleuuid.Parse(s)
	if err != nil || parsed.Version() != 7 {
		return time.Time{}, false
	}
	ms := binary.BigEndian.Uint64(parsed[0:8]) >> 16
	return time.UnixMilli(int64(ms)).UTC(), true
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
