package timetable

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash computes the content digest used for change detection: SHA-256
// over a canonical serialization of the ordered (pair, time, subject,
// room, kind) projection. The teacher field is intentionally excluded:
// it is the least reliably extracted field and must not cause spurious
// change notifications.
//
// A serialization failure cannot happen for well-formed records; if it
// does, it is a contract violation and is returned, never swallowed.
func Hash(lessons []Lesson) (string, error) {
	projected := make([][5]any, len(lessons))
	for i, l := range lessons {
		projected[i] = [5]any{l.Pair, l.Time, l.Subject, l.Room, l.Kind}
	}

	blob, err := json.Marshal(projected)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:]), nil
}
