// Package ident generates opaque, URL-safe identifiers.
package ident

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generate returns a prefixed NanoID, e.g. "usr-V1StGXR8_Z5jdHi6B-myT".
// The prefix makes identifiers self-describing in logs and URLs; the
// NanoID part carries the collision resistance.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}
