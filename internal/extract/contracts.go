package extract

import (
	"context"

	"github.com/hasc-tools/ndaa-intake/constants"
)

// RawDocument is one uploaded submission: opaque bytes plus the caller's
// filename and declared media type. It is never persisted by this package.
type RawDocument struct {
	Filename string
	Format   constants.Format
	Content  []byte
	// Path is the on-disk location for stored submissions; empty for
	// in-memory uploads.
	Path string
}

// TextParser is stage 1: document bytes -> plain text.
type TextParser interface {
	Parse(ctx context.Context, doc RawDocument) (string, error)
}
