// Package source acquires filing byte streams and cleans them up for
// line-oriented parsing. It is the boundary collaborator of the decode
// engine: the engine only needs a sequential reader, and this package maps
// locators onto one and deals with the grime real filings arrive with
// (UTF-8 BOMs from Windows tooling, stray non-UTF-8 bytes in old filings).
package source

import (
	"fmt"
	"io"
	"os"
)

// Error wraps a byte-source failure with the locator it came from, so a
// caller juggling many filings can tell which one failed.
type Error struct {
	Locator string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("source %q: %v", e.Locator, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Open resolves a locator to a sequential byte stream. "-" means stdin;
// anything else is a local file path. Retry and caching policy belong to
// the caller, not here.
func Open(locator string) (io.ReadCloser, error) {
	if locator == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(locator)
	if err != nil {
		return nil, &Error{Locator: locator, Err: err}
	}
	return f, nil
}

// Clean wraps a raw stream with BOM skipping and UTF-8 sanitization, in
// that order. The result is safe to split into lines and fields.
func Clean(r io.Reader) io.Reader {
	return NewSanitizingReader(NewBOMReader(r))
}
