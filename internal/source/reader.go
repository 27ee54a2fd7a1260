package source

// reader.go provides streaming io.Reader wrappers so a filing never has to
// be loaded whole for cleanup:
//
//   - BOMReader: drops a leading UTF-8 BOM (0xEF 0xBB 0xBF)
//   - SanitizingReader: replaces invalid UTF-8 bytes with '?' on the fly
//   - CountingReader: tracks bytes read for progress reporting

import (
	"io"
	"unicode/utf8"
)

// BOMReader wraps an io.Reader and skips the UTF-8 BOM if present. Windows
// filing software routinely writes one.
type BOMReader struct {
	reader  io.Reader
	checked bool
	buf     [3]byte
	bufData []byte
	bufPos  int
}

// NewBOMReader creates a BOM-skipping reader.
func NewBOMReader(r io.Reader) *BOMReader {
	return &BOMReader{reader: r}
}

// Read implements io.Reader. The first call checks for and drops the BOM.
func (r *BOMReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true

		n, err := io.ReadFull(r.reader, r.buf[:])
		if n == 0 {
			return 0, err
		}

		if n >= 3 && r.buf[0] == 0xEF && r.buf[1] == 0xBB && r.buf[2] == 0xBF {
			r.bufData = nil
		} else {
			r.bufData = r.buf[:n]
			r.bufPos = 0
		}

		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
	}

	if len(r.bufData) > r.bufPos {
		copied := copy(p, r.bufData[r.bufPos:])
		r.bufPos += copied
		if r.bufPos >= len(r.bufData) {
			r.bufData = nil
		}
		return copied, nil
	}

	return r.reader.Read(p)
}

// SanitizingReader wraps an io.Reader and replaces bytes that are not valid
// UTF-8 with '?' as they stream past. Pre-2001 filings were uploaded in
// whatever code page the vendor used; a single stray 0x93 must not poison
// the rest of the file.
type SanitizingReader struct {
	reader io.Reader

	// Bytes held back from the previous read that may start a multi-byte
	// sequence completed by the next read.
	pending []byte
}

// NewSanitizingReader creates a streaming UTF-8 sanitizer.
func NewSanitizingReader(r io.Reader) *SanitizingReader {
	return &SanitizingReader{
		reader:  r,
		pending: make([]byte, 0, utf8.UTFMax),
	}
}

// Read implements io.Reader.
func (s *SanitizingReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	offset := 0
	if len(s.pending) > 0 {
		offset = copy(p, s.pending)
		s.pending = s.pending[:0]
	}

	n, err := s.reader.Read(p[offset:])
	n += offset
	if n == 0 {
		return 0, err
	}

	if allASCII(p[:n]) {
		return n, err
	}
	return s.sanitize(p[:n], err == io.EOF), err
}

// allASCII is the fast path; filings are overwhelmingly ASCII.
func allASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// sanitize rewrites data in place, replacing invalid bytes with '?', and
// returns the number of bytes to surface. When not at EOF, an incomplete
// trailing sequence is held back for the next read instead of mangled.
func (s *SanitizingReader) sanitize(data []byte, atEOF bool) int {
	if utf8.Valid(data) {
		if !atEOF {
			if trailing := incompleteTrailing(data); trailing > 0 {
				s.pending = append(s.pending, data[len(data)-trailing:]...)
				return len(data) - trailing
			}
		}
		return len(data)
	}

	write := 0
	for read := 0; read < len(data); {
		r, size := utf8.DecodeRune(data[read:])

		if !atEOF && read+size >= len(data) && incompleteRune(data[read:]) {
			s.pending = append(s.pending, data[read:]...)
			return write
		}

		if r == utf8.RuneError && size == 1 {
			// '?' keeps the replacement single-byte; U+FFFD would grow
			// the buffer mid-stream.
			data[write] = '?'
			write++
			read++
		} else {
			copy(data[write:], data[read:read+size])
			write += size
			read += size
		}
	}
	return write
}

// incompleteTrailing returns how many bytes at the end of data could be the
// start of a multi-byte sequence cut off by the read boundary.
func incompleteTrailing(data []byte) int {
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]
		if b >= 0xC0 {
			if i < expectedRuneLen(b) {
				return i
			}
			return 0
		}
		if b&0xC0 != 0x80 {
			return 0
		}
	}
	return 0
}

func expectedRuneLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC0:
		return 0 // continuation byte
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	default:
		return 4
	}
}

func incompleteRune(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return expectedRuneLen(data[0]) > len(data)
}

// CountingReader wraps an io.Reader to track bytes read, for progress
// reporting against a known total.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
	Total     int64 // 0 when unknown
}

// NewCountingReader creates a counting reader with an optional total size.
func NewCountingReader(r io.Reader, total int64) *CountingReader {
	return &CountingReader{reader: r, Total: total}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// Progress returns the read progress as a percentage (0-100), or 0 when the
// total is unknown.
func (r *CountingReader) Progress() int {
	if r.Total <= 0 {
		return 0
	}
	return int(r.BytesRead * 100 / r.Total)
}
