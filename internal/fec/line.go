package fec

import (
	"bufio"
	"io"
	"strings"
)

// DefaultMaxLineBytes bounds how far the line reader looks for a terminator.
// Real filings keep lines well under this; a line that blows past it is
// corrupt input, not data.
const DefaultMaxLineBytes = 1 << 20

// Line is one logical record of a filing: the raw text with its 1-based
// line number and the byte offset where it started.
type Line struct {
	Text   string
	Number int
	Offset int64
}

// LineReader turns a byte source into a forward-only sequence of lines.
// It consumes exactly the bytes needed for each line, handles LF and CRLF
// terminators, and enforces a bounded lookahead.
type LineReader struct {
	r      *bufio.Reader
	max    int
	number int
	offset int64
}

// NewLineReader creates a line reader over r. maxLineBytes <= 0 selects
// DefaultMaxLineBytes.
func NewLineReader(r io.Reader, maxLineBytes int) *LineReader {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	return &LineReader{r: bufio.NewReader(r), max: maxLineBytes}
}

// Next returns the next line. It returns io.EOF once the source is
// exhausted, and a MalformedLineError if no terminator is found within the
// byte bound; in that case the offending bytes are discarded through the
// next line boundary so the caller may resume.
func (lr *LineReader) Next() (Line, error) {
	var b strings.Builder
	start := lr.offset

	for {
		c, err := lr.r.ReadByte()
		if err == io.EOF {
			if b.Len() == 0 {
				return Line{}, io.EOF
			}
			lr.number++
			return Line{Text: trimCR(b.String()), Number: lr.number, Offset: start}, nil
		}
		if err != nil {
			return Line{}, err
		}
		lr.offset++

		if c == '\n' {
			lr.number++
			return Line{Text: trimCR(b.String()), Number: lr.number, Offset: start}, nil
		}
		if b.Len() >= lr.max {
			lr.discardLine()
			lr.number++
			return Line{}, &MalformedLineError{Line: lr.number, Limit: lr.max}
		}
		b.WriteByte(c)
	}
}

// LinesRead returns how many lines have been consumed so far.
func (lr *LineReader) LinesRead() int { return lr.number }

// Offset returns the byte offset of the read cursor.
func (lr *LineReader) Offset() int64 { return lr.offset }

// discardLine consumes bytes through the next '\n' or EOF.
func (lr *LineReader) discardLine() {
	for {
		c, err := lr.r.ReadByte()
		if err != nil {
			return
		}
		lr.offset++
		if c == '\n' {
			return
		}
	}
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
