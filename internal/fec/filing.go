package fec

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"fecstream/internal/schema"
	"fecstream/internal/source"
)

// scanPhase tracks how far a filing has been consumed. It only ever moves
// forward; the byte source is not rewindable.
type scanPhase int

const (
	phaseNotStarted scanPhase = iota
	phaseHeaderRead
	phaseCoverRead
	phaseItemizing
	phaseDone
)

// DefaultMaxBatchSize bounds a batch when Options leaves it unset.
const DefaultMaxBatchSize = 1024

// Options configures a Filing.
type Options struct {
	// MaxBatchSize caps the rows per emitted batch (default 1024).
	MaxBatchSize int

	// Strict aborts itemization on the first per-line decode failure.
	// Lenient (the default) skips the line and reports a Diagnostic.
	Strict bool

	// MaxLineBytes bounds the line reader's lookahead (default 1MiB).
	MaxLineBytes int

	// Registry resolves record schemas; nil selects the embedded table.
	Registry *schema.Registry

	// OnDiagnostic, when set, is invoked for every skipped line as it is
	// encountered, in addition to collection on the filing.
	OnDiagnostic func(Diagnostic)
}

// Diagnostic describes a line that could not be decoded. Skipped lines are
// always surfaced, never silently dropped, even in lenient mode.
type Diagnostic struct {
	Filing     uuid.UUID
	LineNumber int
	Raw        string
	Err        error
}

// Filing is a lazy handle over one filing's byte stream. Nothing is read
// until Header, Cover, or a batch is requested, and reading goes exactly as
// far as the caller has consumed.
//
// A Filing is owned by a single goroutine; distinct Filings share nothing
// mutable and may run concurrently.
type Filing struct {
	id      uuid.UUID
	locator string
	closer  io.Closer // nil once released, or when the caller owns the reader
	lr      *LineReader
	opts    Options

	header *Header
	cover  *Cover
	dec    *Decoder
	phase  scanPhase
	err    error // first fatal error, sticky
	iter   *BatchIterator
	diags  []Diagnostic
}

// New creates a Filing over a caller-owned reader. The reader is used for a
// single forward pass; the caller remains responsible for closing it.
func New(r io.Reader, opts Options) *Filing {
	if opts.MaxBatchSize <= 0 {
		opts.MaxBatchSize = DefaultMaxBatchSize
	}
	if opts.Registry == nil {
		opts.Registry = schema.Default()
	}
	return &Filing{
		id:    uuid.New(),
		lr:    NewLineReader(r, opts.MaxLineBytes),
		opts:  opts,
		phase: phaseNotStarted,
	}
}

// Open resolves a locator through the source package, cleans the stream,
// and returns a Filing that owns the handle. The handle is released when
// the batch stream ends, on any fatal error, or on Close — whichever comes
// first.
func Open(locator string, opts Options) (*Filing, error) {
	rc, err := source.Open(locator)
	if err != nil {
		return nil, err
	}
	f := New(source.Clean(rc), opts)
	f.locator = locator
	f.closer = rc
	return f, nil
}

// ID returns the identifier assigned to this parse run, carried on every
// Diagnostic and log entry for the filing.
func (f *Filing) ID() uuid.UUID { return f.id }

// Header returns the filing's header, reading one line on first call and
// serving from cache afterwards. A header failure is fatal and sticky.
func (f *Filing) Header() (*Header, error) {
	if f.header != nil {
		return f.header, nil
	}
	if f.err != nil {
		return nil, f.err
	}

	line, err := f.lr.Next()
	if errors.Is(err, io.EOF) {
		err = &MalformedHeaderError{Line: 0, Reason: "empty filing"}
	}
	if err != nil {
		return nil, f.fail(err)
	}

	h, err := ParseHeader(line)
	if err != nil {
		return nil, f.fail(err)
	}

	f.header = h
	f.dec = NewDecoder(h.FECVersion, f.opts.Strict)
	f.phase = phaseHeaderRead
	return h, nil
}

// Cover returns the filing's cover, forcing the header first. Like Header,
// it reads at most once and then serves from cache.
func (f *Filing) Cover() (*Cover, error) {
	if f.cover != nil {
		return f.cover, nil
	}

	h, err := f.Header()
	if err != nil {
		return nil, err
	}

	line, err := f.lr.Next()
	if errors.Is(err, io.EOF) {
		err = &MalformedCoverError{Line: f.lr.LinesRead() + 1, Err: errors.New("no cover record")}
	}
	if err != nil {
		return nil, f.fail(err)
	}

	c, err := ParseCover(line, h.FECVersion, f.opts.Registry, f.opts.Strict)
	if err != nil {
		return nil, f.fail(err)
	}

	f.cover = c
	f.phase = phaseCoverRead
	return c, nil
}

// Batches returns the filing's batch iterator, forcing Header and Cover
// first if needed. The iterator may be requested again mid-stream (the same
// one is returned), but once the stream is drained, abandoned, or the
// filing closed, further requests fail with ErrAlreadyConsumed.
func (f *Filing) Batches() (*BatchIterator, error) {
	if f.phase == phaseDone {
		if f.err != nil {
			return nil, f.err
		}
		return nil, ErrAlreadyConsumed
	}
	if f.iter != nil {
		return f.iter, nil
	}

	if _, err := f.Cover(); err != nil {
		return nil, err
	}

	f.phase = phaseItemizing
	f.iter = &BatchIterator{f: f, max: f.opts.MaxBatchSize}
	return f.iter, nil
}

// Diagnostics returns the skipped-line reports collected so far.
func (f *Filing) Diagnostics() []Diagnostic { return f.diags }

// Close releases the byte source. Header and Cover stay available from
// cache, but the batch stream cannot be requested or resumed afterwards.
func (f *Filing) Close() error {
	err := f.release()
	if f.iter != nil {
		f.iter.done = true
	}
	f.phase = phaseDone
	return err
}

// fail records the first fatal error, releases the source, and moves the
// filing to its terminal phase. Resources are released on every exit path,
// not only on clean exhaustion.
func (f *Filing) fail(err error) error {
	if f.err == nil {
		f.err = err
	}
	f.release()
	f.phase = phaseDone
	return err
}

func (f *Filing) release() error {
	if f.closer == nil {
		return nil
	}
	c := f.closer
	f.closer = nil
	return c.Close()
}

// nextRow decodes itemization lines until one decodes cleanly, the stream
// ends, or (strict mode) a failure becomes fatal. Blank lines are ignored;
// trailing blank lines are common in exported filings.
func (f *Filing) nextRow() (Row, error) {
	for {
		line, err := f.lr.Next()
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}

		var malformed *MalformedLineError
		if errors.As(err, &malformed) {
			if f.opts.Strict {
				return Row{}, err
			}
			f.report(Diagnostic{Filing: f.id, LineNumber: malformed.Line, Err: err})
			continue
		}
		if err != nil {
			if f.locator != "" {
				err = &source.Error{Locator: f.locator, Err: err}
			}
			return Row{}, err
		}

		if strings.TrimSpace(line.Text) == "" {
			continue
		}

		sch, err := f.opts.Registry.Resolve(f.header.FECVersion, f.dec.Code(line.Text))
		if err != nil {
			if f.opts.Strict {
				return Row{}, err
			}
			f.report(Diagnostic{Filing: f.id, LineNumber: line.Number, Raw: line.Text, Err: err})
			continue
		}

		row, err := f.dec.Decode(line, sch)
		if err != nil {
			if f.opts.Strict {
				return Row{}, err
			}
			f.report(Diagnostic{Filing: f.id, LineNumber: line.Number, Raw: line.Text, Err: err})
			continue
		}
		return row, nil
	}
}

func (f *Filing) report(d Diagnostic) {
	f.diags = append(f.diags, d)
	slog.Debug("skipping line",
		"filing_id", f.id,
		"line", d.LineNumber,
		"error", d.Err,
	)
	if f.opts.OnDiagnostic != nil {
		f.opts.OnDiagnostic(d)
	}
}
