// Package fec decodes FEC campaign-finance filings (.fec files) into typed,
// batched records, lazily and in a single forward pass.
//
// A .fec file is line-oriented delimited text. The first record (HDR)
// declares the format version, which selects both the delimiter convention
// (comma before version 6, ASCII 0x1C from version 6 on) and the field
// schemas for every record that follows. The second record is the cover,
// naming the form type and the filing committee. Every later line is an
// itemization whose schema is resolved from the registry in
// [fecstream/internal/schema] by (format version, record type code).
//
// # Usage
//
// The entry point is a [Filing], a lazy handle over a byte source. Nothing
// is read until you ask for it:
//
//	f, err := fec.Open("12345.fec", fec.Options{MaxBatchSize: 1000})
//	if err != nil { ... }
//	defer f.Close()
//
//	hdr, err := f.Header() // reads exactly one line, then cached
//	cov, err := f.Cover()  // reads one more line, then cached
//
//	it, err := f.Batches()
//	for {
//	    batch, err := it.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    ...
//	}
//
// Batches group consecutive rows of one record type code, bounded by
// Options.MaxBatchSize, in file order. Memory use is bounded by one line
// plus one open batch; the whole file is never buffered.
//
// The byte source supports a single forward pass. Header and Cover stay
// queryable from cache after the batch stream is drained or abandoned, but
// requesting the batch stream again fails with [ErrAlreadyConsumed].
//
// Decode failures on itemization lines are governed by Options.Strict: in
// strict mode the first failure aborts the stream, in lenient mode the line
// is skipped and reported as a [Diagnostic]. Header and cover failures are
// always fatal; nothing downstream can be resolved without them.
package fec
