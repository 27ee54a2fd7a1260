package fec

import (
	"errors"
	"io"
)

// BatchIterator groups decoded rows into bounded batches, pulled one at a
// time. A batch closes when the record type code changes, when it reaches
// the configured maximum size, or when the stream ends — so batches for a
// given code always arrive in file order and never interleave with another
// code. An empty batch is never emitted.
type BatchIterator struct {
	f       *Filing
	max     int
	pending *Row // first row of the next batch, read past a code change
	done    bool
}

// Next returns the next batch, or io.EOF once the stream is exhausted.
// On a fatal error the byte source is released and the error returned;
// the iterator is then finished.
func (it *BatchIterator) Next() (*Batch, error) {
	if it.done {
		return nil, io.EOF
	}

	var batch *Batch
	if it.pending != nil {
		batch = &Batch{Code: it.pending.Code, Rows: []Row{*it.pending}}
		it.pending = nil
	}

	for {
		if batch != nil && len(batch.Rows) >= it.max {
			return batch, nil
		}

		row, err := it.f.nextRow()
		if errors.Is(err, io.EOF) {
			it.finish(nil)
			if batch != nil {
				return batch, nil
			}
			return nil, io.EOF
		}
		if err != nil {
			it.finish(err)
			return nil, err
		}

		if batch == nil {
			batch = &Batch{Code: row.Code, Rows: []Row{row}}
		} else if row.Code != batch.Code {
			it.pending = &row
			return batch, nil
		} else {
			batch.Rows = append(batch.Rows, row)
		}
	}
}

// Close abandons the stream early, releasing the filing's hold on the byte
// source. Header and Cover remain queryable from cache; the batch stream
// does not survive abandonment.
func (it *BatchIterator) Close() error {
	if it.done {
		return nil
	}
	it.finish(nil)
	return nil
}

func (it *BatchIterator) finish(err error) {
	it.done = true
	it.pending = nil
	if err != nil {
		it.f.fail(err)
		return
	}
	it.f.release()
	it.f.phase = phaseDone
}
