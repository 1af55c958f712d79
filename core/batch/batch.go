// Package batch - Disk-backed candidate batches
//
// A Batch is a bounded slice of the candidate space with an explicit
// create → persist → load → evaluate → discard lifecycle. Persisting
// every batch before scheduling bounds peak memory to one batch's worth
// of candidates regardless of total space size, and each file is
// self-contained and independently replayable.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"supplier-cost/core/enumerate"
	"supplier-cost/internal/errors"
)

// State is a batch lifecycle state
type State string

const (
	StateCreated   State = "created"
	StatePersisted State = "persisted"
	StateLoaded    State = "loaded"
	StateEvaluated State = "evaluated"
	StateDiscarded State = "discarded"
)

// Batch is one persisted slice of the candidate space
type Batch struct {
	index  int
	tuples []enumerate.Tuple
	path   string
	state  State
}

// payload is the on-disk format: gzip-compressed JSON
type payload struct {
	Index  int               `json:"index"`
	Count  int               `json:"count"`
	Tuples []enumerate.Tuple `json:"tuples"`
}

// New creates an in-memory batch
func New(index int, tuples []enumerate.Tuple) *Batch {
	return &Batch{index: index, tuples: tuples, state: StateCreated}
}

// Index returns the batch's position in enumeration order
func (b *Batch) Index() int {
	return b.index
}

// Tuples returns the candidate tuples
func (b *Batch) Tuples() []enumerate.Tuple {
	return b.tuples
}

// State returns the current lifecycle state
func (b *Batch) State() State {
	return b.state
}

// Path returns the file the batch was persisted to or loaded from
func (b *Batch) Path() string {
	return b.path
}

// Persist durably writes the batch into dir. The file is written to a
// temporary name and atomically renamed, so readers never observe a
// partial batch.
func (b *Batch) Persist(dir string) error {
	if b.state != StateCreated {
		return errors.Internal(fmt.Sprintf("persist on %s batch", b.state), nil)
	}

	final := filepath.Join(dir, fmt.Sprintf("batch_%06d.json.gz", b.index))

	tmp, err := os.CreateTemp(dir, "batch_*.tmp")
	if err != nil {
		return errors.Resource("creating batch file", err)
	}
	defer os.Remove(tmp.Name())

	zw := gzip.NewWriter(tmp)
	enc := json.NewEncoder(zw)
	if err := enc.Encode(payload{Index: b.index, Count: len(b.tuples), Tuples: b.tuples}); err != nil {
		tmp.Close()
		return errors.Resource("encoding batch", err)
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		return errors.Resource("flushing batch", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Resource("closing batch file", err)
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		return errors.Resource("publishing batch file", err)
	}

	b.path = final
	b.tuples = nil // persisted candidates no longer held in memory
	b.state = StatePersisted
	return nil
}

// Load reads a persisted batch back from disk
func Load(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Resource("opening batch file", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Resource("reading batch header", err)
	}
	defer zr.Close()

	var p payload
	if err := json.NewDecoder(zr).Decode(&p); err != nil {
		return nil, errors.Resource("decoding batch", err)
	}
	if len(p.Tuples) != p.Count {
		return nil, errors.Resource(fmt.Sprintf("batch %s truncated: %d of %d tuples", path, len(p.Tuples), p.Count), nil)
	}

	return &Batch{index: p.Index, tuples: p.Tuples, path: path, state: StateLoaded}, nil
}

// MarkEvaluated records that all of the batch's candidates were scored
func (b *Batch) MarkEvaluated() {
	b.state = StateEvaluated
}

// Discard removes the batch file. Discarding an already-absent file is
// not an error.
func (b *Batch) Discard() error {
	if b.path != "" {
		if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
			return errors.Resource("discarding batch file", err)
		}
	}
	b.tuples = nil
	b.state = StateDiscarded
	return nil
}
