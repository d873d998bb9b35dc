package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/matrix-arcade/internal/core"
)

// Journal records one live session. It buffers ticks and writes them in
// batches; Close flushes the rest and stores the final state.
type Journal struct {
	store      *Store
	id         int64
	flushEvery int
	buf        []TickRecord
	ticks      uint64
}

// NewJournal creates a session row and returns a journal for it.
// flushEvery is the number of ticks buffered per write; values below one
// write every tick.
func (s *Store) NewJournal(m Meta, flushEvery int) (*Journal, error) {
	id, err := s.CreateSession(m)
	if err != nil {
		return nil, err
	}
	if flushEvery < 1 {
		flushEvery = 1
	}
	return &Journal{
		store:      s,
		id:         id,
		flushEvery: flushEvery,
		buf:        make([]TickRecord, 0, flushEvery),
	}, nil
}

// ID returns the session id.
func (j *Journal) ID() int64 { return j.id }

// Record buffers one tick and flushes when the buffer is full.
func (j *Journal) Record(tick uint64, elapsed time.Duration, raw core.Buttons) error {
	j.buf = append(j.buf, TickRecord{Tick: tick, Elapsed: elapsed, Buttons: raw})
	j.ticks = tick
	if len(j.buf) >= j.flushEvery {
		return j.Flush()
	}
	return nil
}

// Flush writes buffered ticks.
func (j *Journal) Flush() error {
	if len(j.buf) == 0 {
		return nil
	}
	if err := j.store.AppendTicks(j.id, j.buf); err != nil {
		return fmt.Errorf("storage: journal %d: %w", j.id, err)
	}
	j.buf = j.buf[:0]
	return nil
}

// Close flushes remaining ticks and marks the session finished with state.
func (j *Journal) Close(state core.GameState) error {
	if err := j.Flush(); err != nil {
		return err
	}
	return j.store.FinishSession(j.id, j.ticks, state.String())
}
