// Package logring keeps the most recent log lines in memory.
//
// The terminal target owns the screen while a game runs, so log output is
// written into a Ring instead of stderr and shown or dumped on demand.
package logring

import (
	"bytes"
	"io"
	"sync"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 64

// Ring is a fixed-capacity buffer of text lines. When full, the oldest line
// is dropped. It is safe for concurrent use and implements io.Writer, so it
// can back a charmbracelet/log logger.
type Ring struct {
	mu      sync.Mutex
	lines   []string
	head    int    // index of the oldest line
	n       int    // number of lines held
	dropped int    // lines discarded on overflow
	partial []byte // trailing text without a newline yet
}

// New creates a ring holding up to capacity lines.
func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{lines: make([]string, capacity)}
}

// Write appends p, splitting it into lines. Text after the last newline is
// held until a later write completes it.
func (r *Ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := p
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			r.partial = append(r.partial, data...)
			break
		}
		line := string(append(r.partial, data[:i]...))
		r.partial = r.partial[:0]
		r.pushLocked(line)
		data = data[i+1:]
	}
	return len(p), nil
}

// Add appends a single line.
func (r *Ring) Add(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pushLocked(line)
}

func (r *Ring) pushLocked(line string) {
	if r.n < len(r.lines) {
		r.lines[(r.head+r.n)%len(r.lines)] = line
		r.n++
		return
	}
	r.lines[r.head] = line
	r.head = (r.head + 1) % len(r.lines)
	r.dropped++
}

// Len returns the number of lines held.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// Cap returns the maximum number of lines held.
func (r *Ring) Cap() int {
	return len(r.lines)
}

// Dropped returns how many lines were discarded because the ring was full.
func (r *Ring) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Lines returns every held line, oldest first.
func (r *Ring) Lines() []string {
	return r.Tail(-1)
}

// Tail returns up to n of the newest lines, oldest first.
// A negative n returns all lines.
func (r *Ring) Tail(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n < 0 || n > r.n {
		n = r.n
	}
	out := make([]string, n)
	skip := r.n - n
	for i := range out {
		out[i] = r.lines[(r.head+skip+i)%len(r.lines)]
	}
	return out
}

// Dump writes every held line to w, followed by any unterminated text,
// and empties the ring.
func (r *Ring) Dump(w io.Writer) error {
	r.mu.Lock()
	lines := make([]string, 0, r.n+1)
	for i := 0; i < r.n; i++ {
		lines = append(lines, r.lines[(r.head+i)%len(r.lines)])
	}
	if len(r.partial) > 0 {
		lines = append(lines, string(r.partial))
	}
	r.head, r.n, r.partial = 0, 0, r.partial[:0]
	r.mu.Unlock()

	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
