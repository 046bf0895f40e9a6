package notes

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// TableSize covers MIDI notes 0 to 143.
const TableSize = 144

// Table holds precomputed note frequencies. It is never modified after
// construction.
type Table struct {
	mapper *Mapper
	freqs  [TableSize]float64
}

// NewTable precomputes the frequencies of every note for a mapper's tuning.
func NewTable(m *Mapper) *Table {
	if m == nil {
		m = defaultMapper
	}
	t := &Table{mapper: m}
	for i := range t.freqs {
		t.freqs[i] = m.Frequency(i)
	}
	return t
}

// StandardTable is the A4 = 440 Hz table.
var StandardTable = sync.OnceValue(func() *Table {
	return NewTable(defaultMapper)
})

// Frequency returns the tabulated frequency of a MIDI note.
func (t *Table) Frequency(midi int) (float64, bool) {
	if midi < 0 || midi >= TableSize {
		return 0, false
	}
	return t.freqs[midi], true
}

// Nearest looks up the note closest to freq. Frequencies more than half a
// semitone outside the table are an error.
func (t *Table) Nearest(freq float64) (Note, error) {
	if !validFrequency(freq) {
		return Note{}, fmt.Errorf("look up %v Hz: %w", freq, ErrInvalidFrequency)
	}

	i := sort.SearchFloat64s(t.freqs[:], freq)
	best := -1
	bestDist := math.Inf(1)
	for _, j := range []int{i - 1, i} {
		if j < 0 || j >= TableSize {
			continue
		}
		if d := math.Abs(math.Log2(freq / t.freqs[j])); d < bestDist {
			best, bestDist = j, d
		}
	}

	if bestDist > 1.0/24 {
		return Note{}, fmt.Errorf("%v Hz is outside the note table", freq)
	}
	return t.mapper.note(best, freq), nil
}
