// Package notes maps frequencies to equal-tempered pitches.
package notes

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-didge/algorithms/common"
)

// ReferencePitch is concert A4 in Hz.
const ReferencePitch = 440.0

const referenceMIDI = 69

// Names are the twelve pitch classes, starting at A.
var Names = [12]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// ErrInvalidFrequency is returned for zero, negative or non-finite input.
var ErrInvalidFrequency = errors.New("frequency must be positive and finite")

// Note is the equal-tempered pitch nearest to a frequency.
type Note struct {
	Name      string  `json:"note"`
	Octave    int     `json:"octave"`    // counted from A: A4 through G#5 share octave 4
	CentDiff  float64 `json:"cent_diff"` // signed, rounded to 0.1 cent
	MIDI      int     `json:"midi"`
	Frequency float64 `json:"frequency"` // exact pitch of the note (Hz)
}

// String returns the note name and octave, e.g. "A#4".
func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}

// Mapper converts frequencies to notes relative to a tuning reference for A4.
type Mapper struct {
	reference float64
}

var defaultMapper = &Mapper{reference: ReferencePitch}

// DefaultMapper returns a mapper tuned to A4 = 440 Hz.
func DefaultMapper() *Mapper {
	return defaultMapper
}

// NewMapper creates a mapper with A4 at reference Hz.
func NewMapper(reference float64) (*Mapper, error) {
	if !validFrequency(reference) {
		return nil, fmt.Errorf("reference pitch %v: %w", reference, ErrInvalidFrequency)
	}
	return &Mapper{reference: reference}, nil
}

// Reference returns the tuning of A4 in Hz.
func (m *Mapper) Reference() float64 {
	return m.reference
}

// Frequency returns the exact frequency of a MIDI note number.
func (m *Mapper) Frequency(midi int) float64 {
	return m.reference * math.Exp2(float64(midi-referenceMIDI)/12)
}

// Note returns the nearest note to freq.
func (m *Mapper) Note(freq float64) (Note, error) {
	if !validFrequency(freq) {
		return Note{}, fmt.Errorf("map %v Hz to note: %w", freq, ErrInvalidFrequency)
	}

	semitones := int(math.Round(12 * math.Log2(freq/m.reference)))
	return m.note(referenceMIDI+semitones, freq), nil
}

func (m *Mapper) note(midi int, freq float64) Note {
	exact := m.Frequency(midi)
	return Note{
		Name:      pitchClass(midi),
		Octave:    octave(midi),
		CentDiff:  cents(freq, exact),
		MIDI:      midi,
		Frequency: exact,
	}
}

// FrequencyToNote maps freq to the nearest note with A4 = 440 Hz.
func FrequencyToNote(freq float64) (Note, error) {
	return defaultMapper.Note(freq)
}

func pitchClass(midi int) string {
	i := (midi - referenceMIDI) % 12
	if i < 0 {
		i += 12
	}
	return Names[i]
}

// octave counts whole octaves from A4, so each octave begins at A.
func octave(midi int) int {
	return int(math.Floor(float64(midi-referenceMIDI)/12)) + 4
}

func cents(freq, exact float64) float64 {
	c := common.RoundTo(1200*math.Log2(freq/exact), 1)
	if c == 0 {
		return 0 // drop negative zero
	}
	return c
}

func validFrequency(f float64) bool {
	return f > 0 && common.IsFinite(f)
}
