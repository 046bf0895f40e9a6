package acoustic

import (
	"math"
	"sync"
)

type tableKey struct {
	lengthCM   int
	soundSpeed int
}

// FrequencyTable holds precomputed quarter-wave frequencies keyed by
// acoustic length in whole centimeters and sound speed in whole m/s. It is
// built once and never modified, so it can be shared freely.
type FrequencyTable struct {
	entries map[tableKey]float64
}

// NewFrequencyTable tabulates c/(4L) for every length in [minCM, maxCM]
// and every listed sound speed.
func NewFrequencyTable(minCM, maxCM int, soundSpeeds []int) *FrequencyTable {
	t := &FrequencyTable{entries: make(map[tableKey]float64)}
	for l := max(minCM, 1); l <= maxCM; l++ {
		for _, c := range soundSpeeds {
			t.entries[tableKey{lengthCM: l, soundSpeed: c}] = float64(c) / (4 * float64(l) / 100)
		}
	}
	return t
}

// StandardFrequencyTable covers 50-400 cm at sound speeds 331-349 m/s
// (roughly 0-30 °C).
var StandardFrequencyTable = sync.OnceValue(func() *FrequencyTable {
	speeds := make([]int, 0, 19)
	for c := 331; c <= 349; c++ {
		speeds = append(speeds, c)
	}
	return NewFrequencyTable(50, 400, speeds)
})

// Lookup returns the tabulated quarter-wave frequency for an acoustic
// length (m) and sound speed (m/s), both rounded to the table's grid.
func (t *FrequencyTable) Lookup(length, soundSpeed float64) (float64, bool) {
	if t == nil {
		return 0, false
	}
	key := tableKey{
		lengthCM:   int(math.Round(length * 100)),
		soundSpeed: int(math.Round(soundSpeed)),
	}
	f, ok := t.entries[key]
	return f, ok
}

// Len returns the number of entries.
func (t *FrequencyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
