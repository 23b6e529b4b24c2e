package life

import (
	"hash/fnv"

	"lifegrid/internal/core"
)

// History remembers grid fingerprints to detect when a run has settled into
// a still life or an oscillator.
type History struct {
	seen map[uint64]int
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{seen: map[uint64]int{}}
}

// Observe records the grid at generation gen. When the same grid was seen
// before it reports the cycle length.
func (h *History) Observe(gen int, cells []core.Cell) (period int, repeated bool) {
	fp := Fingerprint(cells)
	if prev, ok := h.seen[fp]; ok {
		return gen - prev, true
	}
	h.seen[fp] = gen
	return 0, false
}

// Fingerprint hashes a grid's cells.
func Fingerprint(cells []core.Cell) uint64 {
	h := fnv.New64a()
	buf := make([]byte, len(cells))
	for i, c := range cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return h.Sum64()
}
