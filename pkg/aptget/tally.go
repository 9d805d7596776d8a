package aptget

import "github.com/arthur-debert/dotapt/pkg/types"

// Tally counts packages per outcome, remembering the order in which
// outcomes were first seen
type Tally struct {
	order  []Outcome
	counts map[Outcome]int
}

// NewTally creates an empty tally
func NewTally() *Tally {
	return &Tally{counts: make(map[Outcome]int)}
}

// Add records one more package with outcome o
func (t *Tally) Add(o Outcome) {
	if _, seen := t.counts[o]; !seen {
		t.order = append(t.order, o)
	}
	t.counts[o]++
}

// Count returns how many packages ended with o
func (t *Tally) Count(o Outcome) int {
	return t.counts[o]
}

// Outcomes returns the distinct outcomes seen, in first-seen order
func (t *Tally) Outcomes() []Outcome {
	out := make([]Outcome, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of distinct outcomes seen
func (t *Tally) Len() int {
	return len(t.order)
}

// AllSuccessful is true when every distinct outcome seen is in the success
// set. An empty tally is vacuously successful.
func (t *Tally) AllSuccessful() bool {
	for _, o := range t.order {
		if !o.Successful() {
			return false
		}
	}
	return true
}

// Entries converts the tally into report lines
func (t *Tally) Entries() []types.TallyEntry {
	entries := make([]types.TallyEntry, 0, len(t.order))
	for _, o := range t.order {
		entries = append(entries, types.TallyEntry{
			Outcome: o.Label(),
			Count:   t.counts[o],
			Success: o.Successful(),
		})
	}
	return entries
}
