// Package trainer implements the drilling core: per-term mastery tracking,
// weighted card selection per practice mode, and the question lifecycle.
package trainer

import "time"

const (
	// MinBox is the box of unknown or just-failed terms.
	MinBox = 0
	// MaxBox is the best-known box.
	MaxBox = 4
)

// Record tracks how well a single term is known. Box moves one step up on
// a correct grading and one step down on a terminal failure, clamped to
// [MinBox, MaxBox]. Records are keyed by term and shared across levels and
// categories that reuse the same term.
type Record struct {
	Box         int       `yaml:"box" db:"box"`
	Seen        int       `yaml:"seen" db:"seen"`
	LastUpdated time.Time `yaml:"last_updated,omitempty" db:"last_updated"`
}

// MasteryStore holds the mastery records for one user session. The zero
// record (box 0, never seen) is returned for unknown terms; records are
// created lazily on first grading and never deleted.
type MasteryStore struct {
	records map[string]Record
	now     func() time.Time
}

// NewMasteryStore creates an empty store.
func NewMasteryStore() *MasteryStore {
	return &MasteryStore{
		records: make(map[string]Record),
		now:     time.Now,
	}
}

// Get returns the record for a term, defaulting to box 0.
func (s *MasteryStore) Get(term string) Record {
	return s.records[term]
}

// Grade applies one graded attempt. All box clamping happens here so
// callers never need to re-check bounds.
func (s *MasteryStore) Grade(term string, correct bool) Record {
	record := s.records[term]
	if correct {
		if record.Box < MaxBox {
			record.Box++
		}
	} else if record.Box > MinBox {
		record.Box--
	}
	record.Seen++
	record.LastUpdated = s.now()
	s.records[term] = record
	return record
}

// Weight returns the selection weight for a term: max(1, 5-box). Lower
// mastery means a higher weight, and the floor of 1 keeps fully mastered
// terms eligible until a done-set removes them.
func (s *MasteryStore) Weight(term string) int {
	weight := MaxBox + 1 - s.records[term].Box
	if weight < 1 {
		weight = 1
	}
	return weight
}

// Len returns the number of graded terms.
func (s *MasteryStore) Len() int {
	return len(s.records)
}

// Snapshot returns a copy of all records.
func (s *MasteryStore) Snapshot() map[string]Record {
	out := make(map[string]Record, len(s.records))
	for term, record := range s.records {
		out[term] = record
	}
	return out
}

// Restore replaces the store contents, clamping out-of-range boxes coming
// from external storage.
func (s *MasteryStore) Restore(records map[string]Record) {
	s.records = make(map[string]Record, len(records))
	for term, record := range records {
		if record.Box < MinBox {
			record.Box = MinBox
		}
		if record.Box > MaxBox {
			record.Box = MaxBox
		}
		s.records[term] = record
	}
}
