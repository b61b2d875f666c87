package ecs

// Sequence hands out strictly increasing identifiers. Zero is never issued.
//
// A Sequence is owned by whoever created it; independent engines only share
// ids when the same Sequence is passed to both.
type Sequence struct {
	last uint64
}

// NewSequence creates a sequence whose first issued id is seed+1.
func NewSequence(seed uint64) *Sequence {
	return &Sequence{last: seed}
}

// Next issues the next id.
func (s *Sequence) Next() uint64 {
	s.last++
	return s.last
}

// Last returns the most recently issued id, or the seed if none was issued.
func (s *Sequence) Last() uint64 {
	return s.last
}

// Observe moves the sequence past id so it is never issued later. Ids at or
// below the last issued one are ignored.
func (s *Sequence) Observe(id uint64) {
	if id > s.last {
		s.last = id
	}
}
