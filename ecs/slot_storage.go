package ecs

import "iter"

const (
	slotBlockSize = 64
)

// slotStorage stores values of type T in fixed-size blocks. Values are only
// ever appended; Delete leaves a hole that Compact later squeezes out, so
// iteration order is insertion order.
type slotStorage[T any] struct {
	blocks    [][slotBlockSize]T
	filled    [][slotBlockSize]bool
	nextIndex int
	holes     int
}

// Append adds a value to storage and returns its index.
func (s *slotStorage[T]) Append(item T) int {
	index := s.nextIndex
	s.nextIndex++

	blockIdx := index / slotBlockSize
	slotIdx := index % slotBlockSize

	if blockIdx >= len(s.blocks) {
		s.blocks = append(s.blocks, [slotBlockSize]T{})
		s.filled = append(s.filled, [slotBlockSize]bool{})
	}

	s.blocks[blockIdx][slotIdx] = item
	s.filled[blockIdx][slotIdx] = true
	return index
}

// Get returns the value at the given index.
func (s *slotStorage[T]) Get(index int) (T, bool) {
	var zero T
	if !s.Has(index) {
		return zero, false
	}
	return s.blocks[index/slotBlockSize][index%slotBlockSize], true
}

// Delete marks a slot as empty.
func (s *slotStorage[T]) Delete(index int) {
	if !s.Has(index) {
		return
	}

	blockIdx := index / slotBlockSize
	slotIdx := index % slotBlockSize

	var zero T
	s.filled[blockIdx][slotIdx] = false
	s.blocks[blockIdx][slotIdx] = zero
	s.holes++
}

// Has checks if a value exists at the given index.
func (s *slotStorage[T]) Has(index int) bool {
	if index < 0 || index >= s.nextIndex {
		return false
	}
	return s.filled[index/slotBlockSize][index%slotBlockSize]
}

// Len returns the number of filled slots.
func (s *slotStorage[T]) Len() int {
	return s.nextIndex - s.holes
}

// Compact reorganizes storage to remove empty slots. It returns a mapping of
// old index to new index for every value that survived.
func (s *slotStorage[T]) Compact() map[int]int {
	indexMap := make(map[int]int)
	if s.holes == 0 {
		for i := 0; i < s.nextIndex; i++ {
			indexMap[i] = i
		}
		return indexMap
	}

	total := s.Len()
	if total == 0 {
		s.blocks = nil
		s.filled = nil
		s.nextIndex = 0
		s.holes = 0
		return indexMap
	}

	numBlocks := (total + slotBlockSize - 1) / slotBlockSize
	newBlocks := make([][slotBlockSize]T, numBlocks)
	newFilled := make([][slotBlockSize]bool, numBlocks)

	writePos := 0
	for readIdx := 0; readIdx < s.nextIndex; readIdx++ {
		readBlockIdx := readIdx / slotBlockSize
		readSlotIdx := readIdx % slotBlockSize

		if !s.filled[readBlockIdx][readSlotIdx] {
			continue
		}

		indexMap[readIdx] = writePos
		newBlocks[writePos/slotBlockSize][writePos%slotBlockSize] = s.blocks[readBlockIdx][readSlotIdx]
		newFilled[writePos/slotBlockSize][writePos%slotBlockSize] = true
		writePos++
	}

	s.blocks = newBlocks
	s.filled = newFilled
	s.nextIndex = writePos
	s.holes = 0

	return indexMap
}

// Iter yields the index of every filled slot. Values appended while iterating
// are not visited.
func (s *slotStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		end := s.nextIndex
		for i := 0; i < end; i++ {
			if !s.Has(i) {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
