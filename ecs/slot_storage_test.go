package ecs

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotStorage(t *testing.T) {
	var s slotStorage[string]

	for _, v := range []string{"a", "b", "c", "d"} {
		s.Append(v)
	}

	assert.Equal(t, 4, s.Len())
	v, ok := s.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = s.Get(4)
	assert.False(t, ok)
	_, ok = s.Get(-1)
	assert.False(t, ok)

	s.Delete(1)
	s.Delete(1)
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Has(1))
	assert.Equal(t, []int{0, 2, 3}, slices.Collect(s.Iter()))

	indexMap := s.Compact()
	assert.Equal(t, map[int]int{0: 0, 2: 1, 3: 2}, indexMap)
	assert.Equal(t, 3, s.Len())

	var values []string
	for i := range s.Iter() {
		v, _ := s.Get(i)
		values = append(values, v)
	}
	assert.Equal(t, []string{"a", "c", "d"}, values)
}

func TestSlotStorageSpansBlocks(t *testing.T) {
	var s slotStorage[int]
	for i := 0; i < slotBlockSize*3+5; i++ {
		assert.Equal(t, i, s.Append(i))
	}

	for i := 0; i < slotBlockSize*2; i++ {
		s.Delete(i)
	}

	indexMap := s.Compact()
	assert.Len(t, indexMap, slotBlockSize+5)
	assert.Equal(t, 0, indexMap[slotBlockSize*2])

	v, ok := s.Get(0)
	assert.True(t, ok)
	assert.Equal(t, slotBlockSize*2, v)
	assert.Len(t, s.blocks, 2)
}

func TestSlotStorageCompactEmpty(t *testing.T) {
	var s slotStorage[int]
	s.Append(1)
	s.Delete(0)

	assert.Empty(t, s.Compact())
	assert.Zero(t, s.Len())
	assert.Equal(t, 0, s.Append(7))
}

func TestSlotStorageIterStopsEarly(t *testing.T) {
	var s slotStorage[int]
	for i := 0; i < 10; i++ {
		s.Append(i)
	}

	count := 0
	for range s.Iter() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}
