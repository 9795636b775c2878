package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/cascadeiir/internal/block"
)

func TestInterBlockBufferFlushesFullGroup(t *testing.T) {
	b := NewInterBlockBuffer[float64](4)
	for tag := 0; tag < 3; tag++ {
		groups := b.Push(block.New[float64](tag, 4))
		assert.Emptyf(t, groups, "tag %d: before the group fills", tag)
	}
	groups := b.Push(block.New[float64](3, 4))
	if assert.Len(t, groups, 1) {
		assert.Len(t, groups[0], 4)
	}
}

func TestInterBlockBufferDrainFlushesDescendingBrackets(t *testing.T) {
	b := NewInterBlockBuffer[float64](8)
	// 5 blocks total, none filling the M=8 group: Drain must drain as
	// 4 + 1, the largest brackets that fit 5.
	var allGroups [][]block.DataBlock[float64]
	for tag := 0; tag < 5; tag++ {
		allGroups = append(allGroups, b.Push(block.New[float64](tag, 8))...)
	}
	allGroups = append(allGroups, b.Drain()...)

	if assert.Len(t, allGroups, 2) {
		assert.Len(t, allGroups[0], 4)
		assert.Len(t, allGroups[1], 1)
	}
}

func TestInterBlockBufferDrainIsNoopWhenEmpty(t *testing.T) {
	b := NewInterBlockBuffer[float64](4)
	assert.Empty(t, b.Drain())
}
