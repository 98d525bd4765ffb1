package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierAssignments_BestTierWins(t *testing.T) {
	tags := make(TierAssignments)

	tags.Assign(1, Tier3)
	tags.Assign(1, Tier1)
	assert.Equal(t, Tier1, tags[1])

	// A worse tier never regresses an existing assignment.
	tags.Assign(1, Tier2)
	assert.Equal(t, Tier1, tags[1])

	// TierNone is a no-op.
	tags.Assign(2, TierNone)
	_, ok := tags[2]
	assert.False(t, ok)
}

func TestTierAssignments_MergeCommutative(t *testing.T) {
	a := TierAssignments{1: Tier1, 2: Tier3}
	b := TierAssignments{2: Tier2, 3: Tier3}

	left := TierAssignments{}
	left.Merge(a)
	left.Merge(b)

	right := TierAssignments{}
	right.Merge(b)
	right.Merge(a)

	assert.Equal(t, left, right)
	assert.Equal(t, Tier1, left[1])
	assert.Equal(t, Tier2, left[2])
	assert.Equal(t, Tier3, left[3])

	// Idempotent: merging the same accumulator twice changes nothing.
	before := len(left)
	left.Merge(a)
	assert.Equal(t, before, len(left))
}

func TestCostTierLabels(t *testing.T) {
	assert.Equal(t, "Tier_1", Tier1.Label())
	assert.Equal(t, "Tier_2", Tier2.Label())
	assert.Equal(t, "Tier_3", Tier3.Label())
	assert.Equal(t, "", TierNone.Label())
}
