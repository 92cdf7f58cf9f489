package recommend

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottorecommender/stats"
)

func tableFrom(counts map[int]int, fill int) stats.FrequencyTable {
	var table stats.FrequencyTable
	for n := stats.MinNumber; n <= stats.MaxNumber; n++ {
		table[n-1] = fill
	}
	for n, c := range counts {
		table[n-1] = c
	}
	return table
}

func assertValidCombination(t *testing.T, c Combination) {
	t.Helper()
	assert.True(t, slices.IsSorted(c[:]), "not sorted: %v", c)
	for i, n := range c {
		assert.True(t, stats.Valid(n), "out of range: %v", c)
		if i > 0 {
			assert.NotEqual(t, c[i-1], n, "duplicate number: %v", c)
		}
	}
}

func TestSelectLowest(t *testing.T) {
	table := tableFrom(map[int]int{
		44: 1,
		3:  2,
		17: 2,
		9:  3,
		30: 3,
		41: 3,
		2:  4,
	}, 10)

	got := SelectLowest(table)

	// 9, 30, 41 중 빈도가 같으면 번호가 작은 쪽이 먼저
	assert.Equal(t, Combination{3, 9, 17, 30, 41, 44}, got)
	assertValidCombination(t, got)
}

func TestSelectLowest_TieBreakByNumber(t *testing.T) {
	table := tableFrom(map[int]int{40: 0, 41: 0, 42: 0, 43: 0, 44: 0, 45: 0, 1: 0}, 5)

	assert.Equal(t, Combination{1, 40, 41, 42, 43, 44}, SelectLowest(table))
}

func TestSelectLowest_ZeroDraws(t *testing.T) {
	var table stats.FrequencyTable

	assert.Equal(t, Combination{1, 2, 3, 4, 5, 6}, SelectLowest(table))
}

func TestSelectLowest_Idempotent(t *testing.T) {
	table := tableFrom(map[int]int{5: 1, 6: 1, 7: 2, 8: 0}, 3)

	first := SelectLowest(table)
	second := SelectLowest(table)
	assert.Equal(t, first, second)
}

func TestRecommend(t *testing.T) {
	table := tableFrom(map[int]int{1: 0, 2: 1, 3: 2}, 8)

	rec := Recommend(table, NewRand(42))

	assert.Equal(t, SelectLowest(table), rec.Lowest)
	require.Len(t, rec.Weighted, WeightedCount)
	for _, c := range rec.Weighted {
		assertValidCombination(t, c)
	}

	all := rec.All()
	require.Len(t, all, WeightedCount+1)
	assert.Equal(t, rec.Lowest, all[0])
}

func TestRecommend_FixedSeedIsReproducible(t *testing.T) {
	table := tableFrom(map[int]int{10: 2, 20: 4}, 6)

	a := Recommend(table, NewRand(7))
	b := Recommend(table, NewRand(7))
	assert.Equal(t, a, b)
}

func TestCombination_String(t *testing.T) {
	c := Combination{3, 9, 17, 30, 41, 44}
	assert.Equal(t, "3, 9, 17, 30, 41, 44", c.String())
}
