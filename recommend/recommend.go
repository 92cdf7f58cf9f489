// Package recommend는 번호별 출현 빈도로 로또 조합을 추천합니다.
//
// 조합은 두 종류입니다.
//
//   - SelectLowest: 출현 빈도가 가장 낮은 6개 번호 (결정적)
//   - Sampler: 빈도가 낮을수록 가중치가 큰 비복원 가중 추출 (확률적)
package recommend

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"lottorecommender/stats"
)

// WeightedCount는 가중 추출로 만드는 추가 조합 수입니다
const WeightedCount = 9

// Combination은 오름차순으로 정렬된 6개 번호입니다
type Combination [stats.PickCount]int

func newCombination(numbers []int) Combination {
	var c Combination
	copy(c[:], numbers)
	slices.Sort(c[:])
	return c
}

// String은 "1, 2, 3, 4, 5, 6" 형식으로 변환합니다
func (c Combination) String() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

// Recommendation은 추천 결과 10세트입니다
type Recommendation struct {
	Lowest   Combination   // 가장 낮은 빈도 6개 숫자 조합
	Weighted []Combination // 가중 랜덤 조합
}

// All은 최저 빈도 조합을 맨 앞에 둔 전체 조합입니다
func (r Recommendation) All() []Combination {
	return append([]Combination{r.Lowest}, r.Weighted...)
}

// SelectLowest는 (빈도, 번호) 오름차순으로 앞의 6개 번호를 고릅니다
func SelectLowest(table stats.FrequencyTable) Combination {
	numbers := make([]int, 0, stats.MaxNumber)
	for n := stats.MinNumber; n <= stats.MaxNumber; n++ {
		numbers = append(numbers, n)
	}

	slices.SortStableFunc(numbers, func(a, b int) int {
		if d := table.Count(a) - table.Count(b); d != 0 {
			return d
		}
		return a - b
	})

	return newCombination(numbers[:stats.PickCount])
}

// Recommend는 최저 빈도 조합 1개와 가중 랜덤 조합 9개를 만듭니다
func Recommend(table stats.FrequencyTable, rng *rand.Rand) Recommendation {
	sampler := NewSampler(table, rng)

	rec := Recommendation{
		Lowest:   SelectLowest(table),
		Weighted: make([]Combination, 0, WeightedCount),
	}
	for range WeightedCount {
		rec.Weighted = append(rec.Weighted, sampler.SampleOne())
	}
	return rec
}

// NewRand는 seed가 0이 아니면 고정 시드로, 0이면 무작위 시드로 난수 생성기를 만듭니다
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
