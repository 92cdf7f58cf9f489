package recommend

import (
	"math/rand/v2"

	"lottorecommender/stats"
)

type entry struct {
	number int
	weight int
}

// Sampler는 출현 빈도가 낮은 번호를 우선하는 비복원 가중 추출기입니다.
// 번호 n의 가중치는 maxFreq - freq(n) + 1 이므로 항상 1 이상입니다.
type Sampler struct {
	rng  *rand.Rand
	base []entry
}

// NewSampler는 빈도표로 기본 가중치를 계산합니다. rng는 모든 추출에서 공유됩니다.
func NewSampler(table stats.FrequencyTable, rng *rand.Rand) *Sampler {
	maxFreq := table.Max()

	base := make([]entry, 0, stats.MaxNumber)
	for n := stats.MinNumber; n <= stats.MaxNumber; n++ {
		base = append(base, entry{number: n, weight: maxFreq - table.Count(n) + 1})
	}

	return &Sampler{rng: rng, base: base}
}

// Weight는 번호 n의 기본 가중치입니다
func (s *Sampler) Weight(n int) int {
	if !stats.Valid(n) {
		return 0
	}
	return s.base[n-1].weight
}

// SampleOne은 조합 하나를 뽑습니다.
// 뽑힌 번호는 풀에서 제거되므로 같은 조합 안에서 중복되지 않습니다.
func (s *Sampler) SampleOne() Combination {
	pool := make([]entry, len(s.base))
	copy(pool, s.base)

	total := 0
	for _, e := range pool {
		total += e.weight
	}

	picked := make([]int, 0, stats.PickCount)
	for range stats.PickCount {
		idx := pick(pool, s.rng.IntN(total))

		picked = append(picked, pool[idx].number)
		total -= pool[idx].weight

		// 마지막 항목과 바꾸고 길이를 줄여 제거
		last := len(pool) - 1
		pool[idx] = pool[last]
		pool = pool[:last]
	}

	return newCombination(picked)
}

// pick은 누적 가중치가 r을 넘는 첫 항목의 인덱스를 반환합니다. r은 [0, 총 가중치) 범위입니다.
func pick(pool []entry, r int) int {
	for i, e := range pool {
		if r < e.weight {
			return i
		}
		r -= e.weight
	}
	return len(pool) - 1
}
