package stats

// 로또 6/45 번호 범위
const (
	MinNumber = 1
	MaxNumber = 45
	PickCount = 6
)

// FrequencyTable은 번호(1~45)별 출현 횟수입니다.
// 번호 n의 횟수는 인덱스 n-1에 저장됩니다.
type FrequencyTable [MaxNumber]int

// Valid는 n이 1~45 범위인지 확인합니다
func Valid(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// Count는 번호 n의 출현 횟수를 반환합니다. 범위를 벗어나면 0입니다.
func (t *FrequencyTable) Count(n int) int {
	if !Valid(n) {
		return 0
	}
	return t[n-1]
}

// Record는 한 회차의 당첨번호를 반영하고 반영된 번호 개수를 반환합니다.
// 범위를 벗어난 번호는 무시합니다.
func (t *FrequencyTable) Record(numbers [PickCount]int) int {
	accepted := 0
	for _, n := range numbers {
		if !Valid(n) {
			continue
		}
		t[n-1]++
		accepted++
	}
	return accepted
}

// Max는 가장 큰 출현 횟수를 반환합니다
func (t *FrequencyTable) Max() int {
	maxFreq := 0
	for _, c := range t {
		if c > maxFreq {
			maxFreq = c
		}
	}
	return maxFreq
}

// Total은 전체 출현 횟수의 합입니다
func (t *FrequencyTable) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}
