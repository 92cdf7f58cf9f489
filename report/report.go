package report

import (
	"fmt"
	"strings"
	"time"

	"lottorecommender/lottery"
	"lottorecommender/recommend"
	"lottorecommender/stats"
)

const (
	banner = "==========================================="
	// DataSource는 요약에 표시되는 데이터 출처입니다
	DataSource = "동행복권 공식 API (실시간 fetch)"
)

// Summary는 수집 결과 요약입니다
type Summary struct {
	TotalDraws       int           // 처리된 총 회차 수
	TotalAppearances int           // 총 출현 횟수
	Elapsed          time.Duration // 수집에 걸린 시간
}

// Expected는 회차 수로 계산한 예상 출현 횟수입니다
func (s Summary) Expected() int {
	return s.TotalDraws * stats.PickCount
}

// NewSummary는 빈도표로 요약을 만듭니다
func NewSummary(table stats.FrequencyTable, totalDraws int, elapsed time.Duration) Summary {
	return Summary{
		TotalDraws:       totalDraws,
		TotalAppearances: table.Total(),
		Elapsed:          elapsed,
	}
}

// Format은 콘솔에 출력할 추천 결과를 만듭니다
func Format(rec recommend.Recommendation, sum Summary) string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString("로또 6/45 번호 추천 (낮은 출현 빈도 우선 가중 랜덤 조합 10세트):\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "조합 1 : %s (가장 낮은 빈도 6개 숫자 조합)\n", rec.Lowest)

	b.WriteString("\n추가 조합 ...\n")
	for i, combo := range rec.Weighted {
		fmt.Fprintf(&b, "조합 %d: %s\n", i+2, combo)
	}

	b.WriteString("\n" + banner + "\n")
	b.WriteString("              분석 결과 요약\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "처리된 총 회차 수: %s회\n", lottery.FormatNumber(sum.TotalDraws))
	fmt.Fprintf(&b, "총 출현 횟수 (검증, 예상: %s): %s\n",
		lottery.FormatNumber(sum.Expected()), lottery.FormatNumber(sum.TotalAppearances))
	fmt.Fprintf(&b, "수집 시간: %d초\n", int(sum.Elapsed.Seconds()))
	fmt.Fprintf(&b, "데이터 출처: %s\n", DataSource)
	b.WriteString(banner + "\n")

	return b.String()
}

// FormatTelegram은 텔레그램 HTML 메시지를 만듭니다
func FormatTelegram(rec recommend.Recommendation, sum Summary) string {
	var b strings.Builder

	b.WriteString("🎱 <b>로또 6/45 추천 번호</b>\n\n")
	fmt.Fprintf(&b, "1️⃣ <b>%s</b> (최저 빈도)\n", formatBalls(rec.Lowest))
	for i, combo := range rec.Weighted {
		fmt.Fprintf(&b, "%d. %s\n", i+2, formatBalls(combo))
	}

	b.WriteString("\n━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "📊 분석 회차: %s회\n", lottery.FormatNumber(sum.TotalDraws))
	fmt.Fprintf(&b, "🔢 총 출현 횟수: %s (예상 %s)\n",
		lottery.FormatNumber(sum.TotalAppearances), lottery.FormatNumber(sum.Expected()))

	return b.String()
}

func formatBalls(c recommend.Combination) string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, ", ")
}
