package tasks

import (
	"context"
	"fmt"
	"io"
	"time"

	"lottorecommender/config"
	"lottorecommender/logger"
	"lottorecommender/lottery"
	"lottorecommender/recommend"
	"lottorecommender/report"
	"lottorecommender/stats"
	"lottorecommender/telegram"
)

// NewSource는 설정에 맞는 당첨번호 소스를 생성합니다
func NewSource(cfg config.Config) (lottery.Source, error) {
	opts := lottery.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
	}

	switch cfg.API.Source {
	case config.SourceHTML:
		return lottery.NewHTMLClient(opts)
	case config.SourceJSON:
		return lottery.NewClient(opts)
	default:
		return nil, fmt.Errorf("알 수 없는 데이터 소스입니다: %q", cfg.API.Source)
	}
}

// NewBot은 텔레그램 설정이 있으면 봇을 생성합니다
func NewBot(cfg config.Config) *telegram.Bot {
	if !cfg.TelegramEnabled() {
		logger.Println("⚠️  텔레그램 설정이 없습니다. 알림은 전송되지 않습니다.")
		return nil
	}
	logger.Println("✅ 텔레그램 봇 초기화 완료")
	return telegram.New(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
}

// Recommend는 당첨번호를 수집해 추천 조합 10세트를 만들고 out에 출력합니다.
// 수집이 중간에 실패해도 그때까지의 데이터로 추천합니다.
func Recommend(ctx context.Context, cfg config.Config, source lottery.Source, bot *telegram.Bot, out io.Writer) (recommend.Recommendation, report.Summary) {
	logger.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Println("       🎱 로또 6/45 번호 추천 작업")
	logger.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Println("동행복권 공식 API에서 데이터를 가져오는 중입니다...")
	logger.Println("네트워크 상태에 따라 시간이 걸릴 수 있습니다.")

	start := time.Now()
	table, totalDraws := stats.NewCollector(source).Collect(ctx)
	elapsed := time.Since(start)

	logger.Info().
		Int("draws", totalDraws).
		Str("elapsed", elapsed.Round(time.Second).String()).
		Msg("✅ 데이터 수집 완료!")
	logger.Println("번호별 출현 빈도를 분석 중입니다...")

	rec := recommend.Recommend(table, recommend.NewRand(cfg.Recommend.Seed))
	sum := report.NewSummary(table, totalDraws, elapsed)

	if sum.TotalAppearances != sum.Expected() {
		logger.Warn().
			Int("total", sum.TotalAppearances).
			Int("expected", sum.Expected()).
			Msg("⚠️  총 출현 횟수가 예상과 다릅니다 (범위를 벗어난 번호 무시)")
	}

	logger.Println("분석 완료! 추천 번호 조합을 생성했습니다.")
	fmt.Fprint(out, report.Format(rec, sum))

	if bot != nil {
		bot.SendMessageSafe(ctx, report.FormatTelegram(rec, sum))
	}

	return rec, sum
}

// ShowDraw는 한 회차의 당첨번호를 조회해 out에 출력합니다
func ShowDraw(ctx context.Context, source lottery.Source, round int, out io.Writer) error {
	logger.Info().Int("round", round).Msg("=== 당첨번호 조회 ===")

	draw, err := source.FetchDraw(ctx, round)
	if err != nil {
		return fmt.Errorf("%d회 당첨번호 조회 실패: %w", round, err)
	}

	fmt.Fprintf(out, "회차: %d회\n", draw.Round)
	fmt.Fprintf(out, "추첨일: %s\n", draw.DrawDate)
	fmt.Fprintf(out, "당첨번호: %v\n", draw.Numbers)
	fmt.Fprintf(out, "보너스번호: %d\n", draw.BonusNumber)
	return nil
}
