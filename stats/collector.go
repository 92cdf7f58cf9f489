package stats

import (
	"context"
	"errors"
	"iter"

	"lottorecommender/logger"
	"lottorecommender/lottery"
)

// Collector는 1회차부터 순서대로 당첨번호를 가져와 출현 빈도를 집계합니다
type Collector struct {
	source  lottery.Source
	stopErr error
}

// NewCollector는 source에서 당첨번호를 읽는 Collector를 생성합니다
func NewCollector(source lottery.Source) *Collector {
	return &Collector{source: source}
}

// Draws는 1회차부터 당첨번호를 하나씩 가져오는 시퀀스입니다.
// 첫 번째 실패에서 끝나며, 실패 원인은 Err로 확인합니다.
func (c *Collector) Draws(ctx context.Context) iter.Seq[*lottery.Draw] {
	return func(yield func(*lottery.Draw) bool) {
		c.stopErr = nil
		for round := 1; ; round++ {
			if err := ctx.Err(); err != nil {
				c.stopErr = err
				return
			}

			draw, err := c.source.FetchDraw(ctx, round)
			if err != nil {
				c.stopErr = err
				return
			}

			if !yield(draw) {
				return
			}
		}
	}
}

// Err는 마지막 수집이 멈춘 원인입니다. 끝까지 읽었다면 ErrNoSuchDraw를 감싼 에러입니다.
func (c *Collector) Err() error {
	return c.stopErr
}

// Collect는 더 이상 회차가 없을 때까지 수집하고 빈도표와 처리한 회차 수를 반환합니다.
// 네트워크 오류도 데이터 끝으로 취급하며 에러를 반환하지 않습니다.
func (c *Collector) Collect(ctx context.Context) (FrequencyTable, int) {
	var table FrequencyTable
	totalDraws := 0

	for draw := range c.Draws(ctx) {
		if accepted := table.Record(draw.Numbers); accepted != PickCount {
			logger.Warn().
				Int("round", draw.Round).
				Ints("numbers", draw.Numbers[:]).
				Msg("⚠️  범위를 벗어난 번호를 무시했습니다")
		}
		totalDraws++

		// 처음 몇 회차는 바로 표시하여 동작 중임을 알림
		switch {
		case draw.Round%50 == 0:
			logger.Info().Int("round", draw.Round).Msg("진행중... 회차까지 분석 완료")
		case draw.Round <= 5:
			logger.Info().Int("round", draw.Round).Msg("회차 데이터 수신...")
		}
	}

	switch err := c.Err(); {
	case errors.Is(err, lottery.ErrNoSuchDraw):
		logger.Info().Int("draws", totalDraws).Msg("✅ 마지막 회차까지 수집 완료")
	case err != nil:
		logger.Warn().Err(err).Int("draws", totalDraws).Msg("⚠️  수집 중단, 지금까지의 데이터로 진행합니다")
	}

	return table, totalDraws
}
