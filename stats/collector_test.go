package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottorecommender/logger"
	"lottorecommender/lottery"
)

// fakeSource는 1..len(draws) 회차를 돌려주고 그 다음은 failErr로 실패합니다
type fakeSource struct {
	draws   [][PickCount]int
	failErr error
	calls   []int
}

func (f *fakeSource) FetchDraw(_ context.Context, round int) (*lottery.Draw, error) {
	f.calls = append(f.calls, round)
	if round > len(f.draws) {
		return nil, f.failErr
	}
	return &lottery.Draw{Round: round, Numbers: f.draws[round-1]}, nil
}

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	m.Run()
}

func sequentialDraws(n int) [][PickCount]int {
	draws := make([][PickCount]int, n)
	for i := range draws {
		for j := range PickCount {
			draws[i][j] = (i*PickCount+j)%MaxNumber + 1
		}
	}
	return draws
}

func TestCollector_StopsAtEndOfData(t *testing.T) {
	src := &fakeSource{
		draws:   sequentialDraws(120),
		failErr: fmt.Errorf("121회: %w", lottery.ErrNoSuchDraw),
	}
	c := NewCollector(src)

	table, total := c.Collect(context.Background())

	assert.Equal(t, 120, total)
	assert.Equal(t, 6*120, table.Total())
	assert.ErrorIs(t, c.Err(), lottery.ErrNoSuchDraw)

	// 1부터 순서대로, 건너뛰지 않고 요청
	require.Len(t, src.calls, 121)
	for i, round := range src.calls {
		assert.Equal(t, i+1, round)
	}
}

func TestCollector_TransportFailureEndsCollection(t *testing.T) {
	src := &fakeSource{
		draws:   sequentialDraws(3),
		failErr: errors.New("connection reset by peer"),
	}
	c := NewCollector(src)

	table, total := c.Collect(context.Background())

	assert.Equal(t, 3, total)
	assert.Equal(t, 18, table.Total())
	assert.EqualError(t, c.Err(), "connection reset by peer")
}

func TestCollector_ZeroDraws(t *testing.T) {
	src := &fakeSource{failErr: lottery.ErrNoSuchDraw}

	table, total := NewCollector(src).Collect(context.Background())

	assert.Equal(t, 0, total)
	assert.Equal(t, FrequencyTable{}, table)
	assert.Equal(t, []int{1}, src.calls)
}

func TestCollector_ParseAnomalyStillCountsDraw(t *testing.T) {
	src := &fakeSource{
		draws: [][PickCount]int{
			{1, 2, 3, 4, 5, 6},
			{1, 2, 3, 4, 5, 99},
		},
		failErr: lottery.ErrNoSuchDraw,
	}

	table, total := NewCollector(src).Collect(context.Background())

	assert.Equal(t, 2, total)
	assert.Equal(t, 11, table.Total())
	assert.Equal(t, 2, table.Count(1))
	assert.Equal(t, 1, table.Count(6))
}

func TestCollector_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{draws: sequentialDraws(10), failErr: lottery.ErrNoSuchDraw}
	c := NewCollector(src)

	_, total := c.Collect(ctx)

	assert.Equal(t, 0, total)
	assert.Empty(t, src.calls)
	assert.ErrorIs(t, c.Err(), context.Canceled)
}

func TestCollector_DrawsStopsWhenConsumerBreaks(t *testing.T) {
	src := &fakeSource{draws: sequentialDraws(10), failErr: lottery.ErrNoSuchDraw}
	c := NewCollector(src)

	var rounds []int
	for draw := range c.Draws(context.Background()) {
		rounds = append(rounds, draw.Round)
		if len(rounds) == 4 {
			break
		}
	}

	assert.Equal(t, []int{1, 2, 3, 4}, rounds)
	assert.Len(t, src.calls, 4)
	assert.NoError(t, c.Err())
}
