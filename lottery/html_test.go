package lottery

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const byWinPage = `<!DOCTYPE html>
<html lang="ko">
<body>
<div class="content_wrap">
  <div class="win_result">
    <h4><strong>%d회</strong> 당첨결과</h4>
    <p class="desc">(2023년 12월 30일 추첨)</p>
    <div class="nums">
      <div class="num win">
        <strong>당첨번호</strong>
        <p>
          <span class="ball_645 lrg ball1">%s</span>
          <span class="ball_645 lrg ball2">13</span>
          <span class="ball_645 lrg ball2">17</span>
          <span class="ball_645 lrg ball3">26</span>
          <span class="ball_645 lrg ball4">34</span>
          <span class="ball_645 lrg ball5">42</span>
        </p>
      </div>
      <div class="num bonus">
        <strong>보너스</strong>
        <p><span class="ball_645 lrg ball1">8</span></p>
      </div>
    </div>
  </div>
</div>
</body>
</html>`

func newTestHTMLClient(t *testing.T, latest int, firstBall string) *HTMLClient {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gameResult.do", r.URL.Path)
		assert.Equal(t, "byWin", r.URL.Query().Get("method"))

		round, _ := strconv.Atoi(r.URL.Query().Get("drwNo"))
		if round > latest {
			round = latest
		}
		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		fmt.Fprintf(w, byWinPage, round, firstBall)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTMLClient(Options{BaseURL: server.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client
}

func TestHTMLClient_FetchDraw(t *testing.T) {
	client := newTestHTMLClient(t, 1100, "3")

	draw, err := client.FetchDraw(context.Background(), 1100)
	require.NoError(t, err)

	assert.Equal(t, 1100, draw.Round)
	assert.Equal(t, "2023-12-30", draw.DrawDate)
	assert.Equal(t, [6]int{3, 13, 17, 26, 34, 42}, draw.Numbers)
	assert.Equal(t, 8, draw.BonusNumber)
}

func TestHTMLClient_RoundMismatchIsEndOfData(t *testing.T) {
	client := newTestHTMLClient(t, 1100, "3")

	_, err := client.FetchDraw(context.Background(), 1101)
	assert.ErrorIs(t, err, ErrNoSuchDraw)
}

func TestHTMLClient_NonNumericBallIsZero(t *testing.T) {
	client := newTestHTMLClient(t, 5, "?")

	draw, err := client.FetchDraw(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, draw.Numbers[0])
}

func TestParseDrawHTML_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "no result block",
			body: `<html><body><p>점검 중</p></body></html>`,
			want: "당첨결과 영역",
		},
		{
			name: "bad round",
			body: `<div class="win_result"><h4><strong>회차</strong></h4></div>`,
			want: "회차 파싱 실패",
		},
		{
			name: "missing balls",
			body: `<div class="win_result"><h4><strong>1회</strong></h4><div class="num win"><span class="ball_645">1</span></div></div>`,
			want: "당첨번호 개수 오류",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDrawHTML([]byte(tt.body), 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.NotErrorIs(t, err, ErrNoSuchDraw)
		})
	}
}

func TestParseDrawDate(t *testing.T) {
	assert.Equal(t, "2002-12-07", parseDrawDate("(2002년 12월 7일 추첨)"))
	assert.Equal(t, "", parseDrawDate("추첨일 미정"))
}
