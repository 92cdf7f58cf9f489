package lottery

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// HTMLClient는 당첨결과 페이지(byWin)를 파싱하는 클라이언트입니다.
// JSON API가 막혔을 때 대체 소스로 사용합니다.
type HTMLClient struct {
	*transport
}

// NewHTMLClient는 새로운 HTML 클라이언트를 생성합니다
func NewHTMLClient(opts Options) (*HTMLClient, error) {
	t, err := newTransport(opts)
	if err != nil {
		return nil, err
	}
	return &HTMLClient{transport: t}, nil
}

// FetchDraw는 round 회차의 당첨결과 페이지에서 당첨번호를 추출합니다
func (c *HTMLClient) FetchDraw(ctx context.Context, round int) (*Draw, error) {
	path := fmt.Sprintf("/gameResult.do?method=byWin&drwNo=%d", round)

	body, err := c.get(ctx, path, "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if err != nil {
		return nil, err
	}

	return parseDrawHTML(body, round)
}

func parseDrawHTML(body []byte, round int) (*Draw, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("HTML 파싱 실패: %w", err)
	}

	result := doc.Find(".win_result").First()
	if result.Length() == 0 {
		return nil, fmt.Errorf("당첨결과 영역을 찾을 수 없습니다")
	}

	// 회차: "1100회"
	roundText := strings.TrimSpace(result.Find("h4 strong").First().Text())
	pageRound, err := strconv.Atoi(strings.TrimSuffix(roundText, "회"))
	if err != nil {
		return nil, fmt.Errorf("회차 파싱 실패 (%q): %w", roundText, err)
	}

	// 없는 회차를 요청하면 사이트가 최신 회차를 보여줍니다
	if pageRound != round {
		return nil, fmt.Errorf("%d회 (페이지 회차 %d회): %w", round, pageRound, ErrNoSuchDraw)
	}

	draw := &Draw{
		Round:    pageRound,
		DrawDate: parseDrawDate(result.Find("p.desc").First().Text()),
	}

	balls := result.Find(".num.win span.ball_645")
	if balls.Length() != len(draw.Numbers) {
		return nil, fmt.Errorf("당첨번호 개수 오류: %d개", balls.Length())
	}

	balls.Each(func(i int, s *goquery.Selection) {
		// 숫자가 아니면 0으로 남겨 범위 검사에서 걸러지게 합니다
		draw.Numbers[i], _ = strconv.Atoi(strings.TrimSpace(s.Text()))
	})

	bonusText := strings.TrimSpace(result.Find(".num.bonus span.ball_645").First().Text())
	draw.BonusNumber, _ = strconv.Atoi(bonusText)

	return draw, nil
}

// parseDrawDate는 "(2023년 12월 30일 추첨)"을 "2023-12-30"으로 변환합니다
func parseDrawDate(text string) string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if len(parts) < 3 {
		return ""
	}

	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
