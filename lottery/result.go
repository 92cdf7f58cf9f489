package lottery

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

// Client는 동행복권 당첨번호 JSON API 클라이언트입니다
type Client struct {
	*transport
}

// NewClient는 새로운 동행복권 클라이언트를 생성합니다
func NewClient(opts Options) (*Client, error) {
	t, err := newTransport(opts)
	if err != nil {
		return nil, err
	}
	return &Client{transport: t}, nil
}

// drawResponse는 getLottoNumber API 응답입니다
type drawResponse struct {
	ReturnValue string `json:"returnValue"` // "success" 또는 "fail"
	DrwNo       int    `json:"drwNo"`       // 회차
	DrwNoDate   string `json:"drwNoDate"`   // 추첨일 (YYYY-MM-DD)
	DrwtNo1     int    `json:"drwtNo1"`     // 당첨번호 1
	DrwtNo2     int    `json:"drwtNo2"`     // 당첨번호 2
	DrwtNo3     int    `json:"drwtNo3"`     // 당첨번호 3
	DrwtNo4     int    `json:"drwtNo4"`     // 당첨번호 4
	DrwtNo5     int    `json:"drwtNo5"`     // 당첨번호 5
	DrwtNo6     int    `json:"drwtNo6"`     // 당첨번호 6
	BnusNo      int    `json:"bnusNo"`      // 보너스번호
}

// FetchDraw는 round 회차의 당첨번호를 가져옵니다
func (c *Client) FetchDraw(ctx context.Context, round int) (*Draw, error) {
	path := fmt.Sprintf("/common.do?method=getLottoNumber&drwNo=%d", round)

	body, err := c.get(ctx, path, "application/json, text/javascript, */*; q=0.01")
	if err != nil {
		return nil, err
	}

	return parseDrawJSON(body, round)
}

func parseDrawJSON(body []byte, round int) (*Draw, error) {
	var resp drawResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("JSON 파싱 실패: %w", err)
	}

	if resp.ReturnValue != "success" {
		return nil, fmt.Errorf("%d회: %w", round, ErrNoSuchDraw)
	}

	drawRound := resp.DrwNo
	if drawRound == 0 {
		drawRound = round
	}

	return &Draw{
		Round:       drawRound,
		DrawDate:    resp.DrwNoDate,
		Numbers:     [6]int{resp.DrwtNo1, resp.DrwtNo2, resp.DrwtNo3, resp.DrwtNo4, resp.DrwtNo5, resp.DrwtNo6},
		BonusNumber: resp.BnusNo,
	}, nil
}
