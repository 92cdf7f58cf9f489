package lottery

import (
	"context"
	"errors"
)

// ErrNoSuchDraw는 요청한 회차가 아직 추첨되지 않았음을 나타냅니다
var ErrNoSuchDraw = errors.New("해당 회차의 당첨 정보가 없습니다")

// Draw는 한 회차의 당첨 결과입니다
type Draw struct {
	Round       int    // 회차
	DrawDate    string // 추첨일 (예: "2002-12-07")
	Numbers     [6]int // 당첨번호 6개
	BonusNumber int    // 보너스번호
}

// Source는 회차별 당첨번호를 제공하는 데이터 소스입니다.
// 더 이상 회차가 없으면 ErrNoSuchDraw를 감싼 에러를 반환합니다.
type Source interface {
	FetchDraw(ctx context.Context, round int) (*Draw, error)
}
