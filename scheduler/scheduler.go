package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"lottorecommender/logger"
)

// Scheduler는 크론 스케줄러입니다
type Scheduler struct {
	cron *cron.Cron
}

// New는 새로운 스케줄러를 생성합니다
func New() *Scheduler {
	// 한국 시간대 설정
	location, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️  시간대 로드 실패, UTC 사용")
		location = time.UTC
	}

	return &Scheduler{
		cron: cron.New(cron.WithLocation(location)),
	}
}

// AddFunc는 크론 작업을 추가합니다
func (s *Scheduler) AddFunc(spec string, cmd func()) error {
	_, err := s.cron.AddFunc(spec, cmd)
	return err
}

// Next는 등록된 첫 작업의 다음 실행 시각입니다. 작업이 없거나 시작 전이면 zero time입니다.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// Start는 스케줄러를 시작합니다
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop은 스케줄러를 중지하고 실행 중인 작업이 끝날 때까지 기다립니다
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
