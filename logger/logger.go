package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logFile *os.File
	log     = newLogger(os.Stdout, zerolog.InfoLevel)
	mu      sync.RWMutex
)

func newLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006/01/02 15:04:05",
		NoColor:    true,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Init는 로거를 초기화하고 로그 파일을 생성합니다
func Init(dir, level string) error {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	// 로그 파일명: logs/lottery_2026-01-13.log
	logFileName := fmt.Sprintf("lottery_%s.log", time.Now().Format("2006-01-02"))
	logFilePath := filepath.Join(dir, logFileName)

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("로그 파일 생성 실패: %w", err)
	}

	mu.Lock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	// 로그를 콘솔과 파일 둘 다에 출력
	log = newLogger(io.MultiWriter(os.Stdout, logFile), ParseLevel(level))
	mu.Unlock()

	Info().Str("path", logFilePath).Msg("✅ 로그 파일 초기화 완료")
	return nil
}

// SetOutput은 로그 출력 대상을 바꿉니다 (테스트용)
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w, log.GetLevel())
}

// Close는 로그 파일을 닫습니다
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// ParseLevel은 문자열 로그 레벨을 zerolog 레벨로 변환합니다
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// Info는 정보 로그를 시작합니다
func Info() *zerolog.Event {
	return current().Info()
}

// Error는 에러 로그를 시작합니다
func Error() *zerolog.Event {
	return current().Error()
}

// Warn은 경고 로그를 시작합니다
func Warn() *zerolog.Event {
	return current().Warn()
}

// Debug는 디버그 로그를 시작합니다
func Debug() *zerolog.Event {
	return current().Debug()
}

// Println은 필드 없이 한 줄을 출력합니다 (구분선, 배너 등)
func Println(msg string) {
	current().Info().Msg(msg)
}
