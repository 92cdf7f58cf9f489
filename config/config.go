package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"lottorecommender/logger"
)

// 데이터 소스 종류
const (
	SourceJSON = "json"
	SourceHTML = "html"
)

// DefaultConfigPaths는 설정 파일을 찾는 경로입니다 (앞에서부터 우선)
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// ConfigPathEnvVar는 설정 파일 경로를 지정하는 환경변수입니다
const ConfigPathEnvVar = "CONFIG_PATH"

// APIConfig는 동행복권 API 설정입니다
type APIConfig struct {
	BaseURL   string        `koanf:"base_url"`
	Source    string        `koanf:"source"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"`
}

// RecommendConfig는 추천 설정입니다
type RecommendConfig struct {
	// Seed가 0이면 실행할 때마다 다른 조합이 나옵니다
	Seed uint64 `koanf:"seed"`
}

// TelegramConfig는 텔레그램 알림 설정입니다
type TelegramConfig struct {
	BotToken string `koanf:"bot_token"`
	ChatID   string `koanf:"chat_id"`
}

// ScheduleConfig는 서비스 모드 스케줄 설정입니다
type ScheduleConfig struct {
	Cron string `koanf:"cron"`
}

// LogConfig는 로그 설정입니다
type LogConfig struct {
	Level string `koanf:"level"`
	Dir   string `koanf:"dir"`
}

// Config는 전체 설정을 담는 구조체입니다
type Config struct {
	API       APIConfig       `koanf:"api"`
	Recommend RecommendConfig `koanf:"recommend"`
	Telegram  TelegramConfig  `koanf:"telegram"`
	Schedule  ScheduleConfig  `koanf:"schedule"`
	Log       LogConfig       `koanf:"log"`
}

// Default는 기본 설정을 반환합니다
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: "https://www.dhlottery.co.kr",
			Source:  SourceJSON,
			Timeout: 30 * time.Second,
		},
		Schedule: ScheduleConfig{
			// 매주 월요일 낮 12시
			Cron: "0 12 * * 1",
		},
		Log: LogConfig{
			Level: "info",
			Dir:   "logs",
		},
	}
}

// Load는 기본값 → 설정 파일 → 환경변수 순서로 설정을 로드합니다.
// path가 비어 있으면 CONFIG_PATH와 기본 경로에서 설정 파일을 찾습니다.
// 명령행 플래그를 반영한 뒤 호출하는 쪽에서 Validate를 실행해야 합니다.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("기본 설정 로드 실패: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("설정 파일 로드 실패 (%s): %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return Config{}, fmt.Errorf("환경변수 로드 실패: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("설정 파싱 실패: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings는 환경변수 이름을 설정 키로 연결합니다
var envMappings = map[string]string{
	"lotto_api_base_url":   "api.base_url",
	"lotto_api_source":     "api.source",
	"lotto_api_timeout":    "api.timeout",
	"lotto_api_rate_limit": "api.rate_limit",
	"lotto_recommend_seed": "recommend.seed",
	"lotto_schedule_cron":  "schedule.cron",
	"lotto_log_level":      "log.level",
	"lotto_log_dir":        "log.dir",
	"telegram_bot_token":   "telegram.bot_token",
	"telegram_chat_id":     "telegram.chat_id",
}

// envTransformFunc는 알려진 환경변수만 설정 키로 변환합니다. 빈 문자열이면 무시됩니다.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Validate는 설정 값을 검증합니다
func (c *Config) Validate() error {
	switch c.API.Source {
	case SourceJSON, SourceHTML:
	default:
		return fmt.Errorf("알 수 없는 데이터 소스입니다: %q (json 또는 html)", c.API.Source)
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("API 주소가 비어 있습니다")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API 타임아웃은 0보다 커야 합니다: %s", c.API.Timeout)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("요청 속도 제한은 음수일 수 없습니다: %v", c.API.RateLimit)
	}
	return nil
}

// TelegramEnabled는 텔레그램 알림을 보낼 수 있는지 확인합니다
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// Print는 설정 정보를 출력합니다 (보안상 토큰은 마스킹)
func (c *Config) Print() {
	logger.Println("=== 설정 정보 ===")
	logger.Info().Str("source", c.API.Source).Str("url", c.API.BaseURL).Msg("  데이터 소스")
	logger.Info().Dur("timeout", c.API.Timeout).Float64("rate_limit", c.API.RateLimit).Msg("  요청 설정")

	if c.Recommend.Seed != 0 {
		logger.Info().Uint64("seed", c.Recommend.Seed).Msg("  고정 시드 사용")
	}

	if c.TelegramEnabled() {
		masked := strings.Repeat("*", len(c.Telegram.BotToken))
		logger.Info().Str("token", masked).Str("chat_id", c.Telegram.ChatID).Msg("  텔레그램 알림: 활성화")
	} else {
		logger.Println("  텔레그램 알림: 비활성화")
	}
}
