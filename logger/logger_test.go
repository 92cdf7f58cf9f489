package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, Init(dir, "debug"))
	Info().Int("round", 1).Msg("회차 데이터 수신...")
	Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^lottery_\d{4}-\d{2}-\d{2}\.log$`, entries[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "로그 파일 초기화 완료")
	assert.Contains(t, string(data), "round=1")
}

func TestSetOutput_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Warn().Msg("경고")
	Println("구분선")

	assert.Contains(t, buf.String(), "경고")
	assert.Contains(t, buf.String(), "구분선")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}
