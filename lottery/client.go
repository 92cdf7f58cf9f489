package lottery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL은 동행복권 사이트 주소입니다
	DefaultBaseURL = "https://www.dhlottery.co.kr"

	DefaultTimeout = 30 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Options는 동행복권 클라이언트 설정입니다
type Options struct {
	BaseURL string
	Timeout time.Duration

	// RateLimit은 초당 요청 수입니다. 0이면 제한하지 않습니다.
	RateLimit float64

	// HTTPClient를 지정하면 쿠키 저장소와 타임아웃 설정을 건너뜁니다
	HTTPClient *http.Client
}

// transport는 JSON/HTML 클라이언트가 공유하는 HTTP 계층입니다
type transport struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

func newTransport(opts Options) (*transport, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		jar, err := cookiejar.New(&cookiejar.Options{
			PublicSuffixList: publicsuffix.List,
		})
		if err != nil {
			return nil, fmt.Errorf("쿠키 저장소 생성 실패: %w", err)
		}

		httpClient = &http.Client{
			Jar:     jar,
			Timeout: opts.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("리다이렉트가 너무 많습니다")
				}
				return nil
			},
		}
	}

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}

	return &transport{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		limiter:    rate.NewLimiter(limit, 1),
	}, nil
}

// get은 path에 GET 요청을 보내고 응답 본문을 반환합니다
func (t *transport) get(ctx context.Context, path, accept string) ([]byte, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("요청 대기 실패: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", t.baseURL+"/")
	req.Header.Set("Accept", accept)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API 호출 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API 응답 오류 (상태: %d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %w", err)
	}
	return body, nil
}

// FormatNumber는 회차 수나 출현 횟수 같은 정수를 천 단위 구분자가 있는 문자열로 변환합니다
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}
