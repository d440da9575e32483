package schedule

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"schedule-scraper/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

func newFetchClient() *resty.Client {
	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 20)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "services/schedule/http")

	return client
}

// fetchPage retrieves one timetable page and hands back decoded
// Unicode text. The source pages frequently declare windows-1251, so
// the charset is negotiated from the content-type header and the
// document itself rather than assumed.
func (s Service) fetchPage(ctx context.Context, url string) (string, error) {
	res, err := s.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", err
	}
	if res.StatusCode() != 200 {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, res.StatusCode())
	}

	reader, err := charset.NewReader(bytes.NewReader(res.Body()), res.Header().Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("negotiate charset: %w", err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
