package feeder

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// VideoFeedItem은 채널 업로드 피드에서 추출한 영상 한 건이다.
type VideoFeedItem struct {
	Title           string
	Link            string
	PublishedAt     time.Time
	DurationSeconds int
	ThumbnailURL    string
}

const FEEDER_TIMEOUT = 30 * time.Second

// feedUserAgent 는 업로드 피드를 요청할 때 사용할 브라우저 유사 User-Agent 이다.
// 일부 채널(특히 CDN/보안 프록시 뒤에 있는 경우)은 기본 Go HTTP 클라이언트 UA를 차단한다.
const feedUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

func FetchVideoFeeds(feedURL string, limit int) ([]VideoFeedItem, error) {
	// 1. 리다이렉트 정책을 포함한 클라이언트 설정
	httpClient := &http.Client{
		Timeout: FEEDER_TIMEOUT,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
		// 리다이렉트 시 헤더 유지를 위해 필요할 수 있음 (Go 기본 동작은 헤더가 초기화될 수 있음)
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			req.Header.Set("User-Agent", feedUserAgent)
			return nil
		},
	}

	fp := gofeed.NewParser()

	req, err := http.NewRequest(http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}

	// 2. 헤더 보강: WAF 우회를 위해 브라우저 헤더 추가
	req.Header.Set("User-Agent", feedUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.google.com/")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Cache-Control", "max-age=0")
	req.Header.Set("Connection", "keep-alive")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 본문 내용을 조금 읽어서 로그에 찍어보면 원인 파악에 도움이 됨
		bodySample, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return nil, fmt.Errorf("failed to fetch video feed: status code %d, url: %s, body: %s", resp.StatusCode, feedURL, string(bodySample))
	}

	// 3. 제어 문자 제거
	cleanedReader, err := cleanControlCharacters(resp.Body)
	if err != nil {
		return nil, err
	}

	feed, err := fp.Parse(cleanedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse video feed: %w", err)
	}

	var items []VideoFeedItem
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		items = append(items, VideoFeedItem{
			Title:           item.Title,
			Link:            item.Link,
			PublishedAt:     published,
			DurationSeconds: extractDurationSeconds(item),
			ThumbnailURL:    extractThumbnailURL(item),
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

// extractDurationSeconds는 itunes:duration 또는 media:content의 duration 속성에서
// 재생 시간을 초 단위로 추출한다. 둘 다 없으면 0을 반환한다.
func extractDurationSeconds(item *gofeed.Item) int {
	if item.ITunesExt != nil && item.ITunesExt.Duration != "" {
		if secs, ok := parseDurationSeconds(item.ITunesExt.Duration); ok {
			return secs
		}
	}

	media, ok := item.Extensions["media"]
	if !ok {
		return 0
	}
	for _, content := range media["content"] {
		if d := content.Attrs["duration"]; d != "" {
			if secs, ok := parseDurationSeconds(d); ok {
				return secs
			}
		}
	}
	for _, group := range media["group"] {
		for _, content := range group.Children["content"] {
			if d := content.Attrs["duration"]; d != "" {
				if secs, ok := parseDurationSeconds(d); ok {
					return secs
				}
			}
		}
	}
	return 0
}

// parseDurationSeconds는 "754", "12:34", "1:02:34" 형식을 초 단위로 파싱한다.
func parseDurationSeconds(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, false
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// extractThumbnailURL는 media:thumbnail(직접 또는 media:group 중첩)에서 썸네일 URL을 추출한다.
func extractThumbnailURL(item *gofeed.Item) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	if url := firstThumbnailURL(media["thumbnail"]); url != "" {
		return url
	}
	for _, group := range media["group"] {
		if url := firstThumbnailURL(group.Children["thumbnail"]); url != "" {
			return url
		}
	}
	return ""
}

func firstThumbnailURL(thumbs []ext.Extension) string {
	for _, thumb := range thumbs {
		if url := thumb.Attrs["url"]; url != "" {
			return url
		}
	}
	return ""
}

// XML에서 허용되지 않는 모든 제어 문자 범위입니다 (0x00부터 0x1F까지 중 탭, LF, CR 제외).
var invalidControlCharRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)

func cleanControlCharacters(r io.Reader) (io.Reader, error) {
	bodyBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body for cleaning: %w", err)
	}

	cleanedBytes := invalidControlCharRegex.ReplaceAll(bodyBytes, []byte(""))

	return bytes.NewReader(cleanedBytes), nil
}
