package feeder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-cast/cmd/ingest/feeder"
)

const fixtureFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
     xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"
     xmlns:media="http://search.yahoo.com/mrss/">
<channel>
  <title>CodeCast</title>
  <link>https://clipcast.example/channels/codecast</link>
  <item>
    <title>Go 제네릭 정리</title>
    <link>https://clipcast.example/v/abc123</link>
    <pubDate>Mon, 18 Aug 2025 09:00:00 +0000</pubDate>
    <itunes:duration>12:34</itunes:duration>
    <media:thumbnail url="https://img.clipcast.example/abc123.jpg" width="480" height="360"/>
  </item>
  <item>
    <title>goroutine 내부 구조</title>
    <link>https://clipcast.example/v/def456</link>
    <pubDate>Tue, 19 Aug 2025 09:00:00 +0000</pubDate>
    <media:group>
      <media:content url="https://cdn.clipcast.example/def456.mp4" duration="3754"/>
      <media:thumbnail url="https://img.clipcast.example/def456.jpg"/>
    </media:group>
  </item>
  <item>
    <title>덕 타이핑과 인터페이스</title>
    <link>https://clipcast.example/v/ghi789</link>
    <pubDate>Wed, 20 Aug 2025 09:00:00 +0000</pubDate>
  </item>
</channel>
</rss>`

func newFeedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchVideoFeeds(t *testing.T) {
	srv := newFeedServer(t, fixtureFeed)

	items, err := feeder.FetchVideoFeeds(srv.URL, 10)
	require.NoError(t, err)
	require.Len(t, items, 3)

	first := items[0]
	assert.Equal(t, "Go 제네릭 정리", first.Title)
	assert.Equal(t, "https://clipcast.example/v/abc123", first.Link)
	assert.Equal(t, 12*60+34, first.DurationSeconds)
	assert.Equal(t, "https://img.clipcast.example/abc123.jpg", first.ThumbnailURL)
	assert.Equal(t, time.Date(2025, 8, 18, 9, 0, 0, 0, time.UTC), first.PublishedAt.UTC())

	second := items[1]
	assert.Equal(t, 3754, second.DurationSeconds, "duration from nested media:content")
	assert.Equal(t, "https://img.clipcast.example/def456.jpg", second.ThumbnailURL)

	third := items[2]
	assert.Zero(t, third.DurationSeconds)
	assert.Empty(t, third.ThumbnailURL)
}

func TestFetchVideoFeedsLimit(t *testing.T) {
	srv := newFeedServer(t, fixtureFeed)

	items, err := feeder.FetchVideoFeeds(srv.URL, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFetchVideoFeedsControlCharacters(t *testing.T) {
	// 일부 피드는 XML에 허용되지 않는 제어 문자를 포함한다.
	dirty := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<rss version=\"2.0\"><channel><title>C\x1Bhannel</title>" +
		"<item><title>video</title><link>https://clipcast.example/v/x</link></item></channel></rss>"
	srv := newFeedServer(t, dirty)

	items, err := feeder.FetchVideoFeeds(srv.URL, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "video", items[0].Title)
}

func TestFetchVideoFeedsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	_, err := feeder.FetchVideoFeeds(srv.URL, 10)
	assert.ErrorContains(t, err, "status code 403")
}
