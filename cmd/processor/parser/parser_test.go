package parser_test

import (
	"testing"

	"clip-cast/cmd/processor/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 렌더링된 영상 페이지 형태의 고정 HTML.
// readability가 본문으로 인식할 수 있도록 설명 영역에 충분한 길이의 문단을 넣는다.
const renderedWatchPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Scaling a Video Transcode Farm - ClipCast</title>
<meta property="og:image" content="https://cdn.clipcast.example/thumbs/transcode-farm.jpg">
</head>
<body>
<nav><a href="/">Home</a> <a href="/channels">Channels</a></nav>
<main>
<article>
<h1>Scaling a Video Transcode Farm</h1>
<p>In this video we walk through how our transcode farm grew from a single worker
to a fleet of two hundred machines. The first half covers the queueing model and
why we moved from a database-backed job table to a log-based broker, and how the
consumer groups were laid out so that a slow codec never starves the fast lanes.</p>
<p>The second half is a live session where we resize the fleet under load. You can
see the autoscaler react to the backlog metric, and we talk about the tradeoff
between spot instances and reserved capacity for bursty encoding workloads. The
pipeline backpressure section starts around the twelve minute mark.</p>
<p>Links mentioned in the video, the benchmark harness, and the dashboard template
are listed below the player. Subtitles are available in English and Korean, and
the chapter markers follow the agenda shown in the intro slide.</p>
</article>
</main>
<footer>Uploaded by ClipCast Engineering</footer>
</body>
</html>`

func TestParseHtmlWithReadability(t *testing.T) {
	page, err := parser.ParseHtmlWithReadability(renderedWatchPageHTML)
	require.NoError(t, err)
	require.NotNil(t, page)

	assert.Contains(t, page.PlainTextContent, "pipeline backpressure")
	assert.Contains(t, page.PlainTextContent, "transcode farm")
	assert.Equal(t, "https://cdn.clipcast.example/thumbs/transcode-farm.jpg", page.TopImage)
}

func TestParseHtmlWithTrafilatura(t *testing.T) {
	page, err := parser.ParseHtmlWithTrafilatura(renderedWatchPageHTML)
	require.NoError(t, err)
	require.NotNil(t, page)

	assert.Contains(t, page.PlainTextContent, "pipeline backpressure")
}

func TestParseHtmlWithGoose(t *testing.T) {
	page, err := parser.ParseHtmlWithGoose(renderedWatchPageHTML)
	require.NoError(t, err)
	require.NotNil(t, page)
}

func TestExtractPageText(t *testing.T) {
	page, err := parser.ExtractPageText(renderedWatchPageHTML)
	require.NoError(t, err)
	require.NotNil(t, page)

	assert.Contains(t, page.PlainTextContent, "pipeline backpressure")
}

func TestExtractPageTextEmptyPage(t *testing.T) {
	_, err := parser.ExtractPageText(`<html><head></head><body></body></html>`)
	assert.Error(t, err)
}
