package parser_test

import (
	"testing"

	"clip-cast/cmd/processor/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopImageFromHTMLOpenGraph(t *testing.T) {
	htmlStr := `<!DOCTYPE html>
<html>
<head>
<meta property="og:image" content="https://cdn.clipcast.example/thumbs/og-cover.jpg">
</head>
<body><p>watch page</p></body>
</html>`

	topImage, err := parser.ParseTopImageFromHTML(htmlStr, "https://videos.example.com/watch/abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.clipcast.example/thumbs/og-cover.jpg", topImage)
}

func TestParseTopImageFromHTMLRelativeResolved(t *testing.T) {
	htmlStr := `<!DOCTYPE html>
<html>
<head>
<meta property="og:image" content="/static/covers/abc123.png">
</head>
<body><p>watch page</p></body>
</html>`

	topImage, err := parser.ParseTopImageFromHTML(htmlStr, "https://videos.example.com/watch/abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://videos.example.com/static/covers/abc123.png", topImage)
}

func TestParseTopImageFromHTMLLinkImageSrc(t *testing.T) {
	htmlStr := `<!DOCTYPE html>
<html>
<head>
<link rel="image_src" href="https://cdn.clipcast.example/thumbs/link-src.png">
</head>
<body><p>watch page</p></body>
</html>`

	topImage, err := parser.ParseTopImageFromHTML(htmlStr, "https://videos.example.com/watch/abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.clipcast.example/thumbs/link-src.png", topImage)
}

func TestParseTopImageFromHTMLImgDeclaredSize(t *testing.T) {
	// width/height 속성이 충분히 크면 이미지를 내려받지 않고 그대로 채택한다
	htmlStr := `<!DOCTYPE html>
<html>
<head></head>
<body>
<img src="https://cdn.clipcast.example/frames/frame-001.jpg" width="640" height="360">
</body>
</html>`

	topImage, err := parser.ParseTopImageFromHTML(htmlStr, "https://videos.example.com/watch/abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.clipcast.example/frames/frame-001.jpg", topImage)
}

func TestParseTopImageFromHTMLImgTooSmall(t *testing.T) {
	htmlStr := `<!DOCTYPE html>
<html>
<head></head>
<body>
<img src="https://cdn.clipcast.example/icons/play.png" width="48" height="48">
</body>
</html>`

	topImage, err := parser.ParseTopImageFromHTML(htmlStr, "https://videos.example.com/watch/abc123")
	require.NoError(t, err)
	assert.Empty(t, topImage)
}

func TestParseTopImageFromHTMLNoImage(t *testing.T) {
	htmlStr := `<html><head></head><body><p>no images here</p></body></html>`

	topImage, err := parser.ParseTopImageFromHTML(htmlStr, "")
	require.NoError(t, err)
	assert.Empty(t, topImage)
}
