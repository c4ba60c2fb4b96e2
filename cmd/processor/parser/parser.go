package parser

import (
	"fmt"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ParsedPage는 렌더링된 영상 페이지에서 추출한 본문 텍스트와 대표 이미지다.
type ParsedPage struct {
	PlainTextContent string
	TopImage         string
}

// ExtractPageText는 렌더링된 HTML에서 영상 설명으로 쓸 본문 텍스트를 추출한다.
// readability를 우선 사용하고, 본문이 비어 나오면 trafilatura, goose 순으로 폴백한다.
func ExtractPageText(htmlStr string) (*ParsedPage, error) {
	if page, err := ParseHtmlWithReadability(htmlStr); err == nil && strings.TrimSpace(page.PlainTextContent) != "" {
		return page, nil
	}

	if page, err := ParseHtmlWithTrafilatura(htmlStr); err == nil && strings.TrimSpace(page.PlainTextContent) != "" {
		return page, nil
	}

	if page, err := ParseHtmlWithGoose(htmlStr); err == nil && strings.TrimSpace(page.PlainTextContent) != "" {
		return page, nil
	}

	return nil, fmt.Errorf("no text content extracted from rendered html (%d chars)", len(htmlStr))
}

// main parser
func ParseHtmlWithReadability(htmlStr string) (*ParsedPage, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return nil, err
	}
	return &ParsedPage{
		PlainTextContent: article.TextContent,
		TopImage:         article.Image,
	}, nil
}

func ParseHtmlWithTrafilatura(htmlStr string) (*ParsedPage, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}

	return &ParsedPage{
		PlainTextContent: article.ContentText,
		TopImage:         article.Metadata.Image,
	}, nil
}

func ParseHtmlWithGoose(htmlStr string) (*ParsedPage, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return nil, err
	}
	return &ParsedPage{
		PlainTextContent: article.CleanedText,
		TopImage:         article.TopImage,
	}, nil
}
