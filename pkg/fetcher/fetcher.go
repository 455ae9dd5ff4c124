package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{},
	}
}

// GetText fetches rawURL and returns the document's text. Plain text
// bodies pass through unchanged; HTML bodies are reduced to their
// readable text. A network error or non-200 status is returned as an
// error with no text and no retry.
func (f *Fetcher) GetText(rawURL string) (string, error) {
	body, contentType, err := f.get(rawURL)
	if err != nil {
		return "", err
	}

	if isHTML(contentType, body) {
		return extractText(rawURL, body)
	}
	return string(body), nil
}

func (f *Fetcher) get(rawURL string) ([]byte, string, error) {
	resp, err := f.client.Get(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch document, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func isHTML(contentType string, body []byte) bool {
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	return strings.Contains(strings.ToLower(contentType), "text/html")
}

// extractText pulls the readable body text out of an HTML document.
// go-readability finds the main content; if it cannot, the whole
// document text minus script and style elements is used instead.
func extractText(rawURL string, html []byte) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL: %w", err)
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(string(html)), parsedURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script,style,noscript").Remove()
	return doc.Text(), nil
}
