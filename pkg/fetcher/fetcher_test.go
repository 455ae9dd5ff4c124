package fetcher

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetTextPlain(t *testing.T) {
	const body = "The cat sat. The cat ran!"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := NewFetcher().GetText(srv.URL)
	if err != nil {
		t.Fatalf("GetText() error = %v", err)
	}
	if got != body {
		t.Errorf("GetText() = %q, want %q", got, body)
	}
}

func TestGetTextHTML(t *testing.T) {
	const html = `<html><head><title>t</title><style>p{color:red}</style></head>
<body><p>alpha beta</p><script>var x = 1;</script><p>gamma</p></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}))
	defer srv.Close()

	got, err := NewFetcher().GetText(srv.URL)
	if err != nil {
		t.Fatalf("GetText() error = %v", err)
	}

	for _, word := range []string{"alpha", "beta", "gamma"} {
		if !strings.Contains(got, word) {
			t.Errorf("GetText() missing %q in %q", word, got)
		}
	}
	for _, markup := range []string{"<p>", "var x", "color:red"} {
		if strings.Contains(got, markup) {
			t.Errorf("GetText() leaked markup %q in %q", markup, got)
		}
	}
}

func TestGetTextNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewFetcher().GetText(srv.URL); err == nil {
		t.Error("GetText() error = nil, want non-nil for 404")
	}
}

func TestGetTextNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	if _, err := NewFetcher().GetText(srv.URL); err == nil {
		t.Error("GetText() error = nil, want non-nil for closed server")
	}
}
