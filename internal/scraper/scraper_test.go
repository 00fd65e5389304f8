package scraper

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSupplier() *Supplier {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{Timeout: 5 * time.Second, UserAgent: "test"}, logger)
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
		ok   bool
	}{
		{
			name: "itemprop meta",
			body: `<meta itemprop="price" content="19.99">`,
			want: 1999,
			ok:   true,
		},
		{
			name: "og price amount",
			body: `<meta property="og:price:amount" content="5.50"/>`,
			want: 550,
			ok:   true,
		},
		{
			name: "product price amount",
			body: `<meta property="product:price:amount" content="120.00"/>`,
			want: 12000,
			ok:   true,
		},
		{
			name: "embedded json price",
			body: `<script>{"sku":"X","price":"42.10","currency":"EUR"}</script>`,
			want: 4210,
			ok:   true,
		},
		{
			name: "comma decimal separator",
			body: `<meta itemprop="price" content="7,95">`,
			want: 795,
			ok:   true,
		},
		{
			name: "whole number",
			body: `<meta itemprop="price" content="30">`,
			want: 3000,
			ok:   true,
		},
		{
			name: "no price markup",
			body: `<html><body>out of stock</body></html>`,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractPrice(tt.body)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestScrapePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test", r.Header.Get("User-Agent"))
		w.Write([]byte(`<html><head><meta itemprop="price" content="19.99"></head></html>`))
	}))
	defer srv.Close()

	price, err := newTestSupplier().ScrapePrice(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int64(1999), price)
}

func TestScrapePrice_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestSupplier().ScrapePrice(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestScrapePrice_NoPriceOnPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	defer srv.Close()

	_, err := newTestSupplier().ScrapePrice(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no price found")
}
