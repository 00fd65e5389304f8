package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Supplier fetches a supplier product page and extracts the listed
// price in cents. Extraction looks for the common structured price
// markup suppliers expose; there is no site-specific parsing.
type Supplier struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

type Config struct {
	Timeout   time.Duration
	UserAgent string
}

func New(cfg Config, logger *slog.Logger) *Supplier {
	return &Supplier{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
		logger:    logger.With("component", "scraper"),
	}
}

// Price markup probed in order: schema.org itemprop, OpenGraph meta,
// JSON price fields embedded in the page.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`itemprop="price"[^>]*content="([0-9]+(?:[.,][0-9]{1,2})?)"`),
	regexp.MustCompile(`property="(?:og|product):price:amount"[^>]*content="([0-9]+(?:[.,][0-9]{1,2})?)"`),
	regexp.MustCompile(`"price"\s*:\s*"?([0-9]+(?:\.[0-9]{1,2})?)"?`),
}

const maxBodySize = 2 << 20

// ScrapePrice fetches url and returns the first price found in cents.
func (s *Supplier) ScrapePrice(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch supplier page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, fmt.Errorf("read supplier page: %w", err)
	}

	price, ok := extractPrice(string(body))
	if !ok {
		return 0, fmt.Errorf("no price found at %s", url)
	}

	s.logger.Debug("scraped price", "url", url, "price_cents", price)
	return price, nil
}

func extractPrice(body string) (int64, bool) {
	for _, pattern := range pricePatterns {
		m := pattern.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		if cents, err := toCents(m[1]); err == nil {
			return cents, true
		}
	}
	return 0, false
}

func toCents(s string) (int64, error) {
	s = strings.ReplaceAll(s, ",", ".")
	whole, frac, _ := strings.Cut(s, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	var cents int64
	if frac != "" {
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac[:2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q", s)
		}
	}
	return dollars*100 + cents, nil
}
