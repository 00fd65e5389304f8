package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"shopsync/internal/domain"
)

// ErrAuth marks configuration and credential failures: missing access
// token or a 401/402/403 from the platform. These are fatal for a run
// and never retried.
var ErrAuth = errors.New("shopify: authentication failed")

// Config holds Shopify admin API configuration.
type Config struct {
	ShopDomain     string
	AccessToken    string
	APIVersion     string
	PageSize       int
	Timeout        time.Duration
	RatePerSec     float64
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the Shopify admin REST API. All requests pass through
// a shared rate limiter sized to the platform's request bucket.
type Client struct {
	httpClient     *http.Client
	limiter        *rate.Limiter
	baseURL        string
	accessToken    string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:        rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
		baseURL:        fmt.Sprintf("https://%s/admin/api/%s", cfg.ShopDomain, cfg.APIVersion),
		accessToken:    cfg.AccessToken,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "shopify"),
	}
}

// CountParents returns the number of products in the remote catalog.
func (c *Client) CountParents(ctx context.Context) (int, error) {
	var resp countResponse
	if err := c.get(ctx, c.baseURL+"/products/count.json", &resp); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return resp.Count, nil
}

// CountFlatRecords returns the number of variants in the remote catalog.
func (c *Client) CountFlatRecords(ctx context.Context) (int, error) {
	var resp countResponse
	if err := c.get(ctx, c.baseURL+"/variants/count.json", &resp); err != nil {
		return 0, fmt.Errorf("count variants: %w", err)
	}
	return resp.Count, nil
}

// FetchAll pages through the full product list and flattens every
// variant into a RemoteRecord.
func (c *Client) FetchAll(ctx context.Context) ([]domain.RemoteRecord, error) {
	var records []domain.RemoteRecord

	next := fmt.Sprintf("%s/products.json?limit=%d", c.baseURL, c.pageSize)
	for next != "" {
		var page productsResponse
		header, err := c.getWithHeader(ctx, next, &page)
		if err != nil {
			return nil, fmt.Errorf("fetch products page: %w", err)
		}

		for _, p := range page.Products {
			records = append(records, c.flatten(p)...)
		}

		c.logger.Debug("fetched products page",
			"products", len(page.Products),
			"total_records", len(records),
		)

		next = nextPageURL(header.Get("Link"))
	}

	return records, nil
}

// FetchCost looks up the unit cost for one inventory item. A nil result
// means the platform has no cost recorded.
func (c *Client) FetchCost(ctx context.Context, inventoryID int64) (*int64, error) {
	var resp inventoryItemResponse
	u := fmt.Sprintf("%s/inventory_items/%d.json", c.baseURL, inventoryID)
	if err := c.get(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("fetch inventory item %d: %w", inventoryID, err)
	}
	if resp.InventoryItem.Cost == nil {
		return nil, nil
	}
	cents, err := parsePrice(*resp.InventoryItem.Cost)
	if err != nil {
		return nil, fmt.Errorf("parse cost for item %d: %w", inventoryID, err)
	}
	return &cents, nil
}

func (c *Client) flatten(p apiProduct) []domain.RemoteRecord {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.Src)
	}

	records := make([]domain.RemoteRecord, 0, len(p.Variants))
	for _, v := range p.Variants {
		price, err := parsePrice(v.Price)
		if err != nil {
			c.logger.Warn("failed to parse variant price",
				"variant_id", v.ID,
				"price", v.Price,
			)
		}

		title := p.Title
		if v.Title != "" && v.Title != "Default Title" {
			title = p.Title + " - " + v.Title
		}

		records = append(records, domain.RemoteRecord{
			ExternalID:  v.ID,
			ParentID:    p.ID,
			InventoryID: v.InventoryItemID,
			SKU:         v.SKU,
			Title:       title,
			Price:       price,
			Vendor:      p.Vendor,
			Category:    p.ProductType,
			Images:      images,
		})
	}
	return records
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	_, err := c.getWithHeader(ctx, url, out)
	return err
}

func (c *Client) getWithHeader(ctx context.Context, url string, out any) (http.Header, error) {
	if c.accessToken == "" {
		return nil, fmt.Errorf("%w: access token not configured", ErrAuth)
	}

	var header http.Header
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		header, err = c.doRequest(ctx, url, out)
		if err == nil {
			return header, nil
		}
		if errors.Is(err, ErrAuth) || attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	if errors.Is(err, ErrAuth) {
		return nil, err
	}
	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, url string, out any) (http.Header, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusPaymentRequired,
		resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return resp.Header, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

// nextPageURL extracts the rel="next" cursor URL from a Link header.
// Empty when the last page has been reached.
func nextPageURL(link string) string {
	for _, part := range strings.Split(link, ",") {
		sections := strings.Split(part, ";")
		if len(sections) < 2 {
			continue
		}
		if !strings.Contains(sections[1], `rel="next"`) {
			continue
		}
		raw := strings.Trim(strings.TrimSpace(sections[0]), "<>")
		if _, err := url.Parse(raw); err != nil {
			return ""
		}
		return raw
	}
	return ""
}

// parsePrice converts a decimal price string like "19.99" to cents.
func parsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	whole, frac, _ := strings.Cut(s, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}

	var cents int64
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q", s)
		}
	}

	return dollars*100 + cents, nil
}
