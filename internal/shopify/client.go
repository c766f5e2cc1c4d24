// Package shopify fetches the public product catalog from the shop's
// products.json endpoint.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Veloruze/shop-comofootball-bot/internal/common"
	"github.com/Veloruze/shop-comofootball-bot/internal/model"
	"github.com/Veloruze/shop-comofootball-bot/internal/service"

	"github.com/shopspring/decimal"
)

// pageLimit is the maximum page size the endpoint serves.
const pageLimit = 250

// defaultSizeType marks products with no real variant axis.
const defaultSizeType = "Default Title"

// sizeOptionNames are the variant option labels the shop uses for sizes.
var sizeOptionNames = map[string]struct{}{
	"Size":    {},
	"Taglia":  {},
	"Options": {},
	"option":  {},
}

// Client implements the service.CatalogFetcher interface against a Shopify
// shop's public catalog.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryOpts  service.RetryOptions
}

// Shopify catalog response types.
type productsResponse struct {
	Products []shopProduct `json:"products"`
}

type shopProduct struct {
	ID       int64         `json:"id"`
	Title    string        `json:"title"`
	Handle   string        `json:"handle"`
	BodyHTML string        `json:"body_html"`
	Options  []shopOption  `json:"options"`
	Variants []shopVariant `json:"variants"`
}

type shopOption struct {
	Name string `json:"name"`
}

type shopVariant struct {
	Title          string `json:"title"`
	Price          string `json:"price"`
	CompareAtPrice string `json:"compare_at_price"`
}

// NewClient creates a catalog client for the given shop base URL, e.g.
// "https://store.comofootball.com/products.json".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryOpts: service.RetryOptions{MaxAttempts: 3},
	}
}

// FetchCatalog retrieves all products, following pagination until the last
// page. The returned slice preserves the catalog's own ordering.
func (c *Client) FetchCatalog(ctx context.Context) ([]model.Product, error) {
	var products []model.Product

	for page := 1; ; page++ {
		var batch []shopProduct
		err := common.WithRetry(ctx, func() error {
			var fetchErr error
			batch, fetchErr = c.fetchPage(ctx, page)
			return fetchErr
		}, c.retryOpts)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", common.ErrFetchFailed, page, err)
		}

		if len(batch) == 0 {
			break
		}

		slog.Debug("Fetched catalog page", "page", page, "products", len(batch))
		for i := range batch {
			products = append(products, mapProduct(&batch[i]))
		}

		// A short page is the last page.
		if len(batch) < pageLimit {
			break
		}
	}

	slog.Info("Fetched full catalog", "products", len(products))
	return products, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]shopProduct, error) {
	url := fmt.Sprintf("%s?page=%d&limit=%d", c.baseURL, page, pageLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, common.ErrRateLimit
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", common.ErrUpstreamStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var parsed productsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog page: %w", err)
	}
	return parsed.Products, nil
}

// mapProduct converts one Shopify product into the domain model: size type
// from the first size-like option, size tokens from variant titles, prices
// from the first variant.
func mapProduct(sp *shopProduct) model.Product {
	sizeType := defaultSizeType
	for _, opt := range sp.Options {
		if _, ok := sizeOptionNames[opt.Name]; ok {
			sizeType = opt.Name
			break
		}
	}

	var sizeTokens []string
	for _, v := range sp.Variants {
		if v.Title != defaultSizeType {
			sizeTokens = append(sizeTokens, v.Title)
		}
	}

	var currentPrice, originalPrice decimal.Decimal
	if len(sp.Variants) > 0 {
		first := sp.Variants[0]
		currentPrice = parsePrice(first.Price)
		// "0.00" compare-at means there was never a higher price.
		if compare := parsePrice(first.CompareAtPrice); compare.IsPositive() {
			originalPrice = compare
		}
	}

	return model.Product{
		ID:            strconv.FormatInt(sp.ID, 10),
		Title:         sp.Title,
		Handle:        sp.Handle,
		SizeType:      sizeType,
		Sizes:         sizeTokens,
		Description:   CleanDescription(sp.BodyHTML),
		CurrentPrice:  currentPrice,
		OriginalPrice: originalPrice,
	}
}

func parsePrice(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		slog.Warn("Unparseable price in catalog", "price", raw)
		return decimal.Zero
	}
	return price
}
