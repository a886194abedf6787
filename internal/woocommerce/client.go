package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/IzGus/wc-product-manager/internal/config"
	"github.com/IzGus/wc-product-manager/internal/logger"
	"github.com/IzGus/wc-product-manager/internal/product"
)

// requestsPerSecond caps outgoing API calls so bulk pushes do not trip
// the store's throttling.
const requestsPerSecond = 5

// Category is a product category as the store reports it.
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Parent int    `json:"parent"`
	Count  int    `json:"count"`
}

// AttributeTerm is a global product attribute registered on the store.
type AttributeTerm struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Type string `json:"type"`
}

// Client talks to the WooCommerce REST API of a single store.
type Client struct {
	baseURL string
	key     string
	secret  string
	perPage int
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a client from config. It fails fast when the store
// credentials are missing so callers do not discover it on the first call.
func NewClient(cfg *config.Config) (*Client, error) {
	if !cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.SiteURL, "/") + "/wp-json/" + config.APIVersion,
		key:     cfg.ConsumerKey,
		secret:  cfg.ConsumerSecret,
		perPage: cfg.ProductsPerPage,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("consumer_key", c.key)
	query.Set("consumer_secret", c.secret)

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query.Encode(), payload)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}

func statusErr(want, got int, body []byte) error {
	msg := string(body)
	if len(msg) > 256 {
		msg = msg[:256]
	}
	return fmt.Errorf("%w: got %d, want %d: %s", ErrStatus, got, want, msg)
}

// TestConnection verifies the credentials with a cheap single-product fetch.
func (c *Client) TestConnection(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(zap.String("layer", "woocommerce"), zap.String("method", "TestConnection"))

	q := url.Values{"per_page": {"1"}}
	status, body, err := c.do(ctx, http.MethodGet, "/products", q, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		log.Warn("connection check failed", zap.Int("status", status))
		return statusErr(http.StatusOK, status, body)
	}
	log.Info("connection check ok")
	return nil
}

// ListProducts pages through the whole catalog and returns it as
// canonical products. Pagination stops on the first short page.
func (c *Client) ListProducts(ctx context.Context) ([]*product.Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "woocommerce"), zap.String("method", "ListProducts"))

	var products []*product.Product
	for page := 1; ; page++ {
		q := url.Values{
			"per_page": {strconv.Itoa(c.perPage)},
			"page":     {strconv.Itoa(page)},
		}
		status, body, err := c.do(ctx, http.MethodGet, "/products", q, nil)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, statusErr(http.StatusOK, status, body)
		}

		var remotes []product.RemoteProduct
		if err := json.Unmarshal(body, &remotes); err != nil {
			return nil, fmt.Errorf("decode products page %d: %w", page, err)
		}
		for _, r := range remotes {
			products = append(products, product.FromRemote(r))
		}
		if len(remotes) < c.perPage {
			break
		}
	}

	log.Info("fetched products", zap.Int("count", len(products)))
	return products, nil
}

// CreateProduct registers a new product on the store and returns the
// stored version, server-assigned ID included.
func (c *Client) CreateProduct(ctx context.Context, p *product.Product) (*product.Product, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/products", nil, p.ToRemote())
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, statusErr(http.StatusCreated, status, body)
	}

	var remote product.RemoteProduct
	if err := json.Unmarshal(body, &remote); err != nil {
		return nil, fmt.Errorf("decode created product: %w", err)
	}
	return product.FromRemote(remote), nil
}

// UpdateProduct overwrites the product with the given ID.
func (c *Client) UpdateProduct(ctx context.Context, id int, p *product.Product) (*product.Product, error) {
	status, body, err := c.do(ctx, http.MethodPut, "/products/"+strconv.Itoa(id), nil, p.ToRemote())
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(http.StatusOK, status, body)
	}

	var remote product.RemoteProduct
	if err := json.Unmarshal(body, &remote); err != nil {
		return nil, fmt.Errorf("decode updated product: %w", err)
	}
	return product.FromRemote(remote), nil
}

// DeleteProduct removes a product. With force the store skips the trash
// and deletes permanently.
func (c *Client) DeleteProduct(ctx context.Context, id int, force bool) error {
	q := url.Values{"force": {strconv.FormatBool(force)}}
	status, body, err := c.do(ctx, http.MethodDelete, "/products/"+strconv.Itoa(id), q, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return statusErr(http.StatusOK, status, body)
	}
	return nil
}

// GetProductBySKU looks a product up by its SKU. A missing SKU is
// reported as ErrNotFound, not as an empty result.
func (c *Client) GetProductBySKU(ctx context.Context, sku string) (*product.Product, error) {
	q := url.Values{"sku": {sku}}
	status, body, err := c.do(ctx, http.MethodGet, "/products", q, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(http.StatusOK, status, body)
	}

	var remotes []product.RemoteProduct
	if err := json.Unmarshal(body, &remotes); err != nil {
		return nil, fmt.Errorf("decode product lookup: %w", err)
	}
	if len(remotes) == 0 {
		return nil, fmt.Errorf("%w: sku %q", ErrNotFound, sku)
	}
	return product.FromRemote(remotes[0]), nil
}

// ListCategories returns the store's category tree, flat.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	q := url.Values{"per_page": {"100"}}
	status, body, err := c.do(ctx, http.MethodGet, "/products/categories", q, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(http.StatusOK, status, body)
	}

	var categories []Category
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

// ListAttributes returns the store's global attributes.
func (c *Client) ListAttributes(ctx context.Context) ([]AttributeTerm, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/products/attributes", nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(http.StatusOK, status, body)
	}

	var attributes []AttributeTerm
	if err := json.Unmarshal(body, &attributes); err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}
	return attributes, nil
}

// CreateVariation attaches a variation to an existing variable product.
func (c *Client) CreateVariation(ctx context.Context, parentID int, v *product.Variation) error {
	path := "/products/" + strconv.Itoa(parentID) + "/variations"
	status, body, err := c.do(ctx, http.MethodPost, path, nil, v.ToRemote())
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return statusErr(http.StatusCreated, status, body)
	}
	return nil
}
