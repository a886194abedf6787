package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IzGus/wc-product-manager/internal/config"
	"github.com/IzGus/wc-product-manager/internal/product"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		SiteURL:         url,
		ConsumerKey:     "ck_test",
		ConsumerSecret:  "cs_test",
		ProductsPerPage: 2,
		RequestTimeout:  5 * time.Second,
	}
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient(&config.Config{SiteURL: "https://shop.example"})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_SendsQueryCredentials(t *testing.T) {
	var gotKey, gotSecret string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("consumer_key")
		gotSecret = r.URL.Query().Get("consumer_secret")
		fmt.Fprint(w, "[]")
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	require.NoError(t, client.TestConnection(context.Background()))
	assert.Equal(t, "ck_test", gotKey)
	assert.Equal(t, "cs_test", gotSecret)
}

func TestClient_TestConnection_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"woocommerce_rest_cannot_view"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	err = client.TestConnection(context.Background())
	assert.ErrorIs(t, err, ErrStatus)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_ListProducts_Paginates(t *testing.T) {
	var pages []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pages = append(pages, page)
		switch page {
		case "1":
			fmt.Fprint(w, `[{"id":1,"name":"One","type":"simple"},{"id":2,"name":"Two","type":"simple"}]`)
		default:
			fmt.Fprint(w, `[{"id":3,"name":"Three","type":"simple"}]`)
		}
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, pages)
	require.Len(t, products, 3)
	assert.Equal(t, "One", products[0].Name)
	assert.Equal(t, 3, *products[2].ID)
}

func TestClient_CreateProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/wp-json/wc/v3/products", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var remote product.RemoteProduct
		require.NoError(t, json.NewDecoder(r.Body).Decode(&remote))
		assert.Equal(t, "Widget", remote.Name)

		remote.ID = product.IntPtr(42)
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(remote))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	created, err := client.CreateProduct(context.Background(), product.New("Widget"))
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, 42, *created.ID)
}

func TestClient_UpdateProduct_PathAndMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/wp-json/wc/v3/products/7", r.URL.Path)
		fmt.Fprint(w, `{"id":7,"name":"Widget","type":"simple"}`)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	updated, err := client.UpdateProduct(context.Background(), 7, product.New("Widget"))
	require.NoError(t, err)
	assert.Equal(t, 7, *updated.ID)
}

func TestClient_DeleteProduct_Force(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/wp-json/wc/v3/products/9", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("force"))
		fmt.Fprint(w, `{"id":9}`)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	assert.NoError(t, client.DeleteProduct(context.Background(), 9, true))
}

func TestClient_GetProductBySKU(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("sku") {
		case "WID-1":
			fmt.Fprint(w, `[{"id":5,"name":"Widget","sku":"WID-1","type":"simple"}]`)
		default:
			fmt.Fprint(w, "[]")
		}
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		p, err := client.GetProductBySKU(context.Background(), "WID-1")
		require.NoError(t, err)
		assert.Equal(t, "WID-1", p.SKU)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := client.GetProductBySKU(context.Background(), "NOPE")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestClient_ListCategoriesAndAttributes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/wc/v3/products/categories":
			fmt.Fprint(w, `[{"id":15,"name":"Одежда","slug":"odezhda","parent":0,"count":12}]`)
		case "/wp-json/wc/v3/products/attributes":
			fmt.Fprint(w, `[{"id":1,"name":"Цвет","slug":"pa_cvet","type":"select"}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Одежда", categories[0].Name)

	attributes, err := client.ListAttributes(context.Background())
	require.NoError(t, err)
	require.Len(t, attributes, 1)
	assert.Equal(t, "Цвет", attributes[0].Name)
}

func TestClient_CreateVariation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wc/v3/products/42/variations", r.URL.Path)

		var remote product.RemoteVariation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&remote))
		assert.Equal(t, "19.99", remote.RegularPrice)

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":101}`)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	v := &product.Variation{
		RegularPrice: "19.99",
		Attributes:   []product.VariationAttribute{{Name: "Размер", Option: "M"}},
	}
	assert.NoError(t, client.CreateVariation(context.Background(), 42, v))
}
