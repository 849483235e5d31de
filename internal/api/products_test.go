package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRoutes(t *testing.T) {
	type seen struct {
		method string
		path   string
	}

	var got seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = seen{method: r.Method, path: r.URL.Path}
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			if r.URL.Path == "/api/products" && r.Method == http.MethodGet {
				writeJSON(w, http.StatusOK, ProductList{Page: 1})
				return
			}
			writeJSON(w, http.StatusOK, Product{ID: 7})
		}
	}))
	defer srv.Close()

	store := seedStore(t, "access-1", "refresh-1")
	client := newTestClient(srv.URL, store, nil)
	ctx := context.Background()

	price := 19.99
	tests := []struct {
		name       string
		call       func() error
		wantMethod string
		wantPath   string
	}{
		{
			name: "list",
			call: func() error {
				_, err := client.ListProducts(ctx, 0, 0)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/products",
		},
		{
			name: "get",
			call: func() error {
				_, err := client.Product(ctx, 7)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/products/7",
		},
		{
			name: "create",
			call: func() error {
				_, err := client.CreateProduct(ctx, &CreateProductRequest{RawgID: 3498, Price: 19.99})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/products",
		},
		{
			name: "update",
			call: func() error {
				_, err := client.UpdateProduct(ctx, 7, &UpdateProductRequest{Price: &price})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/products/7",
		},
		{
			name: "delete",
			call: func() error {
				return client.DeleteProduct(ctx, 7)
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/products/7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.wantMethod, got.method)
			assert.Equal(t, tt.wantPath, got.path)
		})
	}
}
