package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListProducts pages through the store's listings.
func (c *Client) ListProducts(ctx context.Context, page, pageSize int) (*ProductList, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", fmt.Sprint(page))
	}
	if pageSize > 0 {
		params.Set("page_size", fmt.Sprint(pageSize))
	}

	path := "/api/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list ProductList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Product fetches a single store listing.
func (c *Client) Product(ctx context.Context, productID int64) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", productID), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a store listing from a catalog game. Admin only.
func (c *Client) CreateProduct(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/api/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct partially updates a listing. Admin only.
func (c *Client) UpdateProduct(ctx context.Context, productID int64, req *UpdateProductRequest) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", productID), req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a listing. Admin only.
func (c *Client) DeleteProduct(ctx context.Context, productID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", productID), nil, nil)
}
