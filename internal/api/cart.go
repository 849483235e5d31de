package api

import (
	"context"
	"fmt"
	"net/http"
)

// Cart fetches the user's shopping cart.
func (c *Client) Cart(ctx context.Context) (*Cart, error) {
	var cart Cart
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddCartItem adds a game to the cart. Quantity must be at least 1.
func (c *Client) AddCartItem(ctx context.Context, gameID int64, quantity int) (*Cart, error) {
	var cart Cart
	err := c.do(ctx, http.MethodPost, "/api/cart/items", addCartItemRequest{
		GameID:   gameID,
		Quantity: quantity,
	}, &cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateCartItem changes the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) (*Cart, error) {
	var cart Cart
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cart/items/%d", itemID), updateCartItemRequest{
		Quantity: quantity,
	}, &cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveCartItem deletes one line from the cart.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/items/%d", itemID), nil, nil)
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/cart", nil, nil)
}
