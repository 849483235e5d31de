package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateOrder checks out the current cart into an order. The payment intent
// id is attached when the checkout went through Stripe.
func (c *Client) CreateOrder(ctx context.Context, stripePaymentIntentID *string) (*Order, error) {
	var order Order
	err := c.do(ctx, http.MethodPost, "/api/orders", createOrderRequest{
		StripePaymentIntentID: stripePaymentIntentID,
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders pages through the user's own orders.
func (c *Client) ListOrders(ctx context.Context, page, pageSize int) (*OrderList, error) {
	return c.listOrders(ctx, "/api/orders", page, pageSize)
}

// ListAllOrders pages through every order. Admin only.
func (c *Client) ListAllOrders(ctx context.Context, page, pageSize int) (*OrderList, error) {
	return c.listOrders(ctx, "/api/orders/admin/all", page, pageSize)
}

func (c *Client) listOrders(ctx context.Context, path string, page, pageSize int) (*OrderList, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", fmt.Sprint(page))
	}
	if pageSize > 0 {
		params.Set("page_size", fmt.Sprint(pageSize))
	}
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list OrderList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Order fetches one order by id.
func (c *Client) Order(ctx context.Context, orderID int64) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus moves an order to a new status. Admin only.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*Order, error) {
	var order Order
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", orderID), updateOrderStatusRequest{
		Status: status,
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
