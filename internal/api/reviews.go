package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateReview posts a review for a game. Rating runs 1 to 5.
func (c *Client) CreateReview(ctx context.Context, gameID int64, rating int, comment *string) (*Review, error) {
	var review Review
	err := c.do(ctx, http.MethodPost, "/api/reviews", createReviewRequest{
		GameID:  gameID,
		Rating:  rating,
		Comment: comment,
	}, &review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GameReviews pages through a game's reviews.
func (c *Client) GameReviews(ctx context.Context, gameID int64, page, pageSize int) (*ReviewList, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", fmt.Sprint(page))
	}
	if pageSize > 0 {
		params.Set("page_size", fmt.Sprint(pageSize))
	}

	path := fmt.Sprintf("/api/reviews/game/%d", gameID)
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list ReviewList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateReview edits the caller's own review.
func (c *Client) UpdateReview(ctx context.Context, reviewID int64, req *UpdateReviewRequest) (*Review, error) {
	var review Review
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/reviews/%d", reviewID), req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes the caller's own review.
func (c *Client) DeleteReview(ctx context.Context, reviewID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", reviewID), nil, nil)
}
