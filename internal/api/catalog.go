package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SearchGames queries the external game catalog. Zero page values fall back
// to the backend's defaults.
func (c *Client) SearchGames(ctx context.Context, query string, page, pageSize int) (*GameList, error) {
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", fmt.Sprint(page))
	}
	if pageSize > 0 {
		params.Set("page_size", fmt.Sprint(pageSize))
	}

	var list GameList
	if err := c.do(ctx, http.MethodGet, "/api/catalog/search?"+params.Encode(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GameDetail fetches the full catalog record for one game.
func (c *Client) GameDetail(ctx context.Context, gameID int64) (*GameDetail, error) {
	var detail GameDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/catalog/game/%d", gameID), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Genres lists the catalog's game genres.
func (c *Client) Genres(ctx context.Context) (*GenreList, error) {
	var list GenreList
	if err := c.do(ctx, http.MethodGet, "/api/catalog/genres", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Platforms lists the catalog's gaming platforms.
func (c *Client) Platforms(ctx context.Context) (*PlatformList, error) {
	var list PlatformList
	if err := c.do(ctx, http.MethodGet, "/api/catalog/platforms", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
