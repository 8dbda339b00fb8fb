package api

import (
	"context"
	"fmt"
)

// addGameRequest is the POST /games payload.
type addGameRequest struct {
	APIGameID string `json:"api_game_id"`
}

// AddGame asks the service to start tracking a game. The service is the
// final arbiter of uniqueness: adding an already-tracked id returns the
// existing entry unchanged.
func (c *Client) AddGame(ctx context.Context, apiGameID string) (*GameSummary, error) {
	var game GameSummary
	if err := c.postJSON(ctx, "/games", addGameRequest{APIGameID: apiGameID}, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// ListGames fetches the full current watchlist.
func (c *Client) ListGames(ctx context.Context) ([]GameSummary, error) {
	var games []GameSummary
	if err := c.getJSON(ctx, "/games", nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// GameDetail fetches the pre-aggregated detail view for one game by its
// service-assigned id.
func (c *Client) GameDetail(ctx context.Context, id int) (*GameDetail, error) {
	var detail GameDetail
	if err := c.getJSON(ctx, fmt.Sprintf("/games/%d", id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// RefreshMetadata asks the service to re-scrape one game's store page.
func (c *Client) RefreshMetadata(ctx context.Context, id int) (*GameMetadata, error) {
	var meta GameMetadata
	if err := c.postJSON(ctx, fmt.Sprintf("/games/%d/refresh_metadata", id), nil, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// RefreshPrices triggers a bulk price re-poll for every tracked game.
func (c *Client) RefreshPrices(ctx context.Context) (*RefreshSummary, error) {
	var summary RefreshSummary
	if err := c.postJSON(ctx, "/refresh", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
