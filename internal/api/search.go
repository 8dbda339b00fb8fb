package api

import (
	"context"
	"net/url"
)

// Search queries the deals catalog. The query is sent as-is; local
// validation (empty queries never reach the network) is the search
// session's job, not the client's.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)

	var results []SearchResult
	if err := c.getJSON(ctx, "/search", q, &results); err != nil {
		return nil, err
	}
	return results, nil
}
