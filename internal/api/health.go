package api

import "context"

// Health pings the service. A nil error means the service answered and
// reported itself healthy.
func (c *Client) Health(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	return c.getJSON(ctx, "/health", nil, &status)
}
