package api

// SearchResult is one game as returned by the search endpoint. The
// api_game_id is the stable upstream key used to join against watchlist
// membership.
type SearchResult struct {
	APIGameID     string   `json:"api_game_id"`
	Title         string   `json:"title"`
	Thumb         string   `json:"thumb,omitempty"`
	CheapestPrice *float64 `json:"cheapestPrice,omitempty"` // camelCase: upstream quirk
}

// GameSummary is a tracked game as returned by the watchlist endpoint.
// The numeric ID is assigned by the service; APIGameID ties the entry
// back to search results.
type GameSummary struct {
	ID            int        `json:"id"`
	APIGameID     string     `json:"api_game_id"`
	Title         string     `json:"title"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
	StoreURL      string     `json:"store_url,omitempty"`
	BestPrice     *float64   `json:"best_price,omitempty"`
	BestStore     string     `json:"best_store,omitempty"`
	LastUpdated   *Timestamp `json:"last_updated,omitempty"`
	CreatedAt     *Timestamp `json:"created_at,omitempty"`
	UpdatedAt     *Timestamp `json:"updated_at,omitempty"`
}

// PriceSnapshot is one store's current price for a game.
type PriceSnapshot struct {
	StoreName string    `json:"store_name"`
	Price     float64   `json:"price"`
	ListPrice *float64  `json:"list_price,omitempty"`
	Currency  string    `json:"currency"`
	Timestamp Timestamp `json:"timestamp"`
}

// PriceHistoryPoint is one day's minimum price. The service returns
// history ordered by date ascending.
type PriceHistoryPoint struct {
	Date     Date    `json:"date"`
	MinPrice float64 `json:"min_price"`
}

// GameMetadata is descriptive info scraped from the game's store page.
type GameMetadata struct {
	Description   string     `json:"description,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	LastScrapedAt *Timestamp `json:"last_scraped_at,omitempty"`
}

// GameDetail is the server-side aggregate for one game: summary,
// per-store current prices, daily minimum history, and metadata.
type GameDetail struct {
	Game          GameSummary         `json:"game"`
	CurrentPrices []PriceSnapshot     `json:"current_prices"`
	History       []PriceHistoryPoint `json:"history"`
	Metadata      *GameMetadata       `json:"metadata,omitempty"`
}

// RefreshSummary reports the outcome of a bulk price refresh.
type RefreshSummary struct {
	GamesProcessed    int `json:"games_processed"`
	SnapshotsInserted int `json:"snapshots_inserted"`
}
