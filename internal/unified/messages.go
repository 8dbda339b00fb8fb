package unified

// NavigateMsg is emitted when a view wants to navigate to another view
type NavigateMsg struct {
	Target string // the target view ("search", "watchlist", "detail", "hub")
	GameID int    // service-assigned game id, for "detail"
}

// QuitAppMsg is emitted when the entire application should quit
type QuitAppMsg struct{}
