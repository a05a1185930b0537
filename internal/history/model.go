package history

import "cvmatch-backend/internal/analysis"

// Item is one saved analysis. Items are immutable after creation and owned
// by the email partition they are stored under.
type Item struct {
	ID        string          `json:"id"`
	Timestamp int64           `json:"timestamp"` // epoch milliseconds
	CVText    string          `json:"cvText"`
	JDText    string          `json:"jdText"`
	Result    analysis.Result `json:"result"`
}
