package domain

// ImportRowError describes one input row that was skipped.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Created  int              `json:"created"`
	Existing int              `json:"existing"`
	Skipped  []ImportRowError `json:"skipped"`
}
