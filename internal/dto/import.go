package dto

import "github.com/soyjefu/theprepared-PFM/internal/core/domain"

// ImportResponse summarizes a bulk import.
type ImportResponse struct {
	Created  int                     `json:"created"`
	Existing int                     `json:"existing"`
	Skipped  []domain.ImportRowError `json:"skipped"`
}

// ToImportResponse converts a domain.ImportResult.
func ToImportResponse(r *domain.ImportResult) ImportResponse {
	skipped := r.Skipped
	if skipped == nil {
		skipped = []domain.ImportRowError{}
	}
	return ImportResponse{Created: r.Created, Existing: r.Existing, Skipped: skipped}
}
