package dto

import (
	"github.com/workmapr/employer_directory_app/internal/core/domain"
)

// ListBusinessesParams defines query parameters for listing businesses.
type ListBusinessesParams struct {
	State    string `form:"state"`
	City     string `form:"city"`
	Category string `form:"category"`
	Query    string `form:"q"`
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
}

// BusinessResponse defines data returned for a business.
type BusinessResponse struct {
	BusinessID string `json:"businessID"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Category   string `json:"category"`
	PhotoURL   string `json:"photoURL"`
}

// ToBusinessResponse converts domain.Business to DTO.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID: b.BusinessID,
		Name:       b.Name,
		Address:    b.Address,
		City:       b.City,
		State:      b.State,
		Category:   b.Category,
		PhotoURL:   b.PhotoURL,
	}
}

// ListBusinessesResponse wraps a list of businesses.
type ListBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// ToListBusinessesResponse converts a slice of domain.Business to DTO.
func ToListBusinessesResponse(bs []domain.Business) ListBusinessesResponse {
	list := make([]BusinessResponse, len(bs))
	for i, b := range bs {
		list[i] = ToBusinessResponse(&b)
	}
	return ListBusinessesResponse{Businesses: list}
}
