package entities

import "time"

// Product is a catalog item
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Tags        []string  `json:"tags"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PriceRange bounds a product search by price. Zero values mean unbounded.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchProductsInput represents a privacy-aware product search
type SearchProductsInput struct {
	Query           string      `json:"query"`
	Category        string      `json:"category"`
	PriceRange      *PriceRange `json:"priceRange"`
	UserID          string      `json:"userId"`
	TrackingConsent bool        `json:"trackingConsent"`
	Limit           int         `json:"limit"`
}

// ProductSearchResult is the shaped search response
type ProductSearchResult struct {
	Products    []*Product `json:"products"`
	Total       int        `json:"total"`
	Query       string     `json:"query"`
	PrivacyMode bool       `json:"privacyMode"`
	Anonymous   bool       `json:"anonymous"`
}
