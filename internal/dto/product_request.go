package dto

// ProductRequest is the create-product payload. The admin form posts the
// numeric fields as strings, so they are parsed (and defaulted) in the
// service layer rather than bound as numbers here.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Dmc         string `json:"dmc"`
	Discount    string `json:"discount"`
	Stock       string `json:"stock"`
	InStock     *bool  `json:"inStock"`
	IsVisible   *bool  `json:"isVisible"`
	Image       string `json:"image"`
	UserRole    string `json:"-"`
}

// UpdateProductRequest is the sparse edit payload. Nil pointers mean the
// field was absent from the request body and must stay untouched.
type UpdateProductRequest struct {
	ID        string  `json:"id"`
	InStock   *bool   `json:"inStock"`
	IsVisible *bool   `json:"isVisible"`
	Discount  *string `json:"discount"`
	Image     *string `json:"image"`
	UserRole  string  `json:"-"`
}
