package dto

type ProductResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Brand          string  `json:"brand"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	Dmc            float64 `json:"dmc"`
	Discount       float64 `json:"discount"`
	Stock          int64   `json:"stock"`
	RemainingStock int64   `json:"remainingStock"`
	InStock        bool    `json:"inStock"`
	IsVisible      bool    `json:"isVisible"`
	Image          string  `json:"image"`
	CreatedDate    int64   `json:"createdDate"`
}

type ProductDetailResponse struct {
	ProductResponse
	Reviews []ReviewResponse `json:"reviews"`
}

type ReviewResponse struct {
	ID          int64        `json:"id"`
	Rating      int64        `json:"rating"`
	Comment     string       `json:"comment"`
	CreatedDate int64        `json:"createdDate"`
	User        ReviewAuthor `json:"user"`
}

type ReviewAuthor struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type CategoryResponse struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
