package domain

type Product struct {
	ID             int64   `db:"id"`
	ExternalID     string  `db:"external_id"`
	Name           string  `db:"name"`
	Description    string  `db:"description"`
	Brand          string  `db:"brand"`
	Category       string  `db:"category"`
	Price          float64 `db:"price"`
	Dmc            float64 `db:"dmc"`
	Discount       float64 `db:"discount"`
	Stock          int64   `db:"stock"`
	RemainingStock int64   `db:"remaining_stock"`
	InStock        bool    `db:"in_stock"`
	IsVisible      bool    `db:"is_visible"`
	Image          string  `db:"image"`
	CreatedAt      int64   `db:"created_at"`
	UpdatedAt      int64   `db:"updated_at"`
	DeletedAt      *int64  `db:"deleted_at"`
}

// ProductUpdate carries the sparse fields an admin edit may touch. A nil
// pointer means the column is left as stored.
type ProductUpdate struct {
	InStock   *bool
	IsVisible *bool
	Discount  *float64
	Image     *string
}

type Review struct {
	ID         int64  `db:"id"`
	ProductID  int64  `db:"product_id"`
	UserID     int64  `db:"user_id"`
	Rating     int64  `db:"rating"`
	Comment    string `db:"comment"`
	CreatedAt  int64  `db:"created_at"`
	UserName   string `db:"user_name"`
	UserEmail  string `db:"user_email"`
	ExternalID string `db:"external_id"`
}

type Category struct {
	ID        int64  `db:"id"`
	Label     string `db:"label"`
	Icon      string `db:"icon"`
	SortOrder int64  `db:"sort_order"`
}
