package warehouse

import "time"

// Product is an inventory item owned by one user.
type Product struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Name        string    `json:"name"`
	Category    *string   `json:"category,omitempty"`
	Barcode     *string   `json:"barcode,omitempty"`
	Price       float64   `json:"price"`
	Quantity    float64   `json:"quantity"`
	MinQuantity float64   `json:"min_quantity"`
	Unit        string    `json:"unit"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Movement kinds.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// Movement is a stock change against a product.
type Movement struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Type        string    `json:"movement_type"`
	Quantity    float64   `json:"quantity"`
	Price       float64   `json:"price"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

// Stats summarizes the stock for the reports screen.
type Stats struct {
	TotalProducts int64   `json:"total_products"`
	TotalValue    float64 `json:"total_value"`
	LowStockCount int64   `json:"low_stock_count"`
}
