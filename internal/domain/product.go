package domain

type Product struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Price            float64  `json:"price"`
	StockQuantity    int      `json:"stockQuantity"`
	SKU              string   `json:"sku,omitempty"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	AdditionalImages []string `json:"additionalImages,omitempty"`
	CategoryID       int64    `json:"categoryId,omitempty"`
	CategoryName     string   `json:"categoryName,omitempty"`
	Active           bool     `json:"active"`
	Featured         bool     `json:"featured"`
	Rating           float64  `json:"rating,omitempty"`
	ReviewCount      int      `json:"reviewCount,omitempty"`
	DiscountPrice    float64  `json:"discountPrice,omitempty"`
	EffectivePrice   float64  `json:"effectivePrice"`
	InStock          bool     `json:"inStock"`
	CreatedAt        string   `json:"createdAt,omitempty"`
	UpdatedAt        string   `json:"updatedAt,omitempty"`
}

type Category struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	ParentID      int64      `json:"parentId,omitempty"`
	ParentName    string     `json:"parentName,omitempty"`
	Active        bool       `json:"active"`
	Subcategories []Category `json:"subcategories,omitempty"`
	CreatedAt     string     `json:"createdAt,omitempty"`
	UpdatedAt     string     `json:"updatedAt,omitempty"`
}
