package domain

// Product represents an item listed on the marketplace storefront.
// Products are reference data: loaded from the upstream catalog and never
// mutated by the settlement flow.
type Product struct {
	// ID is the unique identifier for the product.
	ID string `json:"id"`
	// Name is the display name of the product.
	Name string `json:"name"`
	// Price is the retail unit price shown to end customers.
	Price float64 `json:"price"`
	// Brand is the free-text brand label used for seller resolution.
	Brand string `json:"brand"`
	// Category is the storefront category the product is listed under.
	Category string `json:"category"`
	// Image is the URL of the product picture.
	Image string `json:"image,omitempty"`
	// SellerID references the Seller listing this product.
	SellerID string `json:"seller_id"`
	// InStock indicates whether the product is currently purchasable.
	InStock bool `json:"in_stock"`
	// WholesalePrice is the precomputed per-unit cost a reseller owes the
	// wholesaler. Zero means not set; the margin formula applies instead.
	WholesalePrice float64 `json:"wholesale_price,omitempty"`
}
