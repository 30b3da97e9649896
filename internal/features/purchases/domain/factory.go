package domain

import (
	"time"

	catalog "marketplace-settlement/internal/features/catalog/domain"

	"github.com/google/uuid"
)

// SaleLine is one sold order line fed into the factory.
type SaleLine struct {
	// ProductID identifies the sold product.
	ProductID string
	// ProductName is the display name at sale time.
	ProductName string
	// UnitPrice is the retail price the end customer paid per unit.
	UnitPrice float64
	// Quantity is the number of units sold, at least 1.
	Quantity int
}

// ProductLookup resolves a product by ID, nil when unknown.
type ProductLookup func(id string) *catalog.Product

// BuildRecords creates one pending purchase obligation per reseller-sold
// line whose upstream wholesaler resolves. Wholesaler-sold lines are direct
// sales and produce no record, as do lines whose wholesaler cannot be
// determined. The result therefore never exceeds the number of lines, and
// identical products on separate lines are never batched.
//
// The wholesaler unit price is the product's precomputed wholesale price
// when set, otherwise derived from the sale price with the given margin.
func BuildRecords(orderID string, lines []SaleLine, dir *catalog.Directory, lookup ProductLookup, margin float64, now time.Time) []PurchaseRecord {
	records := make([]PurchaseRecord, 0, len(lines))

	for _, line := range lines {
		product := lookup(line.ProductID)
		if product == nil {
			continue
		}

		seller := dir.ResolveSeller(*product)
		if seller == nil || seller.Type != catalog.SellerTypeReseller {
			continue
		}

		wholesaler := dir.ResolveWholesaler(*product)
		if wholesaler == nil {
			// Catalog misconfiguration: no obligation can be attributed.
			continue
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}

		wholesalePrice := product.WholesalePrice
		if wholesalePrice == 0 {
			wholesalePrice = catalog.WholesalePrice(line.UnitPrice, margin)
		}

		name := line.ProductName
		if name == "" {
			name = product.Name
		}

		records = append(records, PurchaseRecord{
			ID:              uuid.NewString(),
			OrderID:         orderID,
			ProductID:       product.ID,
			ResellerID:      seller.ID,
			WholesalerID:    wholesaler.ID,
			ProductName:     name,
			Quantity:        quantity,
			ResellerPrice:   line.UnitPrice,
			WholesalerPrice: wholesalePrice,
			Status:          StatusPending,
			CreatedAt:       now,
			OrderDate:       now,
		})
	}

	return records
}
