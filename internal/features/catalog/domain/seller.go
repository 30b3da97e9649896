package domain

import "strings"

// SellerType classifies a selling party.
type SellerType string

const (
	// SellerTypeWholesaler supplies goods at cost basis to resellers.
	SellerTypeWholesaler SellerType = "wholesaler"
	// SellerTypeReseller lists a wholesaler's goods at markup and owes the
	// wholesaler payment upon sale.
	SellerTypeReseller SellerType = "reseller"
)

// Seller represents a selling party on the marketplace.
type Seller struct {
	// ID is the unique identifier for the seller.
	ID string `json:"id"`
	// Name is the display name of the seller.
	Name string `json:"name"`
	// Type indicates whether this seller is a wholesaler or a reseller.
	Type SellerType `json:"type"`
	// BrandAliases are alternate brand labels that resolve to this seller.
	BrandAliases []string `json:"brand_aliases,omitempty"`
	// IsDefault marks the fallback wholesaler. At most one seller is
	// expected to carry this flag.
	IsDefault bool `json:"is_default,omitempty"`
}

// MatchesBrand reports whether the given brand equals the seller's name or
// one of its aliases, ignoring case.
func (s Seller) MatchesBrand(brand string) bool {
	if brand == "" {
		return false
	}
	if strings.EqualFold(s.Name, brand) {
		return true
	}
	for _, alias := range s.BrandAliases {
		if strings.EqualFold(alias, brand) {
			return true
		}
	}
	return false
}

// Directory is an in-memory snapshot of the seller table supporting pure
// lookups. Resolution never mutates the directory.
type Directory struct {
	sellers []Seller
}

// NewDirectory creates a Directory over the given sellers.
func NewDirectory(sellers []Seller) *Directory {
	return &Directory{sellers: sellers}
}

// Sellers returns the sellers backing the directory.
func (d *Directory) Sellers() []Seller {
	return d.sellers
}

// ResolveSeller determines the selling party for a product.
// Resolution order: direct seller ID match, then case-insensitive brand
// match against seller names and aliases, then the default wholesaler.
// Returns nil when nothing matches.
func (d *Directory) ResolveSeller(p Product) *Seller {
	if p.SellerID != "" {
		for i := range d.sellers {
			if d.sellers[i].ID == p.SellerID {
				return &d.sellers[i]
			}
		}
	}

	for i := range d.sellers {
		if d.sellers[i].MatchesBrand(p.Brand) {
			return &d.sellers[i]
		}
	}

	return d.DefaultWholesaler()
}

// ResolveWholesaler determines the wholesaler that must fulfill a product.
// A wholesaler-listed product resolves to its own seller. A reseller-listed
// product re-resolves by brand against wholesaler-type sellers only, since
// the direct seller ID points at the reseller. Falls back to the default
// wholesaler. A nil result is a valid outcome (catalog misconfiguration):
// callers must tolerate it by not creating a purchase obligation.
func (d *Directory) ResolveWholesaler(p Product) *Seller {
	seller := d.ResolveSeller(p)
	if seller != nil && seller.Type == SellerTypeWholesaler {
		return seller
	}

	for i := range d.sellers {
		if d.sellers[i].Type != SellerTypeWholesaler {
			continue
		}
		if d.sellers[i].MatchesBrand(p.Brand) {
			return &d.sellers[i]
		}
	}

	return d.DefaultWholesaler()
}

// DefaultWholesaler returns the wholesaler flagged as default, or nil.
func (d *Directory) DefaultWholesaler() *Seller {
	for i := range d.sellers {
		if d.sellers[i].IsDefault && d.sellers[i].Type == SellerTypeWholesaler {
			return &d.sellers[i]
		}
	}
	return nil
}
