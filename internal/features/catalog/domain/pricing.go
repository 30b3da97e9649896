package domain

import "math"

// DefaultWholesaleMargin is the fraction of the retail price treated as
// reseller profit when no override is configured.
const DefaultWholesaleMargin = 0.3

// WholesalePrice derives the per-unit cost a reseller owes the wholesaler
// from a retail price, rounded to cents.
//
// The margin is intentionally not validated: a margin >= 1 yields a zero or
// negative wholesale price and is accepted as-is, matching the storefront's
// observed behavior.
func WholesalePrice(retail, margin float64) float64 {
	return math.Round(retail*(1-margin)*100) / 100
}
