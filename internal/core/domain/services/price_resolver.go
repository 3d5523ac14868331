package services

import (
	"fmt"
	"sort"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
)

// PriceQuote is the result of price resolution. A quote with Found false is
// a valid negative result, not an error: the caller decides whether "no
// price" fails the surrounding operation (shipment creation does) or is
// simply reported (the price-calculation query does).
type PriceQuote struct {
	Price  kernel.Money
	RuleID kernel.UUID
	Found  bool
	Reason string
}

// PriceResolver finds the applicable pricing rule for a shipment and
// returns the price to lock onto it. It is a pure function over a candidate
// rule set; fetching the candidates is the repository's job.
//
// Resolution order:
//  1. Active rules scoped to the given merchant whose zone and weight band
//     match; among several, the most recently created wins.
//  2. Otherwise the same search over tenant-default rules (nil merchant).
//  3. Otherwise a no-price quote with a human-readable reason.
type PriceResolver struct{}

// NewPriceResolver creates a PriceResolver.
func NewPriceResolver() *PriceResolver {
	return &PriceResolver{}
}

// Resolve picks the applicable rule for the given merchant, zone and
// weight. The rules slice may contain rules of any scope and zone; only
// rules of the shipment's tenant must be passed in. Read-only.
func (pr *PriceResolver) Resolve(
	rules []*pricing.Rule,
	merchantID kernel.UUID,
	zone string,
	weight kernel.Weight,
) PriceQuote {
	if winner := pickNewest(rules, func(r *pricing.Rule) bool {
		return r.IsMerchantScoped() && r.AppliesTo(merchantID) && r.Matches(zone, weight)
	}); winner != nil {
		return PriceQuote{Price: winner.Price(), RuleID: winner.ID(), Found: true}
	}

	if winner := pickNewest(rules, func(r *pricing.Rule) bool {
		return !r.IsMerchantScoped() && r.Matches(zone, weight)
	}); winner != nil {
		return PriceQuote{Price: winner.Price(), RuleID: winner.ID(), Found: true}
	}

	return PriceQuote{
		Reason: fmt.Sprintf(
			"no active pricing rule covers zone %q at weight %s for this merchant or its tenant",
			zone, weight),
	}
}

// pickNewest returns the most recently created rule satisfying the
// predicate, or nil.
func pickNewest(rules []*pricing.Rule, match func(*pricing.Rule) bool) *pricing.Rule {
	matched := make([]*pricing.Rule, 0, len(rules))
	for _, r := range rules {
		if match(r) {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})
	return matched[0]
}
