package services_test

import (
	"testing"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRule(t *testing.T, tenantID kernel.UUID, merchantID *kernel.UUID,
	zone string, from, to float64, cents int64, createdAt time.Time,
) *pricing.Rule {
	t.Helper()
	r, err := pricing.NewRule(
		kernel.NewUUID(), tenantID, merchantID, zone, from, to,
		kernel.MoneyFromCents(cents), createdAt)
	require.NoError(t, err)
	return r
}

func mustWeight(t *testing.T, kg float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(kg)
	require.NoError(t, err)
	return w
}

func TestPriceResolver_Resolve(t *testing.T) {
	tenantID := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	now := time.Now().UTC()
	resolver := services.NewPriceResolver()

	t.Run("merchant rule beats tenant default", func(t *testing.T) {
		rules := []*pricing.Rule{
			mustRule(t, tenantID, nil, "Cairo", 0, 5, 2500, now),
			mustRule(t, tenantID, &merchantID, "Cairo", 0, 5, 4000, now),
		}

		quote := resolver.Resolve(rules, merchantID, "Cairo", mustWeight(t, 3))
		require.True(t, quote.Found)
		assert.Equal(t, int64(4000), quote.Price.Cents())
		assert.Equal(t, rules[1].ID(), quote.RuleID)
	})

	t.Run("falls back to tenant default", func(t *testing.T) {
		otherMerchant := kernel.NewUUID()
		rules := []*pricing.Rule{
			mustRule(t, tenantID, nil, "Cairo", 0, 5, 2500, now),
			mustRule(t, tenantID, &otherMerchant, "Cairo", 0, 5, 4000, now),
		}

		quote := resolver.Resolve(rules, merchantID, "Cairo", mustWeight(t, 3))
		require.True(t, quote.Found)
		assert.Equal(t, int64(2500), quote.Price.Cents())
	})

	t.Run("newest matching rule wins within a scope", func(t *testing.T) {
		older := mustRule(t, tenantID, &merchantID, "Cairo", 0, 5, 3000, now.Add(-time.Hour))
		newer := mustRule(t, tenantID, &merchantID, "Cairo", 0, 5, 3500, now)

		quote := resolver.Resolve(
			[]*pricing.Rule{older, newer}, merchantID, "Cairo", mustWeight(t, 2))
		require.True(t, quote.Found)
		assert.Equal(t, newer.ID(), quote.RuleID)
	})

	t.Run("weight band ends are inclusive", func(t *testing.T) {
		rules := []*pricing.Rule{
			mustRule(t, tenantID, nil, "Cairo", 0, 5, 2500, now),
		}

		quote := resolver.Resolve(rules, merchantID, "Cairo", mustWeight(t, 5))
		require.True(t, quote.Found)

		quote = resolver.Resolve(rules, merchantID, "Cairo", mustWeight(t, 5.01))
		assert.False(t, quote.Found)
	})

	t.Run("zone match is case-insensitive", func(t *testing.T) {
		rules := []*pricing.Rule{
			mustRule(t, tenantID, nil, "Cairo", 0, 5, 2500, now),
		}

		quote := resolver.Resolve(rules, merchantID, "cairo", mustWeight(t, 1))
		assert.True(t, quote.Found)
	})

	t.Run("inactive rules are skipped", func(t *testing.T) {
		rule, err := pricing.RestoreRule(
			kernel.NewUUID(), tenantID, nil, "Cairo", 0, 5,
			kernel.MoneyFromCents(2500), false, now)
		require.NoError(t, err)

		quote := resolver.Resolve([]*pricing.Rule{rule}, merchantID, "Cairo", mustWeight(t, 1))
		require.False(t, quote.Found)
		assert.Contains(t, quote.Reason, "no active pricing rule")
	})

	t.Run("no match yields a reason instead of an error", func(t *testing.T) {
		rules := []*pricing.Rule{
			mustRule(t, tenantID, nil, "Alexandria", 0, 5, 2500, now),
		}

		quote := resolver.Resolve(rules, merchantID, "Cairo", mustWeight(t, 1))
		require.False(t, quote.Found)
		assert.Contains(t, quote.Reason, `zone "Cairo"`)
	})
}
