package commands_test

import (
	"testing"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func testWeight(t *testing.T, kg float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(kg)
	require.NoError(t, err)
	return w
}

func testRecipient(t *testing.T) shipment.Recipient {
	t.Helper()
	r, err := shipment.NewRecipient("Ali Hassan", "+201001234567", "12 Nile St", "Cairo")
	require.NoError(t, err)
	return r
}

func testRule(t *testing.T, tenantID kernel.UUID, merchantID *kernel.UUID, cents int64) *pricing.Rule {
	t.Helper()
	r, err := pricing.NewRule(
		kernel.NewUUID(), tenantID, merchantID, "Cairo", 0, 10,
		kernel.MoneyFromCents(cents), time.Now().UTC())
	require.NoError(t, err)
	return r
}

// restoreShipment builds a shipment in the given status with an optional
// assigned courier and COD amount.
func restoreShipment(
	t *testing.T,
	tenantID kernel.UUID,
	status shipment.Status,
	codCents int64,
	courierID *kernel.UUID,
) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), tenantID, kernel.NewUUID(), kernel.NewUUID(),
		courierID,
		"PCL-20260801-ABC123",
		testRecipient(t),
		testWeight(t, 2.5),
		kernel.MoneyFromCents(4000), kernel.MoneyFromCents(codCents),
		"",
		3, 0,
		status,
	)
	require.NoError(t, err)
	return s
}
