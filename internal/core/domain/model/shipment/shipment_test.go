package shipment_test

import (
	"testing"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShipment(t *testing.T, codCents int64, maxAttempts int) *shipment.Shipment {
	t.Helper()

	recipient, err := shipment.NewRecipient("Ada Lovelace", "+20100000000", "12 Nile St", "Cairo")
	require.NoError(t, err)

	weight, err := kernel.NewWeight(3)
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"PCL-20260827-A1B2C3",
		recipient,
		weight,
		kernel.MoneyFromCents(4000),
		kernel.MoneyFromCents(codCents),
		"leave at door",
		maxAttempts,
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	return s
}

// driveTo walks the shipment through the happy path up to the given status.
func driveTo(t *testing.T, s *shipment.Shipment, target shipment.Status) {
	t.Helper()
	actor := kernel.NewUUID()

	steps := []shipment.Status{
		shipment.ReadyForPickup,
		shipment.AssignedToCourier,
		shipment.PickedUp,
		shipment.OutForDelivery,
	}
	for _, step := range steps {
		if s.Status() == target {
			return
		}
		if step == shipment.AssignedToCourier {
			require.NoError(t, s.AssignCourier(kernel.NewUUID(), actor))
			continue
		}
		require.NoError(t, s.UpdateStatus(step, actor, "", nil))
	}
}

func TestNewShipment(t *testing.T) {
	t.Run("starts pending with a creation audit entry", func(t *testing.T) {
		s := newTestShipment(t, 5000, 3)

		assert.Equal(t, shipment.Pending, s.Status())
		assert.Equal(t, 0, s.AttemptCount())
		assert.Nil(t, s.CourierID())

		changes := s.UncommittedChanges()
		require.Len(t, changes, 1)
		assert.Equal(t, shipment.Pending, changes[0].Status())
		assert.Equal(t, "shipment created", changes[0].Note())
	})

	t.Run("rejects invalid max attempts", func(t *testing.T) {
		recipient, _ := shipment.NewRecipient("Ada", "+201", "addr", "Cairo")
		weight, _ := kernel.NewWeight(1)

		_, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"PCL-1", recipient, weight,
			kernel.MoneyFromCents(100), kernel.Money{}, "", 0, kernel.NewUUID(),
		)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty tracking number", func(t *testing.T) {
		recipient, _ := shipment.NewRecipient("Ada", "+201", "addr", "Cairo")
		weight, _ := kernel.NewWeight(1)

		_, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", recipient, weight,
			kernel.MoneyFromCents(100), kernel.Money{}, "", 3, kernel.NewUUID(),
		)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_Approve(t *testing.T) {
	s := newTestShipment(t, 0, 3)

	require.NoError(t, s.Approve(kernel.NewUUID()))
	assert.Equal(t, shipment.ReadyForPickup, s.Status())

	// A second approval is no longer legal.
	err := s.Approve(kernel.NewUUID())
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestShipment_AssignCourier(t *testing.T) {
	t.Run("assigns from ready for pickup", func(t *testing.T) {
		s := newTestShipment(t, 0, 3)
		require.NoError(t, s.Approve(kernel.NewUUID()))

		courierID := kernel.NewUUID()
		require.NoError(t, s.AssignCourier(courierID, kernel.NewUUID()))

		assert.Equal(t, shipment.AssignedToCourier, s.Status())
		require.NotNil(t, s.CourierID())
		assert.True(t, courierID.IsEqual(*s.CourierID()))
	})

	t.Run("rejects assignment from pending", func(t *testing.T) {
		s := newTestShipment(t, 0, 3)
		err := s.AssignCourier(kernel.NewUUID(), kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, s.CourierID())
	})

	t.Run("rejects invalid courier id", func(t *testing.T) {
		s := newTestShipment(t, 0, 3)
		require.NoError(t, s.Approve(kernel.NewUUID()))
		require.Error(t, s.AssignCourier(kernel.UUID{}, kernel.NewUUID()))
	})
}

func TestShipment_Cancel(t *testing.T) {
	t.Run("cancels from pending", func(t *testing.T) {
		s := newTestShipment(t, 0, 3)
		require.NoError(t, s.Cancel(kernel.NewUUID(), "merchant withdrew"))
		assert.Equal(t, shipment.Cancelled, s.Status())
	})

	t.Run("cancels from ready for pickup", func(t *testing.T) {
		s := newTestShipment(t, 0, 3)
		require.NoError(t, s.Approve(kernel.NewUUID()))
		require.NoError(t, s.Cancel(kernel.NewUUID(), ""))
		assert.Equal(t, shipment.Cancelled, s.Status())
	})

	t.Run("rejects cancellation once a courier is involved", func(t *testing.T) {
		s := newTestShipment(t, 0, 3)
		driveTo(t, s, shipment.PickedUp)

		err := s.Cancel(kernel.NewUUID(), "")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, shipment.PickedUp, s.Status())
	})
}

func TestShipment_UpdateStatus_InvalidTransition(t *testing.T) {
	s := newTestShipment(t, 0, 3)

	err := s.UpdateStatus(shipment.Delivered, kernel.NewUUID(), "", nil)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "PENDING", transitionErr.From)
	assert.Equal(t, "DELIVERED", transitionErr.To)

	// Stored status must be unchanged on rejection.
	assert.Equal(t, shipment.Pending, s.Status())
}

func TestShipment_UpdateStatus_AttemptCeiling(t *testing.T) {
	// Two failed attempts leave the shipment in FAILED_ATTEMPT; the third
	// forces RETURN_IN_PROGRESS.
	s := newTestShipment(t, 5000, 3)
	actor := kernel.NewUUID()
	driveTo(t, s, shipment.OutForDelivery)

	require.NoError(t, s.UpdateStatus(shipment.FailedAttempt, actor, "nobody home", nil))
	assert.Equal(t, shipment.FailedAttempt, s.Status())
	assert.Equal(t, 1, s.AttemptCount())

	require.NoError(t, s.UpdateStatus(shipment.OutForDelivery, actor, "", nil))
	require.NoError(t, s.UpdateStatus(shipment.FailedAttempt, actor, "", nil))
	assert.Equal(t, shipment.FailedAttempt, s.Status())
	assert.Equal(t, 2, s.AttemptCount())

	require.NoError(t, s.UpdateStatus(shipment.OutForDelivery, actor, "", nil))
	require.NoError(t, s.UpdateStatus(shipment.FailedAttempt, actor, "refused", nil))

	assert.Equal(t, shipment.ReturnInProgress, s.Status())
	assert.Equal(t, 3, s.AttemptCount())
	assert.LessOrEqual(t, s.AttemptCount(), s.MaxAttempts())

	changes := s.UncommittedChanges()
	last := changes[len(changes)-1]
	assert.Equal(t, shipment.ReturnInProgress, last.Status())
	assert.Contains(t, last.Note(), "max delivery attempts reached (3/3)")
	assert.Contains(t, last.Note(), "refused")
}

func TestShipment_UpdateStatus_FirstFailureHitsCeiling(t *testing.T) {
	// With a ceiling of one, the very first failed attempt forces the
	// return path directly from OUT_FOR_DELIVERY.
	s := newTestShipment(t, 5000, 1)
	actor := kernel.NewUUID()
	driveTo(t, s, shipment.OutForDelivery)

	require.NoError(t, s.UpdateStatus(shipment.FailedAttempt, actor, "nobody home", nil))

	assert.Equal(t, shipment.ReturnInProgress, s.Status())
	assert.Equal(t, 1, s.AttemptCount())

	changes := s.UncommittedChanges()
	last := changes[len(changes)-1]
	assert.Equal(t, shipment.ReturnInProgress, last.Status())
	assert.Contains(t, last.Note(), "nobody home")
	assert.Contains(t, last.Note(), "max delivery attempts reached (1/1)")
}

func TestShipment_UpdateStatus_DeliverWithCOD(t *testing.T) {
	t.Run("requires collected amount", func(t *testing.T) {
		s := newTestShipment(t, 5000, 3)
		driveTo(t, s, shipment.OutForDelivery)

		err := s.UpdateStatus(shipment.Delivered, kernel.NewUUID(), "", nil)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Equal(t, shipment.OutForDelivery, s.Status())
	})

	t.Run("rejects mismatched amount", func(t *testing.T) {
		s := newTestShipment(t, 5000, 3)
		driveTo(t, s, shipment.OutForDelivery)

		collected := kernel.MoneyFromCents(4800)
		err := s.UpdateStatus(shipment.Delivered, kernel.NewUUID(), "", &collected)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Equal(t, shipment.OutForDelivery, s.Status())
	})

	t.Run("accepts amount within one cent", func(t *testing.T) {
		s := newTestShipment(t, 5000, 3)
		driveTo(t, s, shipment.OutForDelivery)

		collected := kernel.MoneyFromCents(5001)
		require.NoError(t, s.UpdateStatus(shipment.Delivered, kernel.NewUUID(), "", &collected))
		assert.Equal(t, shipment.Delivered, s.Status())
	})

	t.Run("prepaid shipment needs no collected amount", func(t *testing.T) {
		s := newTestShipment(t, 0, 3)
		driveTo(t, s, shipment.OutForDelivery)

		require.NoError(t, s.UpdateStatus(shipment.Delivered, kernel.NewUUID(), "", nil))
		assert.Equal(t, shipment.Delivered, s.Status())
	})
}

func TestShipment_TakeUncommittedChanges(t *testing.T) {
	s := newTestShipment(t, 0, 3)
	require.NoError(t, s.Approve(kernel.NewUUID()))

	changes := s.TakeUncommittedChanges()
	require.Len(t, changes, 2)
	assert.Equal(t, shipment.Pending, changes[0].Status())
	assert.Equal(t, shipment.ReadyForPickup, changes[1].Status())

	assert.Empty(t, s.UncommittedChanges())
}

func TestRestoreShipment(t *testing.T) {
	recipient, err := shipment.NewRecipient("Ada", "+201", "addr", "Cairo")
	require.NoError(t, err)
	weight, err := kernel.NewWeight(2.5)
	require.NoError(t, err)
	courierID := kernel.NewUUID()

	t.Run("restores without audit entries", func(t *testing.T) {
		s, restoreErr := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&courierID, "PCL-1", recipient, weight,
			kernel.MoneyFromCents(4000), kernel.MoneyFromCents(5000),
			"", 3, 2, shipment.FailedAttempt,
		)
		require.NoError(t, restoreErr)
		assert.Equal(t, shipment.FailedAttempt, s.Status())
		assert.Equal(t, 2, s.AttemptCount())
		assert.Empty(t, s.UncommittedChanges())
	})

	t.Run("rejects attempt count above ceiling", func(t *testing.T) {
		_, restoreErr := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "PCL-1", recipient, weight,
			kernel.MoneyFromCents(4000), kernel.Money{},
			"", 3, 4, shipment.FailedAttempt,
		)
		require.Error(t, restoreErr)
		require.ErrorIs(t, restoreErr, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, restoreErr := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "PCL-1", recipient, weight,
			kernel.MoneyFromCents(4000), kernel.Money{},
			"", 3, 0, shipment.Unknown,
		)
		require.Error(t, restoreErr)
	})
}
