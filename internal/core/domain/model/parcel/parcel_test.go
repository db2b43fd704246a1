package parcel_test

import (
	"testing"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/validation"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func floatPtr(f float64) *float64 { return &f }

func TestNewParcel(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("creates standard parcel in PENDING", func(t *testing.T) {
		p, err := parcel.NewParcel(validID, parcel.KindStandard, 5.5, "123 Paris Street", "", nil, nil, testNow)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, parcel.KindStandard, p.Kind())
		assert.Equal(t, 5.5, p.Weight())
		assert.Equal(t, "123 Paris Street", p.DestinationAddress())
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Nil(t, p.Transporter())
	})

	t.Run("accepts zero weight", func(t *testing.T) {
		p, err := parcel.NewParcel(validID, parcel.KindStandard, 0, "somewhere", "", nil, nil, testNow)

		require.NoError(t, err)
		assert.Equal(t, 0.0, p.Weight())
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, parcel.KindStandard, -1, "somewhere", "", nil, nil, testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "weight: out_of_range")
	})

	t.Run("rejects blank destination address", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, parcel.KindStandard, 1, "   ", "", nil, nil, testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "destinationAddress: required")
	})

	t.Run("fragile requires handling instructions", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, parcel.KindFragile, 1, "somewhere", "", nil, nil, testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "handlingInstructions: required")

		p, err := parcel.NewParcel(validID, parcel.KindFragile, 1, "somewhere", "this side up", nil, nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, "this side up", p.HandlingInstructions())
	})

	t.Run("refrigerated requires both temperatures", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, parcel.KindRefrigerated, 1, "somewhere", "", nil, nil, testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "minTemperature: required")
		assert.Contains(t, err.Error(), "maxTemperature: required")

		_, err = parcel.NewParcel(validID, parcel.KindRefrigerated, 1, "somewhere", "",
			floatPtr(2), nil, testNow)
		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "maxTemperature: required")
	})

	t.Run("refrigerated requires min not above max", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, parcel.KindRefrigerated, 1, "somewhere", "",
			floatPtr(8), floatPtr(2), testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "minTemperature: invalid")
	})

	t.Run("refrigerated accepts min equal to max", func(t *testing.T) {
		p, err := parcel.NewParcel(validID, parcel.KindRefrigerated, 1, "somewhere", "",
			floatPtr(4), floatPtr(4), testNow)

		require.NoError(t, err)
		require.NotNil(t, p.Temperature())
		assert.Equal(t, 4.0, p.Temperature().Min())
		assert.Equal(t, 4.0, p.Temperature().Max())
	})

	t.Run("temperatures are forbidden on other kinds", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, parcel.KindStandard, 1, "somewhere", "",
			floatPtr(2), floatPtr(8), testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "minTemperature: forbidden")
	})

	t.Run("temperatures outside the supported window are rejected", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, parcel.KindRefrigerated, 1, "somewhere", "",
			floatPtr(-40), floatPtr(50), testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "minTemperature: out_of_range")
		assert.Contains(t, err.Error(), "maxTemperature: out_of_range")
	})

	t.Run("collects every violation at once", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := parcel.NewParcel(zeroID, parcel.KindUnknown, -5, "", "", nil, nil, testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "id: required")
		assert.Contains(t, err.Error(), "type: invalid")
		assert.Contains(t, err.Error(), "weight: out_of_range")
		assert.Contains(t, err.Error(), "destinationAddress: required")
	})
}

func TestParcel_UpdateDetails(t *testing.T) {
	t.Run("edits a pending parcel", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.NewUUID(), parcel.KindStandard, 2, "10 Rue de Lyon", "", nil, nil, testNow)
		require.NoError(t, err)

		later := testNow.Add(time.Hour)
		require.NoError(t, p.UpdateDetails(3.5, "123 Paris Street", "", nil, nil, later))

		assert.Equal(t, 3.5, p.Weight())
		assert.Equal(t, "123 Paris Street", p.DestinationAddress())
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("re-checks kind rules against the stored kind", func(t *testing.T) {
		p, err := parcel.NewParcel(
			kernel.NewUUID(), parcel.KindFragile, 1, "10 Rue de Lyon", "this side up", nil, nil, testNow,
		)
		require.NoError(t, err)

		err = p.UpdateDetails(1, "10 Rue de Lyon", "", nil, nil, testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "handlingInstructions: required")
		assert.Equal(t, "this side up", p.HandlingInstructions())
	})

	t.Run("replaces the temperature window on refrigerated parcels", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.NewUUID(), parcel.KindRefrigerated, 1, "somewhere", "",
			floatPtr(2), floatPtr(8), testNow)
		require.NoError(t, err)

		require.NoError(t, p.UpdateDetails(1, "somewhere", "", floatPtr(-5), floatPtr(5), testNow))

		require.NotNil(t, p.Temperature())
		assert.Equal(t, -5.0, p.Temperature().Min())
		assert.Equal(t, 5.0, p.Temperature().Max())
	})

	t.Run("forbids temperatures on a standard parcel", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.NewUUID(), parcel.KindStandard, 2, "10 Rue de Lyon", "", nil, nil, testNow)
		require.NoError(t, err)

		err = p.UpdateDetails(2, "10 Rue de Lyon", "", floatPtr(2), floatPtr(8), testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "minTemperature: forbidden")
	})

	t.Run("rejects a parcel already in transit", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.NewUUID(), parcel.KindStandard, 2, "10 Rue de Lyon", "", nil, nil, testNow)
		require.NoError(t, err)
		require.NoError(t, p.Assign(kernel.NewUUID(), testNow))

		err = p.UpdateDetails(3, "elsewhere", "", nil, nil, testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, 2.0, p.Weight())
		assert.Equal(t, "10 Rue de Lyon", p.DestinationAddress())
	})

	t.Run("collects every violation at once", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.NewUUID(), parcel.KindStandard, 2, "10 Rue de Lyon", "", nil, nil, testNow)
		require.NoError(t, err)

		err = p.UpdateDetails(-1, "  ", "", nil, nil, testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
		assert.Contains(t, err.Error(), "weight: out_of_range")
		assert.Contains(t, err.Error(), "destinationAddress: required")
	})
}

func TestParcel_Lifecycle(t *testing.T) {
	newPending := func(t *testing.T) *parcel.Parcel {
		t.Helper()
		p, err := parcel.NewParcel(kernel.NewUUID(), parcel.KindStandard, 2, "10 Rue de Lyon", "", nil, nil, testNow)
		require.NoError(t, err)
		return p
	}

	t.Run("assignment moves PENDING to IN_TRANSIT and records the transporter", func(t *testing.T) {
		p := newPending(t)
		transporterID := kernel.NewUUID()

		require.NoError(t, p.Assign(transporterID, testNow))

		assert.Equal(t, parcel.StatusInTransit, p.Status())
		require.NotNil(t, p.Transporter())
		assert.True(t, p.Transporter().IsEqual(transporterID))
	})

	t.Run("assignment requires a valid transporter id", func(t *testing.T) {
		p := newPending(t)
		var zeroID kernel.UUID

		require.Error(t, p.Assign(zeroID, testNow))
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Nil(t, p.Transporter())
	})

	t.Run("delivery only from IN_TRANSIT", func(t *testing.T) {
		p := newPending(t)

		err := p.MarkDelivered(testNow)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, parcel.StatusPending, p.Status())

		require.NoError(t, p.Assign(kernel.NewUUID(), testNow))
		require.NoError(t, p.MarkDelivered(testNow))
		assert.Equal(t, parcel.StatusDelivered, p.Status())
	})

	t.Run("terminal states reject further changes", func(t *testing.T) {
		p := newPending(t)
		require.NoError(t, p.Cancel(testNow))

		require.ErrorIs(t, p.Cancel(testNow), errs.ErrInvalidTransition)
		require.ErrorIs(t, p.MarkDelivered(testNow), errs.ErrInvalidTransition)
		require.ErrorIs(t, p.Assign(kernel.NewUUID(), testNow), errs.ErrInvalidTransition)
		assert.Equal(t, parcel.StatusCancelled, p.Status())
	})

	t.Run("cancelling in transit keeps the past assignment", func(t *testing.T) {
		p := newPending(t)
		transporterID := kernel.NewUUID()
		require.NoError(t, p.Assign(transporterID, testNow))

		require.NoError(t, p.Cancel(testNow))

		assert.Equal(t, parcel.StatusCancelled, p.Status())
		require.NotNil(t, p.Transporter())
		assert.True(t, p.Transporter().IsEqual(transporterID))
	})
}

func TestRestoreParcel(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("restores an in-transit parcel", func(t *testing.T) {
		transporterID := kernel.NewUUID()

		p, err := parcel.RestoreParcel(validID, parcel.KindStandard, 2, "somewhere",
			parcel.StatusInTransit, &transporterID, "", nil, testNow, testNow)

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusInTransit, p.Status())
		assert.True(t, p.Transporter().IsEqual(transporterID))
	})

	t.Run("rejects pending parcel with a transporter", func(t *testing.T) {
		transporterID := kernel.NewUUID()

		_, err := parcel.RestoreParcel(validID, parcel.KindStandard, 2, "somewhere",
			parcel.StatusPending, &transporterID, "", nil, testNow, testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
	})

	t.Run("rejects in-transit parcel without a transporter", func(t *testing.T) {
		_, err := parcel.RestoreParcel(validID, parcel.KindStandard, 2, "somewhere",
			parcel.StatusInTransit, nil, "", nil, testNow, testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
	})

	t.Run("rejects refrigerated parcel without a range", func(t *testing.T) {
		_, err := parcel.RestoreParcel(validID, parcel.KindRefrigerated, 2, "somewhere",
			parcel.StatusPending, nil, "", nil, testNow, testNow)

		require.ErrorIs(t, err, validation.ErrValidationFailed)
	})
}

func TestNewTemperatureRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := parcel.NewTemperatureRange(-18, 4)

		require.NoError(t, err)
		assert.Equal(t, -18.0, r.Min())
		assert.Equal(t, 4.0, r.Max())
		assert.True(t, r.Contains(0))
		assert.False(t, r.Contains(5))
	})

	t.Run("min above max", func(t *testing.T) {
		_, err := parcel.NewTemperatureRange(5, 4)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("bounds enforced", func(t *testing.T) {
		_, err := parcel.NewTemperatureRange(-31, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = parcel.NewTemperatureRange(0, 31)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
