//go:build unit

package order_test

import (
	"testing"

	"voltbite/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodStatusAdvance(t *testing.T) {
	tests := []struct {
		name    string
		from    order.FoodStatus
		to      order.FoodStatus
		wantErr bool
	}{
		{name: "pending to cooking", from: order.StatusPending, to: order.StatusCooking},
		{name: "cooking to ready", from: order.StatusCooking, to: order.StatusReady},
		{name: "ready to picked_up", from: order.StatusReady, to: order.StatusPickedUp},
		{name: "skipping ahead is allowed", from: order.StatusPending, to: order.StatusReady},
		{name: "same status is rejected", from: order.StatusCooking, to: order.StatusCooking, wantErr: true},
		{name: "regression is rejected", from: order.StatusReady, to: order.StatusCooking, wantErr: true},
		{name: "unknown status is rejected", from: order.StatusPending, to: order.FoodStatus("burnt"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Advance(tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
				assert.Equal(t, tt.from, got, "status is unchanged on a rejected transition")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestFoodStatusMessage(t *testing.T) {
	for _, s := range []order.FoodStatus{
		order.StatusPending, order.StatusCooking, order.StatusReady, order.StatusPickedUp,
	} {
		assert.True(t, s.IsValid())
		assert.NotEmpty(t, s.Message(), "every status carries a customer-facing message")
	}

	assert.False(t, order.FoodStatus("unknown").IsValid())
}
