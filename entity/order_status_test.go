package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		require.True(t, s.Valid(), s)
	}
	require.False(t, OrderStatus("shipped").Valid())
}

func TestStatusLabels(t *testing.T) {
	require.Equal(t, "En attente", StatusPending.Label())
	require.Equal(t, "En préparation", StatusPreparing.Label())
	require.Equal(t, "Livrée", StatusDelivered.Label())
	// unknown statuses fall back to the raw value
	require.Equal(t, "x", OrderStatus("x").Label())
}

func TestNilFlowAllowsAnyToAny(t *testing.T) {
	var f StatusFlow
	require.True(t, f.Allows(StatusPreparing, StatusPending))
	require.True(t, f.Allows(StatusDelivered, StatusPending))
	require.False(t, f.Allows(StatusPending, "shipped"))
}

func TestLinearFlowOnlyMovesForward(t *testing.T) {
	f := LinearFlow()
	require.True(t, f.Allows(StatusPending, StatusConfirmed))
	require.True(t, f.Allows(StatusReady, StatusDelivered))
	require.False(t, f.Allows(StatusPreparing, StatusPending))
	require.False(t, f.Allows(StatusPending, StatusReady))
	require.False(t, f.Allows(StatusDelivered, StatusPending))
}
