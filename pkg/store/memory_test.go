package store

import (
	"context"
	"testing"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLastPingPicksLatestEffectiveTimestamp(t *testing.T) {
	memory := NewMemory()

	require.NoError(t, memory.InsertPings(context.Background(), []*margdf.Ping{
		{AssetIdentifier: "TR-0001", EffectiveTimestamp: 100, Location: margdf.NewPointLocation(77.0, 28.0)},
		{AssetIdentifier: "TR-0001", EffectiveTimestamp: 300, Location: margdf.NewPointLocation(77.1, 28.1)},
		{AssetIdentifier: "TR-0001", EffectiveTimestamp: 200, Location: margdf.NewPointLocation(77.2, 28.2)},
		{AssetIdentifier: "TR-0002", EffectiveTimestamp: 900, Location: margdf.NewPointLocation(72.8, 19.0)},
	}))

	last, err := memory.LastPing(context.Background(), "TR-0001")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 300.0, last.EffectiveTimestamp)
}

func TestMemoryLastPingUnknownAsset(t *testing.T) {
	memory := NewMemory()

	last, err := memory.LastPing(context.Background(), "TR-0404")
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestMemoryLastPingLaterInsertWinsTies(t *testing.T) {
	memory := NewMemory()

	require.NoError(t, memory.InsertPings(context.Background(), []*margdf.Ping{
		{AssetIdentifier: "TR-0001", EffectiveTimestamp: 0, Location: margdf.NewPointLocation(77.0, 28.0)},
		{AssetIdentifier: "TR-0001", EffectiveTimestamp: 0, Location: margdf.NewPointLocation(77.5, 28.5)},
	}))

	last, err := memory.LastPing(context.Background(), "TR-0001")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 77.5, last.Location.Longitude())
}
