package margdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePingPayloadSingleObject(t *testing.T) {
	pings, err := ParsePingPayload([]byte(`{"assetIdentifier": "TR-0001", "longitude": 77.1, "latitude": 28.7}`))

	assert.NoError(t, err)
	assert.Len(t, pings, 1)
	assert.Equal(t, "TR-0001", pings[0].AssetIdentifier)
}

func TestParsePingPayloadArray(t *testing.T) {
	pings, err := ParsePingPayload([]byte(`[{"assetIdentifier": "TR-0001"}, {"assetIdentifier": "TR-0002"}]`))

	assert.NoError(t, err)
	assert.Len(t, pings, 2)
	assert.Equal(t, "TR-0002", pings[1].AssetIdentifier)
}

func TestParsePingPayloadVendorQuotedTimestamps(t *testing.T) {
	pings, err := ParsePingPayload([]byte(`{"assetIdentifier": "TR-0001", "primaryTimestamp": "1717171717", "secondaryTimestamp": null}`))

	assert.NoError(t, err)
	assert.Equal(t, Timestamp(1717171717), pings[0].PrimaryTimestamp)
	assert.False(t, pings[0].SecondaryTimestamp.Valid())
}

func TestParsePingPayloadMissingTimestamps(t *testing.T) {
	pings, err := ParsePingPayload([]byte(`{"assetIdentifier": "TR-0001", "longitude": 77.1, "latitude": 28.7}`))

	assert.NoError(t, err)
	assert.False(t, pings[0].PrimaryTimestamp.Valid())
	assert.False(t, pings[0].SecondaryTimestamp.Valid())
	assert.Equal(t, 0.0, ReconcileTimestamps(pings[0].PrimaryTimestamp, pings[0].SecondaryTimestamp))
}

func TestParsePingPayloadEmpty(t *testing.T) {
	_, err := ParsePingPayload([]byte(``))
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = ParsePingPayload([]byte(`[]`))
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestParsePingPayloadMalformed(t *testing.T) {
	_, err := ParsePingPayload([]byte(`{"assetIdentifier":`))
	assert.Error(t, err)
}
