package margdf

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileTimestamps(t *testing.T) {
	nan := Timestamp(math.NaN())

	assert.Equal(t, 5.0, ReconcileTimestamps(Timestamp(5), Timestamp(3)))
	assert.Equal(t, 5.0, ReconcileTimestamps(Timestamp(3), Timestamp(5)))
	assert.Equal(t, 7.0, ReconcileTimestamps(nan, Timestamp(7)))
	assert.Equal(t, 7.0, ReconcileTimestamps(Timestamp(7), nan))
	assert.Equal(t, 0.0, ReconcileTimestamps(nan, nan))
}

func TestTimestampUnmarshalNumber(t *testing.T) {
	var timestamp Timestamp
	assert.NoError(t, json.Unmarshal([]byte("1717171717"), &timestamp))
	assert.Equal(t, Timestamp(1717171717), timestamp)
}

func TestTimestampUnmarshalQuotedNumber(t *testing.T) {
	var timestamp Timestamp
	assert.NoError(t, json.Unmarshal([]byte(`"1717171717.5"`), &timestamp))
	assert.Equal(t, Timestamp(1717171717.5), timestamp)
}

func TestTimestampUnmarshalGarbage(t *testing.T) {
	for _, payload := range []string{`null`, `""`, `"not-a-clock"`} {
		var timestamp Timestamp
		assert.NoError(t, json.Unmarshal([]byte(payload), &timestamp), payload)
		assert.False(t, timestamp.Valid(), payload)
	}
}

func TestTimestampMarshalInvalidAsNull(t *testing.T) {
	encoded, err := json.Marshal(Timestamp(math.NaN()))

	assert.NoError(t, err)
	assert.Equal(t, "null", string(encoded))
}
