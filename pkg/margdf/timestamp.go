package margdf

import (
	"math"
	"strconv"
	"strings"
)

// Timestamp is a vendor supplied clock value in epoch seconds. Vendors are
// inconsistent about whether they send it as a number, a numeric string or
// not at all, so decoding never fails - anything unparseable becomes NaN.
type Timestamp float64

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	value := strings.TrimSpace(string(data))
	value = strings.Trim(value, `"`)

	if value == "" || value == "null" {
		*t = Timestamp(math.NaN())
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*t = Timestamp(math.NaN())
		return nil
	}

	*t = Timestamp(parsed)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return []byte("null"), nil
	}

	return []byte(strconv.FormatFloat(float64(t), 'f', -1, 64)), nil
}

func (t Timestamp) Valid() bool {
	return !math.IsNaN(float64(t))
}

// ReconcileTimestamps picks the authoritative observation time from the two
// vendor clocks - the larger when both are usable, whichever one is usable
// otherwise, and the zero sentinel (unknown time) when neither is
func ReconcileTimestamps(primary Timestamp, secondary Timestamp) float64 {
	primaryValid := primary.Valid()
	secondaryValid := secondary.Valid()

	switch {
	case primaryValid && secondaryValid:
		return math.Max(float64(primary), float64(secondary))
	case primaryValid:
		return float64(primary)
	case secondaryValid:
		return float64(secondary)
	default:
		return 0
	}
}
