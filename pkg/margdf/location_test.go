package margdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZero(t *testing.T) {
	point := NewPointLocation(77.1025, 28.7041)

	assert.Equal(t, 0.0, point.Distance(point))
}

func TestDistanceSymmetric(t *testing.T) {
	a := NewPointLocation(77.1025, 28.7041)
	b := NewPointLocation(72.8777, 19.0760)

	assert.Equal(t, a.Distance(b), b.Distance(a))
}

func TestDistanceKnownValue(t *testing.T) {
	// one degree of latitude on a 6371km sphere
	a := NewPointLocation(0, 0)
	b := NewPointLocation(0, 1)

	assert.InDelta(t, 111194.9, a.Distance(b), 1)
}

func TestDistanceMonotonic(t *testing.T) {
	origin := NewPointLocation(77.0, 28.0)
	near := NewPointLocation(77.0, 28.001)
	far := NewPointLocation(77.0, 28.01)

	assert.Less(t, origin.Distance(near), origin.Distance(far))
}
