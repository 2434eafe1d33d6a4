package facilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Mumbai to Pune is roughly 120 km.
	d := HaversineDistance(19.0760, 72.8777, 18.5204, 73.8567)
	assert.InDelta(t, 120, d, 5)

	// Mumbai to Delhi is roughly 1150 km.
	d = HaversineDistance(19.0760, 72.8777, 28.6139, 77.2090)
	assert.InDelta(t, 1150, d, 20)
}

func TestHaversineDistanceZero(t *testing.T) {
	assert.Equal(t, 0.0, HaversineDistance(19.0760, 72.8777, 19.0760, 72.8777))
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	a := HaversineDistance(19.0760, 72.8777, 28.6139, 77.2090)
	b := HaversineDistance(28.6139, 77.2090, 19.0760, 72.8777)
	assert.InDelta(t, a, b, 1e-9)
}

func TestRadiusBounds(t *testing.T) {
	assert.Equal(t, 0.1, MinRadiusKM)
	assert.Equal(t, 50.0, MaxRadiusKM)
}
