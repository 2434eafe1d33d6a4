package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAQI(t *testing.T) {
	tests := []struct {
		aqi  int
		want AQICategory
	}{
		{0, AQIGood},
		{50, AQIGood},
		{51, AQIModerate},
		{100, AQIModerate},
		{101, AQIUnhealthyForSensitive},
		{150, AQIUnhealthyForSensitive},
		{151, AQIUnhealthy},
		{200, AQIUnhealthy},
		{201, AQIVeryUnhealthy},
		{300, AQIVeryUnhealthy},
		{301, AQIHazardous},
		{500, AQIHazardous},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyAQI(tt.aqi), "aqi %d", tt.aqi)
	}
}

func TestDefaultReading(t *testing.T) {
	r := DefaultReading()

	assert.Equal(t, 25.0, r.Temperature)
	assert.Equal(t, 60.0, r.Humidity)
	assert.Equal(t, 50, r.AQI)
	assert.Equal(t, AQIGood, r.AQICategory)
	assert.Equal(t, "moderate", r.Description)
	assert.False(t, r.ObservedAt.IsZero())
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(19.0760, 72.8777))
	assert.True(t, ValidCoordinates(-90, -180))
	assert.True(t, ValidCoordinates(90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.1))
	assert.False(t, ValidCoordinates(-91, 181))
}
