package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeWeatherCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "clear"},
		{2, "partly cloudy"},
		{45, "foggy"},
		{61, "rainy"},
		{71, "snowy"},
		{80, "rain showers"},
		{95, "thunderstorm"},
		{120, "moderate"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeWeatherCode(tt.code), "code %d", tt.code)
	}
}
