package surge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-surgesense/types"
)

// Fixed dates so the weekend and monsoon factors are under test control.
var (
	weekdayMarch = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC) // Wednesday
	saturdayJuly = time.Date(2025, time.July, 5, 10, 0, 0, 0, time.UTC)
	sundayJune   = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	mondayDec    = time.Date(2025, time.December, 8, 10, 0, 0, 0, time.UTC)
)

func reading(temp, humidity float64, aqi int) types.EnvironmentalReading {
	return types.EnvironmentalReading{
		Temperature: temp,
		Humidity:    humidity,
		AQI:         aqi,
		AQICategory: types.ClassifyAQI(aqi),
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name string
		r    types.EnvironmentalReading
		at   time.Time
		want float64
	}{
		{"normal conditions weekday", reading(25, 60, 50), weekdayMarch, 1.0},
		{"heat only", reading(36, 50, 80), weekdayMarch, 1.4},
		{"cold only", reading(10, 50, 80), weekdayMarch, 1.3},
		{"poor aqi only", reading(25, 60, 180), weekdayMarch, 1.6},
		{"moderate aqi only", reading(25, 60, 120), weekdayMarch, 1.2},
		{"humidity only", reading(25, 85, 50), weekdayMarch, 1.1},
		{"weekday december", reading(25, 60, 50), mondayDec, 1.0},
		{"weekend december", reading(25, 60, 50), time.Date(2025, time.December, 6, 0, 0, 0, 0, time.UTC), 1.2},
		{"monsoon weekday", reading(25, 60, 50), time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC), 1.3},
		// 1.6 * 1.1 * 1.2 * 1.3 = 2.7456, rounded once at the end.
		{"compound worst case", reading(25, 85, 180), saturdayJuly, 2.75},
		// 1.4 * 1.6 * 1.1 * 1.2 * 1.3 = 3.84384 -> 3.84
		{"heat plus pollution weekend monsoon", reading(36, 85, 180), sundayJune, 3.84},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Multiplier(tt.r, tt.at))
		})
	}
}

func TestMultiplierThresholdsAreExclusive(t *testing.T) {
	// Exactly at a threshold the factor must not fire.
	assert.Equal(t, 1.0, Multiplier(reading(32, 60, 50), weekdayMarch), "32°C is not above the heat threshold")
	assert.Equal(t, 1.0, Multiplier(reading(15, 60, 50), weekdayMarch), "15°C is not below the cold threshold")
	assert.Equal(t, 1.0, Multiplier(reading(25, 60, 100), weekdayMarch), "AQI 100 is not above the moderate threshold")
	assert.Equal(t, 1.0, Multiplier(reading(25, 80, 50), weekdayMarch), "humidity 80 is not above the threshold")
	// Just past a group boundary only the stronger rule of the group fires.
	assert.Equal(t, 1.2, Multiplier(reading(25, 60, 101), weekdayMarch))
	assert.Equal(t, 1.6, Multiplier(reading(25, 60, 151), weekdayMarch))
}

func TestMultiplierIsDeterministic(t *testing.T) {
	r := reading(36, 85, 180)
	first := Multiplier(r, saturdayJuly)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Multiplier(r, saturdayJuly))
	}
}

func TestIsMonsoonMonth(t *testing.T) {
	assert.False(t, isMonsoonMonth(time.May))
	assert.True(t, isMonsoonMonth(time.June))
	assert.True(t, isMonsoonMonth(time.September))
	assert.False(t, isMonsoonMonth(time.October))
}
