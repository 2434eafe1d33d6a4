package surge

import (
	"time"

	"go-surgesense/types"
)

// Base surge factors. Each is a multiplicative weight applied when its
// condition holds.
const (
	temperatureHighFactor = 1.4 // >32°C
	temperatureLowFactor  = 1.3 // <15°C
	aqiPoorFactor         = 1.6 // AQI >150
	aqiModerateFactor     = 1.2 // AQI 100-150
	humidityHighFactor    = 1.1 // >80% humidity
	festivalDayFactor     = 1.8 // reserved for event calendar integration
	weekendFactor         = 1.2 // Saturday / Sunday
	monsoonFactor         = 1.3 // June-September
)

// Multiplier calculator thresholds. These are deliberately independent
// from the health-risk step tables in the risk package and from the
// advisory-text cut points; the three rule sets model different things.
const (
	tempHighThreshold     = 32.0
	tempLowThreshold      = 15.0
	aqiPoorThreshold      = 150
	aqiModerateThreshold  = 100
	humidityHighThreshold = 80.0
)

// factorRule is one (condition, weight) entry. Rules inside a group are
// mutually exclusive: the first rule whose condition holds wins and the
// rest of the group is skipped.
type factorRule struct {
	name    string
	applies func(r types.EnvironmentalReading, at time.Time) bool
	weight  float64
}

// factorGroups holds the ordered rule table for the overall multiplier.
// Groups are independent of each other, so the product does not depend
// on group order.
var factorGroups = [][]factorRule{
	{
		{"temperature_high", func(r types.EnvironmentalReading, _ time.Time) bool {
			return r.Temperature > tempHighThreshold
		}, temperatureHighFactor},
		{"temperature_low", func(r types.EnvironmentalReading, _ time.Time) bool {
			return r.Temperature < tempLowThreshold
		}, temperatureLowFactor},
	},
	{
		{"aqi_poor", func(r types.EnvironmentalReading, _ time.Time) bool {
			return r.AQI > aqiPoorThreshold
		}, aqiPoorFactor},
		{"aqi_moderate", func(r types.EnvironmentalReading, _ time.Time) bool {
			return r.AQI > aqiModerateThreshold
		}, aqiModerateFactor},
	},
	{
		{"humidity_high", func(r types.EnvironmentalReading, _ time.Time) bool {
			return r.Humidity > humidityHighThreshold
		}, humidityHighFactor},
	},
	{
		{"weekend", func(_ types.EnvironmentalReading, at time.Time) bool {
			wd := at.Weekday()
			return wd == time.Saturday || wd == time.Sunday
		}, weekendFactor},
	},
	{
		{"monsoon", func(_ types.EnvironmentalReading, at time.Time) bool {
			return isMonsoonMonth(at.Month())
		}, monsoonFactor},
	},
}

func isMonsoonMonth(m time.Month) bool {
	return m >= time.June && m <= time.September
}
