package surge

import "go-surgesense/types"

// peakHourRule maps an environmental regime to its expected load
// windows. Rules are evaluated top-down; the first match wins.
type peakHourRule struct {
	applies func(r types.EnvironmentalReading) bool
	windows []string
}

var peakHourRules = []peakHourRule{
	// Hot weather peaks in the afternoon and evening.
	{func(r types.EnvironmentalReading) bool { return r.Temperature > tempHighThreshold },
		[]string{"12:00-15:00", "18:00-21:00"}},
	// Cold weather peaks in the morning and at night.
	{func(r types.EnvironmentalReading) bool { return r.Temperature < tempLowThreshold },
		[]string{"06:00-09:00", "20:00-23:00"}},
	// Poor air quality loads the whole day.
	{func(r types.EnvironmentalReading) bool { return r.AQI > aqiPoorThreshold },
		[]string{"09:00-12:00", "15:00-18:00", "20:00-22:00"}},
}

var normalPeakHours = []string{"10:00-12:00", "16:00-18:00"}

// PeakHours returns the expected peak load windows for a reading.
// Exactly one rule (or the normal default) applies.
func PeakHours(r types.EnvironmentalReading) []string {
	for _, rule := range peakHourRules {
		if rule.applies(r) {
			return append([]string(nil), rule.windows...)
		}
	}
	return append([]string(nil), normalPeakHours...)
}
