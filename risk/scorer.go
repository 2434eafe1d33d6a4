package risk

import (
	"math"
	"time"

	"go-surgesense/types"
)

// Component weights of the composite health risk score.
const (
	temperatureWeight = 0.3
	aqiWeight         = 0.4
	humidityWeight    = 0.2
	seasonalWeight    = 0.1
)

// rangeStep is one row of a sub-score step table. Tables are evaluated
// top-down; the first matching row wins, the last row is the catch-all.
type rangeStep struct {
	applies func(v float64) bool
	score   float64
}

// Temperature sub-score. Note these cut points differ from the surge
// multiplier thresholds on purpose: the scorer grades ambient danger on
// a finer scale than the surge model's binary triggers.
var temperatureSteps = []rangeStep{
	{func(t float64) bool { return t > 35 || t < 10 }, 90},
	{func(t float64) bool { return t > 32 || t < 15 }, 70},
	{func(t float64) bool { return t > 30 || t < 18 }, 40},
	{func(t float64) bool { return true }, 20},
}

var aqiSteps = []rangeStep{
	{func(a float64) bool { return a > 200 }, 95},
	{func(a float64) bool { return a > 150 }, 80},
	{func(a float64) bool { return a > 100 }, 60},
	{func(a float64) bool { return a > 50 }, 30},
	{func(a float64) bool { return true }, 10},
}

var humiditySteps = []rangeStep{
	{func(h float64) bool { return h > 85 || h < 30 }, 70},
	{func(h float64) bool { return h > 75 || h < 40 }, 40},
	{func(h float64) bool { return true }, 20},
}

func stepScore(steps []rangeStep, v float64) float64 {
	for _, s := range steps {
		if s.applies(v) {
			return s.score
		}
	}
	return 0
}

// seasonalScore grades the month: monsoon carries waterborne and vector
// disease load, winter carries respiratory load.
func seasonalScore(m time.Month) float64 {
	switch {
	case m >= time.June && m <= time.September:
		return 50
	case m == time.December || m == time.January || m == time.February:
		return 30
	default:
		return 40
	}
}

// classifyHealthRisk maps the composite score to a level and display
// color, thresholds descending, first match wins.
func classifyHealthRisk(score float64) (types.HealthRiskLevel, string) {
	switch {
	case score >= 80:
		return types.HealthRiskVeryHigh, "red"
	case score >= 60:
		return types.HealthRiskHigh, "orange"
	case score >= 40:
		return types.HealthRiskModerate, "yellow"
	case score >= 20:
		return types.HealthRiskLow, "green"
	default:
		return types.HealthRiskVeryLow, "blue"
	}
}

// Score computes the weighted 0-100 health risk for a reading and
// month. Pure function; every input maps to a valid assessment.
func Score(r types.EnvironmentalReading, month time.Month) types.RiskAssessment {
	tempRisk := stepScore(temperatureSteps, r.Temperature)
	aqiRisk := stepScore(aqiSteps, float64(r.AQI))
	humidityRisk := stepScore(humiditySteps, r.Humidity)
	seasonRisk := seasonalScore(month)

	overall := round1(tempRisk*temperatureWeight +
		aqiRisk*aqiWeight +
		humidityRisk*humidityWeight +
		seasonRisk*seasonalWeight)

	level, color := classifyHealthRisk(overall)

	return types.RiskAssessment{
		OverallScore: overall,
		RiskLevel:    level,
		RiskColor:    color,
		Components: map[string]float64{
			"temperature": tempRisk,
			"aqi":         aqiRisk,
			"humidity":    humidityRisk,
			"seasonal":    seasonRisk,
		},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
