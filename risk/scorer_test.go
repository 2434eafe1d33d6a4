package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-surgesense/types"
)

func reading(temp, humidity float64, aqi int) types.EnvironmentalReading {
	return types.EnvironmentalReading{
		Temperature: temp,
		Humidity:    humidity,
		AQI:         aqi,
		AQICategory: types.ClassifyAQI(aqi),
	}
}

func TestStepScores(t *testing.T) {
	tempCases := map[float64]float64{36: 90, 9: 90, 33: 70, 14: 70, 31: 40, 17: 40, 25: 20}
	for temp, want := range tempCases {
		assert.Equal(t, want, stepScore(temperatureSteps, temp), "temperature %.0f", temp)
	}

	aqiCases := map[float64]float64{250: 95, 180: 80, 120: 60, 80: 30, 40: 10}
	for aqi, want := range aqiCases {
		assert.Equal(t, want, stepScore(aqiSteps, aqi), "aqi %.0f", aqi)
	}

	humidityCases := map[float64]float64{90: 70, 25: 70, 80: 40, 35: 40, 60: 20}
	for humidity, want := range humidityCases {
		assert.Equal(t, want, stepScore(humiditySteps, humidity), "humidity %.0f", humidity)
	}
}

func TestSeasonalScore(t *testing.T) {
	assert.Equal(t, 50.0, seasonalScore(time.July))
	assert.Equal(t, 30.0, seasonalScore(time.January))
	assert.Equal(t, 30.0, seasonalScore(time.December))
	assert.Equal(t, 40.0, seasonalScore(time.April))
}

func TestScoreWeightedComposite(t *testing.T) {
	// 90*0.3 + 80*0.4 + 20*0.2 + 50*0.1 = 68.
	assessment := Score(reading(36, 50, 180), time.July)

	assert.Equal(t, 68.0, assessment.OverallScore)
	assert.Equal(t, types.HealthRiskHigh, assessment.RiskLevel)
	assert.Equal(t, "orange", assessment.RiskColor)
	assert.Equal(t, 90.0, assessment.Components["temperature"])
	assert.Equal(t, 80.0, assessment.Components["aqi"])
	assert.Equal(t, 20.0, assessment.Components["humidity"])
	assert.Equal(t, 50.0, assessment.Components["seasonal"])
}

func TestScoreMildConditions(t *testing.T) {
	// 20*0.3 + 10*0.4 + 20*0.2 + 40*0.1 = 18.
	assessment := Score(reading(25, 60, 50), time.March)

	assert.Equal(t, 18.0, assessment.OverallScore)
	assert.Equal(t, types.HealthRiskVeryLow, assessment.RiskLevel)
	assert.Equal(t, "blue", assessment.RiskColor)
}

func TestScoreWorstCase(t *testing.T) {
	// 90*0.3 + 95*0.4 + 70*0.2 + 50*0.1 = 84.
	assessment := Score(reading(42, 92, 280), time.August)

	assert.Equal(t, 84.0, assessment.OverallScore)
	assert.Equal(t, types.HealthRiskVeryHigh, assessment.RiskLevel)
	assert.Equal(t, "red", assessment.RiskColor)
}

func TestScoreAlwaysInRange(t *testing.T) {
	readings := []types.EnvironmentalReading{
		reading(-10, 0, 0),
		reading(50, 100, 500),
		reading(25, 60, 50),
	}
	for _, r := range readings {
		for m := time.January; m <= time.December; m++ {
			a := Score(r, m)
			assert.GreaterOrEqual(t, a.OverallScore, 0.0)
			assert.LessOrEqual(t, a.OverallScore, 100.0)
			assert.NotEmpty(t, a.RiskLevel)
			assert.NotEmpty(t, a.RiskColor)
		}
	}
}

func TestClassifyHealthRiskBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		level types.HealthRiskLevel
		color string
	}{
		{85, types.HealthRiskVeryHigh, "red"},
		{80, types.HealthRiskVeryHigh, "red"},
		{79.9, types.HealthRiskHigh, "orange"},
		{60, types.HealthRiskHigh, "orange"},
		{59.9, types.HealthRiskModerate, "yellow"},
		{40, types.HealthRiskModerate, "yellow"},
		{39.9, types.HealthRiskLow, "green"},
		{20, types.HealthRiskLow, "green"},
		{19.9, types.HealthRiskVeryLow, "blue"},
		{0, types.HealthRiskVeryLow, "blue"},
	}
	for _, tt := range tests {
		level, color := classifyHealthRisk(tt.score)
		assert.Equal(t, tt.level, level, "score %.1f", tt.score)
		assert.Equal(t, tt.color, color, "score %.1f", tt.score)
	}
}
