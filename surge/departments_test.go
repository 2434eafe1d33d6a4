package surge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-surgesense/types"
)

func TestDepartmentPredictionsNormalConditions(t *testing.T) {
	predictions := DepartmentPredictions(reading(25, 60, 50), weekdayMarch)
	require.Len(t, predictions, len(types.AllDepartments))

	for dept, p := range predictions {
		assert.Equal(t, 1.0, p.Multiplier, dept)
		assert.Equal(t, p.BasePatients, p.PredictedPatients, dept)
		assert.Equal(t, 0, p.SurgePercentage, dept)
	}
	assert.Equal(t, 50, predictions[types.Emergency].BasePatients)
	assert.Equal(t, 30, predictions[types.Respiratory].BasePatients)
	assert.Equal(t, 20, predictions[types.Cardiology].BasePatients)
	assert.Equal(t, 25, predictions[types.Pediatrics].BasePatients)
	assert.Equal(t, 40, predictions[types.GeneralMedicine].BasePatients)
}

func TestDepartmentPredictionsPollutionWeekendMonsoon(t *testing.T) {
	// Global multiplier: 1.6 * 1.1 * 1.2 * 1.3 = 2.7456 -> 2.75.
	predictions := DepartmentPredictions(reading(25, 85, 180), saturdayJuly)

	respiratory := predictions[types.Respiratory]
	assert.Equal(t, 2.75*1.5, respiratory.Multiplier)
	assert.Equal(t, 123, respiratory.PredictedPatients)
	assert.Equal(t, 312, respiratory.SurgePercentage)
	assert.Contains(t, respiratory.ContributingFactors, "Poor AQI (180)")

	// Temperature is mild so Emergency stays on the global multiplier.
	emergency := predictions[types.Emergency]
	assert.Equal(t, 2.75, emergency.Multiplier)
	assert.Equal(t, 137, emergency.PredictedPatients)
	assert.Equal(t, 175, emergency.SurgePercentage)
	assert.Empty(t, emergency.ContributingFactors)
}

func TestDepartmentSecondaryFactorsReplaceNotCompound(t *testing.T) {
	// 36°C weekday: global 1.4. Emergency gets 1.4*1.3, not stacked twice.
	predictions := DepartmentPredictions(reading(36, 50, 80), weekdayMarch)

	emergency := predictions[types.Emergency]
	assert.InDelta(t, 1.4*1.3, emergency.Multiplier, 1e-9)
	assert.Contains(t, emergency.ContributingFactors, "High temperature (36°C)")

	pediatrics := predictions[types.Pediatrics]
	assert.InDelta(t, 1.4*1.3, pediatrics.Multiplier, 1e-9)
	assert.Contains(t, pediatrics.ContributingFactors, "Temperature extremes")

	// 36°C exceeds the cardiology trigger at 35.
	cardiology := predictions[types.Cardiology]
	assert.InDelta(t, 1.4*1.4, cardiology.Multiplier, 1e-9)

	// General Medicine never gets a secondary factor.
	assert.Equal(t, 1.4, predictions[types.GeneralMedicine].Multiplier)
}

func TestDepartmentColdConditions(t *testing.T) {
	predictions := DepartmentPredictions(reading(10, 50, 50), weekdayMarch)

	emergency := predictions[types.Emergency]
	assert.InDelta(t, 1.3*1.2, emergency.Multiplier, 1e-9)
	assert.Contains(t, emergency.ContributingFactors, "Cold weather (10°C)")

	// Cardiology's trigger is heat only.
	assert.Equal(t, 1.3, predictions[types.Cardiology].Multiplier)

	// Informational note, no multiplier change.
	general := predictions[types.GeneralMedicine]
	assert.Equal(t, 1.3, general.Multiplier)
	assert.Contains(t, general.ContributingFactors, "Cold weather infections")
}

func TestRespiratoryMonotonicInAQI(t *testing.T) {
	low := DepartmentPredictions(reading(25, 60, 90), weekdayMarch)[types.Respiratory]
	mid := DepartmentPredictions(reading(25, 60, 120), weekdayMarch)[types.Respiratory]
	high := DepartmentPredictions(reading(25, 60, 160), weekdayMarch)[types.Respiratory]

	assert.Less(t, low.PredictedPatients, mid.PredictedPatients)
	assert.Less(t, mid.PredictedPatients, high.PredictedPatients)
}

func TestDepartmentPredictionsNeverNegative(t *testing.T) {
	readings := []types.EnvironmentalReading{
		reading(-5, 10, 0),
		reading(48, 95, 400),
		reading(25, 60, 50),
	}
	for _, r := range readings {
		for dept, p := range DepartmentPredictions(r, saturdayJuly) {
			assert.GreaterOrEqual(t, p.PredictedPatients, p.BasePatients, dept)
			assert.GreaterOrEqual(t, p.SurgePercentage, 0, dept)
		}
	}
}
