package surge

import (
	"fmt"
	"time"

	"go-surgesense/types"
)

// Baseline daily patient counts under normal conditions.
var departmentBaselines = map[types.Department]int{
	types.Emergency:       50,
	types.Respiratory:     30,
	types.Cardiology:      20,
	types.Pediatrics:      25,
	types.GeneralMedicine: 40,
}

// Department-specific secondary factors. When a trigger fires, the
// department multiplier is replaced with global × factor, never
// compounded on a previous secondary factor.
const (
	respiratoryPoorAQIFactor     = 1.5 // AQI >150
	respiratoryModerateAQIFactor = 1.2 // AQI >100
	emergencyHeatFactor          = 1.3 // >32°C
	emergencyColdFactor          = 1.2 // <15°C
	cardiologyHeatFactor         = 1.4 // >35°C
	pediatricsExtremesFactor     = 1.3 // >32°C or <15°C
	cardiologyHeatThreshold      = 35.0
	generalMedColdNote           = 20.0 // informational only
)

// DepartmentPredictions evaluates every department against one reading.
// Each department starts from the global multiplier; a secondary factor
// replaces it with global × factor when its trigger condition holds.
func DepartmentPredictions(r types.EnvironmentalReading, at time.Time) map[types.Department]types.DepartmentPrediction {
	global := Multiplier(r, at)
	predictions := make(map[types.Department]types.DepartmentPrediction, len(types.AllDepartments))

	for _, dept := range types.AllDepartments {
		multiplier := global
		var factors []string

		switch dept {
		case types.Respiratory:
			if r.AQI > aqiPoorThreshold {
				multiplier = global * respiratoryPoorAQIFactor
				factors = append(factors, fmt.Sprintf("Poor AQI (%d)", r.AQI))
			} else if r.AQI > aqiModerateThreshold {
				multiplier = global * respiratoryModerateAQIFactor
				factors = append(factors, fmt.Sprintf("Moderate AQI (%d)", r.AQI))
			}
		case types.Emergency:
			if r.Temperature > tempHighThreshold {
				multiplier = global * emergencyHeatFactor
				factors = append(factors, fmt.Sprintf("High temperature (%.0f°C)", r.Temperature))
			} else if r.Temperature < tempLowThreshold {
				multiplier = global * emergencyColdFactor
				factors = append(factors, fmt.Sprintf("Cold weather (%.0f°C)", r.Temperature))
			}
		case types.Cardiology:
			if r.Temperature > cardiologyHeatThreshold {
				multiplier = global * cardiologyHeatFactor
				factors = append(factors, "Extreme heat stress")
			}
		case types.Pediatrics:
			if r.Temperature > tempHighThreshold || r.Temperature < tempLowThreshold {
				multiplier = global * pediatricsExtremesFactor
				factors = append(factors, "Temperature extremes")
			}
		case types.GeneralMedicine:
			// No secondary factor; the note below is informational only.
			if r.Temperature < generalMedColdNote {
				factors = append(factors, "Cold weather infections")
			}
		}

		base := departmentBaselines[dept]
		predictions[dept] = types.DepartmentPrediction{
			BasePatients:        base,
			Multiplier:          multiplier,
			PredictedPatients:   int(float64(base) * multiplier),
			SurgePercentage:     int((multiplier - 1) * 100),
			ContributingFactors: factors,
		}
	}

	return predictions
}
