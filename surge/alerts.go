package surge

import (
	"fmt"

	"github.com/google/uuid"
	"go-surgesense/types"
)

// Alert thresholds. Wider cut points than the multiplier table because
// alerts warn about extremes, not routine surge drivers.
const (
	alertExtremeHeat   = 35.0
	alertHighTemp      = 30.0
	alertColdWave      = 10.0
	alertSeverePollute = 200
	alertPoorAir       = 150
)

// WeatherAlerts derives operational alerts from a reading. Conditions
// are checked independently; several alerts may fire at once.
func WeatherAlerts(r types.EnvironmentalReading) []types.SurgeAlert {
	var alerts []types.SurgeAlert

	if r.Temperature > alertExtremeHeat {
		alerts = append(alerts, types.SurgeAlert{
			ID:       uuid.NewString(),
			Type:     "heat_wave",
			Severity: types.PriorityHigh,
			Message:  fmt.Sprintf("Extreme heat (%.0f°C) - Expect 40%% increase in heat-related emergencies", r.Temperature),
			RecommendedActions: []string{
				"Increase emergency staff",
				"Stock IV fluids",
				"Prepare cooling areas",
			},
		})
	} else if r.Temperature > alertHighTemp {
		alerts = append(alerts, types.SurgeAlert{
			ID:       uuid.NewString(),
			Type:     "high_temperature",
			Severity: types.PriorityMedium,
			Message:  fmt.Sprintf("High temperature (%.0f°C) - Expect 20%% increase in heat-related cases", r.Temperature),
			RecommendedActions: []string{
				"Monitor emergency capacity",
				"Ensure adequate hydration supplies",
			},
		})
	}

	if r.AQI > alertSeverePollute {
		alerts = append(alerts, types.SurgeAlert{
			ID:       uuid.NewString(),
			Type:     "severe_pollution",
			Severity: types.PriorityHigh,
			Message:  fmt.Sprintf("Severe air pollution (AQI %d) - Expect 50%% increase in respiratory cases", r.AQI),
			RecommendedActions: []string{
				"Increase pulmonology staff",
				"Stock inhalers and oxygen",
				"Prepare respiratory ward",
			},
		})
	} else if r.AQI > alertPoorAir {
		alerts = append(alerts, types.SurgeAlert{
			ID:       uuid.NewString(),
			Type:     "poor_air_quality",
			Severity: types.PriorityMedium,
			Message:  fmt.Sprintf("Poor air quality (AQI %d) - Expect 25%% increase in respiratory issues", r.AQI),
			RecommendedActions: []string{
				"Monitor respiratory cases",
				"Ensure adequate PPE",
			},
		})
	}

	if r.Temperature < alertColdWave {
		alerts = append(alerts, types.SurgeAlert{
			ID:       uuid.NewString(),
			Type:     "cold_wave",
			Severity: types.PriorityMedium,
			Message:  fmt.Sprintf("Cold wave (%.0f°C) - Expect increase in respiratory infections", r.Temperature),
			RecommendedActions: []string{
				"Prepare for flu cases",
				"Stock cold medications",
			},
		})
	}

	return alerts
}
