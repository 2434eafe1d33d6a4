package risk

import "go-surgesense/types"

// Advisory-text thresholds. These intentionally sit apart from both the
// surge multiplier thresholds and the scorer step tables; the advisory
// speaks to citizens about the outdoors, not to hospital operations.
const (
	advisoryExtremeHeat = 35.0
	advisoryHotOutdoors = 32.0
	advisoryCold        = 15.0
	advisoryPoorAir     = 150
	advisoryModerateAir = 100
	advisoryHumid       = 80.0
	advisoryDry         = 40.0
)

var emergencyContacts = map[string]string{
	"ambulance":           "108",
	"pollution_helpline":  "1800-11-0031",
	"disaster_management": "1078",
}

// Advisory derives citizen-facing recommendations, precautions and
// outdoor timing windows from a reading. Branches are independent;
// several may contribute.
func Advisory(r types.EnvironmentalReading) types.CityAdvisory {
	var recommendations, precautions []string

	if r.Temperature > advisoryExtremeHeat {
		recommendations = append(recommendations,
			"Stay indoors during peak hours (11 AM - 4 PM)",
			"Drink water every 15-20 minutes",
			"Wear light-colored, loose clothing",
		)
		precautions = append(precautions, "Heat stroke risk - seek immediate medical help if dizzy")
	} else if r.Temperature < advisoryCold {
		recommendations = append(recommendations,
			"Wear warm layers and cover extremities",
			"Drink warm fluids regularly",
			"Avoid sudden temperature changes",
		)
		precautions = append(precautions, "Hypothermia risk - monitor elderly and children closely")
	}

	if r.AQI > advisoryPoorAir {
		recommendations = append(recommendations,
			"Wear N95 masks when outdoors",
			"Use air purifiers indoors",
			"Avoid outdoor exercise",
		)
		precautions = append(precautions, "Respiratory distress - consult doctor if breathing difficulty")
	} else if r.AQI > advisoryModerateAir {
		recommendations = append(recommendations,
			"Limit outdoor activities",
			"Keep windows closed during peak pollution hours",
		)
	}

	if r.Humidity > advisoryHumid {
		recommendations = append(recommendations,
			"Use dehumidifiers if available",
			"Wear breathable fabrics",
			"Monitor for fungal infections",
		)
	} else if r.Humidity < advisoryDry {
		recommendations = append(recommendations,
			"Use humidifiers or keep water bowls",
			"Apply moisturizer regularly",
			"Stay hydrated",
		)
	}

	return types.CityAdvisory{
		Recommendations:   recommendations,
		Precautions:       precautions,
		OutdoorTiming:     outdoorTiming(r),
		EmergencyContacts: emergencyContacts,
	}
}

// outdoorTiming picks the best and worst outdoor windows. Mutually
// exclusive branches, hot weather checked first.
func outdoorTiming(r types.EnvironmentalReading) types.OutdoorTiming {
	switch {
	case r.Temperature > advisoryHotOutdoors:
		return types.OutdoorTiming{
			BestTimes:  []string{"6:00-9:00 AM", "7:00-9:00 PM"},
			AvoidTimes: []string{"11:00 AM-4:00 PM"},
		}
	case r.Temperature < advisoryCold:
		return types.OutdoorTiming{
			BestTimes:  []string{"10:00 AM-3:00 PM"},
			AvoidTimes: []string{"6:00-9:00 AM", "8:00-11:00 PM"},
		}
	default:
		return types.OutdoorTiming{
			BestTimes:  []string{"6:00-10:00 AM", "5:00-8:00 PM"},
			AvoidTimes: []string{},
		}
	}
}
