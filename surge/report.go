package surge

import (
	"fmt"
	"log"
	"strings"
	"time"

	"go-surgesense/types"
)

// Risk classification thresholds on the overall multiplier.
const (
	highRiskMultiplier     = 1.5
	moderateRiskMultiplier = 1.2
)

// EnvResolver turns coordinates into an environmental reading. The
// weather package provides the real one; tests stub it.
type EnvResolver func(lat, lon float64) (types.EnvironmentalReading, error)

// Service binds the scoring pipeline to an environment resolver. It
// holds no mutable state and is safe for concurrent use.
type Service struct {
	Resolve EnvResolver
	Now     func() time.Time
}

// NewService builds a surge service around a resolver.
func NewService(resolve EnvResolver) *Service {
	return &Service{Resolve: resolve, Now: time.Now}
}

// CurrentConditions resolves the conditions at lat/lon, substituting
// the documented defaults when the provider fails. It never returns an
// error.
func (s *Service) CurrentConditions(lat, lon float64) types.EnvironmentalReading {
	reading, err := s.Resolve(lat, lon)
	if err != nil {
		log.Printf("Environment lookup failed for (%f, %f): %v. Using default conditions.", lat, lon, err)
		return types.DefaultReading()
	}
	return reading
}

// classifySurgeRisk maps the overall multiplier to a risk level and
// display color. Thresholds are checked descending; first match wins.
func classifySurgeRisk(multiplier float64) (types.SurgeRiskLevel, string) {
	switch {
	case multiplier >= highRiskMultiplier:
		return types.SurgeRiskHigh, "red"
	case multiplier >= moderateRiskMultiplier:
		return types.SurgeRiskModerate, "yellow"
	default:
		return types.SurgeRiskLow, "green"
	}
}

// reportRecommendations appends one recommendation per firing
// condition. Conditions are not mutually exclusive.
func reportRecommendations(r types.EnvironmentalReading) []types.Recommendation {
	var recs []types.Recommendation
	if r.Temperature > tempHighThreshold {
		recs = append(recs, types.Recommendation{
			Title:       "Heat Wave Protocol",
			Description: "Activate cooling centers, increase hydration supplies, monitor elderly patients",
			Priority:    types.PriorityHigh,
			Category:    "heat",
		})
	}
	if r.AQI > aqiPoorThreshold {
		recs = append(recs, types.Recommendation{
			Title:       "Air Quality Alert",
			Description: "Increase respiratory staff, stock inhalers and nebulizers, prepare oxygen supplies",
			Priority:    types.PriorityHigh,
			Category:    "air_quality",
		})
	}
	if r.Temperature < tempLowThreshold {
		recs = append(recs, types.Recommendation{
			Title:       "Cold Weather Preparedness",
			Description: "Monitor respiratory infections, increase warm blanket supplies, check heating systems",
			Priority:    types.PriorityMedium,
			Category:    "respiratory",
		})
	}
	return recs
}

// ComposeReport assembles the full surge report for a reading. Pure
// function of its inputs.
func ComposeReport(r types.EnvironmentalReading, at time.Time) types.SurgeReport {
	overall := Multiplier(r, at)
	predictions := DepartmentPredictions(r, at)
	peakHours := PeakHours(r)
	level, color := classifySurgeRisk(overall)

	total := 0
	for _, p := range predictions {
		total += p.PredictedPatients
	}

	return types.SurgeReport{
		Conditions:             r,
		OverallMultiplier:      overall,
		RiskLevel:              level,
		RiskColor:              color,
		PeakHours:              peakHours,
		DepartmentPredictions:  predictions,
		Recommendations:        reportRecommendations(r),
		TotalPredictedPatients: total,
		Summary: fmt.Sprintf("Surge risk is %s with %d%% increase expected. Peak hours: %s",
			strings.ToLower(string(level)), int((overall-1)*100), strings.Join(peakHours, ", ")),
		GeneratedAt: at,
	}
}

// GenerateSurgeReport resolves conditions for lat/lon and composes the
// report. Degrades to default conditions instead of failing.
func (s *Service) GenerateSurgeReport(lat, lon float64) types.SurgeReport {
	return ComposeReport(s.CurrentConditions(lat, lon), s.Now())
}
