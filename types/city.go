package types

import "time"

// City is an entry in the static city registry.
type City struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// HealthRiskLevel classifies the weighted 0-100 health risk score.
type HealthRiskLevel string

const (
	HealthRiskVeryLow  HealthRiskLevel = "Very Low"
	HealthRiskLow      HealthRiskLevel = "Low"
	HealthRiskModerate HealthRiskLevel = "Moderate"
	HealthRiskHigh     HealthRiskLevel = "High"
	HealthRiskVeryHigh HealthRiskLevel = "Very High"
)

// RiskAssessment is the scored output for one set of conditions.
type RiskAssessment struct {
	OverallScore float64            `json:"overall_risk_score"`
	RiskLevel    HealthRiskLevel    `json:"risk_level"`
	RiskColor    string             `json:"risk_color"`
	Components   map[string]float64 `json:"component_risks"`
}

// OutdoorTiming lists the windows in which outdoor activity is
// advisable or should be avoided.
type OutdoorTiming struct {
	BestTimes  []string `json:"best_times"`
	AvoidTimes []string `json:"avoid_times"`
}

// CityAdvisory is the human-readable guidance attached to a city risk
// profile.
type CityAdvisory struct {
	Recommendations   []string          `json:"recommendations"`
	Precautions       []string          `json:"precautions"`
	OutdoorTiming     OutdoorTiming     `json:"outdoor_timing"`
	EmergencyContacts map[string]string `json:"emergency_contacts"`
}

// CityRiskProfile is one city's scored conditions plus advisory.
type CityRiskProfile struct {
	City        string               `json:"city"`
	Coordinates Coordinates          `json:"coordinates"`
	Conditions  EnvironmentalReading `json:"conditions"`
	Risk        RiskAssessment       `json:"risk_assessment"`
	Advisory    CityAdvisory         `json:"advisory"`
	GeneratedAt time.Time            `json:"timestamp"`
}

// CityRiskRef points at one city's score inside a comparison summary.
type CityRiskRef struct {
	Name      string          `json:"name"`
	RiskScore float64         `json:"risk_score"`
	RiskLevel HealthRiskLevel `json:"risk_level"`
}

// ComparisonSummary aggregates a ranked comparison.
type ComparisonSummary struct {
	HighestRiskCity  CityRiskRef `json:"highest_risk_city"`
	LowestRiskCity   CityRiskRef `json:"lowest_risk_city"`
	AverageRiskScore float64     `json:"average_risk_score"`
}

// CityComparison is the ranked multi-city result. Summary is nil when no
// requested city resolved; Message carries the no-data note in that case.
type CityComparison struct {
	CitiesAnalyzed int                `json:"cities_analyzed"`
	Profiles       []CityRiskProfile  `json:"city_data"`
	Summary        *ComparisonSummary `json:"summary,omitempty"`
	Message        string             `json:"message,omitempty"`
	GeneratedAt    time.Time          `json:"timestamp"`
}
