package types

import "time"

// Department is one of the fixed hospital departments the predictor
// scores. Keys are closed so a typo can never produce an unscored
// department.
type Department string

const (
	Emergency       Department = "Emergency"
	Respiratory     Department = "Respiratory"
	Cardiology      Department = "Cardiology"
	Pediatrics      Department = "Pediatrics"
	GeneralMedicine Department = "General Medicine"
)

// AllDepartments lists every department in a stable order.
var AllDepartments = []Department{
	Emergency,
	Respiratory,
	Cardiology,
	Pediatrics,
	GeneralMedicine,
}

// SurgeRiskLevel classifies the overall surge multiplier.
type SurgeRiskLevel string

const (
	SurgeRiskLow      SurgeRiskLevel = "Low"
	SurgeRiskModerate SurgeRiskLevel = "Moderate"
	SurgeRiskHigh     SurgeRiskLevel = "High"
)

// Priority of a recommendation.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// DepartmentPrediction is the per-department output of the surge
// predictor.
type DepartmentPrediction struct {
	BasePatients        int      `json:"base_patients"`
	Multiplier          float64  `json:"multiplier"`
	PredictedPatients   int      `json:"predicted_patients"`
	SurgePercentage     int      `json:"surge_percentage"`
	ContributingFactors []string `json:"primary_factors"`
}

// Recommendation is an operational action suggested by the report
// composer.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
}

// SurgeReport is the full output of one surge prediction run.
// TotalPredictedPatients is always recomputed from the department table.
type SurgeReport struct {
	Conditions             EnvironmentalReading                `json:"conditions"`
	OverallMultiplier      float64                             `json:"overall_surge_multiplier"`
	RiskLevel              SurgeRiskLevel                      `json:"risk_level"`
	RiskColor              string                              `json:"risk_color"`
	PeakHours              []string                            `json:"peak_hours"`
	DepartmentPredictions  map[Department]DepartmentPrediction `json:"department_predictions"`
	Recommendations        []Recommendation                    `json:"recommendations"`
	TotalPredictedPatients int                                 `json:"total_predicted_patients"`
	Summary                string                              `json:"summary"`
	GeneratedAt            time.Time                           `json:"timestamp"`
}

// SurgeAlert is a single weather-driven operational alert.
type SurgeAlert struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"`
	Severity           Priority `json:"severity"`
	Message            string   `json:"message"`
	RecommendedActions []string `json:"recommended_actions"`
}
