package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"
	"go-surgesense/surge"
	"go-surgesense/types"
)

// Default analysis location (Mumbai) when the agent runs unattended.
const (
	defaultLat = 19.0760
	defaultLon = 72.8777
)

// Trigger thresholds: critical conditions force an analysis before the
// 2-hour cadence elapses.
const (
	analysisInterval   = 2 * time.Hour
	checkInterval      = 30 * time.Minute
	triggerTempHigh    = 35.0
	triggerTempLow     = 10.0
	triggerAQICritical = 200
)

// PriorityAlert is one urgent item in the agent's output.
type PriorityAlert struct {
	Title           string         `json:"title"`
	Message         string         `json:"message"`
	Priority        types.Priority `json:"priority"`
	Department      string         `json:"department"`
	EstimatedImpact string         `json:"estimated_impact"`
}

// StaffingAction is a recommended staffing change.
type StaffingAction struct {
	Department  string `json:"department"`
	Action      string `json:"action"` // increase|decrease|maintain
	Role        string `json:"role"`
	CountChange int    `json:"count_change"`
	Reasoning   string `json:"reasoning"`
}

// InventoryAction is a recommended stock change.
type InventoryAction struct {
	Item           string `json:"item"`
	Action         string `json:"action"`
	QuantityChange int    `json:"quantity_change"`
	Reasoning      string `json:"reasoning"`
}

// OperationalRecommendation is a non-staffing, non-stock action.
type OperationalRecommendation struct {
	Area           string `json:"area"`
	Recommendation string `json:"recommendation"`
	Timeline       string `json:"timeline"` // immediate|within_2h|within_6h|within_24h
}

// Recommendations is the structured output of one analysis run.
type Recommendations struct {
	PriorityAlerts             []PriorityAlert             `json:"priority_alerts"`
	StaffingActions            []StaffingAction            `json:"staffing_actions"`
	InventoryActions           []InventoryAction           `json:"inventory_actions"`
	OperationalRecommendations []OperationalRecommendation `json:"operational_recommendations"`
}

// AnalysisResult combines the surge report with the recommendations
// derived from it.
type AnalysisResult struct {
	Timestamp       time.Time         `json:"timestamp"`
	SurgeReport     types.SurgeReport `json:"surge_report"`
	Recommendations Recommendations   `json:"ai_recommendations"`
	Source          string            `json:"source"` // "model" or "fallback"
	NextAnalysis    time.Time         `json:"next_analysis"`
}

// Status describes the agent's run state.
type Status struct {
	LastAnalysis *time.Time `json:"last_analysis,omitempty"`
	NextCheck    time.Time  `json:"next_check"`
	ModelBacked  bool       `json:"model_backed"`
}

// Agent runs periodic surge analysis and generates proactive
// recommendations, with a deterministic fallback when no model is
// configured or the call fails.
type Agent struct {
	client *openai.Client
	surge  *surge.Service

	mu           sync.Mutex
	lastAnalysis time.Time
	lastResult   *AnalysisResult
}

// NewAgent builds an autonomous agent. client may be nil; the agent
// then always uses the rule-based fallback.
func NewAgent(client *openai.Client, surgeService *surge.Service) *Agent {
	return &Agent{client: client, surge: surgeService}
}

// ShouldTrigger reports whether a new analysis is due, either because
// the cadence elapsed or conditions crossed a critical threshold.
func (a *Agent) ShouldTrigger() bool {
	a.mu.Lock()
	last := a.lastAnalysis
	a.mu.Unlock()

	if last.IsZero() || time.Since(last) > analysisInterval {
		return true
	}

	conditions := a.surge.CurrentConditions(defaultLat, defaultLon)
	return conditions.Temperature > triggerTempHigh ||
		conditions.Temperature < triggerTempLow ||
		conditions.AQI > triggerAQICritical
}

// RunAnalysis generates a surge report and the recommendations for it.
func (a *Agent) RunAnalysis() AnalysisResult {
	log.Println("Autonomous agent: starting analysis")

	report := a.surge.GenerateSurgeReport(defaultLat, defaultLon)
	recommendations, source := a.generateRecommendations(report)

	now := time.Now()
	result := AnalysisResult{
		Timestamp:       now,
		SurgeReport:     report,
		Recommendations: recommendations,
		Source:          source,
		NextAnalysis:    now.Add(analysisInterval),
	}

	a.mu.Lock()
	a.lastAnalysis = now
	a.lastResult = &result
	a.mu.Unlock()

	log.Printf("Autonomous agent: analysis complete, risk level %s", report.RiskLevel)
	return result
}

// CheckAndRun runs an analysis only when one is due.
func (a *Agent) CheckAndRun() (AnalysisResult, bool) {
	if a.ShouldTrigger() {
		return a.RunAnalysis(), true
	}
	return AnalysisResult{}, false
}

// Status reports when the agent last ran and whether it is
// model-backed.
func (a *Agent) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Status{
		NextCheck:   time.Now().Add(checkInterval),
		ModelBacked: a.client != nil,
	}
	if !a.lastAnalysis.IsZero() {
		t := a.lastAnalysis
		s.LastAnalysis = &t
	}
	return s
}

// ExecuteAction dispatches a named agent action.
func (a *Agent) ExecuteAction(action string) (interface{}, error) {
	switch action {
	case "run_analysis":
		return a.RunAnalysis(), nil
	case "status":
		return a.Status(), nil
	case "last_result":
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.lastResult == nil {
			return nil, fmt.Errorf("no analysis has run yet")
		}
		return *a.lastResult, nil
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}
}

const autonomousSystemPrompt = `You are the SurgeSense Autonomous AI Agent.

Analyze the surge report and generate specific, actionable recommendations for hospital operations.

Return ONLY valid JSON with this structure:
{
  "priority_alerts": [{"title": "", "message": "", "priority": "critical|high|medium|low", "department": "", "estimated_impact": ""}],
  "staffing_actions": [{"department": "", "action": "increase|decrease|maintain", "role": "doctor|nurse|specialist", "count_change": 0, "reasoning": ""}],
  "inventory_actions": [{"item": "", "action": "increase|decrease|maintain", "quantity_change": 0, "reasoning": ""}],
  "operational_recommendations": [{"area": "", "recommendation": "", "timeline": "immediate|within_2h|within_6h|within_24h"}]
}`

// generateRecommendations asks the model for recommendations, falling
// back to the rule-based set on any failure.
func (a *Agent) generateRecommendations(report types.SurgeReport) (Recommendations, string) {
	if a.client == nil {
		return fallbackRecommendations(report), "fallback"
	}

	var departments []string
	for dept, p := range report.DepartmentPredictions {
		departments = append(departments,
			fmt.Sprintf("- %s: %d patients (+%d%%)", dept, p.PredictedPatients, p.SurgePercentage))
	}

	userPrompt := fmt.Sprintf(`Current Surge Report:
- Risk Level: %s
- Overall Surge Multiplier: %.2f
- Temperature: %.1f°C
- AQI: %d (%s)
- Peak Hours: %s
- Total Predicted Patients: %d

Department Predictions:
%s

Generate autonomous recommendations for hospital operations.`,
		report.RiskLevel, report.OverallMultiplier,
		report.Conditions.Temperature, report.Conditions.AQI, report.Conditions.AQICategory,
		strings.Join(report.PeakHours, ", "), report.TotalPredictedPatients,
		strings.Join(departments, "\n"))

	resp, err := a.client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: autonomousSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			MaxTokens: 900,
		},
	)
	if err != nil {
		log.Printf("Autonomous agent model error: %v", err)
		return fallbackRecommendations(report), "fallback"
	}

	var recommendations Recommendations
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Choices[0].Message.Content)), &recommendations); err != nil {
		log.Printf("Autonomous agent: could not parse model output: %v", err)
		return fallbackRecommendations(report), "fallback"
	}
	return recommendations, "model"
}

// fallbackRecommendations derives recommendations from the report with
// fixed rules when the model is unavailable.
func fallbackRecommendations(report types.SurgeReport) Recommendations {
	var recommendations Recommendations
	conditions := report.Conditions

	if conditions.Temperature > triggerTempHigh {
		recommendations.PriorityAlerts = append(recommendations.PriorityAlerts, PriorityAlert{
			Title:           "Extreme Heat Alert",
			Message:         "Activate heat emergency protocols immediately",
			Priority:        types.PriorityCritical,
			Department:      string(types.Emergency),
			EstimatedImpact: "40-60% increase in heat-related cases",
		})
	}

	if conditions.AQI > triggerAQICritical {
		recommendations.PriorityAlerts = append(recommendations.PriorityAlerts, PriorityAlert{
			Title:           "Hazardous Air Quality",
			Message:         "Prepare for respiratory emergency surge",
			Priority:        types.PriorityCritical,
			Department:      string(types.Respiratory),
			EstimatedImpact: "50-80% increase in respiratory cases",
		})
	}

	if report.RiskLevel == types.SurgeRiskHigh {
		recommendations.StaffingActions = append(recommendations.StaffingActions,
			StaffingAction{
				Department:  string(types.Emergency),
				Action:      "increase",
				Role:        string(types.RoleDoctor),
				CountChange: 2,
				Reasoning:   "High surge risk requires additional emergency physicians",
			},
			StaffingAction{
				Department:  string(types.Emergency),
				Action:      "increase",
				Role:        string(types.RoleNurse),
				CountChange: 4,
				Reasoning:   "Increased patient volume requires more nursing support",
			},
		)
	}

	return recommendations
}
