package cronjobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"go-surgesense/agents"
)

// InitCronJobs schedules the autonomous agent's recurring work. The
// returned cron is already started.
func InitCronJobs(agent *agents.Agent) *cron.Cron {
	c := cron.New()

	// Full situational analysis every two hours.
	_, err := c.AddFunc("0 */2 * * *", func() {
		log.Println("Running scheduled surge analysis...")
		result := agent.RunAnalysis()
		log.Printf("Scheduled analysis complete: risk=%s multiplier=%.2f",
			result.SurgeReport.RiskLevel, result.SurgeReport.OverallMultiplier)
	})
	if err != nil {
		log.Printf("Error scheduling surge analysis: %v", err)
	}

	// Lightweight trigger check every 30 minutes.
	_, err = c.AddFunc("*/30 * * * *", func() {
		if _, ran := agent.CheckAndRun(); ran {
			log.Println("Trigger check fired an unscheduled analysis")
		}
	})
	if err != nil {
		log.Printf("Error scheduling trigger check: %v", err)
	}

	c.Start()
	log.Println("Cron jobs initialized")
	return c
}
