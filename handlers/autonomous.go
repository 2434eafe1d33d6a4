package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-surgesense/agents"
)

// AgentStatus serves GET /api/autonomous-agent/status.
func AgentStatus(c *gin.Context, agent *agents.Agent) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    agent.Status(),
		"timestamp": time.Now(),
	})
}

// AgentAction serves POST /api/autonomous-agent/action.
func AgentAction(c *gin.Context, agent *agents.Agent) {
	var request struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := agent.ExecuteAction(request.Action)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Unable to execute action: " + request.Action,
			"action":  request.Action,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"action":    request.Action,
		"result":    result,
		"timestamp": time.Now(),
	})
}

// AgentAnalysis serves GET /api/autonomous/analysis.
func AgentAnalysis(c *gin.Context, agent *agents.Agent) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"analysis":  agent.RunAnalysis(),
		"timestamp": time.Now(),
	})
}

// AgentCheck serves GET /api/autonomous/check.
func AgentCheck(c *gin.Context, agent *agents.Agent) {
	result, ran := agent.CheckAndRun()
	if !ran {
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "No analysis needed at this time",
			"next_check": time.Now().Add(30 * time.Minute),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"result":    result,
		"timestamp": time.Now(),
	})
}
