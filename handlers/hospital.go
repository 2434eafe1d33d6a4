package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-surgesense/db"
	"go-surgesense/types"
)

// ListStaff serves GET /hospital/staff.
func ListStaff(c *gin.Context, store *db.Store) {
	staff, err := store.ListStaff(c.Request.Context())
	if err != nil {
		log.Printf("List staff error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to fetch staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "staff": staff})
}

// AddStaff serves POST /hospital/staff.
func AddStaff(c *gin.Context, store *db.Store) {
	var staff types.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if staff.Shift == "" {
		staff.Shift = "day"
	}

	if err := store.AddStaff(c.Request.Context(), staff); err != nil {
		log.Printf("Add staff error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to add staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "staff": staff})
}

// ListInventory serves GET /hospital/inventory.
func ListInventory(c *gin.Context, store *db.Store) {
	items, err := store.ListInventory(c.Request.Context())
	if err != nil {
		log.Printf("List inventory error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to fetch inventory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "inventory": items})
}

// UpsertInventory serves POST /hospital/inventory.
func UpsertInventory(c *gin.Context, store *db.Store) {
	var item types.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if item.Status == "" {
		item.Status = types.DecisionPending
	}

	if err := store.UpsertInventory(c.Request.Context(), item); err != nil {
		log.Printf("Upsert inventory error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to save inventory item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// ListDecisions serves GET /hospital/decisions.
func ListDecisions(c *gin.Context, store *db.Store) {
	decisions, err := store.ListDecisions(c.Request.Context())
	if err != nil {
		log.Printf("List decisions error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to fetch decision log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "decisions": decisions})
}

// LogDecision serves POST /hospital/decisions.
func LogDecision(c *gin.Context, store *db.Store) {
	var decision types.DecisionLog
	if err := c.ShouldBindJSON(&decision); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	id, err := store.LogDecision(c.Request.Context(), decision)
	if err != nil {
		log.Printf("Log decision error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to record decision"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// GetSettings serves GET /hospital/settings.
func GetSettings(c *gin.Context, store *db.Store) {
	settings, err := store.GetSettings(c.Request.Context())
	if err != nil {
		log.Printf("Get settings error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

// SaveSettings serves PUT /hospital/settings.
func SaveSettings(c *gin.Context, store *db.Store) {
	var settings types.HospitalSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if !types.ValidCoordinates(settings.Latitude, settings.Longitude) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid coordinates provided"})
		return
	}

	if err := store.SaveSettings(c.Request.Context(), settings); err != nil {
		log.Printf("Save settings error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}
