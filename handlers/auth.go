package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-surgesense/db"
	"go-surgesense/types"
)

// Login serves POST /login.
func Login(c *gin.Context, store *db.Store) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	log.Printf("Login attempt for: %s", request.Email)

	user, err := store.FindUser(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Login service temporarily unavailable"})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"role":    user.Role,
		"message": "Successfully logged in as " + user.Role,
	})
}

// Signup serves POST /signup.
func Signup(c *gin.Context, store *db.Store) {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	err := store.CreateUser(c.Request.Context(), types.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Role:     "citizen",
	})
	if err != nil {
		log.Printf("Signup error: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account created successfully",
	})
}
