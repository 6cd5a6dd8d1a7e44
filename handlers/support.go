package handlers

import (
	"net/http"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

type CreateSupportRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Issue string `json:"issue"`
}

// CreateSupportTicket files a help request. No authentication. The
// presence check only rejects empty strings, so whitespace-only values
// pass, matching the behavior clients already rely on.
func CreateSupportTicket(c *gin.Context) {
	var req CreateSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Name == "" || req.Email == "" || req.Issue == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	ticket := models.SupportTicket{
		Name:   req.Name,
		Email:  req.Email,
		Issue:  req.Issue,
		Status: "open",
	}
	if err := config.DB.Create(&ticket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Support request received", "ticket": ticket})
}

// ListSupportTickets returns all tickets, newest first
func ListSupportTickets(c *gin.Context) {
	tickets := []models.SupportTicket{}
	if err := config.DB.Order("created_at desc, id desc").Find(&tickets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tickets)
}
