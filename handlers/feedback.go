package handlers

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateFeedbackRequest struct {
	OrderID       uint   `json:"orderId" binding:"required"`
	UserID        uint   `json:"userId" binding:"required"`
	RestaurantID  uint   `json:"restaurantId" binding:"required"`
	Rating        int    `json:"rating"`
	FoodQuality   *int   `json:"foodQuality"`
	DeliverySpeed *int   `json:"deliverySpeed"`
	Comment       string `json:"comment"`
}

// validate reports the first failing constraint, if any. The optional
// ratings are pointers so that an explicit 0 is out of range rather than
// indistinguishable from absent.
func (r *CreateFeedbackRequest) validate() string {
	if r.Rating < 1 || r.Rating > 5 {
		return "Rating must be between 1 and 5"
	}
	if r.FoodQuality != nil && (*r.FoodQuality < 1 || *r.FoodQuality > 5) {
		return "Food quality rating must be between 1 and 5"
	}
	if r.DeliverySpeed != nil && (*r.DeliverySpeed < 1 || *r.DeliverySpeed > 5) {
		return "Delivery speed rating must be between 1 and 5"
	}
	if utf8.RuneCountInString(r.Comment) > 500 {
		return "Comment must be at most 500 characters"
	}
	return ""
}

type feedbackResponse struct {
	models.Feedback
	UserName       string `json:"userName"`
	RestaurantName string `json:"restaurantName,omitempty"`
}

// CreateFeedback records feedback for an order, at most once per order.
// The existence check runs before the insert; two submissions racing for
// the same order can both pass it.
func CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	var existing models.Feedback
	if err := config.DB.Where("order_id = ?", req.OrderID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Feedback already submitted for this order"})
		return
	}

	feedback := models.Feedback{
		OrderID:      req.OrderID,
		UserID:       req.UserID,
		RestaurantID: req.RestaurantID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if req.FoodQuality != nil {
		feedback.FoodQuality = *req.FoodQuality
	}
	if req.DeliverySpeed != nil {
		feedback.DeliverySpeed = *req.DeliverySpeed
	}
	if err := config.DB.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// FeedbackByOrder returns the feedback for an order, or null when none exists
func FeedbackByOrder(c *gin.Context) {
	var feedback models.Feedback
	err := config.DB.Preload("User").Preload("Restaurant").
		Where("order_id = ?", c.Param("orderId")).First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, feedbackResponse{
		Feedback:       feedback,
		UserName:       feedback.User.Name,
		RestaurantName: feedback.Restaurant.Name,
	})
}

// FeedbackByRestaurant lists a restaurant's feedback newest first, with the
// submitter's name joined in
func FeedbackByRestaurant(c *gin.Context) {
	feedbacks := []models.Feedback{}
	err := config.DB.Preload("User").
		Where("restaurant_id = ?", c.Param("restaurantId")).
		Order("created_at desc").
		Find(&feedbacks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	out := make([]feedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		out = append(out, feedbackResponse{Feedback: f, UserName: f.User.Name})
	}
	c.JSON(http.StatusOK, out)
}
