package handlers

import (
	"net/http"
	"strings"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

// UpdateRestaurantRequest is the profile-update schema. Email and password
// have no field here: they are silently dropped even when the payload
// carries them, and cannot be changed through this path.
type UpdateRestaurantRequest struct {
	Name         *string         `json:"name"`
	Cuisine      *[]string       `json:"cuisine"`
	Address      *models.Address `json:"address"`
	Phone        *string         `json:"phone"`
	Image        *string         `json:"image"`
	DeliveryTime *string         `json:"deliveryTime"`
	MinOrder     *float64        `json:"minOrder"`
	Rating       *float64        `json:"rating"`
	IsActive     *bool           `json:"isActive"`
}

func applyRestaurantUpdate(restaurant *models.Restaurant, req *UpdateRestaurantRequest) {
	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Cuisine != nil {
		restaurant.Cuisine = *req.Cuisine
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}
	if req.Image != nil {
		restaurant.Image = *req.Image
	}
	if req.DeliveryTime != nil {
		restaurant.DeliveryTime = *req.DeliveryTime
	}
	if req.MinOrder != nil {
		restaurant.MinOrder = *req.MinOrder
	}
	if req.Rating != nil {
		restaurant.Rating = *req.Rating
	}
	if req.IsActive != nil {
		restaurant.IsActive = *req.IsActive
	}
}

// ListRestaurants returns all active restaurants
func ListRestaurants(c *gin.Context) {
	restaurants := []models.Restaurant{}
	if err := config.DB.Preload("Menu").Where("is_active = ?", true).Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// SearchRestaurants matches the query case-insensitively against restaurant
// name, cuisine and menu-item names, unioned across the three fields
func SearchRestaurants(c *gin.Context) {
	pattern := "%" + strings.ToLower(c.Param("query")) + "%"

	restaurants := []models.Restaurant{}
	err := config.DB.Preload("Menu").
		Select("restaurants.*").
		Joins("LEFT JOIN menu_items ON menu_items.restaurant_id = restaurants.id").
		Where("LOWER(restaurants.name) LIKE ? OR LOWER(restaurants.cuisine) LIKE ? OR LOWER(menu_items.name) LIKE ?",
			pattern, pattern, pattern).
		Group("restaurants.id").
		Find(&restaurants).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant returns a single restaurant with its menu
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("Menu").First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// UpdateRestaurant updates a restaurant's profile by id
func UpdateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	applyRestaurantUpdate(&restaurant, &req)
	if err := config.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}
