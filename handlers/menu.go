package handlers

import (
	"net/http"
	"time"

	"food-marketplace-api/config"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Available   *bool   `json:"available"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Available   *bool    `json:"available"`
}

// GetOwnMenu returns the authenticated restaurant's menu
func GetOwnMenu(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)
	items := []models.MenuItem{}
	if err := config.DB.Where("restaurant_id = ?", restaurantID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddMenuItem appends a new item to the restaurant's menu. The response is
// the row matched by its assigned id after the insert, so a concurrent
// append to the same menu cannot hand back someone else's item.
func AddMenuItem(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item := models.MenuItem{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Image:        req.Image,
		Available:    true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var created models.MenuItem
	if err := config.DB.First(&created, "id = ?", item.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateMenuItem mutates one of the restaurant's own menu items
func UpdateMenuItem(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	var item models.MenuItem
	if err := config.DB.Where("restaurant_id = ?", restaurantID).
		First(&item, "id = ?", c.Param("menuItemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes a menu item. Deleting an id that does not exist is
// a no-op and still replies success.
func DeleteMenuItem(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	if err := config.DB.Where("restaurant_id = ? AND id = ?", restaurantID, c.Param("menuItemId")).
		Delete(&models.MenuItem{}).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

// RestaurantStats computes the dashboard counters by scanning the
// restaurant's full order set. No caching: order volume per restaurant is
// expected to stay modest.
func RestaurantStats(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	orders := []models.Order{}
	if err := config.DB.Where("restaurant_id = ?", restaurantID).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	open := map[models.OrderStatus]bool{
		models.StatusPending:        true,
		models.StatusPreparing:      true,
		models.StatusConfirmed:      true,
		models.StatusOutForDelivery: true,
	}

	var pendingOrders int
	var todayRevenue float64
	today := time.Now()
	for _, o := range orders {
		if open[o.Status] {
			pendingOrders++
		}
		y, m, d := o.CreatedAt.Local().Date()
		ty, tm, td := today.Date()
		if y == ty && m == tm && d == td {
			todayRevenue += o.TotalAmount
		}
	}

	var totalMenuItems int64
	config.DB.Model(&models.MenuItem{}).Where("restaurant_id = ?", restaurantID).Count(&totalMenuItems)

	c.JSON(http.StatusOK, gin.H{
		"totalOrders":    len(orders),
		"pendingOrders":  pendingOrders,
		"todayRevenue":   todayRevenue,
		"totalMenuItems": totalMenuItems,
	})
}

// OwnOrders is a placeholder kept for client compatibility; it always
// replies with an empty list.
func OwnOrders(c *gin.Context) {
	c.JSON(http.StatusOK, []models.Order{})
}

// UpdateOwnProfile updates the authenticated restaurant's profile. Same
// schema as the public update path: email and password never pass through.
func UpdateOwnProfile(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
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
