package handlers

import (
	"net/http"

	"food-marketplace-api/config"
	"food-marketplace-api/models"
	"food-marketplace-api/statemachine"

	"github.com/gin-gonic/gin"
)

type OrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	MenuItem string  `json:"menuItem"`
}

type CreateOrderRequest struct {
	User            uint               `json:"user" binding:"required"`
	Restaurant      uint               `json:"restaurant" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount     float64            `json:"totalAmount" binding:"required"`
	DeliveryAddress string             `json:"deliveryAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
}

// CreateOrder persists the submitted order as-is. The total is stored as
// the client sent it, never recomputed from the items.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
			MenuItemID: it.MenuItem,
		})
	}

	order := models.Order{
		UserID:          req.User,
		RestaurantID:    req.Restaurant,
		Items:           items,
		TotalAmount:     req.TotalAmount,
		DeliveryAddress: req.DeliveryAddress,
		Status:          models.StatusPending,
		PaymentStatus:   models.PaymentPending,
		PaymentMethod:   req.PaymentMethod,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// OrdersByUser lists a user's orders, newest first
func OrdersByUser(c *gin.Context) {
	orders := []models.Order{}
	err := config.DB.Preload("Items").
		Where("user_id = ?", c.Param("userId")).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// OrdersByRestaurant lists a restaurant's orders, newest first
func OrdersByRestaurant(c *gin.Context) {
	orders := []models.Order{}
	err := config.DB.Preload("Items").
		Where("restaurant_id = ?", c.Param("restaurantId")).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus patches the status field. The new status must be a
// member of the enumerated set and the transition must move forward in the
// lifecycle (or into cancelled from a non-terminal state). The write itself
// is a single-field update; two concurrent patches apply in arrival order
// with the later one winning.
func UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":           err.Error(),
			"currentStatus":     order.Status,
			"validNextStatuses": statemachine.ValidNextStatuses(order.Status),
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	config.DB.Preload("Items").First(&order, order.ID)
	c.JSON(http.StatusOK, order)
}
