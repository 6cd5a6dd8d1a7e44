package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	r := setup(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"user":       1,
		"restaurant": 1,
		"items": []gin.H{
			{"name": "Pizza", "price": 10, "quantity": 2},
		},
		"totalAmount":     20,
		"deliveryAddress": "1 Main St",
		"paymentMethod":   "card",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	decode(t, w, &order)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Equal(t, 20.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Pizza", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)

	t.Run("total stored as submitted", func(t *testing.T) {
		// the server never recomputes the total from the items
		w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
			"user":        1,
			"restaurant":  1,
			"items":       []gin.H{{"name": "Soup", "price": 4, "quantity": 1}},
			"totalAmount": 999,
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
		var got models.Order
		decode(t, w, &got)
		assert.Equal(t, 999.0, got.TotalAmount)
	})

	t.Run("missing items rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
			"user": 1, "restaurant": 1, "totalAmount": 5,
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrdersByUserNewestFirst(t *testing.T) {
	r := setup(t)

	older := models.Order{UserID: 7, RestaurantID: 1, TotalAmount: 10, Status: models.StatusPending,
		CreatedAt: time.Now().Add(-2 * time.Hour)}
	newer := models.Order{UserID: 7, RestaurantID: 1, TotalAmount: 30, Status: models.StatusPending,
		CreatedAt: time.Now().Add(-1 * time.Hour)}
	other := models.Order{UserID: 8, RestaurantID: 1, TotalAmount: 50, Status: models.StatusPending}
	for _, o := range []*models.Order{&older, &newer, &other} {
		require.NoError(t, config.DB.Create(o).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/orders/user/7", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	decode(t, w, &orders)
	require.Len(t, orders, 2)
	assert.Equal(t, 30.0, orders[0].TotalAmount)
	assert.Equal(t, 10.0, orders[1].TotalAmount)
}

func TestOrdersByRestaurantNewestFirst(t *testing.T) {
	r := setup(t)

	first := models.Order{UserID: 1, RestaurantID: 3, TotalAmount: 10, Status: models.StatusPending,
		CreatedAt: time.Now().Add(-time.Hour)}
	second := models.Order{UserID: 2, RestaurantID: 3, TotalAmount: 20, Status: models.StatusPending}
	for _, o := range []*models.Order{&first, &second} {
		require.NoError(t, config.DB.Create(o).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/orders/restaurant/3", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	decode(t, w, &orders)
	require.Len(t, orders, 2)
	assert.Equal(t, 20.0, orders[0].TotalAmount)

	t.Run("no orders yields empty list", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/orders/restaurant/99", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	r := setup(t)

	order := models.Order{UserID: 1, RestaurantID: 1, TotalAmount: 20, Status: models.StatusPending}
	require.NoError(t, config.DB.Create(&order).Error)

	w := doJSON(t, r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "confirmed"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	decode(t, w, &got)
	assert.Equal(t, models.StatusConfirmed, got.Status)

	t.Run("forward again", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "out for delivery"}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("backward rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "preparing"}, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "currentStatus")
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "shipped"}, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "unknown status")
	})

	t.Run("terminal state rejects everything", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "delivered"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "cancelled"}, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown order id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/orders/999/status", gin.H{"status": "confirmed"}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Order not found")
	})

	t.Run("missing status field", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/orders/1/status", gin.H{}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCancelFromNonTerminal(t *testing.T) {
	r := setup(t)

	order := models.Order{UserID: 1, RestaurantID: 1, TotalAmount: 15, Status: models.StatusPreparing}
	require.NoError(t, config.DB.Create(&order).Error)

	w := doJSON(t, r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "cancelled"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	decode(t, w, &got)
	assert.Equal(t, models.StatusCancelled, got.Status)
}
