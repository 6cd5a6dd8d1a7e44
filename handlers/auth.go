package handlers

import (
	"net/http"

	"food-marketplace-api/config"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterUserRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Phone    string         `json:"phone"`
	Address  models.Address `json:"address"`
}

type RegisterRestaurantRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Phone    string         `json:"phone"`
	Cuisine  []string       `json:"cuisine"`
	Address  models.Address `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func authPayload(role string, key string, id uint, name, email, token string) gin.H {
	return gin.H{
		"status": "success",
		"token":  token,
		"data": gin.H{
			"role": role,
			key: gin.H{
				"id":    id,
				"name":  name,
				"email": email,
			},
		},
	}
}

// RegisterUser creates a new user account
func RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, middleware.RoleUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusCreated, authPayload("user", "user", user.ID, user.Name, user.Email, token))
}

// LoginUser authenticates a user and returns a JWT
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect email or password"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, middleware.RoleUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, authPayload("user", "user", user.ID, user.Name, user.Email, token))
}

// RegisterRestaurant creates a new restaurant account
func RegisterRestaurant(c *gin.Context) {
	var req RegisterRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existing models.Restaurant
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Restaurant already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	restaurant := models.Restaurant{
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hash),
		Phone:        req.Phone,
		Cuisine:      req.Cuisine,
		Address:      req.Address,
		DeliveryTime: "30-45 min",
		Rating:       4.0,
		IsActive:     true,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		return
	}

	token, err := middleware.GenerateToken(restaurant.ID, middleware.RoleRestaurant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusCreated, authPayload("restaurant", "restaurant", restaurant.ID, restaurant.Name, restaurant.Email, token))
}

// LoginRestaurant authenticates a restaurant and returns a JWT
func LoginRestaurant(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Where("email = ?", req.Email).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(restaurant.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect email or password"})
		return
	}

	token, err := middleware.GenerateToken(restaurant.ID, middleware.RoleRestaurant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, authPayload("restaurant", "restaurant", restaurant.ID, restaurant.Name, restaurant.Email, token))
}

// GetProfile returns the authenticated user's record
func GetProfile(c *gin.Context) {
	val, _ := c.Get("user")
	c.JSON(http.StatusOK, val.(models.User))
}
