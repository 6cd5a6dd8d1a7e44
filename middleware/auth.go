package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser       = "user"
	RoleRestaurant = "restaurant"
)

type Claims struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT carrying the subject id and role
func GenerateToken(id uint, role string) (string, error) {
	claims := Claims{
		ID:   id,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// parseToken extracts and verifies the bearer token. On failure it writes
// the 401 response and reports false. Missing and malformed tokens get
// distinct log lines; the response is the same either way.
func parseToken(c *gin.Context, wantRole string) (*Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		log.Printf("auth: missing bearer token on %s %s", c.Request.Method, c.Request.URL.Path)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not logged in! Please log in to get access."})
		c.Abort()
		return nil, false
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		log.Printf("auth: invalid or expired token: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token. Please log in again."})
		c.Abort()
		return nil, false
	}
	if claims.Role != wantRole {
		log.Printf("auth: token role %q cannot access %s routes", claims.Role, wantRole)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token. Please log in again."})
		c.Abort()
		return nil, false
	}
	return claims, true
}

// UserAuth resolves the token subject against the users table and attaches
// the principal to the context.
func UserAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, RoleUser)
		if !ok {
			return
		}
		var user models.User
		if err := config.DB.First(&user, claims.ID).Error; err != nil {
			log.Printf("auth: user %d from token no longer exists", claims.ID)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "The user belonging to this token no longer exists."})
			c.Abort()
			return
		}
		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

// RestaurantAuth is the restaurant-principal counterpart of UserAuth. The
// two guards stay separate: user ids and restaurant ids come from disjoint
// id spaces and each claim must resolve against its own table.
func RestaurantAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, RoleRestaurant)
		if !ok {
			return
		}
		var restaurant models.Restaurant
		if err := config.DB.First(&restaurant, claims.ID).Error; err != nil {
			log.Printf("auth: restaurant %d from token no longer exists", claims.ID)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "The restaurant belonging to this token no longer exists."})
			c.Abort()
			return
		}
		c.Set("restaurantID", restaurant.ID)
		c.Set("restaurant", restaurant)
		c.Next()
	}
}

// UserID extracts the authenticated user's id from context
func UserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}

// RestaurantID extracts the authenticated restaurant's id from context
func RestaurantID(c *gin.Context) uint {
	val, _ := c.Get("restaurantID")
	return val.(uint)
}
