package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/eonerhime/easy-shoppers-hub/models"
)

const sessionTTL = 24 * time.Hour

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupHandler creates the account, its cart, and a first session.
func SignupHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": signupErrorMessage(err)})
			return
		}

		var existing models.User
		err := db.Where("email = ?", req.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists."})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed. Please try again."})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed. Please try again."})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        req.Email,
			PasswordHash: string(hash),
			Name:         req.Name,
			Cart:         models.Cart{},
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		session, token, err := openSession(db, user, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"user":    user,
			"session": session,
			"token":   token,
		})
	}
}

// LoginHandler creates an email/password session.
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Login failed. Please check your credentials."})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed. Please check your credentials."})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed. Please check your credentials."})
			return
		}

		session, token, err := openSession(db, user, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user":    user,
			"session": session,
			"token":   token,
		})
	}
}

// SessionHandler returns the current user and session, 401 when absent.
// A missing session is expected, not fatal: the client routes to login.
func SessionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		sessionID := c.GetString("session_id")

		var user models.User
		if err := db.Preload("Cart.Items").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			return
		}

		var session models.Session
		if err := db.First(&session, "id = ?", sessionID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "session": session})
	}
}

// LogoutHandler deletes the current session so its token dies server-side.
func LogoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")

		if err := db.Delete(&models.Session{}, "id = ?", sessionID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred logging out."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func openSession(db *gorm.DB, user models.User, jwtSecret string) (models.Session, string, error) {
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := db.Create(&session).Error; err != nil {
		return models.Session{}, "", err
	}

	token, err := IssueJWT(jwtSecret, user, session)
	if err != nil {
		return models.Session{}, "", err
	}
	return session, token, nil
}

// signupErrorMessage maps binding failures to the storefront's messages.
func signupErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Password":
				return "Password must be at least 8 characters long."
			case "Email":
				return "Please enter a valid email address."
			}
		}
	}
	return "Invalid input. Please check your details."
}

// IssueJWT generates the bearer token for a session.
func IssueJWT(secret string, user models.User, session models.Session) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"session_id": session.ID,
		"email":      user.Email,
		"name":       user.Name,
		"exp":        session.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
