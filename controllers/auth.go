package controllers

import (
	"ethno-platform-api/config"
	"ethno-platform-api/middleware"
	"ethno-platform-api/models"
	"ethno-platform-api/utils"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles user authentication
func Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find user by email
	var user models.User
	if err := config.DB.Preload("Role").
		Where("email = ? AND delete_at IS NULL", req.Email).
		First(&user).Error; err != nil {
		utils.RespondError(c, utils.UnauthorizedError("Invalid email or password"))
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		utils.RespondError(c, utils.UnauthorizedError("Invalid email or password"))
		return
	}

	token, err := generateToken(user)
	if err != nil {
		utils.RespondError(c, utils.InternalError("Failed to generate token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"id":      user.UserID,
		"name":    user.Name,
		"email":   user.Email,
		"role_id": user.RoleID,
		"message": "Login successful",
	})
}

// GetProfile returns current user profile
func GetProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := config.DB.Preload("Role").
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("User not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}

// ChangePassword handles password change
func ChangePassword(c *gin.Context) {
	type PasswordChangeRequest struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
	}

	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	var user models.User
	if err := config.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("User not found"))
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.Password) {
		utils.RespondError(c, utils.UnauthorizedError("Current password is incorrect"))
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.RespondError(c, utils.InternalError("Failed to hash password", err))
		return
	}

	now := time.Now()
	user.Password = hashed
	user.UpdateAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "User not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// generateToken creates JWT token
func generateToken(user models.User) (string, error) {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		expireHours = 24 // default 24 hours
	}

	claims := middleware.Claims{
		UserID: user.UserID,
		Email:  user.Email,
		RoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
