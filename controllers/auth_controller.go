package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grandvista-backend/services"
	"grandvista-backend/utils"
)

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	UserSvc *services.UserService
}

func NewAuthController(svc *services.UserService) *AuthController {
	return &AuthController{UserSvc: svc}
}

// Register (POST /api/auth/register) creates a guest account. All four
// fields are required and the email must be unused.
func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONAuthError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := ctrl.UserSvc.Register(services.RegisterInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Phone:    payload.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			utils.JSONAuthError(c, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, services.ErrEmailTaken):
			utils.JSONAuthError(c, http.StatusBadRequest, "Email already registered")
		default:
			log.Printf("register failed: %v", err)
			utils.JSONAuthError(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// Login (POST /api/auth/login). Session handling beyond the credential check
// is the frontend's concern; this just verifies and returns the safe user.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONAuthError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := ctrl.UserSvc.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONAuthError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("login failed: %v", err)
		utils.JSONAuthError(c, http.StatusInternalServerError, "Login failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
