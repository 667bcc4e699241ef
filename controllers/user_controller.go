package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grandvista-backend/services"
	"grandvista-backend/utils"
)

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

// GetUsers (GET /api/users) lists the directory. Password hashes are never
// serialized by the model, so the records are safe as-is.
func (ctrl *UserController) GetUsers(c *gin.Context) {
	users, err := ctrl.UserSvc.List()
	if err != nil {
		log.Printf("list users failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}
