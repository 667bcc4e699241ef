package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grandvista-backend/services"
	"grandvista-backend/utils"
)

type AdminController struct {
	AdminSvc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{AdminSvc: svc}
}

// GetOverview (GET /api/admin/overview) returns the aggregated management
// view: rooms, all bookings enriched with their rooms, users and messages.
// Admin gating happens upstream; this endpoint only aggregates.
func (ctrl *AdminController) GetOverview(c *gin.Context) {
	overview, err := ctrl.AdminSvc.Overview()
	if err != nil {
		log.Printf("admin overview failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}
