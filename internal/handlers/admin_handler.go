package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectzeus/checkin-backend/internal/services"
)

// AdminHandler exposes user records and reports to the admin API
type AdminHandler struct {
	userService      *services.UserService
	milestoneService *services.MilestoneService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(userService *services.UserService, milestoneService *services.MilestoneService) *AdminHandler {
	return &AdminHandler{
		userService:      userService,
		milestoneService: milestoneService,
	}
}

// GetAllUsers handles GET /admin/users
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserCount handles GET /admin/users/count
func (h *AdminHandler) GetUserCount(c *gin.Context) {
	count, err := h.userService.GetUserCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user count: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetMilestones handles GET /admin/milestones
func (h *AdminHandler) GetMilestones(c *gin.Context) {
	report, err := h.milestoneService.Scan(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan milestones: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
