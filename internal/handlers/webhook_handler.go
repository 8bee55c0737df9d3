package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projectzeus/checkin-backend/internal/commands"
	"github.com/projectzeus/checkin-backend/internal/models"
	"github.com/projectzeus/checkin-backend/internal/services"
)

// WebhookHandler handles inbound chat events. Every user-facing outcome,
// including rejections, answers HTTP 200 with the reply text; non-200 is
// reserved for malformed payloads.
type WebhookHandler struct {
	registrationService *services.RegistrationService
	checkinService      *services.CheckinService
	userService         *services.UserService
	milestoneService    *services.MilestoneService
	leaderboardService  *services.LeaderboardService
	leaderboardSize     int
	logger              *zap.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(
	registrationService *services.RegistrationService,
	checkinService *services.CheckinService,
	userService *services.UserService,
	milestoneService *services.MilestoneService,
	leaderboardService *services.LeaderboardService,
	leaderboardSize int,
	logger *zap.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		registrationService: registrationService,
		checkinService:      checkinService,
		userService:         userService,
		milestoneService:    milestoneService,
		leaderboardService:  leaderboardService,
		leaderboardSize:     leaderboardSize,
		logger:              logger,
	}
}

// bindQuery parses the webhook envelope, answering 400 for malformed input
func (h *WebhookHandler) bindQuery(c *gin.Context) (*models.Query, bool) {
	var req models.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return req.Query, true
}

// reply sends a single-message reply envelope
func (h *WebhookHandler) reply(c *gin.Context, message string) {
	c.JSON(http.StatusOK, models.NewWebhookResponse(message))
}

// replyError maps a service error to reply text, logging unexpected ones
func (h *WebhookHandler) replyError(c *gin.Context, err error) {
	message, known := services.ReplyForError(err)
	if !known {
		h.logger.Error("webhook request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	h.reply(c, message)
}

// Register handles POST /bot/register
func (h *WebhookHandler) Register(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	user, err := h.registrationService.Register(c.Request.Context(), q)
	if err != nil {
		h.replyError(c, err)
		return
	}
	h.reply(c, services.WelcomeReply(user))
}

// CheckIn handles POST /bot/checkin
func (h *WebhookHandler) CheckIn(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	_, message, err := h.checkinService.CheckIn(c.Request.Context(), q)
	if err != nil {
		h.replyError(c, err)
		return
	}
	h.reply(c, message)
}

// Info handles POST /bot/info
func (h *WebhookHandler) Info(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	user, err := h.userService.Info(c.Request.Context(), q)
	if err != nil {
		h.replyError(c, err)
		return
	}
	h.reply(c, services.InfoReply(user))
}

// Milestones handles POST /bot/milestone
func (h *WebhookHandler) Milestones(c *gin.Context) {
	if _, ok := h.bindQuery(c); !ok {
		return
	}

	report, err := h.milestoneService.Scan(c.Request.Context())
	if err != nil {
		h.replyError(c, err)
		return
	}
	h.reply(c, services.MilestoneReply(report))
}

// Leaderboard handles POST /bot/leaderboard
func (h *WebhookHandler) Leaderboard(c *gin.Context) {
	if _, ok := h.bindQuery(c); !ok {
		return
	}

	entries, err := h.leaderboardService.Rank(c.Request.Context(), h.leaderboardSize)
	if err != nil {
		h.replyError(c, err)
		return
	}
	h.reply(c, services.LeaderboardReply(entries))
}

// Command handles POST /bot/command, dispatching on the message's first
// word so a single webhook can serve every command.
func (h *WebhookHandler) Command(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	switch commands.Parse(q.Message).Kind {
	case commands.KindRegister:
		user, err := h.registrationService.Register(c.Request.Context(), q)
		if err != nil {
			h.replyError(c, err)
			return
		}
		h.reply(c, services.WelcomeReply(user))
	case commands.KindCheckIn:
		_, message, err := h.checkinService.CheckIn(c.Request.Context(), q)
		if err != nil {
			h.replyError(c, err)
			return
		}
		h.reply(c, message)
	case commands.KindInfo:
		user, err := h.userService.Info(c.Request.Context(), q)
		if err != nil {
			h.replyError(c, err)
			return
		}
		h.reply(c, services.InfoReply(user))
	case commands.KindMilestone:
		report, err := h.milestoneService.Scan(c.Request.Context())
		if err != nil {
			h.replyError(c, err)
			return
		}
		h.reply(c, services.MilestoneReply(report))
	case commands.KindLeaderboard:
		entries, err := h.leaderboardService.Rank(c.Request.Context(), h.leaderboardSize)
		if err != nil {
			h.replyError(c, err)
			return
		}
		h.reply(c, services.LeaderboardReply(entries))
	default:
		h.reply(c, services.UsageReply())
	}
}
