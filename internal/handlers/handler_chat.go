package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/core/services"
	"github.com/wandermart/onboarding_backend/internal/dto"
	"github.com/wandermart/onboarding_backend/internal/middleware"
)

// chatHandler relays assistant messages.
type chatHandler struct {
	chatService portssvc.ChatSvcFacade
}

func newChatHandler(cs portssvc.ChatSvcFacade) *chatHandler {
	return &chatHandler{chatService: cs}
}

// registerChatRoutes registers the public assistant endpoints. The mobile
// frontend calls these cross-origin, so CORS is wide open here and only here.
// Preflight answers with an empty 200, matching what the frontend expects.
func registerChatRoutes(r *gin.Engine, chatService portssvc.ChatSvcFacade) {
	h := newChatHandler(chatService)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.OptionsResponseStatusCode = http.StatusOK

	// Public and unauthenticated, so each IP gets 10 assistant calls a minute.
	rate, _ := limiter.NewRateFromFormatted("10-M")
	chatLimiter := limiter.New(memory.NewStore(), rate)

	chat := r.Group("/", cors.New(corsConfig), middleware.RateLimit(chatLimiter))
	{
		chat.POST("/general-chatbot", h.generalChat)
		chat.POST("/department-chatbot", h.departmentChat)
		// The cors middleware answers browser preflights; these cover plain
		// OPTIONS probes that carry no Origin header.
		chat.OPTIONS("/general-chatbot", h.preflight)
		chat.OPTIONS("/department-chatbot", h.preflight)
	}
}

func (h *chatHandler) preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// generalChat godoc
// @Summary Ask the general onboarding assistant
// @Description Single-turn relay to the completion API. Any upstream failure returns 500 with the fixed fallback text in the response field.
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatResponse
// @Failure 500 {object} dto.ChatErrorResponse
// @Router /general-chatbot [post]
func (h *chatHandler) generalChat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ChatErrorResponse{
			Error:    "invalid request body",
			Response: services.FallbackResponse,
		})
		return
	}

	reply, err := h.chatService.GeneralReply(c.Request.Context(), req.Message)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("General assistant failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ChatErrorResponse{
			Error:    err.Error(),
			Response: services.FallbackResponse,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}

// departmentChat godoc
// @Summary Ask a department assistant
// @Description Department-scoped assistant. Currently a templated acknowledgement; same contract shape as the general assistant.
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.DepartmentChatRequest true "Department and message"
// @Success 200 {object} dto.ChatResponse
// @Failure 500 {object} dto.ChatErrorResponse
// @Router /department-chatbot [post]
func (h *chatHandler) departmentChat(c *gin.Context) {
	var req dto.DepartmentChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ChatErrorResponse{
			Error:    "invalid request body",
			Response: services.FallbackResponse,
		})
		return
	}

	reply, err := h.chatService.DepartmentReply(c.Request.Context(), req.Department, req.Message)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Department assistant failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ChatErrorResponse{
			Error:    err.Error(),
			Response: services.FallbackResponse,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}
