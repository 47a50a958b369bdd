package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Porismic/JupiterBot/internal/common/validation"
	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/domain/member"
	"github.com/Porismic/JupiterBot/internal/features/stats/service"
)

type XPRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1" example:"100"`
}

type ResetRequest struct {
	Bucket string `json:"bucket" binding:"required,oneof=daily weekly monthly" example:"daily"`
}

type StatsHandler struct {
	dispatcher dispatch.Sender
}

func NewStatsHandler(d dispatch.Sender) *StatsHandler {
	return &StatsHandler{dispatcher: d}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	{
		stats.POST("/reset", h.reset)
		stats.GET("/:user_id", h.get)
		stats.POST("/:user_id/messages", h.recordMessage)
		stats.POST("/:user_id/xp", h.addXP)
	}
}

// @Summary Get member stats
// @Tags stats
// @Produce json
// @Security StaffToken
// @Param user_id path string true "Member ID"
// @Success 200 {object} service.Progress
// @Router /stats/{user_id} [get]
func (h *StatsHandler) get(c *gin.Context) {
	h.respond(c, dispatch.GetStats{UserID: c.Param("user_id")})
}

// @Summary Count a message
// @Tags stats
// @Produce json
// @Security StaffToken
// @Param user_id path string true "Member ID"
// @Success 200 {object} service.Progress
// @Router /stats/{user_id}/messages [post]
func (h *StatsHandler) recordMessage(c *gin.Context) {
	h.respond(c, dispatch.RecordMessage{UserID: c.Param("user_id")})
}

// @Summary Award XP
// @Tags stats
// @Accept json
// @Produce json
// @Security StaffToken
// @Param user_id path string true "Member ID"
// @Param input body XPRequest true "XP"
// @Success 200 {object} service.Progress
// @Router /stats/{user_id}/xp [post]
func (h *StatsHandler) addXP(c *gin.Context) {
	var req XPRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	h.respond(c, dispatch.AddXP{UserID: c.Param("user_id"), Amount: req.Amount})
}

// @Summary Reset a message bucket for every member
// @Tags stats
// @Accept json
// @Produce json
// @Security StaffToken
// @Param input body ResetRequest true "Bucket"
// @Success 200 {object} dispatch.ResetBucketResult
// @Failure 400 {object} middleware.ErrorResponse
// @Router /stats/reset [post]
func (h *StatsHandler) reset(c *gin.Context) {
	var req ResetRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	res, err := dispatch.Run[*dispatch.ResetBucketResult](c.Request.Context(), h.dispatcher, dispatch.ResetStatsBucket{Bucket: member.Bucket(req.Bucket)})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *StatsHandler) respond(c *gin.Context, cmd dispatch.Command) {
	p, err := dispatch.Run[*service.Progress](c.Request.Context(), h.dispatcher, cmd)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}
