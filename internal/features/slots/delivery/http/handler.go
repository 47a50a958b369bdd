package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Porismic/JupiterBot/internal/common/validation"
	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/domain/slots"
	"github.com/Porismic/JupiterBot/internal/features/slots/service"
)

type ReconcileRequest struct {
	// Roles the member holds now. Absent or null resolves them from the guild.
	Roles []string `json:"roles" binding:"omitempty,dive,snowflake"`
}

type AmountRequest struct {
	Amount int `json:"amount" binding:"required,min=1" example:"2"`
}

type SlotsHandler struct {
	dispatcher dispatch.Sender
}

func NewSlotsHandler(d dispatch.Sender) *SlotsHandler {
	return &SlotsHandler{dispatcher: d}
}

func (h *SlotsHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/slots")
	{
		group.POST("/reconcile", h.reconcileAll)
		group.GET("/:user_id", h.get)
		group.POST("/:user_id/reconcile", h.reconcile)
		group.POST("/:user_id/consume", h.consume)
		group.POST("/:user_id/release", h.release)
		group.POST("/:user_id/grant", h.grant)
		group.POST("/:user_id/revoke", h.revoke)
		group.POST("/:user_id/reset", h.reset)
	}
}

// @Summary Get a member's premium slots
// @Tags slots
// @Produce json
// @Security StaffToken
// @Param user_id path string true "Member ID"
// @Success 200 {object} service.Snapshot
// @Router /slots/{user_id} [get]
func (h *SlotsHandler) get(c *gin.Context) {
	snap, err := dispatch.Run[*service.Snapshot](c.Request.Context(), h.dispatcher, dispatch.ViewSlots{UserID: c.Param("user_id")})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary Recompute a member's slot total from roles
// @Tags slots
// @Accept json
// @Produce json
// @Security StaffToken
// @Param user_id path string true "Member ID"
// @Param input body ReconcileRequest false "Current roles"
// @Success 200 {object} slots.Record
// @Router /slots/{user_id}/reconcile [post]
func (h *SlotsHandler) reconcile(c *gin.Context) {
	var req ReconcileRequest
	if c.Request.ContentLength != 0 {
		if err := validation.BindJSON(c, &req); err != nil {
			_ = c.Error(err)
			return
		}
	}
	h.respond(c, dispatch.ReconcileSlots{UserID: c.Param("user_id"), Roles: req.Roles})
}

// @Summary Reconcile every guild member
// @Tags slots
// @Produce json
// @Security StaffToken
// @Success 200 {object} dispatch.ReconcileAllResult
// @Failure 502 {object} middleware.ErrorResponse
// @Router /slots/reconcile [post]
func (h *SlotsHandler) reconcileAll(c *gin.Context) {
	res, err := dispatch.Run[*dispatch.ReconcileAllResult](c.Request.Context(), h.dispatcher, dispatch.ReconcileAllSlots{})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Use one slot
// @Tags slots
// @Produce json
// @Security StaffToken
// @Param user_id path string true "Member ID"
// @Success 200 {object} slots.Record
// @Failure 409 {object} middleware.ErrorResponse "No slot available"
// @Router /slots/{user_id}/consume [post]
func (h *SlotsHandler) consume(c *gin.Context) {
	h.respond(c, dispatch.ConsumeSlot{UserID: c.Param("user_id")})
}

// @Summary Return one slot
// @Tags slots
// @Produce json
// @Security StaffToken
// @Param user_id path string true "Member ID"
// @Success 200 {object} slots.Record
// @Router /slots/{user_id}/release [post]
func (h *SlotsHandler) release(c *gin.Context) {
	h.respond(c, dispatch.ReleaseSlot{UserID: c.Param("user_id")})
}

// @Summary Grant manual slots
// @Tags slots
// @Accept json
// @Produce json
// @Security StaffToken
// @Param user_id path string true "Member ID"
// @Param input body AmountRequest true "Slots to grant"
// @Success 200 {object} slots.Record
// @Router /slots/{user_id}/grant [post]
func (h *SlotsHandler) grant(c *gin.Context) {
	var req AmountRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	h.respond(c, dispatch.GrantSlots{UserID: c.Param("user_id"), Amount: req.Amount})
}

// @Summary Revoke manual slots
// @Tags slots
// @Accept json
// @Produce json
// @Security StaffToken
// @Param user_id path string true "Member ID"
// @Param input body AmountRequest true "Slots to revoke"
// @Success 200 {object} slots.Record
// @Failure 400 {object} middleware.ErrorResponse
// @Router /slots/{user_id}/revoke [post]
func (h *SlotsHandler) revoke(c *gin.Context) {
	var req AmountRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	h.respond(c, dispatch.RevokeSlots{UserID: c.Param("user_id"), Amount: req.Amount})
}

// @Summary Zero a member's used slots
// @Tags slots
// @Produce json
// @Security StaffToken
// @Param user_id path string true "Member ID"
// @Success 200 {object} slots.Record
// @Router /slots/{user_id}/reset [post]
func (h *SlotsHandler) reset(c *gin.Context) {
	h.respond(c, dispatch.ResetSlots{UserID: c.Param("user_id")})
}

func (h *SlotsHandler) respond(c *gin.Context, cmd dispatch.Command) {
	rec, err := dispatch.Run[*slots.Record](c.Request.Context(), h.dispatcher, cmd)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
