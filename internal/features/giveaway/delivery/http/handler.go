package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Porismic/JupiterBot/internal/common/errors"
	"github.com/Porismic/JupiterBot/internal/common/validation"
	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/domain/giveaway"
	"github.com/Porismic/JupiterBot/internal/features/giveaway/mapper"
	"github.com/Porismic/JupiterBot/internal/features/giveaway/models/dto"
	"github.com/Porismic/JupiterBot/internal/features/giveaway/service"
)

type GiveawayHandler struct {
	dispatcher dispatch.Sender
	retention  time.Duration
}

// NewGiveawayHandler serves the staff giveaway API. retention is the purge
// window used when a request does not name one.
func NewGiveawayHandler(d dispatch.Sender, retention time.Duration) *GiveawayHandler {
	return &GiveawayHandler{dispatcher: d, retention: retention}
}

func (h *GiveawayHandler) RegisterRoutes(router *gin.RouterGroup) {
	giveaways := router.Group("/giveaways")
	{
		giveaways.POST("", h.create)
		giveaways.GET("", h.list)
		giveaways.POST("/sweep", h.sweep)
		giveaways.POST("/purge", h.purge)
		giveaways.GET("/:id", h.getByID)
		giveaways.POST("/:id/activate", h.activate)
		giveaways.POST("/:id/required-roles", h.addRequiredRole)
		giveaways.POST("/:id/extra-entry-roles", h.addExtraEntryRole)
		giveaways.POST("/:id/bypass-roles", h.addBypassRole)
		giveaways.POST("/:id/join", h.join)
		giveaways.GET("/:id/participants", h.participants)
		giveaways.POST("/:id/close", h.close)
		giveaways.POST("/:id/reroll", h.reroll)
		giveaways.POST("/:id/claims", h.recordClaim)
		giveaways.GET("/:id/unclaimed", h.unclaimed)
	}
}

// @Summary Create a giveaway
// @Description Stores a giveaway in the created state. Requirements can be added until it is activated.
// @Tags giveaways
// @Accept json
// @Produce json
// @Security StaffToken
// @Param input body dto.CreateGiveawayRequest true "Giveaway"
// @Success 201 {object} dto.GiveawayResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /giveaways [post]
func (h *GiveawayHandler) create(c *gin.Context) {
	var req dto.CreateGiveawayRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	g, err := dispatch.Run[*giveaway.Giveaway](c.Request.Context(), h.dispatcher, dispatch.CreateGiveaway{Input: mapper.ToCreateInput(req)})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToGiveawayResponse(g))
}

// @Summary List giveaways
// @Tags giveaways
// @Produce json
// @Security StaffToken
// @Param status query string false "Filter by status" Enums(created, active, ended)
// @Success 200 {array} dto.GiveawayResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /giveaways [get]
func (h *GiveawayHandler) list(c *gin.Context) {
	gs, err := dispatch.Run[[]giveaway.Giveaway](c.Request.Context(), h.dispatcher, dispatch.ListGiveaways{Status: giveaway.Status(c.Query("status"))})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToGiveawayResponses(gs))
}

// @Summary Get a giveaway
// @Tags giveaways
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Success 200 {object} dto.GiveawayResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /giveaways/{id} [get]
func (h *GiveawayHandler) getByID(c *gin.Context) {
	h.respondGiveaway(c, http.StatusOK, dispatch.GetGiveaway{GiveawayID: c.Param("id")})
}

// @Summary Activate a giveaway
// @Description Publishes the participation message and opens the giveaway for joins.
// @Tags giveaways
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Success 200 {object} dto.GiveawayResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /giveaways/{id}/activate [post]
func (h *GiveawayHandler) activate(c *gin.Context) {
	h.respondGiveaway(c, http.StatusOK, dispatch.ActivateGiveaway{GiveawayID: c.Param("id")})
}

// @Summary Add a required role
// @Tags requirements
// @Accept json
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Param input body dto.RoleRequest true "Role"
// @Success 200 {object} dto.GiveawayResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /giveaways/{id}/required-roles [post]
func (h *GiveawayHandler) addRequiredRole(c *gin.Context) {
	var req dto.RoleRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	h.respondGiveaway(c, http.StatusOK, dispatch.AddRequiredRole{GiveawayID: c.Param("id"), RoleID: req.RoleID})
}

// @Summary Add an extra entry role
// @Tags requirements
// @Accept json
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Param input body dto.ExtraEntryRoleRequest true "Role and entry weight"
// @Success 200 {object} dto.GiveawayResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /giveaways/{id}/extra-entry-roles [post]
func (h *GiveawayHandler) addExtraEntryRole(c *gin.Context) {
	var req dto.ExtraEntryRoleRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	h.respondGiveaway(c, http.StatusOK, dispatch.AddExtraEntryRole{GiveawayID: c.Param("id"), RoleID: req.RoleID, Entries: req.Entries})
}

// @Summary Add a bypass role
// @Description Holders of a bypass role skip the level and message requirements.
// @Tags requirements
// @Accept json
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Param input body dto.RoleRequest true "Role"
// @Success 200 {object} dto.GiveawayResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /giveaways/{id}/bypass-roles [post]
func (h *GiveawayHandler) addBypassRole(c *gin.Context) {
	var req dto.RoleRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	h.respondGiveaway(c, http.StatusOK, dispatch.AddBypassRole{GiveawayID: c.Param("id"), RoleID: req.RoleID})
}

// @Summary Join a giveaway on behalf of a member
// @Tags giveaways
// @Accept json
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Param input body dto.JoinRequest true "Member"
// @Success 200 {object} dto.JoinResponse
// @Failure 403 {object} middleware.ErrorResponse "Not eligible"
// @Failure 409 {object} middleware.ErrorResponse
// @Router /giveaways/{id}/join [post]
func (h *GiveawayHandler) join(c *gin.Context) {
	var req dto.JoinRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	res, err := dispatch.Run[*dispatch.JoinResult](c.Request.Context(), h.dispatcher, dispatch.JoinGiveaway{
		GiveawayID: c.Param("id"),
		UserID:     req.UserID,
		Roles:      req.Roles,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.JoinResponse{GiveawayID: res.GiveawayID, UserID: res.UserID, Entries: res.Entries})
}

// @Summary List participants
// @Tags giveaways
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Success 200 {object} service.ParticipantsView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /giveaways/{id}/participants [get]
func (h *GiveawayHandler) participants(c *gin.Context) {
	view, err := dispatch.Run[*service.ParticipantsView](c.Request.Context(), h.dispatcher, dispatch.ViewParticipants{GiveawayID: c.Param("id")})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Close a giveaway now
// @Tags giveaways
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Success 200 {object} dto.GiveawayResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /giveaways/{id}/close [post]
func (h *GiveawayHandler) close(c *gin.Context) {
	h.respondGiveaway(c, http.StatusOK, dispatch.CloseGiveaway{GiveawayID: c.Param("id")})
}

// @Summary Reroll winners
// @Description Without targets every winner is redrawn. With targets only those winners are replaced.
// @Tags giveaways
// @Accept json
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Param input body dto.RerollRequest false "Winners to replace"
// @Success 200 {object} dto.GiveawayResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /giveaways/{id}/reroll [post]
func (h *GiveawayHandler) reroll(c *gin.Context) {
	var req dto.RerollRequest
	if c.Request.ContentLength != 0 {
		if err := validation.BindJSON(c, &req); err != nil {
			_ = c.Error(err)
			return
		}
	}
	h.respondGiveaway(c, http.StatusOK, dispatch.RerollGiveaway{GiveawayID: c.Param("id"), Targets: req.Targets})
}

// @Summary Record a prize claim
// @Tags claims
// @Accept json
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Param input body dto.ClaimRequest true "Claim"
// @Success 200 {object} dto.GiveawayResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /giveaways/{id}/claims [post]
func (h *GiveawayHandler) recordClaim(c *gin.Context) {
	var req dto.ClaimRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	h.respondGiveaway(c, http.StatusOK, dispatch.RecordClaim{GiveawayID: c.Param("id"), UserID: req.UserID, RecorderID: req.RecorderID})
}

// @Summary List unclaimed winners
// @Tags claims
// @Produce json
// @Security StaffToken
// @Param id path string true "Giveaway ID"
// @Success 200 {object} dto.UnclaimedResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /giveaways/{id}/unclaimed [get]
func (h *GiveawayHandler) unclaimed(c *gin.Context) {
	id := c.Param("id")
	ids, err := dispatch.Run[[]string](c.Request.Context(), h.dispatcher, dispatch.QueryUnclaimed{GiveawayID: id})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UnclaimedResponse{GiveawayID: id, Unclaimed: ids})
}

// @Summary Close expired giveaways
// @Description Runs the sweep the scheduler runs every minute.
// @Tags maintenance
// @Produce json
// @Security StaffToken
// @Success 200 {object} service.SweepReport
// @Router /giveaways/sweep [post]
func (h *GiveawayHandler) sweep(c *gin.Context) {
	report, err := dispatch.Run[*service.SweepReport](c.Request.Context(), h.dispatcher, dispatch.SweepExpired{})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Purge old ended giveaways
// @Tags maintenance
// @Accept json
// @Produce json
// @Security StaffToken
// @Param input body dto.PurgeRequest false "Retention override"
// @Success 200 {object} service.PurgeReport
// @Router /giveaways/purge [post]
func (h *GiveawayHandler) purge(c *gin.Context) {
	var req dto.PurgeRequest
	if c.Request.ContentLength != 0 {
		if err := validation.BindJSON(c, &req); err != nil {
			_ = c.Error(err)
			return
		}
	}
	retention := h.retention
	if req.RetentionHours > 0 {
		retention = time.Duration(req.RetentionHours) * time.Hour
	}
	if retention <= 0 {
		_ = c.Error(apperrors.NewValidationError("retention_hours", "is required when no default retention is configured"))
		return
	}
	report, err := dispatch.Run[*service.PurgeReport](c.Request.Context(), h.dispatcher, dispatch.PurgeEnded{Retention: retention})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *GiveawayHandler) respondGiveaway(c *gin.Context, status int, cmd dispatch.Command) {
	g, err := dispatch.Run[*giveaway.Giveaway](c.Request.Context(), h.dispatcher, cmd)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(status, mapper.ToGiveawayResponse(g))
}
