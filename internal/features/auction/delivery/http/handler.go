package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Porismic/JupiterBot/internal/common/validation"
	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/domain/auction"
)

type PostAuctionRequest struct {
	Name        string `json:"name" binding:"required,name" example:"Shiny Dragon"`
	SellerID    string `json:"seller_id" binding:"required,snowflake" example:"1334277888249303161"`
	StartingBid int64  `json:"starting_bid" binding:"min=0" example:"1000"`
	Premium     bool   `json:"premium"`
}

type AuctionHandler struct {
	dispatcher dispatch.Sender
}

func NewAuctionHandler(d dispatch.Sender) *AuctionHandler {
	return &AuctionHandler{dispatcher: d}
}

func (h *AuctionHandler) RegisterRoutes(router *gin.RouterGroup) {
	auctions := router.Group("/auctions")
	{
		auctions.POST("", h.post)
		auctions.GET("", h.list)
		auctions.GET("/:id", h.get)
		auctions.POST("/:id/end", h.end)
		auctions.POST("/:id/cancel", h.cancel)
	}
}

// @Summary Post an auction
// @Description A premium auction uses one of the seller's premium slots.
// @Tags auctions
// @Accept json
// @Produce json
// @Security StaffToken
// @Param input body PostAuctionRequest true "Auction"
// @Success 201 {object} auction.Auction
// @Failure 409 {object} middleware.ErrorResponse "No premium slot available"
// @Router /auctions [post]
func (h *AuctionHandler) post(c *gin.Context) {
	var req PostAuctionRequest
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	a, err := dispatch.Run[*auction.Auction](c.Request.Context(), h.dispatcher, dispatch.PostAuction{
		Name:        req.Name,
		SellerID:    req.SellerID,
		StartingBid: req.StartingBid,
		Premium:     req.Premium,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// @Summary List auctions
// @Tags auctions
// @Produce json
// @Security StaffToken
// @Param status query string false "Filter by status" Enums(active, ended, cancelled)
// @Success 200 {array} auction.Auction
// @Router /auctions [get]
func (h *AuctionHandler) list(c *gin.Context) {
	as, err := dispatch.Run[[]auction.Auction](c.Request.Context(), h.dispatcher, dispatch.ListAuctions{Status: auction.Status(c.Query("status"))})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, as)
}

// @Summary Get an auction
// @Tags auctions
// @Produce json
// @Security StaffToken
// @Param id path string true "Auction ID"
// @Success 200 {object} auction.Auction
// @Failure 404 {object} middleware.ErrorResponse
// @Router /auctions/{id} [get]
func (h *AuctionHandler) get(c *gin.Context) {
	h.respond(c, dispatch.GetAuction{AuctionID: c.Param("id")})
}

// @Summary End an auction
// @Tags auctions
// @Produce json
// @Security StaffToken
// @Param id path string true "Auction ID"
// @Success 200 {object} auction.Auction
// @Failure 409 {object} middleware.ErrorResponse
// @Router /auctions/{id}/end [post]
func (h *AuctionHandler) end(c *gin.Context) {
	h.respond(c, dispatch.EndAuction{AuctionID: c.Param("id")})
}

// @Summary Cancel an auction
// @Tags auctions
// @Produce json
// @Security StaffToken
// @Param id path string true "Auction ID"
// @Success 200 {object} auction.Auction
// @Failure 409 {object} middleware.ErrorResponse
// @Router /auctions/{id}/cancel [post]
func (h *AuctionHandler) cancel(c *gin.Context) {
	h.respond(c, dispatch.CancelAuction{AuctionID: c.Param("id")})
}

func (h *AuctionHandler) respond(c *gin.Context, cmd dispatch.Command) {
	a, err := dispatch.Run[*auction.Auction](c.Request.Context(), h.dispatcher, cmd)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}
