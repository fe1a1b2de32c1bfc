package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

type listingService interface {
	Annotate(geotag *domain.Coordinate, where string) (domain.Annotation, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context, query *domain.ListingQuery) ([]domain.Listing, error)
}

type clearService interface {
	CheckAndClear(ctx context.Context) (*domain.ClearResult, error)
}

type annotateRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Where     string   `json:"where"`
}

type ListingHandler struct {
	listingSvc listingService
	clearSvc   clearService
	logger     zerolog.Logger
}

func NewListingHandler(listingSvc listingService, clearSvc clearService, logger zerolog.Logger) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc, clearSvc: clearSvc, logger: logger}
}

func (h *ListingHandler) Register(r *gin.RouterGroup) {
	r.GET("/listings", h.ListListings)
	r.GET("/listings/:listing_id", h.GetListing)
	r.POST("/annotate", h.Annotate)
	r.POST("/channel/clear", h.ClearChannel)
}

func (h *ListingHandler) ListListings(c *gin.Context) {
	query := &domain.ListingQuery{Area: c.Query("area")}

	if v := c.Query("near_bart"); v != "" {
		nearBart, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid near_bart parameter"})
			return
		}
		query.NearBartOnly = nearBart
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
			return
		}
		query.Limit = limit
	}

	listings, err := h.listingSvc.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch listings"})
		return
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	l, err := h.listingSvc.Get(c.Request.Context(), c.Param("listing_id"))
	if errors.Is(err, domain.ErrListingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch listing"})
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *ListingHandler) Annotate(c *gin.Context) {
	var req annotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	ann, err := h.listingSvc.Annotate(&domain.Coordinate{Lat: *req.Latitude, Lon: *req.Longitude}, req.Where)
	if errors.Is(err, domain.ErrInvalidCoordinate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinate"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to annotate"})
		return
	}
	c.JSON(http.StatusOK, ann)
}

func (h *ListingHandler) ClearChannel(c *gin.Context) {
	res, err := h.clearSvc.CheckAndClear(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("clear channel")
		if domain.IsTransientChatError(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat service unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear channel"})
		return
	}
	c.JSON(http.StatusOK, res)
}
