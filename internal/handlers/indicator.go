package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/metrika-dev/metrika/internal/models"
	"github.com/metrika-dev/metrika/internal/store"
	"github.com/metrika-dev/metrika/internal/utils"
	"go.uber.org/zap"
)

type IndicatorHandler struct {
	store  *store.IndicatorStore
	logger *zap.Logger
}

func NewIndicatorHandler(store *store.IndicatorStore, logger *zap.Logger) *IndicatorHandler {
	return &IndicatorHandler{store: store, logger: logger}
}

type CreateMilestoneRequest struct {
	Name        string           `json:"name" binding:"required"`
	StartDate   *models.DateOnly `json:"start_date"`
	EndDate     *models.DateOnly `json:"end_date"`
	Progress    float64          `json:"progress" binding:"gte=0,lte=100"`
	Status      string           `json:"status" binding:"required"`
	Responsible string           `json:"responsible"`
}

type CreateIndicatorRequest struct {
	VP              string                   `json:"vp" binding:"required"`
	Area            string                   `json:"area" binding:"required"`
	Name            string                   `json:"name" binding:"required"`
	Type            string                   `json:"type"`
	StartDate       *models.DateOnly         `json:"start_date"`
	EndDate         *models.DateOnly         `json:"end_date"`
	Responsible     string                   `json:"responsible"`
	LoadResponsible string                   `json:"load_responsible"`
	Milestones      []CreateMilestoneRequest `json:"milestones" binding:"required,min=1,dive"`
}

func (h *IndicatorHandler) Create(ctx *gin.Context) {
	var body CreateIndicatorRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	indicator := models.Indicator{
		VP:              body.VP,
		Area:            body.Area,
		Name:            body.Name,
		Type:            body.Type,
		StartDate:       body.StartDate,
		EndDate:         body.EndDate,
		Responsible:     body.Responsible,
		LoadResponsible: body.LoadResponsible,
	}

	for _, milestone := range body.Milestones {
		indicator.Milestones = append(indicator.Milestones, models.Milestone{
			Name:        milestone.Name,
			StartDate:   milestone.StartDate,
			EndDate:     milestone.EndDate,
			Progress:    milestone.Progress,
			Status:      milestone.Status,
			Responsible: milestone.Responsible,
		})
	}

	if err := h.store.Create(&indicator); err != nil {
		h.logger.Error("failed to create indicator", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create indicator"})
		return
	}

	ctx.JSON(http.StatusCreated, indicator)
}

func (h *IndicatorHandler) List(ctx *gin.Context) {
	skip, limit := utils.GetPagination(ctx, store.DefaultListLimit)

	indicators, err := h.store.List(skip, limit)

	if err != nil {
		h.logger.Error("failed to list indicators", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve indicators"})
		return
	}

	if indicators == nil {
		indicators = []models.Indicator{}
	}

	ctx.JSON(http.StatusOK, indicators)
}

func (h *IndicatorHandler) ListByArea(ctx *gin.Context) {
	area := ctx.Param("area")

	indicators, err := h.store.ListByArea(area)

	if err != nil {
		h.logger.Error("failed to list indicators by area", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve indicators"})
		return
	}

	if indicators == nil {
		indicators = []models.Indicator{}
	}

	ctx.JSON(http.StatusOK, indicators)
}

func (h *IndicatorHandler) Get(ctx *gin.Context) {
	id, err := utils.GetIndicatorID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	indicator, err := h.store.Get(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Indicator not found"})
		} else {
			h.logger.Error("failed to retrieve indicator", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve indicator"})
		}
		return
	}

	ctx.JSON(http.StatusOK, indicator)
}

func (h *IndicatorHandler) Update(ctx *gin.Context) {
	id, err := utils.GetIndicatorID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body models.IndicatorUpdate

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	indicator, err := h.store.Update(id, body)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Indicator not found"})
		} else {
			h.logger.Error("failed to update indicator", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update indicator"})
		}
		return
	}

	ctx.JSON(http.StatusOK, indicator)
}

func (h *IndicatorHandler) Delete(ctx *gin.Context) {
	id, err := utils.GetIndicatorID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	indicator, err := h.store.Delete(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Indicator not found"})
		} else {
			h.logger.Error("failed to delete indicator", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete indicator"})
		}
		return
	}

	ctx.JSON(http.StatusOK, indicator)
}

func (h *IndicatorHandler) Statistics(ctx *gin.Context) {
	stats, err := h.store.Statistics()

	if err != nil {
		h.logger.Error("failed to compute statistics", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
