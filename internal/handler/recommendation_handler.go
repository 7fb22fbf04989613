package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bgcatalog/backend/internal/models"
	"bgcatalog/backend/internal/repository"
)

var recommendationMessages = errorMessages{notFound: "Recommendation not found"}

// region --- DTOs ---

// RecommendationResponse is a stored recommendation.
type RecommendationResponse struct {
	ID              uint      `json:"id" example:"1"`
	Recommendations []string  `json:"recommendations" example:"Catan,Azul"`
	CreatedAt       time.Time `json:"createdAt"`
}

// GenerateRecommendationsResponse holds freshly generated titles.
type GenerateRecommendationsResponse struct {
	Recommendations []string `json:"recommendations" example:"Catan,Azul"`
}

func newRecommendationResponse(rec models.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:              rec.ID,
		Recommendations: repository.ParseTitles(rec),
		CreatedAt:       rec.CreatedAt,
	}
}

// endregion

// RecommendationHandler serves the caller's /recommendations.
type RecommendationHandler struct {
	store  RecommendationStore
	perRun int
	log    zerolog.Logger
}

// NewRecommendationHandler creates a RecommendationHandler that suggests up
// to perRun games per generation.
func NewRecommendationHandler(store RecommendationStore, perRun int, log zerolog.Logger) *RecommendationHandler {
	return &RecommendationHandler{store: store, perRun: perRun, log: log}
}

// List godoc
// @Summary      List my recommendations
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number" default(1)
// @Param        limit  query     int  false  "Items per page, at most 100" default(20)
// @Success      200    {object}  ListResponse[RecommendationResponse]
// @Failure      401    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /recommendations [get]
func (h *RecommendationHandler) List(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, limit := q.values()

	recs, total, err := h.store.List(c.Request.Context(), caller, page, limit)
	if err != nil {
		respondError(c, h.log, err, recommendationMessages)
		return
	}

	data := make([]RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		data = append(data, newRecommendationResponse(rec))
	}
	c.JSON(http.StatusOK, newListResponse(data, total, page, limit))
}

// Generate godoc
// @Summary      Generate recommendations
// @Description  Suggests games that share categories and mechanics with the caller's collection and stores the result.
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  GenerateRecommendationsResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /recommendations [post]
func (h *RecommendationHandler) Generate(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	titles, err := h.store.Generate(c.Request.Context(), caller, h.perRun)
	if err != nil {
		respondError(c, h.log, err, recommendationMessages)
		return
	}
	c.JSON(http.StatusCreated, GenerateRecommendationsResponse{Recommendations: titles})
}
