package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bgcatalog/backend/internal/models"
	"bgcatalog/backend/internal/repository"
)

// region --- DTOs ---

// RatingInput is the body for rating a game or changing a rating.
type RatingInput struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=10" example:"8"`
	Comment *string `json:"comment" binding:"omitempty,max=1000" example:"Great with four players"`
}

func (in RatingInput) command() repository.RatingCommand {
	return repository.RatingCommand{Rating: in.Rating, Comment: in.Comment}
}

// RatingResponse is one user's rating of a game.
type RatingResponse struct {
	RatingID  uint      `json:"ratingId" example:"1"`
	UserID    uuid.UUID `json:"userId"`
	Rating    int       `json:"rating" example:"8"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func newRatingResponse(r models.GameRating) RatingResponse {
	return RatingResponse{
		RatingID:  r.ID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// endregion

// RatingHandler serves /games/{id}/ratings.
type RatingHandler struct {
	store RatingStore
	log   zerolog.Logger
}

// NewRatingHandler creates a RatingHandler.
func NewRatingHandler(store RatingStore, log zerolog.Logger) *RatingHandler {
	return &RatingHandler{store: store, log: log}
}

// List godoc
// @Summary      List ratings of a game
// @Tags         ratings
// @Produce      json
// @Param        id     path      int  true   "Game ID"
// @Param        page   query     int  false  "Page number" default(1)
// @Param        limit  query     int  false  "Items per page, at most 100" default(20)
// @Success      200    {object}  ListResponse[RatingResponse]
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse "Game not found"
// @Failure      500    {object}  ErrorResponse
// @Router       /games/{id}/ratings [get]
func (h *RatingHandler) List(c *gin.Context) {
	var p idParam
	if !bindURI(c, &p) {
		return
	}
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, limit := q.values()

	ratings, total, err := h.store.ListForGame(c.Request.Context(), p.ID, page, limit)
	if err != nil {
		respondError(c, h.log, err, gameMessages)
		return
	}

	data := make([]RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		data = append(data, newRatingResponse(r))
	}
	c.JSON(http.StatusOK, newListResponse(data, total, page, limit))
}

// Create godoc
// @Summary      Rate a game
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int          true  "Game ID"
// @Param        input  body      RatingInput  true  "Rating"
// @Success      201    {object}  RatingResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse "Game not found"
// @Failure      409    {object}  ErrorResponse "Game already rated"
// @Failure      500    {object}  ErrorResponse
// @Router       /games/{id}/ratings [post]
func (h *RatingHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	var p idParam
	if !bindURI(c, &p) {
		return
	}
	var input RatingInput
	if !bindBody(c, &input) {
		return
	}

	rating, err := h.store.Create(c.Request.Context(), p.ID, caller, input.command())
	if err != nil {
		respondError(c, h.log, err, errorMessages{notFound: gameMessages.notFound, conflict: "Game already rated"})
		return
	}
	c.JSON(http.StatusCreated, newRatingResponse(*rating))
}

// Update godoc
// @Summary      Change my rating of a game
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int          true  "Game ID"
// @Param        input  body      RatingInput  true  "Rating"
// @Success      200    {object}  RatingResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse "Rating not found"
// @Failure      500    {object}  ErrorResponse
// @Router       /games/{id}/ratings [put]
func (h *RatingHandler) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	var p idParam
	if !bindURI(c, &p) {
		return
	}
	var input RatingInput
	if !bindBody(c, &input) {
		return
	}

	rating, err := h.store.Update(c.Request.Context(), p.ID, caller, input.command())
	if err != nil {
		respondError(c, h.log, err, errorMessages{notFound: "Rating not found"})
		return
	}
	c.JSON(http.StatusOK, newRatingResponse(*rating))
}
