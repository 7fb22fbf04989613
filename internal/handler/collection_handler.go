package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bgcatalog/backend/internal/models"
)

var collectionMessages = errorMessages{notFound: "Collection item not found", conflict: "Game is already in the collection"}

// region --- DTOs ---

// AddToCollectionInput is the body of POST /collections.
type AddToCollectionInput struct {
	GameID uint `json:"gameId" binding:"required,min=1" example:"1"`
}

// CollectionItemResponse is one saved game.
type CollectionItemResponse struct {
	CollectionID uint         `json:"collectionId" example:"1"`
	AddedAt      time.Time    `json:"addedAt"`
	Game         GameResponse `json:"game"`
}

// AddToCollectionResponse is the reply to POST /collections.
type AddToCollectionResponse struct {
	CollectionID uint      `json:"collectionId" example:"1"`
	AddedAt      time.Time `json:"addedAt"`
}

func newCollectionItemResponse(entry models.Collection) CollectionItemResponse {
	return CollectionItemResponse{
		CollectionID: entry.ID,
		AddedAt:      entry.AddedAt,
		Game:         newGameResponse(entry.Game),
	}
}

// endregion

// CollectionHandler serves the caller's /collections.
type CollectionHandler struct {
	store CollectionStore
	log   zerolog.Logger
}

// NewCollectionHandler creates a CollectionHandler.
func NewCollectionHandler(store CollectionStore, log zerolog.Logger) *CollectionHandler {
	return &CollectionHandler{store: store, log: log}
}

// List godoc
// @Summary      List my collection
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number" default(1)
// @Param        limit  query     int  false  "Items per page, at most 100" default(20)
// @Success      200    {object}  ListResponse[CollectionItemResponse]
// @Failure      401    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, limit := q.values()

	entries, total, err := h.store.List(c.Request.Context(), caller, page, limit)
	if err != nil {
		respondError(c, h.log, err, collectionMessages)
		return
	}

	data := make([]CollectionItemResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newCollectionItemResponse(entry))
	}
	c.JSON(http.StatusOK, newListResponse(data, total, page, limit))
}

// Add godoc
// @Summary      Add a game to my collection
// @Tags         collections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      AddToCollectionInput  true  "Game to add"
// @Success      201    {object}  AddToCollectionResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse "Game not found"
// @Failure      409    {object}  ErrorResponse "Game is already in the collection"
// @Failure      500    {object}  ErrorResponse
// @Router       /collections [post]
func (h *CollectionHandler) Add(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	var input AddToCollectionInput
	if !bindBody(c, &input) {
		return
	}

	entry, err := h.store.Add(c.Request.Context(), caller, input.GameID)
	if err != nil {
		respondError(c, h.log, err, errorMessages{notFound: gameMessages.notFound, conflict: collectionMessages.conflict})
		return
	}
	c.JSON(http.StatusCreated, AddToCollectionResponse{CollectionID: entry.ID, AddedAt: entry.AddedAt})
}

// Remove godoc
// @Summary      Remove a game from my collection
// @Tags         collections
// @Security     BearerAuth
// @Param        id  path  int  true  "Collection item ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Collection item not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /collections/{id} [delete]
func (h *CollectionHandler) Remove(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	var p idParam
	if !bindURI(c, &p) {
		return
	}

	if err := h.store.Remove(c.Request.Context(), caller, p.ID); err != nil {
		respondError(c, h.log, err, collectionMessages)
		return
	}
	c.Status(http.StatusNoContent)
}
