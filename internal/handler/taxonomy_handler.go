package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bgcatalog/backend/internal/models"
	"bgcatalog/backend/internal/repository"
)

var (
	categoryMessages = errorMessages{notFound: "Category not found", conflict: "Category already exists"}
	mechanicMessages = errorMessages{notFound: "Mechanic not found", conflict: "Mechanic already exists"}
)

// region --- DTOs ---

// TaxonomyInput is the body for creating a category or a mechanic.
type TaxonomyInput struct {
	Name        string  `json:"name" binding:"required,max=100" example:"Strategy"`
	Description *string `json:"description" example:"Long-term planning"`
}

func (in TaxonomyInput) command() repository.TaxonomyCommand {
	return repository.TaxonomyCommand{Name: in.Name, Description: in.Description}
}

// TaxonomyResponse is a category or a mechanic.
type TaxonomyResponse struct {
	ID          uint    `json:"id" example:"1"`
	Name        string  `json:"name" example:"Strategy"`
	Description *string `json:"description"`
}

func newCategoryResponse(c models.Category) TaxonomyResponse {
	return TaxonomyResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func newMechanicResponse(m models.Mechanic) TaxonomyResponse {
	return TaxonomyResponse{ID: m.ID, Name: m.Name, Description: m.Description}
}

// endregion

// TaxonomyHandler serves /categories and /mechanics.
type TaxonomyHandler struct {
	store TaxonomyStore
	log   zerolog.Logger
}

// NewTaxonomyHandler creates a TaxonomyHandler.
func NewTaxonomyHandler(store TaxonomyStore, log zerolog.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{store: store, log: log}
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   TaxonomyResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /categories [get]
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, categoryMessages)
		return
	}

	response := make([]TaxonomyResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, newCategoryResponse(category))
	}
	c.JSON(http.StatusOK, response)
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      TaxonomyInput  true  "Category"
// @Success      201    {object}  TaxonomyResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      409    {object}  ErrorResponse "Category already exists"
// @Failure      500    {object}  ErrorResponse
// @Router       /categories [post]
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var input TaxonomyInput
	if !bindBody(c, &input) {
		return
	}

	category, err := h.store.CreateCategory(c.Request.Context(), input.command())
	if err != nil {
		respondError(c, h.log, err, categoryMessages)
		return
	}
	c.JSON(http.StatusCreated, newCategoryResponse(*category))
}

// ListMechanics godoc
// @Summary      List mechanics
// @Tags         mechanics
// @Produce      json
// @Success      200  {array}   TaxonomyResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /mechanics [get]
func (h *TaxonomyHandler) ListMechanics(c *gin.Context) {
	mechanics, err := h.store.ListMechanics(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, mechanicMessages)
		return
	}

	response := make([]TaxonomyResponse, 0, len(mechanics))
	for _, mechanic := range mechanics {
		response = append(response, newMechanicResponse(mechanic))
	}
	c.JSON(http.StatusOK, response)
}

// CreateMechanic godoc
// @Summary      Create a mechanic
// @Tags         mechanics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      TaxonomyInput  true  "Mechanic"
// @Success      201    {object}  TaxonomyResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      409    {object}  ErrorResponse "Mechanic already exists"
// @Failure      500    {object}  ErrorResponse
// @Router       /mechanics [post]
func (h *TaxonomyHandler) CreateMechanic(c *gin.Context) {
	var input TaxonomyInput
	if !bindBody(c, &input) {
		return
	}

	mechanic, err := h.store.CreateMechanic(c.Request.Context(), input.command())
	if err != nil {
		respondError(c, h.log, err, mechanicMessages)
		return
	}
	c.JSON(http.StatusCreated, newMechanicResponse(*mechanic))
}
