package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bgcatalog/backend/internal/models"
	"bgcatalog/backend/internal/repository"
	"bgcatalog/backend/internal/validation"
)

const msgPlayerRange = "minPlayers must be less than or equal to maxPlayers"

var gameMessages = errorMessages{notFound: "Game not found", conflict: "Game already exists"}

// region --- DTOs ---

// GameInput is the body of a game create or update.
type GameInput struct {
	Title       string  `json:"title" binding:"required,max=255" example:"Catan"`
	Publisher   *string `json:"publisher" binding:"omitempty,max=255" example:"Kosmos"`
	MinPlayers  *int    `json:"minPlayers" binding:"required,min=1" example:"3"`
	MaxPlayers  *int    `json:"maxPlayers" binding:"required,min=1" example:"4"`
	PlayTime    *int    `json:"playTime" binding:"omitempty,min=0" example:"90"`
	CategoryIDs []int   `json:"categoryIds" binding:"required,dive,gt=0"`
	MechanicIDs []int   `json:"mechanicIds" binding:"required,dive,gt=0"`
}

// Validate checks the rules that span fields. It runs after binding, so the
// required fields are set.
func (in *GameInput) Validate() error {
	if *in.MinPlayers > *in.MaxPlayers {
		return validation.FieldError{Field: "maxPlayers", Message: msgPlayerRange}
	}
	return nil
}

func (in *GameInput) command() repository.GameCommand {
	return repository.GameCommand{
		Title:       in.Title,
		Publisher:   in.Publisher,
		MinPlayers:  *in.MinPlayers,
		MaxPlayers:  *in.MaxPlayers,
		PlayTime:    in.PlayTime,
		CategoryIDs: toIDs(in.CategoryIDs),
		MechanicIDs: toIDs(in.MechanicIDs),
	}
}

func toIDs(in []int) []uint {
	ids := make([]uint, 0, len(in))
	for _, id := range in {
		ids = append(ids, uint(id))
	}
	return ids
}

// GameResponse is a game as returned to clients.
type GameResponse struct {
	ID         uint               `json:"id" example:"1"`
	Title      string             `json:"title" example:"Catan"`
	Publisher  *string            `json:"publisher" example:"Kosmos"`
	MinPlayers int                `json:"minPlayers" example:"3"`
	MaxPlayers int                `json:"maxPlayers" example:"4"`
	PlayTime   *int               `json:"playTime" example:"90"`
	Categories []TaxonomyResponse `json:"categories"`
	Mechanics  []TaxonomyResponse `json:"mechanics"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func newGameResponse(game models.Game) GameResponse {
	categories := make([]TaxonomyResponse, 0, len(game.Categories))
	for _, c := range game.Categories {
		categories = append(categories, newCategoryResponse(c))
	}
	mechanics := make([]TaxonomyResponse, 0, len(game.Mechanics))
	for _, m := range game.Mechanics {
		mechanics = append(mechanics, newMechanicResponse(m))
	}

	return GameResponse{
		ID:         game.ID,
		Title:      game.Title,
		Publisher:  game.Publisher,
		MinPlayers: game.MinPlayers,
		MaxPlayers: game.MaxPlayers,
		PlayTime:   game.PlayTime,
		Categories: categories,
		Mechanics:  mechanics,
		CreatedAt:  game.CreatedAt,
		UpdatedAt:  game.UpdatedAt,
	}
}

// gameListQuery holds GET /games parameters as raw strings. Only sortBy and
// order are strict; numeric values that do not parse are ignored.
type gameListQuery struct {
	pageQuery
	Title      string `form:"title"`
	MinPlayers string `form:"minPlayers"`
	MaxPlayers string `form:"maxPlayers"`
	Categories string `form:"categories"`
	Mechanics  string `form:"mechanics"`
	SortBy     string `form:"sortBy" binding:"omitempty,oneof=title createdAt"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
}

func (q gameListQuery) filters() repository.GameFilters {
	page, limit := q.values()
	f := repository.GameFilters{
		Page:        page,
		Limit:       limit,
		Title:       q.Title,
		MinPlayers:  validation.PositiveInt(q.MinPlayers),
		MaxPlayers:  validation.PositiveInt(q.MaxPlayers),
		CategoryIDs: validation.IDList(q.Categories),
		MechanicIDs: validation.IDList(q.Mechanics),
		SortBy:      q.SortBy,
		Order:       q.Order,
	}
	if f.SortBy == "" {
		f.SortBy = repository.SortByTitle
	}
	if f.Order == "" {
		f.Order = repository.OrderAsc
	}
	return f
}

// endregion

// GameHandler serves /games.
type GameHandler struct {
	games GameStore
	log   zerolog.Logger
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(games GameStore, log zerolog.Logger) *GameHandler {
	return &GameHandler{games: games, log: log}
}

// List godoc
// @Summary      List games
// @Description  Returns a page of games filtered by title, player count, categories and mechanics. Numeric parameters that do not parse are ignored.
// @Tags         games
// @Produce      json
// @Param        page        query  int     false  "Page number" default(1)
// @Param        limit       query  int     false  "Items per page, at most 100" default(20)
// @Param        title       query  string  false  "Case-insensitive title substring"
// @Param        minPlayers  query  int     false  "Minimum of min_players"
// @Param        maxPlayers  query  int     false  "Maximum of max_players"
// @Param        categories  query  string  false  "Comma-separated category ids"
// @Param        mechanics   query  string  false  "Comma-separated mechanic ids"
// @Param        sortBy      query  string  false  "Sort key" Enums(title, createdAt) default(title)
// @Param        order       query  string  false  "Sort direction" Enums(asc, desc) default(asc)
// @Success      200  {object}  ListResponse[GameResponse]
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func (h *GameHandler) List(c *gin.Context) {
	var q gameListQuery
	if !bindQuery(c, &q) {
		return
	}
	f := q.filters()

	games, total, err := h.games.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err, gameMessages)
		return
	}

	data := make([]GameResponse, 0, len(games))
	for _, g := range games {
		data = append(data, newGameResponse(g))
	}
	c.JSON(http.StatusOK, newListResponse(data, total, f.Page, f.Limit))
}

// Get godoc
// @Summary      Get a game
// @Description  Returns one game with its categories and mechanics.
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	var p idParam
	if !bindURI(c, &p) {
		return
	}

	game, err := h.games.GetByID(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, h.log, err, gameMessages)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// Create godoc
// @Summary      Create a game
// @Description  Creates a game owned by the caller together with its category and mechanic links.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      GameInput  true  "Game"
// @Success      201    {object}  GameResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /games [post]
func (h *GameHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	var input GameInput
	if !bindBody(c, &input) {
		return
	}

	game, err := h.games.Create(c.Request.Context(), caller, input.command())
	if err != nil {
		respondError(c, h.log, err, gameMessages)
		return
	}
	c.JSON(http.StatusCreated, newGameResponse(*game))
}

// Update godoc
// @Summary      Update a game
// @Description  Replaces every field and both association sets of a game the caller owns.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int        true  "Game ID"
// @Param        input  body      GameInput  true  "Game"
// @Success      200    {object}  GameResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse "Game not found"
// @Failure      500    {object}  ErrorResponse
// @Router       /games/{id} [put]
func (h *GameHandler) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	var p idParam
	if !bindURI(c, &p) {
		return
	}
	var input GameInput
	if !bindBody(c, &input) {
		return
	}

	game, err := h.games.Update(c.Request.Context(), p.ID, caller, input.command())
	if err != nil {
		respondError(c, h.log, err, gameMessages)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// Delete godoc
// @Summary      Delete a game
// @Description  Deletes a game the caller owns.
// @Tags         games
// @Security     BearerAuth
// @Param        id  path  int  true  "Game ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /games/{id} [delete]
func (h *GameHandler) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	var p idParam
	if !bindURI(c, &p) {
		return
	}

	if err := h.games.Delete(c.Request.Context(), p.ID, caller); err != nil {
		respondError(c, h.log, err, gameMessages)
		return
	}
	c.Status(http.StatusNoContent)
}
