package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bgcatalog/backend/internal/auth"
	"bgcatalog/backend/internal/middleware"
	"bgcatalog/backend/internal/validation"
)

// Dependencies wires the router to its stores and collaborators.
type Dependencies struct {
	Games           GameStore
	Taxonomy        TaxonomyStore
	Collections     CollectionStore
	Ratings         RatingStore
	Recommendations RecommendationStore
	Users           UserStore

	Auth                  auth.Options
	RecommendationsPerRun int

	// Metrics registers the HTTP collectors and serves /metrics.
	Metrics interface {
		prometheus.Registerer
		prometheus.Gatherer
	}
	Log zerolog.Logger
}

// NewRouter builds the HTTP API. Mutating routes and per-user resources sit
// behind the bearer middleware; reads of the catalog are public.
func NewRouter(d Dependencies) *gin.Engine {
	validation.Setup()

	metrics := middleware.NewMetrics(d.Metrics)

	router := gin.New()
	router.Use(
		middleware.Recovery(d.Log),
		middleware.Logging(d.Log),
		metrics.Handler(),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	bearer := auth.BearerMiddleware(d.Auth, d.Log)

	games := NewGameHandler(d.Games, d.Log)
	taxonomy := NewTaxonomyHandler(d.Taxonomy, d.Log)
	collections := NewCollectionHandler(d.Collections, d.Log)
	ratings := NewRatingHandler(d.Ratings, d.Log)
	recommendations := NewRecommendationHandler(d.Recommendations, d.RecommendationsPerRun, d.Log)
	users := NewUserHandler(d.Users, d.Log)

	apiV1 := router.Group("/api/v1")
	{
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", games.List)
			gameRoutes.GET("/:id", games.Get)
			gameRoutes.POST("", bearer, games.Create)
			gameRoutes.PUT("/:id", bearer, games.Update)
			gameRoutes.DELETE("/:id", bearer, games.Delete)

			gameRoutes.GET("/:id/ratings", ratings.List)
			gameRoutes.POST("/:id/ratings", bearer, ratings.Create)
			gameRoutes.PUT("/:id/ratings", bearer, ratings.Update)
		}

		apiV1.GET("/categories", taxonomy.ListCategories)
		apiV1.POST("/categories", bearer, taxonomy.CreateCategory)
		apiV1.GET("/mechanics", taxonomy.ListMechanics)
		apiV1.POST("/mechanics", bearer, taxonomy.CreateMechanic)

		collectionRoutes := apiV1.Group("/collections", bearer)
		{
			collectionRoutes.GET("", collections.List)
			collectionRoutes.POST("", collections.Add)
			collectionRoutes.DELETE("/:id", collections.Remove)
		}

		recommendationRoutes := apiV1.Group("/recommendations", bearer)
		{
			recommendationRoutes.GET("", recommendations.List)
			recommendationRoutes.POST("", recommendations.Generate)
		}

		apiV1.GET("/users/me", bearer, users.GetMe)
	}

	return router
}
