package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pranav244872/skillswap/config"
	db "github.com/pranav244872/skillswap/db/sqlc"
	"github.com/pranav244872/skillswap/skillz"
	"github.com/pranav244872/skillswap/token"
)

// Server serves HTTP requests for the skill exchange service.
type Server struct {
	config     config.Config
	store      db.Store
	tokenMaker *token.JWTMaker
	processor  skillz.Processor
	router     *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(config config.Config, store db.Store, processor skillz.Processor) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:     config,
		store:      store,
		tokenMaker: tokenMaker,
		processor:  processor,
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	router := gin.Default()
	router.Use(cors.New(corsConfig(server.config.FrontendURL)))

	////////////////////////////////////////////////////////////////////////
	// Public routes
	////////////////////////////////////////////////////////////////////////

	router.POST("/auth/register", server.registerUser)
	router.POST("/auth/login", server.loginUser)
	router.POST("/match/score", server.scoreMatch)

	////////////////////////////////////////////////////////////////////////
	// Authenticated routes
	////////////////////////////////////////////////////////////////////////

	authRoutes := router.Group("/").Use(authMiddleware(server.tokenMaker))

	authRoutes.GET("/users/me", server.getCurrentUser)
	authRoutes.PUT("/users/me", server.updateCurrentUser)
	authRoutes.GET("/users", server.listUsers)
	authRoutes.GET("/users/:id", server.getUser)
	authRoutes.GET("/users/:id/stats", server.getUserStats)
	authRoutes.POST("/users/:id/ratings", server.createRating)
	authRoutes.GET("/users/:id/ratings", server.listRatings)

	authRoutes.POST("/posts", server.createPost)
	authRoutes.GET("/posts", server.listPosts)
	authRoutes.GET("/posts/explore", server.explorePosts)
	authRoutes.POST("/posts/suggest-skills", server.suggestSkills)
	authRoutes.PATCH("/posts/:id", server.updatePostStatus)

	authRoutes.POST("/matches", server.createMatch)
	authRoutes.GET("/matches", server.listMatches)
	authRoutes.PATCH("/matches/:id", server.respondToMatch)

	authRoutes.POST("/exchanges", server.createExchange)
	authRoutes.GET("/exchanges", server.listExchanges)
	authRoutes.PATCH("/exchanges/:id", server.updateExchangeStatus)
	authRoutes.POST("/exchanges/:id/complete", server.completeExchange)

	server.router = router
}

// corsConfig allows the configured frontend origins (comma separated).
// With none configured every origin is allowed, which suits local development.
func corsConfig(frontendURL string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	for _, origin := range strings.Split(frontendURL, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cfg
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
