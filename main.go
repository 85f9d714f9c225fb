package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/andrewpaige1/nodecanvas-api/config"
	"github.com/andrewpaige1/nodecanvas-api/handlers"
	"github.com/andrewpaige1/nodecanvas-api/middleware"
	"github.com/andrewpaige1/nodecanvas-api/store"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	env := config.LoadEnvironment()

	db, err := config.Connect()
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	h := &handlers.Handler{
		Store:  store.NewGormStore(db, logger),
		Logger: logger,
	}

	mux := http.NewServeMux()

	// Projects
	mux.HandleFunc("GET /api/projects", h.GetProjects)
	mux.HandleFunc("POST /api/projects", h.CreateProject)
	mux.HandleFunc("GET /api/projects/{projectID}", h.GetProjectByID)

	// Mind map (node-array compatibility endpoints)
	mux.HandleFunc("GET /api/mindmap/{projectID}", h.GetMindMap)
	mux.HandleFunc("PUT /api/mindmap/{projectID}", h.UpdateMindMap)

	// Workspace surface
	mux.HandleFunc("GET /workspace", h.Workspace)
	mux.HandleFunc("POST /api/workspace/{projectID}/nodes/{nodeID}/body", h.CommitNodeBody)

	session := middleware.AnonymousSession(logger, env)

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://nodecanvas.vercel.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(session(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	logger.Info("listening", zap.String("addr", serverAddr))
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
