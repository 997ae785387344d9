package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/harentsoaR/dentallab-api/internal/auth"
	"github.com/harentsoaR/dentallab-api/internal/config"
	"github.com/harentsoaR/dentallab-api/internal/handlers"
	"github.com/harentsoaR/dentallab-api/internal/middleware"
	"github.com/harentsoaR/dentallab-api/internal/models"
	"github.com/harentsoaR/dentallab-api/internal/routes"
	"github.com/harentsoaR/dentallab-api/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDB)
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	// --- Stores and Services ---
	users := storage.NewMongoUsers(db, logger)
	clinics := storage.NewMongo[models.Clinic](db, models.ClinicCollection, logger)
	stores := handlers.Stores{
		Users:         users,
		Labs:          storage.NewMongo[models.Lab](db, models.LabCollection, logger),
		Clinics:       clinics,
		Collaborators: storage.NewMongo[models.Collaborator](db, models.CollaboratorCollection, logger),
		Services:      storage.NewMongo[models.Service](db, models.ServiceCollection, logger),
		Inventories:   storage.NewMongo[models.Inventory](db, models.InventoryCollection, logger),
		Orders:        storage.NewOrders(storage.NewMongo[models.Order](db, models.OrderCollection, logger), clinics),
		Scans:         storage.NewMongo[models.Scan](db, models.ScanCollection, logger),
	}

	authSvc := auth.NewService(users, []byte(cfg.JWTSecret), cfg.TokenTTL, cfg.BcryptCost, logger)
	h := handlers.New(authSvc, stores, logger)

	// --- Gin Router ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger, cfg.IsProduction()))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	r.NoRoute(middleware.NotFound(cfg.IsProduction()))

	routes.Register(r, h)

	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
