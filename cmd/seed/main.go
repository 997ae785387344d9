// Command seed populates the database with mock documents for development.
// It refuses to run against a production deployment.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/harentsoaR/dentallab-api/internal/config"
	"github.com/harentsoaR/dentallab-api/internal/models"
	"github.com/harentsoaR/dentallab-api/internal/storage"
)

func main() {
	drop := flag.Bool("drop", false, "drop the database before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("seed is a development tool and will not run in production")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDB)

	if *drop {
		if err := storage.DropDatabase(ctx, db); err != nil {
			logger.Fatal("Failed to drop database", zap.Error(err))
		}
		logger.Info("Dropped database", zap.String("database", cfg.MongoDB))
	}

	if err := seed(ctx, db, cfg, logger); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
	logger.Info("Seeding complete")
}

func seed(ctx context.Context, db *mongo.Database, cfg *config.Config, logger *zap.Logger) error {
	labs := storage.NewMongo[models.Lab](db, models.LabCollection, logger)
	clinics := storage.NewMongo[models.Clinic](db, models.ClinicCollection, logger)
	collaborators := storage.NewMongo[models.Collaborator](db, models.CollaboratorCollection, logger)
	services := storage.NewMongo[models.Service](db, models.ServiceCollection, logger)
	inventories := storage.NewMongo[models.Inventory](db, models.InventoryCollection, logger)
	orders := storage.NewMongo[models.Order](db, models.OrderCollection, logger)
	users := storage.NewMongoUsers(db, logger)

	now := time.Now()
	later := now.Add(30 * 24 * time.Hour)

	dentist := models.Dentist{ID: primitive.NewObjectID(), Name: "Dr. Helena Castro", Email: "helena@sorriso.example", Phone: "+351 912 000 001"}
	patient := models.Patient{ID: primitive.NewObjectID(), Name: "Rui Almeida", Email: "rui@example.com", Phone: "+351 912 000 002"}

	clinic := models.Clinic{
		Name:               "Clinica Sorriso",
		Address:            "Rua das Flores 12, Porto",
		Patients:           []models.Patient{patient},
		Dentists:           []models.Dentist{dentist},
		Orders:             []primitive.ObjectID{},
		OutstandingBalance: f(250),
		Balance: []models.BalanceEntry{
			{ID: primitive.NewObjectID(), Value: f(250), CreatedAt: now, ExpiresAt: later},
		},
		Email: "geral@sorriso.example",
		Phone: "+351 222 000 000",
	}
	if err := clinics.Create(ctx, &clinic); err != nil {
		return err
	}

	collaborator := models.Collaborator{
		Name:      "Miguel Tavares",
		Email:     "miguel@dentallab.example",
		Role:      "technician",
		Type:      "internal",
		Comission: f(0.1),
		Salary:    f(1400),
	}
	if err := collaborators.Create(ctx, &collaborator); err != nil {
		return err
	}

	crown := models.Service{
		Name:        "Zirconia crown",
		Description: "Milled zirconia crown, shade matched",
		Value:       f(180),
		ValueType:   "per-tooth",
		Type:        "prosthetics",
	}
	if err := services.Create(ctx, &crown); err != nil {
		return err
	}

	resin := models.Inventory{
		Name:        "A2 composite resin",
		Description: "Light-cure composite, 4g syringe",
		Amount:      f(25),
		Value:       f(18.5),
		Type:        "consumable",
	}
	if err := inventories.Create(ctx, &resin); err != nil {
		return err
	}

	order := models.Order{
		Status:      "open",
		Clinic:      &clinic.ID,
		Dentist:     &dentist.ID,
		Patient:     &patient.ID,
		Description: "Upper right crown, shade A2",
		State:       "pending",
		CreatedAt:   now,
		ExpiresAt:   later,
		Services: []models.ServiceLine{
			{
				ID:           primitive.NewObjectID(),
				CreatedAt:    now,
				ExpiresAt:    later,
				Service:      &crown.ID,
				Collaborator: &collaborator.ID,
				FinalValue:   f(180),
				State:        "pending",
				Teeth:        []int{16},
				Discount:     f(0),
			},
		},
		Comments: []models.Comment{
			{CreatedAt: now, Content: "Impressions received", Type: "note"},
		},
		Tag: []string{"crown", "priority"},
	}
	if err := orders.Create(ctx, &order); err != nil {
		return err
	}

	lab := models.Lab{
		Name:          "DentalLab Norte",
		Address:       "Avenida Central 45, Braga",
		Clinics:       []primitive.ObjectID{clinic.ID},
		Collaborators: []primitive.ObjectID{collaborator.ID},
		Orders:        []primitive.ObjectID{order.ID},
		Services:      []primitive.ObjectID{crown.ID},
		Inventory:     []primitive.ObjectID{resin.ID},
		Revenue: []models.RevenueEntry{
			{
				ID:        primitive.NewObjectID(),
				Type:      "invoice",
				Value:     f(180),
				CreatedAt: now,
				ExpiresAt: later,
				Clinic:    &clinic.ID,
				State:     "pending",
			},
		},
		Email: "lab@dentallab.example",
	}
	if err := labs.Create(ctx, &lab); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), cfg.BcryptCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:    "admin",
		Password:    string(hash),
		Lab:         &lab.ID,
		Email:       "admin@dentallab.example",
		Permissions: []string{"admin"},
	}
	return users.Insert(ctx, &admin)
}

func f(v float64) *float64 { return &v }
