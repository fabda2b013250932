package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/webatelier/landing-api/config"
	"github.com/webatelier/landing-api/internal/domain/entity"
	"github.com/webatelier/landing-api/internal/infrastructure/mongodb"
	"github.com/webatelier/landing-api/pkg/helpers"
)

// seed fills an empty database with a few projects and approved reviews so
// the public endpoints have something to serve. Existing documents are left
// alone; the seeder only inserts when a collection is empty.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mgr := mongodb.NewManager(cfg.MongoURI, cfg.MongoDB, cfg.MongoPingInterval, cfg.MongoConnectWindow, logger)
	if err := mgr.Start(ctx); err != nil {
		log.Fatalf("failed to connect mongodb: %v", err)
	}
	defer func() { _ = mgr.Stop(ctx) }()

	db := mgr.Database()

	projectRepo := mongodb.NewProjectRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	if err := projectRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to create project indexes: %v", err)
	}
	if err := reviewRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to create review indexes: %v", err)
	}

	n, err := db.Collection("projects").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Fatalf("failed to count projects: %v", err)
	}
	if n == 0 {
		projects := []*entity.Project{
			{
				Title:       "Hillside Residence",
				Description: "Two-storey family home with a terraced garden.",
				ImageURL:    "https://storage.googleapis.com/" + cfg.GCSBucket + "/landingpage/projects/hillside.jpg",
				Category:    entity.CategoryComplete,
				Status:      entity.ProjectStatusActive,
				UploadedBy:  cfg.AdminEmail,
			},
			{
				Title:       "Riverside Office Park",
				Description: "Four-building commercial development, phase one.",
				ImageURL:    "https://storage.googleapis.com/" + cfg.GCSBucket + "/landingpage/projects/riverside.jpg",
				Category:    entity.CategoryOngoing,
				Status:      entity.ProjectStatusActive,
				UploadedBy:  cfg.AdminEmail,
			},
			{
				Title:       "Old Mill Renovation",
				Description: "Heritage conversion into mixed retail space.",
				ImageURL:    "https://storage.googleapis.com/" + cfg.GCSBucket + "/landingpage/projects/oldmill.jpg",
				Category:    entity.CategoryFirst,
				Status:      entity.ProjectStatusActive,
				UploadedBy:  cfg.AdminEmail,
			},
		}
		for _, p := range projects {
			if err := projectRepo.Create(ctx, p); err != nil {
				log.Fatalf("failed to seed project %q: %v", p.Title, err)
			}
		}
		fmt.Printf("seeded %d projects\n", len(projects))
	} else {
		fmt.Printf("projects collection already has %d documents, skipping\n", n)
	}

	n, err = db.Collection("reviews").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Fatalf("failed to count reviews: %v", err)
	}
	if n == 0 {
		reviews := []*entity.Review{
			{
				Name:    "Ana Petrović",
				Email:   "ana@example.com",
				Rating:  5,
				Comment: "Finished ahead of schedule and the result is beautiful.",
				Status:  entity.ReviewStatusApproved,
			},
			{
				Name:    "Marko Jovanović",
				Email:   "marko@example.com",
				Rating:  4,
				Comment: "Good communication throughout the build.",
				Status:  entity.ReviewStatusApproved,
			},
		}
		for _, r := range reviews {
			if err := reviewRepo.Create(ctx, r); err != nil {
				log.Fatalf("failed to seed review from %s: %v", r.Email, err)
			}
		}
		fmt.Printf("seeded %d reviews\n", len(reviews))
	} else {
		fmt.Printf("reviews collection already has %d documents, skipping\n", n)
	}
}
