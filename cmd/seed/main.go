package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"tripmate/internal/config"
	"tripmate/internal/db"
	"tripmate/internal/model"
	"tripmate/internal/repository"
	"tripmate/internal/service"
)

const defaultFixturePath = "seed/demo.json"

// SeedUser is one demo user with their trips from the fixture file.
type SeedUser struct {
	FacebookID string     `json:"fb_id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Trips      []SeedTrip `json:"trips"`
}

// SeedTrip is one demo trip from the fixture file.
type SeedTrip struct {
	Destination string `json:"destination"`
	Country     string `json:"country"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Hidden      *bool  `json:"hidden"`
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Destination{},
		&model.Trip{},
		&model.Code{},
		&model.Recommender{},
		&model.Recommendation{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	path := defaultFixturePath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	users, err := loadFixture(path)
	if err != nil {
		log.Fatalf("Failed to load fixture %s: %v", path, err)
	}
	log.Printf("Loaded %d users from %s", len(users), path)

	userRepo := repository.NewUserRepository(gormDB)
	destinationRepo := repository.NewDestinationRepository(gormDB)
	tripRepo := repository.NewTripRepository(gormDB)
	codeRepo := repository.NewCodeRepository(gormDB)
	registry := service.NewCodeRegistry(codeRepo)
	tripService := service.NewTripService(tripRepo, destinationRepo, registry)

	ctx := context.Background()
	created := 0
	for _, seedUser := range users {
		user := &model.User{
			FacebookID: seedUser.FacebookID,
			Email:      seedUser.Email,
			Name:       seedUser.Name,
		}
		if existing, err := userRepo.FindByFacebookID(ctx, seedUser.FacebookID); err == nil {
			log.Printf("User %s already exists, skipping create", seedUser.FacebookID)
			user = existing
		} else if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", seedUser.Email, err)
		}

		for _, seedTrip := range seedUser.Trips {
			start, err := time.Parse("2006-01-02", seedTrip.Start)
			if err != nil {
				log.Fatalf("Invalid start date %q: %v", seedTrip.Start, err)
			}
			end, err := time.Parse("2006-01-02", seedTrip.End)
			if err != nil {
				log.Fatalf("Invalid end date %q: %v", seedTrip.End, err)
			}

			destination := &model.Destination{Name: seedTrip.Destination, Country: seedTrip.Country}
			trip, err := tripService.CreateTrip(ctx, user.ID, destination, &start, &end, seedTrip.Hidden, "")
			if err != nil {
				log.Fatalf("Failed to create trip to %s: %v", seedTrip.Destination, err)
			}
			log.Printf("Created trip to %s with code %s", seedTrip.Destination, trip.Code.Value)
			created++
		}
	}

	log.Printf("Seed complete: %d trips created", created)
}

func loadFixture(path string) ([]SeedUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var users []SeedUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}
