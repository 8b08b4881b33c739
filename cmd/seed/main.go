package main

import (
	"flag"
	"log"

	"spinnergy/internal/config"
	"spinnergy/internal/core/repository"
	"spinnergy/internal/core/service"
)

// Seeds demo accounts for judging sessions. Run against a real MongoDB:
//
//	MONGODB_URI=... JWT_SECRET=... go run ./cmd/seed
func main() {
	spins := flag.Int("spins", 5, "initial spin quota for seeded accounts")
	flag.Parse()

	mongoConfig := config.NewMongoConfig()
	db, err := config.ConnectMongoDB(mongoConfig)
	if err != nil {
		log.Fatalf("Seeding needs a reachable MongoDB: %v", err)
	}

	accountRepo := repository.NewMongoAccountRepository(db)
	accounts := service.NewAccountService(accountRepo, *spins)

	demo := []struct {
		name, email, password string
	}{
		{"Demo Judge", "judge@spinnergy.dev", "spinnergy-demo"},
		{"Ann", "ann@spinnergy.dev", "spinnergy-demo"},
		{"Ben", "ben@spinnergy.dev", "spinnergy-demo"},
	}

	for _, d := range demo {
		account, err := accounts.Register(d.name, d.email, d.password)
		if err != nil {
			log.Printf("Skipping %s: %v", d.email, err)
			continue
		}
		log.Printf("Seeded %s (%s)", account.Name, account.Email)
	}
}
