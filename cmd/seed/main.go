// Command seed populates the database with random categories, participants
// and events.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/Eursukkul/eventhub/config"
	"github.com/Eursukkul/eventhub/internal/repository"
	"github.com/Eursukkul/eventhub/internal/seed"
	"github.com/Eursukkul/eventhub/pkg/database"
	"github.com/Eursukkul/eventhub/pkg/logger"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Categories, "categories", opts.Categories, "number of categories to create")
	flag.IntVar(&opts.Events, "events", opts.Events, "number of events to create")
	flag.IntVar(&opts.Participants, "participants", opts.Participants, "number of participants to create")
	seedValue := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(os.Stderr, cfg.LogLevel)

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	s := seed.New(
		repository.NewCategoryRepository(db),
		repository.NewParticipantRepository(db),
		repository.NewEventRepository(db),
		rand.New(rand.NewPCG(*seedValue, *seedValue^0x9e3779b97f4a7c15)),
		cfg.Now,
		log,
	)

	log.Info("starting data population", "seed", *seedValue)
	sum, err := s.Run(context.Background(), opts)
	if err != nil {
		log.Error("data population failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("Data population completed successfully!")
	fmt.Println("Summary:")
	fmt.Printf("   - Categories: %d\n", sum.Categories)
	fmt.Printf("   - Events: %d\n", sum.Events)
	fmt.Printf("   - Participants: %d\n", sum.Participants)
}
