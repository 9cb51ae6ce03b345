// Seeder loads demo fixtures into the rooms and reviews collections so the
// frontend has data to browse. Inserts fan out over a bounded worker pool.
package main

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"wander_wave/internal/adapters/observability"
	"wander_wave/internal/domain"
	"wander_wave/internal/shared"
	mongostore "wander_wave/internal/storage/mongo"
)

type fixtures struct {
	Rooms   []domain.Document `json:"rooms"`
	Reviews []domain.Document `json:"reviews"`
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var fx fixtures
	if err := json.Unmarshal(raw, &fx); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}

	client, err := mongostore.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer client.Disconnect(context.Background())
	log.Info().Msg("db ping ok")

	repo := mongostore.New(client.Database(cfg.MongoDB))

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	insert := func(kind string, doc domain.Document, do func(context.Context, domain.Document) (domain.InsertResult, error)) {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			res, err := do(ctx, doc)
			if err != nil {
				log.Warn().Str("kind", kind).Err(err).Msg("insert failed")
				return
			}
			log.Info().Str("kind", kind).Str("id", res.InsertedID).Msg("insert ok")
		}()
	}

	for _, room := range fx.Rooms {
		insert("room", room, repo.InsertRoom)
	}
	for _, review := range fx.Reviews {
		insert("review", review, repo.InsertReview)
	}

	wg.Wait()
	log.Info().
		Int("rooms", len(fx.Rooms)).
		Int("reviews", len(fx.Reviews)).
		Msg("seeding completed")
}
