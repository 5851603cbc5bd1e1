package main

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/construware/construct-backend/config"
	"github.com/construware/construct-backend/internal/bootstrap"
	projrepo "github.com/construware/construct-backend/internal/projects/repository"
)

// staleAfter is how long a billing entry may sit pending before it shows
// up in the morning digest.
const staleAfter = 14 * 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	repo := projrepo.NewRepo(db)

	c := cron.New()
	if _, err := c.AddFunc("0 8 * * *", func() {
		runPendingBillingDigest(repo)
	}); err != nil {
		log.Fatalf("cron: %v", err)
	}

	log.Println("worker started (pending-billing digest at 08:00 daily)")
	c.Run()
}

func runPendingBillingDigest(repo *projrepo.Repo) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-staleAfter)
	digests, err := repo.ListStalePendingBilling(ctx, cutoff)
	if err != nil {
		log.Printf("pending-billing digest failed: %v", err)
		return
	}

	if len(digests) == 0 {
		log.Println("pending-billing digest: nothing outstanding")
		return
	}

	for _, d := range digests {
		log.Printf("pending billing: project=%q id=%s entries=%d total=%.2f (older than %s)",
			d.ProjectName, d.ProjectID, d.PendingCount, d.PendingTotal, staleAfter)
	}
}
