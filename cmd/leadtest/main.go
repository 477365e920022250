// leadtest exercises the quote submission pipeline against whatever backends
// the environment configures. With no flags it reports which collaborators
// are wired; with -submit it pushes a synthetic lead through the full flow.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/stoneworks/lead-intake/internal/app/bootstrap"
	"github.com/stoneworks/lead-intake/internal/catalog"
	"github.com/stoneworks/lead-intake/internal/config"
	"github.com/stoneworks/lead-intake/internal/intake"
	"github.com/stoneworks/lead-intake/pkg/logging"
)

func main() {
	submit := flag.Bool("submit", false, "push a synthetic lead through the full pipeline")
	service := flag.String("service", string(catalog.InterlockInstallation), "service slug for the synthetic lead")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("Lead intake pipeline check")
	fmt.Println("--------------------------")

	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	report("cooldown store (redis)", redisClient != nil, "in-memory fallback")

	photos := bootstrap.BuildPhotoStore(ctx, cfg, logger)
	report("photo uploads (s3)", photos.Configured(), "leads captured without photos")

	leadsBackend := "in-memory"
	switch {
	case cfg.LeadsTable != "":
		leadsBackend = "dynamodb:" + cfg.LeadsTable
	case cfg.DatabaseURL != "":
		leadsBackend = "postgres"
	}
	fmt.Printf("  lead persistence: %s\n", leadsBackend)

	notifier := bootstrap.BuildNotifier(ctx, cfg, logger)
	report("owner notifications", notifier != nil, "leads persisted but not emailed")

	if !*submit {
		fmt.Println("\nRun with -submit to push a synthetic lead through the pipeline.")
		return
	}

	svc, ok := catalog.ByID(catalog.ServiceID(*service))
	if !ok {
		log.Fatalf("unknown service %q", *service)
	}

	sub := bootstrap.BuildSubmitter(ctx, cfg, nil, logger)

	state := intake.NewFormState(nil)
	state.Service = svc.ID
	state.SetPostalCode("K1K 4W3")
	if !state.Advance() {
		log.Fatalf("postal step failed: %s", state.Err)
	}

	state.FullName = "Pipeline Test"
	state.SetPhone("6135550199")
	state.Email = "pipeline-test@example.com"
	if !state.Advance() {
		log.Fatalf("contact step failed: %s", state.Err)
	}

	state.Details.ApproxSqFt = "250"
	state.Message = "Synthetic lead from leadtest; safe to discard."

	sub.Submit(ctx, state)
	if state.Status == intake.StatusError {
		log.Fatalf("submission failed: %s", state.Err)
	}
	fmt.Println("\nSynthetic lead submitted successfully.")
}

func report(name string, ok bool, fallback string) {
	if ok {
		fmt.Printf("  %s: configured\n", name)
		return
	}
	fmt.Printf("  %s: not configured (%s)\n", name, fallback)
}
