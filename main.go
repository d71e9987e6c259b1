package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"shorts-factory/ai"
	"shorts-factory/analyzer"
	"shorts-factory/config"
	"shorts-factory/lang"
	"shorts-factory/orchestrator"
	"shorts-factory/render"
	"shorts-factory/store"
	"shorts-factory/topics"
	"shorts-factory/types"
	"shorts-factory/versions"
)

func main() {
	// Load .env (local dev only — CI uses injected secrets)
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Printf("No config.yaml (%v) — using defaults", err)
		cfg = config.Default()
	}

	st := store.New(cfg.Paths)
	if err := st.EnsureDirs(); err != nil {
		log.Fatalf("Failed to prepare directories: %v", err)
	}

	runID := uuid.NewString()[:8]
	log.Printf("🎬 Shorts Factory starting — Run ID: %s", runID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	langs := lang.NewRegistry()
	if _, ok := langs.Lookup(types.LanguageCode(cfg.Language)); !ok {
		log.Printf("⚠️  Unsupported language %q — falling back to ko", cfg.Language)
		cfg.Language = "ko"
	}

	capability := buildCapability(ctx, cfg)
	if capability == nil {
		log.Println("⚠️  No AI credentials — running with deterministic analysis")
	}

	items := collectItems(ctx, cfg, st)
	if len(items) == 0 {
		log.Println("Nothing to process — drop images into", cfg.Paths.Images)
		return
	}
	log.Printf("📦 %d items queued (language=%s quality=%s versions=%d concurrency=%d)",
		len(items), cfg.Language, cfg.Quality, cfg.NumVersions, cfg.Concurrency)

	renderer := render.New(
		cfg.Render.BaseURL,
		os.Getenv("DID_API_KEY"),
		cfg.Paths.Videos,
		cfg.PollInterval(),
		cfg.Render.MaxAttempts,
	)

	orch := orchestrator.New(
		cfg,
		analyzer.New(capability, langs),
		versions.New(langs),
		renderer,
		st,
	)
	results := orch.Run(ctx, items)

	if path, err := st.SaveBatchState(runID, results); err != nil {
		log.Printf("Warning: could not save batch state: %v", err)
	} else {
		log.Printf("📁 Batch state: %s", path)
	}

	success, partial, failed := 0, 0, 0
	for _, r := range results {
		switch r.Status {
		case types.StatusSuccess:
			success++
		case types.StatusPartial:
			partial++
		default:
			failed++
		}
	}
	log.Printf("✅ Run %s complete: %d success, %d partial, %d failed", runID, success, partial, failed)
	if failed == len(results) {
		os.Exit(1)
	}
}

// buildCapability wires the configured AI provider, or nil when no
// credentials are present
func buildCapability(ctx context.Context, cfg *config.Config) ai.Capability {
	switch cfg.AIProvider {
	case "openai":
		client, err := ai.NewOpenAI(os.Getenv("OPENAI_API_KEY"), "")
		if err != nil {
			log.Printf("OpenAI unavailable: %v", err)
			return nil
		}
		return client
	default:
		client, err := ai.NewGemini(ctx, os.Getenv("GEMINI_API_KEY"), "gemini-1.5-flash")
		if err != nil {
			log.Printf("Gemini unavailable: %v", err)
			return nil
		}
		return client
	}
}

// collectItems merges the image inbox with the optional trending-topic feed
func collectItems(ctx context.Context, cfg *config.Config, st *store.Store) []types.BatchItem {
	items, err := st.ScanPending()
	if err != nil {
		log.Printf("⚠️  Image scan failed: %v", err)
	}

	if cfg.Topics.Enabled && len(cfg.Topics.Subreddits) > 0 {
		feed, err := topics.NewFeed()
		if err != nil {
			log.Printf("⚠️  Topic feed unavailable: %v", err)
		} else {
			items = append(items, feed.Fetch(ctx, cfg.Topics.Subreddits, cfg.Topics.Limit)...)
		}
	}
	return items
}
