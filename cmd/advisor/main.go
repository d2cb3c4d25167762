package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"SilverAdvisor/internal/catalog"
	"SilverAdvisor/internal/classifier"
	"SilverAdvisor/internal/config"
	"SilverAdvisor/internal/model"
	"SilverAdvisor/internal/recommend"
	"SilverAdvisor/internal/scheduler"
	"SilverAdvisor/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SilverAdvisor starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Load catalog; a missing catalog is fatal
	cat, err := catalog.Open(cfg.Catalog.Path, cfg.Catalog.Seed)
	if err != nil {
		log.Fatalf("[FATAL] open catalog: %v", err)
	}

	// Load classifier artifact; the recommendation path works without it
	var artifact *classifier.Artifact
	if cfg.Classifier.ArtifactPath != "" {
		artifact, err = classifier.LoadArtifact(cfg.Classifier.ArtifactPath)
		if err != nil {
			log.Printf("[WARN] classifier artifact unavailable, classification disabled: %v", err)
		}
	}

	// Init store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			st = store.NewNoopStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewNoopStore()
	}

	if err := st.SaveCatalogSnapshot(cat.Products()); err != nil {
		log.Printf("[ERROR] save initial catalog snapshot: %v", err)
	}

	engine := recommend.NewEngine(cat, st, cfg.Recommend.TopK)

	// One-shot modes: classify a survey profile and/or recommend for a
	// preference read from a JSON file, then keep running as a daemon.
	if path := os.Getenv("SURVEY_FILE"); path != "" {
		runSurvey(path, artifact)
	}
	if path := os.Getenv("PREFERENCE_FILE"); path != "" {
		runRecommendation(path, engine)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, cat, st)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] SilverAdvisor is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SilverAdvisor stopped")
}

func runSurvey(path string, artifact *classifier.Artifact) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[ERROR] read survey file: %v", err)
		return
	}
	var profile model.SurveyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("[ERROR] parse survey file: %v", err)
		return
	}

	category, buckets := classifier.ClassifyProfile(&profile)
	score, band := classifier.SurveyScore(&profile)
	fmt.Printf("금융 유형: %s (연금 %d분위 / 자산 %d분위 / 지출 %d분위)\n",
		category.DisplayName(), buckets.Pension, buckets.Assets, buckets.Spending)
	fmt.Printf("설문 등급: %s (점수 %d)\n", band.DisplayName(), score)

	if artifact == nil {
		return
	}
	label, proba, err := classifier.ClassifyWithArtifact(artifact, &profile)
	if err != nil {
		log.Printf("[ERROR] artifact classification: %v", err)
		return
	}
	fmt.Printf("모델 예측: %s\n", label)
	for i, cls := range artifact.Classes() {
		fmt.Printf("  %s: %.1f%%\n", cls, proba[i]*100)
	}
}

func runRecommendation(path string, engine *recommend.Engine) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[ERROR] read preference file: %v", err)
		return
	}
	var pref model.UserPreference
	if err := json.Unmarshal(data, &pref); err != nil {
		log.Printf("[ERROR] parse preference file: %v", err)
		return
	}

	res := engine.Recommend(&pref)
	fmt.Print(recommend.FormatReport(res))
}
