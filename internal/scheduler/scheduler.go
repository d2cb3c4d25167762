package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"SilverAdvisor/internal/catalog"
	"SilverAdvisor/internal/store"
)

// Scheduler runs the periodic catalog refresh.
type Scheduler struct {
	Cron    *cron.Cron
	Catalog *catalog.Catalog
	Store   store.Store
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, cat *catalog.Catalog, st store.Store) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Catalog: cat,
		Store:   st,
		Ctx:     ctx,
	}
}

// Register registers the catalog refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running catalog refresh")
	changed, err := s.Catalog.Refresh()
	if err != nil {
		log.Printf("[ERROR] catalog refresh: %v", err)
		return
	}
	if !changed {
		return
	}
	if err := s.Store.SaveCatalogSnapshot(s.Catalog.Products()); err != nil {
		log.Printf("[ERROR] save catalog snapshot: %v", err)
	}
}
