package jobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/vastrarent/vastra-rental-be/internal/repositories"
)

// Sweeper expires stale carts on a schedule so abandoned reservations do not
// hold garments hostage.
type Sweeper struct {
	cron     *cron.Cron
	cartRepo repositories.CartRepo
}

func NewSweeper(cartRepo repositories.CartRepo) *Sweeper {
	return &Sweeper{
		cron:     cron.New(),
		cartRepo: cartRepo,
	}
}

// Start registers the hourly sweep and begins the scheduler
func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc("@hourly", s.sweep)
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cart expiry sweeper started (hourly)")
	return nil
}

// Stop halts the scheduler, waiting for a running sweep to finish
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sweeper) sweep() {
	swept, err := s.cartRepo.ExpireStale()
	if err != nil {
		log.Printf("⚠️  Cart expiry sweep failed: %v", err)
		return
	}
	if swept > 0 {
		log.Printf("🧹 Expired %d stale cart(s)", swept)
	}
}
