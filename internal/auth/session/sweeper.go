package session

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically prunes expired sessions from stores that cannot expire
// entries on their own. Lookups check expiry independently, so the sweep only
// bounds memory, it is not load-bearing for correctness.
type Sweeper struct {
	pruner Pruner
	cron   *cron.Cron
}

// NewSweeper returns nil when the store expires entries natively.
func NewSweeper(store Store) *Sweeper {
	pruner, ok := store.(Pruner)
	if !ok {
		return nil
	}
	return &Sweeper{
		pruner: pruner,
		cron:   cron.New(cron.WithSeconds()),
	}
}

// Start schedules a daily sweep at midnight.
func (s *Sweeper) Start() {
	_, err := s.cron.AddFunc("0 0 0 * * *", func() {
		removed, err := s.pruner.PruneExpired(context.Background())
		if err != nil {
			log.Printf("session sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("session sweep removed %d expired sessions", removed)
		}
	})
	if err != nil {
		log.Printf("Failed to create session sweep job: %v", err)
		return
	}

	log.Println("Session sweeper started (running nightly at 12:00AM)")
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}
