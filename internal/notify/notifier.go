package notify

import (
	"context"
	"log"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/applications/domain"
)

// Notifier confirms a received application to the volunteer. Delivery is
// best effort: callers must never fail the submission over a notify error.
type Notifier interface {
	ApplicationReceived(ctx context.Context, app *domain.Application) error
}

// LogNotifier writes the confirmation to the process log instead of sending
// real mail. Stand-in until an actual mail provider is wired up.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) ApplicationReceived(_ context.Context, app *domain.Application) error {
	log.Printf("[notify] email confirmation to=%s application=%d project=%d",
		app.VolunteerEmail, app.ID, app.ProjectID)
	return nil
}
