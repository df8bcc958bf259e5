package synth

import (
	"fmt"

	"github.com/aretw0/demoreel/pkg/domain"
)

// All returns every dashboard in generation order.
func All() []Dashboard {
	return []Dashboard{BESS(), VisionNav()}
}

// For returns the dashboard for a topic ID.
func For(id domain.TopicID) (Dashboard, error) {
	for _, d := range All() {
		if d.Topic.ID == id {
			return d, nil
		}
	}
	return Dashboard{}, fmt.Errorf("%w: %q", domain.ErrUnknownTopic, id)
}
