package driven

import (
	"context"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// ConnectorFactory creates connectors from settings.
type ConnectorFactory interface {
	// Create returns a Connector configured by settings.
	// Returns ErrConnectorValidation if the settings are unusable.
	Create(ctx context.Context, settings domain.Settings) (Connector, error)
}
