package europeana

import (
	"context"
	"fmt"
	"net/http"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.ConnectorFactory = (*Factory)(nil)

// Factory creates Europeana connectors from settings.
type Factory struct {
	httpClient *http.Client
}

// NewFactory creates a factory. A nil httpClient lets each connector build
// its own client from the configured timeout.
func NewFactory(httpClient *http.Client) *Factory {
	return &Factory{httpClient: httpClient}
}

// Create returns a connector configured by settings.
func (f *Factory) Create(ctx context.Context, settings domain.Settings) (driven.Connector, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	cfg := ConfigFromSettings(settings)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConnectorValidation, err)
	}
	return New(cfg, f.httpClient), nil
}
