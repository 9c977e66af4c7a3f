package europeana

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driven"
	"github.com/custodia-labs/artgraph/internal/logger"
)

const (
	// ConnectorType is the connector type identifier.
	ConnectorType = "europeana"

	// MIMETypeRecord is the MIME type of emitted records.
	MIMETypeRecord = "application/vnd.europeana.record+json"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector fetches artwork records from the Europeana Search API.
type Connector struct {
	config  *Config
	queries QueryBuilder
	client  *Client
	mu      sync.Mutex
	closed  bool
}

// New creates a new Europeana connector. A nil httpClient uses a default
// client with the configured timeout.
func New(cfg *Config, httpClient *http.Client) *Connector {
	return &Connector{
		config:  cfg,
		queries: cfg.QueryBuilder(),
		client:  NewClient(cfg, httpClient),
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return ConnectorType
}

// Validate checks the connector configuration.
func (c *Connector) Validate(ctx context.Context) error {
	if c.isClosed() {
		return domain.ErrConnectorClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := c.config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConnectorValidation, err)
	}
	return nil
}

// ArtworkURL returns the first-page request URL for query.
func (c *Connector) ArtworkURL(query domain.ArtworkQuery) string {
	return c.queries.ArtworkURL(query.Artist, query.Colours)
}

// ColourFacetURL returns the colour facet request URL for artist.
func (c *Connector) ColourFacetURL(artist string) string {
	return c.queries.ColourFacetURL(artist)
}

// Search pages through the records matching query.
func (c *Connector) Search(ctx context.Context, query domain.ArtworkQuery) (<-chan domain.RawDocument, <-chan error) {
	docsChan := make(chan domain.RawDocument)
	errsChan := make(chan error, 1)

	go func() {
		defer close(docsChan)
		defer close(errsChan)

		if c.isClosed() {
			errsChan <- domain.ErrConnectorClosed
			return
		}

		firstURL := c.ArtworkURL(query)
		maxPages := c.config.MaxPages

		requestURL := firstURL
		if maxPages > 1 {
			requestURL = WithCursor(firstURL, CursorStart)
		}

		total := 0
		pages := 0
		position := 0
		for {
			resp, err := c.client.Search(ctx, requestURL)
			if err != nil {
				errsChan <- fmt.Errorf("fetch page %d: %w", pages+1, err)
				return
			}
			pages++
			total = resp.TotalResults

			logger.Debug("Page %d: %d items of %d", pages, len(resp.Items), total)

			for _, item := range resp.Items {
				doc := newRecordDocument(item, position, pages)
				position++
				select {
				case <-ctx.Done():
					errsChan <- ctx.Err()
					return
				case docsChan <- doc:
				}
			}

			if pages >= maxPages || resp.NextCursor == "" || len(resp.Items) == 0 {
				break
			}
			requestURL = WithCursor(firstURL, resp.NextCursor)
		}

		errsChan <- &driven.SearchComplete{URL: firstURL, TotalResults: total, Pages: pages}
	}()

	return docsChan, errsChan
}

// newRecordDocument wraps one response item. Items without a textual id
// are addressed by their position in the result set.
func newRecordDocument(item []byte, position, page int) domain.RawDocument {
	uri := recordID(item)
	if uri == "" {
		uri = "europeana:item/" + strconv.Itoa(position)
	}
	return domain.RawDocument{
		URI:      uri,
		MIMEType: MIMETypeRecord,
		Content:  item,
		Metadata: map[string]any{
			"position": position,
			"page":     page,
		},
	}
}

// ColourFacets fetches the colour palette facet for artist.
func (c *Connector) ColourFacets(ctx context.Context, artist string) (*domain.FacetResponse, error) {
	if c.isClosed() {
		return nil, domain.ErrConnectorClosed
	}

	resp, err := c.client.Search(ctx, c.ColourFacetURL(artist))
	if err != nil {
		return nil, fmt.Errorf("fetch colour facets: %w", err)
	}
	return resp.FacetResponse(), nil
}

// Close releases resources.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *Connector) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
