package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
)

// FetchArtworksInput is the input schema for the fetch_artworks tool.
type FetchArtworksInput struct {
	Artist  string   `json:"artist,omitempty" jsonschema:"creator to filter by; empty or 'all' matches every creator"`
	Colours []string `json:"colours,omitempty" jsonschema:"colour palette tokens such as #FFFFFF"`
	Pages   int      `json:"pages,omitempty" jsonschema:"number of result pages to fetch (default from settings)"`
}

// FetchArtworksOutput is the output schema for the fetch_artworks tool.
type FetchArtworksOutput struct {
	CollectionID string           `json:"collection_id"`
	URL          string           `json:"url"`
	TotalResults int              `json:"total_results"`
	Excluded     int              `json:"excluded"`
	Count        int              `json:"count"`
	Artworks     []domain.Artwork `json:"artworks"`
}

// ColourFacetsInput is the input schema for the colour_facets tool.
type ColourFacetsInput struct {
	Artist string `json:"artist,omitempty" jsonschema:"creator to filter by; empty or 'all' matches every creator"`
}

// ColourFacetsOutput is the output schema for the colour_facets tool.
type ColourFacetsOutput struct {
	Artist  string   `json:"artist"`
	URL     string   `json:"url"`
	Colours []string `json:"colours"`
}

// GroupArtworksInput is the input schema for the group_artworks tool.
type GroupArtworksInput struct {
	CollectionID string `json:"collection_id,omitempty" jsonschema:"stored collection ID (default latest)"`
	By           string `json:"by,omitempty" jsonschema:"grouping: period, creator or provider (default period)"`
}

// GroupArtworksOutput is the output schema for the group_artworks tool.
type GroupArtworksOutput struct {
	By     string        `json:"by"`
	Groups []GroupOutput `json:"groups"`
}

// GroupOutput is one group of the group_artworks tool.
type GroupOutput struct {
	Key      string   `json:"key"`
	Count    int      `json:"count"`
	Titles   []string `json:"titles"`
	Artworks []string `json:"artwork_ids"`
}

// ArtworkGraphInput is the input schema for the artwork_graph tool.
type ArtworkGraphInput struct {
	CollectionID string `json:"collection_id,omitempty" jsonschema:"stored collection ID (default latest)"`
}

// ArtworkGraphOutput is the output schema for the artwork_graph tool.
type ArtworkGraphOutput struct {
	Nodes []domain.Node `json:"nodes"`
	Links []domain.Link `json:"links"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_artworks",
		Description: "Fetch artworks from Europeana, normalise them and store them as a new collection",
	}, s.handleFetchArtworks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "colour_facets",
		Description: "List the colour palette facet of an artist's works",
	}, s.handleColourFacets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "group_artworks",
		Description: "Group a stored collection by time period, creator or provider",
	}, s.handleGroupArtworks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "artwork_graph",
		Description: "Derive the artwork, creator, period and provider graph of a stored collection",
	}, s.handleArtworkGraph)
}

// handleFetchArtworks handles the fetch_artworks tool invocation.
func (s *Server) handleFetchArtworks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchArtworksInput,
) (*mcp.CallToolResult, FetchArtworksOutput, error) {
	if input.Pages < 0 {
		return nil, FetchArtworksOutput{}, fmt.Errorf("%w: pages must not be negative", domain.ErrInvalidInput)
	}

	query := domain.NewArtworkQuery(input.Artist, input.Colours...)
	collection, err := s.ports.Collections.Fetch(ctx, query, driving.FetchOptions{Pages: input.Pages})
	if err != nil {
		return nil, FetchArtworksOutput{}, err
	}

	return nil, FetchArtworksOutput{
		CollectionID: collection.ID,
		URL:          collection.URL,
		TotalResults: collection.TotalResults,
		Excluded:     collection.Excluded,
		Count:        len(collection.Artworks),
		Artworks:     collection.Artworks,
	}, nil
}

// handleColourFacets handles the colour_facets tool invocation.
func (s *Server) handleColourFacets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ColourFacetsInput,
) (*mcp.CallToolResult, ColourFacetsOutput, error) {
	palette, err := s.ports.Collections.Colours(ctx, input.Artist)
	if err != nil {
		return nil, ColourFacetsOutput{}, err
	}

	return nil, ColourFacetsOutput{
		Artist:  palette.Artist,
		URL:     palette.URL,
		Colours: palette.Colours,
	}, nil
}

// handleGroupArtworks handles the group_artworks tool invocation.
func (s *Server) handleGroupArtworks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GroupArtworksInput,
) (*mcp.CallToolResult, GroupArtworksOutput, error) {
	field := domain.GroupByPeriodField
	if input.By != "" {
		var err error
		field, err = domain.ParseGroupField(input.By)
		if err != nil {
			return nil, GroupArtworksOutput{}, fmt.Errorf("%w: unknown grouping %q", err, input.By)
		}
	}

	idx, err := s.ports.Collections.Groups(ctx, input.CollectionID, field)
	if err != nil {
		return nil, GroupArtworksOutput{}, err
	}

	groups := idx.Groups()
	output := GroupArtworksOutput{
		By:     string(field),
		Groups: make([]GroupOutput, len(groups)),
	}
	for i, g := range groups {
		out := GroupOutput{
			Key:      g.Key,
			Count:    len(g.Items),
			Titles:   make([]string, len(g.Items)),
			Artworks: make([]string, len(g.Items)),
		}
		for j, a := range g.Items {
			out.Titles[j] = a.Title
			out.Artworks[j] = a.ID
		}
		output.Groups[i] = out
	}

	return nil, output, nil
}

// handleArtworkGraph handles the artwork_graph tool invocation.
func (s *Server) handleArtworkGraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ArtworkGraphInput,
) (*mcp.CallToolResult, ArtworkGraphOutput, error) {
	graph, err := s.ports.Collections.Graph(ctx, input.CollectionID)
	if err != nil {
		return nil, ArtworkGraphOutput{}, err
	}

	return nil, ArtworkGraphOutput{Nodes: graph.Nodes, Links: graph.Links}, nil
}
