// Package domain defines the core business entities for artgraph.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRecord: One heterogeneous item from the search API
//   - Artwork: The canonical, displayable artwork
//   - GroupIndex: Ordered grouping of artworks by a derived key
//   - FacetResponse: Server-computed facets (colour palette)
//   - Collection: The artworks produced by one fetch cycle
//   - Graph: Artwork/creator/period/provider nodes and their links
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
