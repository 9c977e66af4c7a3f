// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Connector: Fetches artwork records and facets from the search API
//   - ConnectorFactory: Creates connectors from settings
//   - Normaliser: Transforms raw records into artworks
//   - NormaliserRegistry: Selects the normaliser for a MIME type
//   - CollectionStore: Collection persistence (SQLite or memory)
//   - ConfigStore: Application configuration (TOML file or memory)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
