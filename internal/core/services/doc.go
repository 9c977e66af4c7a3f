// Package services implements the driving ports.
//
// CollectionService runs a fetch cycle: it asks the connector factory for
// a Europeana connector built from the current settings, streams raw
// records through the normaliser registry, and stores the resulting
// collection. Stored collections are grouped and graphed on demand.
// SettingsService layers stored values and process overrides over the
// defaults.
package services
