// Package normalisers provides the normaliser registry and, in its
// subpackages, implementations of the Normaliser interface. Each normaliser
// knows how to turn records of a specific MIME type into artworks.
//
// Normalisers are registered with the Registry at startup.
package normalisers
