// Package europeana normalises Europeana search records into artworks.
//
// Each field is resolved by an ordered fallback over the record's optional
// fields, taking the first non-empty candidate:
//
//   - title: title[0], dcTitleLangAware.def[0], "Untitled"
//   - time period: edmTimespanLabel[0].def, "Unknown Period"
//   - creators: all non-blank edmAgentLabel defs, dcCreator, ["Unknown Artist"]
//   - provider: first non-empty dataProvider, "Unknown Provider"
//
// Creators resolve on a whole-list basis: the agent labels are used only if
// at least one of them is non-blank, otherwise dcCreator is taken as is.
//
// Records without an image (edmIsShownBy absent or empty) yield no artwork.
package europeana
