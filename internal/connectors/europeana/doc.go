// Package europeana implements a connector for the Europeana Search API.
//
// Every query is scoped to a single data provider (the Rijksmuseum by
// default) and restricted to records that carry media.
//
// # Architecture
//
// The connector follows the driven port pattern defined in [driven.Connector].
// It comprises the following components:
//
//   - QueryBuilder: builds artwork and colour facet request URLs
//   - Client: performs HTTP requests with rate limiting and decodes responses
//   - Connector: pages through results and emits one raw document per record
//   - Factory: creates connectors from settings
//
// # Request URLs
//
// Artwork searches use the rich profile and may filter by colour:
//
//	{base}?wskey={key}&query=who:(Rembrandt)&qf=DATA_PROVIDER:(%22Rijksmuseum%22)
//	    &profile=rich&media=true&rows=50&sort=score+desc&colourpalette=%23000000
//
// Colour facet queries request no rows and the COLOURPALETTE facet only.
// Values are percent-encoded the way encodeURIComponent does, so a space
// becomes %20 and the who:(...) wrapper stays literal.
//
// # Paging
//
// With a page limit of 1 a single request is made. Larger limits switch to
// cursor paging (cursor=*) and follow nextCursor until it is absent or the
// limit is reached.
//
// # Rate Limiting
//
// Requests pass through a token bucket sized by the rate_limit setting. A 429
// response becomes a [RateLimitError] carrying the server's Retry-After; the
// client does not retry.
//
// # Document Structure
//
// Records are emitted as [domain.RawDocument] values with MIME type
// [MIMETypeRecord]. Content holds the item's JSON exactly as received and
// URI is the record id.
package europeana
