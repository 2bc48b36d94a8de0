package sentinel

import "errors"

// Sentinel errors for dataset acquisition and screening facts. The fetcher and
// parser return these (optionally wrapped) so the cache and callers can pick a
// fallback policy with errors.Is instead of matching strings.
//
// These represent factual states, not policy decisions:
// - ErrTransport: upstream returned a non-success HTTP status or the request failed
// - ErrFormat: content type or payload is not the expected XML document
// - ErrPayloadTooSmall: payload below the sanity threshold (upstream outage pages)
// - ErrInvalidInput: caller supplied an empty query, a caller bug
// - ErrUnavailable: no dataset ever loaded and the current fetch failed
var (
	ErrTransport       = errors.New("upstream transport failure")
	ErrFormat          = errors.New("unexpected document format")
	ErrPayloadTooSmall = errors.New("payload too small")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnavailable     = errors.New("sanctions data unavailable")
)
