// Package throttle provides an [http.RoundTripper] that rate-limits
// requests against the distribution endpoint using a token-bucket
// algorithm from [golang.org/x/time/rate].
//
// The catalog sync fires a single request per run and never enables
// throttling itself; the limiter exists for callers that poll the
// distributor on a schedule and need to stay under its rate ceiling.
//
// # Usage
//
// Wrap an existing transport with [NewRoundTripper]:
//
//	rt, err := throttle.NewRoundTripper(
//		10,  // requests per second
//		5,   // burst capacity
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// When the rate limit is exceeded, requests block until a token
// becomes available or the request context is cancelled.
package throttle
