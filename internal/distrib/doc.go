// Package distrib provides the configurable HTTP client used to talk
// to the pet catalog distribution endpoint, built on [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := distrib.Build(
//		distrib.WithTimeout(10 * time.Second),
//		distrib.WithUserAgent("petsync/1.0"),
//	)
//
// # Making Requests
//
// Construct a [URL] and [Request], then execute with [Client.Do].
// Requests against the distribution endpoint authenticate with a
// static API key sent via [WithAPIKey]:
//
//	u := distrib.URL("https", "distributor.example.com", "/status")
//	req, err := distrib.Request(ctx, u, http.MethodGet, distrib.WithAPIKey(key))
//	err = c.Do(req, http.StatusOK, distrib.WithDestination(&result))
//
// Pass [Any2xx] as the expected code to accept any 2xx response.
// A response outside the expected code yields an [UnexpectedStatusError]
// carrying the status and a capped excerpt of the body; 401 and 403
// responses additionally match [ErrAuthFailure] via [errors.Is].
//
// # Downloading Files
//
// Stream a response body directly to disk with optional checksum
// verification and progress reporting:
//
//	n, err := c.Download(req, distrib.Any2xx, "pets.csv",
//		distrib.WithProgress(),
//	)
//
// For lower-level control see the
// [github.com/emvolvovsky-bot/PetMatch/internal/download] package.
package distrib
