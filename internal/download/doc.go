// Package download streams HTTP response bodies to disk with optional
// checksum validation and progress reporting.
//
// # Single Download
//
// [Handle] writes the response body to a temporary file alongside the
// destination path, then atomically renames it on success and returns
// the byte count written:
//
//	n, err := download.Handle(ctx, resp.Body, resp.ContentLength, destPath, logger)
//
// A failed run removes the temporary file, so an existing file at
// destPath is never replaced by a partial download.
//
// Most callers should use the higher-level
// [github.com/emvolvovsky-bot/PetMatch/internal/distrib] package, which
// invokes Handle internally and accepts all download options on its
// Download method.
package download
