// Package catalog fetches the pet catalog published by the distributor
// service and lands it on local disk.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/emvolvovsky-bot/PetMatch/internal/config"
	"github.com/emvolvovsky-bot/PetMatch/internal/distrib"
)

// catalogFile is the object the distributor publishes.
const catalogFile = "pets.csv"

// Result describes a completed catalog refresh.
type Result struct {
	Path  string
	Bytes int64
}

// SizeMB reports the size of the written file in mebibytes.
func (r Result) SizeMB() float64 {
	return float64(r.Bytes) / (1 << 20)
}

// Refresher downloads the distributor's pet catalog to local disk.
type Refresher struct {
	cfg    config.Config
	client *distrib.Client
	logger *slog.Logger
	tracer trace.Tracer
}

// New builds a Refresher from the given configuration.
func New(cfg config.Config, optFns ...Option) (*Refresher, error) {
	var opts options
	for _, opt := range optFns {
		opt(&opts)
	}

	if opts.logger == nil {
		opts.logger = slog.Default()
	}
	if opts.tracer == nil {
		opts.tracer = noop.NewTracerProvider().Tracer("no-op tracer")
	}

	// A fresh http.Client keeps timeout and transport settings scoped
	// to this Refresher instead of mutating http.DefaultClient.
	clientOpts := []distrib.Option{
		distrib.WithClient(&http.Client{}),
		distrib.WithLogger(opts.logger),
		distrib.WithUserAgent(cfg.UserAgent),
	}
	if cfg.Timeout > 0 {
		clientOpts = append(clientOpts, distrib.WithTimeout(cfg.Timeout))
	}

	client, err := distrib.Build(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("building distributor client: %w", err)
	}

	return &Refresher{
		cfg:    cfg,
		client: client,
		logger: opts.logger,
		tracer: opts.tracer,
	}, nil
}

// Refresh downloads the catalog to the configured output path, replacing
// any previous copy. The swap is atomic: a failed attempt leaves an
// existing file untouched. Server errors are retried with exponential
// backoff up to the configured MaxRetries; client errors are not.
func (r *Refresher) Refresh(ctx context.Context) (Result, error) {
	ctx, span := r.tracer.Start(ctx, "catalog.refresh")
	defer span.End()

	runID := uuid.New().String()
	log := r.logger.With("run_id", runID)

	reqURL, err := url.Parse(r.cfg.BaseURL)
	if err != nil {
		return Result{}, fmt.Errorf("parsing base url: %w", err)
	}
	reqURL = reqURL.JoinPath(catalogFile)

	span.SetAttributes(attribute.String("run_id", runID), attribute.String("url", reqURL.String()), attribute.String("output", r.cfg.OutputPath))
	log.Info("refreshing catalog", "url", reqURL.String(), "output", r.cfg.OutputPath)

	var written int64
	attempt := func() error {
		req, err := r.client.Request(ctx, reqURL, http.MethodGet, distrib.WithAPIKey(r.cfg.APIKey))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("building request: %w", err))
		}

		n, err := r.client.Download(req, distrib.Any2xx, r.cfg.OutputPath, distrib.WithProgress())
		if err != nil {
			if statusErr, ok := errors.AsType[*distrib.UnexpectedStatusError](err); ok && statusErr.StatusCode < http.StatusInternalServerError {
				// Client errors won't heal on retry.
				return backoff.Permanent(err)
			}

			return err
		}
		written = n

		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(r.cfg.MaxRetries)), ctx)

	notify := func(err error, wait time.Duration) {
		log.Warn("catalog fetch failed, will retry", "error", err.Error(), "wait", wait.String())
	}

	if err := backoff.RetryNotify(attempt, bo, notify); err != nil {
		return Result{}, fmt.Errorf("fetching %s: %w", catalogFile, err)
	}

	res := Result{Path: r.cfg.OutputPath, Bytes: written}
	log.Info("catalog refreshed", "path", res.Path, "bytes", res.Bytes)

	return res, nil
}
