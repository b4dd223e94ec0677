// ============================================================================
// strview - Character View Toolkit
// ============================================================================
//
// Package:     query
// Description: Query engine running view operations at a chosen width
// Author:      Mike Stoffels
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package query

import (
	"context"
	"hash/maphash"

	mdwerrors "github.com/msto63/strview/foundation/core/errors"
	mdwlog "github.com/msto63/strview/foundation/core/log"
	mdwstrview "github.com/msto63/strview/foundation/utils/strview"
	"github.com/msto63/strview/pkg/core/config"
)

// Engine runs queries. It holds no per-query state and may be shared.
type Engine struct {
	cfg    config.QueryConfig
	logger *mdwlog.Logger
	seed   maphash.Seed
}

// NewEngine creates an engine. A nil logger uses the package default.
func NewEngine(cfg config.QueryConfig, logger *mdwlog.Logger) *Engine {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Engine{
		cfg:    cfg,
		logger: logger.WithName("query"),
		seed:   maphash.MakeSeed(),
	}
}

// Run executes req. An empty request width falls back to the configured one.
func (e *Engine) Run(ctx context.Context, req Request) (*Result, error) {
	if !req.Operation.Valid() {
		return nil, mdwerrors.QueryUnknownOperation(string(req.Operation))
	}

	raw := string(req.Width)
	if raw == "" {
		raw = e.cfg.Width
	}
	width, err := ParseWidth(raw)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleQuery, string(req.Operation), err)
	}

	log := e.logger.WithFields(mdwlog.Fields{
		"operation": string(req.Operation),
		"width":     string(width),
	})
	timer := e.logger.StartTimer("query." + string(req.Operation)).
		WithField("width", string(width)).
		WithField("size", len(req.Text))

	res := &Result{Operation: req.Operation, Width: width, Input: req.Text}
	switch width {
	case Width8:
		err = execute[byte](ctx, e, log, req, res)
	case Width16:
		err = execute[uint16](ctx, e, log, req, res)
	case Width32:
		err = execute[rune](ctx, e, log, req, res)
	case WidthWide:
		err = execute[mdwstrview.WChar](ctx, e, log, req, res)
	}

	elapsed := timer.StopWithError(err)
	if err != nil {
		return nil, err
	}

	if limit := e.cfg.SlowThreshold.Duration; limit > 0 && elapsed > limit {
		log.Warn("slow query", mdwlog.Fields{
			"elapsed_ms": elapsed.Milliseconds(),
			"threshold":  limit.String(),
		})
	}
	return res, nil
}

// limit returns the configured result cap, or 0 when unbounded
func (e *Engine) limit() int {
	return max(e.cfg.MaxResults, 0)
}
