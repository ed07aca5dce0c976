// Package pipeline wires retrieval, profiling, and classification into the
// end-to-end assessment flow used by the CLI, the web server, and the
// directory watcher.
package pipeline

import (
	"context"

	"github.com/coolbeans/aiact/pkg/classify"
	"github.com/coolbeans/aiact/pkg/profile"
	"github.com/coolbeans/aiact/pkg/report"
	"github.com/coolbeans/aiact/pkg/search"
)

// Request describes one classification request.
type Request struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Description string `json:"description"`

	// EnableSearch turns on supplementary web retrieval. Retrieval
	// failures never fail the request; they degrade to an empty
	// supplement.
	EnableSearch bool `json:"enable_search"`
}

// Pipeline runs the two-stage assessment: harvest supplementary context and
// build a profile, then classify it. Safe for reuse across requests; it
// holds no per-request state.
type Pipeline struct {
	harvester *search.Harvester
	engine    *classify.Engine
	reports   *report.Builder
}

// New creates a pipeline over the given search provider. A nil provider
// disables retrieval regardless of Request.EnableSearch.
func New(provider search.Provider) *Pipeline {
	return &Pipeline{
		harvester: search.NewHarvester(provider),
		engine:    classify.NewEngine(),
		reports:   report.NewBuilder(),
	}
}

// Harvester exposes the pipeline's harvester for configuration.
func (pl *Pipeline) Harvester() *search.Harvester {
	return pl.harvester
}

// Run executes one assessment and returns the report. Retrieval, when
// enabled, happens before profiling; everything after it is a pure
// computation over in-memory text.
func (pl *Pipeline) Run(ctx context.Context, req Request) *report.Report {
	var supplement string
	var sources []string
	if req.EnableSearch {
		supplement, sources = pl.harvester.Harvest(ctx, req.Name, req.Company)
	}

	p := profile.Build(req.Name, req.Company, req.Description, supplement, sources)
	result := pl.engine.Classify(p)

	return pl.reports.Build(p, result)
}
