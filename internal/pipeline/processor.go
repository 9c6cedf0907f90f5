package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/entity"
	"github.com/hasc-tools/ndaa-intake/internal/extract"
	"github.com/hasc-tools/ndaa-intake/internal/match"
	"github.com/hasc-tools/ndaa-intake/internal/reconcile"
)

// BatchError reports a single document failure; the batch continues.
type BatchError struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// BatchResult is the outcome of one batch run: the proposed mutations plus
// the per-document failures, keyed by original filename.
type BatchResult struct {
	Upserts []entity.UpsertInstruction
	Errors  []BatchError
}

// Processor coordinates parse -> extract -> match -> merge for uploaded
// documents. Per-document work shares no mutable state and runs in
// parallel; the greedy matching stage runs sequentially afterwards because
// claiming a record removes it from the pool.
type Processor struct {
	Logger *slog.Logger
	Parser extract.TextParser
	Fields *extract.FieldExtractor
	Merger *reconcile.Merger
	Heur   common.HeuristicsConfig
}

func NewProcessor(logger *slog.Logger, parser extract.TextParser, fields *extract.FieldExtractor, merger *reconcile.Merger, heur common.HeuristicsConfig) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Parser: parser, Fields: fields, Merger: merger, Heur: heur}
}

// ProcessDocument parses and extracts a single live upload. The upload-path
// fallback amount applies.
func (p *Processor) ProcessDocument(ctx context.Context, doc extract.RawDocument) (entity.CandidateRecord, error) {
	return p.processOne(ctx, doc, p.Heur.UploadFallbackCents)
}

func (p *Processor) processOne(ctx context.Context, doc extract.RawDocument, fallbackCents int64) (entity.CandidateRecord, error) {
	start := time.Now()
	text, err := p.Parser.Parse(ctx, doc)
	if err != nil {
		return entity.CandidateRecord{}, err
	}
	cand := p.Fields.Extract(text, doc.Filename, fallbackCents)
	cand.DocumentPath = doc.Path
	p.Logger.Info("pipeline.extract.ok",
		"filename", doc.Filename,
		"organization", cand.OrganizationName,
		"amount_cents", cand.RequestAmountCents,
		"domain", string(cand.Domain),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return cand, nil
}

// ProcessBatch extracts every document independently (batch-path fallback
// amount), then reconciles the surviving candidates against the existing
// record set and returns the merged upsert instructions. A failed document
// is reported in Errors and never aborts the rest.
func (p *Processor) ProcessBatch(ctx context.Context, docs []extract.RawDocument, existing []entity.FundingRequest) (BatchResult, error) {
	type slot struct {
		cand entity.CandidateRecord
		err  error
	}
	slots := make([]slot, len(docs))

	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cand, err := p.processOne(ctx, docs[i], p.Heur.BatchFallbackCents)
			slots[i] = slot{cand: cand, err: err}
		}(i)
	}
	wg.Wait()

	var result BatchResult
	var candidates []entity.CandidateRecord
	for i, s := range slots {
		if s.err != nil {
			result.Errors = append(result.Errors, BatchError{
				Filename: docs[i].Filename,
				Reason:   s.err.Error(),
			})
			continue
		}
		candidates = append(candidates, s.cand)
	}

	// Matching claims records out of the shared pool, so it must run after
	// all extraction has finished, in one ordered pass.
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.OrganizationName
	}
	matches := match.NewMatcher(p.Logger).Assign(names, existing)

	for i, cand := range candidates {
		ins, err := p.Merger.Merge(cand, matches[i], existing)
		if err != nil {
			result.Errors = append(result.Errors, BatchError{
				Filename: cand.SourceFilename,
				Reason:   err.Error(),
			})
			continue
		}
		result.Upserts = append(result.Upserts, ins)
	}

	p.Logger.Info("pipeline.batch.done",
		"documents", len(docs),
		"upserts", len(result.Upserts),
		"errors", len(result.Errors),
	)
	return result, nil
}
