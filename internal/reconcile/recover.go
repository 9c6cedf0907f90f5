package reconcile

import (
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/entity"
	"github.com/hasc-tools/ndaa-intake/internal/extract"
	"github.com/hasc-tools/ndaa-intake/internal/match"
)

// Placeholder fields for records recovered from orphaned files. Everything
// here is overwritten the next time the underlying document is re-processed.
const (
	recoveredSummary  = "Recovered during the system audit of the submissions folder. Original form data pending manual review."
	recoveredDistrict = "Under Verification"
)

// PathAttachment links an orphaned on-disk file back to the record it
// belongs to.
type PathAttachment struct {
	ID    uuid.UUID
	Path  string
	Score int
}

type AuditResult struct {
	Attachments []PathAttachment
	Inserts     []entity.UpsertInstruction
	Groups      int
}

// Auditor reconciles a raw file listing against the record set: duplicate
// copies of one submission collapse into a group, groups that match an
// existing record get their file attached, and the rest become recovered
// placeholder records.
type Auditor struct {
	fields *extract.FieldExtractor
	merger *Merger
	cfg    common.HeuristicsConfig
	logger *slog.Logger
}

func NewAuditor(fields *extract.FieldExtractor, merger *Merger, cfg common.HeuristicsConfig, logger *slog.Logger) *Auditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auditor{fields: fields, merger: merger, cfg: cfg, logger: logger}
}

func (a *Auditor) Audit(paths []string, existing []entity.FundingRequest) (AuditResult, error) {
	groups := match.GroupFiles(paths, a.fields)

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	matches := match.NewMatcher(a.logger).Assign(keys, existing)

	result := AuditResult{Groups: len(groups)}
	for i, g := range groups {
		rep := g.Files[0]
		if matches[i].Matched {
			result.Attachments = append(result.Attachments, PathAttachment{
				ID:    matches[i].MatchedID,
				Path:  rep,
				Score: matches[i].Score,
			})
			continue
		}

		// No text to extract from yet: run the extractor on empty input to
		// get the filename-derived name and deterministic defaults, then
		// stamp the recovery placeholders on top.
		cand := a.fields.Extract("", filepath.Base(rep), a.cfg.RecoveredAmountCents)
		cand.BriefSummary = recoveredSummary
		cand.DistrictImpact = recoveredDistrict
		cand.DocumentPath = rep

		ins, err := a.merger.Merge(cand, entity.MatchResult{}, nil)
		if err != nil {
			return result, err
		}
		result.Inserts = append(result.Inserts, ins)
	}

	a.logger.Info("reconcile.audit.done",
		"files", len(paths),
		"groups", result.Groups,
		"attached", len(result.Attachments),
		"recovered", len(result.Inserts),
	)
	return result, nil
}
