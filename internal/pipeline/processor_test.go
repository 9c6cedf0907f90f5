package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/entity"
	"github.com/hasc-tools/ndaa-intake/internal/extract"
	"github.com/hasc-tools/ndaa-intake/internal/reconcile"
)

// stubParser returns canned text per filename; Content is ignored.
type stubParser struct {
	texts map[string]string
	fail  map[string]error
}

func (s *stubParser) Parse(_ context.Context, doc extract.RawDocument) (string, error) {
	if err, ok := s.fail[doc.Filename]; ok {
		return "", err
	}
	return s.texts[doc.Filename], nil
}

func newTestProcessor(parser extract.TextParser) *Processor {
	heur := common.DefaultHeuristics()
	fields := extract.NewFieldExtractor(heur, nil)
	return NewProcessor(nil, parser, fields, reconcile.NewMerger(nil), heur)
}

func TestProcessDocumentUsesUploadFallback(t *testing.T) {
	p := newTestProcessor(&stubParser{texts: map[string]string{
		"epirus.pdf": "Requesting Organization: Epirus Defense\nNo figure given.",
	}})

	cand, err := p.ProcessDocument(context.Background(), extract.RawDocument{Filename: "epirus.pdf", Format: constants.PDF})
	require.NoError(t, err)
	assert.Equal(t, "Epirus Defense", cand.OrganizationName)
	assert.Equal(t, common.DefaultHeuristics().UploadFallbackCents, cand.RequestAmountCents)
}

func TestProcessBatchUsesBatchFallback(t *testing.T) {
	p := newTestProcessor(&stubParser{texts: map[string]string{
		"epirus.pdf": "Requesting Organization: Epirus Defense\nNo figure given.",
	}})

	result, err := p.ProcessBatch(context.Background(), []extract.RawDocument{
		{Filename: "epirus.pdf", Format: constants.PDF},
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.Upserts, 1)
	assert.Equal(t, common.DefaultHeuristics().BatchFallbackCents, result.Upserts[0].Record.RequestAmountCents)
}

func TestProcessBatchCollectsErrorsWithoutAborting(t *testing.T) {
	p := newTestProcessor(&stubParser{
		texts: map[string]string{
			"good.pdf": "Requesting Organization: Shield AI\n$2 million for autonomy.",
		},
		fail: map[string]error{
			"bad.pdf": common.NewAppError("PARSE_FAILURE", "bad.pdf", common.ErrParseFailure),
		},
	})

	result, err := p.ProcessBatch(context.Background(), []extract.RawDocument{
		{Filename: "bad.pdf", Format: constants.PDF},
		{Filename: "good.pdf", Format: constants.PDF},
	}, nil)
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "bad.pdf", result.Errors[0].Filename)

	require.Len(t, result.Upserts, 1)
	assert.Equal(t, entity.OpInsert, result.Upserts[0].Op)
	assert.Equal(t, "Shield AI", result.Upserts[0].Record.OrganizationName)
}

func TestProcessBatchMatchesExistingRecords(t *testing.T) {
	existing := []entity.FundingRequest{
		{ID: uuid.New(), OrganizationName: "Shield AI", VoteStatus: constants.VoteYes, Tier: "Tier 1 (Priority)"},
	}
	p := newTestProcessor(&stubParser{texts: map[string]string{
		"shield.pdf": "Requesting Organization: Shield AI\n$2 million for autonomy.",
		"new.pdf":    "Requesting Organization: Castelion\n$3 million for strike.",
	}})

	result, err := p.ProcessBatch(context.Background(), []extract.RawDocument{
		{Filename: "shield.pdf", Format: constants.PDF},
		{Filename: "new.pdf", Format: constants.PDF},
	}, existing)
	require.NoError(t, err)
	require.Len(t, result.Upserts, 2)

	byOp := map[entity.UpsertOp]entity.UpsertInstruction{}
	for _, ins := range result.Upserts {
		byOp[ins.Op] = ins
	}

	update := byOp[entity.OpUpdate]
	assert.Equal(t, existing[0].ID, update.ID)
	assert.Equal(t, constants.VoteYes, update.Record.VoteStatus)
	assert.Equal(t, int64(200_000_000), update.Record.RequestAmountCents)

	insert := byOp[entity.OpInsert]
	assert.Equal(t, "Castelion", insert.Record.OrganizationName)
}

func TestProcessDocumentPropagatesParserError(t *testing.T) {
	p := newTestProcessor(&stubParser{fail: map[string]error{
		"x.docx": common.ErrUnsupportedMediaType,
	}})
	_, err := p.ProcessDocument(context.Background(), extract.RawDocument{Filename: "x.docx"})
	assert.Error(t, err)
}
