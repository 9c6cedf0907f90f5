package reconcile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/entity"
	"github.com/hasc-tools/ndaa-intake/internal/extract"
)

func TestAuditAttachesAndRecovers(t *testing.T) {
	heur := common.DefaultHeuristics()
	fields := extract.NewFieldExtractor(heur, nil)
	auditor := NewAuditor(fields, NewMerger(nil), heur, nil)

	existing := []entity.FundingRequest{
		{ID: uuid.New(), OrganizationName: "Epirus Defense"},
	}
	paths := []string{
		"/inbox/Epirus Defense.pdf",
		"/inbox/Epirus Defense (1).pdf",
		"/inbox/Saronic Technologies FY27 NDAA Request.pdf",
	}

	result, err := auditor.Audit(paths, existing)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Groups)

	require.Len(t, result.Attachments, 1)
	assert.Equal(t, existing[0].ID, result.Attachments[0].ID)
	assert.Equal(t, "/inbox/Epirus Defense.pdf", result.Attachments[0].Path)

	require.Len(t, result.Inserts, 1)
	rec := result.Inserts[0].Record
	assert.Equal(t, entity.OpInsert, result.Inserts[0].Op)
	assert.Equal(t, "Saronic Technologies", rec.OrganizationName)
	assert.Equal(t, heur.RecoveredAmountCents, rec.RequestAmountCents)
	assert.Equal(t, recoveredSummary, rec.BriefSummary)
	assert.Equal(t, recoveredDistrict, rec.DistrictImpact)
	assert.Equal(t, "/inbox/Saronic Technologies FY27 NDAA Request.pdf", rec.DocumentPath)
}

func TestAuditEmptyListing(t *testing.T) {
	heur := common.DefaultHeuristics()
	fields := extract.NewFieldExtractor(heur, nil)
	auditor := NewAuditor(fields, NewMerger(nil), heur, nil)

	result, err := auditor.Audit(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, result.Groups)
	assert.Empty(t, result.Attachments)
	assert.Empty(t, result.Inserts)
}
