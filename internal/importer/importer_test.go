package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/entity"
)

// memRepo records applied instructions in memory.
type memRepo struct {
	applied []entity.UpsertInstruction
}

func (m *memRepo) ListRequests(context.Context) ([]entity.FundingRequest, error)   { return nil, nil }
func (m *memRepo) ListAuthorized(context.Context) ([]entity.FundingRequest, error) { return nil, nil }
func (m *memRepo) SetDocumentPath(context.Context, uuid.UUID, string) error        { return nil }
func (m *memRepo) ApplyUpsert(_ context.Context, ins entity.UpsertInstruction) (*entity.FundingRequest, error) {
	m.applied = append(m.applied, ins)
	rec := ins.Record
	return &rec, nil
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportSeed(t *testing.T) {
	repo := &memRepo{}
	im, err := NewImporter(repo, nil)
	require.NoError(t, err)

	path := writeSeed(t, `[
  {
    "organization_name": "Epirus Defense",
    "request_amount_cents": 400000000,
    "domain": "General",
    "vote_status": "yes",
    "is_staff_recommended": true,
    "warfighter_services": ["Army"]
  },
  {
    "organization_name": "Hudson Institute",
    "request_amount_cents": 0,
    "is_drl": true
  }
]`)

	result, err := im.ImportSeed(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Empty(t, result.Errors)
	require.Len(t, repo.applied, 2)

	first := repo.applied[0].Record
	assert.Equal(t, entity.OpInsert, repo.applied[0].Op)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, "Epirus Defense", first.OrganizationName)
	assert.Equal(t, "$4 MILLION", first.FormattedAmount)
	assert.Equal(t, constants.VoteYes, first.VoteStatus)
	assert.True(t, first.IsStaffRecommended)
	assert.Equal(t, constants.TierUnderReview, first.Tier)
	assert.Equal(t, []constants.Service{constants.ServiceArmy}, first.WarfighterServices)
	assert.True(t, first.IsHASCJurisdiction)

	second := repo.applied[1].Record
	assert.True(t, second.IsDRL)
	assert.Equal(t, constants.VotePending, second.VoteStatus)
	assert.Equal(t, "Standard PE", second.ProgramElement)
}

func TestImportSeedRejectsInvalidRecordsIndividually(t *testing.T) {
	repo := &memRepo{}
	im, err := NewImporter(repo, nil)
	require.NoError(t, err)

	path := writeSeed(t, `[
  {"organization_name": "", "request_amount_cents": 100000},
  {"organization_name": "Valid Org", "request_amount_cents": -5},
  {"organization_name": "Valid Org", "request_amount_cents": 100000, "vote_status": "maybe"},
  {"organization_name": "Valid Org", "request_amount_cents": 100000, "id": "not-a-uuid"},
  {"organization_name": "Survivor", "request_amount_cents": 100000}
]`)

	result, err := im.ImportSeed(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Len(t, result.Errors, 4)
	require.Len(t, repo.applied, 1)
	assert.Equal(t, "Survivor", repo.applied[0].Record.OrganizationName)
}

func TestImportSeedMalformedFile(t *testing.T) {
	repo := &memRepo{}
	im, err := NewImporter(repo, nil)
	require.NoError(t, err)

	path := writeSeed(t, `{"not": "an array"}`)
	_, err = im.ImportSeed(context.Background(), path)
	assert.Error(t, err)
}

func TestImportSeedExplicitID(t *testing.T) {
	repo := &memRepo{}
	im, err := NewImporter(repo, nil)
	require.NoError(t, err)

	id := uuid.New()
	path := writeSeed(t, `[{"organization_name": "Pinned", "request_amount_cents": 100000, "id": "`+id.String()+`"}]`)

	result, err := im.ImportSeed(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted)
	assert.Equal(t, id, repo.applied[0].Record.ID)
}
