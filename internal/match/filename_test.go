package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/extract"
)

func TestGroupFiles(t *testing.T) {
	fields := extract.NewFieldExtractor(common.DefaultHeuristics(), nil)

	paths := []string{
		"/inbox/Epirus Defense.pdf",
		"/inbox/Epirus Defense (1).pdf",
		"/inbox/Epirus Defense FY27 NDAA Request Form.docx",
		"/inbox/Astranis FY27 NDAA Request.pdf",
		"/inbox/Mills FY27 NDAA Request Astranis (2).pdf",
		"/inbox/Saronic Technologies.pdf",
	}

	groups := GroupFiles(paths, fields)
	require.Len(t, groups, 3)

	assert.Equal(t, "epirus defense", groups[0].Key)
	assert.Len(t, groups[0].Files, 3)
	assert.Equal(t, "/inbox/Epirus Defense.pdf", groups[0].Files[0])

	assert.Equal(t, "astranis", groups[1].Key)
	assert.Len(t, groups[1].Files, 2)

	assert.Equal(t, "saronic technologies", groups[2].Key)
	assert.Len(t, groups[2].Files, 1)
}

func TestGroupFilesPreservesListingOrder(t *testing.T) {
	fields := extract.NewFieldExtractor(common.DefaultHeuristics(), nil)
	groups := GroupFiles([]string{"/a/Zulu.pdf", "/a/Alpha.pdf", "/a/Zulu (1).pdf"}, fields)

	require.Len(t, groups, 2)
	assert.Equal(t, "zulu", groups[0].Key)
	assert.Equal(t, "alpha", groups[1].Key)
}
