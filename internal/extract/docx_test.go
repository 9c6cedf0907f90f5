package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/common"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseDOCX(t *testing.T) {
	doc := buildDOCX(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Requesting Organization:</w:t><w:tab/><w:t>Epirus Defense</w:t></w:r></w:p>
    <w:p><w:r><w:t>First line</w:t><w:br/><w:t>Second line</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := parseDOCX(doc)
	require.NoError(t, err)
	assert.Contains(t, text, "Requesting Organization:\tEpirus Defense\n")
	assert.Contains(t, text, "First line\nSecond line")
}

func TestParseDOCXMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = parseDOCX(buf.Bytes())
	assert.ErrorContains(t, err, "word/document.xml")
}

func TestParseDOCXNotAZip(t *testing.T) {
	_, err := parseDOCX([]byte("this is not a zip archive"))
	assert.Error(t, err)
}

func TestParserUnsupportedFormat(t *testing.T) {
	p := NewParser(nil)
	_, err := p.Parse(context.Background(), RawDocument{Filename: "x.txt", Format: "TXT"})
	assert.True(t, errors.Is(err, common.ErrUnsupportedMediaType))
}

func TestParserWrapsParseFailures(t *testing.T) {
	p := NewParser(nil)
	_, err := p.Parse(context.Background(), RawDocument{
		Filename: "broken.docx",
		Format:   constants.DOCX,
		Content:  []byte("not a docx"),
	})
	assert.True(t, errors.Is(err, common.ErrParseFailure))
}

func TestNormalizeText(t *testing.T) {
	in := "Label:   value  \r\nnext\tline\n\n\n\nafter blanks  "
	want := "Label: value\nnext line\n\nafter blanks"
	assert.Equal(t, want, NormalizeText(in))
}
