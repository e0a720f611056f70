package util

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
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

func TestExtractDOCX(t *testing.T) {
	docx := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Senior Python Developer</w:t></w:r></w:p>
    <w:p><w:r><w:t>Experience with Docker &amp; Kubernetes</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := ExtractDOCX(docx)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Python Developer")
	assert.Contains(t, text, "Experience with Docker & Kubernetes")
}

func TestExtractDOCX_NoDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractDOCX(buf.Bytes())

	assert.ErrorContains(t, err, "no document.xml")
}

func TestExtractDOCX_NotAZip(t *testing.T) {
	_, err := ExtractDOCX([]byte("plain text, not a zip"))

	assert.ErrorContains(t, err, "failed to open DOCX")
}

func TestExtractDOCX_EmptyDocument(t *testing.T) {
	docx := buildDocx(t, `<w:document><w:body><w:p></w:p></w:body></w:document>`)

	_, err := ExtractDOCX(docx)

	assert.ErrorContains(t, err, "no text could be extracted")
}

func TestExtractText_UnsupportedType(t *testing.T) {
	_, err := ExtractText([]byte("hello"), "resume.txt", false)

	assert.ErrorContains(t, err, "unsupported file type")
}

func TestExtractText_RoutesDocx(t *testing.T) {
	docx := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>hello world</w:t></w:r></w:p></w:body></w:document>`)

	text, err := ExtractText(docx, "resume.docx", false)

	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}
