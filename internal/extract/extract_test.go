package extract_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estudaia/internal/domain"
	"estudaia/internal/extract"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const docxBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t>Lei de Ohm</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">V = R </w:t></w:r><w:r><w:t>· I</w:t></w:r><w:r><w:tab/><w:t>(1)</w:t></w:r></w:p>
  </w:body>
</w:document>`

func slideXML(texts ...string) string {
	body := ""
	for _, t := range texts {
		body += `<a:p><a:r><a:t>` + t + `</a:t></a:r></a:p>`
	}
	return `<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree><p:sp><p:txBody>` + body + `</p:txBody></p:sp></p:spTree></p:cSld></p:sld>`
}

func TestExtract_DOCX(t *testing.T) {
	data := buildZip(t, map[string]string{
		"[Content_Types].xml": `<Types/>`,
		"word/document.xml":   docxBody,
	})

	text, err := extract.New().Extract(context.Background(), domain.FileTypeDOCX, data)
	require.NoError(t, err)
	assert.Equal(t, "Lei de Ohm\nV = R · I\t(1)", text)
}

func TestExtract_DOCX_MissingBody(t *testing.T) {
	data := buildZip(t, map[string]string{"word/styles.xml": `<w:styles/>`})

	_, err := extract.New().Extract(context.Background(), domain.FileTypeDOCX, data)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_PPTX_SlideOrder(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide10.xml":            slideXML("décimo"),
		"ppt/slides/slide2.xml":             slideXML("segundo", "bullet"),
		"ppt/slides/slide1.xml":             slideXML("primeiro"),
		"ppt/slides/_rels/slide1.xml.rels":  `<Relationships/>`,
		"ppt/slideLayouts/slideLayout1.xml": slideXML("layout"),
	})

	text, err := extract.New().Extract(context.Background(), domain.FileTypePPTX, data)
	require.NoError(t, err)
	assert.Equal(t, "primeiro\n\nsegundo\nbullet\n\ndécimo", text)
}

func TestExtract_PPTX_NoSlides(t *testing.T) {
	data := buildZip(t, map[string]string{"ppt/presentation.xml": `<p:presentation/>`})

	_, err := extract.New().Extract(context.Background(), domain.FileTypePPTX, data)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_InvalidArchives(t *testing.T) {
	reg := extract.New()
	for _, ft := range []domain.FileType{domain.FileTypePDF, domain.FileTypeDOCX, domain.FileTypePPTX} {
		_, err := reg.Extract(context.Background(), ft, []byte("definitely not a document"))
		assert.ErrorIs(t, err, domain.ErrExtractionFailed, string(ft))
	}
}

func TestExtract_UnsupportedType(t *testing.T) {
	_, err := extract.New().Extract(context.Background(), domain.FileType("txt"), []byte("x"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestExtract_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := extract.New().Extract(ctx, domain.FileTypeDOCX, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
