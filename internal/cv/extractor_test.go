package cv

import (
	"context"
	"errors"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOCR struct {
	text  string
	err   error
	calls int
}

func (s *stubOCR) RecognizePDF(context.Context, []byte) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestLayoutText(t *testing.T) {
	runs := []pdf.Text{
		{X: 10, Y: 680, W: 30, S: "Python"},
		{X: 35, Y: 700, W: 20, S: "Doe"},
		{X: 10, Y: 700.5, W: 20, S: "Jane"},
		{X: 40.5, Y: 681, W: 10, S: "3"},
		{X: 60, Y: 680, W: 5, S: ""},
	}
	assert.Equal(t, "Jane Doe\nPython3", layoutText(runs))
	assert.Equal(t, "", layoutText(nil))
}

func TestDocxParagraphs(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>Jane</w:t></w:r><w:r><w:t xml:space="preserve"> Doe</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="Normal"/></w:pPr></w:p>
<w:p><w:r><w:t>Skills</w:t><w:tab/><w:t>Go</w:t></w:r></w:p>
<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>
</w:body></w:document>`

	got, err := docxParagraphs(body)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe", "Skills\tGo", "Line one\nLine two"}, got)
}

func TestExtractorRejectsUnsupportedAndEmpty(t *testing.T) {
	ocr := &stubOCR{text: "never used"}
	ex := NewExtractor(ocr)
	ctx := context.Background()

	assert.Equal(t, "", ex.ExtractText(ctx, NewRawDocument("resume.txt", []byte("Jane Doe"))))
	assert.Equal(t, "", ex.ExtractText(ctx, NewRawDocument("resume.pdf", nil)))
	assert.Zero(t, ocr.calls)
}

func TestExtractorFallsBackToOCR(t *testing.T) {
	ctx := context.Background()
	doc := NewRawDocument("SCAN.PDF", []byte("not really a pdf"))

	ocr := &stubOCR{text: "  Jane Doe\r\nﬁnance analyst  "}
	assert.Equal(t, "Jane Doe\nfinance analyst", NewExtractor(ocr).ExtractText(ctx, doc))
	assert.Equal(t, 1, ocr.calls)

	failing := &stubOCR{err: errors.New("tesseract missing")}
	assert.Equal(t, "", NewExtractor(failing).ExtractText(ctx, doc))

	assert.Equal(t, "", NewExtractor(nil).ExtractText(ctx, doc))
}

func TestExtractorBrokenDocxYieldsEmptyText(t *testing.T) {
	doc := NewRawDocument("resume.DOCX", []byte("PK not a zip"))
	assert.Equal(t, "", NewExtractor(nil).ExtractText(context.Background(), doc))
}

func TestDetectType(t *testing.T) {
	kind, ok := DetectType("Resume.PDF")
	assert.True(t, ok)
	assert.Equal(t, DocumentPDF, kind)

	kind, ok = DetectType("cv.docx")
	assert.True(t, ok)
	assert.Equal(t, DocumentDOCX, kind)

	_, ok = DetectType("cv.doc")
	assert.False(t, ok)
}
