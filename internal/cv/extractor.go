package cv

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"code.sajari.com/docconv"
	"golang.org/x/text/unicode/norm"
)

// Extractor is the default TextExtractor. PDFs are decoded glyph by glyph,
// then through poppler, then through OCR; DOCX files paragraph by paragraph
// with docconv as a fallback.
type Extractor struct {
	ocr    ImageOCR
	logger *slog.Logger
}

// NewExtractor builds an Extractor. ocr may be nil, in which case scanned
// PDFs produce empty text.
func NewExtractor(ocr ImageOCR) *Extractor {
	return &Extractor{
		ocr:    ocr,
		logger: slog.Default().With("component", "extractor"),
	}
}

func (e *Extractor) ExtractText(ctx context.Context, doc RawDocument) string {
	if len(doc.Data) == 0 {
		return ""
	}

	var text string
	switch doc.kind() {
	case DocumentPDF:
		text = e.extractPDF(ctx, doc)
	case DocumentDOCX:
		text = e.extractDOCX(doc)
	default:
		e.logger.Debug("unsupported document type", "name", doc.Name)
		return ""
	}
	return normalizeText(text)
}

func (e *Extractor) extractPDF(ctx context.Context, doc RawDocument) string {
	text, err := pdfText(doc.Data)
	if err != nil {
		e.logger.Warn("pdf decode failed", "name", doc.Name, "error", err)
	}
	if strings.TrimSpace(text) != "" {
		return text
	}

	text, _, err = docconv.ConvertPDF(bytes.NewReader(doc.Data))
	if err != nil {
		e.logger.Debug("pdftotext fallback failed", "name", doc.Name, "error", err)
	}
	if strings.TrimSpace(text) != "" {
		return text
	}

	if e.ocr == nil {
		return ""
	}
	e.logger.Info("pdf has no text layer, running ocr", "name", doc.Name)
	text, err = e.ocr.RecognizePDF(ctx, doc.Data)
	if err != nil {
		e.logger.Warn("ocr failed", "name", doc.Name, "error", err)
		return ""
	}
	return text
}

func (e *Extractor) extractDOCX(doc RawDocument) string {
	text, err := docxText(doc.Data)
	if err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	if err != nil {
		e.logger.Warn("docx decode failed", "name", doc.Name, "error", err)
	}

	text, _, err = docconv.ConvertDocx(bytes.NewReader(doc.Data))
	if err != nil {
		e.logger.Debug("docconv fallback failed", "name", doc.Name, "error", err)
		return ""
	}
	return text
}

// normalizeText folds compatibility characters (ligatures from PDF fonts,
// full-width forms) and line endings, then trims the result.
func normalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}
