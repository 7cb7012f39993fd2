package cv

import (
	"context"
	"path/filepath"
	"strings"
)

type DocumentType string

const (
	DocumentPDF  DocumentType = "pdf"
	DocumentDOCX DocumentType = "docx"
)

// RawDocument is an uploaded resume as received, before any decoding.
type RawDocument struct {
	Name string
	Type DocumentType
	Data []byte
}

// DetectType maps a filename to a supported document type.
// Extensions are matched case-insensitively.
func DetectType(filename string) (DocumentType, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return DocumentPDF, true
	case ".docx":
		return DocumentDOCX, true
	}
	return "", false
}

func NewRawDocument(name string, data []byte) RawDocument {
	kind, _ := DetectType(name)
	return RawDocument{Name: name, Type: kind, Data: data}
}

func (d RawDocument) kind() DocumentType {
	if d.Type != "" {
		return d.Type
	}
	kind, _ := DetectType(d.Name)
	return kind
}

// TextExtractor turns a document into plain text. Implementations never
// fail: an unreadable document yields an empty string.
type TextExtractor interface {
	ExtractText(ctx context.Context, doc RawDocument) string
}

// ImageOCR recognizes text on the rendered pages of a scanned PDF.
type ImageOCR interface {
	RecognizePDF(ctx context.Context, data []byte) (string, error)
}

// Entity is a named entity found by an EntityRecognizer, e.g. {PERSON, "Jane Doe"}.
type Entity struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

const EntityPerson = "PERSON"

// EntityRecognizer finds named entities in a text snippet.
type EntityRecognizer interface {
	RecognizeEntities(ctx context.Context, snippet string) ([]Entity, error)
}
