package cv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Parser turns resumes into ParsedProfiles. It holds no per-parse state
// and is safe for concurrent use as long as its collaborators are.
type Parser struct {
	extractor  TextExtractor
	recognizer EntityRecognizer
	phone      PhoneRule
	logger     *slog.Logger
}

// NewParser wires a parser. recognizer may be nil; extractor defaults to
// an Extractor without OCR.
func NewParser(extractor TextExtractor, recognizer EntityRecognizer, phone PhoneRule) *Parser {
	if extractor == nil {
		extractor = NewExtractor(nil)
	}
	return &Parser{
		extractor:  extractor,
		recognizer: recognizer,
		phone:      phone,
		logger:     slog.Default().With("component", "parser"),
	}
}

// ParseFile reads a resume from disk and parses it.
func (p *Parser) ParseFile(ctx context.Context, path string) (*ParsedProfile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDocumentUnavailable, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	return p.Parse(ctx, NewRawDocument(filepath.Base(path), data))
}

// Parse extracts text from doc and builds a profile from it. The profile
// is nil only when there is no document, the format is unsupported, or
// the document yields no text.
func (p *Parser) Parse(ctx context.Context, doc RawDocument) (*ParsedProfile, error) {
	if len(doc.Data) == 0 {
		return nil, ErrDocumentUnavailable
	}
	if doc.kind() == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, doc.Name)
	}

	text := p.extractor.ExtractText(ctx, doc)
	profile := p.ParseText(ctx, text)
	if profile == nil {
		return nil, ErrNoText
	}

	p.logger.Info("resume parsed",
		"name", doc.Name,
		"text_length", len(text),
		"skills", len(profile.Skills),
	)
	return profile, nil
}

// ParseText runs every field extractor over already-extracted text.
func (p *Parser) ParseText(ctx context.Context, text string) *ParsedProfile {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	email := ExtractEmail(text)
	sections := SplitSections(text)
	linkedin, github := ExtractLinks(text)

	return &ParsedProfile{
		Name:        ExtractName(ctx, text, email, p.recognizer),
		Email:       email,
		Phone:       p.phone.Find(text),
		Gender:      ExtractGender(text),
		Nationality: ExtractNationality(text),
		Address:     ExtractAddress(text),
		Summary:     optional(sections.Summary),
		Education:   joinLines(CleanEducation(sections.Education)),
		Experience:  joinLines(CleanExperience(sections.Experience)),
		LinkedIn:    linkedin,
		GitHub:      github,
		Skills:      NormalizeSkills(sections.Skills, text),
	}
}

func joinLines(in []string) *string {
	if len(in) == 0 {
		return nil
	}
	s := strings.Join(in, "\n")
	return &s
}
