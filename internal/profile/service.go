package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cv-intake/internal/cv"
	"cv-intake/internal/storage"
)

// Store is the persistence the profile service needs.
type Store interface {
	GetProfile(ctx context.Context, candidateID int64) (*storage.CandidateProfile, error)
	UpsertProfile(ctx context.Context, p *storage.CandidateProfile) error
	ResetResumeFields(ctx context.Context, candidateID int64) error
	ReplaceSkills(ctx context.Context, candidateID int64, skills []string) error
	CandidateSkills(ctx context.Context, candidateID int64) ([]string, error)
	GetCandidate(ctx context.Context, id int64) (*storage.Candidate, error)
}

// ResumeParser is satisfied by *cv.Parser.
type ResumeParser interface {
	Parse(ctx context.Context, doc cv.RawDocument) (*cv.ParsedProfile, error)
}

// View is what the API renders for a candidate.
type View struct {
	CandidateID int64          `json:"candidate_id"`
	Profile     DisplayProfile `json:"profile"`
	Education   []string       `json:"education_points"`
	Experience  []string       `json:"experience_points"`
	Skills      []string       `json:"skills"`
}

// IngestResult carries the fresh parse alongside the resolved view.
type IngestResult struct {
	Parsed *cv.ParsedProfile `json:"parsed"`
	View   View              `json:"view"`
}

type Service struct {
	store   Store
	parser  ResumeParser
	archive *Archive
	logger  *slog.Logger
}

// NewService wires the service. archive may be nil, in which case uploads
// are parsed but not kept.
func NewService(store Store, parser ResumeParser, archive *Archive) *Service {
	return &Service{
		store:   store,
		parser:  parser,
		archive: archive,
		logger:  slog.Default().With("component", "profile"),
	}
}

// Upload archives a new resume and ingests it.
func (s *Service) Upload(ctx context.Context, candidateID int64, filename string, data []byte) (*IngestResult, error) {
	doc := cv.NewRawDocument(filename, data)
	if s.archive != nil {
		rec, err := s.archive.Save(ctx, candidateID, filename, data)
		if err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "resume stored",
			"candidate_id", candidateID, "key", rec.ObjectKey, "sha256", rec.SHA256)
	}
	return s.Ingest(ctx, candidateID, doc)
}

// Reparse ingests the candidate's most recently uploaded resume again.
func (s *Service) Reparse(ctx context.Context, candidateID int64) (*IngestResult, error) {
	if s.archive == nil {
		return nil, cv.ErrDocumentUnavailable
	}
	doc, err := s.archive.Latest(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return s.Ingest(ctx, candidateID, doc)
}

// Ingest clears resume-derived fields, parses doc, writes every usable
// parsed field over the stored profile and replaces the skill rows.
// Running it twice on the same document leaves the same stored state.
func (s *Service) Ingest(ctx context.Context, candidateID int64, doc cv.RawDocument) (*IngestResult, error) {
	if err := s.store.ResetResumeFields(ctx, candidateID); err != nil {
		return nil, err
	}

	parsed, err := s.parser.Parse(ctx, doc)
	if err != nil {
		s.logger.WarnContext(ctx, "resume could not be parsed",
			"candidate_id", candidateID, "file", doc.Name, "error", err)
		return nil, err
	}

	stored, err := s.store.GetProfile(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = &storage.CandidateProfile{CandidateID: candidateID}
	}
	applyParsed(stored, parsed)
	if err := s.store.UpsertProfile(ctx, stored); err != nil {
		return nil, err
	}

	// A resume without skills clears the previous list.
	if err := s.store.ReplaceSkills(ctx, candidateID, parsed.Skills); err != nil {
		return nil, err
	}

	view, err := s.view(ctx, candidateID, stored, parsed)
	if err != nil {
		return nil, err
	}
	return &IngestResult{Parsed: parsed, View: view}, nil
}

// Display resolves the profile shown to the user. When nothing has been
// stored yet but a resume exists, it is parsed first.
func (s *Service) Display(ctx context.Context, candidateID int64) (View, error) {
	stored, err := s.store.GetProfile(ctx, candidateID)
	if err != nil {
		return View{}, err
	}
	if stored == nil && s.archive != nil {
		res, err := s.Reparse(ctx, candidateID)
		switch {
		case err == nil:
			return res.View, nil
		case errors.Is(err, cv.ErrDocumentUnavailable):
		default:
			s.logger.WarnContext(ctx, "auto-parse of stored resume failed",
				"candidate_id", candidateID, "error", err)
		}
	}
	return s.view(ctx, candidateID, stored, nil)
}

// ManualEdit holds user-entered values; nil leaves a field unchanged.
type ManualEdit struct {
	Name        *string
	Phone       *string
	Gender      *string
	Nationality *string
	Address     *string
	Summary     *string
	Education   *string
	Experience  *string
	LinkedIn    *string
	GitHub      *string
}

// SaveManual upserts user edits onto the stored profile.
func (s *Service) SaveManual(ctx context.Context, candidateID int64, edit ManualEdit) (View, error) {
	stored, err := s.store.GetProfile(ctx, candidateID)
	if err != nil {
		return View{}, err
	}
	if stored == nil {
		stored = &storage.CandidateProfile{CandidateID: candidateID}
	}

	for _, f := range []struct {
		dst *string
		v   *string
	}{
		{&stored.Name, edit.Name},
		{&stored.Phone, edit.Phone},
		{&stored.Gender, edit.Gender},
		{&stored.Nationality, edit.Nationality},
		{&stored.Address, edit.Address},
		{&stored.Summary, edit.Summary},
		{&stored.Education, edit.Education},
		{&stored.Experience, edit.Experience},
		{&stored.LinkedIn, edit.LinkedIn},
		{&stored.GitHub, edit.GitHub},
	} {
		if f.v != nil {
			*f.dst = *f.v
		}
	}

	if err := s.store.UpsertProfile(ctx, stored); err != nil {
		return View{}, err
	}
	return s.view(ctx, candidateID, stored, nil)
}

func (s *Service) view(ctx context.Context, candidateID int64, stored *storage.CandidateProfile, parsed *cv.ParsedProfile) (View, error) {
	var basic storage.Candidate
	acct, err := s.store.GetCandidate(ctx, candidateID)
	switch {
	case err == nil:
		basic = *acct
	case errors.Is(err, storage.ErrNotFound):
	default:
		return View{}, fmt.Errorf("load candidate %d: %w", candidateID, err)
	}

	skills, err := s.store.CandidateSkills(ctx, candidateID)
	if err != nil {
		return View{}, err
	}

	display := Merge(stored, parsed, basic)
	return View{
		CandidateID: candidateID,
		Profile:     display,
		Education:   FormatPoints(display.Education),
		Experience:  FormatPoints(display.Experience),
		Skills:      skills,
	}, nil
}
