package profile

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"cv-intake/internal/blob"
	"cv-intake/internal/cv"
	"cv-intake/internal/storage"
)

// FileStore records uploaded resume metadata.
type FileStore interface {
	SaveCVFile(ctx context.Context, f *storage.CVFile) (int64, error)
	LatestCVFile(ctx context.Context, candidateID int64) (*storage.CVFile, error)
}

// Archive keeps uploaded resumes so they can be parsed again later.
type Archive struct {
	files FileStore
	blobs blob.Store
}

func NewArchive(files FileStore, blobs blob.Store) *Archive {
	return &Archive{files: files, blobs: blobs}
}

var contentTypes = map[cv.DocumentType]string{
	cv.DocumentPDF:  "application/pdf",
	cv.DocumentDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Save stores the bytes and the metadata record. Unsupported formats are
// rejected before anything is written.
func (a *Archive) Save(ctx context.Context, candidateID int64, filename string, data []byte) (*storage.CVFile, error) {
	kind, ok := cv.DetectType(filename)
	if !ok {
		return nil, fmt.Errorf("%w: %s", cv.ErrUnsupportedType, filename)
	}
	if len(data) == 0 {
		return nil, cv.ErrDocumentUnavailable
	}

	key := blob.NewKey(candidateID, filename)
	if err := a.blobs.Put(ctx, key, data, contentTypes[kind]); err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	sum := sha256.Sum256(data)
	rec := &storage.CVFile{
		CandidateID: candidateID,
		Filename:    filename,
		ObjectKey:   key,
		FileType:    string(kind),
		FileSize:    int64(len(data)),
		SHA256:      hex.EncodeToString(sum[:]),
	}
	if _, err := a.files.SaveCVFile(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Latest loads the newest resume of a candidate. It returns
// cv.ErrDocumentUnavailable when the candidate never uploaded one.
func (a *Archive) Latest(ctx context.Context, candidateID int64) (cv.RawDocument, error) {
	rec, err := a.files.LatestCVFile(ctx, candidateID)
	if err != nil {
		return cv.RawDocument{}, err
	}
	if rec == nil {
		return cv.RawDocument{}, cv.ErrDocumentUnavailable
	}
	return a.Load(ctx, *rec)
}

// Load fetches the bytes of a recorded resume.
func (a *Archive) Load(ctx context.Context, rec storage.CVFile) (cv.RawDocument, error) {
	data, err := a.blobs.Get(ctx, rec.ObjectKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return cv.RawDocument{}, fmt.Errorf("%w: %s", cv.ErrDocumentUnavailable, rec.ObjectKey)
		}
		return cv.RawDocument{}, err
	}
	return cv.RawDocument{Name: rec.Filename, Type: cv.DocumentType(strings.ToLower(rec.FileType)), Data: data}, nil
}
