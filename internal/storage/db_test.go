package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB("sqlite://" + filepath.Join(t.TempDir(), "cv.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)

	db.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
	require.NoError(t, db.EnsureSchema(context.Background()))
	return db
}

func seedCandidate(t *testing.T, db *DB, name, email string) int64 {
	t.Helper()
	id, err := db.CreateCandidate(context.Background(), &Candidate{Name: name, Email: email})
	require.NoError(t, err)
	return id
}

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		dsn     string
		dialect Dialect
		out     string
	}{
		{"postgres://u:p@localhost/cv?sslmode=disable", DialectPostgres, "postgres://u:p@localhost/cv?sslmode=disable"},
		{"host=localhost dbname=cv", DialectPostgres, "host=localhost dbname=cv"},
		{"sqlite:///tmp/cv.db", DialectSQLite, "/tmp/cv.db"},
		{"file:cv.db?cache=shared", DialectSQLite, "file:cv.db?cache=shared"},
		{":memory:", DialectSQLite, ":memory:"},
		{"data/cv.sqlite", DialectSQLite, "data/cv.sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			d, out := detectDialect(tt.dsn)
			assert.Equal(t, tt.dialect, d)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestRebind(t *testing.T) {
	pg := &DB{dialect: DialectPostgres}
	assert.Equal(t, "UPDATE t SET a = $1 WHERE id = $2", pg.rebind("UPDATE t SET a = ? WHERE id = ?"))

	lite := &DB{dialect: DialectSQLite}
	assert.Equal(t, "SELECT ? ", lite.rebind("SELECT ? "))
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, db.EnsureSchema(context.Background()))
}

func TestGetCandidate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	id := seedCandidate(t, db, "Alice", "alice@example.com")

	c, err := db.GetCandidate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Name)
	assert.Equal(t, "alice@example.com", c.Email)
	assert.Equal(t, "", c.Phone)
	assert.Equal(t, "2024-03-01 09:30:00", c.CreatedAt)

	_, err = db.GetCandidate(ctx, id+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileUpsertAndReset(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	id := seedCandidate(t, db, "Bob", "bob@example.com")

	got, err := db.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got, "missing profile is not an error")

	p := &CandidateProfile{
		CandidateID: id,
		Name:        "Bob Stone",
		Gender:      "Male",
		Summary:     "Data engineer",
		Education:   "B.Sc Physics",
		LinkedIn:    "https://www.linkedin.com/in/bob",
	}
	require.NoError(t, db.UpsertProfile(ctx, p))

	p.Summary = "Senior data engineer"
	require.NoError(t, db.UpsertProfile(ctx, p))

	got, err = db.GetProfile(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Senior data engineer", got.Summary)
	assert.Equal(t, "", got.Email)

	require.NoError(t, db.ResetResumeFields(ctx, id))
	got, err = db.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bob Stone", got.Name)
	assert.Equal(t, "Male", got.Gender)
	assert.Empty(t, got.Summary)
	assert.Empty(t, got.Education)
	assert.Empty(t, got.LinkedIn)
}

func TestReplaceSkillsIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	id := seedCandidate(t, db, "Carol", "carol@example.com")

	skills := []string{"Python", "Go", "Docker"}
	require.NoError(t, db.ReplaceSkills(ctx, id, skills))
	require.NoError(t, db.ReplaceSkills(ctx, id, skills))

	got, err := db.CandidateSkills(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, skills, got)

	require.NoError(t, db.ReplaceSkills(ctx, id, nil))
	got, err = db.CandidateSkills(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetJobSkills(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.CreateJob(ctx, &Job{Title: "Backend Engineer", Skills: "Python,  Go , ,SQL"})
	require.NoError(t, err)

	skills, err := db.GetJobSkills(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Python, Go, SQL", skills)

	_, err = db.GetJobSkills(ctx, id+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCVFiles(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedCandidate(t, db, "Alice", "alice@example.com")
	bob := seedCandidate(t, db, "Bob", "bob@example.com")

	none, err := db.LatestCVFile(ctx, alice)
	require.NoError(t, err)
	assert.Nil(t, none)

	for _, f := range []*CVFile{
		{CandidateID: alice, Filename: "old.pdf", ObjectKey: "a/1.pdf", FileType: "pdf", FileSize: 10, SHA256: "aa"},
		{CandidateID: alice, Filename: "new.docx", ObjectKey: "a/2.docx", FileType: "docx", FileSize: 20, SHA256: "bb"},
		{CandidateID: bob, Filename: "bob.pdf", ObjectKey: "b/1.pdf", FileType: "pdf", FileSize: 30, SHA256: "cc"},
	} {
		_, err := db.SaveCVFile(ctx, f)
		require.NoError(t, err)
	}

	latest, err := db.LatestCVFile(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "new.docx", latest.Filename)

	all, err := db.LatestCVFiles(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a/2.docx", all[0].ObjectKey)
	assert.Equal(t, "b/1.pdf", all[1].ObjectKey)

	capped, err := db.LatestCVFiles(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, capped, 1)
}

func TestParseJobStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	id := seedCandidate(t, db, "Alice", "alice@example.com")

	jobID, err := db.CreateParseJob(ctx, id)
	require.NoError(t, err)

	job, err := db.GetParseJob(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, JobPending, job.Status)
	assert.Nil(t, job.ErrorMessage)

	msg := "no text"
	require.NoError(t, db.UpdateJobStatus(ctx, jobID, JobFailed, &msg))
	job, err = db.GetParseJob(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, JobFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Equal(t, "no text", *job.ErrorMessage)

	_, err = db.GetParseJob(ctx, jobID+10)
	assert.ErrorIs(t, err, ErrNotFound)
}
