package blob

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	key := NewKey(42, "Resume.PDF")
	assert.True(t, strings.HasPrefix(key, "resumes/42/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	require.NoError(t, store.Put(ctx, key, []byte("%PDF-1.4"), "application/pdf"))
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), got)

	_, err = store.Get(ctx, "resumes/42/missing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStoreRejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../etc/passwd", "/abs/key", ""} {
		assert.Error(t, store.Put(context.Background(), key, []byte("x"), ""), key)
	}
}

func TestNewKeyIsUnique(t *testing.T) {
	assert.NotEqual(t, NewKey(1, "a.docx"), NewKey(1, "a.docx"))
}
