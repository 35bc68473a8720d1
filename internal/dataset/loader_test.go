package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultOpts = Options{TextColumn: "reviews.text", IDColumn: "id"}

func TestLoad(t *testing.T) {
	records, err := Load(filepath.Join("testdata", "reviews.csv"), defaultOpts)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "AVqk-1", records[0].ID)
	assert.Equal(t, 1, records[0].Row)
	assert.Equal(t, "This product is amazing, exceeded my expectations!", records[0].Text)

	// empty id falls back to the row number, empty text is absent
	assert.Equal(t, "3", records[2].ID)
	assert.Nil(t, records[2].Text)
	assert.False(t, records[2].HasText())

	assert.Equal(t, "AVqk-4", records[3].ID)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), defaultOpts)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRead_MissingTextColumn(t *testing.T) {
	_, err := Read(strings.NewReader("id,body\n1,hello\n"), defaultOpts)
	assert.ErrorIs(t, err, ErrFormat)
	assert.ErrorContains(t, err, "reviews.text")
}

func TestRead_EmptyFile(t *testing.T) {
	_, err := Read(strings.NewReader(""), defaultOpts)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestRead_Malformed(t *testing.T) {
	_, err := Read(strings.NewReader("reviews.text\na\"b\n"), Options{TextColumn: "reviews.text"})
	assert.ErrorIs(t, err, ErrFormat)
}

func TestRead_NoIDColumn(t *testing.T) {
	records, err := Read(strings.NewReader("\uFEFFreviews.text\ngood\n\nbad\n"), Options{TextColumn: "reviews.text", IDColumn: "id"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "good", records[0].Text)
	assert.Equal(t, "2", records[1].ID)
}
