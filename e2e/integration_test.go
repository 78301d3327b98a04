//go:build e2e

// Package e2e contains end-to-end tests that run the full dataset pipeline:
// load, lookup, mutation, translation merge, save, reload.
// Run with: go test -tags=e2e -v ./e2e/...
package e2e

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacentio/datadex/datafile"
	"github.com/jacentio/datadex/datamap"
)

const monstersJSON = `[
  {
    "id": 100,
    "name": {"en": "Great Jagras", "ja": "ドスジャグラス"},
    "ecology": "fanged wyvern",
    "size": "large"
  },
  {
    "id": 101,
    "name": {"en": "Rathalos", "ja": "リオレウス"},
    "ecology": "flying wyvern",
    "size": "large",
    "elements": ["fire"]
  },
  {
    "name": {"en": "Kestodon"},
    "ecology": "herbivore",
    "size": "small"
  }
]`

const translationsCSV = `en,fr,de
Great Jagras,Great Jagras,Groß-Jagras
Rathalos,Rathalos,Rathalos
Kestodon,Kestodon,Kestodon
`

func TestDatasetPipeline(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "monsters.json")
	require.NoError(t, os.WriteFile(src, []byte(monstersJSON), 0o644))

	m, err := datafile.Load(src, datafile.Options{ValidateLanguages: true})
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())

	// Explicit ids are honored and generation continues past them.
	assert.Equal(t, []int64{100, 101, 102}, m.IDs())

	// Reverse lookups work across languages.
	id, ok := m.IDOf("ja", "リオレウス")
	require.True(t, ok)
	assert.Equal(t, int64(101), id)

	names, err := m.Names("en").Slice()
	require.NoError(t, err)
	assert.Equal(t, []string{"Great Jagras", "Rathalos", "Kestodon"}, names)

	// Mutate: slot a field in after an existing one and rename a record.
	rec, err := m.Get(100)
	require.NoError(t, err)
	require.NoError(t, rec.SetAfter("habitat", datamap.String("Ancient Forest"), "ecology"))
	assert.Equal(t, []string{"name", "ecology", "habitat", "size"}, rec.Fields())

	rename := datamap.NewDict().
		Set("en", datamap.String("Great Jagras")).
		Set("ja", datamap.String("ドスジャグラス")).
		Set("pt", datamap.String("Grande Jagras"))
	require.NoError(t, rec.Set("name", rename))
	id, ok = m.IDOf("pt", "Grande Jagras")
	require.True(t, ok)
	assert.Equal(t, int64(100), id)

	// Merge a translation table keyed on English names.
	require.NoError(t, datafile.MergeNamesCSV(m, strings.NewReader(translationsCSV), "en"))
	id, ok = m.IDOf("de", "Groß-Jagras")
	require.True(t, ok)
	assert.Equal(t, int64(100), id)

	// Save, reload, and save again: the round trip is byte-stable.
	out := filepath.Join(dir, "out.json")
	require.NoError(t, datafile.Save(out, m))

	m2, err := datafile.Load(out, datafile.Options{})
	require.NoError(t, err)
	require.Equal(t, m.IDs(), m2.IDs())

	var first, second bytes.Buffer
	require.NoError(t, datafile.Encode(&first, m))
	require.NoError(t, datafile.Encode(&second, m2))
	assert.Equal(t, first.String(), second.String())

	// Reloaded records carry the merged translations and field order.
	rec2, err := m2.Get(100)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "ecology", "habitat", "size"}, rec2.Fields())
	name, err := rec2.Name("de")
	require.NoError(t, err)
	assert.Equal(t, "Groß-Jagras", name)
}
