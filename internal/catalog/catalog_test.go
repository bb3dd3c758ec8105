package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultCatalog(t *testing.T) {
	cat, err := New(nil)
	require.NoError(t, err)

	vehicles := cat.Vehicles()
	require.NotEmpty(t, vehicles)
	assert.Equal(t, "motor-bebek", vehicles[0].ID, "catalog order is preserved")

	for _, v := range vehicles {
		assert.NotEmpty(t, v.ID)
		assert.NotEmpty(t, v.Name)
		assert.Greater(t, v.KmPerLiter, 0.0)
	}
}

func TestNewRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "invalid json", raw: `{not json`},
		{name: "empty list", raw: `[]`},
		{name: "missing id", raw: `[{"name": "Van", "kmPerLiter": 10}]`},
		{name: "missing name", raw: `[{"id": "van", "kmPerLiter": 10}]`},
		{name: "zero km per liter", raw: `[{"id": "van", "name": "Van", "kmPerLiter": 0}]`},
		{name: "negative km per liter", raw: `[{"id": "van", "name": "Van", "kmPerLiter": -5}]`},
		{
			name: "duplicate id",
			raw: `[
				{"id": "van", "name": "Van", "kmPerLiter": 10},
				{"id": "van", "name": "Other Van", "kmPerLiter": 12}
			]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLookup(t *testing.T) {
	cat, err := New([]byte(`[{"id": "van", "name": "Van", "kmPerLiter": 10}]`))
	require.NoError(t, err)

	v, err := cat.Lookup("van")
	require.NoError(t, err)
	assert.Equal(t, "Van", v.Name)
	assert.Equal(t, 10.0, v.KmPerLiter)

	_, err = cat.Lookup("hovercraft")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vehicles.json")
	data := `[
		{"id": "becak", "name": "Becak Motor", "kmPerLiter": 25},
		{"id": "bajaj", "name": "Bajaj", "kmPerLiter": 22}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cat.Vehicles(), 2)

	v, err := cat.Lookup("bajaj")
	require.NoError(t, err)
	assert.Equal(t, 22.0, v.KmPerLiter)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
