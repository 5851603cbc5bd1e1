package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	et, ok := Lookup("siteInspection")
	require.True(t, ok)
	assert.Equal(t, "Site Inspection", et.Label)
	assert.Len(t, et.Fields, 6)

	_, ok = Lookup("groundBreaking")
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Material Delivery", Label("materialDelivery"))
	assert.Equal(t, "customThing", Label("customThing"))
}

func TestValidateData(t *testing.T) {
	inspection, ok := Lookup("siteInspection")
	require.True(t, ok)

	t.Run("complete payload passes", func(t *testing.T) {
		err := ValidateData(inspection, map[string]any{
			"inspectionDate": "2026-03-10",
			"inspector":      "R. Silva",
			"workProgress":   45.0,
			"qualityRating":  "Good",
		})
		assert.NoError(t, err)
	})

	t.Run("fails on first missing field in declared order", func(t *testing.T) {
		err := ValidateData(inspection, map[string]any{
			"inspector": "R. Silva",
		})
		require.Error(t, err)
		assert.Equal(t, "Missing required field: inspectionDate", err.Error())
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		err := ValidateData(inspection, map[string]any{
			"inspectionDate": "2026-03-10",
			"inspector":      "",
			"workProgress":   45.0,
			"qualityRating":  "Good",
		})
		require.Error(t, err)
		assert.Equal(t, "Missing required field: inspector", err.Error())
	})

	t.Run("nil value counts as missing", func(t *testing.T) {
		err := ValidateData(inspection, map[string]any{
			"inspectionDate": nil,
		})
		require.Error(t, err)
		assert.Equal(t, "Missing required field: inspectionDate", err.Error())
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		visiting, ok := Lookup("siteVisiting")
		require.True(t, ok)
		err := ValidateData(visiting, map[string]any{
			"visitDate":    "2026-03-10",
			"location":     "Riverside site",
			"visitPurpose": "Progress check",
		})
		assert.NoError(t, err)
	})
}

func TestCatalogShape(t *testing.T) {
	assert.Len(t, Catalog, 6)
	for name, et := range Catalog {
		assert.NotEmpty(t, et.Label, name)
		assert.NotEmpty(t, et.Fields, name)
	}

	inspection := Catalog["siteInspection"]
	var progress FieldSpec
	for _, fs := range inspection.Fields {
		if fs.Name == "workProgress" {
			progress = fs
		}
	}
	require.NotNil(t, progress.Min)
	require.NotNil(t, progress.Max)
	assert.Equal(t, 0.0, *progress.Min)
	assert.Equal(t, 100.0, *progress.Max)
}
