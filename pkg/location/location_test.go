package location_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/ladybug-go/pkg/location"
)

const chicagoIDF = `Site:Location,
  Chicago Ohare Intl Ap_IL_USA Design_Conditions,     !- Location Name
  41.98,     !- Latitude {N+ S-}
  -87.92,    !- Longitude {W- E+}
  -6.00,     !- Time Zone Relative to GMT {GMT+/-}
  201.00;    !- Elevation {m}`

func TestParseIDF(t *testing.T) {
	t.Parallel()

	loc, err := location.ParseIDF(chicagoIDF)
	require.NoError(t, err)
	assert.Equal(t, "Chicago Ohare Intl Ap_IL_USA Design_Conditions", loc.City)
	assert.Equal(t, 41.98, loc.Latitude)
	assert.Equal(t, -87.92, loc.Longitude)
	assert.Equal(t, -6.0, loc.TimeZone)
	assert.Equal(t, 201.0, loc.Elevation)
}

func TestIDFRoundTrip(t *testing.T) {
	t.Parallel()

	loc, err := location.ParseIDF(chicagoIDF)
	require.NoError(t, err)
	back, err := location.ParseIDF(loc.ToIDF())
	require.NoError(t, err)
	assert.Equal(t, loc, back)
}

func TestParseIDFErrors(t *testing.T) {
	t.Parallel()
	testcases := map[string]string{
		"wrong-keyword": "SizingPeriod:DesignDay,\n  Foo;\n",
		"short":         "Site:Location,\n  Somewhere;\n",
		"bad-number":    "Site:Location,\n  X,\n  north,\n  0,\n  0,\n  0;\n",
		"bad-latitude":  "Site:Location,\n  X,\n  95.0,\n  0,\n  0,\n  0;\n",
	}
	for name, idf := range testcases {
		idf := idf
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := location.ParseIDF(idf)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ok := location.Location{Latitude: 41.98, Longitude: -87.92, TimeZone: -6}
	assert.NoError(t, ok.Validate())
	assert.Equal(t, 90.0, ok.Meridian())

	bad := location.Location{Longitude: -200}
	assert.Error(t, bad.Validate())
}

func TestToIDFShape(t *testing.T) {
	t.Parallel()

	loc := location.Location{City: "Denver", Latitude: 39.74, Longitude: -105.18,
		TimeZone: -7, Elevation: 1829}
	idf := loc.ToIDF()
	assert.True(t, strings.HasPrefix(idf, "Site:Location,\n"))
	assert.Contains(t, idf, "!- Latitude")
	assert.Equal(t, 1, strings.Count(idf, ";"))
}
