package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytime/smeartai"
	"github.com/skytime/smeartai/catalog"
	"github.com/skytime/smeartai/internal/catalogwire"
)

func sampleCatalog() catalog.LeapCatalog {
	return catalog.LeapCatalog{
		PositiveLeaps: []int64{
			smeartai.DaysFromCivil(1972, 6, 30),
			smeartai.DaysFromCivil(1979, 12, 31),
		},
		NegativeLeaps: []int64{smeartai.DaysFromCivil(2016, 12, 31)},
		EndJDN:        smeartai.DaysFromCivil(2018, 12, 31),
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	c := sampleCatalog()
	encoded, err := c.MarshalBinary()
	require.NoError(t, err)
	got, err := catalog.UnmarshalBinary(encoded)
	require.NoError(t, err)
	assert.ElementsMatch(t, c.PositiveLeaps, got.PositiveLeaps)
	assert.ElementsMatch(t, c.NegativeLeaps, got.NegativeLeaps)
	assert.Equal(t, c.EndJDN, got.EndJDN)
}

func TestBinaryRoundTripEmptyLeaps(t *testing.T) {
	c := catalog.LeapCatalog{EndJDN: 2458483}
	encoded, err := c.MarshalBinary()
	require.NoError(t, err)
	got, err := catalog.UnmarshalBinary(encoded)
	require.NoError(t, err)
	assert.Empty(t, got.PositiveLeaps)
	assert.Empty(t, got.NegativeLeaps)
	assert.Equal(t, c.EndJDN, got.EndJDN)
}

func TestBinaryMarshalRejectsInt32Overflow(t *testing.T) {
	c := catalog.LeapCatalog{EndJDN: math.MaxInt32 + 1}
	_, err := c.MarshalBinary()
	require.Error(t, err)
}

func TestBinaryUnmarshalRejectsMissingEndJDN(t *testing.T) {
	// Encode a wire message with only the repeated fields, bypassing
	// catalog.LeapCatalog.MarshalBinary (which always sets end_jdn).
	encoded := catalogwire.Marshal(catalogwire.Catalog{PositiveLeaps: []int32{2441316}})
	_, err := catalog.UnmarshalBinary(encoded)
	require.Error(t, err)
}

func TestTextRoundTrip(t *testing.T) {
	c := sampleCatalog()
	got, err := catalog.UnmarshalText(c.MarshalText())
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestTextUnmarshalRejectsUnknownField(t *testing.T) {
	_, err := catalog.UnmarshalText([]byte("bogus_field: 1\nend_jdn: 2458483\n"))
	require.Error(t, err)
}

func TestTextUnmarshalRejectsMissingEndJDN(t *testing.T) {
	_, err := catalog.UnmarshalText([]byte("positive_leaps: 2441316\n"))
	require.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	c := sampleCatalog()
	b, err := c.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), "positiveLeaps")
	assert.Contains(t, string(b), "endJdn")

	got, err := catalog.UnmarshalJSONCatalog(b)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestJSONUnmarshalRejectsMissingEndJDN(t *testing.T) {
	_, err := catalog.UnmarshalJSONCatalog([]byte(`{"positiveLeaps":[2441316]}`))
	require.Error(t, err)
}

func TestToLeapTableRoundTripsThroughFromLeapTable(t *testing.T) {
	c := sampleCatalog()
	lt, err := c.ToLeapTable()
	require.NoError(t, err)

	back := catalog.FromLeapTable(lt)
	lt2, err := back.ToLeapTable()
	require.NoError(t, err)
	assert.True(t, lt.Equal(lt2))
}

func TestToLeapTableRejectsInvalidCatalog(t *testing.T) {
	c := catalog.LeapCatalog{
		PositiveLeaps: []int64{12345}, // not a month-end JDN
		EndJDN:        2458483,
	}
	_, err := c.ToLeapTable()
	require.Error(t, err)
}

func TestDefaultCatalogConstructsValidLeapTable(t *testing.T) {
	lt := catalog.MustDefault()
	require.NotNil(t, lt)

	back := catalog.FromLeapTable(lt)
	assert.Empty(t, back.NegativeLeaps)
	assert.Len(t, back.PositiveLeaps, 27)
}
