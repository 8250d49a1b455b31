package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titos() Row {
	return Row{"Tito's Handmade Vodka", "Tito's", "26.99", "4.7", "American craft vodka made in small batches using old-fashioned pot stills.", "Clean, crisp with a slightly sweet finish. Naturally gluten-free.", "40", "750ml", "Texas", "USA", "156", "vodka,craft,american,bestseller"}
}

func TestParseRecord(t *testing.T) {
	record, err := ParseRecord("VODKA", 3, titos())
	require.NoError(t, err)

	assert.Equal(t, "Tito's Handmade Vodka", *record.Name)
	assert.Equal(t, "26.99", record.Price.String())
	assert.Equal(t, "4.7", record.Rating.String())
	assert.Equal(t, 40, *record.Abv)
	assert.Equal(t, 156, *record.ReviewCount)
	assert.Equal(t, "vodka,craft,american,bestseller", *record.Tags)
}

func TestParseRecordArity(t *testing.T) {
	for _, size := range []int{0, 11, 13} {
		row := make(Row, size)
		copy(row, titos())

		record, err := ParseRecord("VODKA", 2, row)
		assert.Nil(t, record)

		var malformed *MalformedRecordError
		require.True(t, errors.As(err, &malformed), "size %d", size)
		assert.Equal(t, size, *malformed.Arity)
		assert.Equal(t, 2, *malformed.Position)
		assert.Equal(t, "VODKA", *malformed.Category)
		assert.Nil(t, malformed.Field)
	}
}

func TestParseRecordNumericField(t *testing.T) {
	row := titos()
	row[FieldAbv] = "forty"

	_, err := ParseRecord("VODKA", 1, row)

	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "abv", *malformed.Field)
	assert.Equal(t, "forty", *malformed.Value)
	assert.Error(t, errors.Unwrap(malformed))
	assert.Contains(t, err.Error(), `field abv has invalid value "forty"`)
}

func TestRecordValidate(t *testing.T) {
	record, err := ParseRecord("VODKA", 1, titos())
	require.NoError(t, err)
	assert.NoError(t, record.Validate())

	row := titos()
	row[FieldRating] = "5.1"
	record, err = ParseRecord("VODKA", 1, row)
	require.NoError(t, err)
	assert.ErrorContains(t, record.Validate(), "rating 5.1")

	row = titos()
	row[FieldAbv] = "140"
	record, err = ParseRecord("VODKA", 1, row)
	require.NoError(t, err)
	assert.Error(t, record.Validate())

	row = titos()
	row[FieldBrand] = ""
	record, err = ParseRecord("VODKA", 1, row)
	require.NoError(t, err)
	assert.Error(t, record.Validate())
}
