package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	assert.Equal(t, Indonesian, English.Toggle())
	assert.Equal(t, English, Indonesian.Toggle())
	assert.Equal(t, English, English.Toggle().Toggle())
}

func TestForFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, For(English), For(Language("fr")))
}

func TestParse(t *testing.T) {
	assert.Equal(t, English, Parse("en"))
	assert.Equal(t, English, Parse("english"))
	assert.Equal(t, Indonesian, Parse("id"))
	assert.Equal(t, Indonesian, Parse(""))
	assert.Equal(t, Indonesian, Parse("whatever"))
}

func TestCatalogsAreComplete(t *testing.T) {
	for _, lang := range []Language{English, Indonesian} {
		msgs := For(lang)
		assert.NotEmpty(t, msgs.Title, lang)
		assert.NotEmpty(t, msgs.ErrMissingField, lang)
		assert.NotEmpty(t, msgs.ErrInvalidNumber, lang)
		assert.NotEmpty(t, msgs.ErrInvalidRange, lang)
		assert.NotEmpty(t, msgs.ErrUnknownVehicle, lang)
		assert.NotEmpty(t, msgs.ResultFormat, lang)
		assert.NotEmpty(t, msgs.DistanceFormat, lang)
	}
}

func TestCatalogsDiffer(t *testing.T) {
	assert.NotEqual(t, For(English).Title, For(Indonesian).Title)
	assert.NotEqual(t, For(English).ErrMissingField, For(Indonesian).ErrMissingField)
}
