package clinicinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_DefaultsToEnglish(t *testing.T) {
	svc := NewService()

	info, err := svc.Get("")

	require.NoError(t, err)
	assert.Equal(t, LangEnglish, info.Language)
	assert.Equal(t, "Siri Sampada Child Care Clinic", info.Name)
}

func TestGet_Kannada(t *testing.T) {
	svc := NewService()

	info, err := svc.Get(LangKannada)

	require.NoError(t, err)
	assert.Equal(t, LangKannada, info.Language)
	// Телефон и ссылка на карту общие для всех языков
	en, _ := svc.Get(LangEnglish)
	assert.Equal(t, en.Phone, info.Phone)
	assert.Equal(t, en.LocationURL, info.LocationURL)
}

func TestGet_UnsupportedLanguage(t *testing.T) {
	svc := NewService()

	_, err := svc.Get("fr")

	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestLanguages(t *testing.T) {
	svc := NewService()

	langs := svc.Languages()

	assert.ElementsMatch(t, []string{LangEnglish, LangKannada}, langs)
}
