package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/van-is-code/portfolio/internal/content"
)

func TestLanguage_DefaultsToEnglish(t *testing.T) {
	assert.Equal(t, content.English, Language(NewMemory()))
}

func TestLanguage_RoundTrip(t *testing.T) {
	s := NewMemory()
	require.NoError(t, SetLanguage(s, content.Vietnamese))
	assert.Equal(t, content.Vietnamese, Language(s))

	v, ok := s.Get(LanguageKey)
	require.True(t, ok)
	assert.Equal(t, "vi", v)

	require.NoError(t, SetLanguage(s, content.English))
	assert.Equal(t, content.English, Language(s))
}

func TestLanguage_UnknownStoredValue(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Set(LanguageKey, "jp"))
	assert.Equal(t, content.English, Language(s))
}
