package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

func writeLocales(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	en := `messages:
  welcome.message: "Welcome!"
  filter.changed: "Showing: %s"
  only.english: "English only"
`
	ar := `messages:
  welcome.message: "أهلاً!"
  filter.changed: "يتم العرض: %s"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(en), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ar.yaml"), []byte(ar), 0o644))
	return dir
}

func TestNewI18n(t *testing.T) {
	_, err := NewI18n(writeLocales(t))
	require.NoError(t, err)

	t.Run("missing locale file fails", func(t *testing.T) {
		_, err := NewI18n(t.TempDir())
		assert.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	svc, err := NewI18n(writeLocales(t))
	require.NoError(t, err)

	assert.Equal(t, "Welcome!", svc.Get(domain.LangEnglish, "welcome.message"))
	assert.Equal(t, "أهلاً!", svc.Get(domain.LangArabic, "welcome.message"))

	t.Run("format args", func(t *testing.T) {
		assert.Equal(t, "Showing: Quran", svc.Get(domain.LangEnglish, "filter.changed", "Quran"))
	})

	t.Run("falls back to english", func(t *testing.T) {
		assert.Equal(t, "English only", svc.Get(domain.LangArabic, "only.english"))
	})

	t.Run("unknown key returns the key", func(t *testing.T) {
		assert.Equal(t, "no.such.key", svc.Get(domain.LangEnglish, "no.such.key"))
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		assert.Equal(t, "Welcome!", svc.Get(domain.Language("fr"), "welcome.message"))
	})
}
