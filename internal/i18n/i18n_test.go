package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizer_Printer(t *testing.T) {
	localizer, err := New("en-US")
	require.NoError(t, err)

	tests := []struct {
		acceptLanguage string
		want           string
	}{
		{"", "Work type not found."},
		{"en-US", "Work type not found."},
		{"fi", "Työtyyppiä ei löytynyt."},
		{"de-DE,fi;q=0.8", "Työtyyppiä ei löytynyt."},
		{"de-DE", "Work type not found."},
		{"not a header", "Work type not found."},
	}

	for _, tt := range tests {
		t.Run(tt.acceptLanguage, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(localizer.Printer(tt.acceptLanguage), "workType.notFound"))
		})
	}
}

func TestText_UnknownKey(t *testing.T) {
	localizer, err := New("en-US")
	require.NoError(t, err)

	assert.Equal(t, "no.such.key", Text(localizer.Printer("fi"), "no.such.key"))
}

func TestLoadFromFS_Errors(t *testing.T) {
	_, err := New("sv-SE")
	assert.Error(t, err)

	_, err = New("???")
	assert.Error(t, err)

	broken := fstest.MapFS{
		"locales/en-US.yaml": {Data: []byte("locale: [unterminated")},
	}
	_, err = LoadFromFS(broken, "en-US")
	assert.Error(t, err)
}

func TestLoadFromFS_FallsBackToDefaultLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.yaml": {Data: []byte("locale: en-US\nmessages:\n  greeting: Hello\n  farewell: Bye\n")},
		"locales/fi-FI.yaml": {Data: []byte("locale: fi-FI\nmessages:\n  greeting: Hei\n")},
	}
	localizer, err := LoadFromFS(fsys, "en-US")
	require.NoError(t, err)

	p := localizer.Printer("fi-FI")
	assert.Equal(t, "Hei", Text(p, "greeting"))
	assert.Equal(t, "Bye", Text(p, "farewell"))
}
