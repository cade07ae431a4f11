package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New("en", []string{"en", "bg"})
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "Start Timer", tr.T("en", "CONTEXT_MENU.TIMER", nil))
	assert.Equal(t, "Стартирай таймер", tr.T("bg", "CONTEXT_MENU.TIMER", nil))
	assert.Equal(t, "Data Entry", tr.T("en", "USERS_PAGE.ROLE.DATA_ENTRY", nil))
	assert.Equal(t, "Full Name", tr.T("en", "SM_TABLE.FULL_NAME", nil))
}

func TestTranslator_TemplateData(t *testing.T) {
	tr := newTestTranslator(t)

	got := tr.T("en", "TOASTR.MESSAGE.USER_ADDED", map[string]any{"Name": "Ada Lovelace", "Organization": "Ever Co."})
	assert.Equal(t, "Ada Lovelace added to Ever Co.", got)

	got = tr.T("en", "TOASTR.MESSAGE.USER_SET_INACTIVE", map[string]any{"Name": "User"})
	assert.Equal(t, "User set as inactive.", got)
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "USERS_PAGE.ROLE.SUPER_ADMIN", tr.T("en", "USERS_PAGE.ROLE.SUPER_ADMIN", nil))
	assert.Equal(t, "NOPE", tr.T("bg", "NOPE", nil))
}

func TestTranslator_UnknownLanguageFallsBack(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "Help", tr.T("he", "CONTEXT_MENU.HELP", nil))
}

func TestTranslator_Match(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"query param wins", []string{"bg", "en-US"}, "bg"},
		{"accept language header", []string{"", "bg-BG,bg;q=0.9,en;q=0.8"}, "bg"},
		{"regional english", []string{"en-GB"}, "en"},
		{"unsupported", []string{"ja"}, "en"},
		{"garbage", []string{";;;"}, "en"},
		{"nothing", nil, "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.candidates...))
		})
	}
}

func TestNew_InvalidLanguage(t *testing.T) {
	_, err := New("not a tag!", nil)
	assert.Error(t, err)

	_, err = New("en", []string{"??"})
	assert.Error(t, err)
}

func TestTranslator_Supported(t *testing.T) {
	tr, err := New("bg", []string{"en", "bg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bg", "en"}, tr.Supported())
	assert.Equal(t, "bg", tr.Default())
}
