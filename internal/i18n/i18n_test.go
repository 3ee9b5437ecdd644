package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yarlson/go-taskcli/internal/deadline"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "en-US"},
		{"en-US", "en-US"},
		{"en", "en-US"},
		{"pt-BR", "pt-BR"},
		{"pt", "pt-BR"},
		{"pt_BR", "pt-BR"},
		{"not a language", "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en-US"))
	assert.True(t, Supported("pt"))
	assert.True(t, Supported("pt_BR"))
	assert.False(t, Supported("fr"))
	assert.False(t, Supported("not a language"))
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"en-US", "pt-BR"}, Languages())
	for _, lang := range Languages() {
		assert.NotEmpty(t, DisplayName(lang))
	}
}

func TestTranslator_T(t *testing.T) {
	en := New("en-US")
	pt := New("pt-BR")

	assert.Equal(t, "Operation cancelled.", en.T(Cancelled))
	assert.Equal(t, "Operação cancelada.", pt.T(Cancelled))

	assert.Equal(t, "Task created successfully: 1-a.md", en.T(NewCreated, "1-a.md"))
	assert.Equal(t, "Tarefa criada com sucesso: 1-a.md", pt.T(NewCreated, "1-a.md"))

	assert.Equal(t, "+ 2 more", en.T(CalMore, 2))
	assert.Equal(t, "+ 2 mais", pt.T(CalMore, 2))
}

func TestTranslator_Plural(t *testing.T) {
	en := New("en-US")
	pt := New("pt-BR")

	assert.Equal(t, "Found 1 done task.", en.T(CleanFound, 1))
	assert.Equal(t, "Found 3 done tasks.", en.T(CleanFound, 3))
	assert.Equal(t, "1 tarefa arquivada.", pt.T(CleanArchived, 1))
	assert.Equal(t, "4 tarefas arquivadas.", pt.T(CleanArchived, 4))
}

func TestTranslator_UnknownKey(t *testing.T) {
	assert.Equal(t, "no.such.key", New("en-US").T("no.such.key"))
}

func TestTranslator_EveryKeyTranslated(t *testing.T) {
	for key := range english {
		_, ok := portuguese[key]
		assert.True(t, ok, "missing pt-BR message for %s", key)
	}
	for key := range portuguese {
		_, ok := english[key]
		assert.True(t, ok, "missing en-US message for %s", key)
	}
	for key := range englishCounted {
		_, ok := portugueseCounted[key]
		assert.True(t, ok, "missing pt-BR plural message for %s", key)
	}
}

func TestTranslator_Locale(t *testing.T) {
	en := New("en")
	pt := New("pt")

	assert.Equal(t, "en-US", en.Language())
	assert.Equal(t, "pt-BR", pt.Language())

	assert.Equal(t, deadline.MonthFirst, en.DateOrder())
	assert.Equal(t, deadline.DayFirst, pt.DateOrder())

	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, en.Weekdays())
	assert.Equal(t, "Dom", pt.Weekdays()[0])

	days := en.Weekdays()
	days[0] = "changed"
	assert.Equal(t, "Sun", en.Weekdays()[0])

	assert.Equal(t, "Home Office", en.Title("home office"))
}
