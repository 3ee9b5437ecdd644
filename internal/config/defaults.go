package config

import "strings"

// File names inside the data directory.
const (
	DefaultTasksDirName  = "tasks"
	DefaultBoardFileName = "task-config.json"
)

// Settings defaults
const (
	DefaultEditor    = "vim"
	DefaultTheme     = "dark"
	DefaultWidth     = 80
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// EnvPrefix prefixes environment overrides, e.g. TASKCLI_TASKS_DIR.
const EnvPrefix = "TASKCLI"

// Board defaults
const (
	DefaultLanguage      = "en-US"
	DefaultCategoryColor = "gray"
	DoneStatus           = "done"
)

// boardLabels holds the default option labels for one language.
type boardLabels struct {
	todo, inProgress, done string
	work, personal, study  string
	high, medium, low      string
}

var (
	englishLabels = boardLabels{
		todo: "To Do", inProgress: "In Progress", done: "Done",
		work: "Work", personal: "Personal", study: "Study",
		high: "High", medium: "Medium", low: "Low",
	}
	portugueseLabels = boardLabels{
		todo: "Para Fazer", inProgress: "Em Progresso", done: "Feito",
		work: "Trabalho", personal: "Pessoal", study: "Estudo",
		high: "Alta", medium: "Média", low: "Baixa",
	}
)

func labelsFor(lang string) boardLabels {
	if strings.HasPrefix(strings.ToLower(lang), "pt") {
		return portugueseLabels
	}
	return englishLabels
}

// DefaultBoard returns the initial board: three status columns, three
// categories and three priorities, labelled in lang.
func DefaultBoard(lang string) *Board {
	if lang == "" {
		lang = DefaultLanguage
	}
	l := labelsFor(lang)

	return &Board{
		Language: lang,
		Statuses: []Option{
			{ID: "todo", Label: l.todo, Color: "red"},
			{ID: "in-progress", Label: l.inProgress, Color: "yellow"},
			{ID: DoneStatus, Label: l.done, Color: "green"},
		},
		Categories: []Option{
			{ID: "work", Label: l.work, Color: "blue"},
			{ID: "personal", Label: l.personal, Color: "magenta"},
			{ID: "study", Label: l.study, Color: "cyan"},
		},
		Priorities: DefaultPriorities(lang),
	}
}

// DefaultPriorities returns the high/medium/low set labelled in lang.
func DefaultPriorities(lang string) []Option {
	l := labelsFor(lang)
	return []Option{
		{ID: "high", Label: l.high, Color: "red"},
		{ID: "medium", Label: l.medium, Color: "yellow"},
		{ID: "low", Label: l.low, Color: "green"},
	}
}
