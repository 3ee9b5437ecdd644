package i18n

// Message keys. A key missing from the catalog is printed as is.
const (
	Cancelled    = "op.cancelled"
	NoTasksYet   = "tasks.none"
	NoMatch      = "tasks.noMatch"
	NoMatchQuery = "tasks.noMatchQuery"
	TaskNotFound = "tasks.notFound"

	NewHeader           = "new.header"
	NewTitle            = "new.title"
	NewTitleRequired    = "new.titleRequired"
	NewCategory         = "new.category"
	NewPriority         = "new.priority"
	NewDescription      = "new.description"
	NewDeadline         = "new.deadline"
	NewStatus           = "new.status"
	NewHeading          = "new.heading"
	NewCreated          = "new.created"
	NewEditorFailed     = "new.editorFailed"
	NewDraftKept        = "new.draftKept"
	NewDeadlineReadBack = "new.deadlineReadBack"

	ViewHeader        = "view.header"
	ViewSelect        = "view.select"
	ViewNoDescription = "view.noDescription"

	SearchPrompt   = "search.prompt"
	SearchRequired = "search.required"

	MoveHeader = "move.header"
	MoveSelect = "move.select"
	MoveStatus = "move.status"
	MoveDone   = "move.done"

	DeleteHeader  = "delete.header"
	DeleteSelect  = "delete.select"
	DeleteConfirm = "delete.confirm"
	DeleteDone    = "delete.done"

	CleanHeader         = "clean.header"
	CleanNone           = "clean.none"
	CleanFound          = "clean.found"
	CleanAction         = "clean.action"
	CleanActionArchive  = "clean.actionArchive"
	CleanActionDelete   = "clean.actionDelete"
	CleanActionCancel   = "clean.actionCancel"
	CleanConfirmArchive = "clean.confirmArchive"
	CleanConfirmDelete  = "clean.confirmDelete"
	CleanArchived       = "clean.archived"
	CleanDeleted        = "clean.deleted"

	CalHeader = "cal.header"
	CalMore   = "cal.more"

	BoardTitle     = "board.title"
	BoardEmpty     = "board.empty"
	BoardNoColumns = "board.noColumns"
	BoardProgress  = "board.progress"
	BoardOverdue   = "board.overdue"
	BoardToday     = "board.today"

	ConfigHeader           = "config.header"
	ConfigMenu             = "config.menu"
	ConfigAddCategory      = "config.addCategory"
	ConfigChangeLanguage   = "config.changeLanguage"
	ConfigShow             = "config.show"
	ConfigExit             = "config.exit"
	ConfigExiting          = "config.exiting"
	ConfigCategoryName     = "config.categoryName"
	ConfigCategoryRequired = "config.categoryRequired"
	ConfigCategoryExists   = "config.categoryExists"
	ConfigCategoryAdded    = "config.categoryAdded"
	ConfigLanguagePrompt   = "config.languagePrompt"
	ConfigLanguageSet      = "config.languageSet"
	ConfigStatuses         = "config.statuses"
	ConfigCategories       = "config.categories"
	ConfigPriorities       = "config.priorities"

	SetupWelcome  = "setup.welcome"
	SetupFirstRun = "setup.firstRun"
	SetupConfirm  = "setup.confirm"
	SetupRequired = "setup.required"
	SetupDone     = "setup.done"

	InitExists = "init.exists"
)

// counted messages take a single integer argument and vary by plural form.
type counted struct {
	one, other string
}

var english = map[string]string{
	Cancelled:    "Operation cancelled.",
	NoTasksYet:   "No tasks found. Create one with 'task-cli new'.",
	NoMatch:      "No tasks found matching your filters.",
	NoMatchQuery: "No tasks found matching query '%s' and filters.",
	TaskNotFound: "Task %s not found.",

	NewHeader:           "Create New Task",
	NewTitle:            "What is the task title?",
	NewTitleRequired:    "Title is required!",
	NewCategory:         "What is the category?",
	NewPriority:         "What is the priority?",
	NewDescription:      "Quick description (optional, press Enter to skip):",
	NewDeadline:         "What is the deadline? (optional, %s)",
	NewStatus:           "What is the status?",
	NewHeading:          "Description",
	NewCreated:          "Task created successfully: %s",
	NewEditorFailed:     "Editor closed with an error (%v). Draft discarded.",
	NewDraftKept:        "Could not read the edited task (%v). Your draft was kept at %s",
	NewDeadlineReadBack: "Deadline: %s",

	ViewHeader:        "View Task",
	ViewSelect:        "Select a task to view:",
	ViewNoDescription: "(No description provided for this task)",

	SearchPrompt:   "Enter search term:",
	SearchRequired: "Search term is required!",

	MoveHeader: "Move Task",
	MoveSelect: "Select a task to move:",
	MoveStatus: "Select new status:",
	MoveDone:   "Task moved successfully to '%s'",

	DeleteHeader:  "Delete Task",
	DeleteSelect:  "Select a task to delete:",
	DeleteConfirm: "Are you sure you want to delete this task?",
	DeleteDone:    "Task deleted successfully.",

	CleanHeader:        "Clean Done Tasks",
	CleanNone:          "No done tasks to clean.",
	CleanAction:        "What do you want to do with them?",
	CleanActionArchive: "Archive (keep the files, hide from views)",
	CleanActionDelete:  "Delete permanently",
	CleanActionCancel:  "Cancel",

	CalHeader: "Monthly Calendar View",
	CalMore:   "+ %d more",

	BoardTitle:     "CLI Task Manager",
	BoardEmpty:     "No tasks",
	BoardNoColumns: "The board has no columns. Run 'task-cli init' to create the default board.",
	BoardProgress:  "Done %s %d%%",
	BoardOverdue:   "overdue",
	BoardToday:     "today",

	ConfigHeader:           "Configuration",
	ConfigMenu:             "What do you want to configure?",
	ConfigAddCategory:      "Add new category",
	ConfigChangeLanguage:   "Change language",
	ConfigShow:             "Show board settings",
	ConfigExit:             "Exit",
	ConfigExiting:          "Exiting configuration.",
	ConfigCategoryName:     "What is the name of the new category?",
	ConfigCategoryRequired: "Category name is required!",
	ConfigCategoryExists:   "Category '%s' already exists.",
	ConfigCategoryAdded:    "Category '%s' added successfully!",
	ConfigLanguagePrompt:   "Choose the language:",
	ConfigLanguageSet:      "Language set to %s.",
	ConfigStatuses:         "Statuses",
	ConfigCategories:       "Categories",
	ConfigPriorities:       "Priorities",

	SetupWelcome:  "Welcome to CLI Task Manager!",
	SetupFirstRun: "It looks like this is your first time here.",
	SetupConfirm:  "Do you want to initialize the environment with the default Kanban board?",
	SetupRequired: "Initialization is required to run this app. Exiting.",
	SetupDone:     "Environment configured! Type 'task-cli help' to get started.",

	InitExists: "A board already exists at %s. Use --force to replace it.",
}

var englishCounted = map[string]counted{
	CleanFound:          {"Found %d done task.", "Found %d done tasks."},
	CleanConfirmArchive: {"Archive %d task?", "Archive %d tasks?"},
	CleanConfirmDelete:  {"Delete %d task? This cannot be undone.", "Delete %d tasks? This cannot be undone."},
	CleanArchived:       {"%d task archived.", "%d tasks archived."},
	CleanDeleted:        {"%d task deleted.", "%d tasks deleted."},
}

var portuguese = map[string]string{
	Cancelled:    "Operação cancelada.",
	NoTasksYet:   "Nenhuma tarefa encontrada. Crie uma com 'task-cli new'.",
	NoMatch:      "Nenhuma tarefa encontrada com esses filtros.",
	NoMatchQuery: "Nenhuma tarefa encontrada para a busca '%s' com esses filtros.",
	TaskNotFound: "Tarefa %s não encontrada.",

	NewHeader:           "Criar Nova Tarefa",
	NewTitle:            "Qual é o título da tarefa?",
	NewTitleRequired:    "O título é obrigatório!",
	NewCategory:         "Qual é a categoria?",
	NewPriority:         "Qual é a prioridade?",
	NewDescription:      "Descrição rápida (opcional, Enter para pular):",
	NewDeadline:         "Qual é o prazo? (opcional, %s)",
	NewStatus:           "Qual é o status?",
	NewHeading:          "Descrição",
	NewCreated:          "Tarefa criada com sucesso: %s",
	NewEditorFailed:     "O editor fechou com erro (%v). Rascunho descartado.",
	NewDraftKept:        "Não foi possível ler a tarefa editada (%v). O rascunho foi mantido em %s",
	NewDeadlineReadBack: "Prazo: %s",

	ViewHeader:        "Ver Tarefa",
	ViewSelect:        "Selecione uma tarefa para ver:",
	ViewNoDescription: "(Nenhuma descrição fornecida para esta tarefa)",

	SearchPrompt:   "Digite o termo de busca:",
	SearchRequired: "O termo de busca é obrigatório!",

	MoveHeader: "Mover Tarefa",
	MoveSelect: "Selecione uma tarefa para mover:",
	MoveStatus: "Selecione o novo status:",
	MoveDone:   "Tarefa movida com sucesso para '%s'",

	DeleteHeader:  "Excluir Tarefa",
	DeleteSelect:  "Selecione uma tarefa para excluir:",
	DeleteConfirm: "Tem certeza de que deseja excluir esta tarefa?",
	DeleteDone:    "Tarefa excluída com sucesso.",

	CleanHeader:        "Limpar Tarefas Concluídas",
	CleanNone:          "Nenhuma tarefa concluída para limpar.",
	CleanAction:        "O que você quer fazer com elas?",
	CleanActionArchive: "Arquivar (mantém os arquivos, oculta das visões)",
	CleanActionDelete:  "Excluir permanentemente",
	CleanActionCancel:  "Cancelar",

	CalHeader: "Visão de Calendário Mensal",
	CalMore:   "+ %d mais",

	BoardTitle:     "Gerenciador de Tarefas CLI",
	BoardEmpty:     "Sem tarefas",
	BoardNoColumns: "O quadro não tem colunas. Execute 'task-cli init' para criar o quadro padrão.",
	BoardProgress:  "Feito %s %d%%",
	BoardOverdue:   "atrasada",
	BoardToday:     "hoje",

	ConfigHeader:           "Configuração",
	ConfigMenu:             "O que você quer configurar?",
	ConfigAddCategory:      "Adicionar nova categoria",
	ConfigChangeLanguage:   "Mudar idioma",
	ConfigShow:             "Mostrar configurações do quadro",
	ConfigExit:             "Sair",
	ConfigExiting:          "Saindo da configuração.",
	ConfigCategoryName:     "Qual é o nome da nova categoria?",
	ConfigCategoryRequired: "O nome da categoria é obrigatório!",
	ConfigCategoryExists:   "A categoria '%s' já existe.",
	ConfigCategoryAdded:    "Categoria '%s' adicionada com sucesso!",
	ConfigLanguagePrompt:   "Escolha o idioma:",
	ConfigLanguageSet:      "Idioma definido para %s.",
	ConfigStatuses:         "Status",
	ConfigCategories:       "Categorias",
	ConfigPriorities:       "Prioridades",

	SetupWelcome:  "Bem-vindo ao Gerenciador de Tarefas CLI!",
	SetupFirstRun: "Parece que esta é a sua primeira vez aqui.",
	SetupConfirm:  "Deseja inicializar o ambiente com o quadro Kanban padrão?",
	SetupRequired: "A inicialização é necessária para usar o aplicativo. Saindo.",
	SetupDone:     "Ambiente configurado! Digite 'task-cli help' para começar.",

	InitExists: "Já existe um quadro em %s. Use --force para substituí-lo.",
}

var portugueseCounted = map[string]counted{
	CleanFound:          {"%d tarefa concluída encontrada.", "%d tarefas concluídas encontradas."},
	CleanConfirmArchive: {"Arquivar %d tarefa?", "Arquivar %d tarefas?"},
	CleanConfirmDelete:  {"Excluir %d tarefa? Isso não pode ser desfeito.", "Excluir %d tarefas? Isso não pode ser desfeito."},
	CleanArchived:       {"%d tarefa arquivada.", "%d tarefas arquivadas."},
	CleanDeleted:        {"%d tarefa excluída.", "%d tarefas excluídas."},
}

var weekdays = map[string][]string{
	"en-US": {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	"pt-BR": {"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"},
}
