package i18n

var tables = map[string]map[Key]string{
	"en": {
		WarnStorageUnavailable: "Local storage is unavailable. Changes will be lost when you exit.",
		WarnCorruptedData:      "Some saved data was corrupted and has been reset to defaults.",
		WarnWriteFailed:        "Could not save your changes. Storage may be full.",

		ErrInvalidAmount:      "Amount must be greater than zero.",
		ErrEmptyDescription:   "Description is required.",
		ErrEmptyName:          "Name is required.",
		ErrMissingCategory:    "Please select a category.",
		ErrInvalidDate:        "Date must be in YYYY-MM-DD format.",
		ErrInvalidImportFile:  "The selected file is not a valid backup.",
		ErrImportMissingField: "The backup file is missing the \"{field}\" section.",
		ErrCannotDeleteOther:  "The \"Other\" category cannot be deleted.",

		ConfirmImport:       "Importing will replace all current data. Continue?",
		ConfirmDeleteEvent:  "Deleting \"{name}\" also deletes its {count} transactions. Continue?",
		ImportDone:          "Data imported successfully.",
		ExportDone:          "Data exported to {path}.",
		LabelIncome:         "Income",
		LabelExpenses:       "Expenses",
		LabelBalance:        "Balance",
		LabelBudget:         "Budget",
		LabelSpent:          "Spent",
		LabelRemaining:      "Remaining",
		LabelOverBudget:     "Over budget",
		LabelNoTransactions: "No transactions yet.",
		ReminderBudgetAlert: "{category} has used {percent}% of its budget.",
		ReminderAllOnTrack:  "All budgets are on track.",

		CategoryFood:          "Food",
		CategoryTransport:     "Transport",
		CategoryHousing:       "Housing",
		CategoryUtilities:     "Utilities",
		CategoryHealth:        "Health",
		CategoryEntertainment: "Entertainment",
		CategoryShopping:      "Shopping",
		CategoryOther:         "Other",
	},
	"it": {
		WarnStorageUnavailable: "L'archivio locale non è disponibile. Le modifiche andranno perse all'uscita.",
		WarnCorruptedData:      "Alcuni dati salvati erano danneggiati e sono stati ripristinati.",
		WarnWriteFailed:        "Impossibile salvare le modifiche. L'archivio potrebbe essere pieno.",

		ErrInvalidAmount:      "L'importo deve essere maggiore di zero.",
		ErrEmptyDescription:   "La descrizione è obbligatoria.",
		ErrEmptyName:          "Il nome è obbligatorio.",
		ErrMissingCategory:    "Seleziona una categoria.",
		ErrInvalidDate:        "La data deve essere nel formato AAAA-MM-GG.",
		ErrInvalidImportFile:  "Il file selezionato non è un backup valido.",
		ErrImportMissingField: "Nel file di backup manca la sezione \"{field}\".",
		ErrCannotDeleteOther:  "La categoria \"Altro\" non può essere eliminata.",

		ConfirmImport:       "L'importazione sostituirà tutti i dati attuali. Continuare?",
		ConfirmDeleteEvent:  "Eliminando \"{name}\" verranno eliminate anche le sue {count} transazioni. Continuare?",
		ImportDone:          "Dati importati correttamente.",
		ExportDone:          "Dati esportati in {path}.",
		LabelIncome:         "Entrate",
		LabelExpenses:       "Spese",
		LabelBalance:        "Saldo",
		LabelBudget:         "Budget",
		LabelSpent:          "Speso",
		LabelRemaining:      "Rimanente",
		LabelOverBudget:     "Oltre il budget",
		LabelNoTransactions: "Nessuna transazione.",
		ReminderBudgetAlert: "{category} ha usato il {percent}% del budget.",
		ReminderAllOnTrack:  "Tutti i budget sono in linea.",

		CategoryFood:          "Cibo",
		CategoryTransport:     "Trasporti",
		CategoryHousing:       "Casa",
		CategoryUtilities:     "Bollette",
		CategoryHealth:        "Salute",
		CategoryEntertainment: "Divertimento",
		CategoryShopping:      "Acquisti",
		CategoryOther:         "Altro",
	},
	"es": {
		WarnStorageUnavailable: "El almacenamiento local no está disponible. Los cambios se perderán al salir.",
		WarnCorruptedData:      "Algunos datos guardados estaban dañados y se restablecieron.",
		WarnWriteFailed:        "No se pudieron guardar los cambios. El almacenamiento puede estar lleno.",

		ErrInvalidAmount:      "El importe debe ser mayor que cero.",
		ErrEmptyDescription:   "La descripción es obligatoria.",
		ErrEmptyName:          "El nombre es obligatorio.",
		ErrMissingCategory:    "Selecciona una categoría.",
		ErrInvalidDate:        "La fecha debe tener el formato AAAA-MM-DD.",
		ErrInvalidImportFile:  "El archivo seleccionado no es una copia de seguridad válida.",
		ErrImportMissingField: "Falta la sección \"{field}\" en la copia de seguridad.",

		ConfirmImport:       "La importación reemplazará todos los datos actuales. ¿Continuar?",
		ImportDone:          "Datos importados correctamente.",
		LabelIncome:         "Ingresos",
		LabelExpenses:       "Gastos",
		LabelBalance:        "Saldo",
		LabelBudget:         "Presupuesto",
		LabelSpent:          "Gastado",
		LabelRemaining:      "Restante",
		LabelOverBudget:     "Por encima del presupuesto",
		LabelNoTransactions: "Aún no hay transacciones.",

		CategoryFood:          "Comida",
		CategoryTransport:     "Transporte",
		CategoryHousing:       "Vivienda",
		CategoryUtilities:     "Servicios",
		CategoryHealth:        "Salud",
		CategoryEntertainment: "Ocio",
		CategoryShopping:      "Compras",
		CategoryOther:         "Otros",
	},
	"pt": {
		WarnStorageUnavailable: "O armazenamento local não está disponível. As alterações serão perdidas ao sair.",
		WarnCorruptedData:      "Alguns dados salvos estavam corrompidos e foram redefinidos.",
		WarnWriteFailed:        "Não foi possível salvar as alterações. O armazenamento pode estar cheio.",

		ErrInvalidAmount:    "O valor deve ser maior que zero.",
		ErrEmptyDescription: "A descrição é obrigatória.",
		ErrMissingCategory:  "Selecione uma categoria.",

		ConfirmImport:   "A importação substituirá todos os dados atuais. Continuar?",
		LabelIncome:     "Receitas",
		LabelExpenses:   "Despesas",
		LabelBalance:    "Saldo",
		LabelBudget:     "Orçamento",
		LabelOverBudget: "Acima do orçamento",

		CategoryFood:      "Alimentação",
		CategoryTransport: "Transporte",
		CategoryHousing:   "Moradia",
		CategoryOther:     "Outros",
	},
	"pt-BR": {
		LabelIncome:   "Entradas",
		LabelExpenses: "Gastos",
	},
}
