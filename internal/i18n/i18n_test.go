package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseLocaleDefinesEveryKey(t *testing.T) {
	for _, k := range Keys() {
		_, ok := tables[BaseLocale][k]
		assert.True(t, ok, "missing %s in %s", k, BaseLocale)
	}
}

func TestTablesOnlyUseKnownKeys(t *testing.T) {
	known := map[Key]bool{}
	for _, k := range Keys() {
		known[k] = true
	}
	for loc, table := range tables {
		for k := range table {
			assert.True(t, known[k], "%s defines unknown key %s", loc, k)
		}
	}
}

func TestChain(t *testing.T) {
	assert.Equal(t, []string{"pt-BR", "pt", "en"}, Chain("pt-BR"))
	assert.Equal(t, []string{"it", "en"}, Chain("it"))
	assert.Equal(t, []string{"en"}, Chain("en"))
	assert.Equal(t, []string{"en-GB", "en"}, Chain("en-GB"))
	assert.Equal(t, []string{"en"}, Chain("not a locale!"))
	assert.Equal(t, []string{"en"}, Chain(""))
}

func TestTFallsBackAlongChain(t *testing.T) {
	// pt-BR overrides income only.
	assert.Equal(t, "Entradas", T("pt-BR", LabelIncome))
	// then pt
	assert.Equal(t, "Saldo", T("pt-BR", LabelBalance))
	// then en
	assert.Equal(t, "Spent", T("pt-BR", LabelSpent))
	assert.Equal(t, "Income", T("fr", LabelIncome))
}

func TestTSubstitutesPlaceholders(t *testing.T) {
	got := T("en", ReminderBudgetAlert, "category", "Food", "percent", "85")
	assert.Equal(t, "Food has used 85% of its budget.", got)

	got = T("it", ErrImportMissingField, "field", "events")
	assert.Equal(t, "Nel file di backup manca la sezione \"events\".", got)
}

func TestCategoryName(t *testing.T) {
	tr := Translator{Locale: "it"}
	assert.Equal(t, "Cibo", tr.CategoryName("category.food"))
	assert.Equal(t, "Groceries", tr.CategoryName("Groceries"))
	assert.Equal(t, "category.unknown", tr.CategoryName("category.unknown"))
}

func TestCanonical(t *testing.T) {
	got, err := Canonical("pt_br")
	if err != nil || got != "pt-BR" {
		t.Fatalf("Canonical(pt_br) = %q, %v", got, err)
	}
	if _, err := Canonical("not a locale!"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := Canonical(""); err == nil {
		t.Fatal("expected error for empty locale")
	}
}
