package http

import (
	"net/http"

	"budgetbook/internal/backup"
	"budgetbook/internal/core"
	"budgetbook/internal/ledger"
)

// monthParam reads ?month=YYYY-MM, defaulting to the current month.
func (s *Server) monthParam(r *http.Request) (core.MonthKey, error) {
	v := r.URL.Query().Get("month")
	if v == "" {
		return s.app.CurrentMonth(), nil
	}
	return core.ParseMonthKey(v)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	month, err := s.monthParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.app.Dashboard(month))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.app.History())
}

// handleListTransactions lists all transactions, or one month's or one
// event's when filtered. Newest first.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := s.app.Transactions()
	q := r.URL.Query()
	if ev := q.Get("event"); ev != "" {
		if _, err := s.app.Event(ev); err != nil {
			writeError(w, err)
			return
		}
		txs = ledger.EventTransactions(txs, ev)
	}
	if q.Get("month") != "" {
		month, err := s.monthParam(r)
		if err != nil {
			writeError(w, err)
			return
		}
		txs = ledger.ScopeToMonth(txs, month)
	}
	writeJSON(w, http.StatusOK, ledger.SortByDate(txs, true))
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var t core.Transaction
	if err := decodeJSON(r, w, &t); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.Date == "" {
		t.Date = s.app.Today()
	}
	created, err := s.app.AddTransaction(t)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var t core.Transaction
	if err := decodeJSON(r, w, &t); err != nil {
		writeError(w, err)
		return
	}
	t.ID = r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.app.UpdateTransaction(t); err != nil {
		writeError(w, err)
		return
	}
	updated, err := s.app.Transaction(t.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.app.DeleteTransaction(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.app.Categories())
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	month, err := core.ParseMonthKey(r.PathValue("month"))
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.budget(month))
}

// handleSetBudget replaces the month's plan with the body's entries. An empty
// list clears the month.
func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	month, err := core.ParseMonthKey(r.PathValue("month"))
	if err != nil {
		writeError(w, err)
		return
	}
	var entries []core.BudgetEntry
	if err := decodeJSON(r, w, &entries); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.app.SetBudget(month, entries); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.budget(month))
}

func (s *Server) budget(month core.MonthKey) []core.BudgetEntry {
	if entries := s.app.Budget(month); entries != nil {
		return entries
	}
	return []core.BudgetEntry{}
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.app.EventSummaries())
}

// handleExport returns the backup document, named for download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Disposition", `attachment; filename="`+backup.FileName(s.app.Now())+`"`)
	writeJSON(w, http.StatusOK, s.app.Export())
}
