package http

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"lezioni/internal/core"
	applog "lezioni/internal/log"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Today string
	}{
		Today: time.Now().Format("2006-01-02"),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err, applog.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">בקשה לא תקינה</div>`))
		return
	}

	name := sanitizeInput(r.Form.Get("name"))
	price := sanitizeInput(r.Form.Get("price"))

	st, err := s.roster.AddStudent(r.Context(), name, price)
	switch {
	case errors.Is(err, core.ErrEmptyName):
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">יש למלא שם</div>`))
		return
	case errors.Is(err, core.ErrInvalidAmount):
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">יש למלא תעריף נכון.</div>`))
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Failed to save student",
			applog.FieldError, err,
			applog.FieldStudentName, name)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">שגיאה בשמירה</div>`))
		return
	}

	slog.InfoContext(r.Context(), "Student created",
		applog.FieldStudentName, st.Name,
		applog.FieldAmountCents, st.Price.Cents)

	// Full-reload-on-write: the roster partial re-fetches the collection.
	w.Header().Set("HX-Trigger", `{"roster:changed": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">נוסף: ` +
		template.HTMLEscapeString(st.Name) + ` — ` +
		template.HTMLEscapeString(formatAmount(st.Price)) + `</div>`))
}

func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err, applog.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">בקשה לא תקינה</div>`))
		return
	}

	name := sanitizeInput(r.Form.Get("name"))
	if name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">חסר שם תלמיד</div>`))
		return
	}

	if err := s.roster.RemoveStudent(r.Context(), name); err != nil {
		// Already logged at the point of failure; the view stays stale
		// until the next successful reload.
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">שגיאה במחיקה</div>`))
		return
	}

	w.Header().Set("HX-Trigger", `{"roster:changed": {}}`)
	w.WriteHeader(http.StatusOK)
}

// handleRosterPartial renders the full roster: table rows with per-row
// delete affordances plus the pick-list options for payment entry.
func (s *Server) handleRosterPartial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	roster, err := s.roster.ListForSelection(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Roster list error", applog.FieldError, err)
		_, _ = w.Write([]byte(`<div class="placeholder">שגיאה בטעינת התלמידים</div>`))
		return
	}

	type row struct {
		Name  string
		Price string
	}
	data := struct {
		Rows []row
	}{}
	for _, st := range roster {
		data.Rows = append(data.Rows, row{Name: st.Name, Price: formatAmount(st.Price)})
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<div class="placeholder">templates not loaded</div>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "roster.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Roster template execution failed", applog.FieldError, err)
		_, _ = w.Write([]byte(`<div class="placeholder">שגיאה בהצגת התלמידים</div>`))
	}
}
