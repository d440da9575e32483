package schedule

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"schedule-scraper/services/schedule/db"
)

//go:embed web
var webFS embed.FS

type versionInfo struct {
	ID        int64  `json:"id"`
	Week      string `json:"week"`
	CreatedAt string `json:"created_at"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("encode response", "err", err)
	}
}

// RegisterRoutes attaches the JSON API and the embedded web app.
func (s Service) RegisterRoutes(mux *http.ServeMux) {
	static, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}

	mux.HandleFunc("GET /api/versions", s.handleVersions)
	mux.HandleFunc("GET /api/schedule/{id}", s.handleSchedule)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("POST /api/force-update", s.handleForceUpdate)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, static, "index.html")
	})
}

func (s Service) handleVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := s.qry.ListScheduleVersions(r.Context(), db.ListScheduleVersionsParams{
		GroupCode: s.config.GroupCode,
		Limit:     20,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	out := []versionInfo{}
	for _, v := range versions {
		out = append(out, versionInfo{
			ID:        v.ID,
			Week:      v.WeekStart,
			CreatedAt: time.Unix(v.CreatedAt, 0).Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s Service) handleSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid version id"})
		return
	}

	version, err := s.qry.GetScheduleVersion(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "version not found"})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte(version.Payload))
	if err != nil {
		slog.Warn("write payload", "err", err)
	}
}

func (s Service) handleStatus(w http.ResponseWriter, r *http.Request) {
	lessons, version, found, err := s.LatestLessons(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status": "error", "message": err.Error(), "group": s.config.GroupCode,
		})
		return
	}
	if !found {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "no_data", "group": s.config.GroupCode,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "running",
		"last_update":   time.Unix(version.CreatedAt, 0).Format(time.RFC3339),
		"week":          version.WeekStart,
		"records_count": len(lessons),
		"group":         s.config.GroupCode,
	})
}

func (s Service) handleForceUpdate(w http.ResponseWriter, r *http.Request) {
	report, err := s.CheckAndStore(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status": "error", "message": err.Error(),
		})
		return
	}

	changed := report != nil
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"changed": changed,
	})
}
