package handlers

import (
	"net/http"
	"time"
)

// Health answers liveness probes. It does not touch the database or any
// upstream provider so a stuck pool never masks a running process.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
