package rest

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var indexPage []byte

// indexHandler - serves the browser client. It talks to the game over /ws.
func indexHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(indexPage); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
