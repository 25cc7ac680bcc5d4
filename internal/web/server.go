package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"srcdiff/internal/model"
)

// NewHandler serves a rendered report: the HTML page at "/", the comparison data
// at "/api/report" and a single file's differences at "/api/file?path=<rel>".
func NewHandler(page []byte, rep model.Report) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})
	mux.HandleFunc("/api/report", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rep)
	})
	mux.HandleFunc("/api/file", func(w http.ResponseWriter, r *http.Request) {
		handleFile(w, r, rep)
	})
	mux.HandleFunc("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"version": model.Version})
	})
	return mux
}

func handleFile(w http.ResponseWriter, r *http.Request, rep model.Report) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", 400)
		return
	}
	for _, fc := range rep.Files {
		if fc.RelPath == path {
			writeJSON(w, fc)
			return
		}
	}
	http.Error(w, "no differences recorded for "+path, 404)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// StartServer serves h on addr until the listener fails.
func StartServer(addr string, h http.Handler) error {
	fmt.Printf("Starting srcdiff web server at http://%s\n", displayAddr(addr))
	return http.ListenAndServe(addr, h)
}

// URL returns the browser address for a listen address such as ":8080".
func URL(addr string) string {
	return "http://" + displayAddr(addr)
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
