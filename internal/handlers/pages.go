package handlers

import (
	"net/http"
	"path/filepath"
)

// PageHandler serves the static chat page.
type PageHandler struct {
	indexPath string
}

func NewPageHandler(templatesPath string) *PageHandler {
	return &PageHandler{indexPath: filepath.Join(templatesPath, "index.html")}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, h.indexPath)
}
