package controllers

import (
	"log/slog"
	"net/http"

	"blogapi/app/services"
)

// SitemapController serves the generated sitemap XML.
type SitemapController struct {
	sitemap *services.SitemapService
	logger  *slog.Logger
}

// NewSitemapController creates a new SitemapController.
func NewSitemapController(sitemap *services.SitemapService, logger *slog.Logger) *SitemapController {
	return &SitemapController{sitemap: sitemap, logger: logger}
}

// Show renders the sitemap for the current set of posts.
func (sc *SitemapController) Show(w http.ResponseWriter, r *http.Request) {
	data, err := sc.sitemap.Generate()
	if err != nil {
		sc.logger.Error("generating sitemap", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
