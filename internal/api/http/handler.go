// Package http serves the portal's HTML surface: public browsing and signup
// pages plus the token-secured owner dashboard.
package http

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/logger"
	"volunteer-portal/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"home",
	"proposal_create",
	"proposal_detail",
	"proposal_signup",
	"owner_dashboard",
	"owner_delete_confirm",
	"not_found",
}

// notices maps redirect notice codes to the banner text shown after the
// redirect. Unknown codes render nothing.
var notices = map[string]string{
	"created":   "Proposal created! The owner dashboard link has been sent to the owner email.",
	"signed-up": "Signed up! The proposal owner has been notified.",
	"approved":  "Volunteer approved.",
	"rejected":  "Volunteer rejected.",
	"closed":    "Listing closed. New signups disabled.",
	"reopened":  "Listing reopened. Signups enabled.",
	"deleted":   "Proposal permanently deleted.",
	"not-open":  "This proposal is not accepting signups right now.",
}

type Handler struct {
	proposals service.ProposalService
	signups   service.SignupService
	tags      service.TagService
	templates map[string]*template.Template
}

func NewHandler(proposals service.ProposalService, signups service.SignupService, tags service.TagService) (*Handler, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, page := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Handler{
		proposals: proposals,
		signups:   signups,
		tags:      tags,
		templates: templates,
	}, nil
}

func (h *Handler) render(w http.ResponseWriter, status int, page string, data interface{}) {
	t, ok := h.templates[page]
	if !ok {
		logger.Error("unknown template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		logger.Error("template execution failed", "page", page, "error", err)
	}
}

// handleError renders the uniform failure responses. Authorization failures
// arrive here as ErrNotFound and are shown exactly like a missing page.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidDecision) {
		h.renderNotFound(w, r)
		return
	}
	logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "not_found", basePage{Title: "Not Found"})
}

// NotFound is the router's fallback handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w, r)
}

func redirect(w http.ResponseWriter, r *http.Request, path, notice string) {
	if notice != "" {
		path += "?notice=" + notice
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// basePage carries the fields every template expects.
type basePage struct {
	Title  string
	Notice string
}

func newBasePage(title string, r *http.Request) basePage {
	return basePage{
		Title:  title,
		Notice: notices[r.URL.Query().Get("notice")],
	}
}
