package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the portal's routes. Mutating routes accept POST only;
// everything else is GET.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger)

	r.HandleFunc("/", h.Home).Methods(http.MethodGet)
	r.HandleFunc("/create/", h.CreateProposal).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/proposal/{slug}/", h.ProposalDetail).Methods(http.MethodGet)
	r.HandleFunc("/proposal/{slug}/signup/", h.Signup).Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/proposal/{slug}/owner/{token}/", h.OwnerDashboard).Methods(http.MethodGet)
	r.HandleFunc("/proposal/{slug}/owner/{token}/decide/{signupID:[0-9]+}/{decision}/", h.OwnerDecide).Methods(http.MethodPost)
	r.HandleFunc("/proposal/{slug}/owner/{token}/close/", h.OwnerClose).Methods(http.MethodPost)
	r.HandleFunc("/proposal/{slug}/owner/{token}/reopen/", h.OwnerReopen).Methods(http.MethodPost)
	r.HandleFunc("/proposal/{slug}/owner/{token}/delete/", h.OwnerDeleteConfirm).Methods(http.MethodGet)
	r.HandleFunc("/proposal/{slug}/owner/{token}/delete/confirm/", h.OwnerDelete).Methods(http.MethodPost)

	r.NotFoundHandler = RequestLogger(http.HandlerFunc(h.NotFound))
	return r
}
