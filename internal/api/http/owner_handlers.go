package http

import (
	"fmt"
	"net/http"
	"strconv"

	"volunteer-portal/internal/domain"

	"github.com/gorilla/mux"
)

// authorizeOwner resolves the slug/token pair into a proposal, or renders the
// generic not-found page. A wrong token and an unknown slug look identical.
func (h *Handler) authorizeOwner(w http.ResponseWriter, r *http.Request) *domain.Proposal {
	vars := mux.Vars(r)
	proposal, err := h.proposals.Authorize(r.Context(), vars["slug"], vars["token"])
	if err != nil {
		h.handleError(w, r, err)
		return nil
	}
	return proposal
}

func ownerPath(p *domain.Proposal, token string) string {
	return fmt.Sprintf("/proposal/%s/owner/%s/", p.Slug, token)
}

type dashboardPage struct {
	basePage
	Proposal *domain.Proposal
	Signups  []domain.Signup
	Token    string
}

func (h *Handler) OwnerDashboard(w http.ResponseWriter, r *http.Request) {
	proposal := h.authorizeOwner(w, r)
	if proposal == nil {
		return
	}
	signups, err := h.signups.ListByProposal(r.Context(), proposal.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "owner_dashboard", dashboardPage{
		basePage: newBasePage("Owner Dashboard: "+proposal.Title, r),
		Proposal: proposal,
		Signups:  signups,
		Token:    mux.Vars(r)["token"],
	})
}

func (h *Handler) OwnerDecide(w http.ResponseWriter, r *http.Request) {
	proposal := h.authorizeOwner(w, r)
	if proposal == nil {
		return
	}
	vars := mux.Vars(r)
	signupID, err := strconv.ParseInt(vars["signupID"], 10, 32)
	if err != nil {
		// Route pattern guarantees digits; ids past int32 range land here.
		h.renderNotFound(w, r)
		return
	}

	decision := vars["decision"]
	signup, err := h.signups.Decide(r.Context(), proposal, int32(signupID), decision)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	notice := "rejected"
	if signup.Status == domain.SignupStatusApproved {
		notice = "approved"
	}
	redirect(w, r, ownerPath(proposal, vars["token"]), notice)
}

func (h *Handler) OwnerClose(w http.ResponseWriter, r *http.Request) {
	proposal := h.authorizeOwner(w, r)
	if proposal == nil {
		return
	}
	if err := h.proposals.Close(r.Context(), proposal); err != nil {
		h.handleError(w, r, err)
		return
	}
	redirect(w, r, ownerPath(proposal, mux.Vars(r)["token"]), "closed")
}

func (h *Handler) OwnerReopen(w http.ResponseWriter, r *http.Request) {
	proposal := h.authorizeOwner(w, r)
	if proposal == nil {
		return
	}
	if err := h.proposals.Reopen(r.Context(), proposal); err != nil {
		h.handleError(w, r, err)
		return
	}
	redirect(w, r, ownerPath(proposal, mux.Vars(r)["token"]), "reopened")
}

type deleteConfirmPage struct {
	basePage
	Proposal *domain.Proposal
	Token    string
}

func (h *Handler) OwnerDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	proposal := h.authorizeOwner(w, r)
	if proposal == nil {
		return
	}
	h.render(w, http.StatusOK, "owner_delete_confirm", deleteConfirmPage{
		basePage: newBasePage("Delete Proposal: "+proposal.Title, r),
		Proposal: proposal,
		Token:    mux.Vars(r)["token"],
	})
}

func (h *Handler) OwnerDelete(w http.ResponseWriter, r *http.Request) {
	proposal := h.authorizeOwner(w, r)
	if proposal == nil {
		return
	}
	if err := h.proposals.Delete(r.Context(), proposal); err != nil {
		h.handleError(w, r, err)
		return
	}
	redirect(w, r, "/", "deleted")
}
