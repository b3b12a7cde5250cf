package http

import (
	"fmt"
	"net/http"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/service"

	"github.com/gorilla/mux"
)

type signupForm struct {
	VolunteerName  string
	VolunteerEmail string
	InterestReason string
	Answers        map[int32]string
}

type signupPage struct {
	basePage
	Proposal       *domain.Proposal
	Form           signupForm
	Errors         map[string]string
	QuestionErrors map[int32]string
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	proposal, err := h.proposals.Get(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if proposal.Status != domain.ProposalStatusOpen {
		redirect(w, r, "/proposal/"+proposal.Slug+"/", "not-open")
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, http.StatusOK, "proposal_signup", signupPage{
			basePage: newBasePage("Sign Up: "+proposal.Title, r),
			Proposal: proposal,
			Form:     signupForm{Answers: map[int32]string{}},
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := signupForm{
		VolunteerName:  r.PostFormValue("volunteer_name"),
		VolunteerEmail: r.PostFormValue("volunteer_email"),
		InterestReason: r.PostFormValue("interest_reason"),
		Answers:        make(map[int32]string, len(proposal.Questions)),
	}
	for _, q := range proposal.Questions {
		form.Answers[q.ID] = r.PostFormValue(fmt.Sprintf("q_%d", q.ID))
	}

	_, err = h.signups.Create(r.Context(), proposal, service.CreateSignupInput{
		VolunteerName:  form.VolunteerName,
		VolunteerEmail: form.VolunteerEmail,
		InterestReason: form.InterestReason,
		Answers:        form.Answers,
	})
	if err != nil {
		if verr, ok := domain.AsValidation(err); ok {
			if _, closed := verr.Fields["proposal"]; closed {
				redirect(w, r, "/proposal/"+proposal.Slug+"/", "not-open")
				return
			}
			h.render(w, http.StatusUnprocessableEntity, "proposal_signup", signupPage{
				basePage:       newBasePage("Sign Up: "+proposal.Title, r),
				Proposal:       proposal,
				Form:           form,
				Errors:         verr.Fields,
				QuestionErrors: verr.Questions,
			})
			return
		}
		h.handleError(w, r, err)
		return
	}

	redirect(w, r, "/proposal/"+proposal.Slug+"/", "signed-up")
}
