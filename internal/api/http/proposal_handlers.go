package http

import (
	"net/http"
	"strconv"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/service"

	"github.com/gorilla/mux"
)

// emptyQuestionRows is how many blank custom-question rows the create form
// offers by default.
const emptyQuestionRows = 3

var statusChoices = []domain.ProposalStatus{
	domain.ProposalStatusOpen,
	domain.ProposalStatusInProgress,
	domain.ProposalStatusClosed,
}

type homePage struct {
	basePage
	Proposals    []domain.Proposal
	AllTags      []domain.Tag
	Query        string
	Status       string
	SelectedTags map[string]bool
	Statuses     []domain.ProposalStatus
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	tagSlugs := r.URL.Query()["tags"]

	proposals, err := h.proposals.List(r.Context(), query, status, tagSlugs)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	allTags, err := h.tags.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	selected := make(map[string]bool, len(tagSlugs))
	for _, slug := range tagSlugs {
		selected[slug] = true
	}

	h.render(w, http.StatusOK, "home", homePage{
		basePage:     newBasePage("Proposals", r),
		Proposals:    proposals,
		AllTags:      allTags,
		Query:        query,
		Status:       status,
		SelectedTags: selected,
		Statuses:     statusChoices,
	})
}

type questionRow struct {
	Prompt     string
	IsRequired bool
}

type proposalForm struct {
	CreatedByName  string
	CreatedByEmail string
	Title          string
	Summary        string
	Background     string
	Aims           string
	Status         string
	SelectedTagIDs map[int32]bool
	Questions      []questionRow
}

type createPage struct {
	basePage
	AllTags  []domain.Tag
	Statuses []domain.ProposalStatus
	Form     proposalForm
	Errors   map[string]string
}

func (h *Handler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	allTags, err := h.tags.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if r.Method == http.MethodGet {
		form := proposalForm{
			Status:         string(domain.ProposalStatusOpen),
			SelectedTagIDs: map[int32]bool{},
			Questions:      make([]questionRow, emptyQuestionRows),
		}
		h.render(w, http.StatusOK, "proposal_create", createPage{
			basePage: newBasePage("Post a Proposal", r),
			AllTags:  allTags,
			Statuses: statusChoices,
			Form:     form,
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := proposalForm{
		CreatedByName:  r.PostFormValue("created_by_name"),
		CreatedByEmail: r.PostFormValue("created_by_email"),
		Title:          r.PostFormValue("title"),
		Summary:        r.PostFormValue("summary"),
		Background:     r.PostFormValue("background"),
		Aims:           r.PostFormValue("aims"),
		Status:         r.PostFormValue("status"),
		SelectedTagIDs: map[int32]bool{},
	}

	var tagIDs []int32
	for _, raw := range r.PostForm["tags"] {
		if id, err := strconv.Atoi(raw); err == nil {
			tagIDs = append(tagIDs, int32(id))
			form.SelectedTagIDs[int32(id)] = true
		}
	}

	// Question rows arrive as parallel "question_prompt" values; the
	// "question_required" checkboxes carry the row index they belong to.
	requiredRows := map[int]bool{}
	for _, raw := range r.PostForm["question_required"] {
		if idx, err := strconv.Atoi(raw); err == nil {
			requiredRows[idx] = true
		}
	}
	var questions []service.QuestionInput
	for i, prompt := range r.PostForm["question_prompt"] {
		form.Questions = append(form.Questions, questionRow{Prompt: prompt, IsRequired: requiredRows[i]})
		questions = append(questions, service.QuestionInput{Prompt: prompt, IsRequired: requiredRows[i]})
	}
	for len(form.Questions) < emptyQuestionRows {
		form.Questions = append(form.Questions, questionRow{})
	}

	proposal, err := h.proposals.Create(r.Context(), service.CreateProposalInput{
		CreatedByName:  form.CreatedByName,
		CreatedByEmail: form.CreatedByEmail,
		Title:          form.Title,
		Summary:        form.Summary,
		Background:     form.Background,
		Aims:           form.Aims,
		Status:         form.Status,
		TagIDs:         tagIDs,
		Questions:      questions,
	})
	if err != nil {
		if verr, ok := domain.AsValidation(err); ok {
			h.render(w, http.StatusUnprocessableEntity, "proposal_create", createPage{
				basePage: newBasePage("Post a Proposal", r),
				AllTags:  allTags,
				Statuses: statusChoices,
				Form:     form,
				Errors:   verr.Fields,
			})
			return
		}
		h.handleError(w, r, err)
		return
	}

	redirect(w, r, "/proposal/"+proposal.Slug+"/", "created")
}

type detailPage struct {
	basePage
	Proposal *domain.Proposal
}

func (h *Handler) ProposalDetail(w http.ResponseWriter, r *http.Request) {
	proposal, err := h.proposals.Get(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "proposal_detail", detailPage{
		basePage: newBasePage(proposal.Title, r),
		Proposal: proposal,
	})
}
