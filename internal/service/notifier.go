package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"volunteer-portal/internal/domain"
	"volunteer-portal/internal/logger"
	"volunteer-portal/internal/mail"
)

type notifier struct {
	sender  mail.Sender
	baseURL string
	timeout time.Duration
}

// NewNotifier builds the dispatcher. baseURL is the public origin used in
// dashboard links; timeout bounds every delivery attempt.
func NewNotifier(sender mail.Sender, baseURL string, timeout time.Duration) Notifier {
	return &notifier{
		sender:  sender,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

func (n *notifier) ProposalCreated(ctx context.Context, p *domain.Proposal) {
	link := n.dashboardLink(p)
	body := fmt.Sprintf(
		"Your proposal has been created successfully!\n\n"+
			"Title: %s\n\n"+
			"Owner dashboard (bookmark this link):\n%s\n\n"+
			"This link gives you access to:\n"+
			"- View signups\n"+
			"- Approve / Reject volunteers\n"+
			"- Close / Reopen listing\n"+
			"- Delete listing (with confirmation)\n\n"+
			"Best,\nMSRIG",
		p.Title, link)
	n.send(ctx, "proposal-created", mail.Message{
		Subject:  fmt.Sprintf("MSRIG Proposal Created - Owner Dashboard Link - %s", p.Title),
		To:       p.CreatedByEmail,
		TextBody: body,
	})
}

func (n *notifier) SignupReceived(ctx context.Context, p *domain.Proposal, s *domain.Signup) {
	body := fmt.Sprintf(
		"A new volunteer signed up for your proposal:\n\n"+
			"Volunteer: %s\nEmail: %s\n\n"+
			"Owner dashboard:\n%s\n",
		s.VolunteerName, s.VolunteerEmail, n.dashboardLink(p))
	n.send(ctx, "signup-created", mail.Message{
		Subject:  fmt.Sprintf("New MSRIG Signup - %s", p.Title),
		To:       p.CreatedByEmail,
		TextBody: body,
	})
}

func (n *notifier) DecisionMade(ctx context.Context, p *domain.Proposal, s *domain.Signup) {
	var subject, body string
	if s.Status == domain.SignupStatusApproved {
		subject = fmt.Sprintf("MSRIG Update: Approved - %s", p.Title)
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"You have been APPROVED for:\n%s\n\n"+
				"The proposal owner will contact you soon.\n\n"+
				"Best,\nMSRIG",
			s.VolunteerName, p.Title)
	} else {
		subject = fmt.Sprintf("MSRIG Update: Not Selected - %s", p.Title)
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"Thank you for signing up for:\n%s\n\n"+
				"At this time, you were not selected.\n\n"+
				"Please feel free to apply for other opportunities.\n\n"+
				"Best,\nMSRIG",
			s.VolunteerName, p.Title)
	}
	n.send(ctx, "decision-made", mail.Message{
		Subject:  subject,
		To:       s.VolunteerEmail,
		TextBody: body,
	})
}

// send attempts one delivery and never lets a transport failure escape; a
// mail-provider outage must not block the triggering user action.
func (n *notifier) send(ctx context.Context, event string, msg mail.Message) {
	if msg.To == "" {
		logger.Info("notification skipped: empty recipient", "event", event)
		return
	}
	sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.sender.Send(sendCtx, msg); err != nil {
		logger.Error("notification delivery failed", "event", event, "to", msg.To, "subject", msg.Subject, "error", err)
		return
	}
	logger.Info("notification sent", "event", event, "to", msg.To, "subject", msg.Subject)
}

func (n *notifier) dashboardLink(p *domain.Proposal) string {
	return fmt.Sprintf("%s/proposal/%s/owner/%s/", n.baseURL, p.Slug, p.OwnerToken)
}
