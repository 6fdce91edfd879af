// Package actions orchestrates the create flows: validate the form,
// call the backend, signal the affected list view to refresh and
// produce a localized outcome message.
package actions

import (
	"context"
	"log/slog"
	"net/url"

	"talentboard/internal/hiring"
	"talentboard/internal/validate"
)

// Creator is the subset of the backend client the create actions need.
type Creator interface {
	CreateCompany(ctx context.Context, payload hiring.CompanyCreate) (*hiring.Company, error)
	CreateOffer(ctx context.Context, payload hiring.OfferCreate) (*hiring.Offer, error)
	CreateCandidate(ctx context.Context, payload hiring.CandidateCreate) (*hiring.Candidate, error)
}

// Revalidator marks a list path stale so its next read re-fetches from
// the backend. In the web layer this drives the post-create redirect.
type Revalidator func(path string)

// Result is the outcome of one create action. Either Errors is
// populated (validation failed, nothing was sent) or Message carries a
// localized success/failure notification.
type Result struct {
	OK      bool
	Message string
	Errors  validate.FieldErrors
}

// Failed reports whether the result should render as destructive.
func (r Result) Failed() bool {
	return !r.OK
}

// Actions bundles the create flows behind a shared client and refresh
// signal.
type Actions struct {
	client     Creator
	revalidate Revalidator
	logger     *slog.Logger
}

// New builds the action set. revalidate may be nil when no list
// refresh signal is wanted.
func New(client Creator, revalidate Revalidator, logger *slog.Logger) *Actions {
	if revalidate == nil {
		revalidate = func(string) {}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Actions{client: client, revalidate: revalidate, logger: logger}
}

// CreateCompany validates and submits the company form.
func (a *Actions) CreateCompany(ctx context.Context, form url.Values) Result {
	payload, errs := validate.Company(form)
	if errs != nil {
		return Result{Errors: errs}
	}

	if _, err := a.client.CreateCompany(ctx, *payload); err != nil {
		a.logger.Error("create company failed", slog.Any("error", err))
		return Result{Message: "Error al crear la empresa."}
	}

	a.revalidate("/dashboard/empresas")
	return Result{OK: true, Message: "Empresa creada con éxito."}
}

// CreateOffer validates and submits the offer form.
func (a *Actions) CreateOffer(ctx context.Context, form url.Values) Result {
	payload, errs := validate.Offer(form)
	if errs != nil {
		return Result{Errors: errs}
	}

	if _, err := a.client.CreateOffer(ctx, *payload); err != nil {
		a.logger.Error("create offer failed", slog.Any("error", err))
		return Result{Message: "Error al crear la oferta."}
	}

	a.revalidate("/dashboard/ofertas")
	return Result{OK: true, Message: "Oferta creada con éxito."}
}

// CreateCandidate validates and submits the candidate form.
func (a *Actions) CreateCandidate(ctx context.Context, form url.Values) Result {
	payload, errs := validate.Candidate(form)
	if errs != nil {
		return Result{Errors: errs}
	}

	if _, err := a.client.CreateCandidate(ctx, *payload); err != nil {
		a.logger.Error("create candidate failed", slog.Any("error", err))
		return Result{Message: "Error al crear el candidato."}
	}

	a.revalidate("/dashboard/candidatos")
	return Result{OK: true, Message: "Candidato creado con éxito."}
}
