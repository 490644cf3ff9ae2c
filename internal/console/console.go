// Package console is the operator-facing service: it owns the roster, the
// lead pool and the session, and turns every action into a notice.
//
// All methods are meant to be called from a single goroutine (the UI update
// loop). The pool and the roster are swapped as whole values, so a failed
// action never leaves partial state behind.
package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"leadconsole/internal/importdir"
	"leadconsole/internal/lead"
	"leadconsole/internal/notice"
	"leadconsole/internal/roster"
	"leadconsole/internal/session"
	"leadconsole/internal/trace"
)

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	Seed   []roster.User // nil means roster.DefaultSeed()
	Store  *importdir.Store
	Auth   session.Authenticator
	Logger *zap.Logger
	Tracer *trace.Provider
}

// Service holds the session's in-memory state.
type Service struct {
	users  *roster.Directory
	pool   lead.Pool
	shell  *session.Shell
	store  *importdir.Store
	log    *zap.Logger
	tracer *trace.Provider
}

// New builds a logged-out service with an empty pool.
func New(opts Options) (*Service, error) {
	seed := opts.Seed
	if seed == nil {
		seed = roster.DefaultSeed()
	}
	users, err := roster.New(seed)
	if err != nil {
		return nil, fmt.Errorf("seed roster: %w", err)
	}
	store := opts.Store
	if store == nil {
		if store, err = importdir.NewStore(""); err != nil {
			return nil, fmt.Errorf("import dir: %w", err)
		}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Noop()
	}

	s := &Service{
		users:  users,
		shell:  session.NewShell(opts.Auth),
		store:  store,
		log:    log,
		tracer: tracer,
	}
	s.shell.OnChange = func(from, to session.State) {
		s.log.Debug("session state changed", zap.Stringer("from", from), zap.Stringer("to", to))
	}
	return s, nil
}

// Shell exposes the session state machine (state, operator, tab).
func (s *Service) Shell() *session.Shell { return s.shell }

// Store is the CSV source files are read from.
func (s *Service) Store() *importdir.Store { return s.store }

// Users returns the live roster in insertion order.
func (s *Service) Users() []roster.User { return s.users.List() }

// Pool returns the current lead pool.
func (s *Service) Pool() lead.Pool { return s.pool }

// Login authenticates the operator and opens the dashboard.
func (s *Service) Login(ctx context.Context, username, password string) (notice.Notice, error) {
	ctx, span := s.tracer.Start(ctx, "session.login")
	err := s.shell.Login(ctx, username, password)
	trace.End(span, err)
	if err != nil {
		s.log.Info("login rejected", zap.Error(err))
		return notice.FromError(err), err
	}
	s.log.Info("login", zap.String("operator", s.shell.Operator()))
	return notice.Success("Login realizado", "Bem-vindo ao sistema!"), nil
}

// Logout closes the session. The roster and the pool survive until exit.
func (s *Service) Logout() notice.Notice {
	s.log.Info("logout", zap.String("operator", s.shell.Operator()))
	s.shell.Logout()
	return notice.Info("Logout realizado", "Até logo!")
}

// ImportResult describes one accepted CSV import.
type ImportResult struct {
	Source string
	Report lead.ParseReport
}

// Import parses raw as a lead CSV and, on success, replaces the pool.
// On error the pool is unchanged.
func (s *Service) Import(ctx context.Context, source, raw string) (ImportResult, notice.Notice, error) {
	_, span := s.tracer.Start(ctx, "lead.import", attribute.String("source", source))
	leads, report, err := lead.ParseWithReport(raw)
	if err != nil {
		var ie *lead.ImportError
		if errors.As(err, &ie) && ie.Source == "" {
			ie.Source = source
		}
		trace.End(span, err)
		s.log.Warn("import failed", zap.String("source", source), zap.Error(err))
		return ImportResult{}, notice.FromError(err), err
	}
	trace.SetAttributes(span,
		attribute.Int("lead.imported", report.Imported),
		attribute.Int("lead.skipped", report.Skipped),
		attribute.Int("lead.zeroed", report.ZeroedAmounts),
	)
	trace.End(span, nil)

	s.pool = lead.NewPool(leads)
	s.log.Info("leads imported",
		zap.String("source", source),
		zap.Int("rows", report.Rows),
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped),
		zap.Int("zeroed_amounts", report.ZeroedAmounts),
	)

	msg := lead.FormatCount(report.Imported) + " leads processados com sucesso!"
	if report.ZeroedAmounts > 0 {
		msg += fmt.Sprintf(" %s valores inválidos considerados %s.", lead.FormatCount(report.ZeroedAmounts), lead.FormatBRL(decimal.Zero))
	}
	return ImportResult{Source: source, Report: report}, notice.Success("Leads importados", msg), nil
}

// Distribute hands the first count leads of the pool to the user sellerID.
// An unknown or blank sellerID is reported as lead.ErrNoRecipient.
func (s *Service) Distribute(ctx context.Context, sellerID string, count int) (lead.Distribution, notice.Notice, error) {
	_, span := s.tracer.Start(ctx, "lead.distribute",
		attribute.String("seller.id", sellerID),
		attribute.Int("lead.requested", count),
	)
	seller, _ := s.users.Get(sellerID)
	next, d, err := s.pool.Distribute(count, seller)
	if err != nil {
		trace.End(span, err)
		s.log.Info("distribution rejected", zap.String("seller_id", sellerID), zap.Error(err))
		return lead.Distribution{}, notice.FromError(err), err
	}
	trace.SetAttributes(span,
		attribute.Int("lead.count", d.Count()),
		attribute.String("lead.total", d.Total.StringFixed(2)),
	)
	trace.End(span, nil)

	s.pool = next
	s.log.Info("leads distributed",
		zap.String("seller_id", seller.ID),
		zap.Int("requested", count),
		zap.Int("count", d.Count()),
		zap.String("total", d.Total.StringFixed(2)),
		zap.Int("remaining", s.pool.Len()),
	)
	msg := fmt.Sprintf("Distribuído %s leads, no valor total de %s para %s", lead.FormatCount(d.Count()), lead.FormatBRL(d.Total), seller.Name)
	return d, notice.Success("Leads distribuídos com sucesso!", msg), nil
}

// AddUser registers a new seller.
func (s *Service) AddUser(ctx context.Context, c roster.Candidate) (roster.User, notice.Notice, error) {
	_, span := s.tracer.Start(ctx, "roster.add", attribute.String("user.tier", string(c.Tier)))
	u, err := s.users.Add(c)
	trace.End(span, err)
	if err != nil {
		s.log.Info("user rejected", zap.Error(err))
		return roster.User{}, notice.FromError(err), err
	}
	s.log.Info("user added", zap.String("user_id", u.ID), zap.String("tier", string(u.Tier)), zap.Int("users", s.users.Len()))
	return u, notice.Success("Usuário cadastrado", u.Name+" foi cadastrado com sucesso!"), nil
}

// RemoveUser deletes a non-master user.
func (s *Service) RemoveUser(ctx context.Context, id string) (notice.Notice, error) {
	_, span := s.tracer.Start(ctx, "roster.remove", attribute.String("user.id", id))
	err := s.users.Remove(id)
	trace.End(span, err)
	if err != nil {
		s.log.Info("user removal rejected", zap.String("user_id", id), zap.Error(err))
		return notice.FromError(err), err
	}
	s.log.Info("user removed", zap.String("user_id", id), zap.Int("users", s.users.Len()))
	return notice.Success("Usuário removido", "Usuário removido com sucesso."), nil
}
