package services

import (
	"context"
	"fmt"
	"log/slog"

	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/observability"
)

type activityService struct {
	repo   domain.ActivityRepository
	emails domain.EmailService
	logger *slog.Logger
}

// NewActivityService creates an ActivityService backed by repo. emails may be nil,
// in which case no confirmation emails are sent.
func NewActivityService(repo domain.ActivityRepository, emails domain.EmailService, logger *slog.Logger) domain.ActivityService {
	return &activityService{
		repo:   repo,
		emails: emails,
		logger: logger,
	}
}

func (s *activityService) ListActivities(ctx context.Context) (domain.ActivityCatalog, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return catalog, nil
}

func (s *activityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	err := s.signup(ctx, activityName, email)
	observability.RecordRosterChange(observability.OperationSignup, err)
	if err != nil {
		return "", err
	}
	s.confirm(ctx, activityName, email, s.sendSignup)
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *activityService) signup(ctx context.Context, activityName, email string) error {
	if err := s.repo.AddParticipant(ctx, activityName, email); err != nil {
		return fmt.Errorf("add participant: %w", err)
	}
	return nil
}

func (s *activityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	err := s.unregister(ctx, activityName, email)
	observability.RecordRosterChange(observability.OperationUnregister, err)
	if err != nil {
		return "", err
	}
	s.confirm(ctx, activityName, email, s.sendUnregister)
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

func (s *activityService) unregister(ctx context.Context, activityName, email string) error {
	if err := s.repo.RemoveParticipant(ctx, activityName, email); err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}
	return nil
}

// confirm sends the confirmation email for a roster change that already happened.
// A failure is logged and never reaches the caller.
func (s *activityService) confirm(ctx context.Context, activityName, email string, notify func(context.Context, *domain.RosterEmailData) error) {
	if s.emails == nil {
		return
	}
	a, err := s.repo.Get(ctx, activityName)
	if err != nil {
		s.logger.WarnContext(ctx, "activity lookup for confirmation email failed", "activity", activityName, "err", err)
		return
	}
	data := &domain.RosterEmailData{Email: email, ActivityName: activityName, Schedule: a.Schedule}
	if err := notify(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "confirmation email failed", "activity", activityName, "to", email, "err", err)
	}
}

func (s *activityService) sendSignup(ctx context.Context, data *domain.RosterEmailData) error {
	return s.emails.SendSignupConfirmation(ctx, data)
}

func (s *activityService) sendUnregister(ctx context.Context, data *domain.RosterEmailData) error {
	return s.emails.SendUnregisterConfirmation(ctx, data)
}

// SeedRegistry loads the catalog from source into repo. If source yields no
// activities the fallback catalog is used instead.
func SeedRegistry(ctx context.Context, source domain.ActivityCatalogSource, fallback domain.ActivityCatalog, repo domain.ActivityRepository, logger *slog.Logger) error {
	catalog, err := source.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load activity catalog: %w", err)
	}
	if len(catalog) == 0 {
		logger.WarnContext(ctx, "activity catalog is empty, using built-in activities")
		catalog = fallback
	}
	if err := repo.Reset(ctx, catalog); err != nil {
		return fmt.Errorf("reset registry: %w", err)
	}
	logger.InfoContext(ctx, "activity registry seeded", "activities", len(catalog))
	return nil
}
