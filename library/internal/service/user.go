package service

import (
	"context"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/gh215tth/QLTV-dart/library/internal/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

func (s *Service) CreateUser(ctx context.Context, req model.AccountRequest) (model.User, error) {
	user, err := s.repo.CreateUser(ctx, req)
	if err != nil {
		return model.User{}, err
	}
	s.log.Info("user created", zap.Int("user_id", user.ID))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, id int, req model.AccountRequest) (model.User, error) {
	return s.repo.UpdateUser(ctx, id, req)
}

// DeleteUser removes a user whose books are all back on the shelf.
// Returned loans go with the user.
func (s *Service) DeleteUser(ctx context.Context, id int) (err error) {
	ctx, span := s.startSpan(ctx, "Service.DeleteUser", attribute.Int("user.id", id))
	defer func() { endSpan(span, err) }()

	return s.repo.WithTx(ctx, func(repo repository.Repository) error {
		if _, err := repo.LockUser(ctx, id); err != nil {
			return err
		}
		n, err := repo.CountActiveItemsForUser(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.ErrUserHasUnreturnedItems
		}
		return repo.DeleteUser(ctx, id)
	})
}
