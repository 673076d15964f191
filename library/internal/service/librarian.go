package service

import (
	"context"

	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"go.uber.org/zap"
)

func (s *Service) CreateLibrarian(ctx context.Context, req model.AccountRequest) (model.Librarian, error) {
	librarian, err := s.repo.CreateLibrarian(ctx, req)
	if err != nil {
		return model.Librarian{}, err
	}
	s.log.Info("librarian created", zap.Int("librarian_id", librarian.ID))
	return librarian, nil
}

func (s *Service) GetLibrarian(ctx context.Context, id int) (model.Librarian, error) {
	return s.repo.GetLibrarian(ctx, id)
}

func (s *Service) ListLibrarians(ctx context.Context) ([]model.Librarian, error) {
	return s.repo.ListLibrarians(ctx)
}

func (s *Service) UpdateLibrarian(ctx context.Context, id int, req model.AccountRequest) (model.Librarian, error) {
	return s.repo.UpdateLibrarian(ctx, id, req)
}

func (s *Service) DeleteLibrarian(ctx context.Context, id int) error {
	return s.repo.DeleteLibrarian(ctx, id)
}
