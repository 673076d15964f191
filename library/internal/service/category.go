package service

import (
	"context"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/gh215tth/QLTV-dart/library/internal/repository"
)

func (s *Service) CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error) {
	return s.repo.CreateCategory(ctx, req.Name)
}

func (s *Service) GetCategory(ctx context.Context, id int) (model.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) UpdateCategory(ctx context.Context, id int, req model.CategoryRequest) (model.Category, error) {
	return s.repo.UpdateCategory(ctx, id, req.Name)
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	return s.repo.WithTx(ctx, func(repo repository.Repository) error {
		n, err := repo.CountBooksInCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.ErrCategoryInUse
		}
		return repo.DeleteCategory(ctx, id)
	})
}
