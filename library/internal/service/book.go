package service

import (
	"context"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/gh215tth/QLTV-dart/library/internal/repository"
)

const (
	DefaultTopBorrowed = 10
	MaxTopBorrowed     = 100
)

func (s *Service) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	if err := categoryMustExist(ctx, s.repo, req.CategoryID); err != nil {
		return model.Book{}, err
	}
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

// ListBooks filters by a case-insensitive substring of title or author when search is set.
func (s *Service) ListBooks(ctx context.Context, search string) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, search)
}

func (s *Service) ListBooksByCategory(ctx context.Context, categoryID int) ([]model.Book, error) {
	if err := categoryMustExist(ctx, s.repo, categoryID); err != nil {
		return nil, err
	}
	return s.repo.ListBooksByCategory(ctx, categoryID)
}

func (s *Service) UpdateBook(ctx context.Context, id int, req model.BookRequest) (model.Book, error) {
	if err := categoryMustExist(ctx, s.repo, req.CategoryID); err != nil {
		return model.Book{}, err
	}
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	return s.repo.WithTx(ctx, func(repo repository.Repository) error {
		if _, err := repo.LockBook(ctx, id); err != nil {
			return err
		}
		n, err := repo.CountActiveItemsForBook(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.ErrBookInUse
		}
		return repo.DeleteBook(ctx, id)
	})
}

func (s *Service) TopBorrowed(ctx context.Context, limit int) ([]model.Book, error) {
	switch {
	case limit <= 0:
		limit = DefaultTopBorrowed
	case limit > MaxTopBorrowed:
		limit = MaxTopBorrowed
	}
	return s.repo.TopBorrowed(ctx, limit)
}

// BorrowedBookIDs lists the distinct books the user currently has out.
func (s *Service) BorrowedBookIDs(ctx context.Context, userID int) ([]int, error) {
	return s.repo.BorrowedBookIDs(ctx, userID)
}

func categoryMustExist(ctx context.Context, repo repository.Repository, id int) error {
	ok, err := repo.CategoryExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrInvalidCategory
	}
	return nil
}
