package service

import (
	"context"
	"sort"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/gh215tth/QLTV-dart/library/internal/repository"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

func (s *Service) CreateLoanItem(ctx context.Context, req model.CreateLoanItemRequest) (item model.LoanItem, err error) {
	ctx, span := s.startSpan(ctx, "Service.CreateLoanItem",
		attribute.Int("loan.id", req.LoanID),
		attribute.Int("book.id", req.BookID))
	defer func() { endSpan(span, err) }()

	err = s.repo.WithTx(ctx, func(repo repository.Repository) error {
		var err error
		item, err = createLoanItem(ctx, repo, model.LoanItem{
			LoanID:     req.LoanID,
			BookID:     req.BookID,
			ReturnDate: req.ReturnDate.OrNil(),
		})
		return err
	})
	if err != nil {
		return model.LoanItem{}, err
	}
	s.log.Debug("loan item created", zap.Int("id", item.ID), zap.Int("book_id", item.BookID))
	return item, nil
}

// createLoanItem validates and inserts one item inside an open transaction.
// Only an item that is still out takes a copy from stock.
func createLoanItem(ctx context.Context, repo repository.Repository, item model.LoanItem) (model.LoanItem, error) {
	var (
		loan model.Loan
		book model.Book
	)
	err := runChecks(ctx,
		func(ctx context.Context) (err error) {
			loan, err = repo.GetLoan(ctx, item.LoanID)
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrInvalidLoan
			}
			return err
		},
		func(ctx context.Context) (err error) {
			book, err = repo.LockBook(ctx, item.BookID)
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrInvalidBook
			}
			return err
		},
		func(context.Context) error {
			if book.Quantity <= 0 {
				return errs.ErrBookOutOfStock
			}
			return nil
		},
		func(ctx context.Context) error {
			borrowed, err := repo.HasActiveLoanItem(ctx, loan.UserID, item.BookID)
			if err != nil {
				return err
			}
			if borrowed {
				return errs.ErrAlreadyBorrowed
			}
			return nil
		},
	)
	if err != nil {
		return model.LoanItem{}, err
	}

	created, err := repo.CreateLoanItem(ctx, item)
	if err != nil {
		return model.LoanItem{}, err
	}
	if !created.Active() {
		return created, nil
	}
	ok, err := repo.AdjustQuantity(ctx, created.BookID, -1)
	if err != nil {
		return model.LoanItem{}, err
	}
	if !ok {
		return model.LoanItem{}, errs.ErrBookOutOfStock
	}
	return created, nil
}

func (s *Service) GetLoanItem(ctx context.Context, id int) (model.LoanItem, error) {
	return s.repo.GetLoanItem(ctx, id)
}

func (s *Service) ListLoanItems(ctx context.Context) ([]model.LoanItem, error) {
	return s.repo.ListLoanItems(ctx)
}

func (s *Service) ListLoanItemsByLoan(ctx context.Context, loanID int) ([]model.LoanItem, error) {
	items, err := s.repo.ListLoanItemsByLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.ErrNotFound
	}
	return items, nil
}

func (s *Service) UpdateLoanItem(ctx context.Context, id int, req model.UpdateLoanItemRequest) (item model.LoanItem, err error) {
	ctx, span := s.startSpan(ctx, "Service.UpdateLoanItem", attribute.Int("loan_item.id", id))
	defer func() { endSpan(span, err) }()

	err = s.repo.WithTx(ctx, func(repo repository.Repository) error {
		old, err := repo.LockLoanItem(ctx, id)
		if err != nil {
			return err
		}
		err = runChecks(ctx,
			func(context.Context) error {
				if req.LoanID != nil && *req.LoanID != old.LoanID {
					return errs.ErrInvalidUpdateLoanID
				}
				return nil
			},
			func(ctx context.Context) error {
				_, err := repo.GetBook(ctx, req.BookID)
				if errors.Is(err, errs.ErrNotFound) {
					return errs.ErrInvalidBook
				}
				return err
			},
		)
		if err != nil {
			return err
		}

		upd := model.LoanItem{
			ID:         old.ID,
			LoanID:     old.LoanID,
			BookID:     req.BookID,
			ReturnDate: req.ReturnDate.OrNil(),
		}
		if item, err = repo.UpdateLoanItem(ctx, upd); err != nil {
			return err
		}
		return applyDeltas(ctx, repo, quantityDeltas(old, upd))
	})
	if err != nil {
		return model.LoanItem{}, err
	}
	return item, nil
}

// quantityDeltas returns the stock change per book when old is replaced by upd.
// An active item holds exactly one copy of its book.
func quantityDeltas(old, upd model.LoanItem) map[int]int {
	deltas := make(map[int]int, 2)
	if old.Active() {
		deltas[old.BookID]++
	}
	if upd.Active() {
		deltas[upd.BookID]--
	}
	for bookID, d := range deltas {
		if d == 0 {
			delete(deltas, bookID)
		}
	}
	return deltas
}

// applyDeltas adjusts books in ascending id order so concurrent updates lock rows consistently.
func applyDeltas(ctx context.Context, repo repository.Repository, deltas map[int]int) error {
	ids := make([]int, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		ok, err := repo.AdjustQuantity(ctx, id, deltas[id])
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrBookOutOfStock
		}
	}
	return nil
}

func (s *Service) DeleteLoanItem(ctx context.Context, id int) (err error) {
	ctx, span := s.startSpan(ctx, "Service.DeleteLoanItem", attribute.Int("loan_item.id", id))
	defer func() { endSpan(span, err) }()

	return s.repo.WithTx(ctx, func(repo repository.Repository) error {
		item, err := repo.LockLoanItem(ctx, id)
		if err != nil {
			return err
		}
		if err = repo.DeleteLoanItem(ctx, id); err != nil {
			return err
		}
		if !item.Active() {
			return nil
		}
		_, err = repo.AdjustQuantity(ctx, item.BookID, 1)
		return err
	})
}
