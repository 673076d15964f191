package service

import (
	"context"
	"time"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/gh215tth/QLTV-dart/library/internal/repository"
	"github.com/gh215tth/QLTV-dart/pkg/kafka"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	return createLoan(ctx, s.repo, req.UserID, req.LoanDate.Time)
}

func createLoan(ctx context.Context, repo repository.Repository, userID int, loanDate time.Time) (model.Loan, error) {
	if err := userMustExist(ctx, repo, userID); err != nil {
		return model.Loan{}, err
	}
	return repo.CreateLoan(ctx, userID, loanDate)
}

func userMustExist(ctx context.Context, repo repository.Repository, userID int) error {
	ok, err := repo.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrInvalidUser
	}
	return nil
}

// CreateLoanWithItem opens a loan and borrows one book in a single transaction.
// A failed item rolls the loan back, so no empty loan is left behind.
func (s *Service) CreateLoanWithItem(ctx context.Context, req model.CreateLoanWithItemRequest) (resp model.CreateLoanWithItemResponse, err error) {
	ctx, span := s.startSpan(ctx, "Service.CreateLoanWithItem",
		attribute.Int("user.id", req.UserID),
		attribute.Int("book.id", req.BookID))
	defer func() { endSpan(span, err) }()

	err = s.repo.WithTx(ctx, func(repo repository.Repository) error {
		loan, err := createLoan(ctx, repo, req.UserID, req.LoanDate.Time)
		if err != nil {
			return err
		}
		item, err := createLoanItem(ctx, repo, model.LoanItem{
			LoanID:     loan.ID,
			BookID:     req.BookID,
			ReturnDate: req.ReturnDate.OrNil(),
		})
		if err != nil {
			s.log.Info("loan discarded",
				zap.Int("user_id", req.UserID),
				zap.Int("book_id", req.BookID),
				zap.String("kind", errs.Kind(err)))
			return err
		}
		resp = model.CreateLoanWithItemResponse{LoanID: loan.ID, LoanItem: item}
		return nil
	})
	if err != nil {
		return model.CreateLoanWithItemResponse{}, err
	}

	if err := s.repo.IncrementTotalBorrowed(ctx, req.BookID); err != nil {
		s.log.Warn("IncrementTotalBorrowed", zap.Int("book_id", req.BookID), zap.Error(err))
	}
	s.publish(ctx, kafka.NewLoanEvent(kafka.EventLoanBorrowed, resp.LoanID, req.UserID, []int{req.BookID}))
	return resp, nil
}

func (s *Service) GetLoan(ctx context.Context, id int) (model.Loan, error) {
	return s.repo.GetLoan(ctx, id)
}

func (s *Service) ListLoans(ctx context.Context) ([]model.LoanSummary, error) {
	return s.repo.ListLoans(ctx)
}

func (s *Service) ListLoansByUser(ctx context.Context, userID int) ([]model.UserLoan, error) {
	if err := userMustExist(ctx, s.repo, userID); err != nil {
		return nil, err
	}
	return s.repo.ListLoansByUser(ctx, userID)
}

func (s *Service) GetLoanWithItems(ctx context.Context, id int) (model.LoanDetails, error) {
	rows, err := s.repo.LoanDetails(ctx, id)
	if err != nil {
		return model.LoanDetails{}, err
	}
	if len(rows) == 0 {
		return model.LoanDetails{}, errs.ErrNotFound
	}
	details := model.LoanDetails{
		LoanID:   rows[0].LoanID,
		LoanDate: rows[0].LoanDate,
		UserName: rows[0].UserName,
		Items:    make([]model.LoanDetailsItem, 0, len(rows)),
	}
	for _, row := range rows {
		details.Items = append(details.Items, model.LoanDetailsItem{
			LoanItemID: row.LoanItemID,
			Title:      row.Title,
			Author:     row.Author,
			ReturnDate: row.ReturnDate,
		})
	}
	return details, nil
}

func (s *Service) UpdateLoan(ctx context.Context, id int, req model.CreateLoanRequest) (model.Loan, error) {
	if err := userMustExist(ctx, s.repo, req.UserID); err != nil {
		return model.Loan{}, err
	}
	return s.repo.UpdateLoan(ctx, id, req.UserID, req.LoanDate.Time)
}

// DeleteLoan refuses while any book of the loan is still out.
func (s *Service) DeleteLoan(ctx context.Context, id int) (err error) {
	ctx, span := s.startSpan(ctx, "Service.DeleteLoan", attribute.Int("loan.id", id))
	defer func() { endSpan(span, err) }()

	return s.repo.WithTx(ctx, func(repo repository.Repository) error {
		if _, err := repo.LockLoan(ctx, id); err != nil {
			return err
		}
		n, err := repo.CountUnreturnedItems(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.ErrLoanHasUnreturnedItems
		}
		return repo.DeleteLoan(ctx, id)
	})
}
