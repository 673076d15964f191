package service

import (
	"context"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/gh215tth/QLTV-dart/library/internal/repository"
	"github.com/gh215tth/QLTV-dart/pkg/kafka"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ReturnBooks closes every outstanding item of a loan with today's date
// and puts one copy back per closed item.
func (s *Service) ReturnBooks(ctx context.Context, loanID int) (resp model.ReturnResponse, err error) {
	ctx, span := s.startSpan(ctx, "Service.ReturnBooks", attribute.Int("loan.id", loanID))
	defer func() { endSpan(span, err) }()

	today := model.NewDate(s.now())
	var (
		loan    model.Loan
		bookIDs []int
	)
	err = s.repo.WithTx(ctx, func(repo repository.Repository) error {
		var err error
		if loan, err = repo.GetLoan(ctx, loanID); err != nil {
			return err
		}
		if !today.After(loan.LoanDate.Time) {
			return errs.ErrInvalidReturnDate
		}
		bookIDs, err = repo.ReturnOutstandingItems(ctx, loanID, today.Time)
		if err != nil {
			return err
		}
		if len(bookIDs) == 0 {
			return errs.ErrNothingToReturn
		}
		return repo.RestockBooks(ctx, restockCounts(bookIDs))
	})
	if err != nil {
		return model.ReturnResponse{}, err
	}

	s.log.Info("books returned", zap.Int("loan_id", loanID), zap.Int("count", len(bookIDs)))
	s.publish(ctx, kafka.NewLoanEvent(kafka.EventLoanReturned, loanID, loan.UserID, bookIDs))
	return model.ReturnResponse{
		LoanID:     loanID,
		ReturnDate: today,
		Returned:   len(bookIDs),
	}, nil
}

// restockCounts counts closed items per book; a book returned twice gets two copies back.
func restockCounts(bookIDs []int) map[int]int {
	counts := make(map[int]int, len(bookIDs))
	for _, id := range bookIDs {
		counts[id]++
	}
	return counts
}
