package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
)

var loanItemColumns = []string{"id", "loan_id", "book_id", "return_date"}

const loanItemReturning = "returning id, loan_id, book_id, return_date"

func (r *repository) CreateLoanItem(ctx context.Context, item model.LoanItem) (model.LoanItem, error) {
	li, err := collectOne[model.LoanItem](ctx, r.db, qb.Insert(loanItemTableName).
		Columns("loan_id", "book_id", "return_date").
		Values(item.LoanID, item.BookID, item.ReturnDate).
		Suffix(loanItemReturning))
	if pgErr, ok := isForeignKeyViolation(err); ok {
		if pgErr.ConstraintName == "loan_item_loan_id_fkey" {
			return model.LoanItem{}, errs.ErrInvalidLoan
		}
		return model.LoanItem{}, errs.ErrInvalidBook
	}
	return li, err
}

func (r *repository) GetLoanItem(ctx context.Context, id int) (model.LoanItem, error) {
	li, err := collectOne[model.LoanItem](ctx, r.db, qb.Select(loanItemColumns...).
		From(loanItemTableName).
		Where(sq.Eq{"id": id}))
	return li, notFound(err)
}

func (r *repository) LockLoanItem(ctx context.Context, id int) (model.LoanItem, error) {
	li, err := collectOne[model.LoanItem](ctx, r.db, qb.Select(loanItemColumns...).
		From(loanItemTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update"))
	return li, notFound(err)
}

func (r *repository) ListLoanItems(ctx context.Context) ([]model.LoanItem, error) {
	return collectAll[model.LoanItem](ctx, r.db, qb.Select(loanItemColumns...).
		From(loanItemTableName).
		OrderBy("id"))
}

func (r *repository) ListLoanItemsByLoan(ctx context.Context, loanID int) ([]model.LoanItem, error) {
	return collectAll[model.LoanItem](ctx, r.db, qb.Select(loanItemColumns...).
		From(loanItemTableName).
		Where(sq.Eq{"loan_id": loanID}).
		OrderBy("id"))
}

// UpdateLoanItem writes book_id and return_date; loan_id is never updated.
func (r *repository) UpdateLoanItem(ctx context.Context, item model.LoanItem) (model.LoanItem, error) {
	li, err := collectOne[model.LoanItem](ctx, r.db, qb.Update(loanItemTableName).
		Set("book_id", item.BookID).
		Set("return_date", item.ReturnDate).
		Where(sq.Eq{"id": item.ID}).
		Suffix(loanItemReturning))
	if _, ok := isForeignKeyViolation(err); ok {
		return model.LoanItem{}, errs.ErrInvalidBook
	}
	return li, notFound(err)
}

func (r *repository) DeleteLoanItem(ctx context.Context, id int) error {
	query, args, err := qb.Delete(loanItemTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) HasActiveLoanItem(ctx context.Context, userID, bookID int) (bool, error) {
	return r.exists(ctx, qb.Select("1").
		From(loanItemTableName+" li").
		Join(loanTableName+" l on l.id = li.loan_id").
		Where(sq.Eq{"l.user_id": userID}).
		Where(sq.Eq{"li.book_id": bookID}).
		Where(sq.Eq{"li.return_date": nil}))
}
