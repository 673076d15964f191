package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var loanColumns = []string{"id", "user_id", "loan_date"}

func (r *repository) CreateLoan(ctx context.Context, userID int, loanDate time.Time) (model.Loan, error) {
	l, err := collectOne[model.Loan](ctx, r.db, qb.Insert(loanTableName).
		Columns("user_id", "loan_date").
		Values(userID, loanDate).
		Suffix("returning id, user_id, loan_date"))
	if err != nil {
		if _, ok := isForeignKeyViolation(err); ok {
			return model.Loan{}, errs.ErrInvalidUser
		}
		r.log.Error("CreateLoan", zap.Int("user_id", userID), zap.Error(err))
		return model.Loan{}, err
	}
	return l, nil
}

func (r *repository) GetLoan(ctx context.Context, id int) (model.Loan, error) {
	l, err := collectOne[model.Loan](ctx, r.db, qb.Select(loanColumns...).
		From(loanTableName).
		Where(sq.Eq{"id": id}))
	return l, notFound(err)
}

func (r *repository) LockLoan(ctx context.Context, id int) (model.Loan, error) {
	l, err := collectOne[model.Loan](ctx, r.db, qb.Select(loanColumns...).
		From(loanTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update"))
	return l, notFound(err)
}

func (r *repository) UpdateLoan(ctx context.Context, id, userID int, loanDate time.Time) (model.Loan, error) {
	l, err := collectOne[model.Loan](ctx, r.db, qb.Update(loanTableName).
		Set("user_id", userID).
		Set("loan_date", loanDate).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, user_id, loan_date"))
	if _, ok := isForeignKeyViolation(err); ok {
		return model.Loan{}, errs.ErrInvalidUser
	}
	return l, notFound(err)
}

// DeleteLoan removes the header; loan_item rows go with it by cascade.
func (r *repository) DeleteLoan(ctx context.Context, id int) error {
	query, args, err := qb.Delete(loanTableName).Where(sq.Eq{"id": id}).ToSql()
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

func (r *repository) ListLoans(ctx context.Context) ([]model.LoanSummary, error) {
	q := fmt.Sprintf(`
select l.id, l.loan_date, u.username,
       case when count(li.id) = count(li.return_date)
           then '%s' else '%s' end as status
from %s l
    join %s u on u.id = l.user_id
    left join %s li on li.loan_id = l.id
group by l.id, l.loan_date, u.username
order by l.loan_date desc, l.id desc`,
		model.StatusReturned, model.StatusNotReturned, loanTableName, userTableName, loanItemTableName)

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	loans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.LoanSummary])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return loans, nil
}

func (r *repository) ListLoansByUser(ctx context.Context, userID int) ([]model.UserLoan, error) {
	return collectAll[model.UserLoan](ctx, r.db, qb.Select("l.id", "l.loan_date", "li.return_date", "b.title").
		From(loanTableName+" l").
		Join(loanItemTableName+" li on l.id = li.loan_id").
		Join(bookTableName+" b on b.id = li.book_id").
		Where(sq.Eq{"l.user_id": userID}).
		OrderBy("l.loan_date desc", "l.id desc", "li.id"))
}

func (r *repository) LoanDetails(ctx context.Context, id int) ([]model.LoanDetailsRow, error) {
	return collectAll[model.LoanDetailsRow](ctx, r.db, qb.Select(
		"l.id as loan_id",
		"l.loan_date",
		"u.username as user_name",
		"li.id as loan_item_id",
		"b.title",
		"b.author",
		"li.return_date",
	).
		From(loanTableName+" l").
		Join(userTableName+" u on u.id = l.user_id").
		Join(loanItemTableName+" li on li.loan_id = l.id").
		Join(bookTableName+" b on b.id = li.book_id").
		Where(sq.Eq{"l.id": id}).
		OrderBy("li.id"))
}

func (r *repository) CountUnreturnedItems(ctx context.Context, loanID int) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(loanItemTableName).
		Where(sq.Eq{"loan_id": loanID}).
		Where(sq.Eq{"return_date": nil}))
}

// ReturnOutstandingItems stamps every unreturned item of the loan and
// returns the book id of each stamped row (one entry per item).
func (r *repository) ReturnOutstandingItems(ctx context.Context, loanID int, returnDate time.Time) ([]int, error) {
	q := `
update loan_item
    set return_date = @return_date
where loan_id = @loan_id and return_date is null
returning book_id`
	args := pgx.NamedArgs{
		"loan_id":     loanID,
		"return_date": returnDate,
	}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	bookIDs, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, errors.Wrap(err, "ReturnOutstandingItems")
	}
	return bookIDs, nil
}
