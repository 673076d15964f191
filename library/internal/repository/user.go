package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/jackc/pgx/v5"
)

func (r *repository) CreateUser(ctx context.Context, req model.AccountRequest) (model.User, error) {
	return createAccount[model.User](ctx, r.db, userTableName, req)
}

func (r *repository) GetUser(ctx context.Context, id int) (model.User, error) {
	return getAccount[model.User](ctx, r.db, userTableName, id, false)
}

// LockUser reads the user row with FOR UPDATE, which also blocks new loans referencing it.
func (r *repository) LockUser(ctx context.Context, id int) (model.User, error) {
	return getAccount[model.User](ctx, r.db, userTableName, id, true)
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	return listAccounts[model.User](ctx, r.db, userTableName)
}

func (r *repository) UpdateUser(ctx context.Context, id int, req model.AccountRequest) (model.User, error) {
	return updateAccount[model.User](ctx, r.db, userTableName, id, req)
}

// DeleteUser removes the user; loans and their items cascade.
func (r *repository) DeleteUser(ctx context.Context, id int) error {
	return deleteAccount(ctx, r.db, userTableName, id)
}

func (r *repository) UserExists(ctx context.Context, userID int) (bool, error) {
	return r.exists(ctx, qb.Select("1").From(userTableName).Where(sq.Eq{"id": userID}))
}

func (r *repository) BorrowedBookIDs(ctx context.Context, userID int) ([]int, error) {
	query, args, err := qb.Select("distinct li.book_id").
		From(loanItemTableName + " li").
		Join(loanTableName + " l on l.id = li.loan_id").
		Where(sq.Eq{"l.user_id": userID}).
		Where(sq.Eq{"li.return_date": nil}).
		OrderBy("li.book_id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int])
}

func (r *repository) CountActiveItemsForUser(ctx context.Context, userID int) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(loanItemTableName + " li").
		Join(loanTableName + " l on l.id = li.loan_id").
		Where(sq.Eq{"l.user_id": userID}).
		Where(sq.Eq{"li.return_date": nil}))
}
