package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/jackc/pgerrcode"
)

// Users and librarians share one table shape: id, username, email.

var accountColumns = []string{"id", "username", "email"}

const accountReturning = "returning id, username, email"

func createAccount[T any](ctx context.Context, db querier, table string, req model.AccountRequest) (T, error) {
	v, err := collectOne[T](ctx, db, qb.Insert(table).
		Columns("username", "email").
		Values(req.Username, req.Email).
		Suffix(accountReturning))
	return v, duplicateAccount(err)
}

func getAccount[T any](ctx context.Context, db querier, table string, id int, forUpdate bool) (T, error) {
	q := qb.Select(accountColumns...).From(table).Where(sq.Eq{"id": id})
	if forUpdate {
		q = q.Suffix("for update")
	}
	v, err := collectOne[T](ctx, db, q)
	return v, notFound(err)
}

func listAccounts[T any](ctx context.Context, db querier, table string) ([]T, error) {
	return collectAll[T](ctx, db, qb.Select(accountColumns...).From(table).OrderBy("id"))
}

func updateAccount[T any](ctx context.Context, db querier, table string, id int, req model.AccountRequest) (T, error) {
	v, err := collectOne[T](ctx, db, qb.Update(table).
		Set("username", req.Username).
		Set("email", req.Email).
		Where(sq.Eq{"id": id}).
		Suffix(accountReturning))
	if err = notFound(err); err != nil {
		return v, duplicateAccount(err)
	}
	return v, nil
}

func deleteAccount(ctx context.Context, db querier, table string, id int) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// duplicateAccount maps a unique violation to the column that clashed.
func duplicateAccount(err error) error {
	pgErr, ok := pgError(err, pgerrcode.UniqueViolation)
	if !ok {
		return err
	}
	switch {
	case strings.HasSuffix(pgErr.ConstraintName, "_username_key"):
		return errs.ErrDuplicateUsername
	case strings.HasSuffix(pgErr.ConstraintName, "_email_key"):
		return errs.ErrDuplicateEmail
	default:
		return err
	}
}
