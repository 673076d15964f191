package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// WithTx runs fn inside one transaction; nested calls reuse the outer one.
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	CreateUser(ctx context.Context, req model.AccountRequest) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	LockUser(ctx context.Context, id int) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int, req model.AccountRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int) error
	UserExists(ctx context.Context, userID int) (bool, error)
	BorrowedBookIDs(ctx context.Context, userID int) ([]int, error)
	CountActiveItemsForUser(ctx context.Context, userID int) (int, error)

	CreateLibrarian(ctx context.Context, req model.AccountRequest) (model.Librarian, error)
	GetLibrarian(ctx context.Context, id int) (model.Librarian, error)
	ListLibrarians(ctx context.Context) ([]model.Librarian, error)
	UpdateLibrarian(ctx context.Context, id int, req model.AccountRequest) (model.Librarian, error)
	DeleteLibrarian(ctx context.Context, id int) error

	CreateCategory(ctx context.Context, name string) (model.Category, error)
	GetCategory(ctx context.Context, id int) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id int, name string) (model.Category, error)
	DeleteCategory(ctx context.Context, id int) error
	CategoryExists(ctx context.Context, id int) (bool, error)
	CountBooksInCategory(ctx context.Context, id int) (int, error)

	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	LockBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, search string) ([]model.Book, error)
	ListBooksByCategory(ctx context.Context, categoryID int) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
	TopBorrowed(ctx context.Context, limit int) ([]model.Book, error)
	AdjustQuantity(ctx context.Context, bookID, delta int) (bool, error)
	RestockBooks(ctx context.Context, counts map[int]int) error
	IncrementTotalBorrowed(ctx context.Context, bookID int) error
	CountActiveItemsForBook(ctx context.Context, bookID int) (int, error)

	CreateLoan(ctx context.Context, userID int, loanDate time.Time) (model.Loan, error)
	GetLoan(ctx context.Context, id int) (model.Loan, error)
	LockLoan(ctx context.Context, id int) (model.Loan, error)
	UpdateLoan(ctx context.Context, id, userID int, loanDate time.Time) (model.Loan, error)
	DeleteLoan(ctx context.Context, id int) error
	ListLoans(ctx context.Context) ([]model.LoanSummary, error)
	ListLoansByUser(ctx context.Context, userID int) ([]model.UserLoan, error)
	LoanDetails(ctx context.Context, id int) ([]model.LoanDetailsRow, error)
	CountUnreturnedItems(ctx context.Context, loanID int) (int, error)
	ReturnOutstandingItems(ctx context.Context, loanID int, returnDate time.Time) ([]int, error)

	CreateLoanItem(ctx context.Context, item model.LoanItem) (model.LoanItem, error)
	GetLoanItem(ctx context.Context, id int) (model.LoanItem, error)
	LockLoanItem(ctx context.Context, id int) (model.LoanItem, error)
	ListLoanItems(ctx context.Context) ([]model.LoanItem, error)
	ListLoanItemsByLoan(ctx context.Context, loanID int) ([]model.LoanItem, error)
	UpdateLoanItem(ctx context.Context, item model.LoanItem) (model.LoanItem, error)
	DeleteLoanItem(ctx context.Context, id int) error
	HasActiveLoanItem(ctx context.Context, userID, bookID int) (bool, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	pool *pgxpool.Pool
	db   querier
	log  *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		pool: db,
		db:   db,
		log:  log.Named("repo"),
	}, nil
}

const (
	userTableName     = `"user"`
	categoryTableName = `category`
	bookTableName     = `book`
	loanTableName     = `loan`
	loanItemTableName = `loan_item`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithTx(ctx context.Context, fn func(repo Repository) error) error {
	if r.pool == nil {
		return fn(r)
	}
	return pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(&repository{db: tx, log: r.log})
	})
}

func collectOne[T any](ctx context.Context, db querier, b sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := b.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, err
	}
	return v, nil
}

func collectAll[T any](ctx context.Context, db querier, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

func (r *repository) exists(ctx context.Context, b sq.SelectBuilder) (bool, error) {
	query, args, err := b.Prefix("select exists (").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}
	var ok bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *repository) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	return err
}

func pgError(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}
	return nil, false
}

func isForeignKeyViolation(err error) (*pgconn.PgError, bool) {
	return pgError(err, pgerrcode.ForeignKeyViolation)
}

func isCheckViolation(err error) bool {
	_, ok := pgError(err, pgerrcode.CheckViolation)
	return ok
}
