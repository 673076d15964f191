package repository

import (
	"context"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var bookColumns = []string{"id", "title", "author", "category_id", "quantity", "total_borrowed"}

const bookReturning = "returning id, title, author, category_id, quantity, total_borrowed"

func (r *repository) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	b, err := collectOne[model.Book](ctx, r.db, qb.Insert(bookTableName).
		Columns("title", "author", "category_id", "quantity").
		Values(req.Title, req.Author, req.CategoryID, req.Quantity).
		Suffix(bookReturning))
	if _, ok := isForeignKeyViolation(err); ok {
		return model.Book{}, errs.ErrInvalidCategory
	}
	return b, err
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	b, err := collectOne[model.Book](ctx, r.db, qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"id": id}))
	return b, notFound(err)
}

// LockBook reads the book row with FOR UPDATE; only meaningful inside WithTx.
func (r *repository) LockBook(ctx context.Context, id int) (model.Book, error) {
	b, err := collectOne[model.Book](ctx, r.db, qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update"))
	return b, notFound(err)
}

func (r *repository) ListBooks(ctx context.Context, search string) ([]model.Book, error) {
	q := qb.Select(bookColumns...).From(bookTableName)
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
		})
	}
	r.log.Debug("ListBooks", zap.String("search", search))
	return collectAll[model.Book](ctx, r.db, q.OrderBy("id"))
}

func (r *repository) ListBooksByCategory(ctx context.Context, categoryID int) ([]model.Book, error) {
	return collectAll[model.Book](ctx, r.db, qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("id"))
}

func (r *repository) UpdateBook(ctx context.Context, id int, req model.BookRequest) (model.Book, error) {
	b, err := collectOne[model.Book](ctx, r.db, qb.Update(bookTableName).
		SetMap(map[string]interface{}{
			"title":       req.Title,
			"author":      req.Author,
			"category_id": req.CategoryID,
			"quantity":    req.Quantity,
		}).
		Where(sq.Eq{"id": id}).
		Suffix(bookReturning))
	if _, ok := isForeignKeyViolation(err); ok {
		return model.Book{}, errs.ErrInvalidCategory
	}
	return b, notFound(err)
}

func (r *repository) DeleteBook(ctx context.Context, id int) error {
	query, args, err := qb.Delete(bookTableName).Where(sq.Eq{"id": id}).ToSql()
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

func (r *repository) TopBorrowed(ctx context.Context, limit int) ([]model.Book, error) {
	return collectAll[model.Book](ctx, r.db, qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Gt{"total_borrowed": 0}).
		OrderBy("total_borrowed desc", "id asc").
		Limit(uint64(limit)))
}

// AdjustQuantity applies delta unless the result would be negative.
// false means no row changed: the book is missing or out of stock.
func (r *repository) AdjustQuantity(ctx context.Context, bookID, delta int) (bool, error) {
	q := `
update book
    set quantity = quantity + @delta
where id = @book_id and quantity + @delta >= 0`
	args := pgx.NamedArgs{
		"book_id": bookID,
		"delta":   delta,
	}
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		if isCheckViolation(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "AdjustQuantity")
	}
	return tag.RowsAffected() == 1, nil
}

// RestockBooks adds counts[bookID] copies back to each book in one statement.
func (r *repository) RestockBooks(ctx context.Context, counts map[int]int) error {
	if len(counts) == 0 {
		return nil
	}
	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ns := make([]int, 0, len(ids))
	for _, id := range ids {
		ns = append(ns, counts[id])
	}

	q := `
update book b
    set quantity = b.quantity + v.n
from (select unnest(@ids::int[]) as id, unnest(@ns::int[]) as n) v
where b.id = v.id`
	args := pgx.NamedArgs{
		"ids": ids,
		"ns":  ns,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return errors.Wrap(err, "RestockBooks")
	}
	return nil
}

func (r *repository) IncrementTotalBorrowed(ctx context.Context, bookID int) error {
	query, args, err := qb.Update(bookTableName).
		Set("total_borrowed", sq.Expr("total_borrowed + 1")).
		Where(sq.Eq{"id": bookID}).
		ToSql()
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

func (r *repository) CountActiveItemsForBook(ctx context.Context, bookID int) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(loanItemTableName).
		Where(sq.Eq{"book_id": bookID}).
		Where(sq.Eq{"return_date": nil}))
}
