package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
)

var categoryColumns = []string{"id", "name"}

func (r *repository) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	return collectOne[model.Category](ctx, r.db, qb.Insert(categoryTableName).
		Columns("name").
		Values(name).
		Suffix("returning id, name"))
}

func (r *repository) GetCategory(ctx context.Context, id int) (model.Category, error) {
	c, err := collectOne[model.Category](ctx, r.db, qb.Select(categoryColumns...).
		From(categoryTableName).
		Where(sq.Eq{"id": id}))
	return c, notFound(err)
}

func (r *repository) ListCategories(ctx context.Context) ([]model.Category, error) {
	return collectAll[model.Category](ctx, r.db, qb.Select(categoryColumns...).
		From(categoryTableName).
		OrderBy("id"))
}

func (r *repository) UpdateCategory(ctx context.Context, id int, name string) (model.Category, error) {
	c, err := collectOne[model.Category](ctx, r.db, qb.Update(categoryTableName).
		Set("name", name).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, name"))
	return c, notFound(err)
}

func (r *repository) DeleteCategory(ctx context.Context, id int) error {
	query, args, err := qb.Delete(categoryTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if _, ok := isForeignKeyViolation(err); ok {
			return errs.ErrCategoryInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CategoryExists(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, qb.Select("1").From(categoryTableName).Where(sq.Eq{"id": id}))
}

func (r *repository) CountBooksInCategory(ctx context.Context, id int) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(bookTableName).Where(sq.Eq{"category_id": id}))
}
