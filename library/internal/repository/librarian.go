package repository

import (
	"context"

	"github.com/gh215tth/QLTV-dart/library/internal/model"
)

const librarianTableName = `librarian`

func (r *repository) CreateLibrarian(ctx context.Context, req model.AccountRequest) (model.Librarian, error) {
	return createAccount[model.Librarian](ctx, r.db, librarianTableName, req)
}

func (r *repository) GetLibrarian(ctx context.Context, id int) (model.Librarian, error) {
	return getAccount[model.Librarian](ctx, r.db, librarianTableName, id, false)
}

func (r *repository) ListLibrarians(ctx context.Context) ([]model.Librarian, error) {
	return listAccounts[model.Librarian](ctx, r.db, librarianTableName)
}

func (r *repository) UpdateLibrarian(ctx context.Context, id int, req model.AccountRequest) (model.Librarian, error) {
	return updateAccount[model.Librarian](ctx, r.db, librarianTableName, id, req)
}

func (r *repository) DeleteLibrarian(ctx context.Context, id int) error {
	return deleteAccount(ctx, r.db, librarianTableName, id)
}
