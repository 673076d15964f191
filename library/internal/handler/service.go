package handler

import (
	"context"

	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/gh215tth/QLTV-dart/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	LoanService
	LoanItemService
	BookService
	CategoryService
	UserService
	LibrarianService
}

type LoanService interface {
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	CreateLoanWithItem(ctx context.Context, req model.CreateLoanWithItemRequest) (model.CreateLoanWithItemResponse, error)
	GetLoan(ctx context.Context, id int) (model.Loan, error)
	GetLoanWithItems(ctx context.Context, id int) (model.LoanDetails, error)
	ListLoans(ctx context.Context) ([]model.LoanSummary, error)
	ListLoansByUser(ctx context.Context, userID int) ([]model.UserLoan, error)
	UpdateLoan(ctx context.Context, id int, req model.CreateLoanRequest) (model.Loan, error)
	DeleteLoan(ctx context.Context, id int) error
	ReturnBooks(ctx context.Context, loanID int) (model.ReturnResponse, error)
}

type LoanItemService interface {
	CreateLoanItem(ctx context.Context, req model.CreateLoanItemRequest) (model.LoanItem, error)
	GetLoanItem(ctx context.Context, id int) (model.LoanItem, error)
	ListLoanItems(ctx context.Context) ([]model.LoanItem, error)
	ListLoanItemsByLoan(ctx context.Context, loanID int) ([]model.LoanItem, error)
	UpdateLoanItem(ctx context.Context, id int, req model.UpdateLoanItemRequest) (model.LoanItem, error)
	DeleteLoanItem(ctx context.Context, id int) error
}

type BookService interface {
	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, search string) ([]model.Book, error)
	ListBooksByCategory(ctx context.Context, categoryID int) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
	TopBorrowed(ctx context.Context, limit int) ([]model.Book, error)
	BorrowedBookIDs(ctx context.Context, userID int) ([]int, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error)
	GetCategory(ctx context.Context, id int) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id int, req model.CategoryRequest) (model.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type UserService interface {
	CreateUser(ctx context.Context, req model.AccountRequest) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int, req model.AccountRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type LibrarianService interface {
	CreateLibrarian(ctx context.Context, req model.AccountRequest) (model.Librarian, error)
	GetLibrarian(ctx context.Context, id int) (model.Librarian, error)
	ListLibrarians(ctx context.Context) ([]model.Librarian, error)
	UpdateLibrarian(ctx context.Context, id int, req model.AccountRequest) (model.Librarian, error)
	DeleteLibrarian(ctx context.Context, id int) error
}

var _ LibraryService = (*service.Service)(nil)
