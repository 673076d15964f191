package model

type Book struct {
	ID            int    `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	Author        string `json:"author" db:"author"`
	CategoryID    int    `json:"category_id" db:"category_id"`
	Quantity      int    `json:"quantity" db:"quantity"`
	TotalBorrowed int    `json:"total_borrowed" db:"total_borrowed"`
}

type BookRequest struct {
	Title      string `json:"title" validate:"required"`
	Author     string `json:"author" validate:"required"`
	CategoryID int    `json:"category_id" validate:"required,gt=0"`
	Quantity   int    `json:"quantity" validate:"gte=0"`
}

type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// User is a borrower. Credentials live with the identity provider.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}

type Librarian struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}

// AccountRequest creates or updates a user or a librarian.
type AccountRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email" validate:"required,email,max=255"`
}

type Loan struct {
	ID       int  `json:"id" db:"id"`
	UserID   int  `json:"user_id" db:"user_id"`
	LoanDate Date `json:"loan_date" db:"loan_date"`
}

type LoanItem struct {
	ID         int   `json:"id" db:"id"`
	LoanID     int   `json:"loan_id" db:"loan_id"`
	BookID     int   `json:"book_id" db:"book_id"`
	ReturnDate *Date `json:"return_date" db:"return_date"`
}

// Active reports whether the book is still out.
func (li LoanItem) Active() bool {
	return li.ReturnDate == nil
}

type LoanStatus string

const (
	StatusReturned    LoanStatus = "returned"
	StatusNotReturned LoanStatus = "not returned"
)

type LoanSummary struct {
	ID       int        `json:"id" db:"id"`
	LoanDate Date       `json:"loan_date" db:"loan_date"`
	Username string     `json:"username" db:"username"`
	Status   LoanStatus `json:"status" db:"status"`
}

type UserLoan struct {
	ID         int    `json:"id" db:"id"`
	LoanDate   Date   `json:"loan_date" db:"loan_date"`
	ReturnDate *Date  `json:"return_date" db:"return_date"`
	Title      string `json:"title" db:"title"`
}

type LoanDetailsRow struct {
	LoanID     int    `db:"loan_id"`
	LoanDate   Date   `db:"loan_date"`
	UserName   string `db:"user_name"`
	LoanItemID int    `db:"loan_item_id"`
	Title      string `db:"title"`
	Author     string `db:"author"`
	ReturnDate *Date  `db:"return_date"`
}

type LoanDetails struct {
	LoanID   int               `json:"loan_id"`
	LoanDate Date              `json:"loan_date"`
	UserName string            `json:"user_name"`
	Items    []LoanDetailsItem `json:"items"`
}

type LoanDetailsItem struct {
	LoanItemID int    `json:"loan_item_id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	ReturnDate *Date  `json:"return_date"`
}

type CreateLoanRequest struct {
	UserID   int  `json:"user_id" validate:"required,gt=0"`
	LoanDate Date `json:"loan_date"`
}

type CreateLoanWithItemRequest struct {
	UserID     int   `json:"user_id" validate:"required,gt=0"`
	LoanDate   Date  `json:"loan_date"`
	BookID     int   `json:"book_id" validate:"required,gt=0"`
	ReturnDate *Date `json:"return_date"`
}

type CreateLoanWithItemResponse struct {
	LoanID   int      `json:"loan_id"`
	LoanItem LoanItem `json:"loan_item"`
}

type CreateLoanItemRequest struct {
	LoanID     int   `json:"loan_id" validate:"required,gt=0"`
	BookID     int   `json:"book_id" validate:"required,gt=0"`
	ReturnDate *Date `json:"return_date"`
}

// UpdateLoanItemRequest carries LoanID only so a changed value can be rejected.
type UpdateLoanItemRequest struct {
	LoanID     *int  `json:"loan_id"`
	BookID     int   `json:"book_id" validate:"required,gt=0"`
	ReturnDate *Date `json:"return_date"`
}

type ReturnResponse struct {
	LoanID     int  `json:"loan_id"`
	ReturnDate Date `json:"return_date"`
	Returned   int  `json:"returned"`
}
