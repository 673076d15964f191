package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")

	ErrInvalidUser            = errors.New("user does not exist")
	ErrInvalidLoan            = errors.New("loan does not exist")
	ErrInvalidBook            = errors.New("book does not exist")
	ErrInvalidCategory        = errors.New("category does not exist")
	ErrBookOutOfStock         = errors.New("book is out of stock")
	ErrAlreadyBorrowed        = errors.New("book is already borrowed by this user and not returned")
	ErrInvalidReturnDate      = errors.New("return date must be after loan date")
	ErrNothingToReturn        = errors.New("loan has no unreturned books")
	ErrLoanHasUnreturnedItems = errors.New("loan has unreturned books")
	ErrBookInUse              = errors.New("book is currently borrowed")
	ErrCategoryInUse          = errors.New("category is used by books")
	ErrInvalidUpdateLoanID    = errors.New("loan_id of a loan item cannot be changed")
	ErrDuplicateUsername      = errors.New("username is already taken")
	ErrDuplicateEmail         = errors.New("email is already registered")
	ErrUserHasUnreturnedItems = errors.New("user has unreturned books")
)

var business = []error{
	ErrInvalidUser,
	ErrInvalidLoan,
	ErrInvalidBook,
	ErrInvalidCategory,
	ErrBookOutOfStock,
	ErrAlreadyBorrowed,
	ErrInvalidReturnDate,
	ErrNothingToReturn,
	ErrLoanHasUnreturnedItems,
	ErrBookInUse,
	ErrCategoryInUse,
	ErrInvalidUpdateLoanID,
	ErrDuplicateUsername,
	ErrDuplicateEmail,
	ErrUserHasUnreturnedItems,
}

// IsBusiness reports whether err is a rule violation the caller can fix.
func IsBusiness(err error) bool {
	for _, target := range business {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Kind returns the stable machine name of a known error, or "internal".
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidUser):
		return "invalid_user"
	case errors.Is(err, ErrInvalidLoan):
		return "invalid_loan"
	case errors.Is(err, ErrInvalidBook):
		return "invalid_book"
	case errors.Is(err, ErrInvalidCategory):
		return "invalid_category"
	case errors.Is(err, ErrBookOutOfStock):
		return "book_out_of_stock"
	case errors.Is(err, ErrAlreadyBorrowed):
		return "already_borrowed"
	case errors.Is(err, ErrInvalidReturnDate):
		return "invalid_return_date"
	case errors.Is(err, ErrNothingToReturn):
		return "nothing_to_return"
	case errors.Is(err, ErrLoanHasUnreturnedItems):
		return "loan_has_unreturned_items"
	case errors.Is(err, ErrBookInUse):
		return "book_in_use"
	case errors.Is(err, ErrCategoryInUse):
		return "category_in_use"
	case errors.Is(err, ErrInvalidUpdateLoanID):
		return "invalid_update_loan_id"
	case errors.Is(err, ErrDuplicateUsername):
		return "duplicate_username"
	case errors.Is(err, ErrDuplicateEmail):
		return "duplicate_email"
	case errors.Is(err, ErrUserHasUnreturnedItems):
		return "user_has_unreturned_items"
	default:
		return "internal"
	}
}
