package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err      error
		kind     string
		business bool
	}{
		{err: errs.ErrNotFound, kind: "not_found"},
		{err: fmt.Errorf("create: %w", errs.ErrBookOutOfStock), kind: "book_out_of_stock", business: true},
		{err: errs.ErrAlreadyBorrowed, kind: "already_borrowed", business: true},
		{err: errs.ErrInvalidUpdateLoanID, kind: "invalid_update_loan_id", business: true},
		{err: errs.ErrCategoryInUse, kind: "category_in_use", business: true},
		{err: errs.ErrDuplicateEmail, kind: "duplicate_email", business: true},
		{err: errs.ErrUserHasUnreturnedItems, kind: "user_has_unreturned_items", business: true},
		{err: errors.New("connection reset"), kind: "internal"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.kind, errs.Kind(tt.err))
		require.Equal(t, tt.business, errs.IsBusiness(tt.err))
	}
}
