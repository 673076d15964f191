package service

import (
	"testing"
	"time"

	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func genLoanItem(t *rapid.T, label string) model.LoanItem {
	item := model.LoanItem{
		ID:     1,
		LoanID: 1,
		BookID: rapid.IntRange(1, 3).Draw(t, label+"_book"),
	}
	if rapid.Bool().Draw(t, label+"_returned") {
		d := model.NewDate(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
		item.ReturnDate = &d
	}
	return item
}

func active(item model.LoanItem) int {
	if item.Active() {
		return 1
	}
	return 0
}

// Applying the deltas keeps quantity plus active items constant per book.
func TestQuantityDeltas_ConserveCopies(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		old := genLoanItem(t, "old")
		upd := genLoanItem(t, "upd")
		deltas := quantityDeltas(old, upd)

		for bookID := 1; bookID <= 3; bookID++ {
			held := 0
			if old.BookID == bookID {
				held += active(old)
			}
			if upd.BookID == bookID {
				held -= active(upd)
			}
			if deltas[bookID] != held {
				t.Fatalf("book %d: delta %d, want %d", bookID, deltas[bookID], held)
			}
		}
		for bookID, d := range deltas {
			if d == 0 {
				t.Fatalf("book %d: zero delta kept", bookID)
			}
		}
	})
}

func TestRestockCounts(t *testing.T) {
	t.Parallel()
	require.Equal(t, map[int]int{3: 2, 4: 1}, restockCounts([]int{3, 4, 3}))
	require.Empty(t, restockCounts(nil))
}

func TestQuantityDeltas(t *testing.T) {
	t.Parallel()
	returned := model.NewDate(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	item := func(bookID int, returnDate *model.Date) model.LoanItem {
		return model.LoanItem{ID: 1, LoanID: 1, BookID: bookID, ReturnDate: returnDate}
	}

	tests := []struct {
		name string
		old  model.LoanItem
		upd  model.LoanItem
		want map[int]int
	}{
		{name: "active same book", old: item(10, nil), upd: item(10, nil), want: map[int]int{}},
		{name: "active swap book", old: item(10, nil), upd: item(20, nil), want: map[int]int{10: 1, 20: -1}},
		{name: "active marked returned", old: item(10, nil), upd: item(10, &returned), want: map[int]int{10: 1}},
		{name: "active swapped and returned", old: item(10, nil), upd: item(20, &returned), want: map[int]int{10: 1}},
		// A returned item holds no copy, so only the new state moves stock.
		{name: "returned swap book stays returned", old: item(10, &returned), upd: item(20, &returned), want: map[int]int{}},
		{name: "returned swap book reopened", old: item(10, &returned), upd: item(20, nil), want: map[int]int{20: -1}},
		{name: "returned same book reopened", old: item(10, &returned), upd: item(10, nil), want: map[int]int{10: -1}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, quantityDeltas(tt.old, tt.upd))
		})
	}
}
