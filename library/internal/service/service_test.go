package service

import (
	"context"
	"testing"
	"time"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/gh215tth/QLTV-dart/library/internal/repository"
	"github.com/gh215tth/QLTV-dart/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/gh215tth/QLTV-dart/library/internal/repository/mocks"
)

var today = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

type recordingPublisher struct {
	events []kafka.LoanEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev kafka.LoanEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func newTestService(t *testing.T) (*Service, *repo_mocks.MockRepository, *recordingPublisher) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	pub := &recordingPublisher{}
	svc := NewService(repo, zap.NewNop(),
		WithPublisher(pub),
		WithClock(func() time.Time { return today }))
	return svc, repo, pub
}

// inTx makes WithTx run its callback against the same mock.
func inTx(repo *repo_mocks.MockRepository) {
	repo.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Repository) error) error {
			return fn(repo)
		})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_CreateLoanItem(t *testing.T) {
	t.Parallel()
	returned := model.NewDate(date(2025, 6, 9))
	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		req          model.CreateLoanItemRequest
		mockBehavior mockBehavior
		want         model.LoanItem
		wantErr      error
	}{
		{
			name: "ok",
			req:  model.CreateLoanItemRequest{LoanID: 1, BookID: 2},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{ID: 1, UserID: 7}, nil)
				r.EXPECT().LockBook(gomock.Any(), 2).Return(model.Book{ID: 2, Quantity: 1}, nil)
				r.EXPECT().HasActiveLoanItem(gomock.Any(), 7, 2).Return(false, nil)
				r.EXPECT().CreateLoanItem(gomock.Any(), model.LoanItem{LoanID: 1, BookID: 2}).
					Return(model.LoanItem{ID: 5, LoanID: 1, BookID: 2}, nil)
				r.EXPECT().AdjustQuantity(gomock.Any(), 2, -1).Return(true, nil)
			},
			want: model.LoanItem{ID: 5, LoanID: 1, BookID: 2},
		},
		{
			name: "ok. item created with a return date takes no copy from stock",
			req: model.CreateLoanItemRequest{
				LoanID: 1, BookID: 2,
				ReturnDate: &returned,
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{ID: 1, UserID: 7}, nil)
				r.EXPECT().LockBook(gomock.Any(), 2).Return(model.Book{ID: 2, Quantity: 1}, nil)
				r.EXPECT().HasActiveLoanItem(gomock.Any(), 7, 2).Return(false, nil)
				r.EXPECT().CreateLoanItem(gomock.Any(), model.LoanItem{LoanID: 1, BookID: 2, ReturnDate: &returned}).
					Return(model.LoanItem{ID: 5, LoanID: 1, BookID: 2, ReturnDate: &returned}, nil)
			},
			want: model.LoanItem{ID: 5, LoanID: 1, BookID: 2, ReturnDate: &returned},
		},
		{
			name: "err. invalid loan",
			req:  model.CreateLoanItemRequest{LoanID: 1, BookID: 2},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrInvalidLoan,
		},
		{
			name: "err. invalid book",
			req:  model.CreateLoanItemRequest{LoanID: 1, BookID: 2},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{ID: 1, UserID: 7}, nil)
				r.EXPECT().LockBook(gomock.Any(), 2).Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrInvalidBook,
		},
		{
			name: "err. out of stock wins over duplicate",
			req:  model.CreateLoanItemRequest{LoanID: 1, BookID: 2},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{ID: 1, UserID: 7}, nil)
				r.EXPECT().LockBook(gomock.Any(), 2).Return(model.Book{ID: 2, Quantity: 0}, nil)
			},
			wantErr: errs.ErrBookOutOfStock,
		},
		{
			name: "err. already borrowed",
			req:  model.CreateLoanItemRequest{LoanID: 1, BookID: 2},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{ID: 1, UserID: 7}, nil)
				r.EXPECT().LockBook(gomock.Any(), 2).Return(model.Book{ID: 2, Quantity: 3}, nil)
				r.EXPECT().HasActiveLoanItem(gomock.Any(), 7, 2).Return(true, nil)
			},
			wantErr: errs.ErrAlreadyBorrowed,
		},
		{
			name: "err. stock taken concurrently",
			req:  model.CreateLoanItemRequest{LoanID: 1, BookID: 2},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{ID: 1, UserID: 7}, nil)
				r.EXPECT().LockBook(gomock.Any(), 2).Return(model.Book{ID: 2, Quantity: 1}, nil)
				r.EXPECT().HasActiveLoanItem(gomock.Any(), 7, 2).Return(false, nil)
				r.EXPECT().CreateLoanItem(gomock.Any(), gomock.Any()).
					Return(model.LoanItem{ID: 5, LoanID: 1, BookID: 2}, nil)
				r.EXPECT().AdjustQuantity(gomock.Any(), 2, -1).Return(false, nil)
			},
			wantErr: errs.ErrBookOutOfStock,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, _ := newTestService(t)
			inTx(repo)
			tt.mockBehavior(repo)

			got, err := svc.CreateLoanItem(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_CreateLoanWithItem(t *testing.T) {
	t.Parallel()
	loanDate := date(2025, 6, 1)
	req := model.CreateLoanWithItemRequest{
		UserID:   7,
		LoanDate: model.Date{Time: loanDate},
		BookID:   2,
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newTestService(t)
		inTx(repo)
		repo.EXPECT().UserExists(gomock.Any(), 7).Return(true, nil)
		repo.EXPECT().CreateLoan(gomock.Any(), 7, loanDate).Return(model.Loan{ID: 11, UserID: 7, LoanDate: model.NewDate(loanDate)}, nil)
		repo.EXPECT().GetLoan(gomock.Any(), 11).Return(model.Loan{ID: 11, UserID: 7, LoanDate: model.NewDate(loanDate)}, nil)
		repo.EXPECT().LockBook(gomock.Any(), 2).Return(model.Book{ID: 2, Quantity: 1}, nil)
		repo.EXPECT().HasActiveLoanItem(gomock.Any(), 7, 2).Return(false, nil)
		repo.EXPECT().CreateLoanItem(gomock.Any(), model.LoanItem{LoanID: 11, BookID: 2}).
			Return(model.LoanItem{ID: 21, LoanID: 11, BookID: 2}, nil)
		repo.EXPECT().AdjustQuantity(gomock.Any(), 2, -1).Return(true, nil)
		repo.EXPECT().IncrementTotalBorrowed(gomock.Any(), 2).Return(nil)

		got, err := svc.CreateLoanWithItem(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, model.CreateLoanWithItemResponse{
			LoanID:   11,
			LoanItem: model.LoanItem{ID: 21, LoanID: 11, BookID: 2},
		}, got)
		require.Len(t, pub.events, 1)
		require.Equal(t, kafka.EventLoanBorrowed, pub.events[0].Type)
		require.Equal(t, []int{2}, pub.events[0].BookIDs)
	})

	t.Run("err. invalid user creates nothing", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newTestService(t)
		inTx(repo)
		repo.EXPECT().UserExists(gomock.Any(), 7).Return(false, nil)

		_, err := svc.CreateLoanWithItem(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrInvalidUser)
		require.Empty(t, pub.events)
	})

	t.Run("err. item failure rolls loan back", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newTestService(t)
		inTx(repo)
		repo.EXPECT().UserExists(gomock.Any(), 7).Return(true, nil)
		repo.EXPECT().CreateLoan(gomock.Any(), 7, loanDate).Return(model.Loan{ID: 11, UserID: 7}, nil)
		repo.EXPECT().GetLoan(gomock.Any(), 11).Return(model.Loan{ID: 11, UserID: 7}, nil)
		repo.EXPECT().LockBook(gomock.Any(), 2).Return(model.Book{ID: 2, Quantity: 0}, nil)

		_, err := svc.CreateLoanWithItem(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrBookOutOfStock)
		require.Empty(t, pub.events)
	})

	t.Run("ok. counters and events are best effort", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newTestService(t)
		pub.err = errors.New("broker down")
		inTx(repo)
		repo.EXPECT().UserExists(gomock.Any(), 7).Return(true, nil)
		repo.EXPECT().CreateLoan(gomock.Any(), 7, loanDate).Return(model.Loan{ID: 11, UserID: 7}, nil)
		repo.EXPECT().GetLoan(gomock.Any(), 11).Return(model.Loan{ID: 11, UserID: 7}, nil)
		repo.EXPECT().LockBook(gomock.Any(), 2).Return(model.Book{ID: 2, Quantity: 4}, nil)
		repo.EXPECT().HasActiveLoanItem(gomock.Any(), 7, 2).Return(false, nil)
		repo.EXPECT().CreateLoanItem(gomock.Any(), gomock.Any()).
			Return(model.LoanItem{ID: 21, LoanID: 11, BookID: 2}, nil)
		repo.EXPECT().AdjustQuantity(gomock.Any(), 2, -1).Return(true, nil)
		repo.EXPECT().IncrementTotalBorrowed(gomock.Any(), 2).Return(errors.New("conn reset"))

		got, err := svc.CreateLoanWithItem(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, 11, got.LoanID)
	})
}

func TestService_UpdateLoanItem(t *testing.T) {
	t.Parallel()
	returned := model.NewDate(date(2025, 6, 9))
	loanID := 1
	otherLoanID := 2
	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		req          model.UpdateLoanItemRequest
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name: "ok. same book stays out",
			req:  model.UpdateLoanItemRequest{BookID: 3},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().LockLoanItem(gomock.Any(), 9).Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3}, nil)
				r.EXPECT().GetBook(gomock.Any(), 3).Return(model.Book{ID: 3}, nil)
				r.EXPECT().UpdateLoanItem(gomock.Any(), model.LoanItem{ID: 9, LoanID: 1, BookID: 3}).
					Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3}, nil)
			},
		},
		{
			name: "ok. swap book",
			req:  model.UpdateLoanItemRequest{LoanID: &loanID, BookID: 4},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().LockLoanItem(gomock.Any(), 9).Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3}, nil)
				r.EXPECT().GetBook(gomock.Any(), 4).Return(model.Book{ID: 4}, nil)
				r.EXPECT().UpdateLoanItem(gomock.Any(), gomock.Any()).
					Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 4}, nil)
				gomock.InOrder(
					r.EXPECT().AdjustQuantity(gomock.Any(), 3, 1).Return(true, nil),
					r.EXPECT().AdjustQuantity(gomock.Any(), 4, -1).Return(true, nil),
				)
			},
		},
		{
			name: "ok. mark returned",
			req:  model.UpdateLoanItemRequest{BookID: 3, ReturnDate: &returned},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().LockLoanItem(gomock.Any(), 9).Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3}, nil)
				r.EXPECT().GetBook(gomock.Any(), 3).Return(model.Book{ID: 3}, nil)
				r.EXPECT().UpdateLoanItem(gomock.Any(), model.LoanItem{ID: 9, LoanID: 1, BookID: 3, ReturnDate: &returned}).
					Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3, ReturnDate: &returned}, nil)
				r.EXPECT().AdjustQuantity(gomock.Any(), 3, 1).Return(true, nil)
			},
		},
		{
			name: "err. reopen without stock",
			req:  model.UpdateLoanItemRequest{BookID: 3},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().LockLoanItem(gomock.Any(), 9).
					Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3, ReturnDate: &returned}, nil)
				r.EXPECT().GetBook(gomock.Any(), 3).Return(model.Book{ID: 3}, nil)
				r.EXPECT().UpdateLoanItem(gomock.Any(), gomock.Any()).
					Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3}, nil)
				r.EXPECT().AdjustQuantity(gomock.Any(), 3, -1).Return(false, nil)
			},
			wantErr: errs.ErrBookOutOfStock,
		},
		{
			name: "err. loan id changed",
			req:  model.UpdateLoanItemRequest{LoanID: &otherLoanID, BookID: 3},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().LockLoanItem(gomock.Any(), 9).Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3}, nil)
			},
			wantErr: errs.ErrInvalidUpdateLoanID,
		},
		{
			name: "err. invalid book",
			req:  model.UpdateLoanItemRequest{BookID: 4},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().LockLoanItem(gomock.Any(), 9).Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3}, nil)
				r.EXPECT().GetBook(gomock.Any(), 4).Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrInvalidBook,
		},
		{
			name: "err. not found",
			req:  model.UpdateLoanItemRequest{BookID: 4},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().LockLoanItem(gomock.Any(), 9).Return(model.LoanItem{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, _ := newTestService(t)
			inTx(repo)
			tt.mockBehavior(repo)

			_, err := svc.UpdateLoanItem(context.Background(), 9, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_DeleteLoanItem(t *testing.T) {
	t.Parallel()
	returned := model.NewDate(date(2025, 6, 9))

	t.Run("active item restocks", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		inTx(repo)
		repo.EXPECT().LockLoanItem(gomock.Any(), 9).Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3}, nil)
		repo.EXPECT().DeleteLoanItem(gomock.Any(), 9).Return(nil)
		repo.EXPECT().AdjustQuantity(gomock.Any(), 3, 1).Return(true, nil)

		require.NoError(t, svc.DeleteLoanItem(context.Background(), 9))
	})

	t.Run("returned item leaves stock", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		inTx(repo)
		repo.EXPECT().LockLoanItem(gomock.Any(), 9).
			Return(model.LoanItem{ID: 9, LoanID: 1, BookID: 3, ReturnDate: &returned}, nil)
		repo.EXPECT().DeleteLoanItem(gomock.Any(), 9).Return(nil)

		require.NoError(t, svc.DeleteLoanItem(context.Background(), 9))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		inTx(repo)
		repo.EXPECT().LockLoanItem(gomock.Any(), 9).Return(model.LoanItem{}, errs.ErrNotFound)

		require.ErrorIs(t, svc.DeleteLoanItem(context.Background(), 9), errs.ErrNotFound)
	})
}

func TestService_ListLoanItemsByLoan(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	repo.EXPECT().ListLoanItemsByLoan(gomock.Any(), 1).Return(nil, nil)

	_, err := svc.ListLoanItemsByLoan(context.Background(), 1)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_ReturnBooks(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		want         model.ReturnResponse
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{ID: 1, UserID: 7, LoanDate: model.NewDate(date(2025, 6, 1))}, nil)
				r.EXPECT().ReturnOutstandingItems(gomock.Any(), 1, date(2025, 6, 10)).Return([]int{3, 4, 3}, nil)
				r.EXPECT().RestockBooks(gomock.Any(), map[int]int{3: 2, 4: 1}).Return(nil)
			},
			want: model.ReturnResponse{
				LoanID:     1,
				ReturnDate: model.Date{Time: date(2025, 6, 10)},
				Returned:   3,
			},
		},
		{
			name: "err. same day as loan",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{ID: 1, LoanDate: model.NewDate(date(2025, 6, 10))}, nil)
			},
			wantErr: errs.ErrInvalidReturnDate,
		},
		{
			name: "err. loan date in future",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{ID: 1, LoanDate: model.NewDate(date(2025, 7, 1))}, nil)
			},
			wantErr: errs.ErrInvalidReturnDate,
		},
		{
			name: "err. nothing to return",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{ID: 1, LoanDate: model.NewDate(date(2025, 6, 1))}, nil)
				r.EXPECT().ReturnOutstandingItems(gomock.Any(), 1, date(2025, 6, 10)).Return(nil, nil)
			},
			wantErr: errs.ErrNothingToReturn,
		},
		{
			name: "err. not found",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoan(gomock.Any(), 1).Return(model.Loan{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, pub := newTestService(t)
			inTx(repo)
			tt.mockBehavior(repo)

			got, err := svc.ReturnBooks(context.Background(), 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, pub.events)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Len(t, pub.events, 1)
			require.Equal(t, kafka.EventLoanReturned, pub.events[0].Type)
		})
	}
}

func TestService_DeleteLoan(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		inTx(repo)
		repo.EXPECT().LockLoan(gomock.Any(), 1).Return(model.Loan{ID: 1}, nil)
		repo.EXPECT().CountUnreturnedItems(gomock.Any(), 1).Return(0, nil)
		repo.EXPECT().DeleteLoan(gomock.Any(), 1).Return(nil)

		require.NoError(t, svc.DeleteLoan(context.Background(), 1))
	})

	t.Run("err. unreturned items", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		inTx(repo)
		repo.EXPECT().LockLoan(gomock.Any(), 1).Return(model.Loan{ID: 1}, nil)
		repo.EXPECT().CountUnreturnedItems(gomock.Any(), 1).Return(2, nil)

		require.ErrorIs(t, svc.DeleteLoan(context.Background(), 1), errs.ErrLoanHasUnreturnedItems)
	})
}

func TestService_GetLoanWithItems(t *testing.T) {
	t.Parallel()
	loanDate := date(2025, 6, 1)

	t.Run("groups rows", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().LoanDetails(gomock.Any(), 1).Return([]model.LoanDetailsRow{
			{LoanID: 1, LoanDate: model.NewDate(loanDate), UserName: "an", LoanItemID: 5, Title: "Go", Author: "Pike"},
			{LoanID: 1, LoanDate: model.NewDate(loanDate), UserName: "an", LoanItemID: 6, Title: "C", Author: "K&R"},
		}, nil)

		got, err := svc.GetLoanWithItems(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, model.LoanDetails{
			LoanID:   1,
			LoanDate: model.NewDate(loanDate),
			UserName: "an",
			Items: []model.LoanDetailsItem{
				{LoanItemID: 5, Title: "Go", Author: "Pike"},
				{LoanItemID: 6, Title: "C", Author: "K&R"},
			},
		}, got)
	})

	t.Run("empty loan is not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().LoanDetails(gomock.Any(), 1).Return(nil, nil)

		_, err := svc.GetLoanWithItems(context.Background(), 1)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_ListLoansByUser(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	repo.EXPECT().UserExists(gomock.Any(), 7).Return(false, nil)

	_, err := svc.ListLoansByUser(context.Background(), 7)
	require.ErrorIs(t, err, errs.ErrInvalidUser)
}

func TestService_UpdateLoan(t *testing.T) {
	t.Parallel()
	loanDate := date(2025, 6, 3)
	req := model.CreateLoanRequest{UserID: 7, LoanDate: model.Date{Time: loanDate}}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().UserExists(gomock.Any(), 7).Return(true, nil)
		repo.EXPECT().UpdateLoan(gomock.Any(), 1, 7, loanDate).Return(model.Loan{ID: 1, UserID: 7, LoanDate: model.NewDate(loanDate)}, nil)

		got, err := svc.UpdateLoan(context.Background(), 1, req)
		require.NoError(t, err)
		require.Equal(t, model.Loan{ID: 1, UserID: 7, LoanDate: model.NewDate(loanDate)}, got)
	})

	t.Run("err. invalid user", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().UserExists(gomock.Any(), 7).Return(false, nil)

		_, err := svc.UpdateLoan(context.Background(), 1, req)
		require.ErrorIs(t, err, errs.ErrInvalidUser)
	})
}
