package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/errs"
	"github.com/campuslib/circulation-service/internal/model"
	"github.com/campuslib/circulation-service/internal/notify"
	"github.com/campuslib/circulation-service/internal/repository"
)

// DefaultBorrowLimit is the maximum number of concurrently open loans per
// borrower.
const DefaultBorrowLimit = 5

// CirculationService is the state machine governing book custody. A copy is
// available when no loan row consumes a unit of quantity and on loan while
// one does; there is no stored status anywhere.
type CirculationService struct {
	log         *zap.Logger
	ledger      repository.LedgerRepository
	persons     repository.IdentityRepository
	notifier    Notifier
	borrowLimit int
}

func NewCirculationService(
	ledger repository.LedgerRepository,
	persons repository.IdentityRepository,
	notifier Notifier,
	borrowLimit int,
	log *zap.Logger,
) *CirculationService {
	if borrowLimit <= 0 {
		borrowLimit = DefaultBorrowLimit
	}
	return &CirculationService{
		log:         log,
		ledger:      ledger,
		persons:     persons,
		notifier:    notifier,
		borrowLimit: borrowLimit,
	}
}

// Issue runs the whole check-then-insert sequence inside one transaction
// that row-locks the book and the borrower. Two terminals racing for the
// last copy cannot both win (the loser observes ErrNoCopiesAvailable), and
// one borrower issuing different books concurrently cannot slip past the
// borrow limit.
func (s *CirculationService) Issue(ctx context.Context, b model.Borrower, bookID int64) (model.Loan, error) {
	if !b.Kind.CanBorrow() {
		return model.Loan{}, errs.NewValidationError("borrowerKind", "must be student or faculty")
	}

	var loan model.Loan
	err := s.ledger.WithinTx(ctx, func(tx repository.LedgerTx) error {
		book, err := tx.BookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}

		// lock the borrower row too: the limit check below must not race
		// issues of other books by the same borrower, and a missing row
		// means an unknown borrower
		if err := tx.BorrowerForUpdate(ctx, b); err != nil {
			return err
		}

		open, err := tx.OpenLoanCountByBook(ctx, bookID)
		if err != nil {
			return err
		}
		if book.Quantity-open <= 0 {
			return errs.ErrNoCopiesAvailable
		}

		already, err := tx.HasOpenLoan(ctx, b, bookID)
		if err != nil {
			return err
		}
		if already {
			return errs.ErrAlreadyIssued
		}

		held, err := tx.OpenLoanCountByBorrower(ctx, b)
		if err != nil {
			return err
		}
		if held >= s.borrowLimit {
			return errs.ErrBorrowLimitExceeded
		}

		loan, err = tx.InsertLoan(ctx, b, bookID)
		return err
	})
	if err != nil {
		return model.Loan{}, err
	}

	s.log.Info("book issued",
		zap.Int64("book_id", bookID),
		zap.String("borrower_kind", string(b.Kind)),
		zap.Int64("borrower_id", b.ID))
	s.notifyBorrower(ctx, notify.EventBookIssued, b, bookID)

	return loan, nil
}

// Return deletes the matching open loan; the row's disappearance is what
// frees the copy. A missing row is reported, never silently ignored.
func (s *CirculationService) Return(ctx context.Context, b model.Borrower, bookID int64) error {
	if !b.Kind.CanBorrow() {
		return errs.NewValidationError("borrowerKind", "must be student or faculty")
	}

	err := s.ledger.WithinTx(ctx, func(tx repository.LedgerTx) error {
		deleted, err := tx.DeleteLoan(ctx, b, bookID)
		if err != nil {
			return err
		}
		if !deleted {
			return errs.ErrNoSuchLoan
		}
		return tx.InsertReturnAudit(ctx, b, bookID)
	})
	if err != nil {
		return err
	}

	s.log.Info("book returned",
		zap.Int64("book_id", bookID),
		zap.String("borrower_kind", string(b.Kind)),
		zap.Int64("borrower_id", b.ID))
	s.notifyBorrower(ctx, notify.EventBookReturned, b, bookID)

	return nil
}

func (s *CirculationService) OpenLoanCountByBook(ctx context.Context, bookID int64) (int, error) {
	return s.ledger.OpenLoanCountByBook(ctx, bookID)
}

func (s *CirculationService) OpenLoanCountByBorrower(ctx context.Context, b model.Borrower) (int, error) {
	return s.ledger.OpenLoanCountByBorrower(ctx, b)
}

func (s *CirculationService) LoansOf(ctx context.Context, b model.Borrower) ([]model.LoanSummary, error) {
	return s.ledger.LoansOf(ctx, b)
}

func (s *CirculationService) SearchLoans(ctx context.Context, query string) ([]model.LoanSearchRow, error) {
	return s.ledger.SearchLoans(ctx, query)
}

func (s *CirculationService) notifyBorrower(ctx context.Context, t notify.EventType, b model.Borrower, bookID int64) {
	recipient := ""
	if p, err := s.persons.GetPerson(ctx, b.Kind, b.ID); err == nil {
		recipient = p.Email
	}
	s.notifier.Notify(notify.Event{
		Type:      t,
		Recipient: recipient,
		Payload: map[string]any{
			"bookId":       bookID,
			"borrowerKind": b.Kind,
			"borrowerId":   b.ID,
		},
	})
}
