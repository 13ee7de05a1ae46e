package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/errs"
	"github.com/campuslib/circulation-service/internal/model"
)

// LedgerTx is the handle the circulation service gets inside WithinTx.
// BookForUpdate row-locks the book, so every check made through the same
// handle is serialized against concurrent issues of that book.
// BorrowerForUpdate row-locks the borrower, serializing the borrow-limit
// check against concurrent issues of other books by the same borrower.
// Lock order is always book first, then borrower.
type LedgerTx interface {
	BookForUpdate(ctx context.Context, bookID int64) (model.Book, error)
	BorrowerForUpdate(ctx context.Context, b model.Borrower) error
	OpenLoanCountByBook(ctx context.Context, bookID int64) (int, error)
	OpenLoanCountByBorrower(ctx context.Context, b model.Borrower) (int, error)
	HasOpenLoan(ctx context.Context, b model.Borrower, bookID int64) (bool, error)
	InsertLoan(ctx context.Context, b model.Borrower, bookID int64) (model.Loan, error)
	DeleteLoan(ctx context.Context, b model.Borrower, bookID int64) (bool, error)
	InsertReturnAudit(ctx context.Context, b model.Borrower, bookID int64) error
}

type LedgerRepository interface {
	WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error
	OpenLoanCountByBook(ctx context.Context, bookID int64) (int, error)
	OpenLoanCountByBorrower(ctx context.Context, b model.Borrower) (int, error)
	LoansOf(ctx context.Context, b model.Borrower) ([]model.LoanSummary, error)
	SearchLoans(ctx context.Context, query string) ([]model.LoanSearchRow, error)
	RemoveOrphanedLoans(ctx context.Context) (int, error)
}

type ledgerRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewLedgerRepository(db *sqlx.DB, log *zap.Logger) (*ledgerRepository, error) {
	return &ledgerRepository{
		db:  db,
		log: log.Named("ledger-repo"),
	}, nil
}

func borrowerColumn(b model.Borrower) string {
	if b.Kind == model.KindFaculty {
		return "faculty_id"
	}
	return "student_id"
}

func (r *ledgerRepository) WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(&ledgerTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

type ledgerTx struct {
	tx *sqlx.Tx
}

func (t *ledgerTx) BookForUpdate(ctx context.Context, bookID int64) (model.Book, error) {
	query, args, err := qb.Select("id", "name", "author", "barcode", "category_id", "quantity").
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := t.tx.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (t *ledgerTx) BorrowerForUpdate(ctx context.Context, b model.Borrower) error {
	table := studentsTableName
	if b.Kind == model.KindFaculty {
		table = facultyTableName
	}

	var id int64
	err := t.tx.GetContext(ctx, &id,
		fmt.Sprintf(`select id from %s where id = $1 for update`, table), b.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	return err
}

func openLoanCountByBook(ctx context.Context, q sqlx.QueryerContext, bookID int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, q,
		&count, fmt.Sprintf(`select count(*) from %s where book_id = $1`, issuedTableName), bookID)
	return count, err
}

func openLoanCountByBorrower(ctx context.Context, q sqlx.QueryerContext, b model.Borrower) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, q,
		&count, fmt.Sprintf(`select count(*) from %s where %s = $1`, issuedTableName, borrowerColumn(b)), b.ID)
	return count, err
}

func (t *ledgerTx) OpenLoanCountByBook(ctx context.Context, bookID int64) (int, error) {
	return openLoanCountByBook(ctx, t.tx, bookID)
}

func (t *ledgerTx) OpenLoanCountByBorrower(ctx context.Context, b model.Borrower) (int, error) {
	return openLoanCountByBorrower(ctx, t.tx, b)
}

func (t *ledgerTx) HasOpenLoan(ctx context.Context, b model.Borrower, bookID int64) (bool, error) {
	var has bool
	err := t.tx.QueryRowContext(ctx,
		fmt.Sprintf(`select exists(select 1 from %s where %s = $1 and book_id = $2)`,
			issuedTableName, borrowerColumn(b)), b.ID, bookID).Scan(&has)
	return has, err
}

func (t *ledgerTx) InsertLoan(ctx context.Context, b model.Borrower, bookID int64) (model.Loan, error) {
	query, args, err := qb.Insert(issuedTableName).
		Columns("loan_uid", borrowerColumn(b), "book_id").
		Values(uuid.New(), b.ID, bookID).
		Suffix("returning id, loan_uid, student_id, faculty_id, book_id, issue_date").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}

	var loan model.Loan
	if err := t.tx.GetContext(ctx, &loan, query, args...); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

func (t *ledgerTx) DeleteLoan(ctx context.Context, b model.Borrower, bookID int64) (bool, error) {
	// delete exactly one matching open loan; affected-row count tells the
	// caller whether there was one at all
	q := fmt.Sprintf(`
delete from %[1]s
where id = (select id from %[1]s where %[2]s = $1 and book_id = $2 order by issue_date limit 1)`,
		issuedTableName, borrowerColumn(b))

	res, err := t.tx.ExecContext(ctx, q, b.ID, bookID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (t *ledgerTx) InsertReturnAudit(ctx context.Context, b model.Borrower, bookID int64) error {
	query, args, err := qb.Insert(returnedTableName).
		Columns(borrowerColumn(b), "book_id").
		Values(b.ID, bookID).
		ToSql()
	if err != nil {
		return err
	}
	_, err = t.tx.ExecContext(ctx, query, args...)
	return err
}

func (r *ledgerRepository) OpenLoanCountByBook(ctx context.Context, bookID int64) (int, error) {
	return openLoanCountByBook(ctx, r.db, bookID)
}

func (r *ledgerRepository) OpenLoanCountByBorrower(ctx context.Context, b model.Borrower) (int, error) {
	return openLoanCountByBorrower(ctx, r.db, b)
}

func (r *ledgerRepository) LoansOf(ctx context.Context, b model.Borrower) ([]model.LoanSummary, error) {
	query, args, err := qb.Select("ib.loan_uid", "ib.book_id", "b.name as book_name", "b.author", "b.barcode", "ib.issue_date").
		From(issuedTableName + " ib").
		Join(booksTableName + " b on b.id = ib.book_id").
		Where(sq.Eq{borrowerColumn(b): b.ID}).
		OrderBy("ib.issue_date").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.LoanSummary
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ledgerRepository) SearchLoans(ctx context.Context, search string) ([]model.LoanSearchRow, error) {
	q := fmt.Sprintf(`
select b.name as book_name,
       b.barcode,
       case when ib.student_id is not null then 'student' else 'faculty' end as borrower_kind,
       case when ib.student_id is not null then s.name else f.name end as borrower_name,
       case when ib.student_id is not null then s.student_id else f.faculty_id end as borrower_id,
       ib.issue_date
from %s ib
join %s b on b.id = ib.book_id
left join %s s on s.id = ib.student_id
left join %s f on f.id = ib.faculty_id
where b.name ilike $1 or b.barcode ilike $1
   or (ib.student_id is not null and (s.name ilike $1 or s.student_id ilike $1))
   or (ib.faculty_id is not null and (f.name ilike $1 or f.faculty_id ilike $1))
order by ib.issue_date`,
		issuedTableName, booksTableName, studentsTableName, facultyTableName)

	var items []model.LoanSearchRow
	if err := r.db.SelectContext(ctx, &items, q, search+"%"); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ledgerRepository) RemoveOrphanedLoans(ctx context.Context) (int, error) {
	q := fmt.Sprintf(`delete from %s where book_id not in (select id from %s)`,
		issuedTableName, booksTableName)

	res, err := r.db.ExecContext(ctx, q)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
