package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/errs"
	"github.com/campuslib/circulation-service/internal/model"
)

// searchLimit caps substring-search result sets for UI responsiveness.
const searchLimit = 10

type InventoryRepository interface {
	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetBookByBarcode(ctx context.Context, barcode string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, query string) ([]model.Book, error)
	BarcodeInUse(ctx context.Context, barcode string, excludeBookID int64) (bool, error)
	CreateBook(ctx context.Context, b model.Book) (int64, error)
	UpdateBook(ctx context.Context, b model.Book) error
	DeleteBook(ctx context.Context, id int64) error
	AvailableCopies(ctx context.Context, bookID int64) (int, error)
	TotalCopies(ctx context.Context) (int, error)

	CreateCategory(ctx context.Context, name string) (int64, error)
	RenameCategory(ctx context.Context, id int64, name string) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type inventoryRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewInventoryRepository(db *sqlx.DB, log *zap.Logger) (*inventoryRepository, error) {
	return &inventoryRepository{
		db:  db,
		log: log.Named("inventory-repo"),
	}, nil
}

var bookColumns = []string{"b.id", "b.name", "b.author", "b.barcode", "b.category_id", "b.quantity", "c.name as category_name"}

func (r *inventoryRepository) getBook(ctx context.Context, pred sq.Eq) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName + " b").
		Join(categoriesTableName + " c on c.id = b.category_id").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *inventoryRepository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return r.getBook(ctx, sq.Eq{"b.id": id})
}

func (r *inventoryRepository) GetBookByBarcode(ctx context.Context, barcode string) (model.Book, error) {
	return r.getBook(ctx, sq.Eq{"b.barcode": barcode})
}

func (r *inventoryRepository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName + " b").
		Join(categoriesTableName + " c on c.id = b.category_id").
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *inventoryRepository) SearchBooks(ctx context.Context, search string) ([]model.Book, error) {
	like := "%" + search + "%"
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName + " b").
		Join(categoriesTableName + " c on c.id = b.category_id").
		Where(sq.Or{
			sq.ILike{"b.name": like},
			sq.ILike{"b.author": like},
			sq.ILike{"b.barcode": like},
		}).
		OrderBy("b.id").
		Limit(searchLimit).
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("SearchBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *inventoryRepository) BarcodeInUse(ctx context.Context, barcode string, excludeBookID int64) (bool, error) {
	q := qb.Select("1").
		From(booksTableName).
		Where(sq.Eq{"barcode": barcode})
	if excludeBookID != 0 {
		q = q.Where(sq.NotEq{"id": excludeBookID})
	}
	query, args, err := q.Prefix("select exists(").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}

	var inUse bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&inUse); err != nil {
		return false, err
	}
	return inUse, nil
}

func (r *inventoryRepository) CreateBook(ctx context.Context, b model.Book) (int64, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("name", "author", "barcode", "category_id", "quantity").
		Values(b.Name, b.Author, b.Barcode, b.CategoryID, b.Quantity).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return 0, err
	}
	return id, nil
}

func (r *inventoryRepository) UpdateBook(ctx context.Context, b model.Book) error {
	query, args, err := qb.Update(booksTableName).
		Set("name", b.Name).
		Set("author", b.Author).
		Set("barcode", b.Barcode).
		Set("category_id", b.CategoryID).
		Set("quantity", b.Quantity).
		Where(sq.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) DeleteBook(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	// lock the book row first so no loan can be issued between the
	// open-loan count and the delete
	var lockedID int64
	err = tx.QueryRowContext(ctx,
		fmt.Sprintf(`select id from %s where id = $1 for update`, booksTableName), id).Scan(&lockedID)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	if err != nil {
		return err
	}

	var open int
	if err := tx.QueryRowContext(ctx,
		fmt.Sprintf(`select count(*) from %s where book_id = $1`, issuedTableName), id).Scan(&open); err != nil {
		return err
	}
	if open > 0 {
		return errs.ErrBookCurrentlyIssued
	}

	query, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *inventoryRepository) AvailableCopies(ctx context.Context, bookID int64) (int, error) {
	// derived, never stored: quantity minus open loans, clamped at zero
	q := fmt.Sprintf(`
select greatest(b.quantity - count(ib.id), 0)
from %s b left join %s ib on ib.book_id = b.id
where b.id = $1
group by b.quantity`, booksTableName, issuedTableName)

	var available int
	if err := r.db.QueryRowContext(ctx, q, bookID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return available, nil
}

func (r *inventoryRepository) TotalCopies(ctx context.Context) (int, error) {
	q := fmt.Sprintf(`select coalesce(sum(quantity), 0) from %s`, booksTableName)

	var total int
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *inventoryRepository) CreateCategory(ctx context.Context, name string) (int64, error) {
	query, args, err := qb.Insert(categoriesTableName).
		Columns("name").
		Values(name).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *inventoryRepository) RenameCategory(ctx context.Context, id int64, name string) error {
	query, args, err := qb.Update(categoriesTableName).
		Set("name", name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	query, args, err := qb.Select("id", "name").
		From(categoriesTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Category
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var inUse int
	if err := tx.QueryRowContext(ctx,
		fmt.Sprintf(`select count(*) from %s where category_id = $1`, booksTableName), id).Scan(&inUse); err != nil {
		return err
	}
	if inUse > 0 {
		return errs.ErrCategoryNotEmpty
	}

	query, args, err := qb.Delete(categoriesTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}

	return tx.Commit()
}
