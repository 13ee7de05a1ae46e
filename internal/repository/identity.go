package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/errs"
	"github.com/campuslib/circulation-service/internal/model"
)

type IdentityRepository interface {
	EmailInUse(ctx context.Context, email string, excludeContactID int64) (bool, error)
	MobileInUse(ctx context.Context, mobile string, excludeContactID int64) (bool, error)
	RfidInUse(ctx context.Context, rfid string, excludeContactID int64) (bool, error)
	FindAccount(ctx context.Context, email, mobile string) (*model.AccountSummary, error)
	CreatePerson(ctx context.Context, p model.Person) (int64, error)
	UpdatePerson(ctx context.Context, p model.Person) error
	DeletePerson(ctx context.Context, kind model.PersonKind, id int64) error
	GetPerson(ctx context.Context, kind model.PersonKind, id int64) (model.Person, error)
	ContactID(ctx context.Context, kind model.PersonKind, id int64) (int64, error)
	ListPersons(ctx context.Context, kind model.PersonKind) ([]model.Person, error)
	FindBorrowerByRfid(ctx context.Context, rfid string) (model.Person, error)
}

type identityRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewIdentityRepository(db *sqlx.DB, log *zap.Logger) (*identityRepository, error) {
	return &identityRepository{
		db:  db,
		log: log.Named("identity-repo"),
	}, nil
}

const (
	contactsTableName = `contacts`
	studentsTableName = `students`
	facultyTableName  = `faculty`
	adminsTableName   = `admins`
)

func personTable(kind model.PersonKind) string {
	switch kind {
	case model.KindStudent:
		return studentsTableName
	case model.KindFaculty:
		return facultyTableName
	default:
		return adminsTableName
	}
}

func externalIDColumn(kind model.PersonKind) string {
	switch kind {
	case model.KindStudent:
		return "student_id"
	case model.KindFaculty:
		return "faculty_id"
	default:
		return "admin_id"
	}
}

func (r *identityRepository) contactInUse(ctx context.Context, column, value string, excludeContactID int64) (bool, error) {
	q := qb.Select("1").
		From(contactsTableName).
		Where(sq.Eq{column: value})
	if excludeContactID != 0 {
		q = q.Where(sq.NotEq{"id": excludeContactID})
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

func (r *identityRepository) EmailInUse(ctx context.Context, email string, excludeContactID int64) (bool, error) {
	return r.contactInUse(ctx, "email", email, excludeContactID)
}

func (r *identityRepository) MobileInUse(ctx context.Context, mobile string, excludeContactID int64) (bool, error) {
	return r.contactInUse(ctx, "mobile", mobile, excludeContactID)
}

func (r *identityRepository) RfidInUse(ctx context.Context, rfid string, excludeContactID int64) (bool, error) {
	return r.contactInUse(ctx, "rfid", rfid, excludeContactID)
}

func (r *identityRepository) FindAccount(ctx context.Context, email, mobile string) (*model.AccountSummary, error) {
	q := `
select 'student' as kind, s.name, s.student_id as external_id, c.email, c.mobile
from students s join contacts c on c.id = s.contact_id
where c.email = $1 or c.mobile = $2
union all
select 'faculty', f.name, f.faculty_id, c.email, c.mobile
from faculty f join contacts c on c.id = f.contact_id
where c.email = $1 or c.mobile = $2
union all
select 'admin', a.name, a.admin_id, c.email, c.mobile
from admins a join contacts c on c.id = a.contact_id
where c.email = $1 or c.mobile = $2
limit 1`

	var acc model.AccountSummary
	if err := r.db.GetContext(ctx, &acc, q, email, mobile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &acc, nil
}

// mapUniqueViolation turns the backstop constraint violations on contacts
// into the duplicate-identity sentinels, so a racing registration that slips
// past the application-level check still fails with the right error.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return errs.ErrDuplicateEmail
	case strings.Contains(pgErr.ConstraintName, "mobile"):
		return errs.ErrDuplicateMobile
	case strings.Contains(pgErr.ConstraintName, "rfid"):
		return errs.ErrDuplicateRfid
	}
	return err
}

func (r *identityRepository) CreatePerson(ctx context.Context, p model.Person) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	var rfid any
	if p.Rfid != "" {
		rfid = p.Rfid
	}
	query, args, err := qb.Insert(contactsTableName).
		Columns("email", "mobile", "rfid").
		Values(p.Email, p.Mobile, rfid).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var contactID int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&contactID); err != nil {
		return 0, mapUniqueViolation(err)
	}

	table := personTable(p.Kind)
	ib := qb.Insert(table).Suffix("returning id")
	if p.Kind == model.KindStudent {
		ib = ib.Columns("contact_id", "name", externalIDColumn(p.Kind), "course", "active").
			Values(contactID, p.Name, p.ExternalID, p.Course, p.Active)
	} else {
		ib = ib.Columns("contact_id", "name", externalIDColumn(p.Kind), "active").
			Values(contactID, p.Name, p.ExternalID, p.Active)
	}
	query, args, err = ib.ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.Error("CreatePerson", zap.String("q", query), zap.Error(err))
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *identityRepository) ContactID(ctx context.Context, kind model.PersonKind, id int64) (int64, error) {
	query, args, err := qb.Select("contact_id").
		From(personTable(kind)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var contactID int64
	if err := r.db.GetContext(ctx, &contactID, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return contactID, nil
}

func (r *identityRepository) UpdatePerson(ctx context.Context, p model.Person) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	table := personTable(p.Kind)
	ub := qb.Update(table).
		Set("name", p.Name).
		Set("active", p.Active).
		Where(sq.Eq{"id": p.ID})
	if p.Kind == model.KindStudent {
		ub = ub.Set("course", p.Course)
	}
	query, args, err := ub.Suffix("returning contact_id").ToSql()
	if err != nil {
		return err
	}
	var contactID int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&contactID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}

	var rfid any
	if p.Rfid != "" {
		rfid = p.Rfid
	}
	query, args, err = qb.Update(contactsTableName).
		Set("email", p.Email).
		Set("mobile", p.Mobile).
		Set("rfid", rfid).
		Where(sq.Eq{"id": contactID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return mapUniqueViolation(err)
	}

	return tx.Commit()
}

func (r *identityRepository) DeletePerson(ctx context.Context, kind model.PersonKind, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Delete(personTable(kind)).
		Where(sq.Eq{"id": id}).
		Suffix("returning contact_id").
		ToSql()
	if err != nil {
		return err
	}
	var contactID int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&contactID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}

	// free the contact values for re-registration
	query, args, err = qb.Delete(contactsTableName).Where(sq.Eq{"id": contactID}).ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *identityRepository) personColumns(kind model.PersonKind, alias string) []string {
	cols := []string{
		alias + ".id",
		fmt.Sprintf("'%s' as kind", kind),
		alias + ".name",
		fmt.Sprintf("%s.%s as external_id", alias, externalIDColumn(kind)),
		"c.email",
		"c.mobile",
		"coalesce(c.rfid, '') as rfid",
		alias + ".active",
	}
	if kind == model.KindStudent {
		cols = append(cols, alias+".course")
	} else {
		cols = append(cols, "'' as course")
	}
	return cols
}

func (r *identityRepository) GetPerson(ctx context.Context, kind model.PersonKind, id int64) (model.Person, error) {
	query, args, err := qb.Select(r.personColumns(kind, "p")...).
		From(personTable(kind) + " p").
		Join(contactsTableName + " c on c.id = p.contact_id").
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return model.Person{}, err
	}

	var p model.Person
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Person{}, errs.ErrNotFound
		}
		return model.Person{}, err
	}
	return p, nil
}

func (r *identityRepository) ListPersons(ctx context.Context, kind model.PersonKind) ([]model.Person, error) {
	query, args, err := qb.Select(r.personColumns(kind, "p")...).
		From(personTable(kind) + " p").
		Join(contactsTableName + " c on c.id = p.contact_id").
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Person
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *identityRepository) FindBorrowerByRfid(ctx context.Context, rfid string) (model.Person, error) {
	q := `
select s.id, 'student' as kind, s.name, s.student_id as external_id,
       c.email, c.mobile, coalesce(c.rfid, '') as rfid, s.active, s.course
from students s join contacts c on c.id = s.contact_id
where c.rfid = $1
union all
select f.id, 'faculty', f.name, f.faculty_id,
       c.email, c.mobile, coalesce(c.rfid, ''), f.active, '' as course
from faculty f join contacts c on c.id = f.contact_id
where c.rfid = $1
limit 1`

	var p model.Person
	if err := r.db.GetContext(ctx, &p, q, rfid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Person{}, errs.ErrNotFound
		}
		return model.Person{}, err
	}
	return p, nil
}
