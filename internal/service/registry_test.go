package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/errs"
	"github.com/campuslib/circulation-service/internal/model"
	"github.com/campuslib/circulation-service/internal/repository"
	"github.com/campuslib/circulation-service/internal/service"
)

type identityRec struct {
	person    model.Person
	contactID int64
}

// memIdentity is an in-memory stand-in for the contacts-backed registry
// storage. failing forces every lookup to error so fail-closed paths can be
// exercised.
type memIdentity struct {
	mu      sync.Mutex
	recs    []identityRec
	nextID  int64
	failing bool
}

func (r *memIdentity) inUse(match func(p model.Person) bool, excludeContactID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return false, errors.New("storage down")
	}
	for _, rec := range r.recs {
		if rec.contactID == excludeContactID {
			continue
		}
		if match(rec.person) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memIdentity) EmailInUse(_ context.Context, email string, exclude int64) (bool, error) {
	return r.inUse(func(p model.Person) bool { return strings.EqualFold(p.Email, email) }, exclude)
}

func (r *memIdentity) MobileInUse(_ context.Context, mobile string, exclude int64) (bool, error) {
	return r.inUse(func(p model.Person) bool { return p.Mobile == mobile }, exclude)
}

func (r *memIdentity) RfidInUse(_ context.Context, rfid string, exclude int64) (bool, error) {
	return r.inUse(func(p model.Person) bool { return p.Rfid == rfid }, exclude)
}

func (r *memIdentity) FindAccount(_ context.Context, email, mobile string) (*model.AccountSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return nil, errors.New("storage down")
	}
	for _, rec := range r.recs {
		p := rec.person
		if strings.EqualFold(p.Email, email) || p.Mobile == mobile {
			return &model.AccountSummary{
				Kind:       p.Kind,
				Name:       p.Name,
				ExternalID: p.ExternalID,
				Email:      p.Email,
				Mobile:     p.Mobile,
			}, nil
		}
	}
	return nil, nil
}

func (r *memIdentity) CreatePerson(_ context.Context, p model.Person) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.recs = append(r.recs, identityRec{person: p, contactID: r.nextID})
	return p.ID, nil
}

func (r *memIdentity) UpdatePerson(_ context.Context, p model.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.recs {
		if rec.person.Kind == p.Kind && rec.person.ID == p.ID {
			p.ExternalID = rec.person.ExternalID
			r.recs[i].person = p
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *memIdentity) DeletePerson(_ context.Context, kind model.PersonKind, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.recs {
		if rec.person.Kind == kind && rec.person.ID == id {
			r.recs = append(r.recs[:i], r.recs[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *memIdentity) GetPerson(_ context.Context, kind model.PersonKind, id int64) (model.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recs {
		if rec.person.Kind == kind && rec.person.ID == id {
			return rec.person, nil
		}
	}
	return model.Person{}, errs.ErrNotFound
}

func (r *memIdentity) ContactID(_ context.Context, kind model.PersonKind, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recs {
		if rec.person.Kind == kind && rec.person.ID == id {
			return rec.contactID, nil
		}
	}
	return 0, errs.ErrNotFound
}

func (r *memIdentity) ListPersons(_ context.Context, kind model.PersonKind) ([]model.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Person
	for _, rec := range r.recs {
		if rec.person.Kind == kind {
			out = append(out, rec.person)
		}
	}
	return out, nil
}

func (r *memIdentity) FindBorrowerByRfid(_ context.Context, rfid string) (model.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recs {
		if rec.person.Kind.CanBorrow() && rec.person.Rfid == rfid {
			return rec.person, nil
		}
	}
	return model.Person{}, errs.ErrNotFound
}

// loanCounter reports a fixed open-loan count for every borrower.
type loanCounter struct {
	repository.LedgerRepository
	open int
}

func (c loanCounter) OpenLoanCountByBorrower(_ context.Context, _ model.Borrower) (int, error) {
	return c.open, nil
}

func studentReq(email, mobile, rfid string) model.RegisterRequest {
	return model.RegisterRequest{
		Kind:       model.KindStudent,
		Name:       "Ada Lovelace",
		ExternalID: "S-001",
		Email:      email,
		Mobile:     mobile,
		Rfid:       rfid,
		Course:     "CS",
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	for _, email := range []string{
		"user@domain.com",
		"first.last+tag@sub.domain.org",
		"a_b-c@x-y.io",
	} {
		require.NoError(t, service.ValidateEmail(email), email)
	}
	for _, email := range []string{
		"",
		"plainaddress",
		"user@domain",
		"user@domain.c",
		"user @domain.com",
		"@domain.com",
	} {
		err := service.ValidateEmail(email)
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr, email)
		require.Equal(t, "email", vErr.Field)
	}
}

func TestValidateMobile(t *testing.T) {
	t.Parallel()
	require.NoError(t, service.ValidateMobile("1234567890"))
	require.NoError(t, service.ValidateMobile("0987654321"))

	for _, mobile := range []string{
		"",
		"123456789",
		"12345678901",
		"123-456-7890",
		"12345 6789",
		"abcdefghij",
	} {
		err := service.ValidateMobile(mobile)
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr, mobile)
		require.Equal(t, "mobile", vErr.Field)
	}
}

func TestRegistryService_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &memIdentity{}
	svc := service.NewRegistryService(repo, loanCounter{}, service.NopNotifier{}, zap.NewNop())

	id, err := svc.Register(ctx, studentReq("ada@univ.edu", "1234567890", "RF-1"))
	require.NoError(t, err)
	require.NotZero(t, id)

	t.Run("duplicate email names the existing account", func(t *testing.T) {
		_, err := svc.Register(ctx, studentReq("ADA@univ.edu", "9999999999", "RF-2"))
		var cErr *errs.ConflictError
		require.ErrorAs(t, err, &cErr)
		require.ErrorIs(t, err, errs.ErrDuplicateEmail)
		require.NotNil(t, cErr.Account)
		require.Equal(t, "ada@univ.edu", cErr.Account.Email)
	})

	t.Run("duplicate mobile", func(t *testing.T) {
		_, err := svc.Register(ctx, studentReq("other@univ.edu", "1234567890", "RF-3"))
		require.ErrorIs(t, err, errs.ErrDuplicateMobile)
	})

	t.Run("duplicate rfid", func(t *testing.T) {
		_, err := svc.Register(ctx, studentReq("third@univ.edu", "5555555555", "RF-1"))
		require.ErrorIs(t, err, errs.ErrDuplicateRfid)
	})

	t.Run("borrower without rfid rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, studentReq("fourth@univ.edu", "4444444444", ""))
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "rfid", vErr.Field)
	})

	t.Run("admin rfid is dropped", func(t *testing.T) {
		adminID, err := svc.Register(ctx, model.RegisterRequest{
			Kind:       model.KindAdmin,
			Name:       "Root",
			ExternalID: "A-001",
			Email:      "root@univ.edu",
			Mobile:     "1112223334",
			Rfid:       "RF-ADMIN",
		})
		require.NoError(t, err)

		p, err := svc.GetPerson(ctx, model.KindAdmin, adminID)
		require.NoError(t, err)
		require.Empty(t, p.Rfid)
	})
}

func TestRegistryService_Uniqueness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &memIdentity{}
	svc := service.NewRegistryService(repo, loanCounter{}, service.NopNotifier{}, zap.NewNop())

	_, err := svc.Register(ctx, studentReq("taken@univ.edu", "1234567890", "RF-1"))
	require.NoError(t, err)

	require.True(t, svc.IsEmailUnique(ctx, "free@univ.edu"))
	require.False(t, svc.IsEmailUnique(ctx, "taken@univ.edu"))
	require.False(t, svc.IsEmailUnique(ctx, "not-an-email"))

	require.True(t, svc.IsMobileUnique(ctx, "5556667778"))
	require.False(t, svc.IsMobileUnique(ctx, "1234567890"))
	require.False(t, svc.IsMobileUnique(ctx, "123"))

	// storage failure must read as "not unique"
	repo.failing = true
	require.False(t, svc.IsEmailUnique(ctx, "free@univ.edu"))
	require.False(t, svc.IsMobileUnique(ctx, "5556667778"))
}

func TestRegistryService_UpdatePerson(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &memIdentity{}
	svc := service.NewRegistryService(repo, loanCounter{}, service.NopNotifier{}, zap.NewNop())

	adaID, err := svc.Register(ctx, studentReq("ada@univ.edu", "1234567890", "RF-1"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, studentReq("bob@univ.edu", "2223334445", "RF-2"))
	require.NoError(t, err)

	// keeping your own email is never a conflict
	err = svc.UpdatePerson(ctx, model.KindStudent, adaID, model.UpdatePersonRequest{
		Name:   "Ada L.",
		Email:  "ada@univ.edu",
		Mobile: "1234567890",
		Rfid:   "RF-1",
	})
	require.NoError(t, err)

	err = svc.UpdatePerson(ctx, model.KindStudent, adaID, model.UpdatePersonRequest{
		Name:   "Ada L.",
		Email:  "bob@univ.edu",
		Mobile: "1234567890",
		Rfid:   "RF-1",
	})
	require.ErrorIs(t, err, errs.ErrDuplicateEmail)

	err = svc.UpdatePerson(ctx, model.KindStudent, 404, model.UpdatePersonRequest{
		Name:   "Ghost",
		Email:  "ghost@univ.edu",
		Mobile: "7778889990",
		Rfid:   "RF-9",
	})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRegistryService_DeletePerson(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("borrower with open loans is kept", func(t *testing.T) {
		t.Parallel()
		repo := &memIdentity{}
		svc := service.NewRegistryService(repo, loanCounter{open: 2}, service.NopNotifier{}, zap.NewNop())

		id, err := svc.Register(ctx, studentReq("ada@univ.edu", "1234567890", "RF-1"))
		require.NoError(t, err)

		require.ErrorIs(t, svc.DeletePerson(ctx, model.KindStudent, id), errs.ErrPersonHasLoans)
		require.ErrorIs(t, svc.DeletePerson(ctx, model.KindFaculty, id), errs.ErrPersonHasLoans)

		_, err = svc.GetPerson(ctx, model.KindStudent, id)
		require.NoError(t, err)
	})

	t.Run("admin skips the loan guard", func(t *testing.T) {
		t.Parallel()
		repo := &memIdentity{}
		svc := service.NewRegistryService(repo, loanCounter{open: 2}, service.NopNotifier{}, zap.NewNop())

		id, err := svc.Register(ctx, model.RegisterRequest{
			Kind:       model.KindAdmin,
			Name:       "Root",
			ExternalID: "A-001",
			Email:      "root@univ.edu",
			Mobile:     "1112223334",
		})
		require.NoError(t, err)
		require.NoError(t, svc.DeletePerson(ctx, model.KindAdmin, id))
	})

	t.Run("borrower without loans is removed", func(t *testing.T) {
		t.Parallel()
		repo := &memIdentity{}
		svc := service.NewRegistryService(repo, loanCounter{}, service.NopNotifier{}, zap.NewNop())

		id, err := svc.Register(ctx, studentReq("ada@univ.edu", "1234567890", "RF-1"))
		require.NoError(t, err)
		require.NoError(t, svc.DeletePerson(ctx, model.KindStudent, id))

		_, err = svc.GetPerson(ctx, model.KindStudent, id)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestRegistryService_FindBorrowerByRfid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &memIdentity{}
	svc := service.NewRegistryService(repo, loanCounter{}, service.NopNotifier{}, zap.NewNop())

	id, err := svc.Register(ctx, studentReq("ada@univ.edu", "1234567890", "RF-1"))
	require.NoError(t, err)

	p, err := svc.FindBorrowerByRfid(ctx, "RF-1")
	require.NoError(t, err)
	require.Equal(t, id, p.ID)

	_, err = svc.FindBorrowerByRfid(ctx, "RF-404")
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.FindBorrowerByRfid(ctx, "  ")
	var vErr *errs.ValidationError
	require.ErrorAs(t, err, &vErr)
}
