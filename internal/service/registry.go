package service

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/errs"
	"github.com/campuslib/circulation-service/internal/model"
	"github.com/campuslib/circulation-service/internal/notify"
	"github.com/campuslib/circulation-service/internal/repository"
)

var (
	emailRe  = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateEmail checks the conventional local@domain.tld shape with a
// domain suffix of at least two characters.
func ValidateEmail(email string) error {
	if email == "" {
		return errs.NewValidationError("email", "required")
	}
	if !emailRe.MatchString(email) {
		return errs.NewValidationError("email", "must be a valid address like user@domain.com")
	}
	return nil
}

// ValidateMobile requires exactly 10 digits. A leading zero is fine.
func ValidateMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValidationError("mobile", "required")
	}
	if !mobileRe.MatchString(mobile) {
		return errs.NewValidationError("mobile", "must be exactly 10 digits")
	}
	return nil
}

// RegistryService gates registration so no two people share an email,
// mobile or rfid across student/faculty/admin accounts.
type RegistryService struct {
	log      *zap.Logger
	repo     repository.IdentityRepository
	ledger   repository.LedgerRepository
	notifier Notifier
}

func NewRegistryService(repo repository.IdentityRepository, ledger repository.LedgerRepository, notifier Notifier, log *zap.Logger) *RegistryService {
	return &RegistryService{
		log:      log,
		repo:     repo,
		ledger:   ledger,
		notifier: notifier,
	}
}

// IsEmailUnique is fail-closed: a malformed address or a storage error both
// report "not unique".
func (s *RegistryService) IsEmailUnique(ctx context.Context, email string) bool {
	email = strings.TrimSpace(email)
	if err := ValidateEmail(email); err != nil {
		return false
	}
	inUse, err := s.repo.EmailInUse(ctx, email, 0)
	if err != nil {
		s.log.Error("EmailInUse", zap.Error(err))
		return false
	}
	return !inUse
}

func (s *RegistryService) IsMobileUnique(ctx context.Context, mobile string) bool {
	mobile = strings.TrimSpace(mobile)
	if err := ValidateMobile(mobile); err != nil {
		return false
	}
	inUse, err := s.repo.MobileInUse(ctx, mobile, 0)
	if err != nil {
		s.log.Error("MobileInUse", zap.Error(err))
		return false
	}
	return !inUse
}

func (s *RegistryService) FindExistingAccount(ctx context.Context, email, mobile string) (*model.AccountSummary, error) {
	return s.repo.FindAccount(ctx, strings.TrimSpace(email), strings.TrimSpace(mobile))
}

func (s *RegistryService) Register(ctx context.Context, req model.RegisterRequest) (int64, error) {
	p := model.Person{
		Kind:       req.Kind,
		Name:       strings.TrimSpace(req.Name),
		ExternalID: strings.TrimSpace(req.ExternalID),
		Email:      strings.TrimSpace(req.Email),
		Mobile:     strings.TrimSpace(req.Mobile),
		Rfid:       strings.TrimSpace(req.Rfid),
		Course:     strings.TrimSpace(req.Course),
		Active:     true,
	}

	if !p.Kind.Valid() {
		return 0, errs.NewValidationError("kind", "must be student, faculty or admin")
	}
	if p.Name == "" {
		return 0, errs.NewValidationError("name", "required")
	}
	if err := ValidateEmail(p.Email); err != nil {
		return 0, err
	}
	if err := ValidateMobile(p.Mobile); err != nil {
		return 0, err
	}
	// admins carry no card
	if p.Kind == model.KindAdmin {
		p.Rfid = ""
	} else if p.Rfid == "" {
		return 0, errs.NewValidationError("rfid", "required")
	}

	acc, err := s.repo.FindAccount(ctx, p.Email, p.Mobile)
	if err != nil {
		return 0, err
	}
	if acc != nil {
		dup := errs.ErrDuplicateMobile
		if strings.EqualFold(acc.Email, p.Email) {
			dup = errs.ErrDuplicateEmail
		}
		return 0, &errs.ConflictError{Err: dup, Account: acc}
	}

	if p.Rfid != "" {
		inUse, err := s.repo.RfidInUse(ctx, p.Rfid, 0)
		if err != nil {
			return 0, err
		}
		if inUse {
			return 0, &errs.ConflictError{Err: errs.ErrDuplicateRfid}
		}
	}

	// the unique constraints on contacts re-validate all of the above inside
	// the insert transaction; a racing duplicate comes back as the same
	// sentinel, just without a summary
	id, err := s.repo.CreatePerson(ctx, p)
	if err != nil {
		return 0, err
	}

	s.notifier.Notify(notify.Event{
		Type:      notify.EventRegistrationCompleted,
		Recipient: p.Email,
		Payload: map[string]any{
			"kind": p.Kind,
			"name": p.Name,
			"id":   id,
		},
	})
	return id, nil
}

func (s *RegistryService) UpdatePerson(ctx context.Context, kind model.PersonKind, id int64, req model.UpdatePersonRequest) error {
	current, err := s.repo.GetPerson(ctx, kind, id)
	if err != nil {
		return err
	}

	p := model.Person{
		ID:     id,
		Kind:   kind,
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Mobile: strings.TrimSpace(req.Mobile),
		Rfid:   strings.TrimSpace(req.Rfid),
		Course: strings.TrimSpace(req.Course),
		Active: current.Active,
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if p.Name == "" {
		return errs.NewValidationError("name", "required")
	}
	if err := ValidateEmail(p.Email); err != nil {
		return err
	}
	if err := ValidateMobile(p.Mobile); err != nil {
		return err
	}
	if kind == model.KindAdmin {
		p.Rfid = ""
	} else if p.Rfid == "" {
		return errs.NewValidationError("rfid", "required")
	}

	contactID, err := s.repo.ContactID(ctx, kind, id)
	if err != nil {
		return err
	}
	if inUse, err := s.repo.EmailInUse(ctx, p.Email, contactID); err != nil {
		return err
	} else if inUse {
		return &errs.ConflictError{Err: errs.ErrDuplicateEmail}
	}
	if inUse, err := s.repo.MobileInUse(ctx, p.Mobile, contactID); err != nil {
		return err
	} else if inUse {
		return &errs.ConflictError{Err: errs.ErrDuplicateMobile}
	}
	if p.Rfid != "" {
		if inUse, err := s.repo.RfidInUse(ctx, p.Rfid, contactID); err != nil {
			return err
		} else if inUse {
			return &errs.ConflictError{Err: errs.ErrDuplicateRfid}
		}
	}

	return s.repo.UpdatePerson(ctx, p)
}

// DeletePerson refuses to remove a borrower who still holds open loans.
// This guard covers faculty as well as students.
func (s *RegistryService) DeletePerson(ctx context.Context, kind model.PersonKind, id int64) error {
	if !kind.Valid() {
		return errs.NewValidationError("kind", "must be student, faculty or admin")
	}
	if kind.CanBorrow() {
		open, err := s.ledger.OpenLoanCountByBorrower(ctx, model.Borrower{Kind: kind, ID: id})
		if err != nil {
			return err
		}
		if open > 0 {
			return errs.ErrPersonHasLoans
		}
	}
	return s.repo.DeletePerson(ctx, kind, id)
}

func (s *RegistryService) GetPerson(ctx context.Context, kind model.PersonKind, id int64) (model.Person, error) {
	return s.repo.GetPerson(ctx, kind, id)
}

func (s *RegistryService) ListPersons(ctx context.Context, kind model.PersonKind) ([]model.Person, error) {
	return s.repo.ListPersons(ctx, kind)
}

func (s *RegistryService) FindBorrowerByRfid(ctx context.Context, rfid string) (model.Person, error) {
	rfid = strings.TrimSpace(rfid)
	if rfid == "" {
		return model.Person{}, errs.NewValidationError("rfid", "required")
	}
	return s.repo.FindBorrowerByRfid(ctx, rfid)
}
