package handler

import (
	"context"

	"github.com/campuslib/circulation-service/internal/model"
	"github.com/campuslib/circulation-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RegistryService interface {
	IsEmailUnique(ctx context.Context, email string) bool
	IsMobileUnique(ctx context.Context, mobile string) bool
	FindExistingAccount(ctx context.Context, email, mobile string) (*model.AccountSummary, error)
	Register(ctx context.Context, req model.RegisterRequest) (int64, error)
	UpdatePerson(ctx context.Context, kind model.PersonKind, id int64, req model.UpdatePersonRequest) error
	DeletePerson(ctx context.Context, kind model.PersonKind, id int64) error
	GetPerson(ctx context.Context, kind model.PersonKind, id int64) (model.Person, error)
	ListPersons(ctx context.Context, kind model.PersonKind) ([]model.Person, error)
	FindBorrowerByRfid(ctx context.Context, rfid string) (model.Person, error)
}

type InventoryService interface {
	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetBookByBarcode(ctx context.Context, barcode string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, query string) ([]model.Book, error)
	AvailableCopies(ctx context.Context, bookID int64) (int, error)
	TotalCopies(ctx context.Context) (int, error)
	AddBook(ctx context.Context, req model.BookRequest) (int64, error)
	UpdateBook(ctx context.Context, id int64, req model.BookRequest) error
	DeleteBook(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, req model.CategoryRequest) (int64, error)
	RenameCategory(ctx context.Context, id int64, req model.CategoryRequest) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type CirculationService interface {
	Issue(ctx context.Context, b model.Borrower, bookID int64) (model.Loan, error)
	Return(ctx context.Context, b model.Borrower, bookID int64) error
	OpenLoanCountByBook(ctx context.Context, bookID int64) (int, error)
	OpenLoanCountByBorrower(ctx context.Context, b model.Borrower) (int, error)
	LoansOf(ctx context.Context, b model.Borrower) ([]model.LoanSummary, error)
	SearchLoans(ctx context.Context, query string) ([]model.LoanSearchRow, error)
}

type ReconcilerService interface {
	RemoveOrphanedLoans(ctx context.Context) (int, error)
}

var (
	_ RegistryService    = (*service.RegistryService)(nil)
	_ InventoryService   = (*service.InventoryService)(nil)
	_ CirculationService = (*service.CirculationService)(nil)
	_ ReconcilerService  = (*service.ReconcilerService)(nil)
)
