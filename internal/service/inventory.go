package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/errs"
	"github.com/campuslib/circulation-service/internal/model"
	"github.com/campuslib/circulation-service/internal/repository"
)

// InventoryService owns the catalog and answers availability queries.
type InventoryService struct {
	log  *zap.Logger
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository, log *zap.Logger) *InventoryService {
	return &InventoryService{
		log:  log,
		repo: repo,
	}
}

func (s *InventoryService) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *InventoryService) GetBookByBarcode(ctx context.Context, barcode string) (model.Book, error) {
	return s.repo.GetBookByBarcode(ctx, barcode)
}

func (s *InventoryService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *InventoryService) SearchBooks(ctx context.Context, query string) ([]model.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return s.repo.SearchBooks(ctx, query)
}

func (s *InventoryService) AvailableCopies(ctx context.Context, bookID int64) (int, error) {
	return s.repo.AvailableCopies(ctx, bookID)
}

func (s *InventoryService) TotalCopies(ctx context.Context) (int, error) {
	return s.repo.TotalCopies(ctx)
}

// AddBook treats barcode as a soft key: the schema does not enforce it, so
// duplicates are rejected here at the application boundary.
func (s *InventoryService) AddBook(ctx context.Context, req model.BookRequest) (int64, error) {
	b, err := bookFromRequest(req)
	if err != nil {
		return 0, err
	}
	inUse, err := s.repo.BarcodeInUse(ctx, b.Barcode, 0)
	if err != nil {
		return 0, err
	}
	if inUse {
		return 0, errs.ErrDuplicateBarcode
	}
	return s.repo.CreateBook(ctx, b)
}

func (s *InventoryService) UpdateBook(ctx context.Context, id int64, req model.BookRequest) error {
	b, err := bookFromRequest(req)
	if err != nil {
		return err
	}
	b.ID = id
	inUse, err := s.repo.BarcodeInUse(ctx, b.Barcode, id)
	if err != nil {
		return err
	}
	if inUse {
		return errs.ErrDuplicateBarcode
	}
	return s.repo.UpdateBook(ctx, b)
}

func (s *InventoryService) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *InventoryService) CreateCategory(ctx context.Context, req model.CategoryRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, errs.NewValidationError("name", "required")
	}
	return s.repo.CreateCategory(ctx, name)
}

func (s *InventoryService) RenameCategory(ctx context.Context, id int64, req model.CategoryRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return errs.NewValidationError("name", "required")
	}
	return s.repo.RenameCategory(ctx, id, name)
}

func (s *InventoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *InventoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}

func bookFromRequest(req model.BookRequest) (model.Book, error) {
	b := model.Book{
		Name:       strings.TrimSpace(req.Name),
		Author:     strings.TrimSpace(req.Author),
		Barcode:    strings.TrimSpace(req.Barcode),
		CategoryID: req.CategoryID,
		Quantity:   req.Quantity,
	}
	switch {
	case b.Name == "":
		return model.Book{}, errs.NewValidationError("name", "required")
	case b.Author == "":
		return model.Book{}, errs.NewValidationError("author", "required")
	case b.Barcode == "":
		return model.Book{}, errs.NewValidationError("barcode", "required")
	case b.CategoryID == 0:
		return model.Book{}, errs.NewValidationError("categoryId", "required")
	case b.Quantity < 0:
		return model.Book{}, errs.NewValidationError("quantity", "must not be negative")
	}
	return b, nil
}
