package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/errs"
	"github.com/campuslib/circulation-service/internal/handler"
	"github.com/campuslib/circulation-service/internal/model"
	"github.com/campuslib/circulation-service/pkg/validate"

	service_mocks "github.com/campuslib/circulation-service/internal/handler/mocks"
)

type mockServices struct {
	registry    *service_mocks.MockRegistryService
	inventory   *service_mocks.MockInventoryService
	circulation *service_mocks.MockCirculationService
	reconciler  *service_mocks.MockReconcilerService
}

func newTestEcho(t *testing.T) (*echo.Echo, *handler.Handler, mockServices) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)

	m := mockServices{
		registry:    service_mocks.NewMockRegistryService(c),
		inventory:   service_mocks.NewMockInventoryService(c),
		circulation: service_mocks.NewMockCirculationService(c),
		reconciler:  service_mocks.NewMockReconcilerService(c),
	}
	log := zap.NewExample().Named("test")
	h := handler.New(m.registry, m.inventory, m.circulation, m.reconciler, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e, h, m
}

func TestHandler_Issue(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mockServices)

	studentID := int64(10)
	issued := model.Loan{
		ID:        1,
		LoanUID:   "7c19ab0e-13a9-4f26-a776-5985e0a3b3f0",
		StudentID: &studentID,
		BookID:    3,
		IssueDate: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"borrowerKind":"student","borrowerId":10,"bookId":3}`,
			mockBehavior: func(m mockServices) {
				m.circulation.EXPECT().
					Issue(context.Background(), model.Borrower{Kind: model.KindStudent, ID: 10}, int64(3)).
					Return(issued, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"loanUid":"7c19ab0e-13a9-4f26-a776-5985e0a3b3f0","studentId":10,"bookId":3,"issueDate":"2026-08-01T12:00:00Z"}`,
			},
		},
		{
			name: "err. no copies",
			body: `{"borrowerKind":"faculty","borrowerId":7,"bookId":3}`,
			mockBehavior: func(m mockServices) {
				m.circulation.EXPECT().
					Issue(context.Background(), model.Borrower{Kind: model.KindFaculty, ID: 7}, int64(3)).
					Return(model.Loan{}, errs.ErrNoCopiesAvailable)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"no copies available"}`,
			},
			wantErr: true,
		},
		{
			name: "err. borrow limit",
			body: `{"borrowerKind":"student","borrowerId":10,"bookId":3}`,
			mockBehavior: func(m mockServices) {
				m.circulation.EXPECT().
					Issue(context.Background(), model.Borrower{Kind: model.KindStudent, ID: 10}, int64(3)).
					Return(model.Loan{}, errs.ErrBorrowLimitExceeded)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"borrow limit exceeded"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. admin cannot borrow",
			body:         `{"borrowerKind":"admin","borrowerId":1,"bookId":3}`,
			mockBehavior: func(m mockServices) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, m := newTestEcho(t)
			e.POST("/loans", h.Issue)

			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.JSONEq(t, tt.response.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	e, h, m := newTestEcho(t)
	e.POST("/loans/return", h.Return)

	m.circulation.EXPECT().
		Return(context.Background(), model.Borrower{Kind: model.KindStudent, ID: 10}, int64(3)).
		Return(errs.ErrNoSuchLoan)

	r := httptest.NewRequest(http.MethodPost, "/loans/return",
		strings.NewReader(`{"borrowerKind":"student","borrowerId":10,"bookId":3}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"no such open loan"}`, w.Body.String())
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mockServices)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "3",
			mockBehavior: func(m mockServices) {
				m.inventory.EXPECT().
					GetBook(context.Background(), int64(3)).
					Return(model.Book{
						ID: 3, Name: "Dune", Author: "Frank Herbert",
						Barcode: "BC-3", CategoryID: 1, Quantity: 2,
						CategoryName: "Sci-Fi",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":3,"name":"Dune","author":"Frank Herbert","barcode":"BC-3","categoryId":1,"quantity":2,"categoryName":"Sci-Fi"}`,
			},
		},
		{
			name: "err. not found",
			id:   "99",
			mockBehavior: func(m mockServices) {
				m.inventory.EXPECT().
					GetBook(context.Background(), int64(99)).
					Return(model.Book{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. bad id",
			id:           "abc",
			mockBehavior: func(m mockServices) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
		},
		{
			name: "err. internal",
			id:   "3",
			mockBehavior: func(m mockServices) {
				m.inventory.EXPECT().
					GetBook(context.Background(), int64(3)).
					Return(model.Book{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"storage error, try again"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, m := newTestEcho(t)
			e.GET("/books/:id", h.GetBook)

			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/books/%s", tt.id), http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.JSONEq(t, tt.response.expectedBody, w.Body.String())
		})
	}
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mockServices)

	okReq := model.RegisterRequest{
		Kind:       model.KindStudent,
		Name:       "Ada Lovelace",
		ExternalID: "S-001",
		Email:      "ada@univ.edu",
		Mobile:     "1234567890",
		Rfid:       "RF-1",
		Course:     "CS",
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"kind":"student","name":"Ada Lovelace","externalId":"S-001","email":"ada@univ.edu","mobile":"1234567890","rfid":"RF-1","course":"CS"}`,
			mockBehavior: func(m mockServices) {
				m.registry.EXPECT().
					Register(context.Background(), okReq).
					Return(int64(5), nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":5}`,
			},
		},
		{
			name: "err. conflict with existing account",
			body: `{"kind":"student","name":"Ada Lovelace","externalId":"S-001","email":"ada@univ.edu","mobile":"1234567890","rfid":"RF-1","course":"CS"}`,
			mockBehavior: func(m mockServices) {
				m.registry.EXPECT().
					Register(context.Background(), okReq).
					Return(int64(0), &errs.ConflictError{
						Err: errs.ErrDuplicateEmail,
						Account: &model.AccountSummary{
							Kind:       model.KindFaculty,
							Name:       "A. Lovelace",
							ExternalID: "F-042",
							Email:      "ada@univ.edu",
							Mobile:     "1234567890",
						},
					})
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"email already registered","existingAccount":{"kind":"faculty","name":"A. Lovelace","externalId":"F-042","email":"ada@univ.edu","mobile":"1234567890"}}`,
			},
		},
		{
			name: "err. validation surfaced as 400",
			body: `{"kind":"student","name":"Ada","externalId":"S-001","email":"ada@univ.edu","mobile":"123","rfid":"RF-1"}`,
			mockBehavior: func(m mockServices) {
				m.registry.EXPECT().
					Register(context.Background(), gomock.Any()).
					Return(int64(0), errs.NewValidationError("mobile", "must be exactly 10 digits"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid mobile: must be exactly 10 digits"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, m := newTestEcho(t)
			e.POST("/persons", h.Register)

			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost, "/persons", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.JSONEq(t, tt.response.expectedBody, w.Body.String())
		})
	}
}

func TestHandler_CheckIdentity(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mockServices)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "email free",
			query: "email=free@univ.edu",
			mockBehavior: func(m mockServices) {
				m.registry.EXPECT().IsEmailUnique(context.Background(), "free@univ.edu").Return(true)
				m.registry.EXPECT().
					FindExistingAccount(context.Background(), "free@univ.edu", "").
					Return(nil, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"emailUnique":true}`,
			},
		},
		{
			name:  "mobile taken reports holder",
			query: "mobile=1234567890",
			mockBehavior: func(m mockServices) {
				m.registry.EXPECT().IsMobileUnique(context.Background(), "1234567890").Return(false)
				m.registry.EXPECT().
					FindExistingAccount(context.Background(), "", "1234567890").
					Return(&model.AccountSummary{
						Kind: model.KindStudent, Name: "Ada", ExternalID: "S-001",
						Email: "ada@univ.edu", Mobile: "1234567890",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"mobileUnique":false,"existingAccount":{"kind":"student","name":"Ada","externalId":"S-001","email":"ada@univ.edu","mobile":"1234567890"}}`,
			},
		},
		{
			name:         "err. nothing to check",
			query:        "",
			mockBehavior: func(m mockServices) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"email or mobile is required"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, h, m := newTestEcho(t)
			e.GET("/persons/check", h.CheckIdentity)

			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodGet, "/persons/check?"+tt.query, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.JSONEq(t, tt.response.expectedBody, w.Body.String())
		})
	}
}

func TestHandler_DeletePerson(t *testing.T) {
	t.Parallel()
	e, h, m := newTestEcho(t)
	e.DELETE("/persons/:kind/:id", h.DeletePerson)

	m.registry.EXPECT().
		DeletePerson(context.Background(), model.KindStudent, int64(7)).
		Return(errs.ErrPersonHasLoans)

	r := httptest.NewRequest(http.MethodDelete, "/persons/student/7", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	require.JSONEq(t, `{"message":"person holds open loans"}`, w.Body.String())
}

func TestHandler_AvailableCopies(t *testing.T) {
	t.Parallel()
	e, h, m := newTestEcho(t)
	e.GET("/books/:id/available", h.AvailableCopies)

	m.inventory.EXPECT().
		AvailableCopies(context.Background(), int64(3)).
		Return(2, nil)

	r := httptest.NewRequest(http.MethodGet, "/books/3/available", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"bookId":3,"available":2}`, w.Body.String())
}

func TestHandler_RemoveOrphanedLoans(t *testing.T) {
	t.Parallel()
	e, h, m := newTestEcho(t)
	e.POST("/maintenance/orphaned-loans", h.RemoveOrphanedLoans)

	m.reconciler.EXPECT().
		RemoveOrphanedLoans(context.Background()).
		Return(3, nil)

	r := httptest.NewRequest(http.MethodPost, "/maintenance/orphaned-loans", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"removed":3}`, w.Body.String())
}
