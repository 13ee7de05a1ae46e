package model

import (
	"time"
)

type PersonKind string

const (
	KindStudent PersonKind = "student"
	KindFaculty PersonKind = "faculty"
	KindAdmin   PersonKind = "admin"
)

func (k PersonKind) Valid() bool {
	switch k {
	case KindStudent, KindFaculty, KindAdmin:
		return true
	}
	return false
}

// CanBorrow reports whether this kind of person may hold loans.
func (k PersonKind) CanBorrow() bool {
	return k == KindStudent || k == KindFaculty
}

// Person is the application view of one row of students/faculty/admins
// joined with its contacts row.
type Person struct {
	ID         int64      `json:"id" db:"id"`
	Kind       PersonKind `json:"kind" db:"kind"`
	Name       string     `json:"name" db:"name"`
	ExternalID string     `json:"externalId" db:"external_id"`
	Email      string     `json:"email" db:"email"`
	Mobile     string     `json:"mobile" db:"mobile"`
	Rfid       string     `json:"rfid,omitempty" db:"rfid"`
	Course     string     `json:"course,omitempty" db:"course"`
	Active     bool       `json:"active" db:"active"`
}

// Borrower is the tagged union {Student(id) | Faculty(id)} that owns a loan.
type Borrower struct {
	Kind PersonKind `json:"kind"`
	ID   int64      `json:"id"`
}

// AccountSummary describes an already-registered account that conflicts with
// a registration attempt, so callers can explain why it failed.
type AccountSummary struct {
	Kind       PersonKind `json:"kind" db:"kind"`
	Name       string     `json:"name" db:"name"`
	ExternalID string     `json:"externalId" db:"external_id"`
	Email      string     `json:"email" db:"email"`
	Mobile     string     `json:"mobile" db:"mobile"`
}

type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Book struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Author     string `json:"author" db:"author"`
	Barcode    string `json:"barcode" db:"barcode"`
	CategoryID int64  `json:"categoryId" db:"category_id"`
	Quantity   int    `json:"quantity" db:"quantity"`

	CategoryName string `json:"categoryName,omitempty" db:"category_name"`
}

// Loan is one open circulation record; its existence means "checked out".
type Loan struct {
	ID        int64     `json:"id" db:"id"`
	LoanUID   string    `json:"loanUid" db:"loan_uid"`
	StudentID *int64    `json:"studentId,omitempty" db:"student_id"`
	FacultyID *int64    `json:"facultyId,omitempty" db:"faculty_id"`
	BookID    int64     `json:"bookId" db:"book_id"`
	IssueDate time.Time `json:"issueDate" db:"issue_date"`
}

// Borrower reconstructs the tagged union from the two nullable columns.
func (l Loan) Borrower() Borrower {
	if l.StudentID != nil {
		return Borrower{Kind: KindStudent, ID: *l.StudentID}
	}
	if l.FacultyID != nil {
		return Borrower{Kind: KindFaculty, ID: *l.FacultyID}
	}
	return Borrower{}
}

// LoanSummary is the borrower-facing dashboard row.
type LoanSummary struct {
	LoanUID   string    `json:"loanUid" db:"loan_uid"`
	BookID    int64     `json:"bookId" db:"book_id"`
	BookName  string    `json:"bookName" db:"book_name"`
	Author    string    `json:"author" db:"author"`
	Barcode   string    `json:"barcode" db:"barcode"`
	IssueDate time.Time `json:"issueDate" db:"issue_date"`
}

// LoanSearchRow is one hit of the admin loan search, tagged with who holds it.
type LoanSearchRow struct {
	BookName     string     `json:"bookName" db:"book_name"`
	Barcode      string     `json:"barcode" db:"barcode"`
	BorrowerKind PersonKind `json:"borrowerKind" db:"borrower_kind"`
	BorrowerName string     `json:"borrowerName" db:"borrower_name"`
	BorrowerID   string     `json:"borrowerId" db:"borrower_id"`
	IssueDate    time.Time  `json:"issueDate" db:"issue_date"`
}

type RegisterRequest struct {
	Kind       PersonKind `json:"kind" validate:"required,oneof=student faculty admin"`
	Name       string     `json:"name" validate:"required"`
	ExternalID string     `json:"externalId" validate:"required"`
	Email      string     `json:"email" validate:"required"`
	Mobile     string     `json:"mobile" validate:"required"`
	Rfid       string     `json:"rfid,omitempty"`
	Course     string     `json:"course,omitempty"`
}

type UpdatePersonRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required"`
	Mobile string `json:"mobile" validate:"required"`
	Rfid   string `json:"rfid,omitempty"`
	Course string `json:"course,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

type BookRequest struct {
	Name       string `json:"name" validate:"required"`
	Author     string `json:"author" validate:"required"`
	Barcode    string `json:"barcode" validate:"required"`
	CategoryID int64  `json:"categoryId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"gte=0"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type IssueRequest struct {
	BorrowerKind PersonKind `json:"borrowerKind" validate:"required,oneof=student faculty"`
	BorrowerID   int64      `json:"borrowerId" validate:"required"`
	BookID       int64      `json:"bookId" validate:"required"`
}
