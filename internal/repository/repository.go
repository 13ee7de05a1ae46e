// Package repository holds the Postgres persistence layer. All catalog and
// ledger mutation goes through here; nothing else touches the tables.
package repository

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	categoriesTableName = `categories`
	booksTableName      = `books`
	issuedTableName     = `issued_books`
	returnedTableName   = `returned_books`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
