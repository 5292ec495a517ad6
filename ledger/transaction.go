// Package ledger implements the grootboek plain-text double-entry ledger:
// the transaction data model, the line-oriented parser, and the account
// aggregation tree used for balance reports.
//
// A ledger file is a sequence of transaction blocks separated by blank
// lines. Each block starts with a "DATE: DESCRIPTION" header, followed by
// optional "label: value" tags and one or more signed money mutations:
//
//	2020-01-02: buy coffee
//	receipt: coffee-02.pdf
//	+1.50 assets/cash
//	-1.50 expenses/coffee
//
// Comments (lines starting with "#") and blank lines are ignored anywhere.
// The format does not require transactions to balance; use FindUnbalanced
// to detect the ones that do not sum to zero.
package ledger

import "github.com/zzptools/grootboek/calendar"

// Tag is a free-form label/value pair attached to a transaction header.
// Labels contain only ASCII alphanumerics and "-"; values are free text.
type Tag struct {
	Label string
	Value string
}

// Mutation is a single signed money movement against one account.
type Mutation struct {
	Amount  Cents
	Account Account
}

// Transaction is one dated ledger entry: a description with optional tags
// and the money mutations it consists of. Transactions are constructed by
// the parser and not modified afterwards; mutations keep their file order.
type Transaction struct {
	Date        calendar.Date
	Description string
	Tags        []Tag
	Mutations   []Mutation
}

// MutatesAccount reports whether any mutation touches the given account
// prefix (see Account.MatchesPrefix).
func (t *Transaction) MutatesAccount(prefix string) bool {
	for _, mutation := range t.Mutations {
		if mutation.Account.MatchesPrefix(prefix) {
			return true
		}
	}
	return false
}

// Residual returns the sum of all mutation amounts.
// A balanced transaction has a residual of exactly zero.
func (t *Transaction) Residual() Cents {
	var sum Cents
	for _, mutation := range t.Mutations {
		sum = sum.Add(mutation.Amount)
	}
	return sum
}

// IsBalanced reports whether the mutations sum to exactly zero.
func (t *Transaction) IsBalanced() bool {
	return t.Residual().IsZero()
}
