package ledger

import (
	"strings"

	"github.com/zzptools/grootboek/calendar"
)

// Parse parses an entire ledger file into its transactions, in file order.
//
// Parsing is a single pass over the lines of the input and stops at the
// first offending line; there is no error recovery. The returned error is
// always a *ParseError carrying the exact offending token.
func Parse(source string) ([]Transaction, error) {
	p := &parser{lines: strings.Split(source, "\n")}

	var transactions []Transaction
	for {
		transaction, ok, err := p.nextTransaction()
		if err != nil {
			return nil, err
		}
		if !ok {
			return transactions, nil
		}
		transactions = append(transactions, transaction)
	}
}

// parser walks the input line by line, tracking 1-indexed line numbers for
// error reporting.
type parser struct {
	lines []string
	index int
}

// next returns the next trimmed line and its line number.
func (p *parser) next() (line string, number int, ok bool) {
	if p.index >= len(p.lines) {
		return "", 0, false
	}
	line = strings.TrimSpace(p.lines[p.index])
	p.index++
	return line, p.index, true
}

// nextTransaction parses one transaction block. It returns ok=false when
// only blank lines and comments remain.
func (p *parser) nextTransaction() (Transaction, bool, error) {
	// Find the header, skipping blank lines and comments between blocks.
	var header string
	var headerLine int
	for {
		line, number, ok := p.next()
		if !ok {
			return Transaction{}, false, nil
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		header, headerLine = line, number
		break
	}

	// The header is "DATE: DESCRIPTION", split on the first colon.
	rawDate, description, found := strings.Cut(header, ":")
	description = strings.TrimSpace(description)
	if !found || description == "" {
		return Transaction{}, false, &ParseError{Kind: MissingDescription, Token: header, Line: headerLine}
	}

	rawDate = strings.TrimSpace(rawDate)
	date, err := calendar.ParseDate(rawDate)
	if err != nil {
		return Transaction{}, false, &ParseError{Kind: InvalidDate, Token: rawDate, Line: headerLine, Err: err}
	}

	transaction := Transaction{Date: date, Description: description}

	// Tags and mutations until a blank line or the end of the input.
	// Comments may appear anywhere inside the block.
	for {
		line, number, ok := p.next()
		if !ok || line == "" {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		if tag, isTag := parseTag(line); isTag {
			if len(transaction.Mutations) > 0 {
				return Transaction{}, false, &ParseError{Kind: TagAfterMutation, Token: line, Line: number}
			}
			transaction.Tags = append(transaction.Tags, tag)
			continue
		}

		mutation, err := parseMutation(line, number)
		if err != nil {
			return Transaction{}, false, err
		}
		transaction.Mutations = append(transaction.Mutations, mutation)
	}

	return transaction, true, nil
}

// parseTag reports whether the line has the shape "LABEL: VALUE" with a
// label containing only ASCII alphanumerics and "-". Lines that do not
// qualify are mutation lines.
func parseTag(line string) (Tag, bool) {
	label, value, found := strings.Cut(line, ":")
	if !found {
		return Tag{}, false
	}
	label = strings.TrimSpace(label)
	if !isTagLabel(label) {
		return Tag{}, false
	}
	return Tag{Label: label, Value: strings.TrimSpace(value)}, true
}

func isTagLabel(label string) bool {
	for _, c := range []byte(label) {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// parseMutation parses a "SIGN AMOUNT ACCOUNT" line, split on the first
// space. The amount must start with an explicit "+" or "-".
func parseMutation(line string, number int) (Mutation, error) {
	rawAmount, rawAccount, found := strings.Cut(line, " ")
	account := strings.TrimSpace(rawAccount)
	if !found || account == "" {
		return Mutation{}, &ParseError{Kind: MissingAccount, Token: line, Line: number}
	}

	var sign Cents
	switch {
	case strings.HasPrefix(rawAmount, "+"):
		sign = 1
	case strings.HasPrefix(rawAmount, "-"):
		sign = -1
	default:
		return Mutation{}, &ParseError{Kind: MissingSign, Token: rawAmount, Line: number}
	}

	amount, err := ParseCents(rawAmount[1:])
	if err != nil {
		return Mutation{}, &ParseError{Kind: InvalidAmount, Token: rawAmount, Line: number, Err: err}
	}

	return Mutation{Amount: amount * sign, Account: Account(account)}, nil
}
