package ledger

import "fmt"

// ErrorKind identifies what exactly was wrong with an offending line.
// Kinds are grouped into header, tag, and mutation errors; the IsHeader,
// IsTag, and IsMutation methods expose the grouping.
type ErrorKind int

const (
	// Header errors.

	// MissingDescription: the header has no ":" separator or an empty
	// description after it.
	MissingDescription ErrorKind = iota + 1
	// InvalidDate: the date portion of the header did not parse.
	InvalidDate

	// Tag errors.

	// TagAfterMutation: a tag-shaped line appeared after the first
	// mutation of the block.
	TagAfterMutation

	// Mutation errors.

	// MissingSign: the amount does not start with "+" or "-".
	MissingSign
	// MissingAccount: the mutation line has no account after the amount.
	MissingAccount
	// InvalidAmount: the amount is not "WHOLE" or "WHOLE.DD" with exactly
	// two decimal digits.
	InvalidAmount
)

// IsHeader reports whether the kind concerns a transaction header.
func (k ErrorKind) IsHeader() bool {
	return k == MissingDescription || k == InvalidDate
}

// IsTag reports whether the kind concerns a tag line.
func (k ErrorKind) IsTag() bool {
	return k == TagAfterMutation
}

// IsMutation reports whether the kind concerns a mutation line.
func (k ErrorKind) IsMutation() bool {
	return k == MissingSign || k == MissingAccount || k == InvalidAmount
}

func (k ErrorKind) String() string {
	switch k {
	case MissingDescription:
		return "missing transaction description"
	case InvalidDate:
		return "invalid date"
	case TagAfterMutation:
		return "tags are only allowed before the first mutation"
	case MissingSign:
		return "missing sign (+/-)"
	case MissingAccount:
		return "missing account for mutation"
	case InvalidAmount:
		return "invalid mutation amount"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is a fatal error in a ledger file. It carries the exact
// offending token so callers can point at it in user-facing diagnostics.
type ParseError struct {
	Kind  ErrorKind
	Token string // The exact offending substring of the source.
	Line  int    // 1-indexed source line the token appears on.
	Err   error  // Underlying error, if any (e.g. a calendar error for InvalidDate).
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Kind, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
