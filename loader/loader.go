// Package loader reads ledger and hour log files from disk and parses
// them. It wraps I/O failures in a distinct error type so callers can tell
// an unreadable file apart from a file with bad contents.
package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/zzptools/grootboek/ledger"
	"github.com/zzptools/grootboek/telemetry"
	"github.com/zzptools/grootboek/uurlog"
)

// Result is a parsed ledger file together with its raw source, kept for
// error-context rendering and re-parsing.
type Result struct {
	Filename     string
	Source       []byte
	Transactions []ledger.Transaction
}

// LoadLedger reads and parses a ledger file. Read failures return an
// *IOError; parse failures return the *ledger.ParseError together with the
// source that was read, so the caller can still render error context.
func LoadLedger(ctx context.Context, filename string) (*Result, error) {
	collector := telemetry.FromContext(ctx)

	timer := collector.Start("read " + filename)
	source, err := os.ReadFile(filename)
	timer.End()
	if err != nil {
		return nil, &IOError{Filename: filename, Err: err}
	}

	result := &Result{Filename: filename, Source: source}

	timer = collector.Start("parse " + filename)
	result.Transactions, err = ledger.Parse(string(source))
	timer.End()
	if err != nil {
		return result, err
	}

	return result, nil
}

// LoadLedgerBytes parses ledger source that was already read, e.g. from
// stdin.
func LoadLedgerBytes(ctx context.Context, filename string, source []byte) (*Result, error) {
	timer := telemetry.FromContext(ctx).Start("parse " + filename)
	defer timer.End()

	result := &Result{Filename: filename, Source: source}
	transactions, err := ledger.Parse(string(source))
	if err != nil {
		return result, err
	}
	result.Transactions = transactions
	return result, nil
}

// LoadHours reads and parses an hour log file.
func LoadHours(ctx context.Context, filename string) ([]uurlog.Entry, []byte, error) {
	collector := telemetry.FromContext(ctx)

	timer := collector.Start("read " + filename)
	source, err := os.ReadFile(filename)
	timer.End()
	if err != nil {
		return nil, nil, &IOError{Filename: filename, Err: err}
	}

	timer = collector.Start("parse " + filename)
	entries, err := uurlog.Parse(string(source))
	timer.End()
	if err != nil {
		return nil, source, err
	}

	return entries, source, nil
}

// IOError reports a file that could not be read at all, as opposed to one
// with contents that fail to parse.
type IOError struct {
	Filename string
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %s", e.Filename, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
