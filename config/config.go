// Package config loads the TOML configuration for the grootboek tools.
//
// Two files are involved: "grootboek.toml" with the company-wide settings,
// and "customer.toml" with per-customer invoice settings. Both are found by
// walking up the directory tree from the working directory, so commands can
// run from anywhere inside an administration directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default file names searched for by FindConfig and FindCustomer.
const (
	ConfigFileName   = "grootboek.toml"
	CustomerFileName = "customer.toml"
)

// Config is the main configuration file.
type Config struct {
	Company      Company      `toml:"company"`
	Tax          Tax          `toml:"tax"`
	Localization Localization `toml:"localization"`
}

// Company describes the company running the administration.
type Company struct {
	Name    string     `toml:"name"`
	Address []string   `toml:"address"`
	Contact []KeyValue `toml:"contact"`
	Legal   []KeyValue `toml:"legal"`
	Payment []KeyValue `toml:"payment"`
}

// Tax holds the tax defaults.
type Tax struct {
	// VATPercent is the default VAT percentage for delivered services.
	VATPercent int `toml:"vat"`
}

// Localization holds translations and formats for generated documents.
type Localization struct {
	Invoice   string `toml:"invoice"`
	Hours     string `toml:"hours"`
	Currency  string `toml:"currency"` // ISO 4217 code, e.g. "EUR".
	MoneySign string `toml:"money-sign"`
}

// CustomerConfig is the per-customer configuration file.
type CustomerConfig struct {
	Customer Customer        `toml:"customer"`
	Invoice  CustomerInvoice `toml:"invoice"`
}

// Customer describes one customer.
type Customer struct {
	Name    string   `toml:"name"`
	Address []string `toml:"address"`
}

// CustomerInvoice describes how to invoice a customer.
type CustomerInvoice struct {
	// CentsPerHour is the hourly rate in minor currency units.
	CentsPerHour int64 `toml:"cents-per-hour"`

	// SummarizePerDay, when set, merges all hour entries of one day into
	// a single invoice line with this description.
	SummarizePerDay string `toml:"summarize-per-day"`

	// Account is the ledger account template for booking the invoice.
	Account string `toml:"account"`
}

// KeyValue is a generic name/value pair rendered as-is on documents.
type KeyValue struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

// Find looks for a file with the given name in startDir and each parent
// directory, stopping when the search would leave rootDir. It returns the
// path of the first match, or false when no directory on the way up
// contains the file.
//
// The search is a pure function of the two injected paths; it never
// consults process-global state.
func Find(rootDir, startDir, name string) (string, bool) {
	rootDir = filepath.Clean(rootDir)
	dir := filepath.Clean(startDir)
	for {
		if !withinDir(rootDir, dir) {
			return "", false
		}
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func withinDir(root, dir string) bool {
	if root == dir {
		return true
	}
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}
	return strings.HasPrefix(dir, root)
}

// Load reads and decodes the main configuration file.
func Load(path string) (*Config, error) {
	var config Config
	if err := decodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadCustomer reads and decodes a customer configuration file.
func LoadCustomer(path string) (*CustomerConfig, error) {
	var config CustomerConfig
	if err := decodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func decodeFile(path string, value any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, value); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

// DecodeError reports a configuration file that could not be decoded.
// It is distinct from the I/O errors returned for unreadable files.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
