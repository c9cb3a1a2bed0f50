// Package directory provides the read-only reference data the kiosk works
// against: the beneficiary directory and the exchange rate table.
package directory

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/remitkiosk/internal/logger"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed data/directory.yml
var defaultData []byte

var (
	// ErrDuplicateBeneficiary is returned when two beneficiaries share an id.
	ErrDuplicateBeneficiary = errors.New("duplicate beneficiary id")
	// ErrInvalidRate is returned for a rate that is not a positive decimal.
	ErrInvalidRate = errors.New("invalid exchange rate")
	// ErrInvalidBeneficiary is returned for a beneficiary missing an id or currency.
	ErrInvalidBeneficiary = errors.New("invalid beneficiary")
)

// Beneficiary identifies a transfer recipient.
type Beneficiary struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Country       string `yaml:"country"`
	AccountNumber string `yaml:"account_number"` // masked, e.g. "**** 5678"
	BankName      string `yaml:"bank_name"`
	Currency      string `yaml:"currency"`
	Avatar        string `yaml:"avatar"`
}

// file is the on-disk layout of a directory file.
type file struct {
	Beneficiaries []Beneficiary `yaml:"beneficiaries"`
	Rates         []rateEntry   `yaml:"rates"`
}

type rateEntry struct {
	Code string `yaml:"code"`
	Rate string `yaml:"rate"`
}

// Directory is an ordered, immutable list of beneficiaries plus the rate
// table used to price transfers to them.
type Directory struct {
	beneficiaries []Beneficiary
	byID          map[string]int
	rates         *RateTable
}

// Default returns the directory bundled with the binary.
func Default() (*Directory, error) {
	return Parse(defaultData)
}

// Load reads a directory file. An empty path loads the bundled directory.
func Load(path string) (*Directory, error) {
	if path == "" {
		logger.Debug("No directory file configured, using bundled directory")
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory file: %w", err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading directory %s: %w", path, err)
	}

	logger.Info("Loaded directory from %s: %d beneficiaries, %d currencies",
		path, len(d.beneficiaries), d.rates.Len())
	return d, nil
}

// Parse decodes and validates a directory document.
func Parse(data []byte) (*Directory, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing directory: %w", err)
	}

	rates := NewRateTable()
	for _, r := range f.Rates {
		rate, err := decimal.NewFromString(strings.TrimSpace(r.Rate))
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidRate, r.Code, r.Rate)
		}
		if err := rates.Set(r.Code, rate); err != nil {
			return nil, err
		}
	}

	d := &Directory{
		beneficiaries: make([]Beneficiary, 0, len(f.Beneficiaries)),
		byID:          make(map[string]int, len(f.Beneficiaries)),
		rates:         rates,
	}
	for _, b := range f.Beneficiaries {
		if b.ID == "" || b.Currency == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBeneficiary, b.Name)
		}
		if _, dup := d.byID[b.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBeneficiary, b.ID)
		}
		b.Currency = strings.ToUpper(b.Currency)
		d.byID[b.ID] = len(d.beneficiaries)
		d.beneficiaries = append(d.beneficiaries, b)
	}

	for _, problem := range d.Problems() {
		logger.Warn("Directory: %s", problem)
	}

	return d, nil
}

// Beneficiaries returns the beneficiaries in directory order.
func (d *Directory) Beneficiaries() []Beneficiary {
	out := make([]Beneficiary, len(d.beneficiaries))
	copy(out, d.beneficiaries)
	return out
}

// Lookup finds a beneficiary by id.
func (d *Directory) Lookup(id string) (Beneficiary, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Beneficiary{}, false
	}
	return d.beneficiaries[i], true
}

// Rates returns the directory's exchange rate table.
func (d *Directory) Rates() *RateTable {
	return d.rates
}

// Problems reports configuration issues that do not prevent loading but
// will fault at transfer time, such as a beneficiary whose settlement
// currency has no rate.
func (d *Directory) Problems() []string {
	var problems []string
	if len(d.beneficiaries) == 0 {
		problems = append(problems, "no beneficiaries defined")
	}
	for _, b := range d.beneficiaries {
		if _, ok := d.rates.Rate(b.Currency); !ok {
			problems = append(problems, fmt.Sprintf("beneficiary %s (%s) settles in %s which has no rate", b.ID, b.Name, b.Currency))
		}
	}
	return problems
}
