package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Cornell-QCA/tqc-emu/anyon"
	"github.com/Cornell-QCA/tqc-emu/matrix"
)

// configValidate checks Config struct tags. Safe for concurrent use.
var configValidate = validator.New()

// Config is the YAML form of a Model.
type Config struct {
	Name    string       `yaml:"name" validate:"required"`
	RMatrix [][]string   `yaml:"r_matrix" validate:"required,min=1,dive,min=1,dive,required"`
	FMatrix [][]string   `yaml:"f_matrix" validate:"required,min=1,dive,min=1,dive,required"`
	Fusion  []RuleConfig `yaml:"fusion" validate:"required,min=1,dive"`
}

// RuleConfig is one fusion rule: left ⊗ right = Σ result.
// Repeating a label in Result raises its multiplicity.
type RuleConfig struct {
	Left   string   `yaml:"left" validate:"required"`
	Right  string   `yaml:"right" validate:"required"`
	Result []string `yaml:"result" validate:"required,min=1,dive,required"`
}

// Validate checks struct tags only; Build performs the semantic checks.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Build validates c and turns it into a Model.
func (c Config) Build(opts ...matrix.Option) (Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	r, err := parseMatrix("r_matrix", c.RMatrix)
	if err != nil {
		return nil, err
	}
	f, err := parseMatrix("f_matrix", c.FMatrix)
	if err != nil {
		return nil, err
	}
	table, err := c.fusionTable()
	if err != nil {
		return nil, err
	}

	return New(c.Name, r, f, table, opts...)
}

// fusionTable assembles the table, mirroring rules given in one order only.
func (c Config) fusionTable() (anyon.FusionTable, error) {
	var (
		table anyon.FusionTable
		given [anyon.NumCharges][anyon.NumCharges]bool
	)
	for i, rule := range c.Fusion {
		left, err := anyon.ParseCharge(rule.Left)
		if err != nil {
			return table, fmt.Errorf("%w: fusion[%d].left: %w", ErrInvalidConfig, i, err)
		}
		right, err := anyon.ParseCharge(rule.Right)
		if err != nil {
			return table, fmt.Errorf("%w: fusion[%d].right: %w", ErrInvalidConfig, i, err)
		}
		if given[left][right] {
			return table, fmt.Errorf("%w: duplicate rule %s x %s", ErrIncompleteTable, left, right)
		}
		var out anyon.ChargeVector
		for _, label := range rule.Result {
			ch, err := anyon.ParseCharge(label)
			if err != nil {
				return table, fmt.Errorf("%w: fusion[%d].result: %w", ErrInvalidConfig, i, err)
			}
			out = out.Add(ch.Vector())
		}
		table[left][right] = out
		given[left][right] = true
	}

	for _, a := range anyon.Charges {
		for _, b := range anyon.Charges {
			if given[a][b] {
				continue
			}
			if !given[b][a] {
				return table, fmt.Errorf("%w: no rule for %s x %s", ErrIncompleteTable, a, b)
			}
			table[a][b] = table[b][a]
		}
	}

	return table, nil
}

func parseMatrix(field string, rows [][]string) (*matrix.Dense, error) {
	vals := make([][]complex128, len(rows))
	for i, row := range rows {
		vals[i] = make([]complex128, len(row))
		for j, s := range row {
			v, err := strconv.ParseComplex(s, 128)
			if err != nil {
				return nil, fmt.Errorf("%w: %s[%d][%d]=%q: %w", ErrInvalidConfig, field, i, j, s, err)
			}
			vals[i][j] = v
		}
	}
	m, err := matrix.NewFromRows(vals)
	if err != nil {
		if errors.Is(err, matrix.ErrRaggedRows) {
			return nil, fmt.Errorf("%w: %s: %w", ErrMatrixShape, field, err)
		}

		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, field, err)
	}

	return m, nil
}

// ConfigOf renders m as a Config. Entries use the shortest exact
// representation, so Build(ConfigOf(m)) reproduces m. Empty fusion channels
// are omitted.
func ConfigOf(m Model) Config {
	cfg := Config{
		Name:    m.Name(),
		RMatrix: formatMatrix(m.RMatrix()),
		FMatrix: formatMatrix(m.FMatrix()),
	}
	table := m.FusionTable()
	for _, a := range anyon.Charges {
		for _, b := range anyon.Charges {
			rule := RuleConfig{Left: a.String(), Right: b.String()}
			for _, ch := range anyon.Charges {
				for k := uint64(0); k < table[a][b].Of(ch); k++ {
					rule.Result = append(rule.Result, ch.String())
				}
			}
			if len(rule.Result) > 0 {
				cfg.Fusion = append(cfg.Fusion, rule)
			}
		}
	}

	return cfg
}

func formatMatrix(m *matrix.Dense) [][]string {
	out := make([][]string, m.Rows())
	for i := range out {
		row, _ := m.Row(i)
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = strconv.FormatComplex(v, 'g', -1, 128)
		}
	}

	return out
}

// Marshal encodes m as YAML.
func Marshal(m Model) ([]byte, error) {
	data, err := yaml.Marshal(ConfigOf(m))
	if err != nil {
		return nil, fmt.Errorf("model: marshal %s: %w", m.Name(), err)
	}

	return data, nil
}

// Parse decodes a YAML document into a Model. Unknown keys are rejected.
func Parse(data []byte, opts ...matrix.Option) (Model, error) {
	return Load(bytes.NewReader(data), opts...)
}

// Load reads one YAML document from r and builds the Model it describes.
func Load(r io.Reader, opts ...matrix.Option) (Model, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}

	return cfg.Build(opts...)
}

// LoadFile is Load on the contents of path.
func LoadFile(path string, opts ...matrix.Option) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("model: %s: %w", path, err)
	}

	return m, nil
}
