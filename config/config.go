package config

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"attendsheet/attendance"
)

const (
	KeyTemplateHeaderRow       = "template.header_row"
	KeyTemplateIDColumn        = "template.id_column"
	KeyTemplateFirstDateColumn = "template.first_date_column"
	KeyImportLayout            = "import.layout"
	KeyImportDateStrategy      = "import.date_strategy"
	KeyImportStrictColumns     = "import.strict_columns"
	KeyFillEmptyReasonPolicy   = "fill.empty_reason_policy"
	KeyFillHighlightColor      = "fill.highlight_color"
)

// Day-file identity layouts.
const (
	LayoutBlock = "block"
	LayoutFlat  = "flat"
)

// Date identity resolution strategies.
const (
	DateStrategyCell     = "cell"
	DateStrategyFilename = "filename"
)

// Policies for absence cells with no comment and no nonzero leave count.
const (
	EmptyReasonAbsent = "absent"
	EmptyReasonBlank  = "blank"
)

type Config struct {
	Template TemplateConfig `mapstructure:"template" validate:"required"`
	Import   ImportConfig   `mapstructure:"import"`
	Fill     FillConfig     `mapstructure:"fill"`
}

// TemplateConfig locates the fixed landmarks of the payroll template sheet.
// All rows and columns are 1-based.
type TemplateConfig struct {
	HeaderRow       int `mapstructure:"header_row" validate:"gte=1"`
	IDColumn        int `mapstructure:"id_column" validate:"gte=1"`
	FirstDateColumn int `mapstructure:"first_date_column" validate:"gte=1"`
}

type ImportConfig struct {
	Layout        string        `mapstructure:"layout"`
	DateStrategy  string        `mapstructure:"date_strategy"`
	StrictColumns bool          `mapstructure:"strict_columns"`
	Columns       ColumnsConfig `mapstructure:"columns"`
}

// ColumnsConfig maps semantic day-file fields to 1-based column indices.
// Zero means the field is not present in the export.
type ColumnsConfig struct {
	ID         int `mapstructure:"id"`
	Name       int `mapstructure:"name"`
	Date       int `mapstructure:"date"`
	ClockIn    int `mapstructure:"clock_in"`
	ClockOut   int `mapstructure:"clock_out"`
	Late       int `mapstructure:"late"`
	NoClockIn  int `mapstructure:"no_clock_in"`
	NoClockOut int `mapstructure:"no_clock_out"`
	Absent     int `mapstructure:"absent"`
	Sick       int `mapstructure:"sick"`
	Personal   int `mapstructure:"personal"`
	Vacation   int `mapstructure:"vacation"`
	Ordination int `mapstructure:"ordination"`
	Comment    int `mapstructure:"comment"`
}

type FillConfig struct {
	EmptyReasonPolicy string `mapstructure:"empty_reason_policy"`
	HighlightColor    string `mapstructure:"highlight_color"`
}

// LeaveColumn returns the configured column index for a leave category.
func (c ColumnsConfig) LeaveColumn(category attendance.LeaveCategory) int {
	switch category {
	case attendance.NoClockIn:
		return c.NoClockIn
	case attendance.NoClockOut:
		return c.NoClockOut
	case attendance.Absent:
		return c.Absent
	case attendance.Sick:
		return c.Sick
	case attendance.Personal:
		return c.Personal
	case attendance.Vacation:
		return c.Vacation
	case attendance.Ordination:
		return c.Ordination
	default:
		return 0
	}
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// Default returns a validated configuration built purely from defaults.
func Default() Config {
	local := viper.New()
	setDefaults(local)
	cfg, err := loadAndValidateFromViper(local)
	if err != nil {
		// Defaults are fixed at compile time; failing to load them is a bug.
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return *cfg
}

// ExampleYAML returns the default configuration template. Column indices
// mirror the fingerprint system's standard export layout.
func ExampleYAML() string {
	return `# attendsheet configuration
template:
  header_row: 2
  id_column: 2
  first_date_column: 4

import:
  layout: block            # block | flat
  date_strategy: cell      # cell | filename
  strict_columns: false
  columns:
    id: 1
    name: 2
    date: 3
    clock_in: 5
    clock_out: 6
    late: 7
    no_clock_in: 10
    no_clock_out: 11
    absent: 12
    sick: 13
    personal: 14
    vacation: 15
    ordination: 16
    comment: 17

fill:
  empty_reason_policy: absent   # absent | blank
  highlight_color: "FFFF00"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateChoices(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTemplateHeaderRow, 2)
	v.SetDefault(KeyTemplateIDColumn, 2)
	v.SetDefault(KeyTemplateFirstDateColumn, 4)
	v.SetDefault(KeyImportLayout, LayoutBlock)
	v.SetDefault(KeyImportDateStrategy, DateStrategyCell)
	v.SetDefault(KeyImportStrictColumns, false)
	v.SetDefault("import.columns.id", 1)
	v.SetDefault("import.columns.name", 2)
	v.SetDefault("import.columns.date", 3)
	v.SetDefault("import.columns.clock_in", 5)
	v.SetDefault("import.columns.clock_out", 6)
	v.SetDefault("import.columns.late", 7)
	v.SetDefault("import.columns.no_clock_in", 10)
	v.SetDefault("import.columns.no_clock_out", 11)
	v.SetDefault("import.columns.absent", 12)
	v.SetDefault("import.columns.sick", 13)
	v.SetDefault("import.columns.personal", 14)
	v.SetDefault("import.columns.vacation", 15)
	v.SetDefault("import.columns.ordination", 16)
	v.SetDefault("import.columns.comment", 17)
	v.SetDefault(KeyFillEmptyReasonPolicy, EmptyReasonAbsent)
	v.SetDefault(KeyFillHighlightColor, "FFFF00")
}

var hexColorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

func validateChoices(cfg Config) error {
	layout := cfg.Import.NormalizedLayout()
	if layout != LayoutBlock && layout != LayoutFlat {
		return fmt.Errorf("validation failed: import.layout %q is not supported (valid: block, flat)", cfg.Import.Layout)
	}

	strategy := cfg.Import.NormalizedDateStrategy()
	if strategy != DateStrategyCell && strategy != DateStrategyFilename {
		return fmt.Errorf("validation failed: import.date_strategy %q is not supported (valid: cell, filename)", cfg.Import.DateStrategy)
	}

	policy := cfg.Fill.NormalizedEmptyReasonPolicy()
	if policy != EmptyReasonAbsent && policy != EmptyReasonBlank {
		return fmt.Errorf("validation failed: fill.empty_reason_policy %q is not supported (valid: absent, blank)", cfg.Fill.EmptyReasonPolicy)
	}

	if !hexColorPattern.MatchString(strings.TrimSpace(cfg.Fill.HighlightColor)) {
		return fmt.Errorf("validation failed: fill.highlight_color %q must be a 6-digit hex RGB value", cfg.Fill.HighlightColor)
	}

	if cfg.Import.Columns.ID < 1 {
		return fmt.Errorf("validation failed: import.columns.id is required and must be >= 1")
	}
	if strategy == DateStrategyCell && cfg.Import.Columns.Date < 1 {
		return fmt.Errorf("validation failed: import.columns.date is required when import.date_strategy is %q", DateStrategyCell)
	}

	return nil
}

// NormalizedLayout returns the layout choice lowercased and trimmed.
func (c ImportConfig) NormalizedLayout() string {
	return strings.ToLower(strings.TrimSpace(c.Layout))
}

// NormalizedDateStrategy returns the date strategy choice lowercased and trimmed.
func (c ImportConfig) NormalizedDateStrategy() string {
	return strings.ToLower(strings.TrimSpace(c.DateStrategy))
}

// NormalizedEmptyReasonPolicy returns the empty-reason policy lowercased and trimmed.
func (c FillConfig) NormalizedEmptyReasonPolicy() string {
	return strings.ToLower(strings.TrimSpace(c.EmptyReasonPolicy))
}
