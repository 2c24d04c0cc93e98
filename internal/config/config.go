package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/leengari/tabledb/internal/domain/schema"
)

// Environment variables that provide flag defaults.
const (
	EnvDataDir      = "TABLEDB_DATA_DIR"
	EnvExtension    = "TABLEDB_EXT"
	EnvLogLevel     = "TABLEDB_LOG_LEVEL"
	EnvSeqURL       = "TABLEDB_SEQ_URL"
	EnvStrictSchema = "TABLEDB_STRICT_SCHEMA"
	EnvPrompt       = "TABLEDB_PROMPT"
)

// Configuration holds process settings.
type Configuration struct {
	DataDir      string
	Extension    string
	LogLevel     string
	SeqURL       string
	StrictSchema bool
	Prompt       bool
}

// Load parses args, falling back to environment variables read through
// getenv, then to built-in defaults. promptDefault is used for -prompt when
// TABLEDB_PROMPT is unset.
func Load(args []string, getenv func(string) string, promptDefault bool) (*Configuration, error) {
	cfg := &Configuration{}

	strictDefault, err := envBool(getenv, EnvStrictSchema, false)
	if err != nil {
		return nil, err
	}
	promptDef, err := envBool(getenv, EnvPrompt, promptDefault)
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("tabledb", flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "data-dir", envString(getenv, EnvDataDir, "db_data"), "Directory holding table files")
	fs.StringVar(&cfg.Extension, "ext", envString(getenv, EnvExtension, "tbl"), "Table file extension")
	fs.StringVar(&cfg.LogLevel, "log-level", envString(getenv, EnvLogLevel, "info"), "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.SeqURL, "seq-url", envString(getenv, EnvSeqURL, ""), "Seq server URL; empty disables Seq")
	fs.BoolVar(&cfg.StrictSchema, "strict-schema", strictDefault, "Reject CREATE_TABLE with invalid column definitions")
	fs.BoolVar(&cfg.Prompt, "prompt", promptDef, "Show the interactive banner and prompt")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that flag parsing cannot.
func (c *Configuration) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data directory must not be empty")
	}
	if !schema.ValidIdentifier(c.Extension) {
		return fmt.Errorf("invalid file extension %q", c.Extension)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Configuration) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

func envString(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(getenv func(string) string, key string, def bool) (bool, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}
