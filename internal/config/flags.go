package config

// This file wires viper: the config file ($HOME/.assetnamer.yaml unless
// --config is given), ASSETNAMER_* environment variables and CLI flags.
// Precedence is flag > environment > file > default.
// Negated flags (--no-color, --force) are applied after loading so the
// configured values hold unless the user passes them.

import (
	"errors"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Viper keys. Config files use the same names.
const (
	KeyColor           = "color"
	KeyLogLevel        = "log_level"
	KeyLogFile         = "log_file"
	KeyVerbose         = "verbose"
	KeyLexiconFile     = "lexicon_file"
	KeyDefaultCategory = "default_category"
	KeyApply           = "apply"
	KeyForce           = "force"
	KeyDedupe          = "dedupe"
)

const (
	envPrefix  = "ASSETNAMER"
	configName = ".assetnamer"
)

// flagKeys maps CLI flag names to viper keys.
var flagKeys = map[string]string{
	"color-mode": KeyColor,
	"log-level":  KeyLogLevel,
	"log":        KeyLogFile,
	"verbose":    KeyVerbose,
	"lexicon":    KeyLexiconFile,
	"category":   KeyDefaultCategory,
	"apply":      KeyApply,
	"force":      KeyForce,
	"dedupe":     KeyDedupe,
}

// NewViper returns a viper instance that has read cfgFile, or
// $HOME/.assetnamer.yaml when cfgFile is empty. A missing default file is
// not an error; a missing explicit file is.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return v, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return v, nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyColor, string(d.ColorMode))
	v.SetDefault(KeyLogLevel, string(d.LogLevel))
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyLexiconFile, d.LexiconFile)
	v.SetDefault(KeyDefaultCategory, d.DefaultCategory)
	v.SetDefault(KeyApply, d.Apply)
	v.SetDefault(KeyForce, !d.SkipExisting)
	v.SetDefault(KeyDedupe, d.Dedupe)
}

// DefineGlobalFlags registers the display, logging and dictionary flags
// shared by every command.
func DefineGlobalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Config file (default $HOME/.assetnamer.yaml)")
	fs.String("color-mode", string(ColorAuto), "Color output: auto | always | never")
	fs.Bool("color", false, "Force colored logs")
	fs.Bool("no-color", false, "Disable colored logs")
	fs.StringP("log-level", "L", string(LevelInfo), "Log level: debug | info | warn | error")
	fs.StringP("log", "l", "", "Append logs to file")
	fs.BoolP("verbose", "v", false, "Verbose output (same as --log-level debug)")
	fs.String("lexicon", "", "YAML file overriding the built-in dictionaries")
}

// DefineBatchFlags registers the flags of the batch command.
func DefineBatchFlags(fs *pflag.FlagSet) {
	fs.Bool("apply", false, "Rename source files (default: dry run)")
	fs.BoolP("force", "f", false, "Overwrite existing target files")
	fs.Bool("dedupe", false, "Suffix duplicate targets with ' - dupN' instead of failing them")
}

// BindFlags binds every known flag present in fs to its viper key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

// Load builds a validated Config from v, then applies the negated flags
// found in fs (which may be nil).
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	cfg := DefaultConfig()
	cfg.ColorMode = ColorMode(v.GetString(KeyColor))
	cfg.LogLevel = LogLevel(v.GetString(KeyLogLevel))
	cfg.LogFile = v.GetString(KeyLogFile)
	cfg.Verbose = v.GetBool(KeyVerbose)
	cfg.LexiconFile = v.GetString(KeyLexiconFile)
	cfg.DefaultCategory = v.GetString(KeyDefaultCategory)
	cfg.Apply = v.GetBool(KeyApply)
	cfg.SkipExisting = !v.GetBool(KeyForce)
	cfg.Dedupe = v.GetBool(KeyDedupe)

	if fs != nil {
		applyNegatedFlags(&cfg, fs)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyNegatedFlags lets --no-color and --color override the color mode.
// --no-color wins when both are given.
func applyNegatedFlags(cfg *Config, fs *pflag.FlagSet) {
	if on, err := fs.GetBool("no-color"); err == nil && on {
		cfg.ColorMode = ColorNever
		return
	}
	if on, err := fs.GetBool("color"); err == nil && on {
		cfg.ColorMode = ColorAlways
	}
}
