package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dhamidi/kpoet/decl"
	"github.com/dhamidi/kpoet/kotlin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
)

// config is read from .kpoet.yaml, KPOET_* environment variables and flags,
// in increasing order of precedence.
type config struct {
	Indent  string `mapstructure:"indent"`
	Package string `mapstructure:"package"`
	Out     string `mapstructure:"out"`
	Verbose int    `mapstructure:"verbose"`
}

type app struct {
	configFile string
	cfg        config
}

func newViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("KPOET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".kpoet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}
	return v, nil
}

func (a *app) configure(cmd *cobra.Command) error {
	v, err := newViper(a.configFile)
	if err != nil {
		return err
	}
	for _, key := range []string{"indent", "package", "verbose", "out"} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "bind flag %s", key)
			}
		}
	}
	if err := v.Unmarshal(&a.cfg); err != nil {
		return errors.Wrap(err, "decode config")
	}
	commonlog.Configure(a.cfg.Verbose, nil)
	if used := v.ConfigFileUsed(); used != "" {
		log.Debugf("using config %s", used)
	}
	return nil
}

// load reads a declaration document and applies the configured defaults.
func (a *app) load(path string) (*kotlin.File, error) {
	file, err := decl.Load(path)
	if err != nil {
		return nil, err
	}
	if file.Package == "" {
		file.Package = a.cfg.Package
	}
	file.Indent = a.cfg.Indent
	return file, nil
}
