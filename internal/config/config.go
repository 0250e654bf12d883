// Package config holds build metadata and the environment-driven defaults of
// the fm command.
package config

import (
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"

	"github.com/rwx-research/fm-cli/internal/codec"
	"github.com/rwx-research/fm-cli/internal/digest"
	"github.com/rwx-research/fm-cli/internal/errors"
)

// Version is set at build time through -ldflags.
var Version = "dev"

// EnvPrefix namespaces every variable read by Load, e.g. FM_USERNAME.
const EnvPrefix = "FM"

// Env holds defaults that command-line flags may override.
type Env struct {
	Username string `default:"User"`
	Codec    string `default:"brotli"`
	Hash     string `default:"sha256"`
	LogLevel string `split_words:"true" default:"warn"`
}

func Load() (Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, errors.Wrap(err, "unable to read environment configuration")
	}

	return env, nil
}

func (e Env) Validate() error {
	if strings.TrimSpace(e.Username) == "" {
		return errors.New("username must not be blank")
	}

	if _, err := codec.Lookup(e.Codec); err != nil {
		return err
	}

	if _, err := digest.New(digest.Algorithm(e.Hash)); err != nil {
		return err
	}

	return nil
}

// CollationTag derives the language used to sort listings from the POSIX
// locale variables, in their usual order of precedence.
func CollationTag() language.Tag {
	for _, name := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if tag, ok := parseLocale(os.Getenv(name)); ok {
			return tag
		}
	}

	return language.Und
}

func parseLocale(value string) (language.Tag, bool) {
	// en_US.UTF-8@euro -> en_US
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und, false
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und, false
	}

	return tag, true
}
