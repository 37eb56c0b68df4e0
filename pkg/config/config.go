// Package config loads cattree settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/cattree/config.toml (or
// ~/.config/cattree/config.toml). Every setting has a default, so the file
// is optional:
//
//	[source]
//	kind = "http"
//	url = "https://cms.example.com/api/categories"
//	headers = { Authorization = "Bearer ..." }
//
//	[home]
//	limit = 5
//	default = 3
//
// Command-line flags override file values; the CLI applies them to the
// loaded [Config] before calling [Config.Validate].
package config

import (
	"errors"
	stdio "io"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/cattree/pkg/category"
	errs "github.com/matzehuels/cattree/pkg/errors"
	"github.com/matzehuels/cattree/pkg/io"
)

// Source kinds.
const (
	KindFile  = "file"
	KindHTTP  = "http"
	KindMongo = "mongo"
	KindRedis = "redis"
)

// Kinds lists the supported source kinds.
var Kinds = []string{KindFile, KindHTTP, KindMongo, KindRedis}

// Config is the full configuration.
type Config struct {
	Source Source `toml:"source"`
	Home   Home   `toml:"home"`
	Output Output `toml:"output"`
}

// Source selects and configures where categories come from.
type Source struct {
	Kind     string            `toml:"kind" validate:"oneof=file http mongo redis"`
	Path     string            `toml:"path"`
	URL      string            `toml:"url"`
	Headers  map[string]string `toml:"headers"`
	Attempts int               `toml:"attempts" validate:"gte=0"`
	Mongo    Mongo             `toml:"mongo"`
	Redis    Redis             `toml:"redis"`
}

// Mongo configures the mongo source.
type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Redis configures the redis source.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	Key      string `toml:"key"`
	DB       int    `toml:"db" validate:"gte=0"`
}

// Home holds the home page selection thresholds.
type Home struct {
	Limit   int `toml:"limit" validate:"gte=0"`
	Default int `toml:"default" validate:"gte=0"`
}

// Output configures how built trees are written.
type Output struct {
	Format string `toml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Source: Source{
			Kind:     KindFile,
			Path:     "categories.json",
			Attempts: 3,
			Mongo: Mongo{
				URI:        "mongodb://localhost:27017",
				Database:   "cms",
				Collection: "categories",
			},
			Redis: Redis{
				Addr: "localhost:6379",
				Key:  "cms:categories",
			},
		},
		Home: Home{
			Limit:   category.DefaultPolicy.HomeLimit,
			Default: category.DefaultPolicy.DefaultHome,
		},
		Output: Output{Format: string(io.FormatJSON)},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "cattree", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidConfig, err, "locate home directory")
	}
	return filepath.Join(home, ".config", "cattree", "config.toml"), nil
}

// Load reads the file at path over the defaults. An empty path means the
// default location, which may be missing; an explicitly named file must
// exist.
func Load(path string) (Config, string, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, "", err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, "", nil
		}
		if os.IsNotExist(err) {
			return cfg, "", errs.Wrap(errs.ErrCodeNotFound, err, "config file %s", path)
		}
		return cfg, "", errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, "", errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, "", errs.New(errs.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, path, nil
}

var validate = newValidator()

// newValidator reports fields by their TOML key so that messages match what
// users write in the file.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var valErr validator.ValidationErrors
		if errors.As(err, &valErr) {
			var fields []string
			for _, fe := range valErr {
				_, key, _ := strings.Cut(fe.Namespace(), ".")
				fields = append(fields, key+" ("+fe.Tag()+")")
			}
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "validation failed on %s", strings.Join(fields, ", "))
		}
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "validate config")
	}
	switch c.Source.Kind {
	case KindFile:
		if c.Source.Path == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "source.path is required for file sources")
		}
	case KindHTTP:
		if err := errs.ValidateURL(c.Source.URL); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "source.url")
		}
	case KindMongo:
		if c.Source.Mongo.URI == "" || c.Source.Mongo.Database == "" || c.Source.Mongo.Collection == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "source.mongo needs uri, database and collection")
		}
	case KindRedis:
		if c.Source.Redis.Addr == "" || c.Source.Redis.Key == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "source.redis needs addr and key")
		}
	}
	if _, err := io.ParseFormat(c.Output.Format); err != nil {
		return errs.New(errs.ErrCodeInvalidConfig, "unknown output format %q", c.Output.Format)
	}
	return nil
}

// Policy returns the home page policy described by c.Home.
func (c Config) Policy() category.Policy {
	return category.Policy{HomeLimit: c.Home.Limit, DefaultHome: c.Home.Default}
}

// Redacted returns a copy of c with the redis password, the mongo URI
// password and header values masked, for display.
func (c Config) Redacted() Config {
	if c.Source.Redis.Password != "" {
		c.Source.Redis.Password = redacted
	}
	if u, err := url.Parse(c.Source.Mongo.URI); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			c.Source.Mongo.URI = strings.Replace(u.Redacted(), ":xxxxx@", ":"+redacted+"@", 1)
		}
	}
	if len(c.Source.Headers) > 0 {
		c.Source.Headers = maps.Clone(c.Source.Headers)
		for k := range c.Source.Headers {
			c.Source.Headers[k] = redacted
		}
	}
	return c
}

const redacted = "********"

// Encode writes c as TOML.
func (c Config) Encode(w stdio.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
