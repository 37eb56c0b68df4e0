package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cattree/pkg/config"
	errs "github.com/matzehuels/cattree/pkg/errors"
)

// sourceFlags holds the flags shared by commands that query a source.
// Empty or zero values leave the config file setting in place.
type sourceFlags struct {
	configPath  string   // config file (default location if empty)
	kind        string   // source kind override
	input       string   // file source path
	url         string   // http source URL
	headers     []string // extra "Key: Value" headers for the http source
	homeLimit   int      // home.limit override
	homeDefault int      // home.default override
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cattree/config.toml)")
	cmd.Flags().StringVar(&f.kind, "source", "", "source kind: "+strings.Join(config.Kinds, ", "))
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "category file for the file source (JSON or YAML)")
	cmd.Flags().StringVar(&f.url, "url", "", "content API URL for the http source")
	cmd.Flags().StringArrayVarP(&f.headers, "header", "H", nil, `extra HTTP header, e.g. "Authorization: Bearer x" (repeatable)`)
	cmd.Flags().IntVar(&f.homeLimit, "home-limit", 0, "show every top-level category on home up to this count")
	cmd.Flags().IntVar(&f.homeDefault, "home-default", 0, "number of leading categories shown when none is marked")
}

// load reads the config file and applies flag overrides. An input path or
// URL implies the matching source kind unless --source says otherwise.
func (f *sourceFlags) load() (config.Config, string, error) {
	cfg, path, err := config.Load(f.configPath)
	if err != nil {
		return cfg, "", err
	}
	if err := f.apply(&cfg); err != nil {
		return cfg, "", err
	}
	return cfg, path, cfg.Validate()
}

func (f *sourceFlags) apply(cfg *config.Config) error {
	switch {
	case f.kind != "":
		cfg.Source.Kind = f.kind
	case f.input != "":
		cfg.Source.Kind = config.KindFile
	case f.url != "":
		cfg.Source.Kind = config.KindHTTP
	}
	if f.input != "" {
		cfg.Source.Path = f.input
	}
	if f.url != "" {
		cfg.Source.URL = f.url
	}
	if len(f.headers) > 0 {
		headers := make(map[string]string, len(cfg.Source.Headers)+len(f.headers))
		for k, v := range cfg.Source.Headers {
			headers[k] = v
		}
		for _, h := range f.headers {
			k, v, ok := strings.Cut(h, ":")
			if !ok || strings.TrimSpace(k) == "" {
				return errs.New(errs.ErrCodeInvalidInput, "invalid header %q (want \"Key: Value\")", h)
			}
			headers[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
		cfg.Source.Headers = headers
	}
	if f.homeLimit != 0 {
		cfg.Home.Limit = f.homeLimit
	}
	if f.homeDefault != 0 {
		cfg.Home.Default = f.homeDefault
	}
	return nil
}
