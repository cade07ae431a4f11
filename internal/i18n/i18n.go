// Package i18n loads the UI translations and resolves request languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Translator resolves message keys for a language. Missing keys resolve to
// the key itself so callers always get a displayable string.
type Translator struct {
	bundle    *i18n.Bundle
	supported []language.Tag
	matcher   language.Matcher
}

// New loads the embedded locales. defaultLang is used when nothing else
// matches; it is placed first in the supported list.
func New(defaultLang string, supported []string) (*Translator, error) {
	def, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parse default language %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		b, err := localeFS.ReadFile(f)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(b, path.Base(f)); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", f, err)
		}
	}

	tags := []language.Tag{def}
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("parse supported language %q: %w", code, err)
		}
		if tag != def {
			tags = append(tags, tag)
		}
	}

	return &Translator{
		bundle:    bundle,
		supported: tags,
		matcher:   language.NewMatcher(tags),
	}, nil
}

// MustNew is New for tests and static wiring.
func MustNew(defaultLang string, supported []string) *Translator {
	t, err := New(defaultLang, supported)
	if err != nil {
		panic(err)
	}
	return t
}

// T translates key into lang. data feeds the message template.
func (t *Translator) T(lang, key string, data map[string]any) string {
	loc := i18n.NewLocalizer(t.bundle, lang)
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil && msg == "" {
		return key
	}
	return msg
}

// Default is the fallback language code.
func (t *Translator) Default() string {
	return t.supported[0].String()
}

// Supported lists the configured language codes, default first.
func (t *Translator) Supported() []string {
	out := make([]string, len(t.supported))
	for i, tag := range t.supported {
		out[i] = tag.String()
	}
	return out
}

// Match picks the best supported language. Each candidate may be a plain
// code ("bg") or a full Accept-Language header; the first candidate that
// parses wins over later ones.
func (t *Translator) Match(candidates ...string) string {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(c)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := t.matcher.Match(tags...)
		if conf == language.No {
			continue
		}
		return t.supported[idx].String()
	}
	return t.Default()
}
