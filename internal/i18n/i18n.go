package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Localizer resolves message keys to text in the best matching locale.
type Localizer struct {
	catalog   *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
}

// New loads the embedded locale files. defaultLocale is used when a
// request matches none of them.
func New(defaultLocale string) (*Localizer, error) {
	return LoadFromFS(embeddedLocales, defaultLocale)
}

func LoadFromFS(fsys fs.FS, defaultLocale string) (*Localizer, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	sort.Strings(paths)

	files := make(map[language.Tag]map[string]string, len(paths))
	supported := []language.Tag{fallback}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, fmt.Errorf("%s: locale: %w", path, err)
		}
		files[tag] = file.Messages
		if tag != fallback {
			supported = append(supported, tag)
		}
	}

	defaults, ok := files[fallback]
	if !ok {
		return nil, fmt.Errorf("default locale %s has no messages", defaultLocale)
	}

	// Catalog lookups only walk parent tags, so every locale gets the
	// default text for keys it does not translate.
	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	for tag, messages := range files {
		for key, text := range defaults {
			if translated, ok := messages[key]; ok {
				text = translated
			}
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("%s: message %q: %w", tag, key, err)
			}
		}
		for key, text := range messages {
			if _, ok := defaults[key]; ok {
				continue
			}
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("%s: message %q: %w", tag, key, err)
			}
		}
	}

	return &Localizer{
		catalog:   builder,
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}, nil
}

// Printer returns a printer for the locale best matching an
// Accept-Language header value. An empty value selects the default.
func (l *Localizer) Printer(acceptLanguage string) *message.Printer {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, index, _ := l.matcher.Match(tags...)
	return message.NewPrinter(l.supported[index], message.Catalog(l.catalog))
}

// Text returns the message for key; unknown keys come back verbatim.
func Text(p *message.Printer, key string) string {
	return p.Sprintf(message.Key(key, key))
}
