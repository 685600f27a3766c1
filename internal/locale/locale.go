// Package locale provides the message printers used for every user-facing
// string: prompts, menus, status lines and the generated files.
//
// Messages are keyed by their English text. French translations live in
// fr.yaml, embedded at build time and loaded once on first use.
package locale

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v2"
)

//go:embed fr.yaml
var frYAML []byte

var (
	once    sync.Once
	builder *catalog.Builder
	loadErr error
)

func load() {
	once.Do(func() {
		builder = catalog.NewBuilder(catalog.Fallback(language.English))

		var fr map[string]string
		if err := yaml.Unmarshal(frYAML, &fr); err != nil {
			loadErr = fmt.Errorf("parsing French translations: %w", err)
			return
		}
		for key, msg := range fr {
			if err := builder.SetString(language.French, key, msg); err != nil {
				loadErr = fmt.Errorf("registering translation %q: %w", key, err)
				return
			}
		}
	})
}

// Supported lists the accepted locale names.
func Supported() []string {
	return []string{"en", "fr"}
}

// Parse maps a locale name such as "fr" or "fr-CA" to a supported tag.
// An empty name selects English.
func Parse(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return language.English, nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("unknown locale %q (supported: %s)", name, strings.Join(Supported(), ", "))
	}

	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return language.English, nil
	case "fr":
		return language.French, nil
	}
	return language.Und, fmt.Errorf("unsupported locale %q (supported: %s)", name, strings.Join(Supported(), ", "))
}

// NewPrinter returns a printer for tag. If the embedded translations cannot
// be loaded the printer falls back to the English keys.
func NewPrinter(tag language.Tag) *message.Printer {
	load()
	if loadErr != nil {
		return message.NewPrinter(language.English)
	}
	return message.NewPrinter(tag, message.Catalog(builder))
}

// PrinterFor parses name and returns its printer, defaulting to English on
// an unknown name.
func PrinterFor(name string) *message.Printer {
	tag, err := Parse(name)
	if err != nil {
		tag = language.English
	}
	return NewPrinter(tag)
}

// Err reports whether the embedded translations failed to load.
func Err() error {
	load()
	return loadErr
}
