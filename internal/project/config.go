package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phravins/projectgen/internal/catalog"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid project configuration")

// Category is the 1-based project type the user picks at the prompt.
type Category int

const (
	CategoryWeb Category = iota + 1
	CategoryDesktop
	CategoryAPI
	CategoryLibrary
	CategoryOther
)

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	return c >= CategoryWeb && c <= CategoryOther
}

// Label is the English README label for c. It doubles as the translation key.
func (c Category) Label() string {
	switch c {
	case CategoryWeb:
		return "Web Application"
	case CategoryDesktop:
		return "Desktop Application"
	case CategoryAPI:
		return "API"
	case CategoryLibrary:
		return "Library"
	case CategoryOther:
		return "Other"
	}
	return ""
}

// Kind carries the category together with whatever data only that category
// needs. Only Web has extra fields.
type Kind interface {
	Category() Category
	isKind()
}

// Web is a web project with its chosen catalog entries.
type Web struct {
	StyleID     int
	FrameworkID int
}

type (
	Desktop struct{}
	API     struct{}
	Library struct{}
	Other   struct{}
)

func (Web) Category() Category     { return CategoryWeb }
func (Desktop) Category() Category { return CategoryDesktop }
func (API) Category() Category     { return CategoryAPI }
func (Library) Category() Category { return CategoryLibrary }
func (Other) Category() Category   { return CategoryOther }

func (Web) isKind()     {}
func (Desktop) isKind() {}
func (API) isKind()     {}
func (Library) isKind() {}
func (Other) isKind()   {}

// Style returns the catalog entry for the chosen style.
func (w Web) Style() catalog.Entry {
	e, _ := catalog.Style(w.StyleID)
	return e
}

// Framework returns the catalog entry for the chosen CSS framework.
func (w Web) Framework() catalog.Entry {
	e, _ := catalog.Framework(w.FrameworkID)
	return e
}

// NewKind builds the Kind for category. styleID and frameworkID are only
// consulted for web projects, where both must be valid catalog IDs.
func NewKind(category Category, styleID, frameworkID int) (Kind, error) {
	switch category {
	case CategoryWeb:
		if _, ok := catalog.Style(styleID); !ok {
			return nil, fmt.Errorf("%w: style must be between 1 and %d, got %d", ErrInvalidConfig, len(catalog.Styles()), styleID)
		}
		if _, ok := catalog.Framework(frameworkID); !ok {
			return nil, fmt.Errorf("%w: framework must be between 1 and %d, got %d", ErrInvalidConfig, len(catalog.Frameworks()), frameworkID)
		}
		return Web{StyleID: styleID, FrameworkID: frameworkID}, nil
	case CategoryDesktop:
		return Desktop{}, nil
	case CategoryAPI:
		return API{}, nil
	case CategoryLibrary:
		return Library{}, nil
	case CategoryOther:
		return Other{}, nil
	}
	return nil, fmt.Errorf("%w: category must be between 1 and 5, got %d", ErrInvalidConfig, category)
}

// ProjectConfig is the validated set of answers that drives generation.
// It is built once and passed by value.
type ProjectConfig struct {
	Name        string
	Description string
	Author      string
	Kind        Kind
}

func (c ProjectConfig) Category() Category {
	if c.Kind == nil {
		return 0
	}
	return c.Kind.Category()
}

// Web returns the web section when the project is a web project.
func (c ProjectConfig) Web() (Web, bool) {
	w, ok := c.Kind.(Web)
	return w, ok
}

// Validate checks the invariants the prompter enforces interactively.
func (c ProjectConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if c.Kind == nil {
		return fmt.Errorf("%w: category is required", ErrInvalidConfig)
	}
	if w, ok := c.Web(); ok {
		if _, err := NewKind(CategoryWeb, w.StyleID, w.FrameworkID); err != nil {
			return err
		}
	}
	return nil
}

// SelfTestConfig is the fixed configuration used by --test.
func SelfTestConfig() ProjectConfig {
	return ProjectConfig{
		Name:        "projet_test",
		Description: "Test project",
		Author:      "TestRunner",
		Kind:        Web{StyleID: 1, FrameworkID: 1},
	}
}
