// Package content serves the static reference data of the app: educational
// sections, nearby stores, emergency contacts and feedback categories.
//
// The data ships inside the binary as catalog.yaml and is parsed and validated
// once at startup.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog errors
var (
	ErrInvalidCatalog  = errors.New("invalid content catalog")
	ErrSectionNotFound = errors.New("info section not found")
)

// Catalog is the full set of static content.
type Catalog struct {
	Sections      []Section      `yaml:"sections" validate:"required,min=1,dive"`
	Stores        []Store        `yaml:"stores" validate:"dive"`
	Contacts      []Contact      `yaml:"contacts" validate:"required,min=1,dive"`
	SOSNumber     string         `yaml:"sos_number" validate:"required,numeric"`
	FeedbackTypes []FeedbackType `yaml:"feedback_types" validate:"required,min=1,dive"`
}

// Section is one card of the "Learn Menstrual Health" screen.
// A section holds either plain items or myth/fact pairs.
type Section struct {
	ID    string     `yaml:"id" json:"id" validate:"required"`
	Title string     `yaml:"title" json:"title" validate:"required"`
	Items []string   `yaml:"items" json:"items,omitempty" validate:"dive,required"`
	Myths []MythFact `yaml:"myths" json:"myths,omitempty" validate:"dive"`
}

// MythFact pairs a common myth with the correcting fact.
type MythFact struct {
	Myth string `yaml:"myth" json:"myth" validate:"required"`
	Fact string `yaml:"fact" json:"fact" validate:"required"`
}

// Contact is an emergency phone number.
type Contact struct {
	Name    string `yaml:"name" json:"name" validate:"required"`
	Phone   string `yaml:"phone" json:"phone" validate:"required,numeric"`
	Type    string `yaml:"type" json:"type" validate:"required"`
	CallURL string `yaml:"-" json:"call_url"`
}

// FeedbackType is a selectable feedback category.
type FeedbackType struct {
	ID    string `yaml:"id" json:"id" validate:"required"`
	Label string `yaml:"label" json:"label" validate:"required"`
}

// Default parses the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(defaultCatalog)
}

// Load parses and validates a YAML catalog. Unknown fields are rejected.
func Load(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	seen := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: duplicate section %q", ErrInvalidCatalog, s.ID)
		}
		seen[s.ID] = true
		if len(s.Items) == 0 && len(s.Myths) == 0 {
			return nil, fmt.Errorf("%w: section %q is empty", ErrInvalidCatalog, s.ID)
		}
	}

	for i := range c.Contacts {
		c.Contacts[i].CallURL = callURL(c.Contacts[i].Phone)
	}

	return &c, nil
}

// Section returns the section with the given id.
func (c *Catalog) Section(id string) (Section, error) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, nil
		}
	}
	return Section{}, fmt.Errorf("%w: %q", ErrSectionNotFound, id)
}

// FeedbackLabel returns the label of a feedback type and whether it exists.
func (c *Catalog) FeedbackLabel(id string) (string, bool) {
	for _, ft := range c.FeedbackTypes {
		if ft.ID == id {
			return ft.Label, true
		}
	}
	return "", false
}
