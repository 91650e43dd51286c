package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"quote_matrix/internal/domain/entities"
	"quote_matrix/internal/usecase/interfaces"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidFixtureQuoteID = fmt.Errorf("fixture: %w", interfaces.ErrMalformedQuoteID)
	ErrUnsupportedFixture    = errors.New("unsupported fixture format")
)

// fixtureExtensions are tried in order; the first existing file wins.
var fixtureExtensions = []string{".yaml", ".yml", ".toml"}

type fixtureOption struct {
	ID         string `yaml:"id" toml:"id"`
	Name       string `yaml:"name" toml:"name"`
	Descriptor string `yaml:"descriptor" toml:"descriptor"`
	Status     string `yaml:"status" toml:"status"`
}

type fixtureItem struct {
	ID              string   `yaml:"id" toml:"id"`
	Label           string   `yaml:"label" toml:"label"`
	Code            string   `yaml:"code,omitempty" toml:"code,omitempty"`
	Required        bool     `yaml:"required" toml:"required"`
	Auto            bool     `yaml:"auto" toml:"auto"`
	AssignedOptions []string `yaml:"assigned_options" toml:"assigned_options"`
}

type fixtureCategory struct {
	Key   string        `yaml:"key" toml:"key"`
	Items []fixtureItem `yaml:"items" toml:"items"`
}

type fixtureCatalog struct {
	QuoteID    string            `yaml:"quote_id" toml:"quote_id"`
	Options    []fixtureOption   `yaml:"options" toml:"options"`
	Categories []fixtureCategory `yaml:"categories" toml:"categories"`
}

// CatalogFileRepository reads quote catalogs from fixtures, one file per quote:
//
//	<dir>/<quote id>.yaml (or .yml, .toml)
//
// It backs local runs and demos where no DynamoDB is around.

type CatalogFileRepository struct {
	dir string
}

var _ interfaces.ICatalogRepository = (*CatalogFileRepository)(nil)

func NewCatalogFileRepository(dir string) *CatalogFileRepository {
	return &CatalogFileRepository{dir: dir}
}

func (r *CatalogFileRepository) GetCatalog(_ context.Context, quoteID string) (entities.Catalog, error) {
	if err := validFixtureQuoteID(quoteID); err != nil {
		return entities.Catalog{}, err
	}

	for _, ext := range fixtureExtensions {
		name := quoteID + ext
		raw, err := os.ReadFile(filepath.Join(r.dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return entities.Catalog{}, err
		}
		c, err := ParseCatalogFile(name, raw, quoteID)
		if err != nil {
			return entities.Catalog{}, err
		}
		// the file name is the lookup key, so it wins over a quote_id inside the fixture
		c.QuoteID = quoteID
		return c, nil
	}
	return entities.Catalog{}, nil
}

// ParseCatalogFile decodes a fixture, picking the format from the file extension.
// A fixture without quote_id takes fallbackQuoteID.
func ParseCatalogFile(name string, raw []byte, fallbackQuoteID string) (entities.Catalog, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ParseCatalogYAML(raw, fallbackQuoteID)
	case ".toml":
		return ParseCatalogTOML(raw, fallbackQuoteID)
	default:
		return entities.Catalog{}, fmt.Errorf("%w: %s", ErrUnsupportedFixture, name)
	}
}

func ParseCatalogYAML(raw []byte, fallbackQuoteID string) (entities.Catalog, error) {
	var fc fixtureCatalog
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return entities.Catalog{}, fmt.Errorf("decode yaml catalog fixture: %w", err)
	}
	return fromFixture(fc, fallbackQuoteID), nil
}

func ParseCatalogTOML(raw []byte, fallbackQuoteID string) (entities.Catalog, error) {
	var fc fixtureCatalog
	if err := toml.Unmarshal(raw, &fc); err != nil {
		return entities.Catalog{}, fmt.Errorf("decode toml catalog fixture: %w", err)
	}
	return fromFixture(fc, fallbackQuoteID), nil
}

func fromFixture(fc fixtureCatalog, fallbackQuoteID string) entities.Catalog {
	if fc.QuoteID == "" {
		fc.QuoteID = fallbackQuoteID
	}
	c := entities.Catalog{
		QuoteID:    fc.QuoteID,
		Options:    make([]entities.Option, 0, len(fc.Options)),
		Categories: make([]entities.Category, 0, len(fc.Categories)),
	}
	for _, o := range fc.Options {
		c.Options = append(c.Options, entities.Option{
			ID:         o.ID,
			Name:       o.Name,
			Descriptor: o.Descriptor,
			Status:     entities.OptionStatus(o.Status),
		})
	}
	for _, fcat := range fc.Categories {
		cat := entities.Category{
			Key:   entities.CategoryKey(fcat.Key),
			Items: make([]entities.Item, 0, len(fcat.Items)),
		}
		for _, it := range fcat.Items {
			cat.Items = append(cat.Items, entities.Item{
				ID:              it.ID,
				Label:           it.Label,
				Code:            it.Code,
				Required:        it.Required,
				Auto:            it.Auto,
				AssignedOptions: it.AssignedOptions,
			})
		}
		c.Categories = append(c.Categories, cat)
	}
	return c
}
