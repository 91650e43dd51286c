// Package matrix holds the cross-option assignment matrix: which endorsements,
// subjectivities and coverages are attached to which quote options, and which of them
// are visible under the current view filters.
//
// An Engine is not safe for concurrent use. Wrap it in a Session to share it.
package matrix

import (
	"errors"
	"fmt"
	"strings"

	"quote_matrix/internal/domain/entities"
)

var (
	ErrInvalidCatalog  = errors.New("invalid catalog")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrItemNotFound    = errors.New("item not found")
	ErrOptionNotFound  = errors.New("option not found")
)

// ToggleOutcome tells the caller what a toggle command did.
type ToggleOutcome string

const (
	ToggleOutcomeApplied            ToggleOutcome = "applied"
	ToggleOutcomeRequiredItemLocked ToggleOutcome = "required_item_locked"
)

// ToggleResult is returned by ToggleAssignment.
//
// Assigned is the membership of OptionID after the call. For a locked item it is the
// unchanged membership (always true, required items sit on every option).
type ToggleResult struct {
	ItemID   string        `json:"item_id"`
	OptionID string        `json:"option_id"`
	Assigned bool          `json:"assigned"`
	Outcome  ToggleOutcome `json:"outcome"`
}

func (r ToggleResult) Locked() bool {
	return r.Outcome == ToggleOutcomeRequiredItemLocked
}

type item struct {
	id       string
	label    string
	code     string
	required bool
	auto     bool
	assigned map[string]struct{}
}

type category struct {
	key   entities.CategoryKey
	items []*item
	index map[string]*item
}

// Engine owns a copy of one quote's catalog plus the view state of the matrix.
type Engine struct {
	options     []entities.Option
	optionIndex map[string]int

	categories []*category
	byKey      map[entities.CategoryKey]*category
	active     *category

	filters Filters
}

// NewEngine validates the catalog and builds an engine over a private copy of it.
//
// The first category becomes active. Required items are forced onto every option.
func NewEngine(c entities.Catalog) (*Engine, error) {
	e := &Engine{
		options:     make([]entities.Option, 0, len(c.Options)),
		optionIndex: make(map[string]int, len(c.Options)),
		categories:  make([]*category, 0, len(c.Categories)),
		byKey:       make(map[entities.CategoryKey]*category, len(c.Categories)),
	}

	for _, o := range c.Options {
		o.ID = strings.TrimSpace(o.ID)
		if o.ID == "" {
			return nil, fmt.Errorf("%w: option with empty id", ErrInvalidCatalog)
		}
		if _, dup := e.optionIndex[o.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate option %q", ErrInvalidCatalog, o.ID)
		}
		if o.Status == "" {
			o.Status = entities.OptionStatusDraft
		}
		if !o.Status.Valid() {
			return nil, fmt.Errorf("%w: option %q has unknown status %q", ErrInvalidCatalog, o.ID, o.Status)
		}
		e.optionIndex[o.ID] = len(e.options)
		e.options = append(e.options, o)
	}

	for _, src := range c.Categories {
		key := entities.CategoryKey(strings.TrimSpace(string(src.Key)))
		if key == "" {
			return nil, fmt.Errorf("%w: category with empty key", ErrInvalidCatalog)
		}
		if _, dup := e.byKey[key]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, key)
		}

		cat := &category{
			key:   key,
			items: make([]*item, 0, len(src.Items)),
			index: make(map[string]*item, len(src.Items)),
		}
		for _, it := range src.Items {
			built, err := e.buildItem(key, it)
			if err != nil {
				return nil, err
			}
			if _, dup := cat.index[built.id]; dup {
				return nil, fmt.Errorf("%w: duplicate item %q in %s", ErrInvalidCatalog, built.id, key)
			}
			cat.index[built.id] = built
			cat.items = append(cat.items, built)
		}

		e.byKey[key] = cat
		e.categories = append(e.categories, cat)
	}

	if len(e.categories) > 0 {
		e.active = e.categories[0]
	}
	return e, nil
}

func (e *Engine) buildItem(key entities.CategoryKey, src entities.Item) (*item, error) {
	id := strings.TrimSpace(src.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: item with empty id in %s", ErrInvalidCatalog, key)
	}

	it := &item{
		id:       id,
		label:    src.Label,
		code:     src.Code,
		required: src.Required,
		auto:     src.Auto,
		assigned: make(map[string]struct{}, len(e.options)),
	}
	for _, optID := range src.AssignedOptions {
		if _, ok := e.optionIndex[optID]; !ok {
			return nil, fmt.Errorf("%w: item %q in %s references unknown option %q", ErrInvalidCatalog, id, key, optID)
		}
		it.assigned[optID] = struct{}{}
	}
	if it.required {
		for _, o := range e.options {
			it.assigned[o.ID] = struct{}{}
		}
	}
	return it, nil
}

// ActiveCategory returns the key of the category the matrix currently shows.
// It is empty only when the catalog has no categories.
func (e *Engine) ActiveCategory() entities.CategoryKey {
	if e.active == nil {
		return ""
	}
	return e.active.key
}

// Categories returns the category keys in catalog order.
func (e *Engine) Categories() []entities.CategoryKey {
	keys := make([]entities.CategoryKey, 0, len(e.categories))
	for _, c := range e.categories {
		keys = append(keys, c.key)
	}
	return keys
}

// Options returns the quote options in catalog order.
func (e *Engine) Options() []entities.Option {
	out := make([]entities.Option, len(e.options))
	copy(out, e.options)
	return out
}

func (e *Engine) Filters() Filters {
	return e.filters
}

// SetActiveCategory switches the matrix to another category. An unknown key fails with
// ErrInvalidCategory and keeps the current category.
func (e *Engine) SetActiveCategory(key entities.CategoryKey) error {
	c, ok := e.byKey[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, key)
	}
	e.active = c
	return nil
}

// SetFilter turns one view filter on or off.
func (e *Engine) SetFilter(name Filter, value bool) error {
	switch name {
	case FilterRequiredOnly:
		e.filters.RequiredOnly = value
	case FilterAutoOnly:
		e.filters.AutoOnly = value
	case FilterDiffOnly:
		e.filters.DiffOnly = value
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFilter, name)
	}
	return nil
}

// VisibleItems returns the items of the active category that pass every active filter,
// in catalog order. The result is a fresh copy on each call.
func (e *Engine) VisibleItems() []entities.Item {
	visible := e.visible()
	out := make([]entities.Item, 0, len(visible))
	for _, it := range visible {
		out = append(out, e.export(it))
	}
	return out
}

func (e *Engine) visible() []*item {
	if e.active == nil {
		return nil
	}
	out := make([]*item, 0, len(e.active.items))
	for _, it := range e.active.items {
		if e.filters.match(it, len(e.options)) {
			out = append(out, it)
		}
	}
	return out
}

// ToggleAssignment flips optionID on the item of the active category.
//
// Required items are never changed: the call reports ToggleOutcomeRequiredItemLocked
// without an error.
func (e *Engine) ToggleAssignment(itemID, optionID string) (ToggleResult, error) {
	if e.active == nil {
		return ToggleResult{}, fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
	}
	it, ok := e.active.index[itemID]
	if !ok {
		return ToggleResult{}, fmt.Errorf("%w: %q in %s", ErrItemNotFound, itemID, e.active.key)
	}
	if _, ok := e.optionIndex[optionID]; !ok {
		return ToggleResult{}, fmt.Errorf("%w: %q", ErrOptionNotFound, optionID)
	}

	res := ToggleResult{ItemID: itemID, OptionID: optionID}
	if it.required {
		_, res.Assigned = it.assigned[optionID]
		res.Outcome = ToggleOutcomeRequiredItemLocked
		return res, nil
	}

	if _, on := it.assigned[optionID]; on {
		delete(it.assigned, optionID)
	} else {
		it.assigned[optionID] = struct{}{}
		res.Assigned = true
	}
	res.Outcome = ToggleOutcomeApplied
	return res, nil
}

func (e *Engine) export(it *item) entities.Item {
	assigned := make([]string, 0, len(it.assigned))
	for _, o := range e.options {
		if _, ok := it.assigned[o.ID]; ok {
			assigned = append(assigned, o.ID)
		}
	}
	return entities.Item{
		ID:              it.id,
		Label:           it.label,
		Code:            it.code,
		Required:        it.required,
		Auto:            it.auto,
		AssignedOptions: assigned,
	}
}
