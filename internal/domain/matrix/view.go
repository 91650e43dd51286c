package matrix

import (
	"time"

	"quote_matrix/internal/domain/entities"
)

// Cell is one item/option intersection of the matrix.
type Cell struct {
	OptionID string `json:"option_id"`
	Assigned bool   `json:"assigned"`
	Locked   bool   `json:"locked"`
}

// Row is a visible item with one cell per option, in option order.
type Row struct {
	Item  entities.Item `json:"item"`
	Cells []Cell        `json:"cells"`
}

// CategorySummary feeds the category tabs.
type CategorySummary struct {
	Key       entities.CategoryKey `json:"key"`
	Total     int                  `json:"total"`
	Required  int                  `json:"required"`
	Auto      int                  `json:"auto"`
	Differing int                  `json:"differing"`
}

// OptionSummary counts the items of the active category carried by one option.
type OptionSummary struct {
	OptionID string `json:"option_id"`
	Assigned int    `json:"assigned"`
}

// View is the render payload of a matrix session.
type View struct {
	SessionID      string               `json:"session_id,omitempty"`
	QuoteID        string               `json:"quote_id,omitempty"`
	OpenedAt       time.Time            `json:"opened_at"`
	ActiveCategory entities.CategoryKey `json:"active_category"`
	Filters        Filters              `json:"filters"`
	Options        []entities.Option    `json:"options"`
	Categories     []CategorySummary    `json:"categories"`
	OptionTotals   []OptionSummary      `json:"option_totals"`
	Rows           []Row                `json:"rows"`
}

// Rows returns VisibleItems expanded into matrix rows.
func (e *Engine) Rows() []Row {
	visible := e.visible()
	rows := make([]Row, 0, len(visible))
	for _, it := range visible {
		cells := make([]Cell, 0, len(e.options))
		for _, o := range e.options {
			_, on := it.assigned[o.ID]
			cells = append(cells, Cell{OptionID: o.ID, Assigned: on, Locked: it.required})
		}
		rows = append(rows, Row{Item: e.export(it), Cells: cells})
	}
	return rows
}

// CategorySummaries counts items per category, ignoring the view filters.
func (e *Engine) CategorySummaries() []CategorySummary {
	out := make([]CategorySummary, 0, len(e.categories))
	for _, c := range e.categories {
		s := CategorySummary{Key: c.key, Total: len(c.items)}
		for _, it := range c.items {
			if it.required {
				s.Required++
			}
			if it.auto {
				s.Auto++
			}
			if len(it.assigned) != len(e.options) {
				s.Differing++
			}
		}
		out = append(out, s)
	}
	return out
}

// OptionSummaries counts, per option, the items of the active category assigned to it.
func (e *Engine) OptionSummaries() []OptionSummary {
	out := make([]OptionSummary, 0, len(e.options))
	for _, o := range e.options {
		s := OptionSummary{OptionID: o.ID}
		if e.active != nil {
			for _, it := range e.active.items {
				if _, ok := it.assigned[o.ID]; ok {
					s.Assigned++
				}
			}
		}
		out = append(out, s)
	}
	return out
}

func (e *Engine) View() View {
	return View{
		ActiveCategory: e.ActiveCategory(),
		Filters:        e.filters,
		Options:        e.Options(),
		Categories:     e.CategorySummaries(),
		OptionTotals:   e.OptionSummaries(),
		Rows:           e.Rows(),
	}
}

// Snapshot returns every category with the current assignments, ignoring the active
// category and the filters. QuoteID is left empty.
func (e *Engine) Snapshot() entities.Catalog {
	c := entities.Catalog{
		Options:    e.Options(),
		Categories: make([]entities.Category, 0, len(e.categories)),
	}
	for _, cat := range e.categories {
		items := make([]entities.Item, 0, len(cat.items))
		for _, it := range cat.items {
			items = append(items, e.export(it))
		}
		c.Categories = append(c.Categories, entities.Category{Key: cat.key, Items: items})
	}
	return c
}
