package response

import (
	"time"

	"quote_matrix/internal/domain/entities"
	"quote_matrix/internal/domain/matrix"
)

type OptionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Descriptor string `json:"descriptor"`
	Status     string `json:"status"`
}

type FiltersResponse struct {
	RequiredOnly bool `json:"required_only"`
	AutoOnly     bool `json:"auto_only"`
	DiffOnly     bool `json:"diff_only"`
}

type CategoryResponse struct {
	Key       string `json:"key"`
	Total     int    `json:"total"`
	Required  int    `json:"required"`
	Auto      int    `json:"auto"`
	Differing int    `json:"differing"`
}

type OptionTotalResponse struct {
	OptionID string `json:"option_id"`
	Assigned int    `json:"assigned"`
}

type CellResponse struct {
	OptionID string `json:"option_id"`
	Assigned bool   `json:"assigned"`
	Locked   bool   `json:"locked"`
}

type RowResponse struct {
	ItemID          string         `json:"item_id"`
	Label           string         `json:"label"`
	Code            string         `json:"code,omitempty"`
	Required        bool           `json:"required"`
	Auto            bool           `json:"auto"`
	AssignedOptions []string       `json:"assigned_options"`
	Cells           []CellResponse `json:"cells"`
}

// MatrixViewResponse is what the portal renders for the assignment matrix.
type MatrixViewResponse struct {
	SessionID      string                `json:"session_id"`
	QuoteID        string                `json:"quote_id"`
	OpenedAt       time.Time             `json:"opened_at"`
	ActiveCategory string                `json:"active_category"`
	Filters        FiltersResponse       `json:"filters"`
	Options        []OptionResponse      `json:"options"`
	Categories     []CategoryResponse    `json:"categories"`
	OptionTotals   []OptionTotalResponse `json:"option_totals"`
	Rows           []RowResponse         `json:"rows"`
}

type ToggleAssignmentResponse struct {
	ItemID   string `json:"item_id"`
	OptionID string `json:"option_id"`
	Assigned bool   `json:"assigned"`
	Locked   bool   `json:"locked"`
	Outcome  string `json:"outcome"`
}

func FromView(v matrix.View) MatrixViewResponse {
	resp := MatrixViewResponse{
		SessionID:      v.SessionID,
		QuoteID:        v.QuoteID,
		OpenedAt:       v.OpenedAt,
		ActiveCategory: string(v.ActiveCategory),
		Filters: FiltersResponse{
			RequiredOnly: v.Filters.RequiredOnly,
			AutoOnly:     v.Filters.AutoOnly,
			DiffOnly:     v.Filters.DiffOnly,
		},
		Options:      make([]OptionResponse, 0, len(v.Options)),
		Categories:   make([]CategoryResponse, 0, len(v.Categories)),
		OptionTotals: make([]OptionTotalResponse, 0, len(v.OptionTotals)),
		Rows:         make([]RowResponse, 0, len(v.Rows)),
	}
	for _, o := range v.Options {
		resp.Options = append(resp.Options, fromOption(o))
	}
	for _, c := range v.Categories {
		resp.Categories = append(resp.Categories, CategoryResponse{
			Key:       string(c.Key),
			Total:     c.Total,
			Required:  c.Required,
			Auto:      c.Auto,
			Differing: c.Differing,
		})
	}
	for _, t := range v.OptionTotals {
		resp.OptionTotals = append(resp.OptionTotals, OptionTotalResponse{OptionID: t.OptionID, Assigned: t.Assigned})
	}
	for _, r := range v.Rows {
		resp.Rows = append(resp.Rows, fromRow(r))
	}
	return resp
}

func FromToggleResult(r matrix.ToggleResult) ToggleAssignmentResponse {
	return ToggleAssignmentResponse{
		ItemID:   r.ItemID,
		OptionID: r.OptionID,
		Assigned: r.Assigned,
		Locked:   r.Locked(),
		Outcome:  string(r.Outcome),
	}
}

func fromOption(o entities.Option) OptionResponse {
	return OptionResponse{
		ID:         o.ID,
		Name:       o.Name,
		Descriptor: o.Descriptor,
		Status:     string(o.Status),
	}
}

func fromRow(r matrix.Row) RowResponse {
	assigned := r.Item.AssignedOptions
	if assigned == nil {
		assigned = []string{}
	}
	cells := make([]CellResponse, 0, len(r.Cells))
	for _, c := range r.Cells {
		cells = append(cells, CellResponse{OptionID: c.OptionID, Assigned: c.Assigned, Locked: c.Locked})
	}
	return RowResponse{
		ItemID:          r.Item.ID,
		Label:           r.Item.Label,
		Code:            r.Item.Code,
		Required:        r.Item.Required,
		Auto:            r.Item.Auto,
		AssignedOptions: assigned,
		Cells:           cells,
	}
}
