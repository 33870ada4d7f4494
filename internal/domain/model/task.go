package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Status and priority codes. Labels for these live in the lookup tables.
const (
	StatusInitial  = 1
	StatusMin      = 1
	StatusMax      = 3
	PriorityMin    = 0
	PriorityMax    = 2
	PriorityNormal = 2
)

// TagColors is the accepted palette for task tags.
var TagColors = []string{
	"primary", "secondary", "danger", "warning", "success",
	"info", "dark", "light", "white", "muted",
}

type Note struct {
	Text string `json:"text" validate:"required"`
	Date string `json:"date" validate:"required,len=10"`
}

type Tag struct {
	Text  string `json:"text" validate:"required"`
	Color string `json:"color" validate:"required,oneof=primary secondary danger warning success info dark light white muted"`
}

// NoteList and TagList are stored as JSONB columns.
type NoteList []Note

type TagList []Tag

type Task struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      int      `json:"status"`
	Priority    int      `json:"priority"`
	EndDate     string   `json:"endDate"`
	UpdateDate  string   `json:"updateDate"`
	Notes       NoteList `json:"notes"`
	Tags        TagList  `json:"tags"`
}

func (n NoteList) Value() (driver.Value, error) {
	if n == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(n)
}

func (n *NoteList) Scan(src interface{}) error {
	return scanJSON(src, n)
}

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(src interface{}) error {
	return scanJSON(src, t)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported JSONB source type %T", src)
	}
}
