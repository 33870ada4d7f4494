package query

import (
	"fmt"
	"strings"
)

// Filter builders translate sparse caller-supplied criteria into SQL
// predicates. A field contributes a condition only when it is present and
// non-falsy; absent fields impose no constraint and all conditions are
// ANDed. Prefix fields become LIKE patterns anchored at the start of the
// string; the value is not escaped, so LIKE metacharacters supplied by the
// caller propagate into the match.

// TextMatch narrows list-valued fields (tags, notes) by their text entry.
type TextMatch struct {
	Text string `json:"text"`
}

type TaskFilter struct {
	UserID      string     `json:"userId" validate:"omitempty,uuid"`
	Title       string     `json:"title" validate:"omitempty,max=255"`
	Description string     `json:"description"`
	Status      int        `json:"status" validate:"omitempty,min=1,max=3"`
	Priority    int        `json:"priority" validate:"omitempty,min=0,max=2"`
	EndDate     string     `json:"endDate" validate:"omitempty,len=10"`
	UpdateDate  string     `json:"updateDate" validate:"omitempty,len=10"`
	Tags        *TextMatch `json:"tags"`
	Notes       *TextMatch `json:"notes"`
}

type UserFilter struct {
	Name            string `json:"name" validate:"omitempty,alphanum,min=1,max=255"`
	AdminPrivileges bool   `json:"adminPrivileges"`
}

// Predicate is an ordered set of SQL conditions with positional args.
// An empty predicate matches all records.
type Predicate struct {
	conditions []string
	args       []interface{}
}

func (p *Predicate) exact(column string, value interface{}) {
	p.conditions = append(p.conditions, fmt.Sprintf("%s = $%d", column, len(p.args)+1))
	p.args = append(p.args, value)
}

func (p *Predicate) prefix(column, value string) {
	p.conditions = append(p.conditions, fmt.Sprintf("%s LIKE $%d", column, len(p.args)+1))
	p.args = append(p.args, value+"%")
}

// prefixInList matches JSONB arrays of objects whose "text" entry starts
// with value.
func (p *Predicate) prefixInList(column, value string) {
	p.conditions = append(p.conditions, fmt.Sprintf(
		"EXISTS (SELECT 1 FROM jsonb_array_elements(%s) AS entry WHERE entry->>'text' LIKE $%d)",
		column, len(p.args)+1))
	p.args = append(p.args, value+"%")
}

// WhereClause renders the predicate, with a leading space, or "" when
// unconstrained.
func (p *Predicate) WhereClause() string {
	if len(p.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conditions, " AND ")
}

func (p *Predicate) Args() []interface{} {
	return p.args
}

// BuildTaskPredicate accepts a nil filter, which matches everything.
func BuildTaskPredicate(f *TaskFilter) *Predicate {
	p := &Predicate{}
	if f == nil {
		return p
	}
	if f.UserID != "" {
		p.exact("user_id", f.UserID)
	}
	if f.Title != "" {
		p.prefix("title", f.Title)
	}
	if f.Description != "" {
		p.prefix("description", f.Description)
	}
	if f.Status != 0 {
		p.exact("status", f.Status)
	}
	if f.Priority != 0 {
		p.exact("priority", f.Priority)
	}
	if f.EndDate != "" {
		p.exact("end_date", f.EndDate)
	}
	if f.UpdateDate != "" {
		p.exact("update_date", f.UpdateDate)
	}
	if f.Tags != nil {
		p.prefixInList("tags", f.Tags.Text)
	}
	if f.Notes != nil {
		p.prefixInList("notes", f.Notes.Text)
	}
	return p
}

func BuildUserPredicate(f *UserFilter) *Predicate {
	p := &Predicate{}
	if f == nil {
		return p
	}
	if f.Name != "" {
		p.prefix("name", f.Name)
	}
	if f.AdminPrivileges {
		p.exact("admin_privileges", f.AdminPrivileges)
	}
	return p
}
