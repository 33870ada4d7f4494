package query

import "github.com/rarango1992/GPAC/internal/domain/model"

// Update mergers build the sparse patch an update actually applies. A field
// is included only when its candidate value is non-falsy, so a caller
// cannot clear a field to its zero value ({status: 0} is silently ignored;
// tests pin this). The update date stamp is always server-computed and
// appended, never client-supplied.

// Change is one column assignment in a patch.
type Change struct {
	Column string
	Value  interface{}
}

type TaskPatch struct {
	Title       string
	Description string
	Status      int
	Priority    int
	EndDate     string
	Notes       model.NoteList
	Tags        model.TagList
}

// Changes returns the field assignments plus the refreshed update_date.
func (p TaskPatch) Changes(updateDate string) []Change {
	var changes []Change
	if p.Title != "" {
		changes = append(changes, Change{"title", p.Title})
	}
	if p.Description != "" {
		changes = append(changes, Change{"description", p.Description})
	}
	if p.Status != 0 {
		changes = append(changes, Change{"status", p.Status})
	}
	if p.Priority != 0 {
		changes = append(changes, Change{"priority", p.Priority})
	}
	if p.EndDate != "" {
		changes = append(changes, Change{"end_date", p.EndDate})
	}
	if p.Notes != nil {
		changes = append(changes, Change{"notes", p.Notes})
	}
	if p.Tags != nil {
		changes = append(changes, Change{"tags", p.Tags})
	}
	changes = append(changes, Change{"update_date", updateDate})
	return changes
}

// UserPatch carries an already-hashed password. AdminPrivileges uses a
// presence marker so it can be lowered to false.
type UserPatch struct {
	HashedPassword  string
	AdminPrivileges *bool
}

func (p UserPatch) Changes() []Change {
	var changes []Change
	if p.AdminPrivileges != nil {
		changes = append(changes, Change{"admin_privileges", *p.AdminPrivileges})
	}
	if p.HashedPassword != "" {
		changes = append(changes, Change{"password", p.HashedPassword})
	}
	return changes
}
