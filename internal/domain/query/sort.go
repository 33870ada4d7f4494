package query

import (
	"sort"
	"strings"

	"github.com/rarango1992/GPAC/internal/domain/model"
)

const (
	Asc  = "asc"
	Desc = "desc"
)

// Order objects name per-field sort directions. Comparators are applied in
// a fixed declared sequence, not the order the caller supplied them: each
// pass is a full stable re-sort on a single field, so the last field in the
// sequence that was requested becomes the primary key and earlier ones
// survive only as tie-breakers.

type TaskOrder struct {
	Status     string `json:"status" validate:"omitempty,oneof=asc desc"`
	Priority   string `json:"priority" validate:"omitempty,oneof=asc desc"`
	Title      string `json:"title" validate:"omitempty,oneof=asc desc"`
	EndDate    string `json:"endDate" validate:"omitempty,oneof=asc desc"`
	UpdateDate string `json:"updateDate" validate:"omitempty,oneof=asc desc"`
}

type UserOrder struct {
	Name            string `json:"name" validate:"omitempty,oneof=asc desc"`
	AdminPrivileges string `json:"adminPrivileges" validate:"omitempty,oneof=asc desc"`
}

// SortTasks applies stable passes in the fixed order updateDate, endDate,
// title, priority, status, so the dominance ranking is status, then
// priority, title, endDate, updateDate. For priority the sense is inverted
// relative to status ("asc" sorts by descending numeric value); this
// asymmetry is an observable contract and is kept as is.
func SortTasks(tasks []model.Task, order *TaskOrder) {
	if order == nil {
		return
	}
	switch order.UpdateDate {
	case Asc:
		sort.SliceStable(tasks, func(i, j int) bool { return dateBefore(tasks[i].UpdateDate, tasks[j].UpdateDate) })
	case Desc:
		sort.SliceStable(tasks, func(i, j int) bool { return dateBefore(tasks[j].UpdateDate, tasks[i].UpdateDate) })
	}
	switch order.EndDate {
	case Asc:
		sort.SliceStable(tasks, func(i, j int) bool { return dateBefore(tasks[i].EndDate, tasks[j].EndDate) })
	case Desc:
		sort.SliceStable(tasks, func(i, j int) bool { return dateBefore(tasks[j].EndDate, tasks[i].EndDate) })
	}
	switch order.Title {
	case Asc:
		sort.SliceStable(tasks, func(i, j int) bool {
			return strings.ToLower(tasks[i].Title) < strings.ToLower(tasks[j].Title)
		})
	case Desc:
		sort.SliceStable(tasks, func(i, j int) bool {
			return strings.ToLower(tasks[i].Title) > strings.ToLower(tasks[j].Title)
		})
	}
	switch order.Priority {
	case Asc:
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Priority > tasks[j].Priority })
	case Desc:
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Priority < tasks[j].Priority })
	}
	switch order.Status {
	case Asc:
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Status < tasks[j].Status })
	case Desc:
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Status > tasks[j].Status })
	}
}

// SortUsers applies the user sequence: adminPrivileges, then name, so name
// dominates when both are requested. "asc" on adminPrivileges puts
// non-admins first.
func SortUsers(users []model.User, order *UserOrder) {
	if order == nil {
		return
	}
	switch order.AdminPrivileges {
	case Asc:
		sort.SliceStable(users, func(i, j int) bool {
			return !users[i].AdminPrivileges && users[j].AdminPrivileges
		})
	case Desc:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].AdminPrivileges && !users[j].AdminPrivileges
		})
	}
	switch order.Name {
	case Asc:
		sort.SliceStable(users, func(i, j int) bool {
			return strings.ToLower(users[i].Name) < strings.ToLower(users[j].Name)
		})
	case Desc:
		sort.SliceStable(users, func(i, j int) bool {
			return strings.ToLower(users[i].Name) > strings.ToLower(users[j].Name)
		})
	}
}
