// Package dashboard is the projects overview: a fixed project list, a
// selection set over it and page-by-page access.
package dashboard

import (
	"slices"
	"time"
)

type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
	Shared  Visibility = "shared"
)

type Status string

const (
	Active   Status = "active"
	Archived Status = "archived"
	Deleted  Status = "deleted"
)

// Label is the badge text for s.
func (s Status) Label() string {
	switch s {
	case Active:
		return "Active"
	case Archived:
		return "Archived"
	case Deleted:
		return "Deleted"
	default:
		return string(s)
	}
}

type Project struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Visibility  Visibility `json:"visibility"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Sample is the project list the dashboard shows.
func Sample() []Project {
	return []Project{
		{
			ID: 1, Name: "Project Alpha", Description: "A comprehensive project management system",
			Visibility: Public, Status: Active,
			CreatedAt: at("2025-01-15T10:00:00"), UpdatedAt: at("2025-02-01T15:30:00"),
		},
		{
			ID: 2, Name: "Project Beta", Description: "Internal analytics dashboard",
			Visibility: Private, Status: Archived,
			CreatedAt: at("2025-01-20T09:00:00"), UpdatedAt: at("2025-01-28T11:20:00"),
		},
		{
			ID: 3, Name: "Project Gamma", Description: "Collaborative workspace platform",
			Visibility: Shared, Status: Active,
			CreatedAt: at("2025-01-25T14:00:00"), UpdatedAt: at("2025-02-04T16:45:00"),
		},
	}
}

// FormatTime renders timestamps the way the table shows them.
func FormatTime(t time.Time) string {
	return t.Format("Jan 2, 2006, 03:04 PM")
}

// Selection is a set of project IDs. The zero value is empty and usable.
type Selection struct {
	ids map[int]struct{}
}

// Toggle flips id and reports whether it is now selected.
func (s *Selection) Toggle(id int) bool {
	if s.ids == nil {
		s.ids = map[int]struct{}{}
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// ToggleAll clears the selection when every project is selected, otherwise
// selects them all.
func (s *Selection) ToggleAll(projects []Project) {
	if s.AllSelected(projects) {
		s.ids = nil
		return
	}
	if s.ids == nil {
		s.ids = map[int]struct{}{}
	}
	for _, p := range projects {
		s.ids[p.ID] = struct{}{}
	}
}

// AllSelected reports whether every project is selected. An empty list is
// never all-selected.
func (s *Selection) AllSelected(projects []Project) bool {
	if len(projects) == 0 {
		return false
	}
	for _, p := range projects {
		if !s.Contains(p.ID) {
			return false
		}
	}
	return true
}

func (s *Selection) Contains(id int) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the selected IDs in ascending order.
func (s *Selection) IDs() []int {
	out := make([]int, 0, s.Len())
	if s != nil {
		for id := range s.ids {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// PageSize is the number of rows per page.
const PageSize = 10

type PageInfo struct {
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	Total    int  `json:"total"`
	Pages    int  `json:"pages"`
	HasPrev  bool `json:"hasPrev"`
	HasNext  bool `json:"hasNext"`
}

// Paginate returns the projects on page (1-based). page is clamped to the
// available range; size <= 0 means PageSize.
func Paginate(projects []Project, page, size int) ([]Project, PageInfo) {
	if size <= 0 {
		size = PageSize
	}
	pages := (len(projects) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	page = max(1, min(page, pages))

	start := (page - 1) * size
	end := min(start+size, len(projects))
	info := PageInfo{
		Page:     page,
		PageSize: size,
		Total:    len(projects),
		Pages:    pages,
		HasPrev:  page > 1,
		HasNext:  page*size < len(projects),
	}
	return projects[start:end], info
}

// Action is a per-row menu action. Actions are recorded only; nothing is
// downloaded, archived or deleted.
type Action string

const (
	ActionDownload Action = "download"
	ActionArchive  Action = "archive"
	ActionDelete   Action = "delete"
)

func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionDownload, ActionArchive, ActionDelete:
		return a, true
	default:
		return "", false
	}
}

// Find returns the project with id.
func Find(projects []Project, id int) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
