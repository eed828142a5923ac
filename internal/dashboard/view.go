package dashboard

import (
	"context"
	"sort"
	"strings"
	"time"

	"taskboard/internal/apiclient"
)

type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortDueDate   SortField = "due_date"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

type CompletedFilter string

const (
	CompletedAll  CompletedFilter = "All"
	CompletedDone CompletedFilter = "Completed"
	CompletedOpen CompletedFilter = "Incomplete"
)

const PriorityAll = "All"

// API is what the view needs from the task endpoints. The concrete
// implementation is apiclient.Client; tests substitute a fake.
type API interface {
	ListTasks(ctx context.Context) ([]apiclient.Task, error)
	CreateTask(ctx context.Context, task apiclient.NewTask) (*apiclient.Task, error)
	UpdateTask(ctx context.Context, id int64, patch apiclient.TaskPatch) (*apiclient.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	BulkDelete(ctx context.Context, ids []int64) ([]apiclient.BulkDeleteResult, error)
}

// View holds the authoritative task slice fetched from the server plus the
// purely local view inputs. The displayed page is always derived as
// filter, then sort, then paginate; identical inputs yield an identical
// slice.
type View struct {
	api   API
	tasks []apiclient.Task

	query     string
	priority  string
	completed CompletedFilter
	sortField SortField
	sortDir   SortDir
	pageSize  int
	page      int
	selected  map[int64]bool
}

func NewView(api API) *View {
	return &View{
		api:       api,
		priority:  PriorityAll,
		completed: CompletedAll,
		sortField: SortCreatedAt,
		sortDir:   SortDesc,
		pageSize:  5,
		page:      1,
		selected:  map[int64]bool{},
	}
}

// Reload refetches the authoritative list, dropping any selection and
// returning to the first page.
func (v *View) Reload(ctx context.Context) error {
	tasks, err := v.api.ListTasks(ctx)
	if err != nil {
		return err
	}
	v.tasks = tasks
	v.selected = map[int64]bool{}
	v.page = 1
	return nil
}

func (v *View) Tasks() []apiclient.Task {
	return v.tasks
}

// Filter and sort inputs reset to the first page, matching how changing a
// filter control behaves in the original interface.

func (v *View) SetQuery(query string) {
	v.query = query
	v.page = 1
}

func (v *View) SetPriority(priority string) {
	v.priority = priority
	v.page = 1
}

func (v *View) SetCompleted(filter CompletedFilter) {
	v.completed = filter
	v.page = 1
}

func (v *View) SetSort(field SortField, dir SortDir) {
	v.sortField = field
	v.sortDir = dir
}

func (v *View) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	v.pageSize = size
	v.page = 1
}

func (v *View) SetPage(page int) {
	v.page = page
}

// Filtered applies the title, priority and completion filters, then sorts.
func (v *View) Filtered() []apiclient.Task {
	list := make([]apiclient.Task, 0, len(v.tasks))

	q := strings.ToLower(strings.TrimSpace(v.query))
	for _, t := range v.tasks {
		if q != "" && !strings.Contains(strings.ToLower(t.Title), q) {
			continue
		}
		if v.priority != PriorityAll && t.Priority != v.priority {
			continue
		}
		if v.completed == CompletedDone && !t.Completed {
			continue
		}
		if v.completed == CompletedOpen && t.Completed {
			continue
		}
		list = append(list, t)
	}

	asc := v.sortDir == SortAsc
	sort.SliceStable(list, func(i, j int) bool {
		cmp := compareValues(sortValue(list[i], v.sortField), sortValue(list[j], v.sortField))
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})

	return list
}

// Visible is the current page of the filtered, sorted list.
func (v *View) Visible() []apiclient.Task {
	filtered := v.Filtered()
	page := v.clampedPage(len(filtered))

	start := (page - 1) * v.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + v.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (v *View) Total() int {
	return len(v.Filtered())
}

func (v *View) TotalPages() int {
	pages := (v.Total() + v.pageSize - 1) / v.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Page is clamped into the valid range, so a page left dangling by a
// shrinking filter result snaps back.
func (v *View) Page() int {
	return v.clampedPage(v.Total())
}

func (v *View) PageSize() int {
	return v.pageSize
}

func (v *View) clampedPage(total int) int {
	pages := (total + v.pageSize - 1) / v.pageSize
	if pages < 1 {
		pages = 1
	}
	page := v.page
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	v.page = page
	return page
}

// Selection

func (v *View) ToggleSelect(id int64) {
	if v.selected[id] {
		delete(v.selected, id)
	} else {
		v.selected[id] = true
	}
}

// ToggleSelectVisible selects every task on the current page, or clears
// them all when every one is already selected.
func (v *View) ToggleSelectVisible() {
	visible := v.Visible()
	all := len(visible) > 0
	for _, t := range visible {
		if !v.selected[t.Id] {
			all = false
			break
		}
	}
	for _, t := range visible {
		if all {
			delete(v.selected, t.Id)
		} else {
			v.selected[t.Id] = true
		}
	}
}

func (v *View) IsSelected(id int64) bool {
	return v.selected[id]
}

func (v *View) SelectedIds() []int64 {
	ids := make([]int64, 0, len(v.selected))
	for id := range v.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortValue(t apiclient.Task, field SortField) string {
	switch field {
	case SortDueDate:
		if t.DueDate == nil {
			return ""
		}
		return *t.DueDate
	default:
		return t.CreatedAt
	}
}

// compareValues orders two field values: numerically when both parse as
// dates, otherwise as lowercased strings.
func compareValues(a, b string) int {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	if okA && okB {
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
