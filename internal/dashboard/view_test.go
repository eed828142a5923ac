package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/apiclient"
)

// fakeAPI keeps a server-side task list in memory and can be told to fail.
type fakeAPI struct {
	tasks      []apiclient.Task
	nextId     int64
	failUpdate bool
	failDelete bool
	listCalls  int
}

func (f *fakeAPI) ListTasks(ctx context.Context) ([]apiclient.Task, error) {
	f.listCalls++
	out := make([]apiclient.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeAPI) CreateTask(ctx context.Context, task apiclient.NewTask) (*apiclient.Task, error) {
	f.nextId++
	created := apiclient.Task{
		Id:        f.nextId,
		Title:     task.Title,
		Priority:  "Medium",
		CreatedAt: fmt.Sprintf("2025-01-%02dT00:00:00Z", f.nextId),
	}
	if task.Priority != nil {
		created.Priority = *task.Priority
	}
	f.tasks = append(f.tasks, created)
	return &created, nil
}

func (f *fakeAPI) UpdateTask(ctx context.Context, id int64, patch apiclient.TaskPatch) (*apiclient.Task, error) {
	if f.failUpdate {
		return nil, &apiclient.APIError{Status: 500, Message: "Database error"}
	}
	for i := range f.tasks {
		if f.tasks[i].Id != id {
			continue
		}
		if patch.Title != nil {
			f.tasks[i].Title = *patch.Title
		}
		if patch.Completed != nil {
			f.tasks[i].Completed = *patch.Completed
		}
		if patch.Priority != nil {
			f.tasks[i].Priority = *patch.Priority
		}
		row := f.tasks[i]
		return &row, nil
	}
	return nil, &apiclient.APIError{Status: 404, Message: "Task not found"}
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id int64) error {
	if f.failDelete {
		return &apiclient.APIError{Status: 500, Message: "Database error"}
	}
	for i := range f.tasks {
		if f.tasks[i].Id == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &apiclient.APIError{Status: 404, Message: "Task not found"}
}

func (f *fakeAPI) BulkDelete(ctx context.Context, ids []int64) ([]apiclient.BulkDeleteResult, error) {
	results := make([]apiclient.BulkDeleteResult, 0, len(ids))
	for _, id := range ids {
		err := f.DeleteTask(ctx, id)
		r := apiclient.BulkDeleteResult{Id: id, Deleted: err == nil}
		if err != nil {
			r.Error = err.Error()
		}
		results = append(results, r)
	}
	return results, nil
}

func strPtr(s string) *string { return &s }

func task(id int64, title, priority string, completed bool, createdAt string, due *string) apiclient.Task {
	return apiclient.Task{
		Id:        id,
		Title:     title,
		Priority:  priority,
		Completed: completed,
		CreatedAt: createdAt,
		DueDate:   due,
	}
}

func sampleTasks() []apiclient.Task {
	return []apiclient.Task{
		task(1, "Buy milk", "High", false, "2025-01-01T10:00:00Z", strPtr("2025-02-01")),
		task(2, "Walk dog", "Medium", true, "2025-01-02T10:00:00Z", nil),
		task(3, "buy stamps", "Low", false, "2025-01-03T10:00:00Z", strPtr("2025-01-15")),
		task(4, "Pay rent", "High", true, "2025-01-04T10:00:00Z", strPtr("2025-01-05")),
		task(5, "Read book", "Medium", false, "2025-01-05T10:00:00Z", nil),
	}
}

func loadedView(t *testing.T) (*View, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{tasks: sampleTasks(), nextId: 5}
	v := NewView(api)
	require.NoError(t, v.Reload(context.Background()))
	return v, api
}

func titles(tasks []apiclient.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestDefaultViewNewestFirst(t *testing.T) {
	v, _ := loadedView(t)

	assert.Equal(t, []string{"Read book", "Pay rent", "buy stamps", "Walk dog", "Buy milk"},
		titles(v.Visible()))
}

func TestQueryFilterIsCaseInsensitiveSubstring(t *testing.T) {
	v, _ := loadedView(t)

	v.SetQuery("BUY")
	assert.Equal(t, []string{"buy stamps", "Buy milk"}, titles(v.Visible()))
}

func TestPriorityFilter(t *testing.T) {
	v, _ := loadedView(t)

	v.SetPriority("High")
	assert.Equal(t, []string{"Pay rent", "Buy milk"}, titles(v.Visible()))

	v.SetPriority(PriorityAll)
	assert.Len(t, v.Visible(), 5)
}

func TestCompletedFilter(t *testing.T) {
	v, _ := loadedView(t)

	v.SetCompleted(CompletedDone)
	assert.Equal(t, []string{"Pay rent", "Walk dog"}, titles(v.Visible()))

	v.SetCompleted(CompletedOpen)
	assert.Equal(t, []string{"Read book", "buy stamps", "Buy milk"}, titles(v.Visible()))
}

func TestSortByDueDateAscending(t *testing.T) {
	v, _ := loadedView(t)

	v.SetSort(SortDueDate, SortAsc)
	// Tasks without a due date sort as empty strings, first in ascending
	// order.
	got := titles(v.Visible())
	assert.Equal(t, []string{"Walk dog", "Read book", "Pay rent", "buy stamps", "Buy milk"}, got)
}

func TestSortFallsBackToLexicographic(t *testing.T) {
	api := &fakeAPI{tasks: []apiclient.Task{
		task(1, "a", "Medium", false, "2025-01-01T10:00:00Z", strPtr("soonish")),
		task(2, "b", "Medium", false, "2025-01-02T10:00:00Z", strPtr("ASAP")),
	}}
	v := NewView(api)
	require.NoError(t, v.Reload(context.Background()))

	v.SetSort(SortDueDate, SortAsc)
	// "ASAP" < "soonish" case-insensitively.
	assert.Equal(t, []string{"b", "a"}, titles(v.Visible()))
}

func TestDerivationIsDeterministic(t *testing.T) {
	v, _ := loadedView(t)

	v.SetQuery("r")
	v.SetPriority("Medium")
	v.SetSort(SortCreatedAt, SortAsc)

	first := titles(v.Visible())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, titles(v.Visible()))
	}
}

func TestPagination(t *testing.T) {
	v, _ := loadedView(t)

	v.SetPageSize(2)
	assert.Equal(t, 3, v.TotalPages())
	assert.Equal(t, []string{"Read book", "Pay rent"}, titles(v.Visible()))

	v.SetPage(2)
	assert.Equal(t, []string{"buy stamps", "Walk dog"}, titles(v.Visible()))

	v.SetPage(3)
	assert.Equal(t, []string{"Buy milk"}, titles(v.Visible()))
}

func TestPageClampsWhenFilterShrinksResult(t *testing.T) {
	v, _ := loadedView(t)

	v.SetPageSize(2)
	v.SetPage(3)
	require.Equal(t, 3, v.Page())

	// Narrowing resets to page 1; an out-of-range request clamps to the
	// last page.
	v.SetQuery("buy")
	assert.Equal(t, 1, v.Page())

	v.SetPage(99)
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, []string{"buy stamps", "Buy milk"}, titles(v.Visible()))
}

func TestFilterChangeResetsPage(t *testing.T) {
	v, _ := loadedView(t)

	v.SetPageSize(2)
	v.SetPage(2)
	require.Equal(t, 2, v.Page())

	v.SetPriority("High")
	assert.Equal(t, 1, v.Page())
}

func TestSelection(t *testing.T) {
	v, _ := loadedView(t)

	v.ToggleSelect(1)
	v.ToggleSelect(3)
	assert.Equal(t, []int64{1, 3}, v.SelectedIds())

	v.ToggleSelect(1)
	assert.Equal(t, []int64{3}, v.SelectedIds())
}

func TestToggleSelectVisible(t *testing.T) {
	v, _ := loadedView(t)

	v.SetPageSize(2)
	v.ToggleSelectVisible()
	assert.Equal(t, []int64{4, 5}, v.SelectedIds())

	// All visible already selected: toggling clears them.
	v.ToggleSelectVisible()
	assert.Empty(t, v.SelectedIds())
}

func TestReloadError(t *testing.T) {
	api := &fakeAPI{}
	v := NewView(api)
	require.NoError(t, v.Reload(context.Background()))

	failing := &failingListAPI{}
	v2 := NewView(failing)
	assert.Error(t, v2.Reload(context.Background()))
}

type failingListAPI struct {
	fakeAPI
}

func (f *failingListAPI) ListTasks(ctx context.Context) ([]apiclient.Task, error) {
	return nil, errors.New("connection refused")
}
