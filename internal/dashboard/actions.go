package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/apiclient"
)

// Mutations apply optimistically: local state changes first, then the
// server's returned row reconciles it. Any failure resynchronizes with a
// full reload rather than a fine-grained rollback.

// Add creates a task and appends the server's row to the local list.
func (v *View) Add(ctx context.Context, task apiclient.NewTask) error {
	if strings.TrimSpace(task.Title) == "" {
		return errors.New("title cannot be empty")
	}

	created, err := v.api.CreateTask(ctx, task)
	if err != nil {
		return err
	}
	v.tasks = append(v.tasks, *created)
	return nil
}

func (v *View) ToggleCompleted(ctx context.Context, id int64) error {
	idx := v.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("no task %d in view", id)
	}

	next := !v.tasks[idx].Completed
	v.tasks[idx].Completed = next

	updated, err := v.api.UpdateTask(ctx, id, apiclient.TaskPatch{Completed: &next})
	if err != nil {
		_ = v.Reload(ctx)
		return err
	}
	if updated != nil {
		v.tasks[v.indexOf(id)] = *updated
	}
	return nil
}

func (v *View) SaveTitle(ctx context.Context, id int64, title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return errors.New("title cannot be empty")
	}
	idx := v.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("no task %d in view", id)
	}

	v.tasks[idx].Title = trimmed

	updated, err := v.api.UpdateTask(ctx, id, apiclient.TaskPatch{Title: &trimmed})
	if err != nil {
		_ = v.Reload(ctx)
		return err
	}
	if updated != nil {
		v.tasks[v.indexOf(id)] = *updated
	}
	return nil
}

func (v *View) Delete(ctx context.Context, id int64) error {
	v.removeLocal(id)

	if err := v.api.DeleteTask(ctx, id); err != nil {
		_ = v.Reload(ctx)
		return err
	}
	return nil
}

// BulkDelete removes every selected task in one batch call. The per-item
// results say exactly which deletions took; any failed item means the view
// resynchronizes from the server.
func (v *View) BulkDelete(ctx context.Context) error {
	ids := v.SelectedIds()
	if len(ids) == 0 {
		return nil
	}

	for _, id := range ids {
		v.removeLocal(id)
	}

	results, err := v.api.BulkDelete(ctx, ids)
	if err != nil {
		_ = v.Reload(ctx)
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.Deleted {
			failed++
		}
	}
	if failed > 0 {
		_ = v.Reload(ctx)
		return fmt.Errorf("%d of %d deletions failed", failed, len(ids))
	}
	return nil
}

func (v *View) indexOf(id int64) int {
	for i := range v.tasks {
		if v.tasks[i].Id == id {
			return i
		}
	}
	return -1
}

func (v *View) removeLocal(id int64) {
	if idx := v.indexOf(id); idx >= 0 {
		v.tasks = append(v.tasks[:idx], v.tasks[idx+1:]...)
	}
	delete(v.selected, id)
}
