package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"taskboard/internal/apiclient"
	"taskboard/internal/config"
	"taskboard/internal/dashboard"
	"taskboard/internal/session"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	baseURL := config.GetEnvAsString("TASKBOARD_API", "http://localhost:4000/api")
	client := apiclient.New(baseURL)

	store, err := session.NewFileStore()
	if err != nil {
		fatal(err)
	}
	sess, err := session.New(store, client)
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "ping":
		if err := client.Ping(ctx); err != nil {
			fatal(err)
		}
		fmt.Println("pong")

	case "register", "login":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		username := fs.String("u", "", "username")
		password := fs.String("p", "", "password")
		fs.Parse(args)

		var token string
		if cmd == "register" {
			token, err = client.Register(ctx, *username, *password)
		} else {
			token, err = client.Login(ctx, *username, *password)
		}
		if err != nil {
			fatal(err)
		}
		if err := sess.LoginWith(token); err != nil {
			fatal(err)
		}
		if sess.Resolve(ctx) != session.StateAuthenticated {
			fatal(fmt.Errorf("token did not validate"))
		}
		fmt.Printf("signed in as %s\n", sess.Profile().Username)

	case "logout":
		if err := sess.SignOut(); err != nil {
			fatal(err)
		}
		fmt.Println("signed out")

	case "whoami":
		requireAuth(ctx, sess)
		p := sess.Profile()
		fmt.Printf("%s (id %d, since %s)\n", p.Username, p.Id, p.CreatedAt)

	case "list":
		requireAuth(ctx, sess)
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		query := fs.String("q", "", "title filter")
		priority := fs.String("priority", dashboard.PriorityAll, "All, High, Medium or Low")
		completed := fs.String("completed", string(dashboard.CompletedAll), "All, Completed or Incomplete")
		sortField := fs.String("sort", string(dashboard.SortCreatedAt), "created_at or due_date")
		sortDir := fs.String("dir", string(dashboard.SortDesc), "asc or desc")
		pageSize := fs.Int("page-size", 5, "tasks per page")
		page := fs.Int("page", 1, "page number")
		fs.Parse(args)

		view := dashboard.NewView(client)
		if err := view.Reload(ctx); err != nil {
			fatal(err)
		}
		view.SetQuery(*query)
		view.SetPriority(*priority)
		view.SetCompleted(dashboard.CompletedFilter(*completed))
		view.SetSort(dashboard.SortField(*sortField), dashboard.SortDir(*sortDir))
		view.SetPageSize(*pageSize)
		view.SetPage(*page)

		for _, t := range view.Visible() {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			due := "-"
			if t.DueDate != nil {
				due = *t.DueDate
			}
			fmt.Printf("[%s] %-4d %-8s due %-10s  %s\n", mark, t.Id, t.Priority, due, t.Title)
		}
		fmt.Printf("page %d of %d, %d tasks\n", view.Page(), view.TotalPages(), view.Total())

	case "add":
		requireAuth(ctx, sess)
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		desc := fs.String("desc", "", "description")
		priority := fs.String("priority", "", "High, Medium or Low")
		due := fs.String("due", "", "due date (YYYY-MM-DD)")
		fs.Parse(args)
		if fs.NArg() < 1 {
			fatal(fmt.Errorf("usage: taskcli add [flags] <title>"))
		}

		task := apiclient.NewTask{Title: fs.Arg(0)}
		if *desc != "" {
			task.Description = desc
		}
		if *priority != "" {
			task.Priority = priority
		}
		if *due != "" {
			task.DueDate = due
		}
		created, err := client.CreateTask(ctx, task)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("created task %d\n", created.Id)

	case "done":
		requireAuth(ctx, sess)
		id := parseId(args)
		completed := true
		if _, err := client.UpdateTask(ctx, id, apiclient.TaskPatch{Completed: &completed}); err != nil {
			fatal(err)
		}
		fmt.Printf("task %d completed\n", id)

	case "rm":
		requireAuth(ctx, sess)
		if len(args) == 0 {
			fatal(fmt.Errorf("usage: taskcli rm <id> [id...]"))
		}
		ids := make([]int64, 0, len(args))
		for _, a := range args {
			id, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				fatal(fmt.Errorf("bad task id %q", a))
			}
			ids = append(ids, id)
		}
		if len(ids) == 1 {
			if err := client.DeleteTask(ctx, ids[0]); err != nil {
				fatal(err)
			}
			fmt.Printf("deleted task %d\n", ids[0])
			return
		}
		results, err := client.BulkDelete(ctx, ids)
		if err != nil {
			fatal(err)
		}
		for _, r := range results {
			if r.Deleted {
				fmt.Printf("deleted task %d\n", r.Id)
			} else {
				fmt.Printf("task %d: %s\n", r.Id, r.Error)
			}
		}

	default:
		usage()
		os.Exit(2)
	}
}

func requireAuth(ctx context.Context, sess *session.Session) {
	if sess.Resolve(ctx) != session.StateAuthenticated {
		fmt.Fprintln(os.Stderr, "not signed in; run taskcli login -u <user> -p <password>")
		os.Exit(1)
	}
}

func parseId(args []string) int64 {
	if len(args) != 1 {
		fatal(fmt.Errorf("expected exactly one task id"))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatal(fmt.Errorf("bad task id %q", args[0]))
	}
	return id
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: taskcli <command> [flags]

commands:
  ping                      check the server
  register -u <user> -p <password>
  login    -u <user> -p <password>
  logout
  whoami
  list [-q text] [-priority P] [-completed F] [-sort field] [-dir d] [-page n] [-page-size n]
  add [-desc text] [-priority P] [-due date] <title>
  done <id>
  rm <id> [id...]`)
}
