package apiclient

// Wire shapes as the server emits them. Timestamps stay strings on the
// client; the dashboard sorts them as opaque date-like values.

type Task struct {
	Id          int64   `json:"id"`
	UserId      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
}

type Profile struct {
	Id        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type NewTask struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

type BulkDeleteResult struct {
	Id      int64  `json:"id"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authEnvelope struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type profileEnvelope struct {
	Message string   `json:"message"`
	User    *Profile `json:"user"`
}

type taskEnvelope struct {
	Message string `json:"message"`
	Task    *Task  `json:"task"`
}

type deleteEnvelope struct {
	Message string `json:"message"`
	Id      int64  `json:"id"`
}

type bulkDeleteEnvelope struct {
	Message string             `json:"message"`
	Results []BulkDeleteResult `json:"results"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}
