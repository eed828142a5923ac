package command

type RegisterCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterCommandResult struct {
	Token string `json:"token"`
}

type LoginCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginCommandResult struct {
	Token string `json:"token"`
}
