package client

// TodoItem mirrors the server's list projection.
type TodoItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Token   string     `json:"token,omitempty"`
	Todos   []TodoItem `json:"todos,omitempty"`
}
