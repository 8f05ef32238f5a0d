package todo

type listOutput struct {
	Status int
	Body   ListResponse
}

type ListResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Todos   []TodoItem `json:"todos,omitempty"`
}

// TodoItem is the projection returned by the list operation.
type TodoItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createInput struct {
	Body TodoRequest
}

type updateInput struct {
	TodoID string `path:"todoId" doc:"ID of the todo to update"`
	Body   TodoRequest
}

type deleteInput struct {
	TodoID string `path:"todoId" doc:"ID of the todo to delete"`
}

type TodoRequest struct {
	Title       string `json:"title" doc:"Todo title"`
	Description string `json:"description" doc:"Todo description"`
}

type actionOutput struct {
	Status int
	Body   ActionResponse
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
