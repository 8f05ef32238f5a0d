package auth

type signUpInput struct {
	Body CredentialsRequest
}

type signInInput struct {
	Body CredentialsRequest
}

type CredentialsRequest struct {
	Username string `json:"username" doc:"Account name"`
	Password string `json:"password" doc:"Account password"`
}

type authOutput struct {
	Status int
	Body   AuthResponse
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
