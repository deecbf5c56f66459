package api

type signupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Requires2FA bool   `json:"requires2FA"`
}

type signupResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email string `json:"email"`
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}
