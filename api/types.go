package api

// Request and response bodies of the conference backend.
// Field names follow the backend's JSON contract.

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type createRoomRequest struct {
	Name string `json:"name"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// errorBody is the envelope of every backend error response.
type errorBody struct {
	Detail string `json:"detail"`
}
