package http

// RegisterRequest carries the four required registration fields.
type RegisterRequest struct {
	First    string `json:"first" example:"Jo"`
	Last     string `json:"last" example:"Doe"`
	Email    string `json:"email" example:"jo@x.com"`
	Password string `json:"password" example:"pw123"`
}

// LoginRequest carries email login fields.
type LoginRequest struct {
	Email    string `json:"email" example:"jo@x.com"`
	Password string `json:"password" example:"pw123"`
}

// ResetStartRequest starts the password reset flow.
type ResetStartRequest struct {
	Email string `json:"email" example:"jo@x.com"`
}

// ResetVerifyRequest trades an emailed code for a new password.
type ResetVerifyRequest struct {
	Code     string `json:"code" example:"aB3xY9"`
	Password string `json:"password" example:"pw456"`
}

// BioRequest carries a profile bio update.
type BioRequest struct {
	Bio string `json:"bio" example:"climber, baker"`
}

// SuccessResponse is the uniform happy-path payload.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
