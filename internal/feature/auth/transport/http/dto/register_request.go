package dto

// RegisterReq represents the request body for the /auth/register endpoint.
// Validation happens in the usecase so the client receives distinct messages
// per failure (missing fields, email format, password length, mismatch).
type RegisterReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Name            string `json:"name"`
}
