package auth

type LoginRequestBody struct {
	Password string `json:"password"`
}
