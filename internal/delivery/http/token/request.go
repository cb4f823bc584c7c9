package token

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type TokenRequest struct {
	UserID string `json:"user_id" validate:"required,max=128"`
	Token  string `json:"token" validate:"required,max=4096"`
}

func (r *TokenRequest) validate() error {
	return validate.Struct(r)
}
