package controllers

import (
	"context"

	"backoffice/src/schemas"
	"backoffice/src/utils"

	"github.com/go-chi/jwtauth"
	"golang.org/x/crypto/bcrypt"
)

// PostToken verifies the credentials and issues a bearer token with the user
// email as subject.
func (c *Controller) PostToken(ctx context.Context, req schemas.TokenRequest) (*schemas.TokenResponse, error) {
	if err := schemas.Validate.Struct(req); err != nil {
		return nil, utils.BadRequest(err.Error())
	}

	user, err := c.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.Unauthorized("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, utils.Unauthorized("invalid email or password")
	}

	claims := map[string]interface{}{"sub": user.Email}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, c.TokenTTL)

	_, tokenString, err := c.TokenAuth.Encode(claims)
	if err != nil {
		return nil, err
	}

	return &schemas.TokenResponse{
		AccessToken: tokenString,
		TokenType:   "bearer",
	}, nil
}
