package signup

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/regwizard/handler"
)

var (
	ErrUsernameTaken = errors.New("signup: username already taken")
	ErrNotFound      = errors.New("signup: registration not found")
)

var errUsernameTaken = handler.NewHTTPError(http.StatusConflict, "username_taken")
