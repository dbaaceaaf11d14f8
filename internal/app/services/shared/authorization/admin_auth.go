package authorization

import (
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/exceptions"
	"crypto/subtle"
	"errors"
	"net/http"
)

type queryPasswordChecker struct {
	Password string
}

// NewQueryPasswordChecker guards admin endpoints with a plaintext password
// carried in the pw query parameter. This matches what the event front end
// sends today; it is not a real authentication scheme and the interface
// exists so it can be replaced by one.
func NewQueryPasswordChecker(password string) contracts.AdminAuthChecker {
	return &queryPasswordChecker{Password: password}
}

func (c *queryPasswordChecker) Authorize(r *http.Request) error {
	supplied := r.URL.Query().Get(constvars.QueryParamAdminPassword)
	if supplied == "" {
		return exceptions.ErrAdminNotAuthorized(errors.New("admin password missing"))
	}
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(c.Password)) != 1 {
		return exceptions.ErrAdminNotAuthorized(errors.New("admin password mismatch"))
	}
	return nil
}
