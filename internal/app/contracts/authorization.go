package contracts

import "net/http"

// AdminAuthChecker guards the admin-only endpoints. The plaintext
// query-parameter implementation is deliberately isolated behind this
// interface so it can be swapped for a real mechanism without touching the
// booking or mapping logic.
type AdminAuthChecker interface {
	Authorize(r *http.Request) error
}
