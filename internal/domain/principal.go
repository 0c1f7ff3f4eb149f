package domain

import "github.com/google/uuid"

// Principal is the acting user of a request, built from access token claims.
type Principal struct {
	EmployeeID    uuid.UUID
	Email         string
	Name          string
	Role          EmployeeRole
	Authenticated bool
}
