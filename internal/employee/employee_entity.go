package employee

import (
	"time"

	"go-employee-api/internal/domain"
	"go-employee-api/internal/shared/notification"

	"github.com/google/uuid"
)

const adultAge = 18

// Employee is the aggregate root. It never refuses construction or
// mutation; callers check IsValid and read Notifications instead.
type Employee struct {
	notification.Notifiable

	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       Email
	Password    string
	Document    Document
	Phones      []Phone
	DateOfBirth time.Time
	Role        domain.EmployeeRole
	ManagerID   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	clock func() time.Time
}

// NewEmployeeParams carries constructor input. A zero ID is replaced with a
// generated one; Clock defaults to time.Now.
type NewEmployeeParams struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       Email
	Password    string
	Document    Document
	Phones      []Phone
	DateOfBirth time.Time
	Role        domain.EmployeeRole
	ManagerID   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Clock       func() time.Time
}

func New(p NewEmployeeParams) *Employee {
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = clock().UTC()
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	e := &Employee{
		ID:          id,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Password:    p.Password,
		Document:    p.Document,
		Phones:      copyPhones(p.Phones),
		DateOfBirth: p.DateOfBirth,
		Role:        p.Role,
		ManagerID:   p.ManagerID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		clock:       clock,
	}
	e.Revalidate(e)
	return e
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsAdult compares calendar years only.
func (e *Employee) IsAdult() bool {
	return e.now().Year()-e.DateOfBirth.Year() >= adultAge
}

// Violations evaluates every rule against the current state.
func (e *Employee) Violations() []string {
	out := ValidateEmployee(e)
	if !e.IsAdult() {
		out = append(out, MsgEmployeeUnderage)
	}
	return out
}

func (e *Employee) Update(firstName, lastName string) {
	e.FirstName = firstName
	e.LastName = lastName
	e.Revalidate(e)
}

// UpdatePassword expects an already hashed value.
func (e *Employee) UpdatePassword(hashed string) {
	e.Password = hashed
	e.Revalidate(e)
}

// UpdatePhones replaces the whole collection.
func (e *Employee) UpdatePhones(phones []Phone) {
	e.Phones = copyPhones(phones)
	e.Revalidate(e)
}

func (e *Employee) now() time.Time {
	if e.clock == nil {
		return time.Now()
	}
	return e.clock()
}

func copyPhones(phones []Phone) []Phone {
	if phones == nil {
		return []Phone{}
	}
	out := make([]Phone, len(phones))
	copy(out, phones)
	return out
}
