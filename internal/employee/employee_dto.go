package employee

import (
	"go-employee-api/internal/domain"
)

type CreateEmployeeRequest struct {
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	Email          string              `json:"email" binding:"required"`
	Password       string              `json:"password" binding:"required"`
	DocumentNumber string              `json:"document_number"`
	PhoneNumber1   string              `json:"phone_number_1"`
	PhoneNumber2   string              `json:"phone_number_2"`
	DateOfBirth    string              `json:"date_of_birth" binding:"required"`
	Role           domain.EmployeeRole `json:"role" binding:"required"`
	ManagerID      string              `json:"manager_id" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest leaves the password unchanged when it is empty.
type UpdateEmployeeRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Password     string `json:"password"`
	PhoneNumber1 string `json:"phone_number_1"`
	PhoneNumber2 string `json:"phone_number_2"`
}

type CreateEmployeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type UpdateEmployeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	UpdatedAt string `json:"updated_at"`
}

type PhoneResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	DocumentNumber string          `json:"document_number"`
	Phones         []PhoneResponse `json:"phones"`
	DateOfBirth    string          `json:"date_of_birth"`
	Role           string          `json:"role"`
	ManagerID      string          `json:"manager_id,omitempty"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

type ListEmployeeRequest struct {
	Q        string `form:"q"`
	SortBy   string `form:"sort_by"`
	SortDir  string `form:"sort_dir"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
