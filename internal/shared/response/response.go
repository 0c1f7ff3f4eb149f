package response

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// round up: (total + limit - 1) / limit
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

// ErrorBody is the machine-readable part of a failed response.
type ErrorBody struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// ApiEnvelope is the uniform result every endpoint returns: isSuccess, a
// message on failure, data on success.
type ApiEnvelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Message   string          `json:"message,omitempty"`
	Data      any             `json:"data,omitempty"`
	Meta      *PaginationMeta `json:"meta,omitempty"`
	Error     *ErrorBody      `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		IsSuccess: true,
		Data:      data,
		Meta:      meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		IsSuccess: false,
		Message:   message,
		Error: &ErrorBody{
			Code:    errorCode,
			Details: details,
		},
	})
}
