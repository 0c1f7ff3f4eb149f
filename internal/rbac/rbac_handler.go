package rbac

import (
	"go-employee-api/internal/domain"
	"go-employee-api/internal/shared/apperror"
	"go-employee-api/internal/shared/contextutil"
	"go-employee-api/internal/shared/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type PermissionResponse struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)
	if req.Resource == "" || req.Action == "" {
		writeError(c, apperror.RequiredField("Resource and action"))
		return
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		writeError(c, apperror.Unexpected(err, "An error occurred while checking permissions"))
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{
		Allowed: allowed,
	}, nil)
}

// MyPermissions lists what the caller's role may do.
func (h *Handler) MyPermissions(c *gin.Context) {
	p, ok := contextutil.GetPrincipal(c.Request.Context())
	if !ok || !p.Authenticated {
		writeError(c, apperror.ErrUnauthorized)
		return
	}

	rules, err := h.service.PermissionsFor(p.Role)
	if err != nil {
		writeError(c, apperror.Unexpected(err, "An error occurred while listing permissions"))
		return
	}

	out := make([]PermissionResponse, 0, len(rules))
	for _, r := range rules {
		if len(r) < 3 {
			continue
		}
		out = append(out, PermissionResponse{Role: r[0], Resource: r[1], Action: r[2]})
	}
	response.Success(c, http.StatusOK, out, nil)
}
