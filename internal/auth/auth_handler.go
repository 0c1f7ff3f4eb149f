package auth

import (
	"net/http"
	"time"

	autherrors "go-employee-api/internal/auth/errors"
	"go-employee-api/internal/shared/apperror"
	platform "go-employee-api/internal/shared/request"
	"go-employee-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
)

type CookieConfig struct {
	Secure     bool
	RefreshTTL time.Duration
}

type Handler struct {
	service Service
	cookies CookieConfig
	logger  *zap.Logger
}

func NewHandler(s Service, cookies CookieConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	if cookies.RefreshTTL <= 0 {
		cookies.RefreshTTL = 7 * 24 * time.Hour
	}
	return &Handler{service: s, cookies: cookies, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func isWeb(c *gin.Context) bool {
	clientType := platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))
	return platform.IsWebClient(clientType)
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) setTokenCookies(c *gin.Context, resp LoginResponse) {
	accessAge := 0
	if exp, err := time.Parse(time.RFC3339, resp.ExpiresAt); err == nil {
		accessAge = int(time.Until(exp).Seconds())
	}
	if accessAge <= 0 {
		accessAge = 60 * 60
	}
	h.setCookie(c, accessTokenCookie, resp.AccessToken, accessAge)
	h.setCookie(c, refreshTokenCookie, resp.RefreshToken, int(h.cookies.RefreshTTL.Seconds()))
}

// refreshTokenFrom reads the cookie for browsers and the JSON body otherwise.
func refreshTokenFrom(c *gin.Context) string {
	if isWeb(c) {
		if v, err := c.Cookie(refreshTokenCookie); err == nil {
			return v
		}
		return ""
	}
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return ""
	}
	return req.RefreshToken
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if isWeb(c) {
		h.setTokenCookies(c, resp)
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	refreshToken := refreshTokenFrom(c)
	if refreshToken == "" {
		h.writeServiceError(c, autherrors.ErrMissingRefreshToken)
		return
	}

	resp, err := h.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if isWeb(c) {
		h.setTokenCookies(c, resp)
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), refreshTokenFrom(c)); err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setCookie(c, accessTokenCookie, "", -1)
	h.setCookie(c, refreshTokenCookie, "", -1)

	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.Me(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
