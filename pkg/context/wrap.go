package context

import (
	"Foodgram/pkg/errs"
	"Foodgram/pkg/log"
	"Foodgram/pkg/response"
	stdctx "context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
	CtxUser   = "user"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 已经写过响应
			if c.Writer.Written() {
				return
			}
			WriteError(c, err)
		}
	}
}

// WriteError renders err with the status matching its kind.
func WriteError(c *gin.Context, err error) {
	var be *response.BizError
	if errors.As(err, &be) {
		c.AbortWithStatusJSON(be.Code, response.Response{
			Code: be.Code,
			Msg:  be.Msg,
		})
		return
	}

	var e *errs.Error
	if errors.As(err, &e) {
		status := StatusOf(e.Kind)
		body := response.Response{Code: status, Error: e.Code, Msg: e.Msg}
		if e.Field != "" {
			body.Data = gin.H{"field": e.Field}
		}
		if e.Kind == errs.KindInfrastructure {
			log.L.Error("infrastructure failure",
				zap.String("path", c.FullPath()),
				zap.String("op", e.Msg),
				zap.Error(e.Err),
			)
			body.Msg = "service temporarily unavailable"
			c.Header("Retry-After", "1")
		}
		c.AbortWithStatusJSON(status, body)
		return
	}

	if errors.Is(err, stdctx.Canceled) || errors.Is(err, stdctx.DeadlineExceeded) {
		log.L.Warn("request aborted", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.Response{
			Code:  http.StatusServiceUnavailable,
			Error: errs.CodeInfrastructureUnavailable,
			Msg:   "request aborted",
		})
		return
	}

	log.L.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
		Code: http.StatusInternalServerError,
		Msg:  "internal server error",
	})
}

// StatusOf maps an error kind to its http status.
func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindAlreadyExists, errs.KindInvalidInput:
		return http.StatusBadRequest
	case errs.KindPermissionDenied:
		return http.StatusForbidden
	case errs.KindUnauthenticated:
		return http.StatusUnauthorized
	case errs.KindInfrastructure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetUserID returns the authenticated user id set by the auth middleware.
func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errs.Unauthenticated("authentication credentials were not provided")
	}

	uid, ok := v.(uint64)
	if !ok || uid == 0 {
		return 0, errs.Unauthenticated("invalid user id in token")
	}

	return uid, nil
}

// OptionalUserID returns 0 for anonymous callers.
func OptionalUserID(c *gin.Context) uint64 {
	uid, err := GetUserID(c)
	if err != nil {
		return 0
	}
	return uid
}
