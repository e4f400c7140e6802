package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Aashiq1/TripGenie-sub000/errors"
	"github.com/Aashiq1/TripGenie-sub000/logger"
)

type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandler converts errors attached to the gin context into JSON
// responses. AppErrors carry their own status and taxonomy; anything
// else becomes an opaque 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*apperrors.AppError); ok {
			statusCode := appError.GetHTTPStatus()
			log.Warnw("Request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"type", string(appError.Type),
				"status", statusCode,
				"message", appError.Message,
				"detail", appError.Detail,
				"requestId", c.GetString(RequestIDKey),
			)

			resp := ErrorResponse{
				Type:    string(appError.Type),
				Message: appError.Message,
				Code:    strconv.Itoa(statusCode),
			}
			// Detail is only safe to expose for client-side problems.
			if appError.Detail != "" && (gin.IsDebugging() ||
				appError.Type == apperrors.ValidationError ||
				appError.Type == apperrors.NotFoundError ||
				appError.Type == apperrors.TripNotFoundErr ||
				appError.Type == apperrors.PlanUnavailable) {
				resp.Details = appError.Detail
			}

			c.JSON(statusCode, resp)
			return
		}

		log.Errorw("Unhandled error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
			"requestId", c.GetString(RequestIDKey),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Type:    string(apperrors.ServerError),
			Message: "Internal server error",
			Code:    strconv.Itoa(http.StatusInternalServerError),
		})
	}
}
