package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery is the catch-all for panicking handlers. The response carries the
// error message, plus a stack trace outside production mode.
func Recovery(log *zap.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("error", r),
					zap.String("path", c.Request.URL.Path),
				)

				body := gin.H{"message": fmt.Sprint(r)}
				if production {
					body["stack"] = "do not panic"
				} else {
					body["stack"] = string(debug.Stack())
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}

// NotFound handles unmatched routes with the full path in the message.
func NotFound(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"message": fmt.Sprintf("404 - Not Found - %s", c.Request.URL.Path)}
		if production {
			body["stack"] = "do not panic"
		}
		c.JSON(http.StatusNotFound, body)
	}
}
