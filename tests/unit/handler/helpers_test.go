package handler_test

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"facturalo/internal/middleware"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setAuthContext fakes what AuthMiddleware puts on the context.
func setAuthContext(c *gin.Context, userID uuid.UUID) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyEmail, "autonomo@example.com")
}
