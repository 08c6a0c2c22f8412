package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ContextDB = "db"

// DBSession scopes the shared handle to the request: statements issued
// through Session are cancelled with the client connection. Connections go
// back to the pool after every statement.
func DBSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextDB, db.WithContext(c.Request.Context()))
		c.Next()
	}
}

func Session(c *gin.Context) *gorm.DB {
	return c.MustGet(ContextDB).(*gorm.DB)
}
