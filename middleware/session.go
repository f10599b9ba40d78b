package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

const SessionCookieName = "session_id"

// SessionContext is what a resolved session grants to the request.
type SessionContext struct {
	UserID uint
	Token  string
}

// SessionResolver turns an opaque cookie token into a session context. The
// transport (cookie, header) is the caller's business.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*SessionContext, bool)
}

type dbSessionResolver struct {
	db *gorm.DB
}

func NewSessionResolver(db *gorm.DB) SessionResolver {
	return &dbSessionResolver{db: db}
}

func (r *dbSessionResolver) Resolve(ctx context.Context, token string) (*SessionContext, bool) {
	var sess models.Session
	err := r.db.WithContext(ctx).First(&sess, "token = ?", token).Error
	if err != nil {
		return nil, false
	}
	if time.Now().After(sess.ExpiresAt) {
		return nil, false
	}

	// Activity tracking is best-effort: a failed update must never block the
	// request.
	if err := r.db.WithContext(ctx).Model(&models.Session{}).
		Where("token = ?", token).
		Update("last_seen_at", time.Now()).Error; err != nil {
		log.Printf("session: last_seen update failed: %v", err)
	}

	return &SessionContext{UserID: sess.UserID, Token: token}, true
}

// RequireUser rejects requests without a valid session cookie and stores the
// resolved user id in the gin context.
func RequireUser(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		sess, ok := resolver.Resolve(c.Request.Context(), token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("user_id", sess.UserID)
		c.Set("session_token", sess.Token)
		c.Next()
	}
}

// UserID reads the session user set by RequireUser.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
