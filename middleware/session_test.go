package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/molch4nov/e-flower-shop-sub000/database"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedSession(t *testing.T, db *gorm.DB, expiresAt time.Time) models.Session {
	t.Helper()
	user := models.User{Email: uuid.NewString() + "@test.local", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	sess := models.Session{Token: uuid.NewString(), UserID: user.ID, ExpiresAt: expiresAt}
	require.NoError(t, db.Create(&sess).Error)
	return sess
}

func TestResolve(t *testing.T) {
	db := newTestDB(t)
	resolver := NewSessionResolver(db)

	valid := seedSession(t, db, time.Now().Add(time.Hour))
	expired := seedSession(t, db, time.Now().Add(-time.Minute))

	t.Run("valid token", func(t *testing.T) {
		ctx, ok := resolver.Resolve(context.Background(), valid.Token)
		require.True(t, ok)
		assert.Equal(t, valid.UserID, ctx.UserID)

		// Activity tracking is best-effort, but on the happy path it lands.
		var reloaded models.Session
		require.NoError(t, db.First(&reloaded, "token = ?", valid.Token).Error)
		assert.WithinDuration(t, time.Now(), reloaded.LastSeenAt, time.Minute)
	})

	t.Run("expired token", func(t *testing.T) {
		_, ok := resolver.Resolve(context.Background(), expired.Token)
		assert.False(t, ok)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, ok := resolver.Resolve(context.Background(), uuid.NewString())
		assert.False(t, ok)
	})
}

func TestRequireUser(t *testing.T) {
	db := newTestDB(t)
	resolver := NewSessionResolver(db)
	sess := seedSession(t, db, time.Now().Add(time.Hour))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireUser(resolver), func(c *gin.Context) {
		id, ok := UserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})

	t.Run("with cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.Token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("without cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("with bogus cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "nope"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
