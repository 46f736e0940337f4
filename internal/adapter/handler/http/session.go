package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "page_session_id"

// SessionMiddleware makes sure every request carries a page session id,
// issuing a fresh one in a cookie when the browser has none.
func SessionMiddleware(cookieName string, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || !validSessionID(sessionID) {
			sessionID = uuid.NewString()
		}

		// refresh the expiry on every request
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, sessionID, int(ttl.Seconds()), "/", "", secure, true)

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func getSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
