package transport

import (
	"github.com/gin-gonic/gin"

	"chaicart-be/internal/session"
)

const (
	sessionCookie = "cafe_session"
	sessionIDKey  = "sessionID"
)

// SessionMiddleware attaches a session id to every request. A valid
// signed cookie keeps its session; anything else gets a fresh one.
func SessionMiddleware(codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sid string

		if token, err := c.Cookie(sessionCookie); err == nil {
			if id, err := codec.Verify(token); err == nil {
				sid = id
			}
		}

		if sid == "" {
			sid = session.NewSessionID()
			if token, err := codec.Issue(sid); err == nil {
				c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
			}
		}

		c.Set(sessionIDKey, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
