package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// CartSession pins every visitor to a cart session id. The id rides a cookie
// (or the X-Cart-Session header for non-browser clients) and is minted on
// first contact; the cart itself lives server-side keyed by this id.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader("X-Cart-Session")
		if sid == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				sid = cookie
			}
		}
		if sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, 24*3600, "/", "", false, true)
		}
		c.Header("X-Cart-Session", sid)
		c.Set("sessionId", sid)
		c.Next()
	}
}
