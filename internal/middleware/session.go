package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const sessionCookie = "sb_session"

// SessionClaims is the payload of the signed session cookie: a random
// session identifier plus the bearer token used against the banking API.
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token,omitempty"`
	jwt.RegisteredClaims
}

// Session ensures every request carries a valid signed session cookie,
// minting a fresh one when the cookie is missing, expired or tampered with.
// The session id keys per-browser state in Redis; the embedded token is
// forwarded to the banking API as a bearer credential.
func Session(secret string, secure bool) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if raw, err := c.Cookie(sessionCookie); err == nil {
			claims := &SessionClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				return key, nil
			})
			if err == nil && token.Valid && claims.SessionID != "" {
				c.Set("sessionId", claims.SessionID)
				c.Set("apiToken", claims.Token)
				c.Next()
				return
			}
		}

		claims := &SessionClaims{
			SessionID: newSessionID(),
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
		if err != nil {
			logrus.WithError(err).Error("failed to sign session cookie")
			c.String(http.StatusInternalServerError, "session error")
			c.Abort()
			return
		}

		c.SetCookie(sessionCookie, signed, int(24*time.Hour/time.Second), "/", "", secure, true)
		c.Set("sessionId", claims.SessionID)
		c.Set("apiToken", "")
		c.Next()
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read on supported platforms never fails
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func SessionID(c *gin.Context) string {
	id, _ := c.Get("sessionId")
	s, _ := id.(string)
	return s
}

func APIToken(c *gin.Context) string {
	tok, _ := c.Get("apiToken")
	s, _ := tok.(string)
	return s
}
