package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazard-report/bot-go/utils"
)

// SignatureMiddleware authenticates webhook deliveries: the platform signs
// the raw request body with the channel secret (HMAC-SHA256, base64) and
// sends the digest in X-Line-Signature.
func SignatureMiddleware(channelSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		signature := c.GetHeader("X-Line-Signature")
		if signature == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Signature header is required"})
			c.Abort()
			return
		}

		body, err := utils.ReadBody(c.Request)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			c.Abort()
			return
		}

		mac := hmac.New(sha256.New, []byte(channelSecret))
		mac.Write([]byte(body))
		expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(signature), []byte(expected)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}
