package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const subjectContextKey = "subject"

// parseOperatorJWT verifies an HS256 token signed with the shared
// secret. Expiry is enforced when the token carries one.
func parseOperatorJWT(jwtStr string, decodeToken string) (*jwt.StandardClaims, error) {
	if decodeToken == "" {
		return nil, fmt.Errorf("failed to parse token: no signing secret configured")
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(jwtStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("failed to parse token: invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("failed to parse token: missing sub")
	}

	return claims, nil
}

func (m ApiHandler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if header == "" || tokenStr == "" {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, http.StatusUnauthorized)
		return
	}

	claims, err := parseOperatorJWT(tokenStr, m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return
	}

	c.Set(subjectContextKey, claims.Subject)
	c.Next()
}
