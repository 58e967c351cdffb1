package Middlewares

import "github.com/golang-jwt/jwt/v5"

// JwtKey is the secret for signing tokens; main overrides it from config at
// startup.
var JwtKey = []byte("your_secret_key")

func SetJwtKey(secret string) {
	JwtKey = []byte(secret)
}

// Claims is the token payload: enough to rebuild the acting principal
// without a user lookup per request.
type Claims struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
