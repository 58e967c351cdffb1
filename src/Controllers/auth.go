package Controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"
	"github.com/DF-Mephisto/Rest-Forum/src/Middlewares"
	"github.com/DF-Mephisto/Rest-Forum/src/Services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	Information string `json:"information"`
	Avatar      []byte `json:"avatar"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

const tokenIssuer = "rest-forum"

// IssueToken signs a token carrying the user's identity and authority.
func IssueToken(user *Entities.User, lifetime time.Duration) (string, error) {
	role := ""
	if user.Role != nil {
		role = user.Role.Name
	}

	claims := &Middlewares.Claims{
		Username: user.Username,
		UserID:   user.Id,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(Middlewares.JwtKey)
}

func Register(c *gin.Context, db *sqlx.DB) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user := &Entities.User{
		Username:    req.Username,
		Email:       req.Email,
		Information: req.Information,
		Avatar:      req.Avatar,
	}

	created, err := Services.RegisterUser(db, user, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, Services.Principal{Username: created.Username}, "post", "user")
	c.JSON(http.StatusCreated, created)
}

func Login(c *gin.Context, db *sqlx.DB) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := Services.GetUserByUsername(db, creds.Username)
	if err != nil {
		var notFound *Errors.ItemNotFound
		if errors.As(err, &notFound) {
			fail(c, &Middlewares.AppError{Code: http.StatusUnauthorized, Message: "Invalid credentials"})
			return
		}
		fail(c, err)
		return
	}

	if err := user.CheckPassword(creds.Password); err != nil {
		fail(c, &Middlewares.AppError{Code: http.StatusUnauthorized, Message: "Invalid credentials"})
		return
	}

	if !user.NonLocked {
		fail(c, &Middlewares.AppError{Code: http.StatusUnauthorized, Message: "Account is locked"})
		return
	}

	accessToken, err := IssueToken(user, 24*time.Hour)
	if err != nil {
		fail(c, &Middlewares.AppError{Code: http.StatusInternalServerError, Message: "Failed to generate token"})
		return
	}

	refreshToken, err := IssueToken(user, 7*24*time.Hour)
	if err != nil {
		fail(c, &Middlewares.AppError{Code: http.StatusInternalServerError, Message: "Failed to generate refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user,
	})
}

func RefreshToken(c *gin.Context, db *sqlx.DB) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	claims := &Middlewares.Claims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return Middlewares.JwtKey, nil
	})
	if err != nil || !token.Valid {
		fail(c, &Middlewares.AppError{Code: http.StatusUnauthorized, Message: "Invalid refresh token"})
		return
	}

	// Re-read the account so a revoked role or fresh lock takes effect.
	user, err := Services.GetUser(db, claims.UserID)
	if err != nil {
		fail(c, &Middlewares.AppError{Code: http.StatusUnauthorized, Message: "Invalid refresh token"})
		return
	}
	if !user.NonLocked {
		fail(c, &Middlewares.AppError{Code: http.StatusUnauthorized, Message: "Account is locked"})
		return
	}

	accessToken, err := IssueToken(user, 24*time.Hour)
	if err != nil {
		fail(c, &Middlewares.AppError{Code: http.StatusInternalServerError, Message: "Failed to generate new access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
	})
}
