package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/config"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	candidateIDKey = "candidateID"
	claimsKey      = "claims"
	roleAdmin      = "admin"
)

var errNoSecret = errors.New("jwt secret is not configured")

// Claims are the access-token claims issued by the hosted auth backend. The
// subject is the candidate's user id.
type Claims struct {
	Role        string      `json:"role,omitempty"`
	AppMetadata AppMetadata `json:"app_metadata"`
	jwt.RegisteredClaims
}

type AppMetadata struct {
	Role string `json:"role,omitempty"`
}

func (c *Claims) IsAdmin() bool {
	return c.AppMetadata.Role == roleAdmin || c.Role == roleAdmin
}

type Authenticator struct {
	secret []byte
}

func NewAuthenticator(cfg *config.Config) *Authenticator {
	return &Authenticator{secret: []byte(cfg.Auth.JWTSecret)}
}

// Parse verifies an HS256 token and returns its claims.
func (a *Authenticator) Parse(tokenStr string) (*Claims, error) {
	if len(a.secret) == 0 {
		return nil, errNoSecret
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// candidate id from the token subject on the context.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		claims, err := a.Parse(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("RequireAuth: Rejected token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		candidateID, err := uuid.Parse(claims.Subject)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Token subject is not a user id"})
			return
		}
		ctx.Set(claimsKey, claims)
		ctx.Set(candidateIDKey, candidateID)
		ctx.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := ctx.Get(claimsKey)
		if !ok || !claims.(*Claims).IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin role required"})
			return
		}
		ctx.Next()
	}
}

// CandidateID returns the authenticated candidate's id.
func CandidateID(ctx *gin.Context) (uuid.UUID, bool) {
	v, ok := ctx.Get(candidateIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// SetCandidateID stores a candidate id on the context. Handler tests use it
// to skip token parsing.
func SetCandidateID(ctx *gin.Context, id uuid.UUID) {
	ctx.Set(candidateIDKey, id)
}
