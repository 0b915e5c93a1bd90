package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
	"gorm.io/gorm/clause"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
)

// RedisClient is an optional shared Redis client used for token revocation
// and login lockout. It is nil when REDIS_ADDR is not configured; revocation
// then falls back to the revoked_tokens table.
var RedisClient *redis.Client

func init() {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return
	}
	opts := &redis.Options{Addr: addr}
	if p := os.Getenv("REDIS_PASS"); p != "" {
		opts.Password = p
	}
	rc := redis.NewClient(opts)
	if err := rc.Ping(context.Background()).Err(); err != nil {
		fmt.Printf("warning: redis ping failed: %v\n", err)
		return
	}
	RedisClient = rc
}

type contextKey string

const (
	UserIDKey    = contextKey("userID")
	UserRoleKey  = contextKey("userRole")
	RequestIDKey = contextKey("requestID")
)

// GenerateAccessToken issues a short-lived HS256 access token.
func GenerateAccessToken(subjectID uint, role string, expiry time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   subjectID,
		"role": role,
		"exp":  now.Add(expiry).Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"jti":  uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAccessToken parses the token, enforces HS256, checks expiry and the
// jti revocation store (Redis first, revoked_tokens table otherwise).
func ValidateAccessToken(tokenStr string) (jwt.MapClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	token, err := jwt.ParseWithClaims(tokenStr, jwt.MapClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method == nil || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if err != nil && strings.Contains(err.Error(), "expired") {
			return nil, errors.New("token expired")
		}
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	if jti, ok := claims["jti"].(string); ok && jti != "" {
		if RedisClient != nil {
			res, err := RedisClient.Get(context.Background(), "jwt:blacklist:"+jti).Result()
			if err == nil && res == "1" {
				return nil, errors.New("token revoked")
			}
			// redis errors are ignored: an outage must not fail auth
		} else if database.DB != nil {
			var rec models.RevokedToken
			err := database.DB.Where("id = ?", jti).First(&rec).Error
			if err == nil {
				return nil, errors.New("token revoked")
			}
			// gorm.ErrRecordNotFound and DB errors alike fall through:
			// a revocation-store outage must not fail auth
		}
	}
	return claims, nil
}

// RevokeJTI inserts a jti into the revocation store.
func RevokeJTI(jti string, ttl time.Duration) error {
	if jti == "" {
		return errors.New("empty jti")
	}
	if RedisClient != nil {
		return RedisClient.Set(context.Background(), "jwt:blacklist:"+jti, "1", ttl).Err()
	}
	if database.DB != nil {
		rec := models.RevokedToken{ID: jti, RevokedAt: time.Now()}
		return database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec).Error
	}
	return errors.New("no revocation store configured")
}

// GenerateRefreshToken persists a refresh token row and returns its opaque id.
func GenerateRefreshToken(userID uint) (string, error) {
	if database.DB == nil {
		return "", errors.New("database not initialized")
	}
	rt := models.NewRefreshToken(userID, 7)
	if err := database.DB.Create(rt).Error; err != nil {
		return "", err
	}
	return rt.ID, nil
}

// ValidateRefreshToken checks the refresh token exists, is unrevoked and unexpired.
func ValidateRefreshToken(jti string) (*models.RefreshToken, error) {
	if database.DB == nil {
		return nil, errors.New("database not initialized")
	}
	var rt models.RefreshToken
	if err := database.DB.Where("id = ?", jti).First(&rt).Error; err != nil {
		return nil, err
	}
	if rt.Revoked {
		return nil, errors.New("refresh token revoked")
	}
	if time.Now().After(rt.ExpiresAt) {
		return nil, errors.New("refresh token expired")
	}
	return &rt, nil
}

// ClaimsSubjectID extracts the numeric "id" claim regardless of JSON decoding type.
func ClaimsSubjectID(claims jwt.MapClaims) (uint, bool) {
	raw, ok := claims["id"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return uint(v), true
	case int:
		return uint(v), true
	case string:
		var n uint64
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
			return 0, false
		}
		return uint(n), true
	default:
		return 0, false
	}
}

// ExtractUserIDFromRequest parses the bearer token and returns the user id.
func ExtractUserIDFromRequest(r *http.Request) (uint, error) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return 0, errors.New("missing or invalid Authorization header")
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	claims, err := ValidateAccessToken(tokenStr)
	if err != nil {
		return 0, err
	}
	id, ok := ClaimsSubjectID(claims)
	if !ok {
		return 0, errors.New("invalid token payload")
	}
	return id, nil
}

// GetUserID reads the authenticated user id injected by the auth middleware.
func GetUserID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(UserIDKey).(uint)
	return id, ok
}
