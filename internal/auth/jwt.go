package auth

import (
	"errors"
	"time"

	"github.com/Sovanra/DesignDeck/internal/config"
	"github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type JWT struct {
	logger    *zap.SugaredLogger
	jwtSecret string
}

type JWTInterface interface {
	GenerateRefreshAndAccessToken(payload JWTPayload) (*string, *string, error)
	VerifyJwtToken(token string) (*JWTClaims, error)
}

func NewJwt(cfg config.AuthConfig, logger *zap.SugaredLogger) *JWT {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return &JWT{
		jwtSecret: cfg.JWT_SECRET,
		logger:    logger,
	}
}

// Identity payload is the user id only, everything else is resolved
// from the database per request.
type JWTPayload struct {
	ID string `json:"id"`
}

type JWTClaims struct {
	User JWTPayload `json:"user"`
	Type string     `json:"type"`
	IAT  int64      `json:"iat"`
	EXP  int64      `json:"exp"`
}

// Return refreshToken, accessToken, error
func (j JWT) GenerateRefreshAndAccessToken(payload JWTPayload) (*string, *string, error) {
	j.logger.Debugf("Generate refresh and access token with payload: %v", payload)

	// Create refresh token with 7-day expiration
	refreshClaims := jwt.MapClaims{
		"user": payload,
		"type": constant.JWT_TYPE_REFRESH,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshToken, err := refresh.SignedString([]byte(j.jwtSecret))
	if err != nil {
		return nil, nil, err
	}

	// Create access token with 24-hour expiration
	accessClaims := jwt.MapClaims{
		"user": payload,
		"type": constant.JWT_TYPE_ACCESS,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessToken, err := access.SignedString([]byte(j.jwtSecret))
	if err != nil {
		return nil, nil, err
	}

	return &refreshToken, &accessToken, nil
}

func (j JWT) VerifyJwtToken(token string) (*JWTClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.jwtSecret), nil
	})
	if err != nil {
		j.logger.Debugf("Failed to verify jwt token. Error: %v", err)
		return nil, err
	}

	if !parsedToken.Valid {
		j.logger.Debug("Jwt token is not valid")
		return nil, errors.New("jwt token is not valid")
	}

	user, ok := claims["user"].(map[string]interface{})
	if !ok {
		return nil, errors.New("invalid token: user field is missing or malformed")
	}

	id, ok := user["id"].(string)
	if !ok || id == "" {
		return nil, errors.New("invalid token: user id is missing or malformed")
	}

	tokenType, _ := claims["type"].(string)

	return &JWTClaims{
		User: JWTPayload{
			ID: id,
		},
		Type: tokenType,
		IAT:  int64(claims["iat"].(float64)),
		EXP:  int64(claims["exp"].(float64)),
	}, nil
}
