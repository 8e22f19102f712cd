package gateway

import (
	"crypto/rsa"
	"fmt"
	"strings"

	"hotel-booking/errors"

	"github.com/dgrijalva/jwt-go"
)

type accessClaims struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     interface{} `json:"role"`
	jwt.StandardClaims
}

// TokenVerifier xác thực access token RS256 bằng public key của account-service
type TokenVerifier struct {
	key *rsa.PublicKey
}

// NewTokenVerifier nhận PEM, chấp nhận cả chuỗi có "\n" escape từ biến môi trường
func NewTokenVerifier(publicKeyPEM string) (*TokenVerifier, error) {
	pem := strings.ReplaceAll(strings.TrimSpace(publicKeyPEM), `\n`, "\n")
	if pem == "" {
		return nil, fmt.Errorf("JWT_PUBLIC_KEY không được để trống")
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
	if err != nil {
		return nil, fmt.Errorf("JWT_PUBLIC_KEY không hợp lệ: %w", err)
	}
	return &TokenVerifier{key: key}, nil
}

// Verify kiểm tra chữ ký, hạn dùng và claim sub
func (v *TokenVerifier) Verify(tokenString string) (User, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodRS256 {
			return nil, fmt.Errorf("thuật toán ký không được hỗ trợ: %v", token.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return User{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	if claims.Subject == "" {
		return User{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token thiếu thông tin user", nil)
	}

	user := User{
		ID:       claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
	}
	if claims.Role != nil {
		user.Role = fmt.Sprint(claims.Role)
	}
	return user, nil
}
