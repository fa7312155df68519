package jwt

import (
	"errors"
	"time"

	"course-checkout/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carries the authenticated user identity. Document is the raw
// CPF/CNPJ digits; handlers derive the purchaser kind from its length.
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	Document string    `json:"document"`
	jwt.RegisteredClaims
}

// CartClaims is the signed reference to a persisted cart, returned from
// checkout and presented back when uploading a payment receipt.
type CartClaims struct {
	CartID int64 `json:"id"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey         []byte
	tokenDuration     time.Duration
	cartTokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration, cartTokenDuration time.Duration) *Service {
	return &Service{
		secretKey:         []byte(secretKey),
		tokenDuration:     tokenDuration,
		cartTokenDuration: cartTokenDuration,
	}
}

func (s *Service) GenerateToken(userID uuid.UUID, role user.Role, document string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Role:     role.String(),
		Document: document,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GenerateCartToken(cartID int64) (string, error) {
	now := time.Now()
	claims := CartClaims{
		CartID: cartID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cartTokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// DecodeCartToken verifies the signature and returns the referenced cart id.
// A token whose id claim is missing or zero is rejected.
func (s *Service) DecodeCartToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CartClaims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CartClaims)
	if !ok || !token.Valid || claims.CartID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.CartID, nil
}

func (s *Service) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return s.secretKey, nil
}
