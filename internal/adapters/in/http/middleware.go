package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// principalKey is the echo context key the authenticated principal lives under.
const principalKey = "wroom.principal"

// tokenClaims is the signed payload of a bearer token.
type tokenClaims struct {
	Sub          string `json:"sub"`
	Role         string `json:"role"`
	RestaurantID string `json:"restaurantId,omitempty"`
}

// TokenCodec signs and verifies the bearer tokens issued at sign-in.
// A token is base64url(claims JSON) + "." + base64url(HMAC-SHA256 of the
// claims part); there is no expiry claim, revocation happens by blocking
// the account.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec creates a codec with the given signing secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Issue produces a signed token for the given principal.
func (c *TokenCodec) Issue(principal user.Principal) (string, error) {
	claims := tokenClaims{
		Sub:  principal.ID().String(),
		Role: principal.Role().String(),
	}
	if restaurantID := principal.RestaurantID(); restaurantID != nil {
		claims.RestaurantID = restaurantID.String()
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + c.sign(encoded), nil
}

// Decode verifies the signature and reconstructs the principal.
func (c *TokenCodec) Decode(token string) (user.Principal, error) {
	encoded, signature, found := strings.Cut(token, ".")
	if !found || !hmac.Equal([]byte(c.sign(encoded)), []byte(signature)) {
		return user.Principal{}, echo.ErrUnauthorized
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return user.Principal{}, echo.ErrUnauthorized
	}

	var claims tokenClaims
	if err = json.Unmarshal(payload, &claims); err != nil {
		return user.Principal{}, echo.ErrUnauthorized
	}

	id, err := kernel.UUIDFromString(claims.Sub)
	if err != nil {
		return user.Principal{}, echo.ErrUnauthorized
	}

	role, err := user.RoleFromString(claims.Role)
	if err != nil {
		return user.Principal{}, echo.ErrUnauthorized
	}

	var restaurantID *kernel.UUID
	if claims.RestaurantID != "" {
		rid, ridErr := kernel.UUIDFromString(claims.RestaurantID)
		if ridErr != nil {
			return user.Principal{}, echo.ErrUnauthorized
		}
		restaurantID = &rid
	}

	principal, err := user.NewPrincipal(id, role, restaurantID)
	if err != nil {
		return user.Principal{}, echo.ErrUnauthorized
	}

	return principal, nil
}

func (c *TokenCodec) sign(encoded string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Authenticate returns middleware that resolves the Authorization header
// into a principal. Requests without a valid bearer token get 401.
func Authenticate(codec *TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
			}

			principal, err := codec.Decode(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid bearer token"})
			}

			ctx.Set(principalKey, principal)
			return next(ctx)
		}
	}
}

// RequireRole returns middleware that rejects principals outside the allowed
// roles before the handler runs. This is the outer gate; ownership checks on
// individual orders happen in the application layer.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, ok := ctx.Get(principalKey).(user.Principal)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
			}

			for _, role := range roles {
				if principal.Role() == role {
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusForbidden, ErrorResponse{Error: "insufficient role"})
		}
	}
}

// currentPrincipal extracts the authenticated principal set by Authenticate.
func currentPrincipal(ctx echo.Context) (user.Principal, bool) {
	principal, ok := ctx.Get(principalKey).(user.Principal)
	return principal, ok
}
