package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eyesonplants/internal/config"
	"eyesonplants/internal/errors"
	"eyesonplants/internal/handlers"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// Principal is the authenticated identity attached to a request after it
// passes the gate.
type Principal struct {
	UserID    int64
	Email     string
	Username  string
	Role      models.Role
	Authority string
	TokenID   string
}

// Decision is the outcome of gating one request. Exactly one of the three
// shapes applies: anonymous pass-through (both fields zero), authenticated
// pass-through (Principal set), or rejection (Reject set). Reason is for
// server-side logs only and never reaches the client.
type Decision struct {
	Principal *Principal
	Reject    errors.ErrorCode
	Reason    string
}

// Allowed reports whether the request may proceed to the next handler.
func (d Decision) Allowed() bool {
	return d.Reject == ""
}

func (d Decision) outcome() string {
	switch {
	case !d.Allowed():
		return "rejected"
	case d.Principal != nil:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// TokenGate is the single authentication boundary. Every request passes
// through it; public paths and pre-flight requests are let through
// unauthenticated, everything else is gated on a valid access token whose
// account still exists with the same email.
type TokenGate struct {
	tokens  services.TokenServiceInterface
	users   repositories.UserRepositoryInterface
	config  *config.JWTConfig
	metrics services.MetricsRecorderInterface
	logger  *slog.Logger
}

// NewTokenGate creates the gate with its collaborators injected
func NewTokenGate(
	tokens services.TokenServiceInterface,
	users repositories.UserRepositoryInterface,
	cfg *config.JWTConfig,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
) *TokenGate {
	return &TokenGate{
		tokens:  tokens,
		users:   users,
		config:  cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// Decide runs the gating state machine for one request. It is a pure
// decision function; writing the HTTP response is the adapter's job.
//
// The client sees the same generic rejection for every token failure kind;
// the distinguishing reason is only carried in the Decision for logging.
func (g *TokenGate) Decide(ctx context.Context, method, path, authHeader string) Decision {
	if method == http.MethodOptions || g.isPublicPath(path) {
		return Decision{}
	}

	// No bearer credentials: proceed unauthenticated. Role checks further
	// down the chain reject if the target needs a principal.
	if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return Decision{}
	}

	token, err := g.tokens.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return Decision{Reject: errors.AuthInvalidToken, Reason: "malformed_auth_header"}
	}

	claims, err := g.tokens.ValidateAccessToken(token)
	if err != nil {
		reason := "invalid_token"
		switch err {
		case services.ErrExpiredToken:
			reason = "expired_token"
		case services.ErrInvalidTokenType:
			// Refresh tokens are single-purpose: only the refresh
			// endpoint may redeem them.
			if path != g.config.RefreshPath {
				reason = "refresh_token_on_access_path"
			}
		case services.ErrInvalidIssuer:
			reason = "wrong_issuer"
		}
		return Decision{Reject: errors.AuthInvalidToken, Reason: reason}
	}

	// Tokens carry no revocation state, so the account check is the only
	// point where deletion or an email change takes effect.
	live, err := g.users.ExistsWithCredentials(ctx, claims.UserID, claims.Email)
	if err != nil {
		return Decision{Reject: errors.SystemInternalError, Reason: "account_lookup_failed"}
	}
	if !live {
		return Decision{Reject: errors.AuthInvalidToken, Reason: "account_gone_or_changed"}
	}

	return Decision{Principal: &Principal{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Username:  claims.Username,
		Role:      claims.Role,
		Authority: claims.Role.Authority(),
		TokenID:   claims.ID,
	}}
}

func (g *TokenGate) isPublicPath(path string) bool {
	for _, prefix := range g.config.PublicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Middleware adapts Decide to the Echo chain: it writes the JSON rejection
// and short-circuits, or attaches the principal and continues.
func (g *TokenGate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			decision := g.Decide(req.Context(), req.Method, req.URL.Path, req.Header.Get("Authorization"))

			g.metrics.IncrementCounter("auth_gate_decision", map[string]string{
				"outcome": decision.outcome(),
			})

			if !decision.Allowed() {
				clearPrincipal(c)
				g.logger.Warn("request rejected at gate",
					"trace_id", GetTraceID(c),
					"reason", decision.Reason,
					"path", req.URL.Path,
					"method", req.Method,
				)
				return handlers.SendError(c, decision.Reject)
			}

			if p := decision.Principal; p != nil {
				attachPrincipal(c, p)
			}

			return next(c)
		}
	}
}

func attachPrincipal(c echo.Context, p *Principal) {
	c.Set("user_id", p.UserID)
	c.Set("user_email", p.Email)
	c.Set("user_username", p.Username)
	c.Set("user_role", p.Role)
	c.Set("authority", p.Authority)
	c.Set("token_jti", p.TokenID)
	c.Set("is_admin", p.Role == models.RoleAdmin)
}

func clearPrincipal(c echo.Context) {
	c.Set("user_id", nil)
	c.Set("user_email", nil)
	c.Set("user_username", nil)
	c.Set("user_role", nil)
	c.Set("authority", nil)
	c.Set("token_jti", nil)
	c.Set("is_admin", nil)
}

// RequireAuthenticated rejects requests that carry no principal. Used on
// endpoints that any logged-in user may call.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get("user_id").(int64); !ok {
				return handlers.SendError(c, errors.AuthMissingToken)
			}
			return next(c)
		}
	}
}

// RequireRole rejects requests whose principal does not hold one of the
// given roles. Anonymous requests get the missing-token response.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role.Authority()] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authority, ok := c.Get("authority").(string)
			if !ok || authority == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			if !allowed[authority] {
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			}

			return next(c)
		}
	}
}

// RequireAdmin restricts an endpoint to administrators
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireFarmer restricts an endpoint to sellers; admins pass too
func RequireFarmer() echo.MiddlewareFunc {
	return RequireRole(models.RoleFarmer, models.RoleAdmin)
}
