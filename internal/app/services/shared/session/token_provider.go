package session

import (
	"clinicsync-service/internal/app/config"
	"clinicsync-service/internal/app/contracts"
	"clinicsync-service/internal/pkg/constvars"
	"clinicsync-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

var (
	tokenProviderInstance contracts.SessionTokenProvider
	onceTokenProvider     sync.Once
)

// tokenProvider hands out the bearer credential for backend calls. The
// per-request token from the dashboard wins; the configured service token is
// the fallback for background refreshes, which have no originating request.
type tokenProvider struct {
	Log          *zap.Logger
	serviceToken string
}

func NewTokenProvider(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionTokenProvider {
	onceTokenProvider.Do(func() {
		tokenProviderInstance = &tokenProvider{
			Log:          logger,
			serviceToken: internalConfig.ClinicBackend.ServiceToken,
		}
	})
	return tokenProviderInstance
}

func (p *tokenProvider) BearerToken(ctx context.Context) (string, error) {
	token, _ := ctx.Value(constvars.CONTEXT_BEARER_TOKEN_KEY).(string)
	if token == "" {
		token = p.serviceToken
	}
	if token == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}

	p.logExpiry(token)
	return token, nil
}

// logExpiry surfaces how much lifetime the credential has left. The token is
// not verified here; acquisition and refresh belong to the session system,
// not this service.
func (p *tokenProvider) logExpiry(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < time.Minute {
		p.Log.Warn("bearer credential close to expiry",
			zap.Duration("remaining", remaining),
		)
	}
}
