package auth

import (
	"availability-service/internal/app/config"
	"availability-service/internal/pkg/constvars"
	"availability-service/internal/pkg/dto/requests"
	"availability-service/internal/pkg/dto/responses"
	"availability-service/internal/pkg/exceptions"
	"availability-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type AuthUsecase struct {
	config *config.InternalConfig
	logger *zap.Logger
}

func NewAuthUsecase(internalConfig *config.InternalConfig, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{
		config: internalConfig,
		logger: logger,
	}
}

// IssueToken exchanges the configured client credentials for a bearer JWT.
// The secret is only ever compared against its bcrypt hash.
func (u *AuthUsecase) IssueToken(ctx context.Context, request *requests.Token) (*responses.Token, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	log := u.logger.With(zap.String(constvars.LoggingRequestIDKey, requestID))

	if request.ClientID != u.config.Auth.ClientID ||
		!utils.CheckSecretHash(request.ClientSecret, u.config.Auth.ClientSecretHash) {
		log.Warn("token request with invalid client credentials",
			zap.String(constvars.LoggingClientIDKey, request.ClientID))
		return nil, exceptions.ErrInvalidClientCredentials(nil)
	}

	token, err := utils.GenerateClientJWT(request.ClientID, u.config.JWT.Secret, u.config.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	log.Info("access token issued",
		zap.String(constvars.LoggingClientIDKey, request.ClientID))

	return &responses.Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   u.config.JWT.ExpTimeInHour * 3600,
	}, nil
}
