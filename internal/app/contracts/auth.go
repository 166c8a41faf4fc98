package contracts

import (
	"availability-service/internal/pkg/dto/requests"
	"availability-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	IssueToken(ctx context.Context, request *requests.Token) (*responses.Token, error)
}
