package ports

import (
	"context"

	"github.com/renato0307/revue/internal/domain"
)

// ExpoGateway is the subset of the EAS GraphQL API the dashboard consumes
type ExpoGateway interface {
	AppByFullName(ctx context.Context, token, fullName string) (*domain.ExpoApp, error)
	ViewBuilds(ctx context.Context, token, appID string, offset, limit int) ([]domain.Build, error)
	ViewerID(ctx context.Context, token string) (string, error)
}
