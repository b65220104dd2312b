package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/oauth2"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
)

// DefaultEndpoint is the public EAS GraphQL endpoint
const DefaultEndpoint = "https://api.expo.dev/graphql"

const sourceName = "EAS"

const appByFullNameQuery = `query AppByFullName($fullName: String!) {
  app {
    byFullName(fullName: $fullName) {
      id
      slug
      ownerAccount {
        name
      }
    }
  }
}`

const viewBuildsQuery = `query ViewBuilds($appId: String!, $offset: Int!, $limit: Int!) {
  app {
    byId(appId: $appId) {
      builds(offset: $offset, limit: $limit) {
        id
        status
        platform
        buildProfile
        channel
        distribution
        gitCommitHash
        appVersion
        appBuildVersion
        createdAt
        completedAt
        artifacts {
          buildUrl
        }
        error {
          message
        }
        initiatingActor {
          __typename
          id
          displayName
        }
      }
    }
  }
}`

const viewerQuery = `query Viewer {
  viewer {
    id
  }
}`

// Gateway implements ports.ExpoGateway against the EAS GraphQL API
type Gateway struct {
	endpoint string

	mu          sync.Mutex
	client      *http.Client
	clientToken string
}

// Verify interface compliance at compile time
var _ ports.ExpoGateway = (*Gateway)(nil)

// NewGateway creates a Gateway. An empty endpoint uses DefaultEndpoint.
func NewGateway(endpoint string) *Gateway {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Gateway{endpoint: endpoint}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// AppByFullName resolves "@account/project" to an app
func (g *Gateway) AppByFullName(ctx context.Context, token, fullName string) (*domain.ExpoApp, error) {
	var data struct {
		App struct {
			ByFullName *struct {
				ID           string `json:"id"`
				OwnerAccount struct {
					Name string `json:"name"`
				} `json:"ownerAccount"`
				Slug string `json:"slug"`
			} `json:"byFullName"`
		} `json:"app"`
	}

	if err := g.query(ctx, token, appByFullNameQuery, map[string]any{"fullName": fullName}, &data); err != nil {
		return nil, err
	}

	app := data.App.ByFullName
	if app == nil || app.ID == "" {
		return nil, &domain.FetchError{
			Err:     domain.ErrAppNotFound,
			Message: fmt.Sprintf("EAS project %s not found", fullName),
			Source:  sourceName,
		}
	}

	return &domain.ExpoApp{
		AccountName: app.OwnerAccount.Name,
		ID:          app.ID,
		Slug:        app.Slug,
	}, nil
}

// ViewBuilds lists builds of an app, newest first
func (g *Gateway) ViewBuilds(ctx context.Context, token, appID string, offset, limit int) ([]domain.Build, error) {
	var data struct {
		App struct {
			ByID struct {
				Builds []domain.Build `json:"builds"`
			} `json:"byId"`
		} `json:"app"`
	}

	vars := map[string]any{
		"appId":  appID,
		"limit":  limit,
		"offset": offset,
	}
	if err := g.query(ctx, token, viewBuildsQuery, vars, &data); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Fetched builds", "app_id", appID, "count", len(data.App.ByID.Builds))
	return data.App.ByID.Builds, nil
}

// ViewerID returns the id of the account the token belongs to
func (g *Gateway) ViewerID(ctx context.Context, token string) (string, error) {
	var data struct {
		Viewer *struct {
			ID string `json:"id"`
		} `json:"viewer"`
	}

	if err := g.query(ctx, token, viewerQuery, map[string]any{}, &data); err != nil {
		return "", err
	}
	if data.Viewer == nil || data.Viewer.ID == "" {
		return "", &domain.FetchError{Message: "EAS token has no viewer", Source: sourceName}
	}
	return data.Viewer.ID, nil
}

func (g *Gateway) httpClient(token string) *http.Client {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil && g.clientToken == token {
		return g.client
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	g.client = oauth2.NewClient(context.Background(), ts)
	g.clientToken = token
	return g.client
}

func (g *Gateway) query(ctx context.Context, token, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode GraphQL request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build GraphQL request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient(token).Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("EAS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &domain.FetchError{Source: sourceName, StatusCode: resp.StatusCode}
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("failed to decode GraphQL response: %w", err)
	}

	// Only the first error is reported
	if len(envelope.Errors) > 0 {
		return &domain.FetchError{
			Message:    "EAS GraphQL error: " + envelope.Errors[0].Message,
			Source:     sourceName,
			StatusCode: resp.StatusCode,
		}
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return &domain.FetchError{
			Message:    "EAS GraphQL error: empty response",
			Source:     sourceName,
			StatusCode: resp.StatusCode,
		}
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode GraphQL data: %w", err)
	}
	return nil
}
