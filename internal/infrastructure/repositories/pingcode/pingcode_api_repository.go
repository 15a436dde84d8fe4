package pingcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
	"github.com/rios0rios0/pingcode/internal/domain/repositories"
)

const (
	userAgent     = "pingcode-cli"
	jsonMimeType  = "application/json"
	tokenAuthType = "token"
	bugIssueType  = "bug"
)

// APIRepository implements repositories.APIRepository over the PingCode REST API.
type APIRepository struct {
	apiURL string
	client *http.Client
}

// NewTokenAPIRepository creates a client authenticating with the settings token.
func NewTokenAPIRepository(settings *entities.Settings) repositories.APIRepository {
	return NewAPIRepositoryWithTransport(settings, settings.Token, nil)
}

// NewAnonymousAPIRepository creates a client sending no credentials.
func NewAnonymousAPIRepository(settings *entities.Settings) repositories.APIRepository {
	return NewAPIRepositoryWithTransport(settings, "", nil)
}

// NewAPIRepositoryWithTransport creates a client on top of base, or
// http.DefaultTransport when base is nil. An empty token sends no credentials.
func NewAPIRepositoryWithTransport(
	settings *entities.Settings,
	token string,
	base http.RoundTripper,
) *APIRepository {
	transport := base
	if transport == nil {
		transport = http.DefaultTransport
	}
	if token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: token,
				TokenType:   tokenAuthType,
			}),
			Base: transport,
		}
	}

	return &APIRepository{
		apiURL: settings.APIEndpoint().String(),
		client: &http.Client{
			Transport: transport,
			Timeout:   settings.Timeout(),
		},
	}
}

// APIURL returns the base URL every request is sent to.
func (r *APIRepository) APIURL() string { return r.apiURL }

func (r *APIRepository) CurrentUser(ctx context.Context) (*entities.User, error) {
	var user entities.User
	if _, err := r.execute(ctx, apiRequest{
		method:    http.MethodGet,
		path:      "/user",
		operation: "get profile information",
	}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *APIRepository) GetRepository(
	ctx context.Context,
	path entities.RepositoryPath,
) (*entities.Repository, error) {
	var repository entities.Repository
	found, err := r.execute(ctx, apiRequest{
		method:    http.MethodGet,
		path:      repositoryURLPath(path),
		operation: "get repository",
		optional:  true,
	}, &repository)
	if err != nil || !found {
		return nil, err
	}
	return &repository, nil
}

func (r *APIRepository) CreateBug(
	ctx context.Context,
	path entities.RepositoryPath,
	input entities.BugInput,
) (*entities.Bug, error) {
	var bug entities.Bug
	if _, err := r.execute(ctx, apiRequest{
		method: http.MethodPost,
		path:   repositoryURLPath(path) + "/issues",
		body: map[string]string{
			"title":      input.Title,
			"body":       input.Body,
			"issue_type": bugIssueType,
		},
		operation: "create bug",
	}, &bug); err != nil {
		return nil, err
	}
	return &bug, nil
}

// apiRequest describes one call. Optional GETs report a 404 as "not found"
// instead of failing.
type apiRequest struct {
	method    string
	path      string
	body      any
	operation string
	optional  bool
}

// execute runs the request and decodes the response into result. Confusing
// failures get "Can't <operation>" as details.
func (r *APIRepository) execute(ctx context.Context, req apiRequest, result any) (bool, error) {
	found, err := r.do(ctx, req, result)
	if err == nil || req.operation == "" {
		return found, err
	}

	details := "Can't " + req.operation
	switch failure := err.(type) {
	case *entities.StatusCodeError:
		logger.Warnf("%s: %v", details, failure)
		return false, failure.WithDetails(details)
	case *entities.ConfusingError:
		logger.Warnf("%s: %v", details, failure)
		return false, failure.WithDetails(details)
	default:
		return false, err
	}
}

func (r *APIRepository) do(ctx context.Context, req apiRequest, result any) (bool, error) {
	var reqBody io.Reader
	if req.body != nil {
		jsonBody, err := json.Marshal(req.body)
		if err != nil {
			return false, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	endpoint := r.apiURL + req.path
	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, reqBody)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", jsonMimeType)
	httpReq.Header.Set("User-Agent", userAgent)
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", jsonMimeType)
	}

	logger.Debugf("Request: %s %s (%s): connecting", req.method, endpoint, req.operation)
	resp, err := r.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return false, entities.NewOperationCanceledError(err)
		}
		return false, fmt.Errorf("request %s %s failed: %w", req.method, endpoint, err)
	}
	defer resp.Body.Close()

	if req.optional && resp.StatusCode == http.StatusNotFound {
		logger.Debugf("Request: %s %s: not found", req.method, endpoint)
		return false, nil
	}
	if checkErr := checkResponse(httpReq, resp); checkErr != nil {
		return false, checkErr
	}

	if result == nil {
		return true, nil
	}
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return false, entities.NewOperationCanceledError(err)
		}
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	if unmarshalErr := json.Unmarshal(respBody, result); unmarshalErr != nil {
		return false, entities.NewParseError(
			fmt.Sprintf("failed to parse %s %s response", req.method, req.path), unmarshalErr,
		)
	}
	logger.Debugf("Request: %s %s: result extracted", req.method, endpoint)
	return true, nil
}

func repositoryURLPath(path entities.RepositoryPath) string {
	return "/repos/" + url.PathEscape(path.Owner) + "/" + url.PathEscape(path.Repository)
}
