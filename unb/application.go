package unb

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v4"
	"github.com/unbclub/unb-go/pkg/api"
	"github.com/unbclub/unb-go/pkg/logger"
)

// Version of this library, reported in the default User-Agent.
const Version = "0.1.0"

// DefaultBaseURL is the public API root of the platform.
const DefaultBaseURL = "https://unbelievaboat.com/api/v1"

const defaultUserAgent = "unb-go (https://github.com/unbclub/unb-go, " + Version + ")"

// Application is the entry point of the library. It holds an
// application token issued at https://unbelievaboat.com/applications and
// builds guild handles; every operation eventually goes through it.
//
// An Application is immutable after New and safe for concurrent use.
type Application struct {
	// ID is the application id embedded in the token, or 0 when the
	// token's claims cannot be read. The platform, not this library, is
	// the authority on whether a token is valid.
	ID snowflake.ID

	token     string
	userAgent string
	baseURL   string

	generator api.Generator
}

type Option func(*settings)

type settings struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
	userAgent  string
}

// WithBaseURL points the application at a different API root, such as a
// test server.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = baseURL
	}
}

// WithHTTPClient replaces the transport, for callers that need custom
// timeouts or proxies.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *settings) {
		s.httpClient = httpClient
	}
}

// WithLogger enables request logging. The default discards everything.
func WithLogger(log logger.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithUserAgent replaces the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		s.userAgent = userAgent
	}
}

// New builds an Application around an application token. The token is
// not verified here; a bad one surfaces as InvalidTokenError on the
// first request.
func New(token string, opts ...Option) (*Application, error) {
	if token == "" {
		return nil, errors.New("unb: token is required")
	}

	s := settings{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		log:        logger.NewNopLogger(),
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return &Application{
		ID:        applicationID(token),
		token:     token,
		userAgent: s.userAgent,
		baseURL:   s.baseURL,
		generator: api.NewGenerator(s.baseURL).
			WithHTTPClient(s.httpClient).
			WithLogger(s.log),
	}, nil
}

// applicationID reads the app_id claim out of the token without
// verifying the signature. Tokens whose claims cannot be read yield 0.
func applicationID(token string) snowflake.ID {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}

	switch v := claims["app_id"].(type) {
	case string:
		id, err := snowflake.ParseString(v)
		if err != nil {
			return 0
		}
		return id
	case float64:
		return snowflake.ParseInt64(int64(v))
	}

	return 0
}

// Guild returns a guild handle without touching the network. The
// handle's Metadata is nil; every operation still works on it.
func (a *Application) Guild(guild Identifier) (*Guild, error) {
	id, err := resolveID(guild)
	if err != nil {
		return nil, err
	}

	return &Guild{ID: id, app: a}, nil
}

// FetchGuild retrieves a guild's descriptive metadata and returns a
// handle carrying that snapshot.
func (a *Application) FetchGuild(ctx context.Context, guild Identifier) (*Guild, error) {
	id, err := resolveID(guild)
	if err != nil {
		return nil, err
	}

	resp, err := a.generator.New("/guilds/%s", id).
		Header("User-Agent", a.userAgent).
		GET(ctx, api.TokenAuth(a.token))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	var payload guildPayload
	if err := resp.Decode(&payload); err != nil {
		return nil, err
	}

	return &Guild{ID: id, Metadata: payload.metadata(id), app: a}, nil
}
