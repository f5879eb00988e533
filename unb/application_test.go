package unb

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
)

// testToken builds an unsigned token whose app_id claim the library can
// read, shaped like the ones the platform issues.
func testToken(appID string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	claims := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"app_id":%q}`, appID)))
	return header + "." + claims + ".signature"
}

// testApp points a fresh Application at an httptest server that is torn
// down with the test.
func testApp(t *testing.T, handler http.Handler) *Application {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	app, err := New(testToken("905907496520871987"), WithBaseURL(server.URL))
	require.NoError(t, err)
	return app
}

func TestNewRequiresToken(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestNewReadsApplicationID(t *testing.T) {
	app, err := New(testToken("905907496520871987"))
	require.NoError(t, err)
	require.Equal(t, snowflake.ID(905907496520871987), app.ID)
}

func TestNewReadsNumericApplicationID(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))
	claims := base64.RawURLEncoding.EncodeToString([]byte(`{"app_id":12345}`))

	app, err := New(header + "." + claims + ".signature")
	require.NoError(t, err)
	require.Equal(t, snowflake.ID(12345), app.ID)
}

func TestNewToleratesOpaqueToken(t *testing.T) {
	// The platform is the authority on token validity, so a token whose
	// claims cannot be read still builds an Application.
	app, err := New("not-a-jwt-at-all")
	require.NoError(t, err)
	require.Equal(t, snowflake.ID(0), app.ID)
}

func TestGuildHandleIsOffline(t *testing.T) {
	app, err := New(testToken("1"))
	require.NoError(t, err)

	guild, err := app.Guild("244234418007441408")
	require.NoError(t, err)
	require.Equal(t, snowflake.ID(244234418007441408), guild.ID)
	require.Nil(t, guild.Metadata)
	require.Nil(t, guild.Owner())
}

func TestGuildRejectsBadIdentifier(t *testing.T) {
	app, err := New(testToken("1"))
	require.NoError(t, err)

	_, err = app.Guild(struct{}{})
	var identErr *IdentifierError
	require.ErrorAs(t, err, &identErr)
}

func TestFetchGuild(t *testing.T) {
	var gotPath, gotAuth, gotAgent string
	app := testApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, `{
			"id": "244234418007441408",
			"name": "Yet Another Gaming Guild",
			"icon": "d41d8cd98f00b204e9800998ecf8427e",
			"owner_id": "261096121059045376",
			"member_count": 846,
			"symbol": "$",
			"premium": true,
			"vanity_code": "yagg"
		}`)
	}))

	guild, err := app.FetchGuild(context.Background(), "244234418007441408")
	require.NoError(t, err)
	require.Equal(t, "/guilds/244234418007441408", gotPath)
	require.Equal(t, app.token, gotAuth)
	require.Equal(t, defaultUserAgent, gotAgent)

	require.Equal(t, snowflake.ID(244234418007441408), guild.ID)
	require.NotNil(t, guild.Metadata)
	require.Equal(t, "Yet Another Gaming Guild", guild.Metadata.Name)
	require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", guild.Metadata.Icon)
	require.Equal(t,
		"https://cdn.discordapp.com/icons/244234418007441408/d41d8cd98f00b204e9800998ecf8427e.png",
		guild.Metadata.IconURL)
	require.Equal(t, int64(846), guild.Metadata.MemberCount)
	require.Equal(t, snowflake.ID(261096121059045376), guild.Metadata.OwnerID)
	require.Equal(t, "$", guild.Metadata.Symbol)
	require.True(t, guild.Metadata.Premium)
	require.Equal(t, "yagg", guild.Metadata.VanityCode)
	require.Equal(t, "https://unbelievaboat.com/leaderboard/yagg", guild.LeaderboardURL())

	owner := guild.Owner()
	require.NotNil(t, owner)
	require.Equal(t, snowflake.ID(261096121059045376), owner.ID)
	require.Nil(t, owner.Balance)
}

func TestFetchGuildIconForms(t *testing.T) {
	testcases := []struct {
		name    string
		icon    string
		wantURL string
	}{
		{"static", `"abc123"`, "https://cdn.discordapp.com/icons/99/abc123.png"},
		{"animated", `"a_abc123"`, "https://cdn.discordapp.com/icons/99/a_abc123.gif"},
		{"missing", `null`, ""},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"name":"g","icon":%s,"owner_id":"1","member_count":1,"symbol":"$","premium":false,"vanity_code":null}`, tc.icon)
			}))

			guild, err := app.FetchGuild(context.Background(), 99)
			require.NoError(t, err)
			require.Equal(t, tc.wantURL, guild.Metadata.IconURL)
		})
	}
}

func TestFetchGuildNotFound(t *testing.T) {
	app := testApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Unknown guild"}`)
	}))

	_, err := app.FetchGuild(context.Background(), 42)
	require.True(t, IsNotFound(err))

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, http.StatusNotFound, notFound.Status)
	require.Equal(t, "Unknown guild", notFound.Message)
}

func TestFetchGuildInvalidToken(t *testing.T) {
	app := testApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Invalid authorization header"}`)
	}))

	_, err := app.FetchGuild(context.Background(), 42)
	require.True(t, IsInvalidToken(err))
	require.False(t, IsNotFound(err))
}

func TestWithUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, `{"name":"g","icon":null,"owner_id":"1","member_count":1,"symbol":"$","premium":false,"vanity_code":null}`)
	}))
	t.Cleanup(server.Close)

	app, err := New(testToken("1"), WithBaseURL(server.URL), WithUserAgent("my-bot/2.0"))
	require.NoError(t, err)

	_, err = app.FetchGuild(context.Background(), 99)
	require.NoError(t, err)
	require.Equal(t, "my-bot/2.0", gotAgent)
}
