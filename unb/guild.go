package unb

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/math"
	"github.com/unbclub/unb-go/pkg/api"
)

// The platform caps a single listing page at this many entries.
const maxPageSize = 1000

// Permissions is the capability bitmask the platform grants an
// application within one guild.
type Permissions int64

const (
	PermissionEconomy Permissions = 1 << 0
	PermissionItems   Permissions = 1 << 1
)

// Economy reports whether balance operations are allowed.
func (p Permissions) Economy() bool { return p&PermissionEconomy != 0 }

// Items reports whether store and inventory operations are allowed.
func (p Permissions) Items() bool { return p&PermissionItems != 0 }

func (p Permissions) String() string {
	var names []string
	if p.Economy() {
		names = append(names, "economy")
	}
	if p.Items() {
		names = append(names, "items")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Guild is a handle on one guild. A handle from Application.Guild costs
// no request and has Metadata == nil; FetchGuild returns one carrying a
// point-in-time metadata snapshot. Either form performs every
// operation, and nothing is cached or refreshed behind the caller's
// back.
type Guild struct {
	ID       snowflake.ID
	Metadata *GuildMetadata

	app *Application
}

// GuildMetadata is the descriptive snapshot returned by FetchGuild.
type GuildMetadata struct {
	Name string

	// Icon is the raw icon hash; IconURL is the derived CDN address,
	// empty when the guild has no icon. Animated icons resolve to gif.
	Icon    string
	IconURL string

	MemberCount int64
	OwnerID     snowflake.ID

	// Symbol is the guild's currency symbol.
	Symbol string

	Premium    bool
	VanityCode string
}

func (g *Guild) SnowflakeID() snowflake.ID { return g.ID }

// LeaderboardURL returns the address of the guild's public web
// leaderboard. A fetched guild with a vanity code links through the
// vanity address.
func (g *Guild) LeaderboardURL() string {
	if g.Metadata != nil && g.Metadata.VanityCode != "" {
		return "https://unbelievaboat.com/leaderboard/" + g.Metadata.VanityCode
	}
	return "https://unbelievaboat.com/leaderboard/" + g.ID.String()
}

// Owner returns a handle on the guild owner, or nil before FetchGuild
// has populated Metadata.
func (g *Guild) Owner() *User {
	if g.Metadata == nil {
		return nil
	}
	return &User{ID: g.Metadata.OwnerID, Guild: g}
}

// FetchPermissions retrieves the permissions the application holds in
// this guild.
func (g *Guild) FetchPermissions(ctx context.Context) (Permissions, error) {
	resp, err := g.app.generator.New("/applications/@me/guilds/%s", g.ID).
		Header("User-Agent", g.app.userAgent).
		GET(ctx, api.TokenAuth(g.app.token))
	if err != nil {
		return 0, err
	}
	if err := checkResponse(resp); err != nil {
		return 0, err
	}

	var payload struct {
		Permissions int64 `json:"permissions"`
	}
	if err := resp.Decode(&payload); err != nil {
		return 0, err
	}

	return Permissions(payload.Permissions), nil
}

// User returns a user handle without touching the network. The handle's
// Balance is nil; balance and inventory mutations still work on it.
func (g *Guild) User(user Identifier) (*User, error) {
	id, err := resolveID(user)
	if err != nil {
		return nil, err
	}

	return &User{ID: id, Guild: g}, nil
}

// FetchUser retrieves a user's balance and leaderboard rank.
func (g *Guild) FetchUser(ctx context.Context, user Identifier) (*User, error) {
	id, err := resolveID(user)
	if err != nil {
		return nil, err
	}

	resp, err := g.app.generator.New("/guilds/%s/users/%s", g.ID, id).
		Header("User-Agent", g.app.userAgent).
		GET(ctx, api.TokenAuth(g.app.token))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	var payload balancePayload
	if err := resp.Decode(&payload); err != nil {
		return nil, err
	}

	return &User{ID: id, Guild: g, Balance: payload.balance()}, nil
}

// LeaderboardSort orders a leaderboard listing.
type LeaderboardSort string

const (
	SortByTotal LeaderboardSort = "total"
	SortByCash  LeaderboardSort = "cash"
	SortByBank  LeaderboardSort = "bank"
)

// LeaderboardOptions narrows FetchLeaderboard. The zero value lists
// every user in the platform's total-descending order.
type LeaderboardOptions struct {
	Sort LeaderboardSort

	// Limit caps how many users are returned; 0 means all of them.
	Limit int
}

// FetchLeaderboard retrieves the guild's leaderboard, highest first,
// walking as many pages as the limit requires. Users are returned in
// the platform's order.
func (g *Guild) FetchLeaderboard(ctx context.Context, opts *LeaderboardOptions) ([]*User, error) {
	sort := SortByTotal
	limit := 0
	if opts != nil {
		if opts.Sort != "" {
			sort = opts.Sort
		}
		limit = opts.Limit
	}

	return listPages(limit, func(page, perPage int) ([]*User, int, error) {
		resp, err := g.app.generator.New("/guilds/%s/users", g.ID).
			Header("User-Agent", g.app.userAgent).
			Query(api.Parameter{
				"sort":  string(sort),
				"limit": strconv.Itoa(perPage),
				"page":  strconv.Itoa(page),
			}).
			GET(ctx, api.TokenAuth(g.app.token))
		if err != nil {
			return nil, 0, err
		}
		if err := checkResponse(resp); err != nil {
			return nil, 0, err
		}

		var payload leaderboardPage
		if err := resp.Decode(&payload); err != nil {
			return nil, 0, err
		}

		users := make([]*User, 0, len(payload.Users))
		for _, entry := range payload.Users {
			users = append(users, &User{
				ID:      snowflake.ID(entry.UserID),
				Guild:   g,
				Balance: entry.balance(),
			})
		}

		return users, payload.TotalPages, nil
	})
}

// ItemSort orders a store listing.
type ItemSort string

const (
	SortItemsByID        ItemSort = "id"
	SortItemsByPrice     ItemSort = "price"
	SortItemsByName      ItemSort = "name"
	SortItemsByStock     ItemSort = "stock_remaining"
	SortItemsByExpiresAt ItemSort = "expires_at"
)

// ItemOptions narrows FetchItems. The zero value lists the whole store
// in the platform's id order.
type ItemOptions struct {
	Sort ItemSort

	// Limit caps how many items are returned; 0 means all of them.
	Limit int
}

// FetchItems retrieves the guild's store listing, walking as many pages
// as the limit requires.
func (g *Guild) FetchItems(ctx context.Context, opts *ItemOptions) ([]*Item, error) {
	sort := SortItemsByID
	limit := 0
	if opts != nil {
		if opts.Sort != "" {
			sort = opts.Sort
		}
		limit = opts.Limit
	}

	return listPages(limit, func(page, perPage int) ([]*Item, int, error) {
		resp, err := g.app.generator.New("/guilds/%s/items", g.ID).
			Header("User-Agent", g.app.userAgent).
			Query(api.Parameter{
				"sort":  string(sort),
				"limit": strconv.Itoa(perPage),
				"page":  strconv.Itoa(page),
			}).
			GET(ctx, api.TokenAuth(g.app.token))
		if err != nil {
			return nil, 0, err
		}
		if err := checkResponse(resp); err != nil {
			return nil, 0, err
		}

		var payload itemPage
		if err := resp.Decode(&payload); err != nil {
			return nil, 0, err
		}

		items := make([]*Item, 0, len(payload.Items))
		for _, entry := range payload.Items {
			items = append(items, entry.item(snowflake.ID(entry.ID), g))
		}

		return items, payload.TotalPages, nil
	})
}

// FetchItem retrieves a single store item.
func (g *Guild) FetchItem(ctx context.Context, item Identifier) (*Item, error) {
	id, err := resolveID(item)
	if err != nil {
		return nil, err
	}

	resp, err := g.app.generator.New("/guilds/%s/items/%s", g.ID, id).
		Header("User-Agent", g.app.userAgent).
		GET(ctx, api.TokenAuth(g.app.token))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	var payload itemFields
	if err := resp.Decode(&payload); err != nil {
		return nil, err
	}

	return payload.item(id, g), nil
}

// listPages drives the page protocol shared by the leaderboard, store,
// and inventory listings. fetch returns one page of elements plus the
// total page count reported by the platform.
func listPages[E any](limit int, fetch func(page, perPage int) ([]E, int, error)) ([]E, error) {
	var all []E
	for page := 1; ; page++ {
		perPage := maxPageSize
		if limit > 0 {
			perPage = math.MinInt(limit-len(all), maxPageSize)
		}

		elems, totalPages, err := fetch(page, perPage)
		if err != nil {
			return nil, err
		}

		all = append(all, elems...)
		if limit > 0 && len(all) >= limit {
			return all[:limit], nil
		}
		if page >= totalPages {
			break
		}
	}

	return all, nil
}
