package unb

import (
	"context"
	"errors"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/unbclub/unb-go/pkg/api"
)

// User is a handle on one guild member. A handle from Guild.User costs
// no request and has Balance == nil; fetches and balance mutations
// return handles carrying a snapshot. Snapshots are never updated in
// place.
type User struct {
	ID      snowflake.ID
	Guild   *Guild
	Balance *Balance
}

// Balance is a user's holdings at the moment they were read. Total is
// the platform's own cash plus bank figure, passed through untouched.
type Balance struct {
	Cash  Amount
	Bank  Amount
	Total Amount

	// Rank is the leaderboard position. The platform only reports it on
	// fetches and leaderboard listings; snapshots from balance
	// mutations leave it 0.
	Rank int64
}

func (u *User) SnowflakeID() snowflake.ID { return u.ID }

// BalanceChange describes one balance mutation. Nil fields are left out
// of the request entirely and stay untouched on the platform. Reason
// appears in the guild's economy log.
type BalanceChange struct {
	Cash   *Amount
	Bank   *Amount
	Reason string
}

func (c BalanceChange) body() api.JSON {
	body := api.JSON{}
	if c.Cash != nil {
		body["cash"] = *c.Cash
	}
	if c.Bank != nil {
		body["bank"] = *c.Bank
	}
	if c.Reason != "" {
		body["reason"] = c.Reason
	}
	return body
}

// UpdateBalance adjusts the user's balance by the given deltas;
// negative amounts subtract. It returns a fresh snapshot without Rank.
func (u *User) UpdateBalance(ctx context.Context, change BalanceChange) (*User, error) {
	resp, err := u.Guild.app.generator.New("/guilds/%s/users/%s", u.Guild.ID, u.ID).
		Header("User-Agent", u.Guild.app.userAgent).
		Body(change.body()).
		PATCH(ctx, api.TokenAuth(u.Guild.app.token))
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

	return &User{ID: u.ID, Guild: u.Guild, Balance: payload.balance()}, nil
}

// SetBalance overwrites the user's balance with absolute amounts. An
// Unlimited amount is sent as the platform's Infinity sentinel. It
// returns a fresh snapshot without Rank.
func (u *User) SetBalance(ctx context.Context, change BalanceChange) (*User, error) {
	resp, err := u.Guild.app.generator.New("/guilds/%s/users/%s", u.Guild.ID, u.ID).
		Header("User-Agent", u.Guild.app.userAgent).
		Body(change.body()).
		PUT(ctx, api.TokenAuth(u.Guild.app.token))
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

	return &User{ID: u.ID, Guild: u.Guild, Balance: payload.balance()}, nil
}

// InventorySort orders an inventory listing.
type InventorySort string

const (
	SortInventoryByItemID   InventorySort = "item_id"
	SortInventoryByName     InventorySort = "name"
	SortInventoryByQuantity InventorySort = "quantity"
)

// InventoryOptions narrows FetchInventory. The zero value lists the
// whole inventory in the platform's item id order.
type InventoryOptions struct {
	Sort InventorySort

	// Limit caps how many items are returned; 0 means all of them.
	Limit int
}

// FetchInventory retrieves the user's inventory, walking as many pages
// as the limit requires. Every returned item carries its held Quantity.
func (u *User) FetchInventory(ctx context.Context, opts *InventoryOptions) ([]*Item, error) {
	sort := SortInventoryByItemID
	limit := 0
	if opts != nil {
		if opts.Sort != "" {
			sort = opts.Sort
		}
		limit = opts.Limit
	}

	return listPages(limit, func(page, perPage int) ([]*Item, int, error) {
		resp, err := u.Guild.app.generator.New("/guilds/%s/users/%s/inventory", u.Guild.ID, u.ID).
			Header("User-Agent", u.Guild.app.userAgent).
			Query(api.Parameter{
				"sort":  string(sort),
				"limit": strconv.Itoa(perPage),
				"page":  strconv.Itoa(page),
			}).
			GET(ctx, api.TokenAuth(u.Guild.app.token))
		if err != nil {
			return nil, 0, err
		}
		if err := checkResponse(resp); err != nil {
			return nil, 0, err
		}

		var payload inventoryPage
		if err := resp.Decode(&payload); err != nil {
			return nil, 0, err
		}

		items := make([]*Item, 0, len(payload.Items))
		for _, entry := range payload.Items {
			items = append(items, entry.item(snowflake.ID(entry.ItemID), u.Guild))
		}

		return items, payload.TotalPages, nil
	})
}

// FetchItemQuantity reports how many of an item the user holds, 0 when
// they hold none. Holding none is not an error; any other failure,
// including an unknown guild or user, still is.
func (u *User) FetchItemQuantity(ctx context.Context, item Identifier) (int64, error) {
	id, err := resolveID(item)
	if err != nil {
		return 0, err
	}

	resp, err := u.Guild.app.generator.New("/guilds/%s/users/%s/inventory/%s", u.Guild.ID, u.ID, id).
		Header("User-Agent", u.Guild.app.userAgent).
		GET(ctx, api.TokenAuth(u.Guild.app.token))
	if err != nil {
		return 0, err
	}
	if err := checkResponse(resp); err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) && notFound.Message == "Unknown item" {
			return 0, nil
		}
		return 0, err
	}

	var payload struct {
		Quantity flexInt `json:"quantity"`
	}
	if err := resp.Decode(&payload); err != nil {
		return 0, err
	}

	return int64(payload.Quantity), nil
}

// AddItemOptions carries the optional knobs for AddItem.
type AddItemOptions struct {
	// OriginInventoryUserID names an inventory to copy the item from
	// when it is no longer in the store.
	OriginInventoryUserID snowflake.ID
}

// AddItem puts quantity copies of a store item into the user's
// inventory and returns the resulting inventory entry. Quantities below
// one are treated as one.
func (u *User) AddItem(ctx context.Context, item Identifier, quantity int64, opts *AddItemOptions) (*Item, error) {
	id, err := resolveID(item)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		quantity = 1
	}

	body := api.JSON{
		"item_id":  id.String(),
		"quantity": quantity,
	}
	if opts != nil && opts.OriginInventoryUserID != 0 {
		body["options"] = api.JSON{
			"inventory_user_id": opts.OriginInventoryUserID.String(),
		}
	}

	resp, err := u.Guild.app.generator.New("/guilds/%s/users/%s/inventory", u.Guild.ID, u.ID).
		Header("User-Agent", u.Guild.app.userAgent).
		Body(body).
		POST(ctx, api.TokenAuth(u.Guild.app.token))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	var payload inventoryItemPayload
	if err := resp.Decode(&payload); err != nil {
		return nil, err
	}

	return payload.item(id, u.Guild), nil
}

// RemoveItem takes quantity copies of an item out of the user's
// inventory. The requested quantity is passed through as-is; the
// platform decides how removing more than the user holds is handled.
// Quantities below one are treated as one.
func (u *User) RemoveItem(ctx context.Context, item Identifier, quantity int64) error {
	id, err := resolveID(item)
	if err != nil {
		return err
	}

	if quantity < 1 {
		quantity = 1
	}

	resp, err := u.Guild.app.generator.New("/guilds/%s/users/%s/inventory/%s", u.Guild.ID, u.ID, id).
		Header("User-Agent", u.Guild.app.userAgent).
		Query(api.Parameter{"quantity": strconv.FormatInt(quantity, 10)}).
		DELETE(ctx, api.TokenAuth(u.Guild.app.token))
	if err != nil {
		return err
	}

	return checkResponse(resp)
}
