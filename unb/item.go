package unb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/unbclub/unb-go/pkg/api"
)

// RequirementType classifies what an item requirement checks.
type RequirementType int

const (
	RequirementRole         RequirementType = 1
	RequirementTotalBalance RequirementType = 2
	RequirementItem         RequirementType = 3
)

// MatchType says how a requirement's ids must match.
type MatchType int

const (
	MatchAll  MatchType = 1
	MatchAny  MatchType = 2
	MatchNone MatchType = 3
)

// ActionType classifies what happens when an item is bought or used.
type ActionType int

const (
	ActionRespond       ActionType = 1
	ActionAddRoles      ActionType = 2
	ActionRemoveRoles   ActionType = 3
	ActionAddBalance    ActionType = 4
	ActionRemoveBalance ActionType = 5
	ActionAddItems      ActionType = 6
	ActionRemoveItems   ActionType = 7
)

// ItemRequirement gates who may buy an item. IDs holds role or item
// ids depending on Type; Balance only applies to
// RequirementTotalBalance.
type ItemRequirement struct {
	Type      RequirementType
	MatchType MatchType
	IDs       []snowflake.ID
	Balance   int64
}

// ItemAction runs when an item is bought or used. Message is the raw
// response template of an ActionRespond, kept verbatim.
type ItemAction struct {
	Type    ActionType
	IDs     []snowflake.ID
	Balance int64
	Message json.RawMessage
}

// Item is one store or inventory entry. Quantity is how many the
// inventory owner holds; store listings leave it 0.
type Item struct {
	ID          snowflake.ID
	Name        string
	Description string
	Price       int64
	Quantity    int64

	// IsInventory reports whether the item goes into inventories when
	// bought.
	IsInventory bool
	IsUsable    bool
	IsSellable  bool

	// StockRemaining is Unlimited for items with unlimited stock.
	StockRemaining Amount

	// ExpiresAt is nil for items that never expire.
	ExpiresAt *time.Time

	// EmojiID is set for custom emoji, EmojiUnicode for unicode ones;
	// at most one of the two is present.
	EmojiID      snowflake.ID
	EmojiUnicode string

	Requirements []ItemRequirement
	Actions      []ItemAction

	guild *Guild
}

func (i *Item) SnowflakeID() snowflake.ID { return i.ID }

// DeleteItemOptions carries the optional knobs for item deletion.
type DeleteItemOptions struct {
	// Cascade also removes the item from every member's inventory.
	Cascade bool
}

// Delete removes the item from the guild's store.
func (i *Item) Delete(ctx context.Context, opts *DeleteItemOptions) error {
	return i.guild.DeleteItem(ctx, i.ID, opts)
}

// DeleteItem removes a store item by reference, without fetching it
// first.
func (g *Guild) DeleteItem(ctx context.Context, item Identifier, opts *DeleteItemOptions) error {
	id, err := resolveID(item)
	if err != nil {
		return err
	}

	cascade := "false"
	if opts != nil && opts.Cascade {
		cascade = "true"
	}

	resp, err := g.app.generator.New("/guilds/%s/items/%s", g.ID, id).
		Header("User-Agent", g.app.userAgent).
		Query(api.Parameter{"cascade_delete": cascade}).
		DELETE(ctx, api.TokenAuth(g.app.token))
	if err != nil {
		return err
	}

	return checkResponse(resp)
}
