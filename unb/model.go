package unb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// flexInt decodes integers the platform sends either bare or quoted.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot parse integer %s", string(b))
	}

	*f = flexInt(n)
	return nil
}

// wireID decodes a snowflake the platform sends either bare or quoted.
// Null and absent ids decode to 0.
type wireID snowflake.ID

func (w *wireID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot parse id %s", string(b))
	}

	*w = wireID(n)
	return nil
}

type guildPayload struct {
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	MemberCount flexInt `json:"member_count"`
	OwnerID     wireID  `json:"owner_id"`
	Symbol      string  `json:"symbol"`
	Premium     bool    `json:"premium"`
	VanityCode  string  `json:"vanity_code"`
}

func (p guildPayload) metadata(id snowflake.ID) *GuildMetadata {
	meta := &GuildMetadata{
		Name:        p.Name,
		Icon:        p.Icon,
		MemberCount: int64(p.MemberCount),
		OwnerID:     snowflake.ID(p.OwnerID),
		Symbol:      p.Symbol,
		Premium:     p.Premium,
		VanityCode:  p.VanityCode,
	}

	if p.Icon != "" {
		ext := ".png"
		if strings.HasPrefix(p.Icon, "a_") {
			ext = ".gif"
		}
		meta.IconURL = "https://cdn.discordapp.com/icons/" + id.String() + "/" + p.Icon + ext
	}

	return meta
}

type balancePayload struct {
	Rank  flexInt `json:"rank"`
	Cash  Amount  `json:"cash"`
	Bank  Amount  `json:"bank"`
	Total Amount  `json:"total"`
}

func (p balancePayload) balance() *Balance {
	return &Balance{
		Cash:  p.Cash,
		Bank:  p.Bank,
		Total: p.Total,
		Rank:  int64(p.Rank),
	}
}

type leaderboardEntry struct {
	UserID wireID `json:"user_id"`
	balancePayload
}

type leaderboardPage struct {
	Users      []leaderboardEntry `json:"users"`
	TotalPages int                `json:"total_pages"`
}

type itemFields struct {
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Price          flexInt              `json:"price"`
	Quantity       flexInt              `json:"quantity"`
	IsInventory    *bool                `json:"is_inventory"`
	IsUsable       bool                 `json:"is_usable"`
	IsSellable     bool                 `json:"is_sellable"`
	StockRemaining Amount               `json:"stock_remaining"`
	UnlimitedStock bool                 `json:"unlimited_stock"`
	ExpiresAt      *time.Time           `json:"expires_at"`
	EmojiID        wireID               `json:"emoji_id"`
	Unicode        string               `json:"unicode"`
	Requirements   []requirementPayload `json:"requirements"`
	Actions        []actionPayload      `json:"actions"`
}

func (f itemFields) item(id snowflake.ID, g *Guild) *Item {
	item := &Item{
		ID:           id,
		Name:         f.Name,
		Description:  f.Description,
		Price:        int64(f.Price),
		Quantity:     int64(f.Quantity),
		IsInventory:  true,
		IsUsable:     f.IsUsable,
		IsSellable:   f.IsSellable,
		ExpiresAt:    f.ExpiresAt,
		EmojiID:      snowflake.ID(f.EmojiID),
		EmojiUnicode: f.Unicode,
		guild:        g,
	}

	// The platform omits is_inventory when it is true.
	if f.IsInventory != nil {
		item.IsInventory = *f.IsInventory
	}

	item.StockRemaining = f.StockRemaining
	if f.UnlimitedStock {
		item.StockRemaining = Amount{Infinite: true}
	}

	for _, r := range f.Requirements {
		item.Requirements = append(item.Requirements, r.requirement())
	}
	for _, a := range f.Actions {
		item.Actions = append(item.Actions, a.action())
	}

	return item
}

type storeItemPayload struct {
	ID wireID `json:"id"`
	itemFields
}

type inventoryItemPayload struct {
	ItemID wireID `json:"item_id"`
	itemFields
}

type itemPage struct {
	Items      []storeItemPayload `json:"items"`
	TotalPages int                `json:"total_pages"`
}

type inventoryPage struct {
	Items      []inventoryItemPayload `json:"items"`
	TotalPages int                    `json:"total_pages"`
}

type requirementPayload struct {
	Type      int      `json:"type"`
	MatchType int      `json:"match_type"`
	IDs       []wireID `json:"ids"`
	Balance   flexInt  `json:"balance"`
}

func (p requirementPayload) requirement() ItemRequirement {
	req := ItemRequirement{
		Type:      RequirementType(p.Type),
		MatchType: MatchType(p.MatchType),
		Balance:   int64(p.Balance),
	}
	for _, id := range p.IDs {
		req.IDs = append(req.IDs, snowflake.ID(id))
	}
	return req
}

type actionPayload struct {
	Type    int             `json:"type"`
	IDs     []wireID        `json:"ids"`
	Balance flexInt         `json:"balance"`
	Message json.RawMessage `json:"message"`
}

func (p actionPayload) action() ItemAction {
	act := ItemAction{
		Type:    ActionType(p.Type),
		Balance: int64(p.Balance),
		Message: p.Message,
	}
	for _, id := range p.IDs {
		act.IDs = append(act.IDs, snowflake.ID(id))
	}
	return act
}
