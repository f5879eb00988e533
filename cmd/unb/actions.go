package main

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/urfave/cli/v2"

	"github.com/unbclub/unb-go/unb"
)

func (t *unbTool) showGuild(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	guild, err := t.app.FetchGuild(c.Context, c.String("guild"))
	if err != nil {
		return err
	}

	meta := guild.Metadata
	fmt.Printf("%s (%s)\n", meta.Name, guild.ID)
	fmt.Printf("  members:     %d\n", meta.MemberCount)
	fmt.Printf("  owner:       %s\n", meta.OwnerID)
	fmt.Printf("  symbol:      %s\n", meta.Symbol)
	fmt.Printf("  premium:     %t\n", meta.Premium)
	if meta.IconURL != "" {
		fmt.Printf("  icon:        %s\n", meta.IconURL)
	}
	fmt.Printf("  leaderboard: %s\n", guild.LeaderboardURL())

	perms, err := guild.FetchPermissions(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("  permissions: %s\n", perms)

	return nil
}

func (t *unbTool) getBalance(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	guild, err := t.guild(c)
	if err != nil {
		return err
	}

	user, err := guild.FetchUser(c.Context, c.String("user"))
	if err != nil {
		return err
	}

	printBalance(user)
	return nil
}

func (t *unbTool) updateBalance(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	user, err := t.user(c)
	if err != nil {
		return err
	}

	change, err := balanceChange(c)
	if err != nil {
		return err
	}

	snapshot, err := user.UpdateBalance(c.Context, change)
	if err != nil {
		return err
	}

	printBalance(snapshot)
	return nil
}

func (t *unbTool) setBalance(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	user, err := t.user(c)
	if err != nil {
		return err
	}

	change, err := balanceChange(c)
	if err != nil {
		return err
	}

	snapshot, err := user.SetBalance(c.Context, change)
	if err != nil {
		return err
	}

	printBalance(snapshot)
	return nil
}

func (t *unbTool) showLeaderboard(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	guild, err := t.guild(c)
	if err != nil {
		return err
	}

	users, err := guild.FetchLeaderboard(c.Context, &unb.LeaderboardOptions{
		Sort:  unb.LeaderboardSort(c.String("sort")),
		Limit: c.Int("limit"),
	})
	if err != nil {
		return err
	}

	for _, user := range users {
		fmt.Printf("%4d. %-20s cash=%-12s bank=%-12s total=%s\n",
			user.Balance.Rank, user.ID, user.Balance.Cash, user.Balance.Bank, user.Balance.Total)
	}

	return nil
}

func (t *unbTool) listItems(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	guild, err := t.guild(c)
	if err != nil {
		return err
	}

	items, err := guild.FetchItems(c.Context, &unb.ItemOptions{
		Sort:  unb.ItemSort(c.String("sort")),
		Limit: c.Int("limit"),
	})
	if err != nil {
		return err
	}

	for _, item := range items {
		fmt.Printf("%-20s %-24s price=%-10d stock=%s\n",
			item.ID, item.Name, item.Price, item.StockRemaining)
	}

	return nil
}

func (t *unbTool) showItem(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	guild, err := t.guild(c)
	if err != nil {
		return err
	}

	item, err := guild.FetchItem(c.Context, c.String("item"))
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", item.Name, item.ID)
	if item.Description != "" {
		fmt.Printf("  description:  %s\n", item.Description)
	}
	fmt.Printf("  price:        %d\n", item.Price)
	fmt.Printf("  stock:        %s\n", item.StockRemaining)
	fmt.Printf("  inventory:    %t\n", item.IsInventory)
	fmt.Printf("  usable:       %t\n", item.IsUsable)
	fmt.Printf("  sellable:     %t\n", item.IsSellable)
	if item.ExpiresAt != nil {
		fmt.Printf("  expires:      %s\n", item.ExpiresAt.Format(time.RFC3339))
	}
	if item.EmojiUnicode != "" {
		fmt.Printf("  emoji:        %s\n", item.EmojiUnicode)
	} else if item.EmojiID != 0 {
		fmt.Printf("  emoji:        %s\n", item.EmojiID)
	}
	if len(item.Requirements) > 0 {
		fmt.Printf("  requirements: %d\n", len(item.Requirements))
	}
	if len(item.Actions) > 0 {
		fmt.Printf("  actions:      %d\n", len(item.Actions))
	}

	return nil
}

func (t *unbTool) deleteItem(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	guild, err := t.guild(c)
	if err != nil {
		return err
	}

	opts := &unb.DeleteItemOptions{Cascade: c.Bool("cascade")}
	if err := guild.DeleteItem(c.Context, c.String("item"), opts); err != nil {
		return err
	}

	fmt.Printf("deleted item %s\n", c.String("item"))
	return nil
}

func (t *unbTool) listInventory(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	user, err := t.user(c)
	if err != nil {
		return err
	}

	items, err := user.FetchInventory(c.Context, &unb.InventoryOptions{
		Sort:  unb.InventorySort(c.String("sort")),
		Limit: c.Int("limit"),
	})
	if err != nil {
		return err
	}

	for _, item := range items {
		fmt.Printf("%-20s %-24s x%d\n", item.ID, item.Name, item.Quantity)
	}

	return nil
}

func (t *unbTool) showQuantity(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	user, err := t.user(c)
	if err != nil {
		return err
	}

	quantity, err := user.FetchItemQuantity(c.Context, c.String("item"))
	if err != nil {
		return err
	}

	fmt.Println(quantity)
	return nil
}

func (t *unbTool) addItem(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	user, err := t.user(c)
	if err != nil {
		return err
	}

	var opts *unb.AddItemOptions
	if from := c.String("from-user"); from != "" {
		origin, err := snowflake.ParseString(from)
		if err != nil {
			return fmt.Errorf("invalid user id %q", from)
		}
		opts = &unb.AddItemOptions{OriginInventoryUserID: origin}
	}

	item, err := user.AddItem(c.Context, c.String("item"), c.Int64("quantity"), opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s now holds %d of %s\n", user.ID, item.Quantity, item.Name)
	return nil
}

func (t *unbTool) removeItem(c *cli.Context) error {
	if err := t.setup(c); err != nil {
		return err
	}

	user, err := t.user(c)
	if err != nil {
		return err
	}

	if err := user.RemoveItem(c.Context, c.String("item"), c.Int64("quantity")); err != nil {
		return err
	}

	fmt.Printf("removed %d of item %s from %s\n", c.Int64("quantity"), c.String("item"), user.ID)
	return nil
}

func printBalance(user *unb.User) {
	fmt.Printf("user %s\n", user.ID)
	if user.Balance.Rank != 0 {
		fmt.Printf("  rank:  %d\n", user.Balance.Rank)
	}
	fmt.Printf("  cash:  %s\n", user.Balance.Cash)
	fmt.Printf("  bank:  %s\n", user.Balance.Bank)
	fmt.Printf("  total: %s\n", user.Balance.Total)
}
