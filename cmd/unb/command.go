package main

import "github.com/urfave/cli/v2"

func (t *unbTool) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "unb"
	app.Usage = "inspect and manage a guild economy from the command line"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "token",
			Usage: "application token, overrides UNB_TOKEN and the config file",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "API root, overrides UNB_BASE_URL and the config file",
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "named profile from the config file",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "path of the config file",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every request",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      t.showGuild,
			Name:        "guild",
			Usage:       "Show a guild's metadata and permissions",
			Flags:       []cli.Flag{guildFlag()},
			Category:    "Guild",
			Description: `Fetches the guild's name, icon, currency symbol, and the permissions the application holds in it.`,
		},
		{
			Name:     "balance",
			Usage:    "Read or change a member's balance",
			Category: "Economy",
			Subcommands: []*cli.Command{
				{
					Action: t.getBalance,
					Name:   "get",
					Usage:  "Show a member's cash, bank, total, and rank",
					Flags:  []cli.Flag{guildFlag(), userFlag()},
				},
				{
					Action:      t.updateBalance,
					Name:        "update",
					Usage:       "Adjust a member's balance by an amount",
					Flags:       append([]cli.Flag{guildFlag(), userFlag()}, changeFlags()...),
					Description: `Adds the given amounts to the member's balance; negative amounts subtract. Fields left out stay untouched.`,
				},
				{
					Action:      t.setBalance,
					Name:        "set",
					Usage:       "Overwrite a member's balance",
					Flags:       append([]cli.Flag{guildFlag(), userFlag()}, changeFlags()...),
					Description: `Sets the given amounts absolutely. Pass "inf" for an unlimited balance. Fields left out stay untouched.`,
				},
			},
		},
		{
			Action:   t.showLeaderboard,
			Name:     "leaderboard",
			Usage:    "Show the guild leaderboard",
			Category: "Economy",
			Flags: []cli.Flag{
				guildFlag(),
				&cli.StringFlag{
					Name:  "sort",
					Usage: "order by total, cash, or bank",
					Value: "total",
				},
				limitFlag(),
			},
		},
		{
			Action:   t.listItems,
			Name:     "items",
			Usage:    "List the guild's store",
			Category: "Store",
			Flags: []cli.Flag{
				guildFlag(),
				&cli.StringFlag{
					Name:  "sort",
					Usage: "order by id, price, name, stock_remaining, or expires_at",
					Value: "id",
				},
				limitFlag(),
			},
		},
		{
			Name:     "item",
			Usage:    "Inspect or delete one store item",
			Category: "Store",
			Subcommands: []*cli.Command{
				{
					Action: t.showItem,
					Name:   "show",
					Usage:  "Show one item in detail",
					Flags:  []cli.Flag{guildFlag(), itemFlag()},
				},
				{
					Action: t.deleteItem,
					Name:   "delete",
					Usage:  "Delete an item from the store",
					Flags: []cli.Flag{
						guildFlag(),
						itemFlag(),
						&cli.BoolFlag{
							Name:  "cascade",
							Usage: "also remove the item from every member's inventory",
						},
					},
				},
			},
		},
		{
			Name:     "inventory",
			Usage:    "Read or change a member's inventory",
			Category: "Inventory",
			Subcommands: []*cli.Command{
				{
					Action: t.listInventory,
					Name:   "list",
					Usage:  "List a member's inventory",
					Flags: []cli.Flag{
						guildFlag(),
						userFlag(),
						&cli.StringFlag{
							Name:  "sort",
							Usage: "order by item_id, name, or quantity",
							Value: "item_id",
						},
						limitFlag(),
					},
				},
				{
					Action: t.showQuantity,
					Name:   "quantity",
					Usage:  "Show how many of one item a member holds",
					Flags:  []cli.Flag{guildFlag(), userFlag(), itemFlag()},
				},
				{
					Action: t.addItem,
					Name:   "add",
					Usage:  "Add a store item to a member's inventory",
					Flags: []cli.Flag{
						guildFlag(),
						userFlag(),
						itemFlag(),
						quantityFlag(),
						&cli.StringFlag{
							Name:  "from-user",
							Usage: "inventory to copy the item from when it left the store",
						},
					},
				},
				{
					Action: t.removeItem,
					Name:   "remove",
					Usage:  "Remove an item from a member's inventory",
					Flags:  []cli.Flag{guildFlag(), userFlag(), itemFlag(), quantityFlag()},
				},
			},
		},
	}

	t.cli = app
}

func guildFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "guild",
		Usage:    "guild id",
		Required: true,
	}
}

func userFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "user",
		Usage:    "user id",
		Required: true,
	}
}

func itemFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "item",
		Usage:    "item id",
		Required: true,
	}
}

func limitFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "limit",
		Usage: "stop after this many entries, 0 for all",
	}
}

func quantityFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:  "quantity",
		Usage: "how many",
		Value: 1,
	}
}
