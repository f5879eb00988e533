package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/unbclub/unb-go/config"
	"github.com/unbclub/unb-go/pkg/logger"
	"github.com/unbclub/unb-go/unb"
)

type unbTool struct {
	cli *cli.App
	app *unb.Application
	log logger.Logger
}

// setup resolves configuration and builds the Application. Every
// command calls it first, so plain help invocations never demand a
// token.
func (t *unbTool) setup(c *cli.Context) error {
	cfg, err := config.Load(config.LoadOptions{
		Token:   c.String("token"),
		BaseURL: c.String("base-url"),
		Profile: c.String("profile"),
		Path:    c.String("config"),
	})
	if err != nil {
		return err
	}

	level := logger.WARNING
	if c.Bool("verbose") {
		level = logger.DEBUG
	}
	t.log = logger.NewLogger(level)

	t.app, err = unb.New(cfg.Token,
		unb.WithBaseURL(cfg.BaseURL),
		unb.WithLogger(t.log),
	)
	return err
}

func (t *unbTool) guild(c *cli.Context) (*unb.Guild, error) {
	return t.app.Guild(c.String("guild"))
}

func (t *unbTool) user(c *cli.Context) (*unb.User, error) {
	guild, err := t.guild(c)
	if err != nil {
		return nil, err
	}
	return guild.User(c.String("user"))
}

// parseAmount turns a flag value into a balance amount. Empty means
// "leave the field alone"; inf and infinity mean unlimited.
func parseAmount(s string) (*unb.Amount, error) {
	if s == "" {
		return nil, nil
	}

	switch strings.ToLower(s) {
	case "inf", "infinity":
		return unb.Unlimited(), nil
	case "-inf", "-infinity":
		a := unb.Unlimited()
		a.Value = -1
		return a, nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return unb.AmountOf(v), nil
}

func changeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "cash",
			Usage: "cash amount, a number or inf",
		},
		&cli.StringFlag{
			Name:  "bank",
			Usage: "bank amount, a number or inf",
		},
		&cli.StringFlag{
			Name:  "reason",
			Usage: "note for the guild's economy log",
		},
	}
}

func balanceChange(c *cli.Context) (unb.BalanceChange, error) {
	cash, err := parseAmount(c.String("cash"))
	if err != nil {
		return unb.BalanceChange{}, err
	}
	bank, err := parseAmount(c.String("bank"))
	if err != nil {
		return unb.BalanceChange{}, err
	}
	if cash == nil && bank == nil {
		return unb.BalanceChange{}, errors.New("nothing to change, pass --cash and/or --bank")
	}

	return unb.BalanceChange{Cash: cash, Bank: bank, Reason: c.String("reason")}, nil
}
