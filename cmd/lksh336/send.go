package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kurochkinivan/lksh336/internal/client"
	"github.com/urfave/cli/v3"
)

func sendCmd() *cli.Command {
	return &cli.Command{
		Name:      "send",
		Usage:     "Send command lines to a running emulator and print replies",
		ArgsUsage: "LINE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "Set emulator stream address",
				Value:   "localhost:7777",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "Set how long to wait for a reply",
				Value:   time.Second,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lines := cmd.Args().Slice()
			if len(lines) == 0 {
				return errors.New("no command lines given")
			}

			c, err := client.Dial(ctx, cmd.String("addr"), cmd.Duration("timeout"))
			if err != nil {
				return err
			}
			defer c.Close()

			for _, line := range lines {
				if !isQuery(line) {
					if err := c.Send(ctx, line); err != nil {
						return err
					}
					continue
				}

				reply, err := c.Query(ctx, line)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.Root().Writer, reply)
			}

			return nil
		},
	}
}

// isQuery reports whether the verb of line asks for a reply.
func isQuery(line string) bool {
	verb, _, _ := strings.Cut(line, " ")
	return strings.HasSuffix(verb, "?")
}
