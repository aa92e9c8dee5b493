package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gregoryv/cmdline"
	"github.com/gregoryv/mq"
	"github.com/gregoryv/umd/notify"
	"github.com/gregoryv/umd/script"
)

type RunCmd struct {
	shared opts

	file   string
	events string
	filter string
}

func (c *RunCmd) ExtraOptions(cli *cmdline.Parser) {
	c.file = cli.Option("-f, --file, $UMD_FILE").String("model.toml")
	c.events = cli.Option("-e, --events").String("")
	c.filter = cli.Option("--filter").String("#")
}

// Run replays the script and prints the resulting ownership tree
// followed by all connections. With --events each change matching
// the filter is also written to the given file as mqtt publish
// packets.
func (c *RunCmd) Run(ctx context.Context) error {
	s, err := script.Load(c.file)
	if err != nil {
		return err
	}
	sess := newSession(c.shared)
	if c.events != "" {
		router := notify.NewRouter()
		if c.shared.Debug {
			router.Log.SetOutput(os.Stderr)
		}
		fh, err := os.Create(c.events)
		if err != nil {
			return err
		}
		defer fh.Close()
		write := notify.WriteTo(fh)
		sub, err := notify.NewSubscription(c.filter,
			func(ctx context.Context, p *mq.Publish) error {
				return write(ctx, p)
			},
		)
		if err != nil {
			return err
		}
		router.AddSubscriptions(sub)
		pub := notify.NewPublisher(NewLogger(c.shared.Debug).Out(router.Route))
		sess.OnEvent = pub.OnEvent
	}
	if err := sess.Run(s); err != nil {
		return err
	}
	return printSession(stdout, sess)
}

func newSession(shared opts) *script.Session {
	sess := script.NewSession()
	if shared.Debug {
		sess.Log.SetOutput(os.Stderr)
		sess.Model.Log.SetOutput(os.Stderr)
		sess.Dropper.Log.SetOutput(os.Stderr)
	}
	return sess
}

func printSession(w io.Writer, sess *script.Session) error {
	if err := sess.WriteTree(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := sess.WriteConnections(w); err != nil {
		return err
	}
	for _, err := range sess.Rejected {
		fmt.Fprintln(w, "rejected", err)
	}
	return nil
}
