// Command umd replays diagram editing scripts
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/gregoryv/cmdline"
)

func main() {
	log.SetFlags(0)

	var (
		cli    = cmdline.NewBasicParser()
		shared = opts{
			Debug:        cli.Flag("-d, --debug"),
			LogTimestamp: cli.Flag("-T, --log-timestamp"),
		}

		commands = cli.Group("Commands", "COMMAND")
		_        = commands.New("run", &RunCmd{shared: shared})
		_        = commands.New("find", &FindCmd{shared: shared})
		_        = commands.New("watch", &WatchCmd{shared: shared})
		cmd      = commands.Selected()
	)
	u := cli.Usage()
	u.Preface("umd replays diagram editing scripts on a model")
	cli.Parse()

	if shared.LogTimestamp {
		log.SetFlags(log.LstdFlags)
	}
	if err := runCommand(cmd.(Command)); err != nil {
		log.Fatal(err)
	}
}

// opts are the global options passed on to each command.
type opts struct {
	Debug        bool
	LogTimestamp bool
}

// runCommand runs cmd until it returns or the process is
// interrupted. Interrupting is not an error.
func runCommand(cmd Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return ignoreCanceled(cmd.Run(ctx))
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type Command interface {
	Run(context.Context) error
}
