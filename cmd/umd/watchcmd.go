package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gregoryv/cmdline"
	"github.com/gregoryv/umd/script"
)

type WatchCmd struct {
	shared opts

	file     string
	debounce time.Duration
}

func (c *WatchCmd) ExtraOptions(cli *cmdline.Parser) {
	c.file = cli.Option("-f, --file, $UMD_FILE").String("model.toml")
	c.debounce = cli.Option("--debounce").Duration("100ms")
}

// Run replays the script each time the file changes. Blocks until
// the context is cancelled.
func (c *WatchCmd) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// editors often replace the file, so watch the directory
	abs, err := filepath.Abs(c.file)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	c.replay()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if e.Name != abs || e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(c.debounce)

		case <-pending:
			pending = nil
			c.replay()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Print(err)
		}
	}
}

// replay logs failures, a broken script should not stop watching
func (c *WatchCmd) replay() {
	s, err := script.Load(c.file)
	if err != nil {
		log.Print(err)
		return
	}
	sess := newSession(c.shared)
	if err := sess.Run(s); err != nil {
		log.Print(err)
		return
	}
	if err := printSession(stdout, sess); err != nil {
		log.Print(err)
	}
}
