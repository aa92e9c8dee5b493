package main

import (
	"context"
	"fmt"

	"github.com/gregoryv/cmdline"
	"github.com/gregoryv/umd/qname"
	"github.com/gregoryv/umd/script"
)

type FindCmd struct {
	shared opts

	file    string
	pattern string
}

func (c *FindCmd) ExtraOptions(cli *cmdline.Parser) {
	c.file = cli.Option("-f, --file, $UMD_FILE").String("model.toml")
	c.pattern = cli.Option("-p, --pattern").String("#")
}

// Run prints qualified names matching the pattern, e.g. root/+/Order
func (c *FindCmd) Run(_ context.Context) error {
	if err := qname.ParsePattern(c.pattern); err != nil {
		return err
	}
	s, err := script.Load(c.file)
	if err != nil {
		return err
	}
	sess := newSession(c.shared)
	if err := sess.Run(s); err != nil {
		return err
	}
	var result []*qname.Node
	qname.Build(sess.Model).Match(&result, c.pattern)
	for _, n := range result {
		fmt.Fprintln(stdout, n.Path())
	}
	return nil
}
