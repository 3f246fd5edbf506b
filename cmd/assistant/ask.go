package main

import (
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCmd struct {
	Text []string `arg:"" help:"Question to ask"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *AskCmd) Run(globals *Globals) error {
	response, err := globals.manager.Ask(globals.ctx, globals.Model, strings.Join(cmd.Text, " "), nil)
	if err != nil {
		return err
	}

	if globals.Debug {
		fmt.Println(response)
	} else {
		fmt.Println(response.Text())
	}
	return nil
}
