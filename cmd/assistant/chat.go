package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	schema "github.com/rxwp5657/ia-agent-demo/pkg/schema"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	NoStream bool `name:"nostream" help:"Disable streaming output"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ChatCmd) Run(globals *Globals) error {
	// Create a conversation
	conversation := globals.manager.NewConversation()

	// Stream callback prints chunks as they arrive
	var fn func(role, text string)
	if !cmd.NoStream {
		fn = func(_, text string) {
			fmt.Print(text)
		}
	}

	// Continue looping until end of input
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(prompt("user"))
		input, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		} else if err != nil {
			return err
		}

		// Ignore empty input
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "/quit" || input == "/exit" {
			return nil
		}

		// Feed input into the model
		fmt.Print(prompt("assistant"))
		response, err := globals.manager.Chat(globals.ctx, conversation, globals.Model, input, fn)
		if err != nil {
			// The conversation cannot continue after a context cancellation
			if globals.ctx.Err() != nil {
				fmt.Println()
				return nil
			}
			return err
		}

		// Without streaming, print the full response text
		if cmd.NoStream {
			fmt.Print(response.Text())
		}
		fmt.Println()

		if response.Result == schema.ResultMaxIterations {
			fmt.Println("(stopped: too many tool calls, try rephrasing)")
		}
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// prompt renders a role prompt, in bold when stdout is a terminal
func prompt(role string) string {
	if isTerminal(os.Stdout) {
		return "\033[1m" + role + ">\033[0m "
	}
	return role + "> "
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
