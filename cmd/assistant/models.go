package main

import (
	"fmt"
	"sort"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ListModelsCmd struct{}

type ListToolsCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*ListModelsCmd) Run(globals *Globals) error {
	models, err := globals.manager.ListModels(globals.ctx)
	if err != nil {
		return err
	}
	for _, model := range models {
		if globals.Verbose {
			fmt.Println(model)
		} else {
			fmt.Println(model.Name)
		}
	}
	return nil
}

func (*ListToolsCmd) Run(globals *Globals) error {
	tools := globals.manager.Toolkit().Tools()
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	for _, tool := range tools {
		if globals.Verbose {
			fmt.Printf("%s: %s\n", tool.Name(), tool.Description())
		} else {
			fmt.Println(tool.Name())
		}
	}
	return nil
}
