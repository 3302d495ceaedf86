package main

import "fmt"

// CdpsCmd is the "cdps" subcommand.
type CdpsCmd struct{}

// Run executes the cdps command.
func (c *CdpsCmd) Run(deps *Dependencies) error {
	cdps := deps.Catalog.CDPs()
	if len(cdps) == 0 {
		fmt.Fprintln(deps.Stdout, "No CDP platforms configured.")
		return nil
	}
	for _, cdp := range cdps {
		fmt.Fprintln(deps.Stdout, cdp)
	}
	return nil
}
