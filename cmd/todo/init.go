package main

import (
	"github.com/spf13/cobra"

	"github.com/amonks/todo/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and an empty tasks file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	// Load-then-save creates the file if missing and leaves existing
	// data alone.
	list, err := a.store.Load()
	if err != nil {
		return err
	}
	if err := a.store.Save(list); err != nil {
		return err
	}

	if err := config.Save(a.cfgPath, a.cfg); err != nil {
		return err
	}

	a.printSuccess("Initialized tasks file at %s", a.store.Path())
	return nil
}
