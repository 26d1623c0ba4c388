package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amonks/todo/internal/config"
	"github.com/amonks/todo/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd, configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	builder := ui.NewTableBuilder([]string{"KEY", "VALUE"}, len(config.Keys()))
	for _, key := range config.Keys() {
		value, err := a.cfg.Get(key)
		if err != nil {
			return err
		}
		builder.AddRow([]string{key, value})
	}
	fmt.Print(builder.String())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	value, err := a.cfg.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	if err := a.cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := config.Save(a.cfgPath, a.cfg); err != nil {
		return err
	}

	a.printSuccess("Set %s = %s", args[0], args[1])
	return nil
}
