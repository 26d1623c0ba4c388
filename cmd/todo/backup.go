package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage tasks file backups",
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backups, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runBackupList,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <timestamp>",
	Short: "Restore the tasks file from a backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupRestore,
}

var backupRestoreYes bool

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupListCmd, backupRestoreCmd)

	backupRestoreCmd.Flags().BoolVarP(&backupRestoreYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runBackupList(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	stamps, err := a.store.ListBackups()
	if err != nil {
		return err
	}

	if len(stamps) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, stamp := range stamps {
		fmt.Println(stamp)
	}
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	timestamp := args[0]
	if !backupRestoreYes {
		ok, err := confirm(fmt.Sprintf("Replace current tasks with backup %s?", timestamp))
		if err != nil {
			return err
		}
		if !ok {
			a.printInfo("Restore cancelled")
			return nil
		}
	}

	if err := a.store.RestoreBackup(timestamp); err != nil {
		return err
	}

	a.printSuccess("Restored tasks from backup %s", timestamp)
	return nil
}
