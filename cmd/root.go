package cmd

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "shredstream-tui",
	Short: "Terminal monitor for a Jito ShredStream proxy",
}
