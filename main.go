package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/van-is-code/portfolio/internal/config"
)

// settings is shared by every command; each command binds its own flags
// before running so flags with the same name do not clash.
var settings = config.New()

var rootCmd = &cobra.Command{
	Use:          "portfolio",
	Short:        "Bilingual portfolio and CV site",
	Long:         RootHelp,
	SilenceUsage: true,
}

func bindFlags(cmd *cobra.Command, _ []string) error {
	return settings.BindPFlags(cmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
