package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/van-is-code/portfolio/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check both language bundles",
	Long:  ValidateHelp,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	failed := 0
	for _, lang := range content.Languages {
		if err := content.Validate(lang); err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), err.Error())
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", lang)
	}
	if failed > 0 {
		return fmt.Errorf("%d bundle(s) invalid", failed)
	}
	return nil
}
