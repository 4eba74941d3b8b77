package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect body catalogues",
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the active catalogue as TOML",
	Long:  "Dump prints the configured catalogue, or the embedded solar system, as a starting point for a custom one.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cat, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return err
		}
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := catalog.Save(out, cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bodies)\n", out, cat.BodyCount())
			return nil
		}
		data, err := catalog.Encode(cat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check catalogue files for invalid orbits and colors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed int
		for _, path := range args {
			cat, err := catalog.Load(path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %q with %d planets, %d bodies\n",
				path, cat.Name, len(cat.Planets), cat.BodyCount())
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d catalogues invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	catalogDumpCmd.Flags().StringP("out", "o", "", "write to file instead of stdout")
	catalogCmd.AddCommand(catalogDumpCmd, catalogValidateCmd)
}
