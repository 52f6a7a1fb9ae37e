package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/parley/pkg/parley/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Parley configuration",
	Long: `Manage Parley configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (PARLEY_*, OPENAI_API_KEY)
3. Config file (~/.parley/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", file)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (using defaults)\n\n")
		}

		data, err := yaml.Marshal(currentSettings(viper.GetViper()).redacted())
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = out.Write(data)
		return err
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and editable resource files",
	Long: `Create ~/.parley/config.yaml together with copies of the built-in
stop word list, issue categories and resolution phrases.
The config file points at the copies so they can be edited in place.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := configDir()
		if err != nil {
			return err
		}
		configPath := filepath.Join(dir, "config.yaml")

		if _, err := os.Stat(configPath); err == nil && !configInitForce {
			return fmt.Errorf("config file already exists: %s\nUse 'parley config show' to view it, or pass --force to recreate", configPath)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}

		resources := config.Defaults()
		names := make([]string, 0, len(resources))
		for name := range resources {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := os.WriteFile(filepath.Join(dir, name), resources[name], 0o644); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
		}

		settings := DefaultSettings()
		settings.DB = filepath.Join(dir, "history.db")
		settings.Resources = Resources{
			Stoplist:    filepath.Join(dir, "stoplist.yaml"),
			Issues:      filepath.Join(dir, "issues.yaml"),
			Resolutions: filepath.Join(dir, "resolutions.yaml"),
		}
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		header := "# Parley configuration\n# Environment variables PARLEY_<KEY> override these values.\n\n"
		if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created default configuration: %s\n", configPath)
		for _, name := range names {
			fmt.Fprintf(out, "  %s\n", filepath.Join(dir, name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite existing files")
}
