package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sitesettings/internal/config"
	"sitesettings/internal/logging"
	"sitesettings/internal/override"
	"sitesettings/internal/settings"
)

func newFixtureCommand(ctx *commandContext) *cobra.Command {
	fixtureCmd := &cobra.Command{
		Use:   "fixture",
		Short: "Sectioned defaults fixture utilities",
	}
	fixtureCmd.AddCommand(newFixtureInitCommand(ctx))
	fixtureCmd.AddCommand(newFixtureValidateCommand(ctx))
	return fixtureCmd
}

func newFixtureInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var formatFlag string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the sample sectioned defaults fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			target, err := fixtureTarget(cfg, targetPath, formatFlag)
			if err != nil {
				return err
			}
			format, err := settings.FormatForPath(target)
			if err != nil {
				return err
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("fixture already exists at %s (use --overwrite to replace it)", target)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("check fixture path: %w", err)
				}
			}

			sample, err := settings.SampleFixture(format)
			if err != nil {
				return err
			}
			if err := settings.WriteFixture(target, []byte(sample)); err != nil {
				return err
			}

			ctx.componentLogger("fixture").Info("fixture written", logging.FieldPath, target)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample fixture to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the fixture (defaults to the configured fixture path)")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Fixture encoding: toml or yaml")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing fixture")
	return cmd
}

func newFixtureValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Load and validate a sectioned defaults fixture",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []override.BuilderOption
			if len(args) == 1 {
				source, err := absoluteFixtureRef(args[0])
				if err != nil {
					return err
				}
				opts = append(opts, override.WithSourcePath(source))
			}
			o, err := ctx.overrides(opts...)
			if err != nil {
				return err
			}

			path, err := o.Builder().SourcePath()
			if err != nil {
				return err
			}
			if _, err := o.Builder().DefaultSectioned(); err != nil {
				ctx.componentLogger("fixture").Warn("fixture rejected", logging.FieldPath, path, logging.Error(err))
				return fmt.Errorf("fixture invalid: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fixture path: %s\n", path)
			fmt.Fprintf(out, "Section: %s\n", o.Builder().Section())
			fmt.Fprintln(out, "Fixture valid")
			return nil
		},
	}
}

// fixtureTarget picks the init destination. Without --path the configured
// fixture is used, with its extension swapped to match --format.
func fixtureTarget(cfg *config.Config, pathFlag, formatFlag string) (string, error) {
	format := settings.Format(strings.ToLower(strings.TrimSpace(formatFlag)))
	if format != "" && format != settings.FormatTOML && format != settings.FormatYAML {
		return "", fmt.Errorf("--format: unsupported value %q", formatFlag)
	}

	pathFlag = strings.TrimSpace(pathFlag)
	if pathFlag != "" {
		target, err := absoluteFixtureRef(pathFlag)
		if err != nil {
			return "", err
		}
		if target, err = cfg.Resolver().ResolveFile(target); err != nil {
			return "", err
		}
		if format != "" {
			got, err := settings.FormatForPath(target)
			if err != nil {
				return "", err
			}
			if got != format {
				return "", fmt.Errorf("fixture path %s does not match format %s", target, format)
			}
		}
		return target, nil
	}

	target, err := cfg.Resolver().ResolveFile(cfg.Paths.FixturePath)
	if err != nil {
		return "", err
	}
	if format != "" {
		target = strings.TrimSuffix(target, filepath.Ext(target)) + "." + string(format)
	}
	return target, nil
}

// absoluteFixtureRef keeps content-relative "~/" references and makes other
// relative paths absolute against the working directory.
func absoluteFixtureRef(ref string) (string, error) {
	if strings.HasPrefix(ref, "~/") || filepath.IsAbs(ref) {
		return ref, nil
	}
	abs, err := filepath.Abs(ref)
	if err != nil {
		return "", fmt.Errorf("resolve fixture path: %w", err)
	}
	return abs, nil
}
