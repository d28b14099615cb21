package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flowcast-dev/flowcast/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new projection project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

// inputTemplates seeds the input directory with header-only tables ready to
// be filled in.
var inputTemplates = map[string]string{
	"date_events.csv": "TYPE,CATEGORY,NAME,SUM,START,END,PERIOD,IGNORE\n",
	"persons.csv":     "NAME,TYPE,BIRTHDAY,IGNORE\n",
	"dad.csv":         "TYPE,CATEGORY,NAME,SUM,FROM,UNTIL,PERIOD,MONTH_START,IGNORE\n",
	"mom.csv":         "TYPE,CATEGORY,NAME,SUM,FROM,UNTIL,PERIOD,MONTH_START,IGNORE\n",
	"child.csv":       "TYPE,CATEGORY,NAME,SUM,FROM,UNTIL,PERIOD,MONTH_START,IGNORE\n",
	"mortgage.csv":    "SUM\n",
}

func runInit(dir string) error {
	cfg := config.Default()

	inputDir := filepath.Join(dir, cfg.Inputs.Dir)
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		return fmt.Errorf("creating input directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "flowcast.yaml")
	if _, err := os.Stat(cfgPath); err != nil {
		if err := config.Save(cfgPath, cfg); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	for name, header := range inputTemplates {
		path := filepath.Join(inputDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
			return fmt.Errorf("writing template %s: %w", name, err)
		}
	}

	fmt.Printf("Initialized flowcast project at %s\n", dir)
	return nil
}
