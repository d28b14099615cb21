package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowcast-dev/flowcast/internal/calendar"
	"github.com/flowcast-dev/flowcast/internal/config"
	"github.com/flowcast-dev/flowcast/internal/engine"
	"github.com/flowcast-dev/flowcast/internal/loader"
	"github.com/flowcast-dev/flowcast/internal/model"
	"github.com/flowcast-dev/flowcast/internal/policy"
	"github.com/flowcast-dev/flowcast/internal/report"
)

func newProjectCommand() *cobra.Command {
	var detailMonth string

	cmd := &cobra.Command{
		Use:   "project [directory]",
		Short: "Run the cash-flow projection and write the report",
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

			return runProject(absDir, detailMonth)
		},
	}

	cmd.Flags().StringVar(&detailMonth, "month", "", "write a per-event detail table for this month (dd/mm/yyyy)")

	return cmd
}

func runProject(dir, detailMonth string) error {
	cfg, err := config.Load(filepath.Join(dir, "flowcast.yaml"))
	if err != nil {
		return err
	}
	if detailMonth != "" {
		cfg.Output.DetailMonth = detailMonth
	}

	horizon, err := cfg.ProjectPeriod(time.Now())
	if err != nil {
		return err
	}
	initialBalance, err := cfg.InitialBalance()
	if err != nil {
		return err
	}

	inputs, err := loadInputs(filepath.Join(dir, cfg.Inputs.Dir), cfg, horizon)
	if err != nil {
		return err
	}

	eng := engine.New(horizon, policy.DefaultTable())
	if err := eng.Run(inputs); err != nil {
		return err
	}

	outPath := filepath.Join(dir, cfg.Output.CashFlow)
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer out.Close()

	if err := report.WriteCashFlow(out, eng.Book(), initialBalance); err != nil {
		return err
	}

	detailDate, err := cfg.DetailMonthDate()
	if err != nil {
		return err
	}
	if !detailDate.IsZero() {
		detailPath := filepath.Join(dir, detailDate.Format("2006-01-02")+".csv")
		detail, err := os.Create(detailPath)
		if err != nil {
			return fmt.Errorf("creating detail report: %w", err)
		}
		defer detail.Close()

		if err := report.WriteMonthDetail(detail, eng.Book(), detailDate); err != nil {
			return err
		}
	}

	fmt.Printf("Projected %d months to %s\n", eng.Book().Len(), outPath)
	return nil
}

// loadInputs reads every input table under inputDir. The event and person
// tables are required; the mortgage schedule and per-person-type age tables
// are optional.
func loadInputs(inputDir string, cfg *config.Config, horizon calendar.Period) (engine.Inputs, error) {
	var in engine.Inputs

	eventsFile, err := os.Open(filepath.Join(inputDir, "date_events.csv"))
	if err != nil {
		return in, fmt.Errorf("opening event definitions: %w", err)
	}
	defer eventsFile.Close()
	in.DateEvents, err = loader.LoadDateEvents(eventsFile, horizon)
	if err != nil {
		return in, err
	}

	personsFile, err := os.Open(filepath.Join(inputDir, "persons.csv"))
	if err != nil {
		return in, fmt.Errorf("opening persons: %w", err)
	}
	defer personsFile.Close()
	in.Persons, err = loader.LoadPersons(personsFile)
	if err != nil {
		return in, err
	}

	mortgageFile, err := os.Open(filepath.Join(inputDir, "mortgage.csv"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No fixed payment schedule; nothing to post.
	case err != nil:
		return in, fmt.Errorf("opening mortgage schedule: %w", err)
	default:
		defer mortgageFile.Close()
		in.FixedPayments, err = loader.LoadFixedPayments(
			mortgageFile, horizon.Start,
			model.Category(cfg.Inputs.MortgageCategory), cfg.Inputs.MortgageName,
		)
		if err != nil {
			return in, err
		}
	}

	in.AgeEvents = make(map[model.PersonType][]model.AgeEvent)
	for _, pt := range []model.PersonType{model.PersonDad, model.PersonMom, model.PersonChild} {
		f, err := os.Open(filepath.Join(inputDir, string(pt)+".csv"))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return in, fmt.Errorf("opening %s age events: %w", pt, err)
		}
		events, err := loader.LoadAgeEvents(f)
		f.Close()
		if err != nil {
			return in, fmt.Errorf("%s age events: %w", pt, err)
		}
		in.AgeEvents[pt] = events
	}

	return in, nil
}
