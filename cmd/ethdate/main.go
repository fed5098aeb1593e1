package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
	"github.com/rona-hr/rona-backend-go/internal/pkg/ethiopian"
	"github.com/rona-hr/rona-backend-go/internal/pkg/sse"
	"github.com/rona-hr/rona-backend-go/internal/repository/memory"
	calendarService "github.com/rona-hr/rona-backend-go/internal/service/calendar"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	lang     string
	yearMode string
	timezone string
	asJSON   bool
	clock    calendarService.Clock
}

func main() {
	if err := NewRootCmd(calendarService.RealClock{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the ethdate command tree. clock is injected so tests can pin "now".
func NewRootCmd(clock calendarService.Clock) *cobra.Command {
	opts := &rootOptions{clock: clock}

	rootCmd := &cobra.Command{
		Use:           "ethdate",
		Short:         "Render Gregorian instants as Ethiopian calendar dates and local time",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.lang, "lang", "l", "am", "Output language (en, am, or a BCP-47 tag)")
	rootCmd.PersistentFlags().StringVar(&opts.yearMode, "year-mode", "uniform", "Ethiopian year offset (uniform, cutover)")
	rootCmd.PersistentFlags().StringVar(&opts.timezone, "tz", "Africa/Addis_Ababa", "IANA timezone of the wall clock")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print the full response as JSON")

	rootCmd.AddCommand(newConvertCmd(opts), newNowCmd(opts), newRulesCmd(opts))
	return rootCmd
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var date, clockTime string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a Gregorian date and time",
		Example: "  ethdate convert --date 2025-09-11 --time 06:00\n" +
			"  ethdate convert --date 2025-09-11 --year-mode cutover --json",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			resp, err := svc.Convert(cmd.Context(), calendar.ConvertRequest{
				Date:     date,
				Time:     clockTime,
				Language: opts.lang,
				YearMode: opts.yearMode,
				Timezone: opts.timezone,
			})
			if err != nil {
				return err
			}
			return opts.printClock(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Gregorian date, YYYY-MM-DD (required)")
	cmd.Flags().StringVarP(&clockTime, "time", "t", "", "Wall-clock time, HH:MM[:SS] (default midnight)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newNowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current date and time",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			lang, err := calendarService.ParseLanguage(opts.lang)
			if err != nil {
				return err
			}
			resp, err := svc.Now(cmd.Context(), lang)
			if err != nil {
				return err
			}
			return opts.printClock(cmd.OutOrStdout(), resp)
		},
	}
}

func newRulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the Gregorian to Ethiopian month table",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := ethiopian.Rules()
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, rules)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "GREGORIAN\tCUTOVER\tON/BEFORE\tAFTER")
			for _, rule := range rules {
				fmt.Fprintf(tw, "%d\t%d\t%s %+d\t%s %+d\n",
					rule.GregorianMonth,
					rule.CutoverDay,
					ethiopian.MonthName(rule.Before.Month), rule.Before.DayOffset,
					ethiopian.MonthName(rule.After.Month), rule.After.DayOffset,
				)
			}
			return tw.Flush()
		},
	}
}

// service builds an in-process calendar service with the CLI defaults.
func (o *rootOptions) service() (calendar.Service, error) {
	mode, err := ethiopian.ParseYearMode(o.yearMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrInvalidYearMode, err)
	}
	return calendarService.NewCalendarService(
		memory.NewCalendarPreferenceRepository(),
		sse.NewHub(),
		nil,
		o.clock,
		calendarService.Config{
			DefaultLanguage: calendar.LanguageAmharic,
			YearMode:        mode,
			Timezone:        o.timezone,
		},
	)
}

func (o *rootOptions) printClock(out io.Writer, resp calendar.ClockResponse) error {
	if o.asJSON {
		return writeJSON(out, resp)
	}
	_, err := fmt.Fprintf(out, "%s\n%s\n", resp.Date, resp.Time)
	return err
}

func writeJSON(out io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

