package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"svw.info/codebreaker/internal/cipher"
	"svw.info/codebreaker/internal/domain"
	"svw.info/codebreaker/internal/generator"
	"svw.info/codebreaker/internal/schedule"
)

func newPuzzleCmd(a *app) *cobra.Command {
	var (
		date   string
		locale string
		reveal bool
	)
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Print the puzzle of a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("locale") {
				if !generator.SupportedLocale(locale) {
					return fmt.Errorf("unsupported locale %q (have %v)", locale, generator.Locales())
				}
				a.cfg.Puzzle.Locale = locale
			}
			day, err := a.day(date)
			if err != nil {
				return err
			}
			src, err := newWordSource(cmd.Context(), a.cfg, a.logger)
			if err != nil {
				return err
			}
			gen, err := newGenerator(a.cfg, src, a.logger)
			if err != nil {
				return err
			}
			p, err := gen.Generate(cmd.Context(), day)
			if err != nil {
				return err
			}
			return printPuzzle(cmd.OutOrStdout(), p, reveal)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to generate, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&locale, "locale", "", "briefing language: ko|en (overrides config)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "also print the answer, key and a decryption check")
	return cmd
}

func printPuzzle(w io.Writer, p *domain.Puzzle, reveal bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "date:\t%s (%s)\n", p.Date, time.Weekday(p.Weekday))
	fmt.Fprintf(tw, "cipher:\t%s\n", p.Type)
	fmt.Fprintf(tw, "ciphertext:\t%s\n", p.Ciphertext)
	fmt.Fprintf(tw, "length:\t%d\n", len(p.Answer))
	fmt.Fprintf(tw, "briefing:\t%s\n", p.Description)
	fmt.Fprintf(tw, "tips:\t%s\n", p.DecryptionTips)
	fmt.Fprintf(tw, "guide:\t%s\n", p.BeginnerGuide)
	if reveal {
		key := "-"
		if p.Key != nil {
			key = p.Key.String()
		}
		plain, err := cipher.Decrypt(p.Ciphertext, p.Type, p.Key)
		if err != nil {
			return fmt.Errorf("decrypt check: %w", err)
		}
		fmt.Fprintf(tw, "answer:\t%s\n", p.Answer)
		fmt.Fprintf(tw, "key:\t%s\n", key)
		fmt.Fprintf(tw, "decrypted:\t%s\n", plain)
		fmt.Fprintf(tw, "source:\t%s\n", p.WordSource)
		if plain != p.Answer {
			tw.Flush()
			return fmt.Errorf("decrypt check failed: got %s, want %s", plain, p.Answer)
		}
	}
	return tw.Flush()
}

func newScheduleCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the cipher schedule of a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := a.day(date)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "week %d (seed %d)\n", schedule.WeekNumber(day), schedule.WeeklySeed(day))
			today := schedule.Date(day)
			for _, d := range schedule.Week(day) {
				mark := ""
				if d.Date == today {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", d.Date, time.Weekday(d.Weekday).String()[:3], d.WeeklySeed, d.Type, mark)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "any day of the week, YYYY-MM-DD (default today)")
	return cmd
}
