package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func patientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patients",
		Short: "List the clinic's patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := newCLIApp(ctx)
			if err != nil {
				return err
			}
			defer app.close()

			var patients []models.Patient
			err = utils.LogOperation(app.services.Log, "cli.patients", "", func() error {
				creds, err := app.services.Credentials.Credentials(ctx)
				if err != nil {
					return err
				}
				patients, err = app.services.Portal.ListPatients(ctx, creds.Token)
				return err
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tNUMBER\tEMAIL")
			for _, patient := range patients {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", patient.ID, patient.DisplayName(), patient.PatientNumber, patient.Email)
			}
			return tw.Flush()
		},
	}
}

func questionsCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the assessment questions in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := newCLIApp(ctx)
			if err != nil {
				return err
			}
			defer app.close()

			var questions []models.Question
			err = utils.LogOperation(app.services.Log, "cli.questions", "", func() error {
				questions, err = app.services.Portal.ListQuestions(ctx)
				return err
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tID\tDOMAIN\tQUESTION")
			for i, question := range questions {
				fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", i+1, question.ID, question.Domain, question.Text)
				if verbose {
					if err := question.CheckOptions(); err != nil {
						fmt.Fprintf(tw, "\t\t\t%v\n", err)
						continue
					}
					options := make([]string, len(question.Options))
					for j, option := range question.Options {
						options[j] = fmt.Sprintf("%s=%d", option, question.Scores[j])
					}
					fmt.Fprintf(tw, "\t\t\t%s\n", strings.Join(options, ", "))
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print options and their scores")
	return cmd
}
