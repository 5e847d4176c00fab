package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"wellness-wizard/internal/app/services/core/capture"
	"wellness-wizard/internal/app/services/core/results"
	"wellness-wizard/internal/app/services/core/wizard"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"
	"wellness-wizard/internal/pkg/utils"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const optionBack = -1

var errCaptureCancelled = errors.New("capture cancelled")

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Walk one patient through the assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := newCLIApp(ctx)
			if err != nil {
				return err
			}
			defer app.close()

			session := wizard.NewController(utils.GenerateWizardID(), app.services.Dependencies())
			defer session.Abandon()

			t := &terminal{
				session:     session,
				constraints: app.services.Constraints,
				log:         app.services.Log,
				out:         cmd.OutOrStdout(),
			}
			err = t.run(ctx)
			if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
				fmt.Fprintln(t.out, "Assessment abandoned.")
				return nil
			}
			return err
		},
	}
}

// terminal drives a wizard.Controller with huh forms.
type terminal struct {
	session     *wizard.Controller
	constraints capture.Constraints
	log         *zap.Logger
	out         io.Writer
}

func (t *terminal) run(ctx context.Context) error {
	if err := t.session.Load(ctx); err != nil {
		return err
	}
	if err := t.selectPatient(ctx); err != nil {
		return err
	}
	if err := t.answerQuestions(ctx); err != nil {
		return err
	}
	if err := t.iridology(ctx); err != nil {
		return err
	}
	if err := t.complete(ctx); err != nil {
		return err
	}
	return t.showResults(ctx)
}

func (t *terminal) selectPatient(ctx context.Context) error {
	patients := t.session.Patients()
	if len(patients) == 0 {
		return exceptions.ErrPatientRequired()
	}

	options := make([]huh.Option[string], len(patients))
	for i, patient := range patients {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", patient.DisplayName(), patient.PatientNumber), patient.ID)
	}

	for {
		var patientID string
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select patient").
				Options(options...).
				Value(&patientID),
		)).RunWithContext(ctx)
		if err != nil {
			return err
		}

		if err := t.session.SelectPatientByID(patientID); err != nil {
			return err
		}
		err = t.session.Start(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, exceptions.KindAuthExpired) {
			return err
		}
		fmt.Fprintf(t.out, "Could not start the assessment: %s\n", clientMessage(err))
	}
}

func (t *terminal) answerQuestions(ctx context.Context) error {
	for {
		snapshot := t.session.Snapshot()
		if snapshot.Phase != wizard.PhaseInProgress || snapshot.CurrentQuestion == nil {
			return nil
		}
		question := snapshot.CurrentQuestion

		options := make([]huh.Option[int], 0, len(question.Options)+1)
		for i, text := range question.Options {
			options = append(options, huh.NewOption(text, i))
		}
		if snapshot.QuestionIndex > 0 {
			options = append(options, huh.NewOption("< Back", optionBack))
		}

		choice := 0
		if snapshot.SelectedOption != nil {
			choice = *snapshot.SelectedOption
		}
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("Question %d of %d", snapshot.QuestionIndex+1, snapshot.QuestionCount)).
				Description(question.Text).
				Options(options...).
				Value(&choice),
		)).RunWithContext(ctx)
		if err != nil {
			return err
		}

		if choice == optionBack {
			if _, err := t.session.GoBack(); err != nil {
				return err
			}
			continue
		}

		outcome, err := t.session.SubmitAnswer(ctx, choice)
		if err != nil {
			return err
		}
		if !outcome.Synced {
			fmt.Fprintln(t.out, "Answer saved locally; it will be sent again before completion.")
		}
	}
}

func (t *terminal) iridology(ctx context.Context) error {
	if t.session.Snapshot().Phase != wizard.PhaseCapturingIridology {
		return nil
	}

	for {
		var action string
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Iridology").
				Description("Capture both eyes for an iris analysis, or skip it.").
				Options(
					huh.NewOption("Use the camera", "camera"),
					huh.NewOption("Upload image files", "upload"),
					huh.NewOption("Skip", "skip"),
				).
				Value(&action),
		)).RunWithContext(ctx)
		if err != nil {
			return err
		}

		switch action {
		case "skip":
			return t.session.SkipIridology(ctx)
		case "camera":
			err = t.captureFromCamera(ctx)
		default:
			err = t.uploadImages(ctx)
		}
		if err == nil {
			return nil
		}
		if errors.Is(err, exceptions.KindAuthExpired) || errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return err
		}
		fmt.Fprintf(t.out, "Iridology failed: %s\n", clientMessage(err))
	}
}

func (t *terminal) captureFromCamera(ctx context.Context) error {
	if !t.session.Snapshot().CameraOpen {
		if err := t.session.OpenCamera(ctx); err != nil {
			return err
		}
	}

	for _, eye := range []string{constvars.EyeLeft, constvars.EyeRight} {
		ready := true
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Position the %s eye and capture", eye)).
				Affirmative("Capture").
				Negative("Cancel").
				Value(&ready),
		)).RunWithContext(ctx)
		if err != nil {
			return err
		}
		if !ready {
			return errCaptureCancelled
		}
		if _, err := t.session.CaptureEye(ctx, eye); err != nil {
			return err
		}
	}

	result, err := t.session.SubmitIridology(ctx, nil, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "Constitution: %s (%s)\n", result.ConstitutionalType, result.ConstitutionalStrength)
	return nil
}

func (t *terminal) uploadImages(ctx context.Context) error {
	var leftPath, rightPath string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Left eye image (JPEG or PNG)").Value(&leftPath).Validate(fileExists),
		huh.NewInput().Title("Right eye image (JPEG or PNG)").Value(&rightPath).Validate(fileExists),
	)).RunWithContext(ctx)
	if err != nil {
		return err
	}

	left, err := t.readImage(leftPath)
	if err != nil {
		return err
	}
	right, err := t.readImage(rightPath)
	if err != nil {
		return err
	}

	result, err := t.session.SubmitIridology(ctx, left, right)
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "Constitution: %s (%s)\n", result.ConstitutionalType, result.ConstitutionalStrength)
	return nil
}

func (t *terminal) readImage(path string) ([]byte, error) {
	file, err := os.Open(strings.TrimSpace(path))
	if err != nil {
		return nil, exceptions.ErrDecodeImage(err)
	}
	defer file.Close()
	return capture.DecodeUpload(file, t.constraints)
}

func fileExists(path string) error {
	info, err := os.Stat(strings.TrimSpace(path))
	if err != nil {
		return errors.New("file not found")
	}
	if info.IsDir() {
		return errors.New("path is a directory")
	}
	return nil
}

func (t *terminal) complete(ctx context.Context) error {
	for {
		_, err := t.session.Complete(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, exceptions.KindAuthExpired) {
			return err
		}
		fmt.Fprintf(t.out, "Completing the assessment failed: %s\n", clientMessage(err))

		retry := true
		err = huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Try again?").
				Value(&retry),
		)).RunWithContext(ctx)
		if err != nil {
			return err
		}
		if !retry {
			return huh.ErrUserAborted
		}
		if err := t.session.Retry(ctx); err != nil {
			return err
		}
	}
}

func (t *terminal) showResults(ctx context.Context) error {
	resultSet, err := t.session.Results()
	if err != nil {
		return err
	}
	presentation := results.Present(resultSet)

	fmt.Fprintf(t.out, "\nOverall wellness score: %.1f (%s)\n\n", presentation.OverallScore, presentation.OverallBand)
	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOMAIN\tTHERAPY\tSCORE\tBAND\tANSWERED")
	for _, row := range presentation.Rows {
		if !row.Assessed {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t0/%d\n", row.DisplayName, row.TherapyCode, row.TotalQuestions)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%s\t%d/%d\n", row.DisplayName, row.TherapyCode, row.Score, row.Band, row.QuestionsAnswered, row.TotalQuestions)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	generate := false
	err = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Generate the PDF report?").
			Value(&generate),
	)).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	if err != nil || !generate {
		return err
	}

	link, err := t.session.GenerateReport(ctx)
	if err != nil {
		t.log.Warn("terminal.showResults report generation failed", zap.Error(err))
		fmt.Fprintf(t.out, "Report generation failed: %s\n", clientMessage(err))
		return nil
	}
	fmt.Fprintf(t.out, "Report: %s\n", link.DownloadURL)
	return nil
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}
