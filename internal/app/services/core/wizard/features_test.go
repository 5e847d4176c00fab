package wizard

import (
	"context"
	"fmt"
	"math"
	"testing"

	"wellness-wizard/internal/app/services/core/results"
	"wellness-wizard/internal/app/services/portal/portaltest"
	"wellness-wizard/internal/pkg/exceptions"

	"github.com/cucumber/godog"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			(&scenario{t: t}).register(sc)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// scenario holds the state of one feature scenario.
type scenario struct {
	t          *testing.T
	harness    *testHarness
	controller *Controller
	lastErr    error
	selected   *int
}

func (s *scenario) register(sc *godog.ScenarioContext) {
	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if s.controller != nil {
			s.controller.Abandon()
		}
		return ctx, nil
	})

	sc.Step(`^the portal serves the default catalog$`, s.portalServesDefaultCatalog)
	sc.Step(`^the wizard has loaded the catalog$`, s.wizardHasLoaded)
	sc.Step(`^the portal answers with status (\d+)$`, s.portalAnswersWithStatus)
	sc.Step(`^the portal completes with status (\d+)$`, s.portalCompletesWithStatus)

	sc.Step(`^I select patient "([^"]*)"$`, s.selectPatient)
	sc.Step(`^I start the assessment$`, s.startAssessment)
	sc.Step(`^I answer with option (\d+)$`, s.answerWithOption)
	sc.Step(`^I answer every question with option (\d+)$`, s.answerEveryQuestion)
	sc.Step(`^I go back$`, s.goBack)
	sc.Step(`^I skip iridology$`, s.skipIridology)
	sc.Step(`^I open the camera$`, s.openCamera)
	sc.Step(`^I capture the "([^"]*)" eye$`, s.captureEye)
	sc.Step(`^I submit the iridology images$`, s.submitIridology)
	sc.Step(`^I complete the assessment$`, s.completeAssessment)
	sc.Step(`^I retry$`, s.retry)

	sc.Step(`^the wizard phase is "([^"]*)"$`, s.phaseIs)
	sc.Step(`^the last error kind is "([^"]*)"$`, s.lastErrorKindIs)
	sc.Step(`^the overall score is (\d+)$`, s.overallScoreIs)
	sc.Step(`^the domain "([^"]*)" is banded "([^"]*)"$`, s.domainBandIs)
	sc.Step(`^progress is (\d+) percent$`, s.progressIs)
	sc.Step(`^the selected option is (\d+)$`, s.selectedOptionIs)
	sc.Step(`^the question index is (\d+)$`, s.questionIndexIs)
	sc.Step(`^(\d+) answers are pending$`, s.answersPending)
	sc.Step(`^the camera is closed$`, s.cameraClosed)
	sc.Step(`^the constitutional type is "([^"]*)"$`, s.constitutionalTypeIs)
}

func (s *scenario) portalServesDefaultCatalog() error {
	s.harness = newHarness(s.t)
	return nil
}

func (s *scenario) wizardHasLoaded(ctx context.Context) error {
	s.controller = s.harness.controller()
	return s.controller.Load(ctx)
}

func (s *scenario) portalAnswersWithStatus(status int) error {
	s.harness.server.Set(func(server *portaltest.Server) { server.AnswerStatus = status })
	return nil
}

func (s *scenario) portalCompletesWithStatus(status int) error {
	s.harness.server.Set(func(server *portaltest.Server) { server.CompleteStatus = status })
	return nil
}

// record keeps err for later assertions; steps that expect failure check it.
func (s *scenario) record(err error) error {
	s.lastErr = err
	return nil
}

func (s *scenario) selectPatient(patientID string) error {
	return s.controller.SelectPatientByID(patientID)
}

func (s *scenario) startAssessment(ctx context.Context) error {
	return s.record(s.controller.Start(ctx))
}

func (s *scenario) answerWithOption(ctx context.Context, option int) error {
	_, err := s.controller.SubmitAnswer(ctx, option)
	return err
}

func (s *scenario) answerEveryQuestion(ctx context.Context, option int) error {
	for s.controller.Snapshot().Phase == PhaseInProgress {
		if _, err := s.controller.SubmitAnswer(ctx, option); err != nil {
			return err
		}
	}
	return nil
}

func (s *scenario) goBack() error {
	selected, err := s.controller.GoBack()
	s.selected = selected
	return err
}

func (s *scenario) skipIridology(ctx context.Context) error {
	return s.controller.SkipIridology(ctx)
}

func (s *scenario) openCamera(ctx context.Context) error {
	return s.controller.OpenCamera(ctx)
}

func (s *scenario) captureEye(ctx context.Context, eye string) error {
	_, err := s.controller.CaptureEye(ctx, eye)
	return err
}

func (s *scenario) submitIridology(ctx context.Context) error {
	_, err := s.controller.SubmitIridology(ctx, nil, nil)
	return err
}

func (s *scenario) completeAssessment(ctx context.Context) error {
	_, err := s.controller.Complete(ctx)
	return s.record(err)
}

func (s *scenario) retry(ctx context.Context) error {
	return s.controller.Retry(ctx)
}

func (s *scenario) phaseIs(phase string) error {
	if got := s.controller.Snapshot().Phase.String(); got != phase {
		return fmt.Errorf("expected phase %q, got %q (last error: %v)", phase, got, s.lastErr)
	}
	return nil
}

func (s *scenario) lastErrorKindIs(kind string) error {
	if s.lastErr == nil {
		return fmt.Errorf("expected a %s error, got none", kind)
	}
	if got := string(exceptions.KindOf(s.lastErr)); got != kind {
		return fmt.Errorf("expected error kind %q, got %q", kind, got)
	}
	return nil
}

func (s *scenario) overallScoreIs(score int) error {
	resultSet, err := s.controller.Results()
	if err != nil {
		return err
	}
	if math.Abs(resultSet.OverallScore-float64(score)) > 0.01 {
		return fmt.Errorf("expected overall score %d, got %.1f", score, resultSet.OverallScore)
	}
	return nil
}

func (s *scenario) domainBandIs(domain, band string) error {
	resultSet, err := s.controller.Results()
	if err != nil {
		return err
	}
	for _, row := range results.Present(resultSet).Rows {
		if row.Domain != domain {
			continue
		}
		if string(row.Band) != band {
			return fmt.Errorf("expected %s to be banded %q, got %q", domain, band, row.Band)
		}
		return nil
	}
	return fmt.Errorf("domain %s not in results", domain)
}

func (s *scenario) progressIs(percent int) error {
	if got := s.controller.Snapshot().ProgressPercent; got != percent {
		return fmt.Errorf("expected progress %d, got %d", percent, got)
	}
	return nil
}

func (s *scenario) selectedOptionIs(option int) error {
	if s.selected == nil {
		return fmt.Errorf("expected option %d to be restored, got none", option)
	}
	if *s.selected != option {
		return fmt.Errorf("expected option %d, got %d", option, *s.selected)
	}
	return nil
}

func (s *scenario) questionIndexIs(index int) error {
	if got := s.controller.Snapshot().QuestionIndex; got != index {
		return fmt.Errorf("expected question index %d, got %d", index, got)
	}
	return nil
}

func (s *scenario) answersPending(count int) error {
	if got := s.controller.Snapshot().PendingCount; got != count {
		return fmt.Errorf("expected %d pending answers, got %d", count, got)
	}
	return nil
}

func (s *scenario) cameraClosed() error {
	if s.harness.capture.IsOpen() {
		return fmt.Errorf("expected the camera to be closed")
	}
	return nil
}

func (s *scenario) constitutionalTypeIs(constitution string) error {
	iridology := s.controller.Snapshot().Iridology
	if iridology == nil {
		return fmt.Errorf("no iridology result")
	}
	if iridology.ConstitutionalType != constitution {
		return fmt.Errorf("expected constitution %q, got %q", constitution, iridology.ConstitutionalType)
	}
	return nil
}
