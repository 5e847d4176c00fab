package wizard

import (
	"context"
	"sync"
	"testing"
	"time"

	"wellness-wizard/internal/app/contracts"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/app/services/portal"
	"wellness-wizard/internal/app/services/portal/portaltest"
	"wellness-wizard/internal/pkg/exceptions"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCredentials struct {
	mu  sync.Mutex
	err error
}

func (f *fakeCredentials) Credentials(ctx context.Context) (*models.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &models.Credentials{
		Token: portaltest.DefaultToken,
		User:  models.PortalUser{ID: "7", ClinicID: "3"},
	}, nil
}

func (f *fakeCredentials) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

type fakeCapture struct {
	mu      sync.Mutex
	open    bool
	opens   int
	closes  int
	openErr error
	frame   []byte
}

func (f *fakeCapture) Open(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openErr != nil {
		return exceptions.ErrDeviceUnavailable(f.openErr)
	}
	if f.open {
		return exceptions.ErrDeviceAlreadyOpen()
	}
	f.open = true
	f.opens++
	return nil
}

func (f *fakeCapture) Capture(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return nil, exceptions.ErrDeviceNotOpen()
	}
	return f.frame, nil
}

func (f *fakeCapture) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.open {
		f.closes++
	}
	f.open = false
	return nil
}

func (f *fakeCapture) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

type fakeArchive struct {
	mu   sync.Mutex
	eyes []string
	err  error
}

func (f *fakeArchive) ArchiveIrisImage(ctx context.Context, assessmentID, eye string, image []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.eyes = append(f.eyes, eye)
	return "assessments/" + assessmentID + "/" + eye + ".jpg", nil
}

type fakeEvents struct {
	mu        sync.Mutex
	completed []*models.AssessmentCompletedEvent
	analyzed  []*models.IridologyAnalyzedEvent
}

func (f *fakeEvents) PublishAssessmentCompleted(ctx context.Context, event *models.AssessmentCompletedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, event)
	return nil
}

func (f *fakeEvents) PublishIridologyAnalyzed(ctx context.Context, event *models.IridologyAnalyzedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyzed = append(f.analyzed, event)
	return nil
}

type fakeAudit struct {
	mu          sync.Mutex
	transitions []*models.WizardTransition
}

func (f *fakeAudit) RecordTransition(ctx context.Context, transition *models.WizardTransition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transitions = append(f.transitions, transition)
	return nil
}

func (f *fakeAudit) phases() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var phases []string
	for _, transition := range f.transitions {
		phases = append(phases, transition.ToPhase)
	}
	return phases
}

// blockingPortal holds SubmitAnswer until release is closed.
type blockingPortal struct {
	contracts.PortalClient
	entered chan struct{}
	release chan struct{}
}

func newBlockingPortal(inner contracts.PortalClient) *blockingPortal {
	return &blockingPortal{
		PortalClient: inner,
		entered:      make(chan struct{}, 1),
		release:      make(chan struct{}),
	}
}

func (b *blockingPortal) SubmitAnswer(ctx context.Context, token, assessmentID string, answer models.Answer) (*models.AnswerReceipt, error) {
	b.entered <- struct{}{}
	<-b.release
	return b.PortalClient.SubmitAnswer(ctx, token, assessmentID, answer)
}

// blockingCapture holds Capture until release is closed.
type blockingCapture struct {
	*fakeCapture
	entered chan struct{}
	release chan struct{}
}

func newBlockingCapture(inner *fakeCapture) *blockingCapture {
	return &blockingCapture{
		fakeCapture: inner,
		entered:     make(chan struct{}, 1),
		release:     make(chan struct{}),
	}
}

func (b *blockingCapture) Capture(ctx context.Context) ([]byte, error) {
	b.entered <- struct{}{}
	<-b.release
	return b.fakeCapture.Capture(ctx)
}

type testHarness struct {
	server      *portaltest.Server
	portal      contracts.PortalClient
	credentials *fakeCredentials
	capture     *fakeCapture
	archive     *fakeArchive
	events      *fakeEvents
	audit       *fakeAudit
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	server := portaltest.NewServer()
	t.Cleanup(server.Close)

	return &testHarness{
		server:      server,
		portal:      portal.NewPortalClient(server.URL, 5*time.Second, zap.NewNop()),
		credentials: &fakeCredentials{},
		capture:     &fakeCapture{frame: []byte{0xff, 0xd8, 0xff, 0xd9}},
		archive:     &fakeArchive{},
		events:      &fakeEvents{},
		audit:       &fakeAudit{},
	}
}

func (h *testHarness) dependencies() Dependencies {
	return Dependencies{
		Log:         zap.NewNop(),
		Portal:      h.portal,
		Credentials: h.credentials,
		Capture:     h.capture,
		Archive:     h.archive,
		Events:      h.events,
		Audit:       h.audit,
	}
}

func (h *testHarness) controller() *Controller {
	return NewController("wizard-test", h.dependencies())
}

// started returns a controller that has loaded its catalog and started an
// assessment for the first patient.
func (h *testHarness) started(t *testing.T) *Controller {
	t.Helper()
	ctx := context.Background()
	controller := h.controller()
	require.NoError(t, controller.Load(ctx))
	require.NoError(t, controller.SelectPatientByID("101"))
	require.NoError(t, controller.Start(ctx))
	return controller
}

// answerAll answers every remaining question with option.
func answerAll(t *testing.T, controller *Controller, option int) {
	t.Helper()
	ctx := context.Background()
	for controller.Snapshot().Phase == PhaseInProgress {
		_, err := controller.SubmitAnswer(ctx, option)
		require.NoError(t, err)
	}
}
