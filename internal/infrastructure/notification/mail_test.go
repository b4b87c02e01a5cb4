package notification

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	resend "github.com/resend/resend-go/v2"
	"github.com/riskibarqy/tournament-ops/internal/domain/schedule"
	"github.com/riskibarqy/tournament-ops/internal/platform/logging"
	"github.com/riskibarqy/tournament-ops/internal/platform/resilience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu       sync.Mutex
	requests []*resend.SendEmailRequest
	err      error
}

func (f *fakeSender) Send(_ context.Context, req *resend.SendEmailRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return "msg-1", nil
}

func (f *fakeSender) sent() []*resend.SendEmailRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*resend.SendEmailRequest(nil), f.requests...)
}

func newTestNotifier(t *testing.T, sender Sender, circuit resilience.CircuitBreakerConfig) *MailNotifier {
	t.Helper()

	n, err := newMailNotifier(Config{
		APIKey:  "re_test",
		From:    "ops@example.com",
		To:      []string{" desk@example.com ", ""},
		Workers: 2,
		Timeout: time.Second,
		Circuit: circuit,
	}, sender, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = n.Close(context.Background()) })
	return n
}

func TestNewMailNotifier_RequiresKeyAndRecipients(t *testing.T) {
	t.Parallel()

	_, err := NewMailNotifier(Config{APIKey: "re_test"}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewMailNotifier(Config{To: []string{"desk@example.com"}}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestMailNotifier_ScheduleCreatedSendsEscapedBody(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	n := newTestNotifier(t, sender, resilience.CircuitBreakerConfig{})

	description := "Bring <both> kits"
	n.ScheduleCreated(context.Background(), schedule.Detail{
		Schedule: schedule.Schedule{
			ID:          3,
			MatchID:     5,
			Slot:        schedule.Slot{Date: "2024-05-01", Time: "14:30"},
			Venue:       "Court A",
			Description: &description,
		},
		EventName:   "Spring Invitational",
		BracketName: "Basketball Open",
		Round:       1,
		Team1Name:   "Falcons",
	})
	n.wg.Wait()

	sent := sender.sent()
	require.Len(t, sent, 1)
	req := sent[0]
	assert.Equal(t, "ops@example.com", req.From)
	assert.Equal(t, []string{"desk@example.com"}, req.To)
	assert.Equal(t, "Match scheduled: Falcons vs TBD", req.Subject)
	assert.Contains(t, req.Html, "2024-05-01 14:30")
	assert.Contains(t, req.Html, "Court A")
	assert.Contains(t, req.Html, "Bring &lt;both&gt; kits")
	assert.Equal(t, []resend.Tag{{Name: "kind", Value: "schedule_created"}}, req.Tags)
}

func TestMailNotifier_ScheduleCancelled(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	n := newTestNotifier(t, sender, resilience.CircuitBreakerConfig{})

	n.ScheduleCancelled(context.Background(), 3, 5)
	n.wg.Wait()

	sent := sender.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Match 5 unscheduled", sent[0].Subject)
	assert.True(t, strings.Contains(sent[0].Html, "Schedule 3 was cancelled"))
}

func TestMailNotifier_SurvivesCancelledCallerContext(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	n := newTestNotifier(t, sender, resilience.CircuitBreakerConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.ScheduleCancelled(ctx, 1, 2)
	n.wg.Wait()

	assert.Len(t, sender.sent(), 1)
}

func TestMailNotifier_OpenCircuitStopsSends(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{err: errors.New("provider down")}
	n := newTestNotifier(t, sender, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Hour,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 4; i++ {
		n.ScheduleCancelled(context.Background(), int64(i+1), 9)
		n.wg.Wait()
	}

	assert.Len(t, sender.sent(), 2)
	assert.Equal(t, resilience.CircuitStateOpen, n.breaker.State())
}

func TestMailNotifier_CloseDropsLateNotifications(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	n, err := newMailNotifier(Config{APIKey: "re_test", To: []string{"desk@example.com"}}, sender, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, n.Close(context.Background()))

	n.ScheduleCancelled(context.Background(), 1, 2)
	n.wg.Wait()

	assert.Empty(t, sender.sent())
}
