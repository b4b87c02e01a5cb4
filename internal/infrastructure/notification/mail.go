package notification

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	resend "github.com/resend/resend-go/v2"
	"github.com/riskibarqy/tournament-ops/internal/domain/schedule"
	"github.com/riskibarqy/tournament-ops/internal/platform/logging"
	"github.com/riskibarqy/tournament-ops/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
)

var ErrNotConfigured = crerr.New("mail notifier is not configured")

// Sender delivers one rendered email and returns the provider message id.
type Sender interface {
	Send(ctx context.Context, req *resend.SendEmailRequest) (string, error)
}

type resendSender struct {
	client *resend.Client
}

func (s resendSender) Send(ctx context.Context, req *resend.SendEmailRequest) (string, error) {
	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", crerr.Wrap(err, "resend send email")
	}
	if resp == nil {
		return "", nil
	}
	return resp.Id, nil
}

type Config struct {
	APIKey  string
	From    string
	To      []string
	Workers int
	Timeout time.Duration
	Circuit resilience.CircuitBreakerConfig
}

func (c Config) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != "" && len(c.recipients()) > 0
}

func (c Config) recipients() []string {
	out := make([]string, 0, len(c.To))
	for _, addr := range c.To {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// MailNotifier emails schedule changes. Sends run on a bounded worker pool
// behind a circuit breaker; failures are logged and dropped.
type MailNotifier struct {
	sender  Sender
	from    string
	to      []string
	timeout time.Duration
	pool    *ants.Pool
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
	wg      sync.WaitGroup
}

func NewMailNotifier(cfg Config, logger *logging.Logger) (*MailNotifier, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}
	return newMailNotifier(cfg, resendSender{client: resend.NewClient(strings.TrimSpace(cfg.APIKey))}, logger)
}

func newMailNotifier(cfg Config, sender Sender, logger *logging.Logger) (*MailNotifier, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Component("notification")

	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		from = "tournament-ops@resend.dev"
	}

	pool, err := ants.NewPool(workers,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(p any) {
			logger.Error("notification worker panic", "panic", fmt.Sprint(p))
		}),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "create notification pool")
	}

	breaker := resilience.NewCircuitBreaker(cfg.Circuit)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("mail circuit state changed", "from", string(from), "to", string(to))
	})

	return &MailNotifier{
		sender:  sender,
		from:    from,
		to:      cfg.recipients(),
		timeout: timeout,
		pool:    pool,
		breaker: breaker,
		logger:  logger,
	}, nil
}

func (n *MailNotifier) ScheduleCreated(ctx context.Context, item schedule.Detail) {
	subject := fmt.Sprintf("Match scheduled: %s vs %s", teamLabel(item.Team1Name), teamLabel(item.Team2Name))
	n.dispatch(ctx, "schedule.created", subject, renderScheduleCreated(item), item.ID)
}

func (n *MailNotifier) ScheduleCancelled(ctx context.Context, scheduleID, matchID int64) {
	subject := fmt.Sprintf("Match %d unscheduled", matchID)
	n.dispatch(ctx, "schedule.cancelled", subject, renderScheduleCancelled(scheduleID, matchID), scheduleID)
}

// Close waits for queued sends until ctx is done, then releases the pool.
func (n *MailNotifier) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		err = crerr.Wrap(ctx.Err(), "wait for pending notifications")
	}
	n.pool.Release()
	return err
}

func (n *MailNotifier) dispatch(ctx context.Context, kind, subject, body string, scheduleID int64) {
	req := &resend.SendEmailRequest{
		From:    n.from,
		To:      append([]string(nil), n.to...),
		Subject: subject,
		Html:    body,
		Tags:    []resend.Tag{{Name: "kind", Value: strings.ReplaceAll(kind, ".", "_")}},
	}
	base := context.WithoutCancel(ctx)

	n.wg.Add(1)
	err := n.pool.Submit(func() {
		defer n.wg.Done()

		sendCtx, cancel := context.WithTimeout(base, n.timeout)
		defer cancel()

		var messageID string
		err := n.breaker.Execute(sendCtx, func(ctx context.Context) error {
			id, err := n.sender.Send(ctx, req)
			messageID = id
			return err
		})
		if err != nil {
			n.logger.WarnContext(sendCtx, "notification not sent",
				"kind", kind,
				"schedule_id", scheduleID,
				"error", err,
			)
			return
		}
		n.logger.InfoContext(sendCtx, "notification sent",
			"kind", kind,
			"schedule_id", scheduleID,
			"message_id", messageID,
		)
	})
	if err != nil {
		n.wg.Done()
		n.logger.WarnContext(ctx, "notification dropped",
			"kind", kind,
			"schedule_id", scheduleID,
			"error", crerr.Wrap(err, "submit notification"),
		)
	}
}

func renderScheduleCreated(item schedule.Detail) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("<h2>")
	_, _ = buf.WriteString(html.EscapeString(item.EventName))
	_, _ = buf.WriteString("</h2><p><strong>")
	_, _ = buf.WriteString(html.EscapeString(item.BracketName))
	_, _ = buf.WriteString("</strong> round ")
	_, _ = buf.WriteString(fmt.Sprint(item.Round))
	_, _ = buf.WriteString("</p><p>")
	_, _ = buf.WriteString(html.EscapeString(teamLabel(item.Team1Name)))
	_, _ = buf.WriteString(" vs ")
	_, _ = buf.WriteString(html.EscapeString(teamLabel(item.Team2Name)))
	_, _ = buf.WriteString("</p><ul><li>When: ")
	_, _ = buf.WriteString(html.EscapeString(item.Slot.Date + " " + item.Slot.Time))
	_, _ = buf.WriteString("</li><li>Venue: ")
	_, _ = buf.WriteString(html.EscapeString(item.Venue))
	_, _ = buf.WriteString("</li></ul>")
	if item.Description != nil && strings.TrimSpace(*item.Description) != "" {
		_, _ = buf.WriteString("<p>")
		_, _ = buf.WriteString(html.EscapeString(*item.Description))
		_, _ = buf.WriteString("</p>")
	}
	return buf.String()
}

func renderScheduleCancelled(scheduleID, matchID int64) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "<p>Schedule %d was cancelled. Match %d is unscheduled.</p>", scheduleID, matchID)
	return buf.String()
}

func teamLabel(name string) string {
	if strings.TrimSpace(name) == "" {
		return "TBD"
	}
	return name
}
