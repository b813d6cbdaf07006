package usecase

import (
	"context"
	"time"

	"episolve-backend/internal/domain"
	"episolve-backend/pkg/email"
	"episolve-backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// delivery is the outcome of one attempted email.
type delivery struct {
	Kind      string
	MessageID string
	Err       error
}

// outgoing pairs a message with the label it is logged under.
type outgoing struct {
	kind string
	msg  email.Message
}

// notifier fans messages out to the gateway. Sends never fail the caller:
// each one gets its own deadline, is attempted exactly once, and failures are logged.
type notifier struct {
	sender  email.Sender
	timeout time.Duration
}

func newNotifier(sender email.Sender, timeout time.Duration) *notifier {
	return &notifier{sender: sender, timeout: timeout}
}

func (n *notifier) dispatch(ctx context.Context, messages ...outgoing) []delivery {
	// The row is already stored; a client hang-up must not abort notification.
	base := context.WithoutCancel(ctx)
	requestID := domain.RequestIDFrom(ctx)

	deliveries := make([]delivery, len(messages))
	var g errgroup.Group
	for i, m := range messages {
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(base, n.timeout)
			defer cancel()

			res, err := n.sender.Send(sendCtx, m.msg)
			deliveries[i] = delivery{Kind: m.kind, MessageID: res.MessageID, Err: err}
			if err != nil {
				logger.Log.Error("email_failed", "kind", m.kind, "to", email.MaskedRecipients(m.msg.To), "subject", m.msg.Subject, "request_id", requestID, "error", err)
				return nil
			}
			logger.Log.Info("email_sent", "kind", m.kind, "message_id", res.MessageID, "request_id", requestID)
			return nil
		})
	}
	_ = g.Wait()
	return deliveries
}
