package service

import (
	"context"
	"encoding/json"

	"teamsync-be/internal/dto"
	"teamsync-be/internal/metrics"
	"teamsync-be/internal/pkg/logger"
	"teamsync-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
)

// MailDispatcher delivers queued verification mails. Delivery failures are
// logged and the message is acked; nothing is retried.
type MailDispatcher struct {
	subscriber message.Subscriber
	topicName  string
	mailer     mailer.IEmailService
	log        logger.ILogger
	done       chan struct{}
}

func NewMailDispatcher(
	subscriber message.Subscriber,
	topicName string,
	mailer mailer.IEmailService,
	log logger.ILogger,
) *MailDispatcher {
	return &MailDispatcher{
		subscriber: subscriber,
		topicName:  topicName,
		mailer:     mailer,
		log:        log,
		done:       make(chan struct{}),
	}
}

// Start subscribes and processes messages in the background until ctx is cancelled.
func (d *MailDispatcher) Start(ctx context.Context) error {
	messages, err := d.subscriber.Subscribe(ctx, d.topicName)
	if err != nil {
		return err
	}

	go func() {
		defer close(d.done)
		for msg := range messages {
			d.process(msg)
		}
	}()

	return nil
}

// Wait blocks until the subscription channel has been drained and closed.
func (d *MailDispatcher) Wait() {
	<-d.done
}

func (d *MailDispatcher) process(msg *message.Message) {
	defer msg.Ack()

	var payload dto.OTPMailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		d.log.Error("MAIL", "Dropping malformed mail message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		return
	}

	err := d.mailer.SendOTP(payload.Email, payload.Code)
	metrics.RecordMail(err)
	if err != nil {
		d.log.Warn("MAIL", "Failed to deliver verification code", map[string]interface{}{
			"email": payload.Email,
			"error": err.Error(),
		})
		return
	}

	d.log.Info("MAIL", "Verification code delivered", map[string]interface{}{"email": payload.Email})
}
