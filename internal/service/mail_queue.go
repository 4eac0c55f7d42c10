package service

import (
	"context"
	"encoding/json"
	"fmt"

	"teamsync-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// IMailQueue hands verification mails to the background dispatcher.
type IMailQueue interface {
	EnqueueOTP(ctx context.Context, email, code string) error
}

type mailQueue struct {
	publisher message.Publisher
	topicName string
}

func NewMailQueue(publisher message.Publisher, topicName string) IMailQueue {
	return &mailQueue{
		publisher: publisher,
		topicName: topicName,
	}
}

func (q *mailQueue) EnqueueOTP(ctx context.Context, email, code string) error {
	payload, err := json.Marshal(dto.OTPMailMessage{Email: email, Code: code})
	if err != nil {
		return fmt.Errorf("marshal mail message: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := q.publisher.Publish(q.topicName, msg); err != nil {
		return fmt.Errorf("publish mail message: %w", err)
	}
	return nil
}
