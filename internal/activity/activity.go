package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	kgo "github.com/segmentio/kafka-go"
)

const (
	PostCreated    = "post.created"
	PostDeleted    = "post.deleted"
	CommentCreated = "comment.created"
	CommentDeleted = "comment.deleted"
	LikeCreated    = "like.created"
)

type Event struct {
	Type      string    `json:"type"`
	UserID    *int64    `json:"user_id,omitempty"`
	PostID    *int64    `json:"post_id,omitempty"`
	CommentID *int64    `json:"comment_id,omitempty"`
	At        time.Time `json:"at"`
}

// Publisher delivers activity events on a best-effort basis. Publish never
// blocks the request path and never reports delivery failures to callers.
type Publisher interface {
	Publish(ctx context.Context, e Event)
	Close() error
}

type nopPublisher struct{}

func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, Event) {}
func (nopPublisher) Close() error                   { return nil }

type kafkaPublisher struct {
	w *kgo.Writer
}

// NewKafkaPublisher returns a publisher writing JSON events to topic. The
// writer is async, so errors surface only through the completion callback.
func NewKafkaPublisher(brokers []string, topic string) Publisher {
	w := &kgo.Writer{
		Addr:         kgo.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kgo.Hash{},
		RequiredAcks: kgo.RequireOne,
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		Completion: func(messages []kgo.Message, err error) {
			if err != nil {
				log.Printf("activity: failed to publish %d message(s): %v", len(messages), err)
			}
		},
	}
	return &kafkaPublisher{w: w}
}

func (p *kafkaPublisher) Publish(ctx context.Context, e Event) {
	msg, err := encode(e)
	if err != nil {
		log.Printf("activity: %v", err)
		return
	}

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		log.Printf("activity: failed to queue %s: %v", e.Type, err)
	}
}

func (p *kafkaPublisher) Close() error { return p.w.Close() }

// encode keys messages by post so one post's events stay ordered within a
// partition.
func encode(e Event) (kgo.Message, error) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}

	value, err := json.Marshal(e)
	if err != nil {
		return kgo.Message{}, fmt.Errorf("failed to encode %s event: %w", e.Type, err)
	}

	var key []byte
	if e.PostID != nil {
		key = []byte(strconv.FormatInt(*e.PostID, 10))
	}

	return kgo.Message{Key: key, Value: value, Time: e.At}, nil
}
