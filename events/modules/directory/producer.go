package directory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	core "github.com/ortelius/userdir-backend/directory"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the producer uses
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// LoadProducer sends directory.loaded events to Kafka
type LoadProducer struct {
	Writer MessageWriter
	Source string
	Locale string
}

// NewLoadProducer initializes a new Kafka writer for directory events
func NewLoadProducer(brokers []string, topic, source, locale string, transport kafka.RoundTripper) *LoadProducer {
	return &LoadProducer{
		Writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			Transport:              transport,
			AllowAutoTopicCreation: true,
		},
		Source: source,
		Locale: locale,
	}
}

// NewDirectoryLoadedEvent builds the event contract for a load result
func NewDirectoryLoadedEvent(result core.LoadResult, source, locale string) DirectoryLoadedEvent {
	return DirectoryLoadedEvent{
		EventType:     EventTypeDirectoryLoaded,
		EventID:       uuid.New().String(),
		EventTime:     time.Now().UTC(),
		SchemaVersion: "v1",
		Source:        source,
		Locale:        locale,
		Fetched:       result.Fetched,
		Loaded:        result.Loaded,
		Skipped:       result.Skipped,
		Attempts:      result.Attempts,
		ElapsedMs:     result.Elapsed.Milliseconds(),
	}
}

// DirectoryLoaded publishes the event; it implements directory.LoadListener
func (p *LoadProducer) DirectoryLoaded(ctx context.Context, result core.LoadResult) error {
	event := NewDirectoryLoadedEvent(result, p.Source, p.Locale)

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EventType),
		Value: payload,
	})
}

// Close cleans up the Kafka writer
func (p *LoadProducer) Close() error {
	return p.Writer.Close()
}

var _ core.LoadListener = (*LoadProducer)(nil)
