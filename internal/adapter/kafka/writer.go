package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/livable-cities/internal/config"
	"github.com/couchcryptid/livable-cities/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// RankedCity is the message payload for one entry of a ranking.
type RankedCity struct {
	RunID       string      `json:"run_id"`
	Rank        int         `json:"rank"`
	GeneratedAt time.Time   `json:"generated_at"`
	Unit        domain.Unit `json:"unit"`
	City        domain.City `json:"city"`
}

// messageWriter is the subset of kafkago.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer produces ranked cities to a Kafka topic.
// It implements pipeline.Loader.
type Writer struct {
	writer messageWriter
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Name identifies the sink in logs and metrics.
func (w *Writer) Name() string { return "kafka" }

// Load publishes every city of the ranking in a single WriteMessages call,
// one message per city in rank order.
func (w *Writer) Load(ctx context.Context, ranking domain.Ranking) error {
	if len(ranking.Cities) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(ranking.Cities))
	for i := range ranking.Cities {
		msg, err := serializeToMessage(ranking, i)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish ranking %s: %w", ranking.RunID, err)
	}
	w.logger.Debug("ranking published", "run_id", ranking.RunID, "messages", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals the i-th ranked city into a Kafka message keyed
// by city name.
func serializeToMessage(ranking domain.Ranking, i int) (kafkago.Message, error) {
	city := ranking.Cities[i]
	data, err := json.Marshal(RankedCity{
		RunID:       ranking.RunID,
		Rank:        i + 1,
		GeneratedAt: ranking.GeneratedAt,
		Unit:        ranking.Unit,
		City:        city,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize ranked city: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(city.Name),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "run_id", Value: []byte(ranking.RunID)},
			{Key: "rank", Value: []byte(strconv.Itoa(i + 1))},
			{Key: "generated_at", Value: []byte(ranking.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
