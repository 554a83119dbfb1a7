//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/livable-cities/internal/adapter/file"
	"github.com/couchcryptid/livable-cities/internal/adapter/kafka"
	"github.com/couchcryptid/livable-cities/internal/adapter/stdout"
	"github.com/couchcryptid/livable-cities/internal/config"
	"github.com/couchcryptid/livable-cities/internal/domain"
	"github.com/couchcryptid/livable-cities/internal/observability"
	"github.com/couchcryptid/livable-cities/internal/pipeline"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const testSinkTopic = "test-rankings"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("livable-test"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)
	ctrl, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrl.Close()

	require.NoError(t, ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestPipelinePublishesRanking runs the sample dataset through the pipeline
// with both sinks and reads the ranking back from Kafka.
func TestPipelinePublishesRanking(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSinkTopic)

	cfg := &config.Config{
		KafkaBrokers:   []string{broker},
		KafkaSinkTopic: testSinkTopic,
		KafkaEnabled:   true,
	}
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	var out bytes.Buffer
	p := pipeline.New(
		file.NewReader(filepath.Join("..", "..", "data", "cities.json"), discardLogger()),
		pipeline.NewRanker(domain.TopN, discardLogger()),
		discardLogger(),
		observability.NewMetrics(),
		stdout.NewWriter(&out),
		writer,
	)

	ranking, err := p.Run(ctx)
	require.NoError(t, err)
	require.Len(t, ranking.Cities, domain.TopN)

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		StartOffset: kafkago.FirstOffset,
		MaxWait:     500 * time.Millisecond,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	for i := range domain.TopN {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read message %d from sink topic", i)

		var payload kafka.RankedCity
		require.NoError(t, json.Unmarshal(msg.Value, &payload))

		assert.Equal(t, ranking.RunID, payload.RunID)
		assert.Equal(t, i+1, payload.Rank)
		assert.Equal(t, ranking.Cities[i].Name, payload.City.Name)
		assert.Equal(t, []byte(ranking.Cities[i].Name), msg.Key)
	}
}
