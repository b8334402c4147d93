package kafka

import (
	"context"
	"sort"
	"time"

	"github.com/IBM/sarama"
	"github.com/cockroachdb/errors"
)

// ProducerOptions tunes the sarama client behind a Producer.
type ProducerOptions struct {
	ClientID     string
	WriteTimeout time.Duration
	Retries      int
}

func (o ProducerOptions) saramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	if o.ClientID != "" {
		cfg.ClientID = o.ClientID
	}
	if o.WriteTimeout > 0 {
		cfg.Net.WriteTimeout = o.WriteTimeout
		cfg.Producer.Timeout = o.WriteTimeout
	}
	if o.Retries > 0 {
		cfg.Producer.Retry.Max = o.Retries
	}
	// Idempotent delivery needs all acks and a single in-flight request.
	cfg.Producer.Idempotent = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Return.Successes = true
	return cfg
}

// Producer sends keyed messages and waits for the broker to acknowledge them.
type Producer struct {
	sync sarama.SyncProducer
	now  func() time.Time
}

func NewProducer(brokers []string, opts ProducerOptions) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	sp, err := sarama.NewSyncProducer(brokers, opts.saramaConfig())
	if err != nil {
		return nil, errors.Wrapf(err, "kafka: connect %v", brokers)
	}
	return NewProducerFrom(sp), nil
}

// NewProducerFrom wraps an existing sync producer, e.g. a sarama mock.
func NewProducerFrom(sp sarama.SyncProducer) *Producer {
	return &Producer{sync: sp, now: time.Now}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload []byte, headers map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(payload),
		Headers:   recordHeaders(headers),
		Timestamp: p.now().UTC(),
	}
	if _, _, err := p.sync.SendMessage(msg); err != nil {
		return errors.Wrapf(err, "kafka: publish %s key=%s", topic, key)
	}
	return nil
}

// recordHeaders orders headers by key so identical events encode identically.
func recordHeaders(headers map[string]string) []sarama.RecordHeader {
	if len(headers) == 0 {
		return nil
	}
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]sarama.RecordHeader, 0, len(keys))
	for _, k := range keys {
		out = append(out, sarama.RecordHeader{Key: []byte(k), Value: []byte(headers[k])})
	}
	return out
}

func (p *Producer) Close() error {
	if p == nil || p.sync == nil {
		return nil
	}
	return errors.Wrap(p.sync.Close(), "kafka: close producer")
}
