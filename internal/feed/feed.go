package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-trigger-ledger/internal/adapter"
	"github.com/feral-file/ff-trigger-ledger/internal/codec"
	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/logger"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
	"github.com/feral-file/ff-trigger-ledger/internal/trigger"
)

// CursorName is the name of the cursor advanced after every processed trigger
const CursorName = "trigger"

// Config holds the configuration for the transaction feed
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	Subject        string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
	// ShortTxTypeEncoding must match the encoding used by the chain
	ShortTxTypeEncoding bool
}

// Feed defines the interface for the transaction feed
type Feed interface {
	// Run consumes transactions until ctx is done or a registry conflict is found
	Run(ctx context.Context) error
	// Close closes the NATS connection
	Close()
}

type feed struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	cursors   store.CursorStore
	processor trigger.Processor
	json      adapter.JSON
	config    Config

	// tx_index of the last persisted trigger; confirmed redeliveries at or below it are skipped
	cursor    int64
	hasCursor bool
}

// NewFeed connects to NATS and creates a new transaction feed
func NewFeed(
	cfg Config,
	natsJS adapter.NatsJetStream,
	cursors store.CursorStore,
	processor trigger.Processor,
	jsonAdapter adapter.JSON,
) (Feed, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &feed{
		nc:        nc,
		js:        js,
		cursors:   cursors,
		processor: processor,
		json:      jsonAdapter,
		config:    cfg,
	}, nil
}

// Run consumes one transaction at a time, in stream order
func (f *feed) Run(ctx context.Context) error {
	logger.Info("Starting transaction feed", zap.String("stream", f.config.StreamName), zap.String("consumer", f.config.ConsumerName))

	// A single unacknowledged message keeps processing strictly sequential
	consumerConfig := jetstream.ConsumerConfig{
		Durable:       f.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       f.config.AckWaitTimeout,
		MaxDeliver:    f.config.MaxDeliver,
		MaxAckPending: 1,
		FilterSubject: f.config.Subject,
	}

	consumer, err := f.js.CreateOrUpdateConsumer(ctx, f.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	txIndex, ok, err := f.cursors.GetTxCursor(ctx, CursorName)
	if err != nil {
		return fmt.Errorf("failed to get tx cursor: %w", err)
	}
	if ok {
		f.cursor, f.hasCursor = txIndex, true
		logger.Info("Resuming after last processed trigger", zap.Int64("txIndex", txIndex))
	}

	msgChan := make(chan adapter.Message)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		select {
		case msgChan <- msg:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming transactions")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down transaction feed")
			return ctx.Err()
		case msg := <-msgChan:
			if err := f.handleMessage(ctx, msg); err != nil {
				return err
			}
		}
	}
}

// handleMessage processes one transaction. A returned error stops the feed.
func (f *feed) handleMessage(ctx context.Context, msg adapter.Message) error {
	var deliveryCount uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		deliveryCount = metadata.NumDelivered
	}

	var tx domain.Transaction
	if err := f.json.Unmarshal(msg.Data(), &tx); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal transaction"))
		f.term(msg)
		return nil
	}

	id, body, err := codec.UnpackMessageType(tx.Data, f.config.ShortTxTypeEncoding)
	if err != nil || id != codec.TriggerMessageID {
		logger.Debug("Skipping non-trigger transaction", zap.String("txHash", tx.TxHash))
		f.ack(msg)
		return nil
	}

	if f.hasCursor && !tx.Unconfirmed() && tx.TxIndex <= f.cursor {
		logger.Info("Skipping trigger at or below the tx cursor",
			zap.String("txHash", tx.TxHash),
			zap.Int64("txIndex", tx.TxIndex),
			zap.Int64("cursor", f.cursor))
		f.ack(msg)
		return nil
	}

	logger.Debug("Received trigger transaction",
		zap.String("txHash", tx.TxHash),
		zap.Int64("txIndex", tx.TxIndex),
		zap.Uint64("deliveryCount", deliveryCount))

	row, err := f.processor.Parse(ctx, tx, body)
	switch {
	case errors.Is(err, domain.ErrRegistryConflict):
		f.nak(msg)
		return fmt.Errorf("failed to process trigger %s: %w", tx.TxHash, err)
	case errors.Is(err, domain.ErrTriggerExists):
		logger.Info("Trigger already processed", zap.String("txHash", tx.TxHash))
		f.ack(msg)
		return nil
	case err != nil:
		logger.Error(err, zap.String("message", "Failed to process trigger"), zap.String("txHash", tx.TxHash))
		f.nak(msg)
		return nil
	}

	if row != nil {
		f.cursor, f.hasCursor = tx.TxIndex, true
		if err := f.cursors.SetTxCursor(ctx, CursorName, tx.TxIndex); err != nil {
			logger.Error(err, zap.String("message", "Failed to save tx cursor"), zap.Int64("txIndex", tx.TxIndex))
		}
	}

	f.ack(msg)
	return nil
}

func (f *feed) ack(msg adapter.Message) {
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

func (f *feed) nak(msg adapter.Message) {
	if err := msg.Nak(); err != nil {
		logger.Error(err, zap.String("message", "Failed to NAK message"))
	}
}

func (f *feed) term(msg adapter.Message) {
	if err := msg.Term(); err != nil {
		logger.Error(err, zap.String("message", "Failed to terminate message"))
	}
}

// Close closes the feed and cleans up resources
func (f *feed) Close() {
	if f.nc == nil {
		return
	}

	f.nc.Close()
}
