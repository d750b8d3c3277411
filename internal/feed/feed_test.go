package feed_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-trigger-ledger/internal/adapter"
	"github.com/feral-file/ff-trigger-ledger/internal/codec"
	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/feed"
	"github.com/feral-file/ff-trigger-ledger/internal/logger"
	mockspkg "github.com/feral-file/ff-trigger-ledger/internal/mocks"
	"github.com/feral-file/ff-trigger-ledger/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testFeedMocks contains all the mocks needed for testing the feed
type testFeedMocks struct {
	ctrl           *gomock.Controller
	natsJS         *mockspkg.MockNatsJetStream
	natsConn       *mockspkg.MockNatsConn
	jetStream      *mockspkg.MockJetStream
	consumer       *mockspkg.MockNatsConsumer
	consumeContext *mockspkg.MockConsumeContext
	cursors        *mockspkg.MockCursorStore
	processor      *mockspkg.MockTriggerProcessor
	json           *mockspkg.MockJSON
}

// setupTestFeed creates all the mocks for testing
func setupTestFeed(t *testing.T) *testFeedMocks {
	ctrl := gomock.NewController(t)

	return &testFeedMocks{
		ctrl:           ctrl,
		natsJS:         mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:       mockspkg.NewMockNatsConn(ctrl),
		jetStream:      mockspkg.NewMockJetStream(ctrl),
		consumer:       mockspkg.NewMockNatsConsumer(ctrl),
		consumeContext: mockspkg.NewMockConsumeContext(ctrl),
		cursors:        mockspkg.NewMockCursorStore(ctrl),
		processor:      mockspkg.NewMockTriggerProcessor(ctrl),
		json:           mockspkg.NewMockJSON(ctrl),
	}
}

// tearDownTestFeed cleans up the test mocks
func tearDownTestFeed(mocks *testFeedMocks) {
	mocks.ctrl.Finish()
}

func testConfig() feed.Config {
	return feed.Config{
		URL:                 "nats://localhost:4222",
		StreamName:          "transactions",
		ConsumerName:        "trigger-parser",
		Subject:             "transactions.confirmed",
		MaxReconnects:       10,
		ReconnectWait:       1 * time.Second,
		ConnectionName:      "test-feed",
		AckWaitTimeout:      30 * time.Second,
		MaxDeliver:          5,
		ShortTxTypeEncoding: true,
	}
}

func newTestFeed(t *testing.T, mocks *testFeedMocks) feed.Feed {
	cfg := testConfig()
	mocks.natsJS.
		EXPECT().
		Connect(cfg.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	f, err := feed.NewFeed(cfg, mocks.natsJS, mocks.cursors, mocks.processor, mocks.json)
	require.NoError(t, err)
	require.NotNil(t, f)
	return f
}

// startTestFeed runs the feed in the background and returns the captured message handler
func startTestFeed(ctx context.Context, t *testing.T, mocks *testFeedMocks, f feed.Feed) (adapter.MessageHandler, <-chan error) {
	return startTestFeedAt(ctx, t, mocks, f, 0, false)
}

// startTestFeedAt is startTestFeed with a stored tx cursor
func startTestFeedAt(ctx context.Context, t *testing.T, mocks *testFeedMocks, f feed.Feed, cursor int64, hasCursor bool) (adapter.MessageHandler, <-chan error) {
	handlerChan := make(chan adapter.MessageHandler, 1)

	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "transactions", gomock.Any()).
		Return(mocks.consumer, nil)
	mocks.consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "trigger-parser"}, nil)
	mocks.cursors.EXPECT().
		GetTxCursor(gomock.Any(), feed.CursorName).
		Return(cursor, hasCursor, nil)
	mocks.consumer.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, opts ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handlerChan <- handler
			return mocks.consumeContext, nil
		})
	mocks.consumeContext.EXPECT().Stop().AnyTimes()

	errChan := make(chan error, 1)
	go func() {
		errChan <- f.Run(ctx)
	}()

	select {
	case handler := <-handlerChan:
		return handler, errChan
	case <-time.After(5 * time.Second):
		t.Fatal("consumer was not started")
		return nil, nil
	}
}

// waitFor blocks until the message reached its final acknowledgement
func waitFor(t *testing.T, done <-chan struct{}) {
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("message was not acknowledged")
	}
}

func signal(done chan struct{}) func() error {
	return func() error {
		close(done)
		return nil
	}
}

func triggerTx(txIndex int64) domain.Transaction {
	data := append(codec.PackMessageType(codec.TriggerMessageID, true), 0xaa, 0xbb)
	return domain.Transaction{
		TxIndex:    txIndex,
		TxHash:     fmt.Sprintf("tx%d", txIndex),
		BlockIndex: 310000,
		BlockHash:  "block",
		Source:     "source",
		Data:       data,
	}
}

func expectMessage(mocks *testFeedMocks, msg *mockspkg.MockJetStreamMessage, tx domain.Transaction) {
	raw := []byte(tx.TxHash)
	msg.EXPECT().Data().Return(raw).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	mocks.json.EXPECT().
		Unmarshal(raw, gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			*v.(*domain.Transaction) = tx
			return nil
		})
}

func TestFeed_NewFeed_ConnectError(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, assert.AnError)

	f, err := feed.NewFeed(testConfig(), mocks.natsJS, mocks.cursors, mocks.processor, mocks.json)

	assert.Error(t, err)
	assert.Nil(t, f)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestFeed_Run_ConsumerConfig(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	f := newTestFeed(t, mocks)
	cfg := testConfig()

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(),
			"transactions",
			jetstream.ConsumerConfig{
				Durable:       cfg.ConsumerName,
				AckPolicy:     jetstream.AckExplicitPolicy,
				AckWait:       cfg.AckWaitTimeout,
				MaxDeliver:    cfg.MaxDeliver,
				MaxAckPending: 1,
				FilterSubject: "transactions.confirmed",
			}).
		Return(nil, assert.AnError)

	err := f.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create/update consumer")
}

func TestFeed_Run_ConsumerInfoError(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	f := newTestFeed(t, mocks)

	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mocks.consumer, nil)
	mocks.consumer.EXPECT().
		Info(gomock.Any()).
		Return(nil, assert.AnError)

	err := f.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get consumer info")
}

func TestFeed_Run_CursorError(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	f := newTestFeed(t, mocks)

	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mocks.consumer, nil)
	mocks.consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "trigger-parser"}, nil)
	mocks.cursors.EXPECT().
		GetTxCursor(gomock.Any(), feed.CursorName).
		Return(int64(0), false, assert.AnError)

	err := f.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get tx cursor")
}

func TestFeed_Run_ConsumeError(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	f := newTestFeed(t, mocks)

	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mocks.consumer, nil)
	mocks.consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "trigger-parser"}, nil)
	mocks.cursors.EXPECT().
		GetTxCursor(gomock.Any(), feed.CursorName).
		Return(int64(41), true, nil)
	mocks.consumer.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	err := f.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create subscription")
}

func TestFeed_Run_ContextCancellation(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	f := newTestFeed(t, mocks)

	_, errChan := startTestFeed(ctx, t, mocks, f)
	cancel()

	select {
	case err := <-errChan:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Test timed out")
	}
}

func TestFeed_HandleMessage_ValidTrigger(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, _ := startTestFeed(ctx, t, mocks, f)

	tx := triggerTx(42)
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, msg, tx)

	done := make(chan struct{})
	gomock.InOrder(
		mocks.processor.EXPECT().
			Parse(gomock.Any(), tx, []byte{0xaa, 0xbb}).
			Return(&schema.Trigger{TxHash: tx.TxHash, Status: domain.StatusValid}, nil),
		mocks.cursors.EXPECT().
			SetTxCursor(gomock.Any(), feed.CursorName, int64(42)).
			Return(nil),
		msg.EXPECT().Ack().DoAndReturn(signal(done)),
	)

	handler(msg)
	waitFor(t, done)
}

func TestFeed_HandleMessage_CursorErrorStillAcks(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, _ := startTestFeed(ctx, t, mocks, f)

	tx := triggerTx(43)
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, msg, tx)

	done := make(chan struct{})
	mocks.processor.EXPECT().
		Parse(gomock.Any(), tx, gomock.Any()).
		Return(&schema.Trigger{TxHash: tx.TxHash, Status: "invalid: insufficient funds"}, nil)
	mocks.cursors.EXPECT().
		SetTxCursor(gomock.Any(), feed.CursorName, int64(43)).
		Return(assert.AnError)
	msg.EXPECT().Ack().DoAndReturn(signal(done))

	handler(msg)
	waitFor(t, done)
}

func TestFeed_HandleMessage_SkipsAtOrBelowStoredCursor(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, _ := startTestFeedAt(ctx, t, mocks, f, 100, true)

	for _, txIndex := range []int64{99, 100} {
		tx := triggerTx(txIndex)
		msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
		expectMessage(mocks, msg, tx)

		done := make(chan struct{})
		msg.EXPECT().Ack().DoAndReturn(signal(done))

		handler(msg)
		waitFor(t, done)
	}

	tx := triggerTx(101)
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, msg, tx)

	done := make(chan struct{})
	gomock.InOrder(
		mocks.processor.EXPECT().
			Parse(gomock.Any(), tx, gomock.Any()).
			Return(&schema.Trigger{TxHash: tx.TxHash, Status: domain.StatusValid}, nil),
		mocks.cursors.EXPECT().
			SetTxCursor(gomock.Any(), feed.CursorName, int64(101)).
			Return(nil),
		msg.EXPECT().Ack().DoAndReturn(signal(done)),
	)

	handler(msg)
	waitFor(t, done)
}

func TestFeed_HandleMessage_RedeliveryAfterPersistIsSkipped(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, _ := startTestFeed(ctx, t, mocks, f)

	tx := triggerTx(7)
	first := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, first, tx)

	done := make(chan struct{})
	mocks.processor.EXPECT().
		Parse(gomock.Any(), tx, gomock.Any()).
		Return(&schema.Trigger{TxHash: tx.TxHash, Status: domain.StatusValid}, nil).
		Times(1)
	mocks.cursors.EXPECT().
		SetTxCursor(gomock.Any(), feed.CursorName, int64(7)).
		Return(nil)
	first.EXPECT().Ack().DoAndReturn(signal(done))

	handler(first)
	waitFor(t, done)

	again := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, again, tx)

	done = make(chan struct{})
	again.EXPECT().Ack().DoAndReturn(signal(done))

	handler(again)
	waitFor(t, done)
}

func TestFeed_HandleMessage_UnconfirmedDoesNotMoveCursor(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, _ := startTestFeed(ctx, t, mocks, f)

	tx := triggerTx(44)
	tx.BlockHash = domain.MempoolBlockHash
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, msg, tx)

	done := make(chan struct{})
	mocks.processor.EXPECT().
		Parse(gomock.Any(), tx, gomock.Any()).
		Return(nil, nil)
	msg.EXPECT().Ack().DoAndReturn(signal(done))

	handler(msg)
	waitFor(t, done)
}

func TestFeed_HandleMessage_NonTriggerTransaction(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, _ := startTestFeed(ctx, t, mocks, f)

	tx := triggerTx(45)
	tx.Data = append(codec.PackMessageType(20, true), 0x01)
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, msg, tx)

	done := make(chan struct{})
	msg.EXPECT().Ack().DoAndReturn(signal(done))

	handler(msg)
	waitFor(t, done)
}

func TestFeed_HandleMessage_InvalidJSON(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, _ := startTestFeed(ctx, t, mocks, f)

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return([]byte("{invalid")).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	mocks.json.EXPECT().
		Unmarshal([]byte("{invalid"), gomock.Any()).
		Return(errors.New("invalid character"))

	done := make(chan struct{})
	msg.EXPECT().Term().DoAndReturn(signal(done))

	handler(msg)
	waitFor(t, done)
}

func TestFeed_HandleMessage_DuplicateIsAcked(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, _ := startTestFeed(ctx, t, mocks, f)

	tx := triggerTx(46)
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, msg, tx)

	done := make(chan struct{})
	mocks.processor.EXPECT().
		Parse(gomock.Any(), tx, gomock.Any()).
		Return(nil, fmt.Errorf("%w: %s", domain.ErrTriggerExists, tx.TxHash))
	msg.EXPECT().Ack().DoAndReturn(signal(done))

	handler(msg)
	waitFor(t, done)
}

func TestFeed_HandleMessage_InfrastructureErrorIsNaked(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, _ := startTestFeed(ctx, t, mocks, f)

	tx := triggerTx(47)
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, msg, tx)

	done := make(chan struct{})
	mocks.processor.EXPECT().
		Parse(gomock.Any(), tx, gomock.Any()).
		Return(nil, assert.AnError)
	msg.EXPECT().Nak().DoAndReturn(signal(done))

	handler(msg)
	waitFor(t, done)
}

func TestFeed_HandleMessage_RegistryConflictStopsFeed(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, errChan := startTestFeed(ctx, t, mocks, f)

	tx := triggerTx(48)
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, msg, tx)

	mocks.processor.EXPECT().
		Parse(gomock.Any(), tx, gomock.Any()).
		Return(nil, fmt.Errorf("failed to resolve receiver: %w", domain.ErrRegistryConflict))
	msg.EXPECT().Nak().Return(nil)

	handler(msg)

	select {
	case err := <-errChan:
		assert.ErrorIs(t, err, domain.ErrRegistryConflict)
	case <-time.After(5 * time.Second):
		t.Fatal("feed did not stop")
	}
}

func TestFeed_HandleMessage_AckError(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newTestFeed(t, mocks)
	handler, errChan := startTestFeed(ctx, t, mocks, f)

	tx := triggerTx(49)
	tx.Data = []byte{}
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	expectMessage(mocks, msg, tx)

	done := make(chan struct{})
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(done)
		return assert.AnError
	})

	handler(msg)
	waitFor(t, done)

	// A failed ACK is logged and the feed keeps running
	select {
	case err := <-errChan:
		t.Fatalf("feed stopped unexpectedly: %v", err)
	default:
	}
}

func TestFeed_Close(t *testing.T) {
	mocks := setupTestFeed(t)
	defer tearDownTestFeed(mocks)

	f := newTestFeed(t, mocks)
	mocks.natsConn.EXPECT().Close()

	f.Close()
}
