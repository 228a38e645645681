package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/NedohAR/marketplace-platform/internal/messaging/model"
	"github.com/NedohAR/marketplace-platform/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("marketplace"),
		postgres.WithUsername("marketplace"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if err := Migrate(ctx, testDB); err != nil {
		testDB.Close()
		log.Fatalf("failed to migrate: %v", err)
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanupTables(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE messages, conversations CASCADE`)
		require.NoError(t, err)
	})
}

func newRepo() *ConversationRepository {
	return NewConversationRepository(testDB, logger.Logger{})
}

func pair(t *testing.T) (uuid.UUID, uuid.UUID) {
	t.Helper()
	low, high := model.CanonicalPair(uuid.New(), uuid.New())
	return low, high
}

func Test_GetOrCreate_ReturnsSameRow(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()
	low, high := pair(t)

	conv1, created, err := repo.GetOrCreate(ctx, low, high, nil)
	require.NoError(t, err)
	require.True(t, created)
	require.NotEqual(t, uuid.Nil, conv1.ID)
	assert.Equal(t, conv1.CreatedAt, conv1.LastMessageAt)

	conv2, created, err := repo.GetOrCreate(ctx, low, high, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, conv1.ID, conv2.ID)
	assert.Equal(t, conv1.LastMessageAt.UTC(), conv2.LastMessageAt.UTC())

	count, err := testDB.NewSelect().Model((*model.Conversation)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_GetOrCreate_ListingPartition(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()
	low, high := pair(t)
	listing1, listing2 := uuid.New(), uuid.New()

	general, _, err := repo.GetOrCreate(ctx, low, high, nil)
	require.NoError(t, err)
	first, _, err := repo.GetOrCreate(ctx, low, high, &listing1)
	require.NoError(t, err)
	second, _, err := repo.GetOrCreate(ctx, low, high, &listing2)
	require.NoError(t, err)

	assert.NotEqual(t, general.ID, first.ID)
	assert.NotEqual(t, general.ID, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	// Re-asking for any member of the partition finds the existing row.
	again, created, err := repo.GetOrCreate(ctx, low, high, &listing1)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
}

func Test_GetOrCreate_ConcurrentFirstContact(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()
	low, high := pair(t)

	const callers = 8
	ids := make([]uuid.UUID, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conv, _, err := repo.GetOrCreate(ctx, low, high, nil)
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = conv.ID
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
	}
	for i := 1; i < callers; i++ {
		assert.Equal(t, ids[0], ids[i])
	}

	count, err := testDB.NewSelect().Model((*model.Conversation)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_CreateMessage_BumpsLastMessageAt(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()
	low, high := pair(t)

	conv, _, err := repo.GetOrCreate(ctx, low, high, nil)
	require.NoError(t, err)

	sentAt := time.Now().UTC().Add(time.Minute)
	msg := &model.Message{
		ConversationID: conv.ID,
		SenderID:       low,
		RecipientID:    high,
		Content:        "Is this available?",
		CreatedAt:      sentAt,
	}
	require.NoError(t, repo.CreateMessage(ctx, msg))
	require.NotEqual(t, uuid.Nil, msg.ID)
	assert.False(t, msg.IsRead)

	reloaded, err := repo.GetByID(ctx, conv.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, sentAt, reloaded.LastMessageAt, time.Millisecond)
}

func Test_ListMessagesMarkingRead_Idempotent(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()
	low, high := pair(t)

	conv, _, err := repo.GetOrCreate(ctx, low, high, nil)
	require.NoError(t, err)

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		msg := &model.Message{
			ConversationID: conv.ID,
			SenderID:       low,
			RecipientID:    high,
			Content:        "hello",
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.CreateMessage(ctx, msg))
	}

	unread, err := repo.UnreadCount(ctx, conv.ID, high)
	require.NoError(t, err)
	assert.Equal(t, 3, unread)

	// Sender side never accrues unread.
	unread, err = repo.UnreadCount(ctx, conv.ID, low)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	msgs, err := repo.ListMessagesMarkingRead(ctx, conv.ID, high)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	for _, m := range msgs {
		assert.True(t, m.IsRead)
	}

	unread, err = repo.UnreadCount(ctx, conv.ID, high)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	// Second view is a no-op.
	msgs, err = repo.ListMessagesMarkingRead(ctx, conv.ID, high)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	unread, err = repo.UnreadCount(ctx, conv.ID, high)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)
}

func Test_ListMessages_OrderedOldestFirst(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()
	low, high := pair(t)

	conv, _, err := repo.GetOrCreate(ctx, low, high, nil)
	require.NoError(t, err)

	base := time.Now().UTC()
	contents := []string{"first", "second", "third"}
	for i, content := range contents {
		msg := &model.Message{
			ConversationID: conv.ID,
			SenderID:       low,
			RecipientID:    high,
			Content:        content,
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.CreateMessage(ctx, msg))
	}

	msgs, err := repo.ListMessagesMarkingRead(ctx, conv.ID, high)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	for i, content := range contents {
		assert.Equal(t, content, msgs[i].Content)
	}
}

func Test_UnreadCounts_Batched(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()

	viewer := uuid.New()
	peerA, peerB := uuid.New(), uuid.New()

	lowA, highA := model.CanonicalPair(viewer, peerA)
	lowB, highB := model.CanonicalPair(viewer, peerB)

	convA, _, err := repo.GetOrCreate(ctx, lowA, highA, nil)
	require.NoError(t, err)
	convB, _, err := repo.GetOrCreate(ctx, lowB, highB, nil)
	require.NoError(t, err)

	base := time.Now().UTC()
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.CreateMessage(ctx, &model.Message{
			ConversationID: convA.ID,
			SenderID:       peerA,
			RecipientID:    viewer,
			Content:        "ping",
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.CreateMessage(ctx, &model.Message{
		ConversationID: convB.ID,
		SenderID:       viewer,
		RecipientID:    peerB,
		Content:        "pong",
		CreatedAt:      base,
	}))

	counts, err := repo.UnreadCounts(ctx, viewer, []uuid.UUID{convA.ID, convB.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, counts[convA.ID])
	assert.Equal(t, 0, counts[convB.ID])

	counts, err = repo.UnreadCounts(ctx, viewer, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func Test_LastMessages(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()

	viewer := uuid.New()
	peerA, peerB := uuid.New(), uuid.New()
	lowA, highA := model.CanonicalPair(viewer, peerA)
	lowB, highB := model.CanonicalPair(viewer, peerB)

	convA, _, err := repo.GetOrCreate(ctx, lowA, highA, nil)
	require.NoError(t, err)
	convB, _, err := repo.GetOrCreate(ctx, lowB, highB, nil)
	require.NoError(t, err)

	base := time.Now().UTC()
	for i, content := range []string{"old", "new"} {
		require.NoError(t, repo.CreateMessage(ctx, &model.Message{
			ConversationID: convA.ID,
			SenderID:       peerA,
			RecipientID:    viewer,
			Content:        content,
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}))
	}

	latest, err := repo.LastMessages(ctx, []uuid.UUID{convA.ID, convB.ID})
	require.NoError(t, err)
	require.Contains(t, latest, convA.ID)
	assert.Equal(t, "new", latest[convA.ID].Content)

	// convB has no messages yet and stays absent.
	_, ok := latest[convB.ID]
	assert.False(t, ok)

	last, err := repo.LastMessage(ctx, convB.ID)
	require.NoError(t, err)
	assert.Nil(t, last)
}

func Test_ListByParticipant_NewestActivityFirst(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()

	viewer := uuid.New()
	peerA, peerB := uuid.New(), uuid.New()
	lowA, highA := model.CanonicalPair(viewer, peerA)
	lowB, highB := model.CanonicalPair(viewer, peerB)

	convA, _, err := repo.GetOrCreate(ctx, lowA, highA, nil)
	require.NoError(t, err)
	convB, _, err := repo.GetOrCreate(ctx, lowB, highB, nil)
	require.NoError(t, err)

	// Activity in the older conversation moves it to the top.
	require.NoError(t, repo.CreateMessage(ctx, &model.Message{
		ConversationID: convA.ID,
		SenderID:       peerA,
		RecipientID:    viewer,
		Content:        "bump",
		CreatedAt:      time.Now().UTC().Add(time.Hour),
	}))

	convs, err := repo.ListByParticipant(ctx, viewer)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, convA.ID, convs[0].ID)
	assert.Equal(t, convB.ID, convs[1].ID)

	// A stranger sees neither.
	convs, err = repo.ListByParticipant(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, convs)
}

func Test_GetMessageInConversation_ScopedLookup(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()

	viewer := uuid.New()
	peerA, peerB := uuid.New(), uuid.New()
	lowA, highA := model.CanonicalPair(viewer, peerA)
	lowB, highB := model.CanonicalPair(viewer, peerB)

	convA, _, err := repo.GetOrCreate(ctx, lowA, highA, nil)
	require.NoError(t, err)
	convB, _, err := repo.GetOrCreate(ctx, lowB, highB, nil)
	require.NoError(t, err)

	msg := &model.Message{
		ConversationID: convA.ID,
		SenderID:       viewer,
		RecipientID:    peerA,
		Content:        "quoted",
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.CreateMessage(ctx, msg))

	found, err := repo.GetMessageInConversation(ctx, msg.ID, convA.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, msg.ID, found.ID)

	// Same message id against the wrong conversation does not resolve.
	found, err = repo.GetMessageInConversation(ctx, msg.ID, convB.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func Test_BuyerSellerExchange(t *testing.T) {
	cleanupTables(t)
	repo := newRepo()
	ctx := context.Background()
	buyer, seller := uuid.New(), uuid.New()
	low, high := model.CanonicalPair(buyer, seller)
	listingID := uuid.New()

	// Buyer opens the listing page and sends the first message.
	conv, created, err := repo.GetOrCreate(ctx, low, high, &listingID)
	require.NoError(t, err)
	require.True(t, created)

	base := time.Now().UTC()
	first := &model.Message{
		ConversationID: conv.ID,
		SenderID:       buyer,
		RecipientID:    seller,
		Content:        "Is this available?",
		ListingID:      &listingID,
		CreatedAt:      base,
	}
	require.NoError(t, repo.CreateMessage(ctx, first))

	// Seller sees one unread conversation.
	convs, err := repo.ListByParticipant(ctx, seller)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	counts, err := repo.UnreadCounts(ctx, seller, []uuid.UUID{conv.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, counts[conv.ID])

	// Seller opens the thread, which clears the unread, and replies.
	msgs, err := repo.ListMessagesMarkingRead(ctx, conv.ID, seller)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].IsRead)

	reply := &model.Message{
		ConversationID:  conv.ID,
		SenderID:        seller,
		RecipientID:     buyer,
		Content:         "Yes, still for sale.",
		ParentMessageID: &first.ID,
		CreatedAt:       base.Add(time.Second),
	}
	require.NoError(t, repo.CreateMessage(ctx, reply))

	// Buyer's list view shows the reply on top with one unread.
	last, err := repo.LastMessages(ctx, []uuid.UUID{conv.ID})
	require.NoError(t, err)
	assert.Equal(t, reply.ID, last[conv.ID].ID)
	unread, err := repo.UnreadCount(ctx, conv.ID, buyer)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	// Buyer opens the thread: both sides read, nobody unread.
	msgs, err = repo.ListMessagesMarkingRead(ctx, conv.ID, buyer)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, first.ID, msgs[0].ID)
	assert.Equal(t, reply.ID, msgs[1].ID)

	for _, viewer := range []uuid.UUID{buyer, seller} {
		n, err := repo.UnreadCount(ctx, conv.ID, viewer)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	}

	reloaded, err := repo.GetByID(ctx, conv.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, reply.CreatedAt, reloaded.LastMessageAt, time.Millisecond)
}
