package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keelie-chatbot-be/internal/dto"
	"keelie-chatbot-be/internal/pkg/logger"
	"keelie-chatbot-be/internal/repository/memory"
	"keelie-chatbot-be/pkg/catalog"
	"keelie-chatbot-be/pkg/dialogue/faq"
	"keelie-chatbot-be/pkg/dialogue/frustration"
	"keelie-chatbot-be/pkg/dialogue/intent"
	"keelie-chatbot-be/pkg/dialogue/reply"
	"keelie-chatbot-be/pkg/dialogue/stock"
	"keelie-chatbot-be/pkg/dialogue/topic"
	"keelie-chatbot-be/pkg/store"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }
func (noopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (noopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

type captureEscalations struct {
	calls []EscalationMessage
}

func (c *captureEscalations) PublishEscalation(_ context.Context, sessionID, lastMessage string, strikes int) error {
	c.calls = append(c.calls, EscalationMessage{SessionId: sessionID, LastMessage: lastMessage, Strikes: strikes})
	return nil
}

func newTestService(rows []catalog.Row, capture *captureEscalations) (IChatService, *memory.SessionRepository) {
	texts := reply.NewTexts("Keel Toys", "Keelie", "https://www.keeltoys.com/contact", 500, 250)
	sessions := memory.NewSessionRepository(time.Hour)
	svc := NewChatService(
		sessions,
		catalog.Static(rows),
		texts,
		topic.NewSet(texts, topic.DefaultCollections()),
		frustration.NewMonitor(nil),
		intent.NewScorer(intent.DefaultIntents(texts), reply.FixedSelector(0)),
		faq.NewMatcher(faq.DefaultEntries("Keel Toys")),
		stock.NewResolver(texts),
		capture,
		noopLogger{},
	)
	return svc, sessions
}

func send(t *testing.T, svc IChatService, sessionID, message string) *dto.SendMessageResponse {
	t.Helper()
	res, err := svc.Respond(context.Background(), &dto.SendMessageRequest{
		SessionId: sessionID,
		Message:   message,
	})
	require.NoError(t, err)
	return res
}

func mustSession(t *testing.T, sessions *memory.SessionRepository, id string) *store.Session {
	t.Helper()
	sess, found, err := sessions.Get(context.Background(), id)
	require.NoError(t, err)
	require.True(t, found)
	return sess
}

func TestRespondStockCodeEndToEnd(t *testing.T) {
	svc, sessions := newTestService([]catalog.Row{
		{ProductName: "Polar Bear Plush 20cm", StockCode: "PB1001"},
	}, &captureEscalations{})

	res := send(t, svc, "s1", "stock code for polar bear plush 20cm")
	assert.Contains(t, res.Reply, "PB1001")
	assert.False(t, res.Escalated)
	assert.Equal(t, store.StateIdle, mustSession(t, sessions, "s1").State)
}

func TestRespondMinimumOrder(t *testing.T) {
	svc, _ := newTestService(nil, &captureEscalations{})

	res := send(t, svc, "s1", "minimum order value?")
	assert.Contains(t, res.Reply, "£500")
	assert.Contains(t, res.Reply, "£250")
	assert.Contains(t, res.Reply, "keeltoys.com/contact")
}

func TestRespondEmptyCatalog(t *testing.T) {
	svc, sessions := newTestService(nil, &captureEscalations{})

	res := send(t, svc, "s1", "sku for teddy")
	assert.Contains(t, res.Reply, "can't access stock codes")
	assert.Contains(t, res.Reply, "keeltoys.com/contact")
	assert.Equal(t, store.StateIdle, mustSession(t, sessions, "s1").State)
}

func TestRespondPrivacyGuardrailShortCircuits(t *testing.T) {
	svc, sessions := newTestService(testCatalog(), &captureEscalations{})

	// open a disambiguation first
	res := send(t, svc, "s1", "stock code for polar bear")
	require.Contains(t, res.Reply, "which one do you mean")
	require.Equal(t, store.StateAwaitingChoice, mustSession(t, sessions, "s1").State)

	res = send(t, svc, "s1", "my email is a@b.com")
	assert.Contains(t, res.Reply, "privacy")
	assert.Equal(t, store.StateIdle, mustSession(t, sessions, "s1").State)
}

func TestRespondDisambiguationChoice(t *testing.T) {
	svc, sessions := newTestService(testCatalog(), &captureEscalations{})

	send(t, svc, "s1", "stock code for polar bear")
	require.Equal(t, store.StateAwaitingChoice, mustSession(t, sessions, "s1").State)

	res := send(t, svc, "s1", "2")
	assert.Contains(t, res.Reply, "PB1002")
	assert.Equal(t, store.StateIdle, mustSession(t, sessions, "s1").State)
}

func TestRespondPendingAbandonedByTopic(t *testing.T) {
	svc, sessions := newTestService(testCatalog(), &captureEscalations{})

	send(t, svc, "s1", "stock code for polar bear")
	require.Equal(t, store.StateAwaitingChoice, mustSession(t, sessions, "s1").State)

	res := send(t, svc, "s1", "actually what is the minimum order")
	assert.Contains(t, res.Reply, "£500")
	assert.Equal(t, store.StateIdle, mustSession(t, sessions, "s1").State)
}

func TestRespondEscalatesOnSecondStrike(t *testing.T) {
	capture := &captureEscalations{}
	svc, sessions := newTestService(testCatalog(), capture)

	res := send(t, svc, "s1", "this is wrong")
	assert.False(t, res.Escalated)
	assert.Equal(t, 1, mustSession(t, sessions, "s1").FrustrationStrikes)

	res = send(t, svc, "s1", "this is wrong")
	assert.True(t, res.Escalated)
	assert.Contains(t, res.Reply, "hand you over to a human")
	assert.Equal(t, 2, mustSession(t, sessions, "s1").FrustrationStrikes)

	require.Len(t, capture.calls, 1)
	assert.Equal(t, "s1", capture.calls[0].SessionId)
	assert.Equal(t, 2, capture.calls[0].Strikes)
}

func TestRespondShoutThenRepeatEscalates(t *testing.T) {
	capture := &captureEscalations{}
	svc, _ := newTestService(testCatalog(), capture)

	res := send(t, svc, "s1", "THIS IS WRONG!!")
	assert.False(t, res.Escalated)

	res = send(t, svc, "s1", "this is wrong")
	assert.True(t, res.Escalated)
}

func TestRespondPositiveResetsStrikes(t *testing.T) {
	svc, sessions := newTestService(testCatalog(), &captureEscalations{})

	send(t, svc, "s1", "this is wrong")
	require.Equal(t, 1, mustSession(t, sessions, "s1").FrustrationStrikes)

	res := send(t, svc, "s1", "thanks, what is the minimum order")
	assert.Contains(t, res.Reply, "£500")
	assert.Equal(t, 0, mustSession(t, sessions, "s1").FrustrationStrikes)
}

func TestRespondExplicitCodeLookup(t *testing.T) {
	svc, _ := newTestService(testCatalog(), &captureEscalations{})

	res := send(t, svc, "s1", "what product is PB1002")
	assert.Contains(t, res.Reply, "Polar Bear Plush 30cm")

	res = send(t, svc, "s1", "what product is ZZ9999")
	assert.Contains(t, res.Reply, "couldn't find")
}

func TestRespondFallback(t *testing.T) {
	svc, _ := newTestService(testCatalog(), &captureEscalations{})

	res := send(t, svc, "s1", "tell me a story about dragons")
	assert.Contains(t, res.Reply, "not totally sure")
	assert.Equal(t, "fallback", res.Topic)
}

func TestCreateSession(t *testing.T) {
	svc, sessions := newTestService(nil, &captureEscalations{})

	res, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, res.SessionId)

	sess := mustSession(t, sessions, res.SessionId)
	assert.Equal(t, store.StateIdle, sess.State)
}

func TestHealth(t *testing.T) {
	svc, _ := newTestService(testCatalog(), &captureEscalations{})
	h := svc.Health(context.Background())
	assert.Equal(t, "ok", h.Status)
	assert.True(t, h.CatalogAvailable)
	assert.Equal(t, 4, h.CatalogSize)

	empty, _ := newTestService(nil, &captureEscalations{})
	h = empty.Health(context.Background())
	assert.Equal(t, "degraded", h.Status)
	assert.False(t, h.CatalogAvailable)
}

func testCatalog() []catalog.Row {
	return []catalog.Row{
		{ProductName: "Polar Bear Plush 20cm", StockCode: "PB1001"},
		{ProductName: "Polar Bear Plush 30cm", StockCode: "PB1002"},
		{ProductName: "Panda Bear Plush 25cm", StockCode: "PD1001"},
		{ProductName: "Giraffe Standing 35cm", StockCode: "GR1001"},
	}
}
