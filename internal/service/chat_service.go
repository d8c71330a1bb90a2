package service

import (
	"context"
	"strings"
	"time"

	"keelie-chatbot-be/internal/dto"
	"keelie-chatbot-be/internal/pkg/logger"
	"keelie-chatbot-be/internal/repository"
	"keelie-chatbot-be/pkg/catalog"
	"keelie-chatbot-be/pkg/dialogue/faq"
	"keelie-chatbot-be/pkg/dialogue/frustration"
	"keelie-chatbot-be/pkg/dialogue/guardrail"
	"keelie-chatbot-be/pkg/dialogue/intent"
	"keelie-chatbot-be/pkg/dialogue/reply"
	"keelie-chatbot-be/pkg/dialogue/stock"
	"keelie-chatbot-be/pkg/dialogue/topic"
	"keelie-chatbot-be/pkg/store"
	"keelie-chatbot-be/pkg/textkit"

	"github.com/google/uuid"
)

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	Respond(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	Health(ctx context.Context) *dto.HealthResponse
}

// chatService runs the full pipeline for one message: guardrail, pending
// choice continuation, frustration, topic detectors, stock paths, intent
// scorer, FAQ, fallback. One conclusive reply per turn, pending state always
// either cleared or set explicitly.
type chatService struct {
	sessions  repository.ISessionRepository
	provider  catalog.Provider
	texts     *reply.Texts
	topics    *topic.Set
	monitor   *frustration.Monitor
	intents   *intent.Scorer
	faqs      *faq.Matcher
	resolver  *stock.Resolver
	publisher IEscalationPublisher
	logger    logger.ILogger
	now       func() time.Time
}

func NewChatService(
	sessions repository.ISessionRepository,
	provider catalog.Provider,
	texts *reply.Texts,
	topics *topic.Set,
	monitor *frustration.Monitor,
	intents *intent.Scorer,
	faqs *faq.Matcher,
	resolver *stock.Resolver,
	publisher IEscalationPublisher,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		sessions:  sessions,
		provider:  provider,
		texts:     texts,
		topics:    topics,
		monitor:   monitor,
		intents:   intents,
		faqs:      faqs,
		resolver:  resolver,
		publisher: publisher,
		logger:    sysLogger,
		now:       time.Now,
	}
}

func (s *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	sess := store.NewSession(uuid.NewString())
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Info("chat", "session created", map[string]interface{}{"session_id": sess.ID})
	return &dto.CreateSessionResponse{SessionId: sess.ID}, nil
}

func (s *chatService) Respond(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	sess, found, err := s.sessions.Get(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	if !found {
		sess = store.NewSession(req.SessionId)
	}

	raw := req.Message
	norm := textkit.Normalize(raw)

	answer, topicName, escalated := s.pipeline(ctx, sess, raw, norm)

	sess.LastNormalizedMessage = norm
	sess.LastMessageAt = s.now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.Info("chat", "message handled", map[string]interface{}{
		"session_id": sess.ID,
		"topic":      topicName,
		"state":      sess.State,
		"strikes":    sess.FrustrationStrikes,
		"escalated":  escalated,
	})

	return &dto.SendMessageResponse{
		SessionId: sess.ID,
		Reply:     answer,
		Topic:     topicName,
		Escalated: escalated,
	}, nil
}

// pipeline applies the fixed priority order and returns the first conclusive
// reply. It mutates sess but never persists it.
func (s *chatService) pipeline(ctx context.Context, sess *store.Session, raw, norm string) (answer, topicName string, escalated bool) {
	// Privacy first, on the raw text, before anything can consume the turn.
	if guardrail.ContainsPersonalInfo(raw) {
		sess.ClearPending()
		return s.texts.PrivacyNotice(), "privacy", false
	}

	// An open disambiguation owns the turn unless the user changed topic or
	// cancelled; then it is abandoned and the cascade below takes over.
	if sess.AwaitingChoice() {
		if s.topicFires(norm) || stock.IsCancel(norm) {
			sess.ClearPending()
		} else {
			return s.resolver.Choose(norm, sess), "stock_choice", false
		}
	}

	if s.monitor.Detect(raw, norm, sess.LastNormalizedMessage, sess.LastMessageAt) {
		sess.FrustrationStrikes++
		sess.ClearPending()
		if sess.FrustrationStrikes >= frustration.StrikeLimit {
			s.publishEscalation(ctx, sess, norm)
			return s.texts.Escalation(), "escalation", true
		}
		return s.texts.Clarify(), "frustration", false
	}

	if name, resp, ok := s.topics.Match(norm); ok {
		sess.ClearPending()
		s.resetStrikesIfPositive(sess, norm)
		return resp, name, false
	}

	rows := s.catalogRows(ctx)

	if code, ok := stock.ExtractCode(raw); ok {
		sess.ClearPending()
		s.resetStrikesIfPositive(sess, norm)
		return s.resolver.LookupCode(code, rows), "stock_code", false
	}

	if stock.IsRequest(norm) {
		resp := s.resolver.Resolve(stock.NormalizeQuery(norm), rows, sess)
		s.resetStrikesIfPositive(sess, norm)
		return resp, "stock_lookup", false
	}

	if name, resp, ok := s.intents.MatchName(norm); ok {
		sess.ClearPending()
		s.resetStrikesIfPositive(sess, norm)
		return resp, "intent_" + name, false
	}

	if answer, ok := s.faqs.Match(norm); ok {
		sess.ClearPending()
		s.resetStrikesIfPositive(sess, norm)
		return answer, "faq", false
	}

	sess.ClearPending()
	return s.texts.Fallback(), "fallback", false
}

// topicFires checks whether any topic detector would claim the message,
// without rendering a reply.
func (s *chatService) topicFires(norm string) bool {
	_, _, ok := s.topics.Match(norm)
	return ok
}

// resetStrikesIfPositive clears the strike counter when an appreciative
// message got a real (non-fallback) answer.
func (s *chatService) resetStrikesIfPositive(sess *store.Session, norm string) {
	if sess.FrustrationStrikes > 0 && frustration.IsPositive(norm) {
		sess.FrustrationStrikes = 0
	}
}

func (s *chatService) publishEscalation(ctx context.Context, sess *store.Session, norm string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEscalation(ctx, sess.ID, norm, sess.FrustrationStrikes); err != nil {
		s.logger.Error("chat", "failed to publish escalation", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
	}
}

// catalogRows tolerates an unavailable catalog; the resolver treats an empty
// list as the degraded path.
func (s *chatService) catalogRows(ctx context.Context) []catalog.Row {
	if s.provider == nil {
		return nil
	}
	rows, err := s.provider.GetCatalog(ctx)
	if err != nil {
		s.logger.Warn("chat", "catalog unavailable", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return rows
}

func (s *chatService) Health(ctx context.Context) *dto.HealthResponse {
	rows := s.catalogRows(ctx)
	status := "ok"
	if len(rows) == 0 {
		status = "degraded"
	}
	return &dto.HealthResponse{
		Status:           status,
		CatalogAvailable: len(rows) > 0,
		CatalogSize:      len(rows),
	}
}

// Guard against accidental whitespace-only messages reaching the pipeline
// from non-HTTP callers; the REST controller rejects them earlier.
func IsEmptyMessage(message string) bool {
	return strings.TrimSpace(message) == ""
}
