package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service answers questions against the rule table and falls back to the
// external provider for everything unmatched. The provider can never block
// booking logic: it is called with its own timeout and every failure is
// swallowed into the canned per-language fallback string.
type Service struct {
	rules           []Rule
	equipment       EquipmentDirectory
	stats           StatsSource
	provider        Provider
	providerTimeout time.Duration
	logger          *zap.Logger
}

func NewService(
	equipment EquipmentDirectory,
	stats StatsSource,
	provider Provider,
	providerTimeout time.Duration,
	logger *zap.Logger,
) *Service {
	if providerTimeout <= 0 {
		providerTimeout = 10 * time.Second
	}
	return &Service{
		rules:           defaultRules(),
		equipment:       equipment,
		stats:           stats,
		provider:        provider,
		providerTimeout: providerTimeout,
		logger:          logger,
	}
}

func (s *Service) Answer(ctx context.Context, message, language string) (*Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyQuestion
	}
	if language != "vi" && language != "en" {
		language = "en"
	}

	q := strings.ToLower(message)
	for _, rule := range s.rules {
		if !rule.Match(q) {
			continue
		}
		content, err := rule.Respond(ctx, s, q, language)
		if err != nil {
			return nil, err
		}
		if content == "" {
			continue
		}
		return s.reply(content, rule.Name), nil
	}

	return s.reply(s.generate(ctx, message, language), "provider"), nil
}

func (s *Service) reply(content, rule string) *Reply {
	return &Reply{
		ID:        uuid.NewString(),
		Role:      "assistant",
		Content:   content,
		Rule:      rule,
		Timestamp: time.Now(),
	}
}

// generate asks the external provider and substitutes the fixed fallback on
// any failure, timeout, or missing configuration.
func (s *Service) generate(ctx context.Context, message, language string) string {
	if s.provider == nil {
		return tr(language, "fallback")
	}

	ctx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	answer, err := s.provider.Generate(ctx, message, language, s.systemContext(ctx))
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			s.logger.Warn("assistant provider call failed", zap.Error(err))
		}
		return tr(language, "fallback")
	}
	return answer
}

func (s *Service) systemContext(ctx context.Context) string {
	st, err := s.stats.Stats(ctx)
	if err != nil {
		return "lab equipment booking system"
	}
	return fmt.Sprintf(
		"lab equipment booking system: %d bookings (%d pending), %d equipment types with free units",
		st.TotalBookings, st.PendingBookings, st.AvailableEquipment,
	)
}
