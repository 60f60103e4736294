package mail

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Provider is a mail transport
type Provider interface {
	Name() string
	Send(ctx context.Context, msg Message) error
	Configured() bool
}

//go:generate moq -rm -out mail_mock.go . Sender

// Sender delivers a plain text message to a set of recipients
type Sender interface {
	Send(ctx context.Context, subject, body string, recipients []string) error
}

var ErrNoProvider = errors.New("no configured mail provider available")

// Registry sends mail through a primary provider and tries the fallback
// providers, in order, when the primary fails.
type Registry struct {
	mu        sync.RWMutex
	from      string
	providers map[string]Provider
	primary   string
	fallback  []string
	log       zerolog.Logger
}

func NewRegistry(from string, log zerolog.Logger) *Registry {
	return &Registry{
		from:      from,
		providers: map[string]Provider{},
		log:       log,
	}
}

func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[p.Name()] = p
	r.log.Info().Str("provider", p.Name()).Bool("configured", p.Configured()).Msg("registered mail provider")
}

func (r *Registry) SetPrimary(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("mail provider %q not registered", name)
	}
	r.primary = name
	return nil
}

func (r *Registry) SetFallback(names ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range names {
		if _, ok := r.providers[name]; !ok {
			return fmt.Errorf("mail provider %q not registered", name)
		}
	}
	r.fallback = names
	return nil
}

func (r *Registry) candidates() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []Provider{}
	seen := map[string]bool{}

	for _, name := range append([]string{r.primary}, r.fallback...) {
		p, ok := r.providers[name]
		if !ok || seen[name] || !p.Configured() {
			continue
		}
		seen[name] = true
		result = append(result, p)
	}

	return result
}

func (r *Registry) Send(ctx context.Context, subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}

	providers := r.candidates()
	if len(providers) == 0 {
		return ErrNoProvider
	}

	msg := Message{
		From:    r.from,
		To:      recipients,
		Subject: subject,
		Body:    body,
	}

	var first error

	for _, p := range providers {
		err := p.Send(ctx, msg)
		if err == nil {
			return nil
		}

		r.log.Warn().Err(err).Str("provider", p.Name()).Msg("mail provider failed")

		if first == nil {
			first = err
		}
	}

	return first
}
