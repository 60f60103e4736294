package webevents

import (
	"context"
	"net/http"

	gosse "github.com/alexandrevicenzi/go-sse"
	"github.com/diwise/alarmer/internal/pkg/application/events"
)

// WebEvents streams alarm events to browsers as server-sent events
type WebEvents interface {
	events.Publisher
	http.Handler
	Shutdown()
}

type webEvents struct {
	s *gosse.Server
}

func New() WebEvents {
	return &webEvents{
		s: gosse.NewServer(&gosse.Options{
			ChannelNameFunc: func(*http.Request) string { return "alarms" },
		}),
	}
}

func (we *webEvents) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	we.s.ServeHTTP(w, r)
}

func (we *webEvents) Shutdown() {
	we.s.Shutdown()
}

func (we *webEvents) Publish(ctx context.Context, e events.Event) error {
	message := gosse.NewMessage(e.EventID(), string(e.Body()), e.TopicName())
	we.s.SendMessage("alarms", message)

	return nil
}
