package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/application/alarms"
	"github.com/diwise/alarmer/internal/pkg/application/provisioning"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/logging"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/tracing"
	"github.com/diwise/alarmer/internal/pkg/presentation/api/auth"
	"github.com/diwise/alarmer/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("alarmer/api")

// Scoper attaches a database connection scope to a request context
type Scoper interface {
	Scope(ctx context.Context) (context.Context, func())
}

type Options struct {
	// Primary enables the trigger route
	Primary bool
	// Events streams alarm events to callers with master access
	Events http.Handler
	Authz  application.Authorizer
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, tokenAuth *jwtauth.JWTAuth, db Scoper, alarmSvc alarms.AlarmService, provSvc provisioning.ProvisioningService, opts Options) *chi.Mux {
	log := logging.GetLoggerFromContext(ctx)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v0", func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(withLogger(log))
		r.Use(auth.Authenticator)

		if opts.Events != nil && opts.Authz != nil {
			r.Get("/events", eventsHandler(opts.Authz, opts.Events))
		}

		r.Group(func(r chi.Router) {
			r.Use(withConnectionScope(db))

			r.Route("/subscriptions", func(r chi.Router) {
				r.Get("/", listSubscriptionsHandler(alarmSvc))
				r.Put("/", subscribeHandler(alarmSvc))
				r.Delete("/", unsubscribeHandler(alarmSvc))
			})

			r.Route("/alarms", func(r chi.Router) {
				r.Post("/", createAlarmHandler(provSvc))
				r.Delete("/", destroyAlarmHandler(provSvc))
				r.Put("/description", setDescriptionHandler(provSvc))
				r.Get("/rules", listRulePropsHandler(provSvc))
				r.Put("/rules", setRulePropsHandler(provSvc))
				r.Post("/ack", ackHandler(alarmSvc))

				if opts.Primary {
					r.Post("/trigger", triggerHandler(alarmSvc))
				}
			})

			r.Get("/log", getLogHandler(alarmSvc))
		})
	})

	return router
}

func withLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestLogger := log
			if traceID := tracing.ExtractTraceID(trace.SpanFromContext(r.Context())); traceID != "" {
				requestLogger = log.With().Str("traceID", traceID).Logger()
			}

			next.ServeHTTP(w, r.WithContext(logging.NewContextWithLogger(r.Context(), requestLogger)))
		})
	}
}

func withConnectionScope(db Scoper) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, release := db.Scope(r.Context())
			defer release()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func eventsHandler(authz application.Authorizer, stream http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ok, err := authz.Authorized(ctx, application.IdentityFromContext(ctx), "", application.AccessMaster)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %w", application.ErrOperationFailed, err), "unable to check access")
			return
		}

		if !ok {
			writeError(ctx, w, application.ErrAccessDenied, "event stream requires master access")
			return
		}

		stream.ServeHTTP(w, r)
	}
}

func listSubscriptionsHandler(svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-subscriptions")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		subscriptions, err := svc.ListSubscriptions(ctx, application.IdentityFromContext(ctx))
		if err != nil {
			writeError(ctx, w, err, "unable to list subscriptions")
			return
		}

		writeJSON(w, http.StatusOK, newListResponse(subscriptions, 0))
	}
}

func subscribeHandler(svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "subscribe")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		alarmID, err := requiredAlarmID(r)
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		level, err := requiredIntParam(r, "level")
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		err = svc.Subscribe(ctx, application.IdentityFromContext(ctx), alarmID, level)
		if err != nil {
			writeError(ctx, w, err, "unable to subscribe")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func unsubscribeHandler(svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "unsubscribe")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		alarmID, err := requiredAlarmID(r)
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		err = svc.Unsubscribe(ctx, application.IdentityFromContext(ctx), alarmID)
		if err != nil {
			writeError(ctx, w, err, "unable to unsubscribe")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ackHandler(svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "acknowledge")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		alarmID, err := requiredAlarmID(r)
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		err = svc.Acknowledge(ctx, application.IdentityFromContext(ctx), alarmID)
		if err != nil {
			writeError(ctx, w, err, "unable to acknowledge alarm")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func triggerHandler(svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "trigger")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		alarmID, err := requiredAlarmID(r)
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		level, err := intParam(r, "level", 0)
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		err = svc.TriggerAs(ctx, application.IdentityFromContext(ctx), alarmID, level)
		if err != nil {
			writeError(ctx, w, err, "trigger failed")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getLogHandler(svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-log")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		limit, err := intParam(r, "limit", application.DefaultLogLimit)
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		entries, err := svc.GetLog(ctx, application.IdentityFromContext(ctx), r.URL.Query().Get("id"), limit)
		if err != nil {
			writeError(ctx, w, err, "unable to fetch log")
			return
		}

		writeJSON(w, http.StatusOK, newListResponse(entries, limit))
	}
}

func createAlarmHandler(svc provisioning.ProvisioningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		spec := types.AlarmSpec{}
		if err = decodeBody(r, &spec); err != nil {
			writeError(ctx, w, err, "unable to unmarshal body")
			return
		}

		created, err := svc.Create(ctx, application.IdentityFromContext(ctx), spec)
		if err != nil {
			writeError(ctx, w, err, "unable to create alarm")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func destroyAlarmHandler(svc provisioning.ProvisioningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "destroy-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		alarmID, err := requiredAlarmID(r)
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		ok, err := svc.Destroy(ctx, application.IdentityFromContext(ctx), alarmID)
		if err != nil {
			writeError(ctx, w, err, "unable to destroy alarm")
			return
		}

		writeJSON(w, http.StatusOK, types.DestroyResult{OK: ok})
	}
}

func setDescriptionHandler(svc provisioning.ProvisioningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "set-description")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		alarmID, err := requiredAlarmID(r)
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		update := types.DescriptionUpdate{}
		if err = decodeBody(r, &update); err != nil {
			writeError(ctx, w, err, "unable to unmarshal body")
			return
		}

		err = svc.SetDescription(ctx, application.IdentityFromContext(ctx), alarmID, update.Description, update.Persist)
		if err != nil {
			writeError(ctx, w, err, "unable to set description")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func listRulePropsHandler(svc provisioning.ProvisioningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-rule-props")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		alarmID, err := requiredAlarmID(r)
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		props, err := svc.ListRuleProps(ctx, application.IdentityFromContext(ctx), alarmID)
		if err != nil {
			writeError(ctx, w, err, "unable to list rule properties")
			return
		}

		writeJSON(w, http.StatusOK, props)
	}
}

func setRulePropsHandler(svc provisioning.ProvisioningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "set-rule-props")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		alarmID, err := requiredAlarmID(r)
		if err != nil {
			writeError(ctx, w, err, "bad request")
			return
		}

		update := types.RulePropsUpdate{}
		if err = decodeBody(r, &update); err != nil {
			writeError(ctx, w, err, "unable to unmarshal body")
			return
		}

		err = svc.SetRuleProps(ctx, application.IdentityFromContext(ctx), alarmID, update)
		if err != nil {
			writeError(ctx, w, err, "unable to set rule properties")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func requiredAlarmID(r *http.Request) (string, error) {
	alarmID := r.URL.Query().Get("id")
	if alarmID == "" {
		return "", fmt.Errorf("%w: query parameter id is required", application.ErrInvalidArgument)
	}
	return alarmID, nil
}

func requiredIntParam(r *http.Request, name string) (int, error) {
	if !r.URL.Query().Has(name) {
		return 0, fmt.Errorf("%w: query parameter %s is required", application.ErrInvalidArgument, name)
	}

	return intParam(r, name, 0)
}

func intParam(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %s must be an integer", application.ErrInvalidArgument, name)
	}

	return i, nil
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s", application.ErrInvalidArgument, err.Error())
	}
	return nil
}

var statusCodes = map[string]int{
	application.CodeInvalidArgument: http.StatusBadRequest,
	application.CodeUnauthenticated: http.StatusUnauthorized,
	application.CodeAccessDenied:    http.StatusForbidden,
	application.CodeNotFound:        http.StatusNotFound,
	application.CodeOperationFailed: http.StatusInternalServerError,
}

func writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	log := logging.GetLoggerFromContext(ctx)

	code := application.ErrorCode(err)
	status := statusCodes[code]

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
	} else if !errors.Is(err, application.ErrNotFound) {
		log.Info().Err(err).Msg(msg)
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "operation failed"
	}

	writeJSON(w, status, types.ErrorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}
