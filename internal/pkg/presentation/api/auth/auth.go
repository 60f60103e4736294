package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/logging"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/tracing"
	"github.com/diwise/alarmer/pkg/types"
	"github.com/go-chi/jwtauth/v5"
	"github.com/open-policy-agent/opa/rego"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("alarmer/authz")

// registered claims that are validated by the verifier and never passed on
var registeredClaims = []string{"exp", "iat", "nbf"}

// Authenticator turns a verified token into the caller identity. Requests
// without a valid token are rejected.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.GetLoggerFromContext(r.Context())

		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			if err == nil {
				err = errors.New("no token found")
			}

			logger.Info().Err(err).Msg("request is not authenticated")

			w.Header().Add("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			b, _ := json.Marshal(types.ErrorResponse{Code: application.CodeUnauthenticated, Message: err.Error()})
			w.Write(b)
			return
		}

		who := application.Identity{
			User:     token.Subject(),
			UserType: claimString(claims, "utp"),
			KeyID:    claimString(claims, "key_id"),
			Claims:   lo.OmitByKeys(claims, registeredClaims),
		}

		next.ServeHTTP(w, r.WithContext(application.WithIdentity(r.Context(), who)))
	})
}

func claimString(claims map[string]any, name string) string {
	s, _ := claims[name].(string)
	return s
}

type policyAuthorizer struct {
	query rego.PreparedEvalQuery
}

// NewPolicyAuthorizer prepares the rego policy read from policies. The policy
// must define data.alarmer.authz.allow as a boolean.
func NewPolicyAuthorizer(ctx context.Context, policies io.Reader) (application.Authorizer, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	query, err := rego.New(
		rego.Query("x = data.alarmer.authz.allow"),
		rego.Module("alarmer.rego", string(module)),
	).PrepareForEval(ctx)

	if err != nil {
		return nil, err
	}

	return &policyAuthorizer{query: query}, nil
}

func (a *policyAuthorizer) Authorized(ctx context.Context, who application.Identity, resource string, mode application.AccessMode) (bool, error) {
	var err error
	ctx, span := tracer.Start(ctx, "check-access")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.String("resource", resource), attribute.String("mode", string(mode)))

	claims := who.Claims
	if claims == nil {
		claims = map[string]any{}
	}

	input := map[string]any{
		"identity": map[string]any{
			"user":      who.User,
			"user_type": who.UserType,
			"key_id":    who.KeyID,
			"claims":    claims,
		},
		"resource": resource,
		"mode":     string(mode),
	}

	results, err := a.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return false, fmt.Errorf("opa eval failed: %w", err)
	}

	if len(results) == 0 {
		err = errors.New("opa query could not be satisfied")
		return false, err
	}

	allowed, ok := results[0].Bindings["x"].(bool)
	if !ok {
		err = errors.New("unexpected result type")
		return false, err
	}

	if !allowed {
		log := logging.GetLoggerFromContext(ctx)
		log.Debug().
			Str("user", who.User).Str("resource", resource).Str("mode", string(mode)).
			Msg("access denied by policy")
	}

	return allowed, nil
}
