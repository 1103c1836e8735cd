package auth

import (
	"context"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

type ctxKey struct{}

var ctxKeyActor = ctxKey{}

func WithActor(ctx context.Context, actor quiz.Actor) context.Context {
	return context.WithValue(ctx, ctxKeyActor, actor)
}

// ActorFromContext returns the authenticated actor, or a zero Actor when the
// request carried no valid credential.
func ActorFromContext(ctx context.Context) quiz.Actor {
	if v := ctx.Value(ctxKeyActor); v != nil {
		if a, ok := v.(quiz.Actor); ok {
			return a
		}
	}
	return quiz.Actor{}
}
