// Package service implements the catalog use cases. Every operation takes
// the calling principal explicitly and runs in one store transaction;
// events are published only after the transaction commits.
package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/pkg/pagination"
	"github.com/narwhalmedia/catalog/pkg/validation"
)

// Deps are the collaborators shared by every service.
type Deps struct {
	Store     repository.Store
	Enforcer  *auth.PolicyEnforcer
	Publisher interfaces.EventPublisher
	Logger    interfaces.Logger
	Limits    pagination.Limits
}

type base struct {
	store     repository.Store
	guard     *Guard
	resolver  *Resolver
	publisher interfaces.EventPublisher
	logger    interfaces.Logger
	component string
	limits    pagination.Limits
}

func newBase(deps Deps, component string) base {
	limits := deps.Limits
	if limits.MaxSize == 0 {
		limits = pagination.DefaultLimits()
	}
	return base{
		store:     deps.Store,
		guard:     NewGuard(deps.Enforcer),
		resolver:  NewResolver(),
		publisher: deps.Publisher,
		logger:    deps.Logger.WithFields(interfaces.String("component", component)),
		component: component,
		limits:    limits,
	}
}

// log returns the request logger the HTTP middleware stored in ctx, or the
// service logger when ctx carries none.
func (b *base) log(ctx context.Context) interfaces.Logger {
	reqLogger := logger.FromContext(ctx)
	if _, none := reqLogger.(*logger.NoopLogger); none {
		return b.logger
	}
	return reqLogger.WithFields(interfaces.String("component", b.component))
}

func (b *base) page(req pagination.Request) (pagination.Request, error) {
	return b.limits.Resolve(req)
}

func validateStruct(input interface{}) error {
	return validation.Struct(input)
}

// pending collects the events of one operation until its transaction commits.
type pending []interfaces.Event

func (p *pending) add(aggregate, action string, id interface{}, data map[string]interface{}) {
	*p = append(*p, events.NewAggregateEvent(aggregate, action, id, data))
}

// publish sends committed events. Failures are logged; the operation has
// already succeeded.
func (b *base) publish(ctx context.Context, evts pending) {
	if b.publisher == nil {
		return
	}
	for _, event := range evts {
		if err := b.publisher.Publish(ctx, event); err != nil {
			b.log(ctx).Error("Failed to publish event",
				interfaces.String("event_type", event.EventType()),
				interfaces.String("aggregate_id", event.AggregateID()),
				interfaces.Error(err))
		}
	}
}

func principalField(p auth.Principal) interfaces.Field {
	return interfaces.String("principal", p.UserID)
}
