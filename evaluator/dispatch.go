package evaluator

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/jito-foundation/bell/belllog"
	"github.com/jito-foundation/bell/berr"
	"github.com/jito-foundation/bell/config"
	"github.com/jito-foundation/bell/sinks"
)

var log = belllog.NewSubsystemLogger("EVAL")

// action is one rendered notification, ready to fan out to its declared
// destinations.
type action struct {
	description  string
	amount       *float64
	unit         string
	signature    string
	destinations []config.Destination
}

// dispatch renders and sends act to every declared destination, bounded
// and fanned out with errgroup, each call throttled by its own
// destination's rate limiter. Per spec.md §5 this is an explicitly
// permitted parallelization of the reference's sequential dispatch; the
// aggregate result and counters remain deterministic regardless of
// completion order.
func (e *Evaluator) dispatch(ctx context.Context, act action) error {
	if len(act.destinations) == 0 {
		return nil
	}

	var (
		attempted int32
		failed    int32
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, dest := range act.destinations {
		dest := dest
		sink, ok := e.sinks[dest]
		if !ok {
			continue
		}

		g.Go(func() error {
			limiter := e.limiterFor(dest)
			if limiter != nil {
				if err := limiter.Wait(gctx); err != nil {
					return nil
				}
			}

			msg := sinks.Message{
				Description: renderTemplate(e.cfg, dest, act.description, act.amount, act.unit, act.signature),
				Amount:      act.amount,
				Unit:        act.unit,
				Signature:   act.signature,
				ExplorerURL: e.cfg.ExplorerURL,
			}

			outcome, err := sink.Send(gctx, msg)
			switch outcome {
			case sinks.OutcomeSent:
				atomicIncr(&attempted)
				e.tracker.IncSuccess()
				if e.exporter != nil {
					e.exporter.ObserveDispatch(true)
				}
			case sinks.OutcomeFailed:
				atomicIncr(&attempted)
				atomicIncr(&failed)
				e.tracker.IncFail()
				if e.exporter != nil {
					e.exporter.ObserveDispatch(false)
				}
				log.Warnf("sink %s failed: %v", dest, err)
			case sinks.OutcomeSkipped:
				// Neither counted nor attempted.
			}
			return nil
		})
	}

	_ = g.Wait()

	if attempted > 0 && attempted == failed {
		return berr.Newf(berr.Notification, "all %d destinations failed for %q", attempted, act.description)
	}
	return nil
}

func (e *Evaluator) limiterFor(dest config.Destination) *rate.Limiter {
	e.mu.Lock()
	defer e.mu.Unlock()
	limiter, ok := e.limiters[dest]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(5), 5) // 5 req/s burst 5, per destination
		e.limiters[dest] = limiter
	}
	return limiter
}
