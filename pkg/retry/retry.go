package retry

import (
	"context"
	"math/rand"
	"time"
)

// Policy controls how often and how long an operation is retried.
type Policy struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Factor       float64
	Jitter       time.Duration
}

func DefaultPolicy() *Policy {
	return &Policy{
		MaxRetries:   3,
		InitialDelay: 250 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Factor:       2.0,
		Jitter:       50 * time.Millisecond,
	}
}

type Retrier struct {
	policy *Policy
	rnd    *rand.Rand
}

func New(policy *Policy) *Retrier {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Retrier{
		policy: policy,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Do runs op until it succeeds, the retry budget is spent, or ctx ends.
// The last operation error is returned when the budget runs out.
func (r *Retrier) Do(ctx context.Context, op func() error) error {
	delay := r.policy.InitialDelay

	var err error
	for attempt := 0; ; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if attempt == r.policy.MaxRetries {
			return err
		}

		wait := delay + time.Duration(r.rnd.Float64()*float64(r.policy.Jitter))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * r.policy.Factor)
		if delay > r.policy.MaxDelay {
			delay = r.policy.MaxDelay
		}
	}
}
