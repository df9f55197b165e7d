package services

import (
	"context"
	"fmt"
	"time"

	"skuchat/internal/money"

	"github.com/google/uuid"
)

type ChargeRequest struct {
	SessionID   string
	AmountCents money.Cents
}

type ChargeResult struct {
	TransactionID string
	ChargedAt     time.Time
}

// Processor is the one-shot payment collaborator. A Charge is
// non-idempotent: callers must guarantee at most one in-flight call per
// cart and must never retry a request that may have completed.
type Processor interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}

// RefusalSource decides whether a simulated charge is refused.
// A nil error approves the charge.
type RefusalSource interface {
	Refuse(req ChargeRequest) error
}

// SimulatedProcessor stands in for a real gateway: it waits a fixed
// round-trip delay, honoring context cancellation, then consults its
// refusal source.
type SimulatedProcessor struct {
	Delay    time.Duration
	Refusals RefusalSource
}

func (p *SimulatedProcessor) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	if p.Delay > 0 {
		t := time.NewTimer(p.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ChargeResult{}, ctx.Err()
		case <-t.C:
		}
	}
	if p.Refusals != nil {
		if err := p.Refusals.Refuse(req); err != nil {
			return ChargeResult{}, err
		}
	}
	return ChargeResult{
		TransactionID: fmt.Sprintf("TXN-%s", uuid.NewString()[:8]),
		ChargedAt:     time.Now().UTC(),
	}, nil
}

// ApproveAll is the default refusal source: every charge succeeds.
type ApproveAll struct{}

func (ApproveAll) Refuse(ChargeRequest) error { return nil }
