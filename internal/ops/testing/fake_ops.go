// Package testing provides test doubles for the ops package.
package testing

import (
	"context"
	"sync"

	"github.com/rileyhilliard/icp/internal/ops"
	"github.com/rileyhilliard/icp/internal/principal"
)

// CanisterCall records a call to Start or Stop.
type CanisterCall struct {
	Agent    ops.Agent
	Canister principal.Principal
}

// TransferCall records a call to Transfer.
type TransferCall struct {
	Agent ops.Agent
	From  principal.Principal
	To    principal.Principal
}

// FakeOps records every operation invoked through its Initializers.
type FakeOps struct {
	mu sync.Mutex

	// Configuration
	FailError error

	// Call tracking
	StartCalls    []CanisterCall
	StopCalls     []CanisterCall
	TransferCalls []TransferCall
}

// NewFakeOps creates fake operations that succeed by default.
func NewFakeOps() *FakeOps {
	return &FakeOps{}
}

// Initializers returns factories bound to this fake.
func (f *FakeOps) Initializers() ops.Initializers {
	return ops.Initializers{
		Canister: ops.CanisterInitializers{
			Start: func(a ops.Agent) ops.Starter {
				return ops.StarterFunc(func(_ context.Context, c principal.Principal) error {
					f.mu.Lock()
					defer f.mu.Unlock()
					f.StartCalls = append(f.StartCalls, CanisterCall{Agent: a, Canister: c})
					return f.FailError
				})
			},
			Stop: func(a ops.Agent) ops.Stopper {
				return ops.StopperFunc(func(_ context.Context, c principal.Principal) error {
					f.mu.Lock()
					defer f.mu.Unlock()
					f.StopCalls = append(f.StopCalls, CanisterCall{Agent: a, Canister: c})
					return f.FailError
				})
			},
		},
		Token: ops.TokenInitializers{
			Transfer: func(a ops.Agent) ops.Transferer {
				return ops.TransfererFunc(func(_ context.Context, from, to principal.Principal) error {
					f.mu.Lock()
					defer f.mu.Unlock()
					f.TransferCalls = append(f.TransferCalls, TransferCall{Agent: a, From: from, To: to})
					return f.FailError
				})
			},
		},
	}
}

// TotalCalls returns the number of operations invoked so far.
func (f *FakeOps) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.StartCalls) + len(f.StopCalls) + len(f.TransferCalls)
}
