// Shared helpers for steeper CLI commands.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/steepworks/steeper/internal/rest"
	"github.com/steepworks/steeper/internal/sqlite"
	"github.com/steepworks/steeper/pkg/types"
)

// teaService is the payload shape every CLI command works with.
type teaService = types.DataService[*types.TeaVariety]

// newService builds the configured backend and initializes it with the
// resolved locator.
func newService(ctx context.Context) (teaService, error) {
	backend := resolveBackend()
	locator := resolveLocator(backend)

	var svc teaService
	switch backend {
	case backendSQLite:
		svc = sqlite.NewStore()
	case backendREST:
		svc = rest.NewTypedStore(nil)
	case backendRESTEnvelope:
		svc = &envelopedAdapter{store: rest.NewEnvelopedStore(nil)}
	default:
		return nil, fmt.Errorf("unknown backend %q (expected %s, %s or %s)",
			backend, backendSQLite, backendREST, backendRESTEnvelope)
	}

	if err := svc.Initialize(ctx, locator); err != nil {
		return nil, fmt.Errorf("initialize %s backend: %w", backend, err)
	}
	return svc, nil
}

// parseIDArg parses a positional identifier argument.
func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, &types.ArgumentError{Param: "id", Message: fmt.Sprintf("%q is not a number", arg)}
	}
	return id, nil
}

// printTea writes one variety as text or JSON per the --json flag.
func printTea(tea *types.TeaVariety) error {
	if flagJSON {
		return printJSON(tea)
	}
	fmt.Printf("%d\t%s\tsteep %s\tbrew %d°F\n", tea.ID, tea.Name, tea.SteepTime, tea.BrewTemp)
	return nil
}

// printTeas writes a variety listing as a table or JSON.
func printTeas(teas []*types.TeaVariety) error {
	if flagJSON {
		return printJSON(teas)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTEEP\tBREW °F")
	for _, tea := range teas {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", tea.ID, tea.Name, tea.SteepTime, tea.BrewTemp)
	}
	return w.Flush()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// envelopedAdapter exposes the enveloped REST backend through the
// tea-variety contract so every CLI command can drive it. A failed
// envelope becomes an ordinary error carrying the envelope message;
// the report-don't-raise behavior stays inside the rest package.
type envelopedAdapter struct {
	store *rest.EnvelopedStore
}

func (a *envelopedAdapter) Initialize(ctx context.Context, locator string) error {
	return a.store.Initialize(ctx, locator)
}

func (a *envelopedAdapter) List(ctx context.Context) ([]*types.TeaVariety, error) {
	return unwrapTeas(a.store.ListEnvelope(ctx))
}

func (a *envelopedAdapter) FindByID(ctx context.Context, id int64) (*types.TeaVariety, error) {
	return unwrapTea(a.store.GetEnvelope(ctx, id))
}

func (a *envelopedAdapter) Add(ctx context.Context, tea *types.TeaVariety) (*types.TeaVariety, error) {
	return unwrapTea(a.store.AddEnvelope(ctx, types.OKEnvelope(*tea)))
}

func (a *envelopedAdapter) Update(ctx context.Context, tea *types.TeaVariety) (*types.TeaVariety, error) {
	return unwrapTea(a.store.UpdateEnvelope(ctx, types.OKEnvelope(*tea)))
}

func (a *envelopedAdapter) Delete(ctx context.Context, tea *types.TeaVariety) (bool, error) {
	env := a.store.DeleteEnvelope(ctx, types.OKEnvelope(*tea))
	if !env.Success {
		return false, errors.New(env.Message)
	}
	return true, nil
}

func unwrapTeas(env *types.ResultEnvelope) ([]*types.TeaVariety, error) {
	if !env.Success {
		return nil, errors.New(env.Message)
	}
	teas := make([]*types.TeaVariety, len(env.Teas))
	for i := range env.Teas {
		teas[i] = &env.Teas[i]
	}
	return teas, nil
}

func unwrapTea(env *types.ResultEnvelope) (*types.TeaVariety, error) {
	if !env.Success {
		return nil, errors.New(env.Message)
	}
	if len(env.Teas) == 0 {
		return nil, types.ErrNotFound
	}
	return &env.Teas[0], nil
}
