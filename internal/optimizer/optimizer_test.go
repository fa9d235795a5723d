package optimizer

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/card-order-optimizer/internal/logging"
	"github.com/deckforge/card-order-optimizer/pkg/core"
	"github.com/deckforge/card-order-optimizer/pkg/milp"
	"github.com/deckforge/card-order-optimizer/pkg/solver"
)

func newTestOptimizer(t *testing.T, s solver.Solver) *Optimizer {
	t.Helper()
	o, err := New(s,
		WithLogger(logging.NewTestLogger()),
		WithRegisterer(prometheus.NewRegistry()))
	require.NoError(t, err)
	return o
}

func TestNewRequiresSolver(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestOptimizeConsolidatesVendors(t *testing.T) {
	// card a: $5 at v1, $4 at v2; card b: $6 at v2 only. Buying everything
	// from v2 costs 2*4+6+2 = 16; splitting costs 2*5+3+6+2 = 21. Shipping
	// makes consolidation win.
	p := twoVendorProblem()
	o := newTestOptimizer(t, exhaustiveSolver{})

	res, err := o.Optimize(context.Background(), p)
	require.NoError(t, err)

	assert.InDelta(t, 16.0, res.Total, 1e-9)
	assert.Equal(t, 1, res.ActiveVendors())
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "v2", res.Orders[0].Vendor)
	assert.Equal(t, 2, res.Quantity("card a"))
	assert.Equal(t, 1, res.Quantity("card b"))
}

func TestOptimizeVendorPenaltyTipsTheBalance(t *testing.T) {
	// With a large enough per-vendor penalty even a cheaper split loses to
	// a single order, and the penalty shows up in the total.
	table := make(core.PriceTable)
	table.Set("card a", "v1", 1)
	table.Set("card a", "v2", 3)
	table.Set("card b", "v2", 1)
	p := &core.Problem{
		Items: []core.Item{
			{Name: "card a", Quantity: 1},
			{Name: "card b", Quantity: 1},
		},
		Vendors: []core.Vendor{
			{Name: "v1"},
			{Name: "v2"},
		},
		Prices:        table,
		VendorPenalty: 5,
	}
	o := newTestOptimizer(t, exhaustiveSolver{})

	res, err := o.Optimize(context.Background(), p)
	require.NoError(t, err)

	// split: 1+1 + 2*5 = 12; consolidated at v2: 3+1 + 5 = 9.
	assert.InDelta(t, 9.0, res.Total, 1e-9)
	assert.Equal(t, 1, res.ActiveVendors())
	assert.InDelta(t, 5.0, res.Penalty, 1e-9)
}

func TestOptimizeTagTargetPicksExactCount(t *testing.T) {
	table := make(core.PriceTable)
	table.Set("bloodghast", "v1", 10)
	table.Set("gravecrawler", "v1", 10)
	p := &core.Problem{
		Items: []core.Item{
			{Name: "bloodghast", Quantity: 1, Optional: true, Tags: []string{"black"}},
			{Name: "gravecrawler", Quantity: 1, Optional: true, Tags: []string{"black"}},
		},
		Vendors: []core.Vendor{{Name: "v1"}},
		Prices:  table,
		Tags:    map[string]core.TagConstraint{"black": {Target: intp(1)}},
	}
	o := newTestOptimizer(t, exhaustiveSolver{})

	res, err := o.Optimize(context.Background(), p)
	require.NoError(t, err)

	// Exactly one of the two $10 optionals is bought, never zero or both.
	assert.InDelta(t, 10.0, res.Total, 1e-9)
	assert.Len(t, res.SelectedOptional, 1)
	assert.Len(t, res.SkippedOptional, 1)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, 1, res.Tags[0].Count)
	assert.True(t, res.Tags[0].Satisfied())
}

func TestOptimizeDemandIsExact(t *testing.T) {
	p := twoVendorProblem()
	o := newTestOptimizer(t, exhaustiveSolver{})

	res, err := o.Optimize(context.Background(), p)
	require.NoError(t, err)

	for _, it := range p.Items {
		assert.Equal(t, it.Quantity, res.Quantity(it.Name), it.Name)
	}
}

func TestOptimizeCostIdentity(t *testing.T) {
	p := twoVendorProblem()
	p.VendorPenalty = 2
	o := newTestOptimizer(t, exhaustiveSolver{})

	res, err := o.Optimize(context.Background(), p)
	require.NoError(t, err)

	sum := res.Penalty
	for _, ord := range res.Orders {
		sum += ord.Subtotal + ord.Shipping
	}
	assert.InDelta(t, sum, res.Total, 1e-9)
}

func TestOptimizeIsDeterministic(t *testing.T) {
	p := twoVendorProblem()
	o := newTestOptimizer(t, exhaustiveSolver{})

	first, err := o.Optimize(context.Background(), p)
	require.NoError(t, err)
	second, err := o.Optimize(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Orders, second.Orders)
}

func TestOptimizeInvalidProblem(t *testing.T) {
	p := twoVendorProblem()
	p.Vendors = nil
	o := newTestOptimizer(t, exhaustiveSolver{})

	_, err := o.Optimize(context.Background(), p)
	require.Error(t, err)

	var cfgErr *core.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestOptimizeInfeasibleYieldsDiagnosis(t *testing.T) {
	table := make(core.PriceTable)
	table.Set("carrion feeder", "v1", 1)
	table.Set("gravecrawler", "v1", 1)
	p := &core.Problem{
		Items: []core.Item{
			{Name: "carrion feeder", Quantity: 1, Tags: []string{"black"}},
			{Name: "gravecrawler", Quantity: 1, Tags: []string{"black"}},
		},
		Vendors: []core.Vendor{{Name: "v1"}},
		Prices:  table,
		Tags:    map[string]core.TagConstraint{"black": {Max: intp(1)}},
	}
	o := newTestOptimizer(t, exhaustiveSolver{})

	_, err := o.Optimize(context.Background(), p)
	require.Error(t, err)

	var infErr *core.InfeasibleError
	require.True(t, errors.As(err, &infErr))
	assert.Equal(t, core.FamilyTagMaximum, infErr.Diagnosis.Family)
	assert.Equal(t, "black", infErr.Diagnosis.Subject)
	assert.True(t, infErr.Diagnosis.Certain)

	// Diagnosis is pure analysis of the problem: repeating the run yields
	// the same verdict.
	_, again := o.Optimize(context.Background(), p)
	var infErr2 *core.InfeasibleError
	require.True(t, errors.As(again, &infErr2))
	assert.Equal(t, infErr.Diagnosis, infErr2.Diagnosis)
}

func TestOptimizeSolverFailure(t *testing.T) {
	boom := errors.New("backend exploded")
	o := newTestOptimizer(t, stubSolver{err: boom})

	_, err := o.Optimize(context.Background(), twoVendorProblem())
	require.Error(t, err)

	var solErr *core.SolverError
	require.True(t, errors.As(err, &solErr))
	assert.ErrorIs(t, err, boom)
}

func TestOptimizeUnbounded(t *testing.T) {
	o := newTestOptimizer(t, stubSolver{sol: milp.NewSolution(milp.StatusUnbounded, 0, nil)})

	_, err := o.Optimize(context.Background(), twoVendorProblem())
	require.Error(t, err)

	var ubErr *core.UnboundedError
	assert.True(t, errors.As(err, &ubErr))
}

func TestOptimizeUnknownStatus(t *testing.T) {
	o := newTestOptimizer(t, stubSolver{sol: milp.NewSolution(milp.StatusError, 0, nil)})

	_, err := o.Optimize(context.Background(), twoVendorProblem())
	require.Error(t, err)

	var solErr *core.SolverError
	assert.True(t, errors.As(err, &solErr))
}
