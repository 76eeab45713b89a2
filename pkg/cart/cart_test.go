package cart

import (
	"testing"

	"babylone/pkg/money"

	"github.com/stretchr/testify/require"
)

func TestAddMergesIdenticalConfigurations(t *testing.T) {
	c := New()
	c.Add(Resolve(burger(), []string{"cheddar"}))
	c.Add(Resolve(burger(), []string{"cheddar"}))

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Qty)
}

func TestAddKeepsDifferentConfigurationsApart(t *testing.T) {
	c := New()
	c.Add(Resolve(burger(), nil))
	c.Add(Resolve(burger(), []string{"cheddar"}))

	lines := c.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, "cheese", lines[0].LineID)
	require.Equal(t, "cheese-cheddar", lines[1].LineID)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Add(Resolve(burger(), []string{"bacon"}))
	c.Add(Resolve(burger(), nil))
	c.Add(Resolve(burger(), []string{"bacon"})) // merge, must not reorder

	lines := c.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, "cheese-bacon", lines[0].LineID)
	require.Equal(t, "cheese", lines[1].LineID)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.Add(Resolve(burger(), nil))
	c.Add(Resolve(burger(), nil))
	c.Add(Resolve(burger(), []string{"oeuf"}))

	before, _ := c.Totals()
	c.UpdateQuantity("cheese", 0)
	after, _ := c.Totals()

	require.Len(t, c.Lines(), 1)
	require.Equal(t, before-2, after) // drops by exactly that line's quantity
}

func TestUpdateQuantityReplacesOnlyQty(t *testing.T) {
	c := New()
	c.Add(Resolve(burger(), []string{"cheddar"}))
	c.UpdateQuantity("cheese-cheddar", 5)

	lines := c.Lines()
	require.Equal(t, 5, lines[0].Qty)
	require.Equal(t, money.Cents(900), lines[0].UnitPrice)
}

func TestUpdateQuantityUnknownLineIsNoOp(t *testing.T) {
	c := New()
	c.Add(Resolve(burger(), nil))
	c.UpdateQuantity("nope", 3)

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 1, lines[0].Qty)
}

func TestRemoveUnknownLineLeavesCartUnchanged(t *testing.T) {
	c := New()
	c.Add(Resolve(burger(), nil))
	before := c.Lines()

	c.Remove("nope")

	require.Equal(t, before, c.Lines())
}

func TestTotalsScenario(t *testing.T) {
	// base 8.00 + cheddar 1.00, added twice: one line, qty 2, totals (2, 18.00)
	c := New()
	c.Add(Resolve(burger(), []string{"cheddar"}))
	c.Add(Resolve(burger(), []string{"cheddar"}))

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, money.Cents(900), lines[0].UnitPrice)
	require.Equal(t, 2, lines[0].Qty)

	count, amount := c.Totals()
	require.Equal(t, 2, count)
	require.Equal(t, money.Cents(1800), amount)
	require.Equal(t, "18.00", amount.String())
}

func TestTotalsRecomputedAfterEveryMutation(t *testing.T) {
	c := New()
	c.Add(Resolve(burger(), nil))
	_, first := c.Totals()

	c.UpdateQuantity("cheese", 3)
	count, amount := c.Totals()

	require.Equal(t, money.Cents(800), first)
	require.Equal(t, 3, count)
	require.Equal(t, money.Cents(2400), amount)
}

func TestClearEmptiesCart(t *testing.T) {
	c := New()
	c.Add(Resolve(burger(), nil))
	c.Clear()

	count, amount := c.Totals()
	require.Zero(t, count)
	require.Zero(t, amount)
	require.Empty(t, c.Lines())
}
