package ledger_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/zzptools/grootboek/ledger"
)

func mustParse(t *testing.T, source string) []ledger.Transaction {
	t.Helper()
	transactions, err := ledger.Parse(source)
	assert.NoError(t, err)
	return transactions
}

func findNode(tree *ledger.Tree, account ledger.Account) *ledger.Node {
	var found *ledger.Node
	tree.Root().Walk(func(node *ledger.Node) {
		if node.Account == account {
			found = node
		}
	})
	return found
}

func TestBuildTree(t *testing.T) {
	transactions := mustParse(t, `2020-01-02: salary
+100.00 a/b
+50.00 a/c
-150.00 d
`)

	tree := ledger.BuildTree(transactions)

	t.Run("RootIsGrandTotal", func(t *testing.T) {
		assert.Equal(t, ledger.Cents(0), tree.Root().Cumulative)
		assert.Equal(t, ledger.Cents(0), tree.Root().Own)
	})

	t.Run("InnerNodeAggregates", func(t *testing.T) {
		a := findNode(tree, "a")
		assert.NotZero(t, a)
		assert.Equal(t, ledger.Cents(15000), a.Cumulative)
		assert.Equal(t, ledger.Cents(0), a.Own)
	})

	t.Run("LeafOwnsItsBalance", func(t *testing.T) {
		b := findNode(tree, "a/b")
		assert.NotZero(t, b)
		assert.Equal(t, ledger.Cents(10000), b.Cumulative)
		assert.Equal(t, ledger.Cents(10000), b.Own)

		d := findNode(tree, "d")
		assert.NotZero(t, d)
		assert.Equal(t, ledger.Cents(-15000), d.Own)
	})

	t.Run("ChildrenKeepFirstSeenOrder", func(t *testing.T) {
		a := findNode(tree, "a")
		children := a.Children()
		assert.Equal(t, 2, len(children))
		assert.Equal(t, ledger.Account("a/b"), children[0].Account)
		assert.Equal(t, ledger.Account("a/c"), children[1].Account)
	})
}

func TestTreeMutationOnInnerAndLeaf(t *testing.T) {
	// An account can carry its own balance and aggregate children at once.
	tree := ledger.NewTree()
	tree.Add(ledger.Mutation{Amount: 100, Account: "a"})
	tree.Add(ledger.Mutation{Amount: 50, Account: "a/b"})

	a := findNode(tree, "a")
	assert.Equal(t, ledger.Cents(100), a.Own)
	assert.Equal(t, ledger.Cents(150), a.Cumulative)
	assert.Equal(t, ledger.Cents(150), tree.Root().Cumulative)
}

func TestRootCumulativeEqualsSumOfAllMutations(t *testing.T) {
	transactions := mustParse(t, `2020-01-02: one
+10.00 a/b/c
-3.00 d

2020-01-03: two
+0.50 a/b
-20.00 e/f
`)

	tree := ledger.BuildTree(transactions)

	var sum ledger.Cents
	for _, transaction := range transactions {
		sum = sum.Add(transaction.Residual())
	}
	assert.Equal(t, sum, tree.Root().Cumulative)
}

func TestFindUnbalanced(t *testing.T) {
	transactions := mustParse(t, `2020-01-02: balanced
+10.00 a
-10.00 b

2020-01-03: short
+10.00 a
-5.00 b

2020-01-04: also balanced
+1.00 a
-0.50 b
-0.50 c
`)

	unbalanced := ledger.FindUnbalanced(transactions)
	assert.Equal(t, 1, len(unbalanced))
	assert.Equal(t, "short", unbalanced[0].Transaction.Description)
	assert.Equal(t, ledger.Cents(500), unbalanced[0].Residual)
	assert.Equal(t, "+5.00", unbalanced[0].Residual.String())
}
