package ledger

// Tree aggregates mutation amounts over the account hierarchy. It is a trie
// keyed by account path segment: inserting a mutation for "a/b/c" creates
// the nodes "a", "a/b", and "a/b/c" as needed and adds the amount to the
// cumulative balance of each node on the chain. Only the terminal node
// receives the amount in its own balance.
//
// The tree is rebuilt from scratch for every report; it is not persisted.
type Tree struct {
	root *Node
}

// Node is one account in the aggregation tree.
type Node struct {
	// Account is the full account path of the node. Empty for the root.
	Account Account

	// Own is the balance of mutations against exactly this account.
	Own Cents

	// Cumulative is the balance including all descendant accounts.
	Cumulative Cents

	children map[string]*Node
	order    []*Node // Children in first-seen order.
}

// NewTree creates an empty aggregation tree.
func NewTree() *Tree {
	return &Tree{root: &Node{}}
}

// BuildTree folds all mutations of the given transactions into a fresh
// tree. The root's cumulative balance ends up being the sum of every
// mutation amount.
func BuildTree(transactions []Transaction) *Tree {
	tree := NewTree()
	for _, transaction := range transactions {
		for _, mutation := range transaction.Mutations {
			tree.Add(mutation)
		}
	}
	return tree
}

// Add accumulates one mutation into the tree.
func (t *Tree) Add(mutation Mutation) {
	t.root.Cumulative = t.root.Cumulative.Add(mutation.Amount)

	current := t.root
	for node := range mutation.Account.WalkNodes() {
		current = current.child(node)
		current.Cumulative = current.Cumulative.Add(mutation.Amount)
	}
	// The loop ends on the terminal node for the full account path.
	current.Own = current.Own.Add(mutation.Amount)
}

// Root returns the root node. Its cumulative balance is the grand total;
// its own balance is only non-zero when a mutation names the empty account.
func (t *Tree) Root() *Node {
	return t.root
}

// child returns the child node for the given account path, creating it
// when absent.
func (n *Node) child(account Account) *Node {
	segment := account.Name()
	if child, ok := n.children[segment]; ok {
		return child
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	child := &Node{Account: account}
	n.children[segment] = child
	n.order = append(n.order, child)
	return child
}

// Children returns the child nodes in the order their accounts first
// appeared in the input.
func (n *Node) Children() []*Node {
	return n.order
}

// Walk visits the node and all its descendants depth-first.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.order {
		child.Walk(visit)
	}
}

// Unbalanced pairs a transaction with its non-zero residual.
type Unbalanced struct {
	Transaction Transaction
	Residual    Cents
}

// FindUnbalanced returns the transactions whose mutations do not sum to
// zero. The ledger format deliberately accepts unbalanced transactions at
// parse time; this is the explicit validation pass that finds them.
func FindUnbalanced(transactions []Transaction) []Unbalanced {
	var unbalanced []Unbalanced
	for _, transaction := range transactions {
		if residual := transaction.Residual(); !residual.IsZero() {
			unbalanced = append(unbalanced, Unbalanced{Transaction: transaction, Residual: residual})
		}
	}
	return unbalanced
}
