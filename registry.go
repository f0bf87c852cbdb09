package utilcss

// Registry dispatches utility tokens to resolvers by longest matching
// literal prefix. Prefixes are indexed in a byte trie backed by an
// arena of index-linked nodes, so resolution walks at most len(token)
// nodes regardless of how many prefixes are registered, and the built
// structure contains no pointer cycles and is safe to share read-only
// across goroutines.
type Registry struct {
	nodes     []trieNode
	resolvers []Resolver
}

type trieNode struct {
	children map[byte]int32
	// payload is 1+index into resolvers; 0 means no resolver ends here.
	payload int32
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make([]trieNode, 1)}
}

// Register indexes r under the given literal prefix. Registering the
// same prefix twice overwrites the earlier resolver. Distinct prefixes
// occupy distinct trie nodes, so equal-length match ties cannot arise.
func (reg *Registry) Register(prefix string, r Resolver) {
	cur := int32(0)
	for i := 0; i < len(prefix); i++ {
		b := prefix[i]
		node := &reg.nodes[cur]
		if node.children == nil {
			node.children = make(map[byte]int32)
		}
		next, ok := node.children[b]
		if !ok {
			reg.nodes = append(reg.nodes, trieNode{})
			next = int32(len(reg.nodes) - 1)
			node.children[b] = next
		}
		cur = next
	}
	if p := reg.nodes[cur].payload; p != 0 {
		reg.resolvers[p-1] = r
		return
	}
	reg.resolvers = append(reg.resolvers, r)
	reg.nodes[cur].payload = int32(len(reg.resolvers))
}

// Resolve returns the resolver registered under the longest prefix of
// token, along with the matched prefix. ok is false when no registered
// prefix matches.
func (reg *Registry) Resolve(token string) (r Resolver, prefix string, ok bool) {
	cur := int32(0)
	best := int32(0)
	bestLen := 0
	if p := reg.nodes[0].payload; p != 0 {
		best = p
	}
	for i := 0; i < len(token); i++ {
		next, found := reg.nodes[cur].children[token[i]]
		if !found {
			break
		}
		cur = next
		if p := reg.nodes[cur].payload; p != 0 {
			best = p
			bestLen = i + 1
		}
	}
	if best == 0 {
		return nil, "", false
	}
	return reg.resolvers[best-1], token[:bestLen], true
}

// Len reports the number of registered resolvers.
func (reg *Registry) Len() int {
	return len(reg.resolvers)
}
