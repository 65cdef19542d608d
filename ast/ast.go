package ast

//go:generate sumgen Node = *Text | *Plain | *Code | *Link | *AutoLink
type Node interface {
	node()
}

//go:generate sumgen Inline = *Plain | *Code | *Link | *AutoLink
type Inline interface {
	Node
	inline()
}

// Text is a run of inline tokens in source order.
type Text struct {
	List []Inline
}

// Plain is literal text. Body is unescaped.
type Plain struct {
	Body string
}

// Code is a backtick delimited span.
type Code struct {
	NTick int
	Body  string
}

// Link is a named link, [Label](Target).
type Link struct {
	Label  string
	Target string
}

// AutoLink is a bare link, <Target>.
type AutoLink struct {
	Target string
}

func (*Text) node()     {}
func (*Plain) node()    {}
func (*Code) node()     {}
func (*Link) node()     {}
func (*AutoLink) node() {}

func (*Plain) inline()    {}
func (*Code) inline()     {}
func (*Link) inline()     {}
func (*AutoLink) inline() {}

// Walk calls f on n and, if n is a *Text, on each of its tokens in order.
// A token for which f returns nil is removed from the list.
// Walking stops at the first error.
func Walk(n Node, f Walker) (Node, error) {
	if n == nil {
		return nil, nil
	}
	nn, e := f(n)
	if e != nil {
		return n, e
	}
	n = nn
	t, ok := n.(*Text)
	if !ok {
		return n, nil
	}
	list := t.List[:0]
	for i := range t.List {
		s, e := f(t.List[i])
		if e != nil {
			list = append(list, t.List[i:]...)
			t.List = list
			return n, e
		}
		if s != nil {
			list = append(list, s.(Inline))
		}
	}
	for i := len(list); i < len(t.List); i++ {
		t.List[i] = nil
	}
	t.List = list
	return n, nil
}

type Walker func(Node) (Node, error)
