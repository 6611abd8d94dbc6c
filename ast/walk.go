package ast

import (
	"github.com/ava12/salgol/grammar"
)

// Visitor is called for each visited element.
// walkChildren tells whether children of a node must be visited,
// walkSiblings tells whether following siblings must be visited.
type Visitor func(e Element) (walkChildren, walkSiblings bool)

type WalkMode int

const (
	WalkLtr WalkMode = 0
	WalkRtl WalkMode = 1
)

// Walk visits e and its descendants in pre-order.
func Walk(e Element, mode WalkMode, visitor Visitor) {
	if e != nil {
		visitElement(e, visitor, (mode&WalkRtl) != 0)
	}
}

func visitElement(e Element, v Visitor, rtl bool) (visitSiblings bool) {
	vc, vs := v(e)
	n, isNode := e.(*Node)
	if !vc || !isNode {
		return vs
	}

	children := n.Children()
	if rtl {
		for i := len(children) - 1; i >= 0 && vc; i-- {
			vc = visitElement(children[i], v, true)
		}
	} else {
		for i := 0; i < len(children) && vc; i++ {
			vc = visitElement(children[i], v, false)
		}
	}

	return vs
}

type Filter func(e Element) bool
type Extractor func(e Element) []Element

// Selector applies a chain of element transformations.
type Selector struct {
	selectors []Extractor
}

func NewSelector() *Selector {
	return &Selector{}
}

// Apply runs the chain for each input element and returns resulting unique elements in order.
func (s *Selector) Apply(input ...Element) []Element {
	res := make([]Element, 0)
	index := make(map[Element]bool)

	for i, e := range input {
		if e == nil {
			continue
		}

		es := input[i : i+1]
		if len(s.selectors) > 0 {
			es = selectElements(es, s.selectors)
		}

		for _, te := range es {
			if !index[te] {
				index[te] = true
				res = append(res, te)
			}
		}
	}

	return res
}

func selectElements(es []Element, ess []Extractor) []Element {
	res := make([]Element, 0)
	s := ess[0]
	ess = ess[1:]
	for _, e := range es {
		if len(ess) > 0 {
			res = append(res, selectElements(s(e), ess)...)
		} else {
			res = append(res, s(e)...)
		}
	}
	return res
}

func (s *Selector) Use(ex Extractor) *Selector {
	if ex != nil {
		s.selectors = append(s.selectors, ex)
	}
	return s
}

func (s *Selector) Filter(f Filter) *Selector {
	return s.Use(func(e Element) []Element {
		if f(e) {
			return []Element{e}
		}
		return nil
	})
}

// Search collects matching descendants (the element itself included).
// If deepSearch is false, descendants of matched elements are not searched.
func (s *Selector) Search(f Filter, deepSearch bool) *Selector {
	return s.Use(func(e Element) []Element {
		res := make([]Element, 0)
		visitElement(e, func(ee Element) (vc, vs bool) {
			if f(ee) {
				res = append(res, ee)
				return deepSearch, true
			}
			return true, true
		}, false)
		return res
	})
}

// Fields extracts items of named fields of a node.
func (s *Selector) Fields(names ...string) *Selector {
	return s.Use(func(e Element) []Element {
		n, isNode := e.(*Node)
		if !isNode {
			return nil
		}

		res := make([]Element, 0)
		for _, name := range names {
			res = append(res, n.Many(name)...)
		}
		return res
	})
}

func IsNot(f Filter) Filter {
	return func(e Element) bool {
		return !f(e)
	}
}

func IsAny(fs ...Filter) Filter {
	return func(e Element) bool {
		for _, f := range fs {
			if f(e) {
				return true
			}
		}
		return false
	}
}

func IsAll(fs ...Filter) Filter {
	return func(e Element) bool {
		for _, f := range fs {
			if !f(e) {
				return false
			}
		}
		return true
	}
}

// IsA matches elements of given kinds (production or class names).
func IsA(kinds ...string) Filter {
	return func(e Element) bool {
		k := e.Kind()
		for _, kind := range kinds {
			if k == kind {
				return true
			}
		}
		return false
	}
}

// IsBranch matches nodes produced by given branch.
func IsBranch(production string, branch int) Filter {
	return func(e Element) bool {
		n, isNode := e.(*Node)
		return isNode && n.Is(production, branch)
	}
}

// IsLeaf matches leaves of given class, any leaf if class is grammar.NoClass.
func IsLeaf(class grammar.Class) Filter {
	return func(e Element) bool {
		l, isLeaf := e.(*Leaf)
		return isLeaf && (class == grammar.NoClass || l.Class == class)
	}
}

// HasText matches leaves with given texts.
func HasText(texts ...string) Filter {
	return func(e Element) bool {
		l, isLeaf := e.(*Leaf)
		if !isLeaf {
			return false
		}

		for _, text := range texts {
			if l.Text == text {
				return true
			}
		}
		return false
	}
}

// Find returns all elements of given kinds in pre-order.
func Find(root Element, kinds ...string) []Element {
	return NewSelector().Search(IsA(kinds...), true).Apply(root)
}
