package langdef

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/ava12/salgol/grammar"
	"github.com/ava12/salgol/internal/symset"
)

// firstContext computes lookahead sets. path holds indexes of productions
// whose lookahead computation is in progress, in call order.
type firstContext struct {
	c    *parseContext
	path *arraylist.List
}

func computeLookaheads(c *parseContext, e error) error {
	if e != nil {
		return e
	}

	fc := &firstContext{c, arraylist.New()}
	for i := range c.productions {
		_, e = fc.production(i)
		if e != nil {
			return e
		}
	}

	return nil
}

func (fc *firstContext) production(index int) (*symset.Set, error) {
	p := &fc.c.productions[index]
	if p.lookahead != nil {
		return p.lookahead, nil
	}

	if fc.path.Contains(index) {
		return nil, cycleError(fc.cyclePath(index))
	}

	fc.path.Add(index)
	result := symset.New()
	for bi := range p.branches {
		bs, e := fc.element(&p.branches[bi].elements[0])
		if e != nil {
			return nil, e
		}

		for prev := 0; prev < bi; prev++ {
			shared := symset.Intersect(p.branches[prev].lookahead, bs)
			if !shared.IsEmpty() {
				return nil, ambiguityError(p.name, prev, bi, fc.symbolNames(shared))
			}
		}

		p.branches[bi].lookahead = bs
		result.Union(bs)
	}
	fc.path.Remove(fc.path.Size() - 1)

	p.lookahead = result
	return result, nil
}

func (fc *firstContext) element(el *elementDef) (*symset.Set, error) {
	if el.Kind != grammar.NodeElement {
		return symset.New(el.Symbol), nil
	}

	ps, e := fc.production(el.Production)
	if e != nil {
		return nil, e
	}

	return ps.Copy(), nil
}

func (fc *firstContext) cyclePath(index int) []string {
	names := make([]string, 0, fc.path.Size()+1)
	started := false
	it := fc.path.Iterator()
	for it.Next() {
		i := it.Value().(int)
		started = started || i == index
		if started {
			names = append(names, fc.c.productions[i].name)
		}
	}
	return append(names, fc.c.productions[index].name)
}

func (fc *firstContext) symbolNames(s *symset.Set) []string {
	names := make([]string, 0, s.Len())
	for _, i := range s.ToSlice() {
		names = append(names, fc.c.symbols[i].String())
	}
	return names
}

// assignContinuations attaches separator continuation sets to optional and repeated elements
// referencing productions which first branch starts with the separator terminal.
// Continuation is the lookahead set of the element following the separator.
func assignContinuations(c *parseContext, e error) error {
	if e != nil {
		return e
	}

	for pi := range c.productions {
		for bi := range c.productions[pi].branches {
			elements := c.productions[pi].branches[bi].elements
			for ei := range elements {
				el := &elements[ei]
				if el.Kind != grammar.NodeElement || el.Card == grammar.One {
					continue
				}

				guarded := c.productions[el.Production].branches[0].elements
				if len(guarded) < 2 || guarded[0].Kind != grammar.TermElement || guarded[0].Text != grammar.Separator {
					continue
				}

				next := &guarded[1]
				if next.Kind == grammar.NodeElement {
					el.Continuation = c.productions[next.Production].lookahead.ToSlice()
				} else {
					el.Continuation = []int{next.Symbol}
				}
			}
		}
	}

	return nil
}
