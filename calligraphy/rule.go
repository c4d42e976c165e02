package calligraphy

// Range is the half-open interval [Min, Max).
type Range struct {
	Min, Max float64
}

// Contains reports whether Min <= v < Max.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// Predicate is a condition over Attributes. The set of predicates is
// closed: InRange, GreaterThan, LessThan, And, Or and Always.
type Predicate interface {
	Eval(a Attributes) bool
	predicate()
}

// InRange holds when the field lies in any of the ranges.
type InRange struct {
	Field  Field
	Ranges []Range
}

// Eval implements Predicate.
func (p InRange) Eval(a Attributes) bool {
	v, ok := a.Value(p.Field)
	if !ok {
		return false
	}
	for _, r := range p.Ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// GreaterThan holds when the field is at least Value. The comparison is
// inclusive.
type GreaterThan struct {
	Field Field
	Value float64
}

// Eval implements Predicate.
func (p GreaterThan) Eval(a Attributes) bool {
	v, ok := a.Value(p.Field)
	return ok && v >= p.Value
}

// LessThan holds when the field is strictly below Value.
type LessThan struct {
	Field Field
	Value float64
}

// Eval implements Predicate.
func (p LessThan) Eval(a Attributes) bool {
	v, ok := a.Value(p.Field)
	return ok && v < p.Value
}

// And holds when every predicate holds. An empty And holds.
type And []Predicate

// Eval implements Predicate.
func (p And) Eval(a Attributes) bool {
	for _, c := range p {
		if !c.Eval(a) {
			return false
		}
	}
	return true
}

// Or holds when any predicate holds. An empty Or does not hold.
type Or []Predicate

// Eval implements Predicate.
func (p Or) Eval(a Attributes) bool {
	for _, c := range p {
		if c.Eval(a) {
			return true
		}
	}
	return false
}

// Always holds unconditionally.
type Always struct{}

// Eval implements Predicate.
func (Always) Eval(Attributes) bool { return true }

func (InRange) predicate()     {}
func (GreaterThan) predicate() {}
func (LessThan) predicate()    {}
func (And) predicate()         {}
func (Or) predicate()          {}
func (Always) predicate()      {}

// Rule pairs a condition with a result.
type Rule[T any] struct {
	When Predicate
	Then T
}

// RuleTable is an ordered list of rules. The first rule whose condition
// holds wins.
type RuleTable[T any] []Rule[T]

// Match returns the result of the first matching rule. ok is false when
// no rule matches.
func (t RuleTable[T]) Match(a Attributes) (result T, ok bool) {
	for _, r := range t {
		if r.When != nil && r.When.Eval(a) {
			return r.Then, true
		}
	}
	return result, false
}

// MatchOr returns the result of the first matching rule, or def.
func (t RuleTable[T]) MatchOr(a Attributes, def T) T {
	if v, ok := t.Match(a); ok {
		return v
	}
	return def
}
