package indicator

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

// ResultKind tags which field of a Result is set.
type ResultKind int

const (
	ScalarResult ResultKind = iota
	TupleResult
	SeriesResult
	TableResult
	ExtremaResult
)

func (k ResultKind) String() string {
	switch k {
	case ScalarResult:
		return "scalar"
	case TupleResult:
		return "tuple"
	case SeriesResult:
		return "series"
	case TableResult:
		return "table"
	case ExtremaResult:
		return "extrema"
	}
	return fmt.Sprintf("ResultKind(%d)", int(k))
}

type NamedValue struct {
	Name  string
	Value float64
}

// Result is what an Entry returns: one scalar, a small named tuple, a named
// column, a table of co-indexed columns or index-tagged extrema.
type Result struct {
	Kind    ResultKind
	Scalar  float64
	Tuple   []NamedValue
	Series  frame.Column
	Table   *frame.Frame
	Extrema []ti.Extremum
}

// Frame renders any result as a table. Scalars and tuples become one row.
func (r Result) Frame(name string) (*frame.Frame, error) {
	switch r.Kind {
	case ScalarResult:
		return frame.New(frame.NewFloat64(name, []float64{r.Scalar}))
	case TupleResult:
		cols := make([]frame.Column, len(r.Tuple))
		for i, v := range r.Tuple {
			cols[i] = frame.NewFloat64(v.Name, []float64{v.Value})
		}
		return frame.New(cols...)
	case SeriesResult:
		return frame.New(r.Series)
	case TableResult:
		return r.Table, nil
	case ExtremaResult:
		idx := make([]int64, len(r.Extrema))
		values := make([]float64, len(r.Extrema))
		for i, e := range r.Extrema {
			idx[i], values[i] = int64(e.Index), e.Value
		}
		return frame.New(frame.NewInt64("index", idx), frame.NewFloat64("value", values))
	}
	return nil, fmt.Errorf("unknown result kind %s", r.Kind)
}

type ParamKind int

const (
	IntParam ParamKind = iota
	FloatParam
	TokenParam
)

func (k ParamKind) String() string {
	switch k {
	case IntParam:
		return "int"
	case FloatParam:
		return "float"
	}
	return "token"
}

// Param declares a scalar or token parameter. An empty Default makes it required.
type Param struct {
	Name    string
	Kind    ParamKind
	Default string
}

// Call binds an entry to a frame. Inputs maps a role to a column name; roles
// left out read the column named by DefaultColumn. Params are textual and
// parsed against the entry's declaration.
type Call struct {
	Frame  *frame.Frame
	Inputs map[string]string
	Params map[string]string
}

// Entry is one indicator entry point addressable by name.
type Entry struct {
	Name   string
	Family string
	Inputs []string
	Params []Param
	invoke func(a *args) (Result, error)
}

// Invoke parses the call's parameters and runs the entry point.
func (e Entry) Invoke(call Call) (Result, error) {
	a, err := e.bind(call)
	if err != nil {
		return Result{}, err
	}
	return e.invoke(a)
}

func (e Entry) bind(call Call) (*args, error) {
	for name := range call.Params {
		if !slices.ContainsFunc(e.Params, func(p Param) bool { return p.Name == name }) {
			return nil, &InvalidParameterError{Name: name, Value: call.Params[name], Reason: "unknown parameter for " + e.Name}
		}
	}
	for role := range call.Inputs {
		if !slices.Contains(e.Inputs, role) {
			return nil, &InvalidParameterError{Name: role, Value: call.Inputs[role], Reason: "unknown input role for " + e.Name}
		}
	}

	a := &args{
		call:   call,
		ints:   map[string]int{},
		floats: map[string]float64{},
		tokens: map[string]string{},
	}
	for _, p := range e.Params {
		raw, ok := call.Params[p.Name]
		if !ok {
			raw = p.Default
		}
		if raw == "" {
			return nil, &InvalidParameterError{Name: p.Name, Value: raw, Reason: "required"}
		}
		switch p.Kind {
		case IntParam:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, &InvalidParameterError{Name: p.Name, Value: raw, Reason: "not an integer"}
			}
			a.ints[p.Name] = v
		case FloatParam:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &InvalidParameterError{Name: p.Name, Value: raw, Reason: "not a number"}
			}
			a.floats[p.Name] = v
		case TokenParam:
			a.tokens[p.Name] = raw
		}
	}
	return a, nil
}

// DefaultColumn is the column a role reads when a call does not name one.
func DefaultColumn(role string) string {
	switch role {
	case "prices":
		return "close"
	case "stochastics":
		return "stochastic"
	case "slow_stochastics":
		return "slow_stochastic"
	case "macds":
		return "macd"
	case "up":
		return "aroon_up"
	case "down":
		return "aroon_down"
	}
	return role
}

type args struct {
	call   Call
	ints   map[string]int
	floats map[string]float64
	tokens map[string]string
}

func (a *args) input(role string) Input {
	name, ok := a.call.Inputs[role]
	if !ok || name == "" {
		name = DefaultColumn(role)
	}
	return FromFrame(a.call.Frame, name)
}

func (a *args) int(name string) int        { return a.ints[name] }
func (a *args) float(name string) float64  { return a.floats[name] }
func (a *args) token(name string) string   { return a.tokens[name] }
func (a *args) period() int                { return a.ints["period"] }
func (a *args) model() string              { return a.tokens["constant_model_type"] }
func (a *args) deviation() string          { return a.tokens["deviation_model"] }
func (a *args) prices() Input              { return a.input("prices") }
func (a *args) hlc() (Input, Input, Input) { return a.input("high"), a.input("low"), a.input("close") }

func scalar(v float64, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: ScalarResult, Scalar: v}, nil
}

func value(v float64) (Result, error) {
	return Result{Kind: ScalarResult, Scalar: v}, nil
}

func series(c frame.Column, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: SeriesResult, Series: c}, nil
}

func table(f *frame.Frame, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: TableResult, Table: f}, nil
}

func tuple(names []string, values ...float64) Result {
	out := make([]NamedValue, len(names))
	for i, name := range names {
		out[i] = NamedValue{Name: name, Value: values[i]}
	}
	return Result{Kind: TupleResult, Tuple: out}
}

func bands(b ti.Bands, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return tuple([]string{"lower", "middle", "upper"}, b.Lower, b.Middle, b.Upper), nil
}

func trend(t ti.Trend, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return tuple([]string{"slope", "intercept"}, t.Slope, t.Intercept), nil
}

func extremaResult(points []ti.Extremum, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: ExtremaResult, Extrema: points}, nil
}

var registry = func() map[string]Entry {
	m := make(map[string]Entry, len(catalog))
	for _, e := range catalog {
		if _, dup := m[e.Name]; dup {
			panic("indicator: duplicate entry " + e.Name)
		}
		m[e.Name] = e
	}
	return m
}()

// Lookup finds an entry point by its snake_case name.
func Lookup(name string) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// Entries lists every entry point in catalog order.
func Entries() []Entry {
	return slices.Clone(catalog)
}
