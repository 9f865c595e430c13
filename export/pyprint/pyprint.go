// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pyprint exports tapir graphs as source text in the restricted,
// indentation-sensitive Python-like surface grammar accepted by the
// front-end parser.
//
// The exporter guarantees that parsing the emitted text recompiles to a
// graph semantically equivalent to the original. To keep the text dense,
// single-use unnamed values are inlined into their consumer whenever the
// collapsed expression would reparse to the same tree shape; tensor
// constants are deduplicated into an indexed pool referenced as
// CONSTANTS.c<i>.
package pyprint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/tapir-org/tapir/base/ordered"
	"github.com/tapir-org/tapir/base/stringseq"
	"github.com/tapir-org/tapir/base/uname"
	"github.com/tapir-org/tapir/build/fmterr"
	"github.com/tapir-org/tapir/build/ir"
	"github.com/tapir-org/tapir/build/ir/irkind"
)

// forkedPrefix names deferred sub-functions bound as receiver attributes.
// Methods carrying this prefix are only ever reached from their call sites.
const forkedPrefix = "__forked_function"

// inlineLineBudget caps the rendered width of an inlined expression.
// Inline-safe expressions wider than the budget at the current indentation
// fall back to an explicit temporary.
const inlineLineBudget = 40

// Option configures an export session.
type Option func(*printer)

// WithAllowForeignCalls tolerates foreign call nodes, emitting their raw
// escape-hatch syntax instead of failing. The resulting text is not
// guaranteed to be reparseable.
func WithAllowForeignCalls() Option {
	return func(p *printer) {
		p.strict = false
	}
}

type printer struct {
	out    strings.Builder
	strict bool
	level  int

	tensors  []*ir.Tensor
	inline   map[*ir.Node]bool
	session  *uname.Session
	locals   *uname.Namespace
	methods  *uname.Namespace
	text     map[*ir.Value]string
	worklist []func() error
}

func newPrinter(opts ...Option) *printer {
	p := &printer{
		strict:  true,
		inline:  make(map[*ir.Node]bool),
		text:    make(map[*ir.Value]string),
		session: uname.NewSession(reservedNames...),
	}
	p.methods = p.session.Namespace()
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Function exports a graph as a function definition with the given name.
// It returns the source text and the tensor constant pool the text
// references as CONSTANTS.c<i>.
func Function(g *ir.Graph, name string, opts ...Option) (string, []*ir.Tensor, error) {
	p := newPrinter(opts...)
	if err := p.printFunction(g, name, nil, nil); err != nil {
		return "", nil, err
	}
	return p.out.String(), p.tensors, nil
}

// Method exports a module method. The trailing graph inputs bound to
// stored parameter slots are rendered as dotted attribute accesses on the
// receiver instead of function parameters.
func Method(owner *ir.Module, method *ir.Method, opts ...Option) (string, []*ir.Tensor, error) {
	p := newPrinter(opts...)
	if err := p.printMethod(owner, method); err != nil {
		return "", nil, err
	}
	return p.out.String(), p.tensors, nil
}

// Module exports every method of a module hierarchy, sharing one constant
// pool and one sub-function namespace across methods.
func Module(m *ir.Module, opts ...Option) (string, []*ir.Tensor, error) {
	p := newPrinter(opts...)
	if err := p.printModule(m); err != nil {
		return "", nil, err
	}
	return p.out.String(), p.tensors, nil
}

func (p *printer) useOf(v *ir.Value) string {
	return p.text[v]
}

func (p *printer) assign(v *ir.Value, s string) {
	p.text[v] = s
}

func (p *printer) assignValue(v, w *ir.Value) {
	p.assign(v, p.useOf(w))
}

// uniqueNameFor allocates the name binding v: the mangled hint when the
// value carries one, an anonymous placeholder otherwise.
func (p *printer) uniqueNameFor(v *ir.Value) string {
	candidate := "_"
	if v.HasHint() {
		candidate = uname.Identifier(v.Hint())
	}
	return p.locals.Name(candidate)
}

func (p *printer) assignUniqueNames(values []*ir.Value) {
	for _, v := range values {
		p.assign(v, p.uniqueNameFor(v))
	}
}

func (p *printer) indent() {
	for range p.level {
		p.out.WriteString("  ")
	}
}

// indented runs f one indentation level deeper. The level is restored on
// every exit path.
func (p *printer) indented(f func() error) error {
	p.level++
	defer func() { p.level-- }()
	return f()
}

func (p *printer) valueList(values []*ir.Value) string {
	return stringseq.JoinFunc(slices.Values(values), ", ", p.useOf)
}

func (p *printer) printAssignment(lhs, rhs []*ir.Value) {
	if len(lhs) == 0 {
		return
	}
	p.indent()
	p.out.WriteString(p.valueList(lhs))
	p.out.WriteString(" = ")
	p.out.WriteString(p.valueList(rhs))
	p.out.WriteString("\n")
}

func (p *printer) printNode(n *ir.Node, printConst bool) error {
	if !printConst && n.Kind().ConstantLike() {
		return nil
	}
	switch n.Kind() {
	case irkind.Return:
		if len(n.Inputs()) > 0 {
			p.indent()
			p.out.WriteString("return ")
			p.out.WriteString(p.valueList(n.Inputs()))
			p.out.WriteString("\n")
		}
	case irkind.Loop:
		return p.printLoop(n)
	case irkind.If:
		return p.printIf(n)
	case irkind.TupleUnpack, irkind.ListUnpack:
		p.assignUniqueNames(n.Outputs())
		p.indent()
		// The trailing comma is what forces an unpack when reparsed:
		// a, b, = unpacked
		// a, = unpacked
		if len(n.Outputs()) > 0 {
			p.out.WriteString(p.valueList(n.Outputs()))
			p.out.WriteString(", = ")
		}
		p.out.WriteString(p.useOf(n.Input()))
		p.out.WriteString("\n")
	default:
		var stmt strings.Builder
		if err := p.printRHS(&stmt, n); err != nil {
			return err
		}
		// An inline-safe node binds its rendered expression to the output
		// value directly, unless the line would grow past the budget.
		if p.inline[n] && stmt.Len()+p.level*2 < inlineLineBudget {
			p.assign(n.Output(), stmt.String())
			return nil
		}
		p.assignUniqueNames(n.Outputs())
		p.indent()
		if len(n.Outputs()) > 0 {
			p.out.WriteString(p.valueList(n.Outputs()))
			p.out.WriteString(" = ")
		}
		p.out.WriteString(stmt.String())
		p.out.WriteString("\n")
	}
	return nil
}

// printBlock emits the nodes of a block. The surface grammar needs a pass
// statement when the block body would otherwise be empty; statements such
// as the carried-value assignments of a loop are printed by the caller
// after the block, which hasOther accounts for.
func (p *printer) printBlock(b *ir.Block, hasOther bool) error {
	if !hasOther && len(b.Nodes()) == 0 {
		p.indent()
		p.out.WriteString("pass\n")
	}
	for _, n := range b.Nodes() {
		if err := p.printNode(n, false); err != nil {
			return err
		}
	}
	return nil
}

func buildConstantListNode(n *ir.Node, seen map[*ir.Node]bool, constants *[]*ir.Node) {
	for _, input := range n.Inputs() {
		producer := input.Node()
		if producer == nil || !producer.Kind().ConstantLike() || seen[producer] {
			continue
		}
		*constants = append(*constants, producer)
		seen[producer] = true
	}
	for _, b := range n.Blocks() {
		buildConstantListBlock(b, seen, constants)
	}
}

func buildConstantListBlock(b *ir.Block, seen map[*ir.Node]bool, constants *[]*ir.Node) {
	for _, n := range b.Nodes() {
		buildConstantListNode(n, seen, constants)
	}
	buildConstantListNode(b.Return(), seen, constants)
}

func resultType(g *ir.Graph) ir.Type {
	outputs := g.Outputs()
	if len(outputs) == 1 {
		return outputs[0].Type()
	}
	types := make([]ir.Type, len(outputs))
	for i, v := range outputs {
		types[i] = v.Type()
	}
	return ir.Tuple(types...)
}

// printDefaultValue renders a declared argument default. Undefined tensors
// are not stored as None literals, so they need their own case: a pooled
// reference could not be recreated on import.
func (p *printer) printDefaultValue(stmt *strings.Builder, value *ir.Literal) {
	if value.Kind() == ir.TensorLiteral && !value.Tensor().Defined() {
		stmt.WriteString("None")
		return
	}
	p.printConstant(stmt, value)
}

func (p *printer) printFunctionDefinition(g *ir.Graph, name string, defaults []*ir.Literal, paramNames []string) error {
	// Each graph can reuse local names.
	p.locals = p.session.Namespace()

	// Constants print at the top of the function, in first-use order.
	var constants []*ir.Node
	buildConstantListBlock(g.Block(), make(map[*ir.Node]bool), &constants)

	if err := p.scanBlock(g.Block()); err != nil {
		return err
	}

	// The last len(paramNames) graph inputs are stored parameters, printed
	// as receiver attribute accesses. The remaining inputs are the true
	// function parameters.
	inputs := g.Inputs()
	if len(paramNames) > len(inputs) {
		return fmterr.Internal(errors.Errorf("%s: %d parameter names for %d graph inputs", name, len(paramNames), len(inputs)))
	}
	trueInputs := inputs[:len(inputs)-len(paramNames)]
	for i, param := range inputs[len(trueInputs):] {
		p.assign(param, paramNames[i])
	}
	if len(defaults) > len(trueInputs) {
		return fmterr.Internal(errors.Errorf("%s: %d default values for %d declared parameters", name, len(defaults), len(trueInputs)))
	}
	p.assignUniqueNames(trueInputs)
	p.out.WriteString("def ")
	p.out.WriteString(name)
	p.out.WriteString("(self")
	for i, input := range trueInputs {
		fmt.Fprintf(&p.out, ",\n    %s: %s", p.useOf(input), input.Type().PyString())
		if i < len(defaults) && defaults[i] != nil {
			p.out.WriteString("=")
			p.printDefaultValue(&p.out, defaults[i])
		}
	}
	fmt.Fprintf(&p.out, ") -> %s:\n", resultType(g).PyString())
	return p.indented(func() error {
		// Most constants inline into their uses; the ones over the line
		// budget (long strings) emit here.
		for _, n := range constants {
			if err := p.printNode(n, true); err != nil {
				return err
			}
		}
		if err := p.printBlock(g.Block(), len(g.Outputs()) > 0); err != nil {
			return err
		}
		return p.printNode(g.Block().Return(), false)
	})
}

func (p *printer) printFunction(g *ir.Graph, name string, defaults []*ir.Literal, paramNames []string) error {
	if err := p.printFunctionDefinition(g, name, defaults, paramNames); err != nil {
		return err
	}
	// Deferred sub-graphs queued by fork call sites drain last-in first-out
	// once the enclosing function is fully emitted.
	for len(p.worklist) > 0 {
		work := p.worklist[len(p.worklist)-1]
		p.worklist = p.worklist[:len(p.worklist)-1]
		p.out.WriteString("\n\n")
		if err := work(); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printMethod(owner *ir.Module, method *ir.Method) error {
	names := ordered.NewMap[*ir.Tensor, *qualifiedName]()
	parameterNames(owner, qualify(nil, "self"), names)
	paramNames := make([]string, len(method.Params()))
	for i, slot := range method.Params() {
		qn, ok := names.Load(slot)
		if !ok {
			return fmterr.Internal(errors.Errorf("method %s: stored parameter %d is not owned by the module hierarchy", method.Name(), i))
		}
		paramNames[i] = qn.String()
	}
	return p.printFunction(method.Graph(), method.Name(), method.Defaults(), paramNames)
}

func (p *printer) printModule(m *ir.Module) error {
	first := true
	for name, method := range m.Methods() {
		// Forked sub-functions are only reached from their call sites;
		// exporting them again would duplicate code on each export.
		if strings.HasPrefix(name, forkedPrefix) {
			continue
		}
		if !first {
			p.out.WriteString("\n")
		}
		first = false
		if err := p.printMethod(m, method); err != nil {
			return err
		}
	}
	return nil
}
