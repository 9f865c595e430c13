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

package pyprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tapir-org/tapir/build/fmterr"
	"github.com/tapir-org/tapir/build/ir"
	"github.com/tapir-org/tapir/build/ir/irkind"
)

// printRHS renders the right-hand side expression of a node,
// e.g. `torch.add(x, y)`.
func (p *printer) printRHS(stmt *strings.Builder, n *ir.Node) error {
	switch n.Kind() {
	case irkind.ForeignCall:
		if p.strict {
			return fmterr.Errorf(n, "could not export foreign function call %s. Remove foreign calls before export", n.Sym().Name)
		}
		stmt.WriteString("^")
		stmt.WriteString(n.Sym().Name)
		p.printValueList(stmt, n.Inputs(), "(", ")")
	case irkind.Constant:
		p.printConstant(stmt, n.Literal())
	case irkind.None:
		p.printNone(stmt, n)
	case irkind.TensorToNum:
		if n.Output().Type() == ir.IntType {
			p.printValueList(stmt, n.Inputs(), "int(", ")")
		} else if n.Output().Type() == ir.FloatType {
			p.printValueList(stmt, n.Inputs(), "float(", ")")
		} else {
			return fmterr.Internalf(n, "tensor converts to %s: want int or float", n.Output().Type().PyString())
		}
	case irkind.ImplicitTensorToNum:
		fmt.Fprintf(stmt, "annotate(%s, %s)", n.Output().Type().PyString(), p.useOf(n.Input()))
	case irkind.FloatToInt:
		p.printValueList(stmt, n.Inputs(), "int(", ")")
	case irkind.StringToFloat, irkind.IntToFloat:
		p.printValueList(stmt, n.Inputs(), "float(", ")")
	case irkind.TensorToBool:
		p.printValueList(stmt, n.Inputs(), "bool(", ")")
	case irkind.Print:
		p.printValueList(stmt, n.Inputs(), "print(", ")")
	case irkind.TupleConstruct:
		end := ")"
		if len(n.Inputs()) == 1 {
			// The trailing comma is what makes this a tuple on reparse.
			end = ",)"
		}
		p.printValueList(stmt, n.Inputs(), "(", end)
	case irkind.TupleIndex:
		fmt.Fprintf(stmt, "(%s)[%d]", p.useOf(n.Input()), n.Int(ir.AttrIndex))
	case irkind.TupleSlice:
		fmt.Fprintf(stmt, "(%s)[%d:%d]", p.useOf(n.Input()), n.Int(ir.AttrBeg), n.Int(ir.AttrEnd))
	case irkind.ListConstruct:
		// An empty list that is not a list of tensors needs an annotation,
		// otherwise the element type cannot be inferred on import.
		if len(n.Inputs()) == 0 && !ir.IsTensorList(n.Output().Type()) {
			fmt.Fprintf(stmt, "annotate(%s, [])", n.Output().Type().PyString())
		} else {
			p.printValueList(stmt, n.Inputs(), "[", "]")
		}
	case irkind.Fork:
		// The sub-graph is emitted as another function reached through a
		// receiver attribute; the call site invokes it by reference.
		name := p.methods.Name(forkedPrefix)
		subgraph := n.Subgraph()
		p.worklist = append(p.worklist, func() error {
			return p.printFunctionDefinition(subgraph, name, nil, nil)
		})
		stmt.WriteString("fork(self.")
		stmt.WriteString(name)
		for _, v := range n.Inputs() {
			stmt.WriteString(", ")
			stmt.WriteString(p.useOf(v))
		}
		stmt.WriteString(")")
	case irkind.Call:
		return p.printCall(stmt, n)
	default:
		return fmterr.Internalf(n, "cannot export node kind %v", n.Kind())
	}
	return nil
}

func (p *printer) printValueList(stmt *strings.Builder, values []*ir.Value, begin, end string) {
	stmt.WriteString(begin)
	stmt.WriteString(p.valueList(values))
	stmt.WriteString(end)
}

// printCall renders the default, schema-driven operator call.
func (p *printer) printCall(stmt *strings.Builder, n *ir.Node) error {
	sym := n.Sym()
	if sym.IsBuiltin() {
		// The built-in namespace spells torch in the surface grammar.
		stmt.WriteString("torch.")
		stmt.WriteString(sym.Name)
	} else {
		stmt.WriteString("ops.")
		stmt.WriteString(sym.NS)
		stmt.WriteString(".")
		stmt.WriteString(sym.Name)
	}
	stmt.WriteString("(")
	schema := n.Schema()
	for i, v := range n.Inputs() {
		if i > 0 {
			stmt.WriteString(", ")
		}
		if i < len(schema.Args) {
			// Keyword-only arguments print their name at the call site.
			if schema.Args[i].KwargOnly {
				stmt.WriteString(schema.Args[i].Name)
				stmt.WriteString("=")
			}
		} else if !schema.Variadic {
			return fmterr.Internalf(n, "operator %s called with %d arguments but its schema declares %d and is not variadic", sym, len(n.Inputs()), len(schema.Args))
		}
		stmt.WriteString(p.useOf(v))
	}
	stmt.WriteString(")")
	return nil
}

// printNone decides between a bare None and an explicitly annotated one.
// A bare None can only be recovered on parsing when every use site matches
// a schema argument whose declared type has no free variables; otherwise
// the concrete optional type must be spelled out.
func (p *printer) printNone(stmt *strings.Builder, n *ir.Node) {
	if n.Output().Type() == ir.NoneType {
		stmt.WriteString("None")
		return
	}
	allUsableSchema := true
	for _, use := range n.Output().Uses() {
		schema := use.User.Schema()
		if schema == nil || use.Offset >= len(schema.Args) {
			allUsableSchema = false
			break
		}
		if schema.Args[use.Offset].Type.HasFreeVariables() {
			allUsableSchema = false
			break
		}
	}
	if allUsableSchema {
		stmt.WriteString("None")
	} else {
		fmt.Fprintf(stmt, "annotate(%s, None)", n.Output().Type().PyString())
	}
}

func (p *printer) printConstant(stmt *strings.Builder, v *ir.Literal) {
	switch v.Kind() {
	case ir.TensorLiteral:
		fmt.Fprintf(stmt, "CONSTANTS.c%d", p.internTensor(v.Tensor()))
	case ir.StringLiteral:
		printQuotedString(stmt, v.Str())
	case ir.DeviceLiteral:
		stmt.WriteString("torch.device(")
		printQuotedString(stmt, v.Str())
		stmt.WriteString(")")
	case ir.TensorListLiteral:
		stmt.WriteString("[")
		for i, t := range v.Tensors() {
			if i > 0 {
				stmt.WriteString(", ")
			}
			fmt.Fprintf(stmt, "CONSTANTS.c%d", p.internTensor(t))
		}
		stmt.WriteString("]")
	case ir.BoolListLiteral:
		printMaybeAnnotatedList(stmt, "bool", len(v.Bools()), func(b *strings.Builder) {
			for i, el := range v.Bools() {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(formatBool(el))
			}
		})
	case ir.IntListLiteral:
		printMaybeAnnotatedList(stmt, "int", len(v.Ints()), func(b *strings.Builder) {
			for i, el := range v.Ints() {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(strconv.FormatInt(el, 10))
			}
		})
	case ir.FloatListLiteral:
		printMaybeAnnotatedList(stmt, "float", len(v.Floats()), func(b *strings.Builder) {
			for i, el := range v.Floats() {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(formatFloat(el))
			}
		})
	case ir.NoneLiteral:
		stmt.WriteString("None")
	case ir.BoolLiteral:
		stmt.WriteString(formatBool(v.Bool()))
	case ir.IntLiteral:
		stmt.WriteString(strconv.FormatInt(v.Int(), 10))
	case ir.FloatLiteral:
		stmt.WriteString(formatFloat(v.Float()))
	}
}

// printMaybeAnnotatedList annotates empty primitive lists so the reparser
// can recover the element type.
func printMaybeAnnotatedList(stmt *strings.Builder, elemType string, size int, printElems func(*strings.Builder)) {
	if size == 0 {
		fmt.Fprintf(stmt, "annotate(List[%s], [])", elemType)
		return
	}
	stmt.WriteString("[")
	printElems(stmt)
	stmt.WriteString("]")
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// formatFloat renders a float so the reparser reads it back as a float:
// an integral value keeps a trailing .0.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// unix isprint but insensitive to locale
func isPrint(c byte) bool {
	return c > 0x1f && c < 0x7f
}

// printQuotedString escapes and quotes a string literal. Non-printable
// bytes escape to octal.
func printQuotedString(stmt *strings.Builder, str string) {
	stmt.WriteString("\"")
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch c {
		case '\\':
			stmt.WriteString(`\\`)
		case '\'':
			stmt.WriteString(`\'`)
		case '"':
			stmt.WriteString(`\"`)
		case '\a':
			stmt.WriteString(`\a`)
		case '\b':
			stmt.WriteString(`\b`)
		case '\f':
			stmt.WriteString(`\f`)
		case '\n':
			stmt.WriteString(`\n`)
		case '\r':
			stmt.WriteString(`\r`)
		case '\t':
			stmt.WriteString(`\t`)
		case '\v':
			stmt.WriteString(`\v`)
		default:
			if isPrint(c) {
				stmt.WriteByte(c)
			} else {
				fmt.Fprintf(stmt, "\\%03o", c)
			}
		}
	}
	stmt.WriteString("\"")
}
