package ast

import (
	"fmt"
	"strings"
)

// Dump renders a node as an indented s-expression, mainly for the CLI and
// for test failure output.
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node, 0)
	return b.String()
}

func dump(b *strings.Builder, node Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if node == nil {
		fmt.Fprintf(b, "%s(nil)\n", indent)
		return
	}

	switch n := node.(type) {
	case *NumLit:
		fmt.Fprintf(b, "%s(num %s)\n", indent, n.Text)
	case *FloatLit:
		fmt.Fprintf(b, "%s(float %s)\n", indent, n.Text)
	case *NonBase10Lit:
		sign := ""
		if n.Negative {
			sign = "-"
		}
		fmt.Fprintf(b, "%s(num base=%d %s%s)\n", indent, n.Base, sign, n.Text)
	case *StrLit:
		fmt.Fprintf(b, "%s(str %q)\n", indent, n.Value)
	case *Var:
		if n.Module != "" {
			fmt.Fprintf(b, "%s(var %s.%s)\n", indent, n.Module, n.Name)
		} else {
			fmt.Fprintf(b, "%s(var %s)\n", indent, n.Name)
		}
	case *GlobalTag:
		fmt.Fprintf(b, "%s(tag %s)\n", indent, n.Name)
	case *PrivateTag:
		fmt.Fprintf(b, "%s(tag %s)\n", indent, n.Name)
	case *ListLit:
		fmt.Fprintf(b, "%s(list\n", indent)
		for _, item := range n.Items {
			dump(b, item, depth+1)
		}
		fmt.Fprintf(b, "%s)\n", indent)
	case *RecordLit:
		fmt.Fprintf(b, "%s(record\n", indent)
		if n.Update != nil {
			fmt.Fprintf(b, "%s  update:\n", indent)
			dump(b, n.Update, depth+2)
		}
		for _, field := range n.Fields {
			dump(b, field, depth+1)
		}
		fmt.Fprintf(b, "%s)\n", indent)
	case *RecordField:
		switch n.Kind {
		case FieldLabelOnly:
			fmt.Fprintf(b, "%s(field %s)\n", indent, n.Label)
		case FieldOptional:
			fmt.Fprintf(b, "%s(field %s ?\n", indent, n.Label)
			dump(b, n.Value, depth+1)
			fmt.Fprintf(b, "%s)\n", indent)
		case FieldMalformed:
			fmt.Fprintf(b, "%s(field! %s)\n", indent, n.Label)
		default:
			fmt.Fprintf(b, "%s(field %s :\n", indent, n.Label)
			dump(b, n.Value, depth+1)
			fmt.Fprintf(b, "%s)\n", indent)
		}
	case *Lambda:
		fmt.Fprintf(b, "%s(lambda\n", indent)
		for _, p := range n.Params {
			dump(b, p, depth+1)
		}
		fmt.Fprintf(b, "%s->\n", indent)
		dump(b, n.Body, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *Apply:
		fmt.Fprintf(b, "%s(apply\n", indent)
		dump(b, n.Fn, depth+1)
		for _, arg := range n.Args {
			dump(b, arg, depth+1)
		}
		fmt.Fprintf(b, "%s)\n", indent)
	case *BinOp:
		fmt.Fprintf(b, "%s(binop %s\n", indent, n.Op)
		dump(b, n.Left, depth+1)
		dump(b, n.Right, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *UnaryOp:
		fmt.Fprintf(b, "%s(unary %s\n", indent, n.Op)
		dump(b, n.Operand, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *Access:
		fmt.Fprintf(b, "%s(access .%s\n", indent, n.Field)
		dump(b, n.Receiver, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *AccessorFn:
		fmt.Fprintf(b, "%s(accessor .%s)\n", indent, n.Field)
	case *If:
		fmt.Fprintf(b, "%s(if\n", indent)
		for _, br := range n.Branches {
			dump(b, br.Cond, depth+1)
			dump(b, br.Then, depth+1)
		}
		fmt.Fprintf(b, "%selse\n", indent)
		dump(b, n.Else, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *When:
		fmt.Fprintf(b, "%s(when\n", indent)
		dump(b, n.Cond, depth+1)
		for _, br := range n.Branches {
			for _, p := range br.Patterns {
				dump(b, p, depth+1)
			}
			if br.Guard != nil {
				fmt.Fprintf(b, "%s  if\n", indent)
				dump(b, br.Guard, depth+2)
			}
			fmt.Fprintf(b, "%s  ->\n", indent)
			dump(b, br.Body, depth+2)
		}
		fmt.Fprintf(b, "%s)\n", indent)
	case *Defs:
		fmt.Fprintf(b, "%s(defs\n", indent)
		for _, def := range n.Defs {
			dump(b, def, depth+1)
		}
		fmt.Fprintf(b, "%sin\n", indent)
		dump(b, n.Ret, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *Backpassing:
		fmt.Fprintf(b, "%s(backpass\n", indent)
		dump(b, n.Pat, depth+1)
		dump(b, n.Value, depth+1)
		dump(b, n.Continuation, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *ParensAround:
		fmt.Fprintf(b, "%s(parens\n", indent)
		dump(b, n.Inner, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *MalformedIdent:
		fmt.Fprintf(b, "%s(malformed %q)\n", indent, n.Text)

	case *PatternIdent:
		fmt.Fprintf(b, "%s(pat-ident %s)\n", indent, n.Name)
	case *PatternQualified:
		fmt.Fprintf(b, "%s(pat-qualified %s.%s)\n", indent, n.Module, n.Name)
	case *PatternGlobalTag:
		fmt.Fprintf(b, "%s(pat-tag %s)\n", indent, n.Name)
	case *PatternPrivateTag:
		fmt.Fprintf(b, "%s(pat-tag %s)\n", indent, n.Name)
	case *PatternApply:
		fmt.Fprintf(b, "%s(pat-apply\n", indent)
		dump(b, n.Fn, depth+1)
		for _, arg := range n.Args {
			dump(b, arg, depth+1)
		}
		fmt.Fprintf(b, "%s)\n", indent)
	case *PatternRecord:
		fmt.Fprintf(b, "%s(pat-record\n", indent)
		for _, field := range n.Fields {
			dump(b, field, depth+1)
		}
		fmt.Fprintf(b, "%s)\n", indent)
	case *PatternRequiredField:
		fmt.Fprintf(b, "%s(pat-field %s\n", indent, n.Label)
		dump(b, n.Pat, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *PatternOptionalField:
		fmt.Fprintf(b, "%s(pat-field %s ?\n", indent, n.Label)
		dump(b, n.Default, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *PatternNumLit:
		fmt.Fprintf(b, "%s(pat-num %s)\n", indent, n.Text)
	case *PatternFloatLit:
		fmt.Fprintf(b, "%s(pat-float %s)\n", indent, n.Text)
	case *PatternNonBase10Lit:
		sign := ""
		if n.Negative {
			sign = "-"
		}
		fmt.Fprintf(b, "%s(pat-num base=%d %s%s)\n", indent, n.Base, sign, n.Text)
	case *PatternStrLit:
		fmt.Fprintf(b, "%s(pat-str %q)\n", indent, n.Value)
	case *PatternUnderscore:
		fmt.Fprintf(b, "%s(pat-underscore %s)\n", indent, n.Name)
	case *PatternMalformed:
		fmt.Fprintf(b, "%s(pat-malformed %q)\n", indent, n.Text)

	case *Annotation:
		fmt.Fprintf(b, "%s(annotation\n", indent)
		dump(b, n.Pat, depth+1)
		dump(b, n.Type, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *Alias:
		fmt.Fprintf(b, "%s(alias %s\n", indent, n.Name)
		for _, v := range n.Vars {
			dump(b, v, depth+1)
		}
		dump(b, n.Type, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *Body:
		fmt.Fprintf(b, "%s(body\n", indent)
		dump(b, n.Pat, depth+1)
		dump(b, n.Value, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *AnnotatedBody:
		fmt.Fprintf(b, "%s(annotated-body\n", indent)
		dump(b, n.AnnPat, depth+1)
		dump(b, n.AnnType, depth+1)
		dump(b, n.BodyPat, depth+1)
		dump(b, n.BodyValue, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)

	case *TypeApply:
		if n.Module != "" {
			fmt.Fprintf(b, "%s(type %s.%s", indent, n.Module, n.Name)
		} else {
			fmt.Fprintf(b, "%s(type %s", indent, n.Name)
		}
		if len(n.Args) == 0 {
			b.WriteString(")\n")
			break
		}
		b.WriteString("\n")
		for _, arg := range n.Args {
			dump(b, arg, depth+1)
		}
		fmt.Fprintf(b, "%s)\n", indent)
	case *TypeVar:
		fmt.Fprintf(b, "%s(type-var %s)\n", indent, n.Name)
	case *TypeWildcard:
		fmt.Fprintf(b, "%s(type *)\n", indent)
	case *TypeFunction:
		fmt.Fprintf(b, "%s(type-fn\n", indent)
		for _, arg := range n.Args {
			dump(b, arg, depth+1)
		}
		fmt.Fprintf(b, "%s->\n", indent)
		dump(b, n.Ret, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *TypeRecord:
		fmt.Fprintf(b, "%s(type-record\n", indent)
		for _, field := range n.Fields {
			dump(b, field, depth+1)
		}
		fmt.Fprintf(b, "%s)\n", indent)
	case *TypeRecordField:
		sep := ":"
		if n.Optional {
			sep = "?"
		}
		fmt.Fprintf(b, "%s(%s %s\n", indent, n.Label, sep)
		dump(b, n.Type, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *TypeTagUnion:
		fmt.Fprintf(b, "%s(type-tags\n", indent)
		for _, tag := range n.Tags {
			dump(b, tag, depth+1)
		}
		fmt.Fprintf(b, "%s)\n", indent)
	case *TypeParens:
		fmt.Fprintf(b, "%s(type-parens\n", indent)
		dump(b, n.Inner, depth+1)
		fmt.Fprintf(b, "%s)\n", indent)
	case *TypeMalformed:
		fmt.Fprintf(b, "%s(type-malformed %q)\n", indent, n.Text)

	default:
		fmt.Fprintf(b, "%s(unknown %T)\n", indent, node)
	}
}
