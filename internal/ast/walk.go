package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *ListLit:
		for _, item := range n.Items {
			Walk(item, fn)
		}

	case *RecordLit:
		if n.Update != nil {
			Walk(n.Update, fn)
		}
		for _, field := range n.Fields {
			Walk(field, fn)
		}

	case *RecordField:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *Lambda:
		for _, param := range n.Params {
			Walk(param, fn)
		}
		Walk(n.Body, fn)

	case *Apply:
		Walk(n.Fn, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *BinOp:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *UnaryOp:
		Walk(n.Operand, fn)

	case *Access:
		Walk(n.Receiver, fn)

	case *If:
		for _, branch := range n.Branches {
			Walk(branch.Cond, fn)
			Walk(branch.Then, fn)
		}
		Walk(n.Else, fn)

	case *When:
		Walk(n.Cond, fn)
		for _, branch := range n.Branches {
			for _, pat := range branch.Patterns {
				Walk(pat, fn)
			}
			if branch.Guard != nil {
				Walk(branch.Guard, fn)
			}
			Walk(branch.Body, fn)
		}

	case *Defs:
		for _, def := range n.Defs {
			Walk(def, fn)
		}
		Walk(n.Ret, fn)

	case *Backpassing:
		Walk(n.Pat, fn)
		Walk(n.Value, fn)
		Walk(n.Continuation, fn)

	case *ParensAround:
		Walk(n.Inner, fn)

	case *Annotation:
		Walk(n.Pat, fn)
		Walk(n.Type, fn)

	case *Alias:
		for _, v := range n.Vars {
			Walk(v, fn)
		}
		Walk(n.Type, fn)

	case *Body:
		Walk(n.Pat, fn)
		Walk(n.Value, fn)

	case *AnnotatedBody:
		Walk(n.AnnPat, fn)
		Walk(n.AnnType, fn)
		Walk(n.BodyPat, fn)
		Walk(n.BodyValue, fn)

	case *PatternApply:
		Walk(n.Fn, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *PatternRecord:
		for _, field := range n.Fields {
			Walk(field, fn)
		}

	case *PatternRequiredField:
		Walk(n.Pat, fn)

	case *PatternOptionalField:
		Walk(n.Default, fn)

	case *TypeApply:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *TypeFunction:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
		Walk(n.Ret, fn)

	case *TypeRecord:
		for _, field := range n.Fields {
			Walk(field, fn)
		}
		if n.Ext != nil {
			Walk(n.Ext, fn)
		}

	case *TypeRecordField:
		Walk(n.Type, fn)

	case *TypeTagUnion:
		for _, tag := range n.Tags {
			Walk(tag, fn)
		}
		if n.Ext != nil {
			Walk(n.Ext, fn)
		}

	case *TypeParens:
		Walk(n.Inner, fn)
	}
}
