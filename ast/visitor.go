package ast

// Visitor is a set of per-variant hooks plus the category hooks they fall
// back to. Every field defaults, via NewVisitor, to a closure that
// delegates to its immediate parent category — Statement, Expression,
// Type, or PostExpression — which in turn defaults to AbstractNode,
// which defaults to Continue. Overriding a single field (say,
// VisitExpression) after construction changes the behavior of every
// concrete hook whose default still chains through it, because each
// default closure calls back through v rather than capturing a fixed
// function value. This is what lets a caller implement coarse behavior —
// "stop at every expression" — by overriding only the category hook,
// exactly as the spec's hook hierarchy intends.
//
// Fields are exported so a caller can override exactly the hooks it
// cares about; anything left untouched keeps NewVisitor's default chain.
type Visitor struct {
	VisitAbstractNode    func(Node) Result
	VisitStatement       func(Statement) Result
	VisitExpression      func(Expression) Result
	VisitType            func(Type) Result
	VisitPostExpression  func(PostExpression) Result

	VisitBlock      func(*Block) Result
	VisitClass      func(*Class) Result
	VisitFunction   func(*Function) Result
	VisitParameter  func(*Parameter) Result
	VisitVariable   func(*Variable) Result
	VisitScope      func(*Scope) Result

	VisitNamedType     func(*NamedType) Result
	VisitPointerType   func(*PointerType) Result
	VisitReferenceType func(*ReferenceType) Result
	VisitFunctionType  func(*FunctionType) Result

	VisitIf                 func(*If) Result
	VisitWhile              func(*While) Result
	VisitFor                func(*For) Result
	VisitReturn             func(*Return) Result
	VisitBreak              func(*Break) Result
	VisitContinue           func(*Continue) Result
	VisitLabel              func(*Label) Result
	VisitGoto               func(*Goto) Result
	VisitExpressionStatement func(*ExpressionStatement) Result

	VisitLiteral        func(*Literal) Result
	VisitNameReference  func(*NameReference) Result
	VisitBinaryOperator func(*BinaryOperator) Result
	VisitUnaryOperator  func(*UnaryOperator) Result
	VisitMemberAccess   func(*MemberAccess) Result
	VisitCall           func(*Call) Result
	VisitCast           func(*Cast) Result
	VisitIndex          func(*Index) Result
}

// NewVisitor returns a Visitor whose every hook defaults to continuing
// and delegating to its category, as described on the Visitor type.
func NewVisitor() *Visitor {
	v := &Visitor{}

	v.VisitAbstractNode = func(Node) Result { return Continue }
	v.VisitStatement = func(n Statement) Result { return v.VisitAbstractNode(n) }
	v.VisitExpression = func(n Expression) Result { return v.VisitStatement(n) }
	v.VisitType = func(n Type) Result { return v.VisitAbstractNode(n) }
	v.VisitPostExpression = func(n PostExpression) Result { return v.VisitExpression(n) }

	v.VisitBlock = func(n *Block) Result { return v.VisitAbstractNode(n) }
	v.VisitClass = func(n *Class) Result { return v.VisitAbstractNode(n) }
	v.VisitFunction = func(n *Function) Result { return v.VisitAbstractNode(n) }
	v.VisitParameter = func(n *Parameter) Result { return v.VisitAbstractNode(n) }
	v.VisitVariable = func(n *Variable) Result { return v.VisitAbstractNode(n) }
	v.VisitScope = func(n *Scope) Result { return v.VisitAbstractNode(n) }

	v.VisitNamedType = func(n *NamedType) Result { return v.VisitType(n) }
	v.VisitPointerType = func(n *PointerType) Result { return v.VisitType(n) }
	v.VisitReferenceType = func(n *ReferenceType) Result { return v.VisitType(n) }
	v.VisitFunctionType = func(n *FunctionType) Result { return v.VisitType(n) }

	v.VisitIf = func(n *If) Result { return v.VisitStatement(n) }
	v.VisitWhile = func(n *While) Result { return v.VisitStatement(n) }
	v.VisitFor = func(n *For) Result { return v.VisitStatement(n) }
	v.VisitReturn = func(n *Return) Result { return v.VisitStatement(n) }
	v.VisitBreak = func(n *Break) Result { return v.VisitStatement(n) }
	v.VisitContinue = func(n *Continue) Result { return v.VisitStatement(n) }
	v.VisitLabel = func(n *Label) Result { return v.VisitStatement(n) }
	v.VisitGoto = func(n *Goto) Result { return v.VisitStatement(n) }
	v.VisitExpressionStatement = func(n *ExpressionStatement) Result { return v.VisitStatement(n) }

	v.VisitLiteral = func(n *Literal) Result { return v.VisitExpression(n) }
	v.VisitNameReference = func(n *NameReference) Result { return v.VisitExpression(n) }
	v.VisitBinaryOperator = func(n *BinaryOperator) Result { return v.VisitExpression(n) }
	v.VisitUnaryOperator = func(n *UnaryOperator) Result { return v.VisitExpression(n) }
	v.VisitMemberAccess = func(n *MemberAccess) Result { return v.VisitPostExpression(n) }
	v.VisitCall = func(n *Call) Result { return v.VisitPostExpression(n) }
	v.VisitCast = func(n *Cast) Result { return v.VisitPostExpression(n) }
	v.VisitIndex = func(n *Index) Result { return v.VisitPostExpression(n) }

	return v
}
