package ast

// Visitor dispatches over every concrete node kind this package
// defines. The analyzer implements this interface to walk a Program
// (see internal/analyzer), following the teacher's Accept/Visit
// dispatch convention rather than type-switching at every call site.
type Visitor interface {
	VisitProgram(n *Program)

	// Expressions
	VisitIdentifier(n *Identifier)
	VisitNumberLiteral(n *NumberLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitNullLiteral(n *NullLiteral)
	VisitUndefinedLiteral(n *UndefinedLiteral)
	VisitRegexLiteral(n *RegexLiteral)
	VisitTemplateLiteral(n *TemplateLiteral)
	VisitThisExpression(n *ThisExpression)
	VisitSpreadElement(n *SpreadElement)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitMemberExpression(n *MemberExpression)
	VisitCallExpression(n *CallExpression)
	VisitNewExpression(n *NewExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitAssignmentExpression(n *AssignmentExpression)
	VisitSequenceExpression(n *SequenceExpression)
	VisitAnnotatedExpression(n *AnnotatedExpression)
	VisitFunctionExpression(n *FunctionExpression)
	VisitClassExpression(n *ClassExpression)

	// Statements
	VisitBlockStatement(n *BlockStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitReturnStatement(n *ReturnStatement)
	VisitIfStatement(n *IfStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitForStatement(n *ForStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitDirectiveStatement(n *DirectiveStatement)
	VisitTypeAliasDeclaration(n *TypeAliasDeclaration)
	VisitInterfaceDeclaration(n *InterfaceDeclaration)
	VisitEnumDeclaration(n *EnumDeclaration)
	VisitImportDeclaration(n *ImportDeclaration)
	VisitExportDeclaration(n *ExportDeclaration)
	VisitClassDeclaration(n *ClassDeclaration)

	// Type nodes
	VisitKeywordTypeNode(n *KeywordTypeNode)
	VisitLiteralTypeNode(n *LiteralTypeNode)
	VisitArrayTypeNode(n *ArrayTypeNode)
	VisitTupleTypeNode(n *TupleTypeNode)
	VisitUnionTypeNode(n *UnionTypeNode)
	VisitIntersectionTypeNode(n *IntersectionTypeNode)
	VisitFunctionTypeNode(n *FunctionTypeNode)
	VisitConstructorTypeNode(n *ConstructorTypeNode)
	VisitTypeRefNode(n *TypeRefNode)
	VisitTypeLiteralNode(n *TypeLiteralNode)
	VisitThisTypeNode(n *ThisTypeNode)
	VisitTypeQueryNode(n *TypeQueryNode)
}

// BaseVisitor is an embeddable no-op Visitor. Concrete visitors (the
// analyzer's walker, test fixtures) embed it and override only the
// methods they care about, mirroring the teacher's base-visitor
// pattern for its own AST walks.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(n *Program)                               {}
func (BaseVisitor) VisitIdentifier(n *Identifier)                         {}
func (BaseVisitor) VisitNumberLiteral(n *NumberLiteral)                   {}
func (BaseVisitor) VisitStringLiteral(n *StringLiteral)                   {}
func (BaseVisitor) VisitBooleanLiteral(n *BooleanLiteral)                 {}
func (BaseVisitor) VisitNullLiteral(n *NullLiteral)                       {}
func (BaseVisitor) VisitUndefinedLiteral(n *UndefinedLiteral)             {}
func (BaseVisitor) VisitRegexLiteral(n *RegexLiteral)                     {}
func (BaseVisitor) VisitTemplateLiteral(n *TemplateLiteral)               {}
func (BaseVisitor) VisitThisExpression(n *ThisExpression)                 {}
func (BaseVisitor) VisitSpreadElement(n *SpreadElement)                   {}
func (BaseVisitor) VisitArrayLiteral(n *ArrayLiteral)                     {}
func (BaseVisitor) VisitObjectLiteral(n *ObjectLiteral)                   {}
func (BaseVisitor) VisitMemberExpression(n *MemberExpression)             {}
func (BaseVisitor) VisitCallExpression(n *CallExpression)                 {}
func (BaseVisitor) VisitNewExpression(n *NewExpression)                   {}
func (BaseVisitor) VisitBinaryExpression(n *BinaryExpression)             {}
func (BaseVisitor) VisitUnaryExpression(n *UnaryExpression)               {}
func (BaseVisitor) VisitConditionalExpression(n *ConditionalExpression)   {}
func (BaseVisitor) VisitAssignmentExpression(n *AssignmentExpression)     {}
func (BaseVisitor) VisitSequenceExpression(n *SequenceExpression)         {}
func (BaseVisitor) VisitAnnotatedExpression(n *AnnotatedExpression)       {}
func (BaseVisitor) VisitFunctionExpression(n *FunctionExpression)         {}
func (BaseVisitor) VisitClassExpression(n *ClassExpression)               {}
func (BaseVisitor) VisitBlockStatement(n *BlockStatement)                 {}
func (BaseVisitor) VisitExpressionStatement(n *ExpressionStatement)       {}
func (BaseVisitor) VisitVariableDeclaration(n *VariableDeclaration)       {}
func (BaseVisitor) VisitFunctionDeclaration(n *FunctionDeclaration)       {}
func (BaseVisitor) VisitReturnStatement(n *ReturnStatement)               {}
func (BaseVisitor) VisitIfStatement(n *IfStatement)                       {}
func (BaseVisitor) VisitWhileStatement(n *WhileStatement)                 {}
func (BaseVisitor) VisitForStatement(n *ForStatement)                     {}
func (BaseVisitor) VisitBreakStatement(n *BreakStatement)                 {}
func (BaseVisitor) VisitContinueStatement(n *ContinueStatement)           {}
func (BaseVisitor) VisitDirectiveStatement(n *DirectiveStatement)         {}
func (BaseVisitor) VisitTypeAliasDeclaration(n *TypeAliasDeclaration)     {}
func (BaseVisitor) VisitInterfaceDeclaration(n *InterfaceDeclaration)     {}
func (BaseVisitor) VisitEnumDeclaration(n *EnumDeclaration)               {}
func (BaseVisitor) VisitImportDeclaration(n *ImportDeclaration)           {}
func (BaseVisitor) VisitExportDeclaration(n *ExportDeclaration)           {}
func (BaseVisitor) VisitClassDeclaration(n *ClassDeclaration)             {}
func (BaseVisitor) VisitKeywordTypeNode(n *KeywordTypeNode)               {}
func (BaseVisitor) VisitLiteralTypeNode(n *LiteralTypeNode)               {}
func (BaseVisitor) VisitArrayTypeNode(n *ArrayTypeNode)                   {}
func (BaseVisitor) VisitTupleTypeNode(n *TupleTypeNode)                   {}
func (BaseVisitor) VisitUnionTypeNode(n *UnionTypeNode)                   {}
func (BaseVisitor) VisitIntersectionTypeNode(n *IntersectionTypeNode)     {}
func (BaseVisitor) VisitFunctionTypeNode(n *FunctionTypeNode)             {}
func (BaseVisitor) VisitConstructorTypeNode(n *ConstructorTypeNode)       {}
func (BaseVisitor) VisitTypeRefNode(n *TypeRefNode)                       {}
func (BaseVisitor) VisitTypeLiteralNode(n *TypeLiteralNode)               {}
func (BaseVisitor) VisitThisTypeNode(n *ThisTypeNode)                     {}
func (BaseVisitor) VisitTypeQueryNode(n *TypeQueryNode)                   {}
