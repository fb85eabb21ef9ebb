package eval

// Expression tree. Nodes carry no behaviour: every operator, function and
// constant is resolved against the registries at walk time, so a node shape
// the walker does not know is rejected rather than interpreted.
type node interface {
	isNode()
}

type literalNode float64

type identNode string

type unaryNode struct {
	op      string
	operand node
}

type binaryNode struct {
	op          string
	left, right node
}

type callNode struct {
	name string
	args []node
}

func (literalNode) isNode() {}
func (identNode) isNode()   {}
func (unaryNode) isNode()   {}
func (binaryNode) isNode()  {}
func (callNode) isNode()    {}
