package dispatchers

// RootSpec describes the program node of the registry.
type RootSpec struct {
	Name    string
	Summary string
	Usage   string
	Flags   []FlagDescriptor
}

// CommandSpec describes one command to register under a parent node.
type CommandSpec struct {
	Name        string
	Parent      *DispatchNode
	Summary     string
	Usage       string
	Description string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Action      CommandFunc
	Category    CommandCategory
}

// NewNode creates a node and links it into its parent's children.
func NewNode(
	name string,
	parent *DispatchNode,
	summary string,
	usage string,
	flags []FlagDescriptor,
	args []ArgSpec,
	action CommandFunc,
) *DispatchNode {

	node := &DispatchNode{
		Name:     name,
		Summary:  summary,
		Usage:    usage,
		Flags:    flags,
		Args:     args,
		Action:   action,
		Children: make(map[string]*DispatchNode),
	}

	if parent == nil {
		node.Path = []string{name}
	} else {
		node.Path = append(append([]string{}, parent.Path...), name)
		parent.Children[name] = node
	}

	return node
}

// Root creates the program node.
func Root(spec RootSpec) *DispatchNode {
	return NewNode(spec.Name, nil, spec.Summary, spec.Usage, spec.Flags, nil, nil)
}

// Command registers a command under its parent.
func Command(spec CommandSpec) *DispatchNode {
	node := NewNode(
		spec.Name,
		spec.Parent,
		spec.Summary,
		spec.Usage,
		spec.Flags,
		spec.Args,
		spec.Action,
	)

	node.Description = spec.Description
	node.Category = spec.Category
	return node
}
