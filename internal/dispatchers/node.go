package dispatchers

// CommandFunc executes one command given its positional arguments and
// parsed flags.
type CommandFunc func(args []string, flags *ParsedFlags) error

// Resolution is the outcome of dispatching a token sequence: the node that
// was selected, the arguments left over for it, and the function to run.
type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedFlags
	Execute  CommandFunc
	ExitCode int
}

// FlagScope distinguishes flags valid everywhere from flags local to one
// command.
type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

// FlagDescriptor documents one flag for validation and help rendering.
type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

// ArgSpec documents one positional argument.
type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

// DispatchNode is one entry in the command registry. The registry is a
// tree rooted at the program node; every command carries its own help
// metadata so usage text and implementation stay co-located.
type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Usage       string
	Description string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}
