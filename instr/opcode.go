package instr

// Category is the instruction modification parameter (IMP) that selects
// the command table.
type Category int

// The five categories.
const (
	Stack Category = iota
	Arithmetic
	Heap
	Flow
	IO
)

func (c Category) String() string {
	switch c {
	case Stack:
		return "stack"
	case Arithmetic:
		return "arithmetic"
	case Heap:
		return "heap"
	case Flow:
		return "flow"
	case IO:
		return "io"
	default:
		return "unknown"
	}
}

// Command is an operation within a category.
type Command int

// All commands, grouped by category.
const (
	Push Command = iota
	Duplicate
	Copy
	Swap
	Discard
	Slide

	Add
	Sub
	Mul
	Div
	Mod

	Store
	Retrieve

	Mark
	Call
	Jump
	JumpZero
	JumpNegative
	Return
	End

	OutputChar
	OutputNumber
	InputChar
	InputNumber

	numCommands
)

// ParamKind tells what follows a command in the source.
type ParamKind int

// Parameter kinds.
const (
	ParamNone ParamKind = iota
	ParamNumber
	ParamLabel
)

type commandInfo struct {
	name     string
	category Category
	param    ParamKind
}

var commandInfos = [numCommands]commandInfo{
	Push:      {"push", Stack, ParamNumber},
	Duplicate: {"duplicate", Stack, ParamNone},
	Copy:      {"copy", Stack, ParamNumber},
	Swap:      {"swap", Stack, ParamNone},
	Discard:   {"discard", Stack, ParamNone},
	Slide:     {"slide", Stack, ParamNumber},

	Add: {"add", Arithmetic, ParamNone},
	Sub: {"sub", Arithmetic, ParamNone},
	Mul: {"mul", Arithmetic, ParamNone},
	Div: {"div", Arithmetic, ParamNone},
	Mod: {"mod", Arithmetic, ParamNone},

	Store:    {"store", Heap, ParamNone},
	Retrieve: {"retrieve", Heap, ParamNone},

	Mark:         {"mark_label", Flow, ParamLabel},
	Call:         {"call_subroutine", Flow, ParamLabel},
	Jump:         {"jump_unconditional", Flow, ParamLabel},
	JumpZero:     {"jump_if_zero", Flow, ParamLabel},
	JumpNegative: {"jump_if_negative", Flow, ParamLabel},
	Return:       {"end_subroutine", Flow, ParamNone},
	End:          {"end_program", Flow, ParamNone},

	OutputChar:   {"output_char", IO, ParamNone},
	OutputNumber: {"output_number", IO, ParamNone},
	InputChar:    {"input_char", IO, ParamNone},
	InputNumber:  {"input_number", IO, ParamNone},
}

func (c Command) valid() bool {
	return c >= 0 && c < numCommands
}

func (c Command) String() string {
	if !c.valid() {
		return "unknown"
	}
	return commandInfos[c].name
}

// Category returns the category the command belongs to.
func (c Command) Category() Category {
	if !c.valid() {
		return -1
	}
	return commandInfos[c].category
}

// Param returns the kind of parameter the command takes.
func (c Command) Param() ParamKind {
	if !c.valid() {
		return ParamNone
	}
	return commandInfos[c].param
}

// Commands lists every command in declaration order.
func Commands() []Command {
	out := make([]Command, 0, numCommands)
	for c := Command(0); c < numCommands; c++ {
		out = append(out, c)
	}
	return out
}
