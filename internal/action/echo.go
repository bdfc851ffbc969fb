package action

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/consoleargs/foundation/args/command"
	"github.com/msto63/consoleargs/foundation/utils/slicex"
)

// Echo reports what the router parsed: the command, its positional
// arguments and every parameter in name order
func Echo(cmd *command.Command, args []string, params command.Params) (interface{}, error) {
	var b strings.Builder

	name := cmd.Name()
	if name == "" {
		name = "(default)"
	}
	fmt.Fprintf(&b, "command: %s\n", name)

	fmt.Fprintf(&b, "args: [%s]\n", strings.Join(slicex.Map(args, strconv.Quote), " "))

	if names := params.Names(); len(names) > 0 {
		b.WriteString("params:\n")
		for _, n := range names {
			fmt.Fprintf(&b, "  %s = %s\n", n, display(params.Get(n).Interface()))
		}
	}

	return b.String(), nil
}

func display(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "<absent>"
	case string:
		return strconv.Quote(val)
	case []string:
		return "[" + strings.Join(slicex.Map(val, strconv.Quote), " ") + "]"
	default:
		return fmt.Sprint(val)
	}
}
