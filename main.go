package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
)

type cli struct {
	Eval  EvalCmd  `cmd:"" help:"Evaluate a vector operation"`
	Check CheckCmd `cmd:"" help:"Load and validate a vector document"`
	Slice SliceCmd `cmd:"" help:"Slice a mesh with a plane and render the outline"`
}

var CLI cli

func newParser(c *cli, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(c, append([]kong.Option{
		kong.Name("govec"),
		kong.Description("float32 3D vector math"),
	}, options...)...)
}

// separateEvalArgs ends flag parsing after "eval <op>" so that operands with a leading
// minus, such as -1,2,3 or a negative scalar, are read as operands and not flags.
func separateEvalArgs(args []string) []string {
	if len(args) < 3 || args[0] != "eval" || len(args[1]) == 0 || args[1][0] == '-' || args[2] == "--" {
		return args
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args[:2]...)
	out = append(out, "--")
	return append(out, args[2:]...)
}

func main() {
	parser, err := newParser(&CLI)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(separateEvalArgs(os.Args[1:]))
	parser.FatalIfErrorf(err)
	if err := ctx.Run(); err != nil {
		log.Fatal(fmt.Errorf("%s: %w", ctx.Command(), err))
	}
}
