// Command walk builds a binary search tree, prints its traversals,
// then steps the tree's cursor and shows where it ended up.
//
//	walk -n 10 --steps 4
//	walk --steps 8 -r 5 3 8 1 4 7 9 5
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.lepak.sg/bst/tree/binary"
)

type options struct {
	seed    int64
	num     int
	dupMax  int
	steps   int
	reverse bool
	noColor bool
}

func main() {
	if err := newWalkCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newWalkCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "walk [value...]",
		Short: "Build a binary search tree and step through it with the cursor",
		Long: "Build a binary search tree from the integer values given as arguments,\n" +
			"in that order, or a random one if there are none. Print its traversals,\n" +
			"then step the cursor and print the tree with the cursor marked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), values, opts)
		},
	}

	f := cmd.Flags()
	f.Int64VarP(&opts.seed, "seed", "s", 0, "seed (default current unix time in ns)")
	f.IntVarP(&opts.num, "num", "n", 10, "number of nodes in the tree")
	f.IntVarP(&opts.dupMax, "dup-max", "d", 0, "if > 0, draw values from [0, dup-max) so duplicates can happen")
	f.IntVar(&opts.steps, "steps", 3, "number of cursor steps to take")
	f.BoolVarP(&opts.reverse, "reverse", "r", false, "step with Previous instead of Next")
	f.BoolVar(&opts.noColor, "no-color", false, "don't highlight the cursor")

	return cmd
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))

	for i, raw := range args {
		num, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}

		out[i] = num
	}
	return out, nil
}

func run(out io.Writer, values []int, opts options) error {
	if opts.num < 0 {
		return fmt.Errorf("num must not be negative, got %d", opts.num)
	}
	if opts.steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", opts.steps)
	}

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	var tr *binary.Tree[int]
	switch {
	case len(values) > 0:
		tr = binary.New[int]()
		for _, v := range values {
			tr.Add(v)
		}
	case opts.dupMax > 0:
		tr = binary.BuildRandomWithDuplicates(opts.num, opts.dupMax, opts.seed)
	default:
		tr = binary.BuildRandom(opts.num, opts.seed)
	}

	preorder := make([]int, 0, opts.num)
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	ascending := make([]int, 0, opts.num)
	for k := range tr.All() {
		ascending = append(ascending, k)
	}

	descending := make([]int, 0, opts.num)
	for k := range tr.Backward() {
		descending = append(descending, k)
	}

	if len(values) == 0 {
		fmt.Fprintln(out, "seed:", opts.seed)
	}
	fmt.Fprintln(out, "preorder:", preorder)
	fmt.Fprintln(out, "ascending:", ascending)
	fmt.Fprintln(out, "descending:", descending)

	step, stepName := tr.Next, "next"
	if opts.reverse {
		step, stepName = tr.Previous, "previous"
	}

	for i := 1; i <= opts.steps; i++ {
		if step() {
			v, _ := tr.Current()
			fmt.Fprintf(out, "%s %d: %d\n", stepName, i, v)
		} else {
			fmt.Fprintf(out, "%s %d: unset\n", stepName, i)
		}
	}

	hl := color.New(color.FgRed, color.Bold)
	if opts.noColor {
		hl.DisableColor()
	}

	fmt.Fprintln(out, "tree:")
	fmt.Fprint(out, tr.StringFunc(func(v int, atCursor bool) string {
		s := strconv.Itoa(v)
		if atCursor {
			return hl.Sprint("[" + s + "]")
		}
		return s
	}))

	actual, ideal := tr.Height()
	fmt.Fprintln(out, "height:", actual, "ideal:", ideal)

	return nil
}
