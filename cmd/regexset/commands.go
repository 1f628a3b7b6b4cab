package main

import (
	"github.com/coregx/regexset/term"
	"github.com/spf13/cobra"
)

// termFromArg is the shared entry point every subcommand uses to turn a CLI
// argument into a Term, so a malformed pattern fails the same way no matter
// which operation was requested.
func termFromArg(pattern string) (*term.Term, error) {
	cfg, err := loadEngineConfig()
	if err != nil {
		return nil, err
	}
	return term.FromRegex(pattern, cfg)
}

func newFromRegexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-regex <pattern>",
		Short: "Validate a pattern and echo it unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := termFromArg(args[0])
			if err != nil {
				return err
			}
			out, err := t.ToRegex()
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
}

func newToRegexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-regex <pattern>",
		Short: "Materialize a pattern's automaton and render it back to regex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := termFromArg(args[0])
			if err != nil {
				return err
			}
			if err := t.Minimize(); err != nil {
				return err
			}
			out, err := t.ToRegex()
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
}

// combineCmd builds a subcommand for an n-ary Term combinator (union,
// intersection) that takes two or more pattern arguments.
func combineCmd(use, short string, op func(t *term.Term, others ...*term.Term) (*term.Term, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <pattern> <pattern>...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms := make([]*term.Term, len(args))
			for i, p := range args {
				t, err := termFromArg(p)
				if err != nil {
					return err
				}
				terms[i] = t
			}
			result, err := op(terms[0], terms[1:]...)
			if err != nil {
				return err
			}
			out, err := result.ToRegex()
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
}

func newUnionCmd() *cobra.Command {
	return combineCmd("union", "Union two or more patterns", term.Union)
}

func newIntersectCmd() *cobra.Command {
	return combineCmd("intersect", "Intersect two or more patterns", term.Intersection)
}

func newSubtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subtract <pattern> <pattern>",
		Short: "Subtract the second pattern's language from the first's",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := termFromArg(args[0])
			if err != nil {
				return err
			}
			b, err := termFromArg(args[1])
			if err != nil {
				return err
			}
			result, err := a.Subtraction(b)
			if err != nil {
				return err
			}
			out, err := result.ToRegex()
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
}

func newComplementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complement <pattern>",
		Short: "Complement a pattern's language over the full scalar alphabet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := termFromArg(args[0])
			if err != nil {
				return err
			}
			result, err := t.Complement()
			if err != nil {
				return err
			}
			out, err := result.ToRegex()
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
}

func newIsEmptyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is-empty <pattern>",
		Short: "Report whether a pattern's language is empty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := termFromArg(args[0])
			if err != nil {
				return err
			}
			empty, err := t.IsEmpty()
			if err != nil {
				return err
			}
			cmd.Println(empty)
			return nil
		},
	}
}

// decisionCmd builds a subcommand for a binary decision procedure
// (equivalence, subset) over exactly two pattern arguments.
func decisionCmd(use, short string, decide func(a, b *term.Term) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <pattern> <pattern>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := termFromArg(args[0])
			if err != nil {
				return err
			}
			b, err := termFromArg(args[1])
			if err != nil {
				return err
			}
			ok, err := decide(a, b)
			if err != nil {
				return err
			}
			cmd.Println(ok)
			return nil
		},
	}
}

func newIsEquivalentCmd() *cobra.Command {
	return decisionCmd("is-equivalent", "Report whether two patterns recognize the same language",
		func(a, b *term.Term) (bool, error) { return a.IsEquivalent(b) })
}

func newIsSubsetCmd() *cobra.Command {
	return decisionCmd("is-subset", "Report whether the first pattern's language is a subset of the second's",
		func(a, b *term.Term) (bool, error) { return a.IsSubsetOf(b) })
}
