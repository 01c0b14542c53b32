package main

import (
	"fmt"
	"strings"

	"axlab.dev/lessons/pkg/core"
	"axlab.dev/lessons/pkg/mathutil"
	"axlab.dev/lessons/pkg/piglatin"
	"axlab.dev/lessons/pkg/repeat"
	"axlab.dev/lessons/pkg/sequence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTermCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "term [n]",
		Short: "Print the n-th term of the sequence -1, 0, 1, 3, 5, 8, 13...",
		Long: `Prints the n-th term of the sequence. Indexes that are not
non-negative integers print -1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := sequence.TermOf(args[0])
			a.logger.Debug("sequence term", zap.String("n", args[0]), zap.Float64("term", term))
			fmt.Fprintln(cmd.OutOrStdout(), core.FormatNumber(term))
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "add [a] [b]",
		Short: "Print a + b",
		Long: `Prints the sum of both operands. When either operand is not a number
the configured null text is printed, or with --strict the command fails.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strict {
				sum, err := mathutil.AddStrict(args[0], args[1])
				if err != nil {
					a.logger.Debug("strict add rejected operands", zap.Error(err))
					return fmt.Errorf("add: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), core.FormatNumber(sum))
				return nil
			}
			sum, ok := mathutil.Add(args[0], args[1])
			a.printResult(cmd, "add", args, sum, ok)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail instead of printing null on invalid operands")
	return cmd
}

func newSubtractCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "subtract [a] [b]",
		Short: "Print a - b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, ok := mathutil.Subtract(args[0], args[1])
			a.printResult(cmd, "subtract", args, diff, ok)
			return nil
		},
	}
}

// printResult prints the configured null text when ok is false.
func (a *app) printResult(cmd *cobra.Command, op string, args []string, result float64, ok bool) {
	out := cmd.OutOrStdout()
	if !ok {
		a.logger.Debug("operands are not numbers", zap.String("op", op), zap.Strings("args", args))
		fmt.Fprintln(out, a.cfg.Output.Null)
		return
	}
	fmt.Fprintln(out, core.FormatNumber(result))
}

func newPigLatinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "piglatin [words...]",
		Short: "Print the words translated to pig latin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			out := piglatin.Transform(input)
			a.logger.Debug("pig latin", zap.String("input", input), zap.String("output", out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newRepeatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repeat [n] [text]",
		Short: "Print text n times",
		Long: `Prints text n times, one line each. Without text the configured
repeat message is printed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := a.cfg.Repeat.Message
			if len(args) > 1 {
				text = args[1]
			}

			out := cmd.OutOrStdout()
			err := repeat.Repeat(args[0], func() error {
				_, err := fmt.Fprintln(out, text)
				return err
			})
			if err != nil {
				return fmt.Errorf("repeat: %w", err)
			}
			a.logger.Debug("repeat done", zap.String("n", args[0]))
			return nil
		},
	}
}
