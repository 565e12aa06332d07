package main

import (
	"context"
	"fmt"
	"strings"

	"bankocr/internal/account"
	"bankocr/internal/classify"

	"github.com/spf13/cobra"
)

// decodeCmd prints decoded account numbers without classifying them.
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Print the account numbers decoded from an OCR file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

// checkCmd classifies account numbers typed on the command line.
var checkCmd = &cobra.Command{
	Use:   "check [account...]",
	Short: "Classify account numbers given as arguments",
	Long: `Classifies 9-character account numbers directly, without OCR decoding.
Use '?' for unreadable digits.

Example:
  bankocr check 345882865 333393193 86110??36`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

// encodeCmd renders an account number as a glyph band.
var encodeCmd = &cobra.Command{
	Use:   "encode [account...]",
	Short: "Render account numbers as OCR glyph bands",
	Long: `Writes each account number as three glyph rows followed by a blank
separator row, the format expected by "process".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	path := cfg.Input
	if len(args) == 1 {
		path = args[0]
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	raw, err := openSource(path, cmd.InOrStdin()).Read(ctx)
	if err != nil {
		return err
	}
	for _, a := range account.Segment(raw) {
		fmt.Fprintln(cmd.OutOrStdout(), a)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	var tally classify.Tally
	for _, arg := range args {
		if len(arg) != account.Digits {
			return fmt.Errorf("account %q must be %d characters", arg, account.Digits)
		}
		if strings.Trim(arg, "0123456789?") != "" {
			return fmt.Errorf("account %q may only contain digits and '?'", arg)
		}
		r := classify.Classify(account.Account(arg))
		tally.Add(r)
		fmt.Fprintln(cmd.OutOrStdout(), renderResult(r))
	}
	fmt.Fprintln(cmd.ErrOrStderr(), renderSummary("checked", tally))
	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	out, err := account.Format(args...)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
