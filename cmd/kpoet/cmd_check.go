package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/dhamidi/kpoet/decl"
	"github.com/dhamidi/kpoet/kotlin"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <document>...",
		Short: "Validate declaration documents without rendering them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				if _, err := a.load(path); err != nil {
					failed++
					fmt.Fprintf(out, "FAIL\t%s\t%s\t%v\n", path, ruleName(err), err)
					continue
				}
				fmt.Fprintf(out, "ok\t%s\n", path)
			}
			if failed > 0 {
				return errors.WithHint(
					errors.Newf("%d of %d documents failed", failed, len(args)),
					"the third column names the violated rule")
			}
			return nil
		},
	}

	return cmd
}

func ruleName(err error) string {
	if rule, ok := kotlin.RuleOf(err); ok {
		return string(rule)
	}
	var docErr *decl.DocumentError
	if errors.As(err, &docErr) {
		return "document"
	}
	return "error"
}
