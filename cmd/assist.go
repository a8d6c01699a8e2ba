package cmd

import (
	"context"
	"flag"
	"io"
	"strings"

	"github.com/etnz/stock/advisor"
	"github.com/google/subcommands"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `stk assist [<first question>]

  Starts a chat with an assistant that reads the inventory and the ledger to
  answer. Type 'bye' to exit. Requires GEMINI_API_KEY.

`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (*assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := advisor.NewClient(ctx)
	if err != nil {
		return fail(err)
	}

	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	a := advisor.NewAssistant(stdout, stdin, inv, lowStock())
	a.Print = func(_ io.Writer, md string) { printMarkdown(md) }
	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
