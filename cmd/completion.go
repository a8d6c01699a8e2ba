package cmd

import (
	"flag"
	"slices"
	"strings"

	"github.com/etnz/stock"
	"github.com/etnz/stock/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers shell completion requests for the commands of c, then
// exits. It does nothing when the shell is not asking for completion.
//
// Install it in bash with: complete -C stk stk
func Complete(c *subcommands.Commander, name string) {
	completionCommand(c).Complete(name)
}

func completionCommand(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	c.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = flagPredictor(f)
	})
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f)
		})
		switch cmd.Name() {
		case "topic":
			sub.Args = predict.Set(append(docs.Topics(), "*"))
		case "help":
			sub.Args = complete.PredictFunc(func(string) []string {
				var names []string
				c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
					names = append(names, cmd.Name())
				})
				return names
			})
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// flagPredictor predicts the values of a flag from its name.
func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "c":
		return predict.Set(names(stock.Companies()))
	case "k":
		return predict.Set(names(stock.Categories()))
	case "id":
		return complete.PredictFunc(predictIDs)
	case "o":
		return predict.Files("*.xlsx")
	case "store":
		return predict.Dirs("*")
	case "spec":
		return complete.PredictFunc(predictSpecs)
	}
	return predict.Something
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// predictIDs lists the ids of the file store, if any.
func predictIDs(prefix string) []string {
	items, err := stock.NewStore(stock.Dir(storeDir())).LoadCatalog()
	if err != nil {
		return nil
	}
	var ids []string
	for _, it := range items {
		if strings.HasPrefix(it.ID, prefix) {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// predictSpecs lists key=value pairs of the suggested spec values.
func predictSpecs(string) []string {
	var out []string
	add := func(s string) {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	for _, c := range stock.Categories() {
		for _, f := range stock.Fields(c) {
			if f.FreeText || len(f.Suggested) == 0 {
				add(f.Key + "=")
			}
			for _, v := range f.Suggested {
				add(f.Key + "=" + v)
			}
		}
	}
	return out
}
