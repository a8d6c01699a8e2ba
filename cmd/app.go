// Package cmd implements the stk command line application to manage the
// inventory of an electronics shop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stock"
	"github.com/etnz/stock/advisor"
	"github.com/etnz/stock/redisstore"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&addCmd{}, "catalog")
	c.Register(&editCmd{}, "catalog")
	c.Register(&rmCmd{}, "catalog")
	c.Register(&listCmd{}, "catalog")
	c.Register(&showCmd{}, "catalog")
	c.Register(&shareCmd{}, "catalog")
	c.Register(&specsCmd{}, "catalog")
	c.Register(&suggestCmd{}, "catalog")

	c.Register(&movementCmd{direction: stock.In}, "stock")
	c.Register(&movementCmd{direction: stock.Out}, "stock")
	c.Register(&txCmd{}, "stock")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&insightsCmd{}, "advisor")
	c.Register(&askCmd{}, "advisor")
	c.Register(&describeCmd{}, "advisor")
	c.Register(&assistCmd{}, "advisor")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storeFlag   = flag.String("store", "", "Folder of the inventory files. Defaults to $STK_STORE or .stock")
	redisFlag   = flag.String("redis", "", "Address of a Redis server storing the inventory instead of files. Defaults to $STK_REDIS")
	lowFlag     = flag.Int("low", 0, "Low stock threshold. Defaults to $STK_LOW_STOCK or 5")
	verboseFlag = flag.Bool("v", false, "Log what is going on")
)

// output streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// LoadEnv reads the .env file of the current directory, if any. Variables
// already set are not overridden.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning, could not load .env: %v", err)
	}
}

// Setup applies the global flags once they are parsed.
func Setup() {
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}
}

// setting returns the flag value if set, otherwise the environment variable,
// otherwise def.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func storeDir() string  { return setting(*storeFlag, "STK_STORE", ".stock") }
func redisAddr() string { return setting(*redisFlag, "STK_REDIS", "") }
func namespace() string { return setting("", "STK_NAMESPACE", "stk:") }

// lowStock returns the low stock threshold.
func lowStock() int {
	if *lowFlag > 0 {
		return *lowFlag
	}
	if v := os.Getenv("STK_LOW_STOCK"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n >= 0 {
			return n
		}
		log.Printf("warning, invalid STK_LOW_STOCK %q, using %d", v, stock.DefaultLowStock)
	}
	return stock.DefaultLowStock
}

// sessionTTL is the lifetime of the Redis session lock.
const sessionTTL = 10 * time.Minute

// openInventory opens the inventory from the configured store. The returned
// close function releases the store and must be called.
func openInventory(ctx context.Context) (*stock.Inventory, func(), error) {
	var (
		kv      stock.KV
		closeKV = func() {}
	)
	if addr := redisAddr(); addr != "" {
		client, err := redisstore.Dial(ctx, addr)
		if err != nil {
			return nil, nil, err
		}
		rkv := redisstore.New(client, namespace())
		lock, err := rkv.Lock(ctx, sessionTTL)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		kv = rkv
		closeKV = func() {
			if err := lock.Release(context.Background()); err != nil {
				log.Printf("warning, could not release the session lock: %v", err)
			}
			client.Close()
		}
	} else {
		kv = stock.Dir(storeDir())
	}

	inv, err := stock.Open(stock.NewStore(kv), stock.WithAdvisor(newAdvisor(ctx)))
	if err != nil {
		closeKV()
		return nil, nil, fmt.Errorf("could not open inventory: %w", err)
	}
	return inv, closeKV, nil
}

// newAdvisor returns the Gemini advisor, or nil when no API key is set.
func newAdvisor(ctx context.Context) stock.Advisor {
	client, err := advisor.NewClient(ctx)
	if err != nil {
		log.Printf("warning, advisor disabled: %v", err)
		return nil
	}
	return advisor.NewGemini(client)
}

// printMarkdown prints md, rendered for the terminal when stdout is one.
func printMarkdown(md string) {
	if f, ok := stdout.(*os.File); ok && isTerminal(f) {
		out, err := renderTerminal(md)
		if err == nil {
			fmt.Fprint(stdout, out)
			return
		}
		log.Printf("warning, could not render markdown: %v", err)
	}
	fmt.Fprintln(stdout, md)
}

func renderTerminal(md string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// fail prints err and returns the matching exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// usage prints a usage error.
func usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}

func warn(format string, args ...any) {
	fmt.Fprintf(stderr, "Warning: "+format+"\n", args...)
}
