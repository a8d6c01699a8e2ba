package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/google/subcommands"
)

// Environment passed to extensions, resolved from the global flags.
const (
	EnvStore     = "STK_STORE"
	EnvRedis     = "STK_REDIS"
	EnvNamespace = "STK_NAMESPACE"
	EnvLowStock  = "STK_LOW_STOCK"
	EnvVerbose   = "STK_VERBOSE"
)

// IsCommand reports whether name is a subcommand registered in c.
func IsCommand(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}

// RunExtension attempts to find and execute an external stk-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "stk-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("external command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = stdin, stdout, stderr
	cmd.Env = append(os.Environ(),
		EnvStore+"="+storeDir(),
		EnvRedis+"="+redisAddr(),
		EnvNamespace+"="+namespace(),
		EnvLowStock+"="+strconv.Itoa(lowStock()),
		EnvVerbose+"="+strconv.FormatBool(*verboseFlag),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
