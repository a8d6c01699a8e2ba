package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/stock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

// setup points the commands to an empty store in a temporary folder.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := *storeFlag
	*storeFlag = dir
	t.Cleanup(func() { *storeFlag = old })
	t.Setenv("STK_REDIS", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	return dir
}

// run executes c with args, input as stdin, and returns its status and outputs.
func run(t *testing.T, c subcommands.Command, input string, args ...string) (subcommands.ExitStatus, string, string) {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	var out, errOut bytes.Buffer
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	stdin, stdout, stderr = strings.NewReader(input), &out, &errOut
	defer func() { stdin, stdout, stderr = oldIn, oldOut, oldErr }()

	status := c.Execute(context.Background(), fs)
	return status, out.String(), errOut.String()
}

// mustRun is run expecting success.
func mustRun(t *testing.T, c subcommands.Command, args ...string) string {
	t.Helper()
	status, out, errOut := run(t, c, "", args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("%s %q failed with %v:\n%s", c.Name(), args, status, errOut)
	}
	return out
}

// load reads the inventory saved in dir.
func load(t *testing.T, dir string) *stock.Inventory {
	t.Helper()
	inv, err := stock.Open(stock.NewStore(stock.Dir(dir)))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return inv
}

func findItem(t *testing.T, inv *stock.Inventory, company stock.Company, name string) stock.StockItem {
	t.Helper()
	for _, it := range inv.Items() {
		if it.Company == company && strings.EqualFold(it.Name, name) {
			return it
		}
	}
	t.Fatalf("no item %s %q", company, name)
	return stock.StockItem{}
}

func TestStockLifecycle(t *testing.T) {
	dir := setup(t)

	out := mustRun(t, &addCmd{}, "-c", "samsung", "-k", "tv", "-n", "Neo QLED", "-spec", `screenSize=55"`, "-p", "100", "-q", "10")
	if !strings.HasPrefix(out, "Created ") {
		t.Errorf("first add printed %q, want a creation", out)
	}
	out = mustRun(t, &addCmd{}, "-c", "Samsung", "-k", "TV", "-n", "neo qled", "-spec", `screenSize=55"`, "-p", "90", "-q", "2")
	if !strings.HasPrefix(out, "Merged 2 into ") {
		t.Errorf("second add printed %q, want a merge", out)
	}

	item := findItem(t, load(t, dir), stock.Samsung, "Neo QLED")
	if item.Stock != 12 || item.Price.String() != "90" {
		t.Errorf("merged item has stock %d at %s, want 12 at 90", item.Stock, item.Price)
	}

	status, out, errOut := run(t, &movementCmd{direction: stock.Out}, "", "-id", item.ID, "-q", "15", "-party", "Ravi")
	if status != subcommands.ExitSuccess {
		t.Fatalf("sell failed: %s", errOut)
	}
	if !strings.Contains(errOut, "Warning: only 12") {
		t.Errorf("sell beyond stock should warn, got %q", errOut)
	}
	if !strings.Contains(out, "stock is now 0") {
		t.Errorf("sell printed %q, want stock 0", out)
	}

	mustRun(t, &movementCmd{direction: stock.In}, "-id", item.ID, "-q", "4", "-p", "80", "-party", "Metro")

	inv := load(t, dir)
	entries := inv.EntriesFor(item.ID)
	if len(entries) != 4 {
		t.Fatalf("got %d movements, want 4", len(entries))
	}
	gotDirections := []stock.Direction{entries[0].Direction, entries[1].Direction, entries[2].Direction, entries[3].Direction}
	if diff := cmp.Diff([]stock.Direction{stock.In, stock.Out, stock.In, stock.In}, gotDirections); diff != "" {
		t.Errorf("movements mismatch (-want +got):\n%s", diff)
	}
	if entries[1].Quantity != 15 {
		t.Errorf("sell movement quantity = %d, want the requested 15", entries[1].Quantity)
	}

	// Cancelled removal.
	status, out, _ = run(t, &rmCmd{}, "n\n", "-id", item.ID)
	if status != subcommands.ExitSuccess || !strings.Contains(out, "Cancelled") {
		t.Errorf("rm answered no printed %q, want Cancelled", out)
	}
	if _, err := load(t, dir).Item(item.ID); err != nil {
		t.Errorf("item removed despite the cancellation: %v", err)
	}

	mustRun(t, &rmCmd{}, "-id", item.ID, "-y")
	status, _, _ = run(t, &showCmd{}, "", "-id", item.ID)
	if status != subcommands.ExitFailure {
		t.Errorf("show of a removed item = %v, want a failure", status)
	}
	out = mustRun(t, &txCmd{}, "-id", item.ID)
	if !strings.Contains(out, "Neo QLED") || strings.Count(out, "| OUT |") != 1 {
		t.Errorf("movements of a removed item should be kept:\n%s", out)
	}
}

func TestEdit(t *testing.T) {
	dir := setup(t)
	mustRun(t, &addCmd{}, "-c", "LG", "-k", "Fridge", "-n", "GL-T292", "-spec", "capacity=260 L", "-p", "25000", "-q", "1")
	mustRun(t, &addCmd{}, "-c", "LG", "-k", "Fridge", "-n", "GL-T302", "-spec", "capacity=260 L", "-p", "26000", "-q", "1")
	item := findItem(t, load(t, dir), stock.LG, "GL-T302")

	status, _, errOut := run(t, &editCmd{}, "", "-id", item.ID, "-n", "gl-t292")
	if status != subcommands.ExitFailure || !strings.Contains(errOut, "already stocked") {
		t.Errorf("edit into another item = %v %q, want an identity conflict", status, errOut)
	}

	mustRun(t, &editCmd{}, "-id", item.ID, "-p", "24500", "-desc", "Convertible")
	got := findItem(t, load(t, dir), stock.LG, "GL-T302")
	if got.Price.String() != "24500" || got.Description != "Convertible" || got.Stock != 1 {
		t.Errorf("edited item = %+v", got)
	}
	if n := len(load(t, dir).EntriesFor(item.ID)); n != 1 {
		t.Errorf("edit recorded movements: got %d, want 1", n)
	}

	status, _, _ = run(t, &editCmd{}, "", "-id", item.ID)
	if status != subcommands.ExitUsageError {
		t.Errorf("edit without changes = %v, want a usage error", status)
	}
}

func TestUsageErrors(t *testing.T) {
	setup(t)
	tests := []struct {
		name string
		cmd  subcommands.Command
		args []string
	}{
		{"add unknown company", &addCmd{}, []string{"-c", "Acme", "-k", "TV", "-n", "X", "-q", "1"}},
		{"add unknown category", &addCmd{}, []string{"-c", "LG", "-k", "Drone", "-n", "X", "-q", "1"}},
		{"add without name", &addCmd{}, []string{"-c", "LG", "-k", "TV", "-q", "1"}},
		{"add negative quantity", &addCmd{}, []string{"-c", "LG", "-k", "TV", "-n", "X", "-q", "-1"}},
		{"add negative price", &addCmd{}, []string{"-c", "LG", "-k", "TV", "-n", "X", "-p", "-3"}},
		{"sell nothing", &movementCmd{direction: stock.Out}, []string{"-id", "seed-1", "-q", "0"}},
		{"list spec without category", &listCmd{}, []string{"-spec", `43"`}},
		{"ask nothing", &askCmd{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status, _, _ := run(t, tt.cmd, "", tt.args...); status != subcommands.ExitUsageError {
				t.Errorf("status = %v, want ExitUsageError", status)
			}
		})
	}
}

func TestReports(t *testing.T) {
	setup(t)

	out := mustRun(t, &listCmd{}, "-k", "AC")
	if !strings.Contains(out, "## Daikin") || !strings.Contains(out, "## Voltas") || strings.Contains(out, "Bravia") {
		t.Errorf("list -k AC should list the seeded ACs only:\n%s", out)
	}

	out = mustRun(t, &dashboardCmd{}, "-low", "3")
	if !strings.Contains(out, "## Low Stock (≤ 3)") || !strings.Contains(out, "FTKM Inverter Split") {
		t.Errorf("dashboard should list the seeded low stock:\n%s", out)
	}

	out = mustRun(t, &shareCmd{}, "-id", "seed-1")
	if !strings.HasPrefix(out, "*ElectroStock Item Check* ⚡") {
		t.Errorf("share printed %q", out)
	}

	out = mustRun(t, &suggestCmd{}, "-c", "Luminous", "-k", "Battery")
	if strings.TrimSpace(out) != "Red Charge RC 18000" {
		t.Errorf("suggest printed %q", out)
	}

	out = mustRun(t, &specsCmd{}, "-k", "washing machine")
	if !strings.Contains(out, "loadType") {
		t.Errorf("specs printed %q", out)
	}

	out = mustRun(t, &topicCmd{})
	if !strings.Contains(out, "identity") {
		t.Errorf("topic printed %q", out)
	}

	out = mustRun(t, &describeCmd{}, "-n", "Bravia", "-k", "TV")
	if strings.TrimSpace(out) != stock.UnavailableDescribe {
		t.Errorf("describe without key printed %q", out)
	}

	out = mustRun(t, &insightsCmd{})
	if strings.TrimSpace(out) != stock.UnavailableInsights {
		t.Errorf("insights without key printed %q", out)
	}
}

func TestExport(t *testing.T) {
	setup(t)
	file := filepath.Join(t.TempDir(), "inventory.xlsx")
	out := mustRun(t, &exportCmd{}, "-o", file)
	if !strings.Contains(out, "Exported 10 items and 0 transactions") {
		t.Errorf("export printed %q", out)
	}
	info, err := os.Stat(file)
	if err != nil || info.Size() == 0 {
		t.Errorf("export did not write %s: %v", file, err)
	}
}

func TestSpecsFlag(t *testing.T) {
	var s specsFlag
	for _, v := range []string{`screenSize=43"`, " type = Fully-Automatic ", "empty="} {
		if err := s.Set(v); err != nil {
			t.Fatalf("Set(%q) failed: %v", v, err)
		}
	}
	want := specsFlag{"screenSize": `43"`, "type": "Fully-Automatic", "empty": ""}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("specs mismatch (-want +got):\n%s", diff)
	}
	for _, v := range []string{"screenSize", "=43"} {
		if err := s.Set(v); err == nil {
			t.Errorf("Set(%q) succeeded, want an error", v)
		}
	}
}

func TestSettings(t *testing.T) {
	t.Setenv("STK_STORE", "")
	if got := setting("", "STK_STORE", ".stock"); got != ".stock" {
		t.Errorf("default setting = %q", got)
	}
	t.Setenv("STK_STORE", "/srv/shop")
	if got := setting("", "STK_STORE", ".stock"); got != "/srv/shop" {
		t.Errorf("env setting = %q", got)
	}
	if got := setting("here", "STK_STORE", ".stock"); got != "here" {
		t.Errorf("flag setting = %q", got)
	}

	t.Setenv("STK_LOW_STOCK", "2")
	if got := lowStock(); got != 2 {
		t.Errorf("lowStock() = %d, want 2", got)
	}
	t.Setenv("STK_LOW_STOCK", "many")
	if got := lowStock(); got != stock.DefaultLowStock {
		t.Errorf("lowStock() with an invalid value = %d, want the default", got)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("STK_TEST_DOTENV=loaded\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("STK_TEST_DOTENV", "")
	os.Unsetenv("STK_TEST_DOTENV")
	LoadEnv()
	if got := os.Getenv("STK_TEST_DOTENV"); got != "loaded" {
		t.Errorf("STK_TEST_DOTENV = %q, want the .env value", got)
	}
}

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("stk", flag.ContinueOnError), "stk")
	commander.Output, commander.Error = io.Discard, io.Discard
	Register(commander)
	root := completionCommand(commander)

	for _, name := range []string{"add", "sell", "receive", "list", "topic", "export"} {
		if root.Sub[name] == nil {
			t.Errorf("no completion for %q", name)
		}
	}
	add := root.Sub["add"]
	if got := add.Flags["k"].Predict(""); !cmp.Equal(got, names(stock.Categories())) {
		t.Errorf("add -k predicts %q", got)
	}
	if got := add.Flags["gen"].Predict(""); len(got) != 0 {
		t.Errorf("add -gen predicts %q, want nothing", got)
	}
	if got := predictSpecs(""); !cmp.Equal(got[:2], []string{`screenSize=32"`, `screenSize=43"`}) {
		t.Errorf("predictSpecs() starts with %q", got[:2])
	}
}
