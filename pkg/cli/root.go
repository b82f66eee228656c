package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guidgen/guidgen/pkg/guid"
)

// BuildInfo carries the values baked into the binary at build time.
type BuildInfo struct {
	Name       string
	Version    string
	SeedOffset uint32
}

// Run executes the CLI for the given arguments (os.Args[1:]) and returns the
// process exit code. Output goes to stdout, diagnostics to stderr.
func Run(info BuildInfo, args []string, stdout, stderr io.Writer) int {
	arg := strings.Join(args, " ")
	count := 1

	switch {
	case arg == "":
		// Plain invocation: one random line.

	case strings.HasPrefix(arg, "-n"):
		// Covers "-n 10", "-n10" and "-n=10"; text after the number
		// is ignored.
		n, ok := scanCount(arg)
		if !ok {
			fmt.Fprintln(stderr, "Invalid option -n, missing number of output lines.")
			return 1
		}
		count = n
		arg = "" // -n always implies a random seed

	case arg == "--version" || arg == "-v":
		fmt.Fprintf(stdout, "%s version %s.\n", info.Name, info.Version)
		return 0

	case arg == "--help" || arg == "-h" || arg == "/?":
		printUsage(stdout, info)
		return 0

	case arg[0] == '-':
		fmt.Fprintf(stderr, "Invalid option '%s', try --help\n", arg)
		return 1
	}

	gen := guid.NewGenerator(info.SeedOffset)
	seed := []byte(arg)
	for ; count > 0; count-- {
		fmt.Fprintln(stdout, gen.Generate(seed))
	}
	return 0
}

// scanCount extracts the first run of decimal digits from arg.
func scanCount(arg string) (int, bool) {
	start := strings.IndexAny(arg, "0123456789")
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(arg) && arg[end] >= '0' && arg[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(arg[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func printUsage(w io.Writer, info BuildInfo) {
	fmt.Fprintf(w, "Usage: %s [-h|--help|-n <lines>|<seed-string>]\n\n", info.Name)
	fmt.Fprint(w, "  <seed-string>: (1st arg no dash `-`): Text bytes used as seed.\n")
	fmt.Fprint(w, "  -n <lines>   : Generate `lines` random output lines.\n")
	fmt.Fprint(w, "  -h, --help   : Show this help.\n")
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, "The program generates random or text seeded GUIDs, where the output\n")
	fmt.Fprint(w, "format is \"XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX\". For argument defined\n")
	fmt.Fprint(w, "seed strings, it is recommended to use at least 16 characters.\n")
	fmt.Fprint(w, "The integrated seed initialization value compiled with this\n")
	fmt.Fprintf(w, "binary is 0x%x. (Binaries with different seed init\n", info.SeedOffset)
	fmt.Fprint(w, "will produce different outputs for the same given seed text).\n")
	fmt.Fprint(w, "\n")
}
