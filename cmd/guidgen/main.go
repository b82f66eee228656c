// guidgen generates random or text-seeded GUIDs.
package main

import (
	"os"
	"strconv"

	"github.com/guidgen/guidgen/pkg/cli"
	"github.com/guidgen/guidgen/pkg/guid"
)

// Build-time variables set via ldflags.
var (
	Name       = "guidgen"
	Version    = "1.0.0"
	SeedOffset = "" // hex or decimal override of the default seed offset
)

func main() {
	info := cli.BuildInfo{
		Name:       Name,
		Version:    Version,
		SeedOffset: seedOffset(),
	}
	os.Exit(cli.Run(info, os.Args[1:], os.Stdout, os.Stderr))
}

// seedOffset resolves the ldflags override, keeping the built-in default
// when unset or unparsable.
func seedOffset() uint32 {
	if SeedOffset == "" {
		return guid.DefaultSeedOffset
	}
	v, err := strconv.ParseUint(SeedOffset, 0, 32)
	if err != nil {
		return guid.DefaultSeedOffset
	}
	return uint32(v)
}
