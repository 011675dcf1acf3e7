// Command petsync downloads the latest pet catalog CSV from the
// distributor API and saves it to a local file.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/emvolvovsky-bot/PetMatch/internal/cli"
)

// Build info, stamped via -ldflags.
var (
	version = "dev"
	commit  = "none"
	built   = "unknown"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(version, commit, built); err != nil {
		os.Exit(1)
	}
}
