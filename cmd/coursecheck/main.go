// Command coursecheck validates course records against the course form rules.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/formrules/pkg/config"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "coursecheck: %v\n", err)
		os.Exit(exitUsage)
	}
	os.Exit(run(context.Background(), cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
