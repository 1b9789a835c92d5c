// lvtraverse walks, validates and generates graph documents.
//
// Usage:
//
//	lvtraverse walk -f graph.yaml [--start A] [--order dfs|bfs|priority|dedup] [--limit N] [--output text|json]
//	lvtraverse validate -f graph.hcl [--strict]
//	lvtraverse generate --shape grid --n 3 [--format yaml|json|toml|hcl]
//
// Every flag can also come from a config file (--config) or from an
// LVTRAVERSE_<FLAG> environment variable, e.g. LVTRAVERSE_ORDER=bfs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
