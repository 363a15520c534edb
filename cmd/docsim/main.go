// Command docsim detects near-duplicate documents in a collection.
package main

import "github.com/subashshanmugmam/Document-Similarity-Checker/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
