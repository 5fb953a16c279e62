// Command tincture applies color math from the command line.
//
// Usage:
//
//	tincture run recipe.toml
//	tincture blend soft_light "#336699" cornflowerblue
//	tincture info "#ff8800" rebeccapurple
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
