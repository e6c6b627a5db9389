// Command dynbuf is a small driver for the dynbuf package: it reads files
// whole or line by line and walks a vector through its growth policy.
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}
