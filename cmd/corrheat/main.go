// SPDX-License-Identifier: MIT

// Command corrheat prints the correlation heatmap of a delimited numeric file.
//
//	corrheat data.csv
//	corrheat -a pearson -c height,weight,age --legend data.csv
//	corrheat --format yaml -d tab --no-header data.tsv
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "corrheat: %v\n", err)
		os.Exit(1)
	}
}
