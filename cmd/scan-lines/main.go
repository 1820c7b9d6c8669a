// Command scan-lines prints each line of a file with its 1-based line
// number, the way a minimal cat -n would, exercising scantok.Liner.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	scantok "github.com/go-scantok/scantok"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(2)
	}
	defer file.Close()

	scanner := scantok.New(file, &scantok.Liner{})
	lines := 0
	for {
		tok, err := scanner.Scan()
		if err != nil {
			if err == io.EOF {
				break
			}
			fmt.Printf("%s\n", err)
			os.Exit(3)
		}
		lines++
		fmt.Printf("%6d\t%s\n", lines, tok.Bytes)
	}
	fmt.Printf("Lines: %d\n", lines)
}
