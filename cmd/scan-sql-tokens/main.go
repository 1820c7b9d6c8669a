// Command scan-sql-tokens prints "kind text" for each token in a file, the
// way the sql_tokens example walked a Tokenizer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-scantok/scantok/sql"
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

	tz := sql.NewTokenizer(file)
	tokens := 0
	for {
		tok, err := tz.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			fmt.Printf("%s at %d:%d\n", err, tz.Line(), tz.Column())
			os.Exit(3)
		}
		tokens++
		fmt.Printf("%-16s %q\n", tok.Kind, tok.Text)
	}
	fmt.Printf("Tokens: %d\n", tokens)
}
