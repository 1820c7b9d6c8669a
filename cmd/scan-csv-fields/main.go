// Command scan-csv-fields prints one field per line, tagging each with its
// kind and whether it ends a record, mirroring a csv_count_fields-style
// walkthrough of a file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-scantok/scantok/csv"
)

func main() {
	flagSep := flag.String("sep", ",", "field separator (single byte)")
	flagTrim := flag.Bool("trim", false, "trim leading/trailing spaces from unquoted fields")
	flagLazy := flag.Bool("lazy", false, "accept unescaped quotes as literal content")
	flagComment := flag.String("comment", "", "comment byte (single byte), empty to disable")
	flag.Parse()

	if flag.NArg() != 1 || len(*flagSep) != 1 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := csv.DefaultConfig()
	cfg.Sep = (*flagSep)[0]
	cfg.Trim = *flagTrim
	cfg.Lazy = *flagLazy
	if len(*flagComment) == 1 {
		cfg.Comment = (*flagComment)[0]
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(2)
	}
	defer file.Close()

	r := csv.NewReader(file, cfg)
	fields, records := 0, 0
	for {
		field, eor, err := r.ReadField()
		if err != nil {
			if err == io.EOF {
				break
			}
			fmt.Printf("%s at %d:%d\n", err, r.Line(), r.Column())
			os.Exit(3)
		}
		fields++
		if eor {
			records++
		}
		fmt.Printf("%-8s eor=%-5t %q\n", r.Kind(), eor, field)
	}
	fmt.Printf("Fields: %d, Records: %d\n", fields, records)
}
