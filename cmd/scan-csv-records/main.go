// Command scan-csv-records counts records by consulting EndOfRecord after
// each field, the way csv_count_records walked a field splitter in the
// original examples.
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
	flag.Parse()

	if flag.NArg() != 1 || len(*flagSep) != 1 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := csv.DefaultConfig()
	cfg.Sep = (*flagSep)[0]

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(2)
	}
	defer file.Close()

	r := csv.NewReader(file, cfg)
	records := 0
	fieldsInRecord := 0
	for {
		_, eor, err := r.ReadField()
		if err != nil {
			if err == io.EOF {
				break
			}
			fmt.Printf("%s at %d:%d\n", err, r.Line(), r.Column())
			os.Exit(3)
		}
		fieldsInRecord++
		if eor {
			records++
			fmt.Printf("record %d: %d field(s)\n", records, fieldsInRecord)
			fieldsInRecord = 0
		}
	}
	fmt.Printf("Records: %d\n", records)
}
