package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JunaidMachiyara/usmanglobal-books/config"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/workflow"
)

func main() {
	snapshotFile := flag.String("file", "", "Required: snapshot file to operate on")
	importFile := flag.String("import", "", "Required: CSV or XLSX price file")
	flag.Parse()

	if *snapshotFile == "" || *importFile == "" {
		fmt.Fprintln(os.Stderr, "--file and --import are required")
		os.Exit(1)
	}

	in, err := os.Open(*importFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open import file: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	var rows []workflow.PriceRow
	switch strings.ToLower(filepath.Ext(*importFile)) {
	case ".xlsx":
		rows, err = workflow.ParsePriceXLSX(in)
	default:
		rows, err = workflow.ParsePriceCSV(in)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse import file: %v\n", err)
		os.Exit(1)
	}

	logger := config.GetLogger()
	st := store.NewStore()
	if err := st.LoadFromFile(*snapshotFile); err != nil {
		fmt.Fprintf(os.Stderr, "load snapshot: %v\n", err)
		os.Exit(1)
	}

	updated, warnings, err := workflow.BulkUpdatePrices(st, logger, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "update: %v\n", err)
		os.Exit(1)
	}
	if err := st.SaveToFile(*snapshotFile); err != nil {
		fmt.Fprintf(os.Stderr, "save snapshot: %v\n", err)
		os.Exit(1)
	}

	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning: "+w)
	}
	fmt.Printf("updated %d items from %s\n", updated, *importFile)
}
