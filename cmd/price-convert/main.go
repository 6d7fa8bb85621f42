package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JunaidMachiyara/usmanglobal-books/config"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/workflow"
)

func main() {
	file := flag.String("file", "", "Required: snapshot file to operate on")
	direction := flag.String("direction", "", "Required: unit-to-kg or kg-to-package")
	confirm := flag.Bool("confirm", false, "Required: acknowledge that running twice compounds the conversion")
	flag.Parse()

	if *file == "" || *direction == "" {
		fmt.Fprintln(os.Stderr, "--file and --direction are required")
		os.Exit(1)
	}
	if !*confirm {
		fmt.Fprintln(os.Stderr, "refusing to run without --confirm: applying the same conversion twice compounds prices")
		os.Exit(1)
	}

	dir := workflow.PriceDirection(*direction)
	if dir != workflow.PriceUnitToKg && dir != workflow.PriceKgToPackage {
		fmt.Fprintf(os.Stderr, "unknown direction %q\n", *direction)
		os.Exit(1)
	}

	logger := config.GetLogger()
	st := store.NewStore()
	if err := st.LoadFromFile(*file); err != nil {
		fmt.Fprintf(os.Stderr, "load snapshot: %v\n", err)
		os.Exit(1)
	}

	converted, err := workflow.ConvertItemPrices(st, logger, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "convert: %v\n", err)
		os.Exit(1)
	}
	if err := st.SaveToFile(*file); err != nil {
		fmt.Fprintf(os.Stderr, "save snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("converted %d items (%s)\n", len(converted), dir)
}
