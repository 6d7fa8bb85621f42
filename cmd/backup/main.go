package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JunaidMachiyara/usmanglobal-books/store"
)

func main() {
	snapshotFile := flag.String("file", "", "Required: live snapshot file")
	dump := flag.String("dump", "", "Write a backup copy to this path")
	restore := flag.String("restore", "", "Overwrite the live snapshot from this backup")
	force := flag.Bool("force", false, "Required with --restore: restore is a full overwrite and cannot be undone")
	flag.Parse()

	if *snapshotFile == "" {
		fmt.Fprintln(os.Stderr, "--file is required")
		os.Exit(1)
	}

	switch {
	case *dump != "":
		st := store.NewStore()
		if err := st.LoadFromFile(*snapshotFile); err != nil {
			fmt.Fprintf(os.Stderr, "load snapshot: %v\n", err)
			os.Exit(1)
		}
		if err := st.SaveToFile(*dump); err != nil {
			fmt.Fprintf(os.Stderr, "write backup: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("backup written to %s\n", *dump)

	case *restore != "":
		if !*force {
			fmt.Fprintln(os.Stderr, "refusing to restore without --force: restore overwrites all data")
			os.Exit(1)
		}
		st := store.NewStore()
		if err := st.LoadFromFile(*restore); err != nil {
			fmt.Fprintf(os.Stderr, "load backup: %v\n", err)
			os.Exit(1)
		}
		if err := st.SaveToFile(*snapshotFile); err != nil {
			fmt.Fprintf(os.Stderr, "write snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("restored %s from %s\n", *snapshotFile, *restore)

	default:
		fmt.Fprintln(os.Stderr, "one of --dump or --restore is required")
		os.Exit(1)
	}
}
