// Command nk2info prints summary information about an Outlook Nickfile
// (NK2). Its base report (modification time, number of cached items)
// mirrors libnk2's nk2tools info_handle_file_fprint; the optional -items
// per-item walk of entry_type/value_type/display-name has no
// original_source equivalent and is this tool's own addition.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nk2go/nk2"
	"github.com/nk2go/nk2/internal/mapitype"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("nk2info", flag.ContinueOnError)
	items := fs.Bool("items", false, "walk and print every item's entries")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: nk2info [-items] [-v] file.nk2")
		return 1
	}

	var opts []nk2.Option
	if *verbose {
		opts = append(opts, nk2.WithLogger(nk2.StdLogger{}))
	}

	f, err := nk2.Open(fs.Arg(0), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nk2info: %v\n", err)
		return 1
	}
	defer f.Close()

	fmt.Printf("Nickfile information:\n\n")
	if ft, ok := f.ModificationTime(); ok {
		fmt.Printf("\tModification time\t: %s\n", mapitype.TimeFromFILETIME(ft).Format(time.RFC3339))
	} else {
		fmt.Printf("\tModification time\t: not set\n")
	}
	fmt.Printf("\tNumber of items\t\t: %d\n", f.NumberOfItems())

	if !*items {
		return 0
	}

	fmt.Println()
	for i := 0; i < f.NumberOfItems(); i++ {
		item, err := f.Item(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nk2info: %v\n", err)
			return 1
		}
		name, ok := item.DisplayName()
		if !ok {
			name = "(no display name)"
		}
		fmt.Printf("Item %d: %d entries, %s\n", i+1, item.NumberOfEntries(), name)
		for j := 0; j < item.NumberOfEntries(); j++ {
			entry, err := item.Entry(j)
			if err != nil {
				fmt.Fprintf(os.Stderr, "nk2info: %v\n", err)
				return 1
			}
			fmt.Printf("\tentry_type: %#06x\tvalue_type: %#06x\tsize: %d\n",
				entry.EntryType(), entry.ValueType(), len(entry.Data()))
		}
	}
	return 0
}
