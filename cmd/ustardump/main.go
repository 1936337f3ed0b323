// Command ustardump lists the entries of a ustar/old-GNU archive,
// printing name, size, and type flag for each record.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/scigolib/ustar"
)

func typeName(t byte) string {
	switch t {
	case ustar.TypeReg, 0:
		return "file"
	case ustar.TypeLink:
		return "hardlink"
	case ustar.TypeSymlink:
		return "symlink"
	case ustar.TypeChar:
		return "chardev"
	case ustar.TypeBlock:
		return "blockdev"
	case ustar.TypeDir:
		return "dir"
	case ustar.TypeFifo:
		return "fifo"
	case ustar.TypeCont:
		return "contiguous"
	default:
		return fmt.Sprintf("unknown(%q)", t)
	}
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: ustardump <archive.tar>")
		flag.PrintDefaults()
		return
	}

	r, err := ustar.OpenFile(args[0])
	if err != nil {
		log.Fatalf("failed to open archive: %v", err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("failed to close archive: %v", err)
		}
	}()

	fmt.Printf("%-10s %7s %8s  %s\n", "type", "mode", "size", "name")
	for {
		offset := r.Offset()
		h, err := r.ReadHeader()
		if err != nil {
			if ustar.KindOf(err) == ustar.NullRecord {
				break
			}
			log.Fatalf("failed to read header: %v", err)
		}
		fmt.Printf("%-10s %07o %8d  %s (offset %d)\n", typeName(h.Typeflag), h.Mode, h.Size, h.Name, offset)
		if err := r.Next(); err != nil {
			log.Fatalf("failed to advance: %v", err)
		}
	}
}
