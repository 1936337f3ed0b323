// Command ustarcreate packs a flat list of files into a ustar/old-GNU
// archive. It does not recurse into directories; each path given on the
// command line becomes one regular-file record.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scigolib/ustar"
)

func main() {
	out := flag.String("o", "", "output archive path (required)")
	flag.Parse()
	args := flag.Args()

	if *out == "" || len(args) < 1 {
		fmt.Println("Usage: ustarcreate -o <archive.tar> <file> [file...]")
		flag.PrintDefaults()
		return
	}

	w, err := ustar.CreateFile(*out)
	if err != nil {
		log.Fatalf("failed to create archive: %v", err)
	}

	for _, path := range args {
		if err := addFile(w, path); err != nil {
			log.Fatalf("failed to add %s: %v", path, err)
		}
	}

	if err := w.Finalize(); err != nil {
		log.Fatalf("failed to finalize archive: %v", err)
	}
	if err := w.Close(); err != nil {
		log.Fatalf("failed to close archive: %v", err)
	}
}

func addFile(w *ustar.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := w.WriteFileHeader(path, int64(len(data))); err != nil {
		return err
	}
	return w.WriteData(data)
}
