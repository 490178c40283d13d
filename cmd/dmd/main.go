package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"
)

// Only the block and item tables are needed for the catalog overlay.
var catalogFiles = []string{"blocks.json", "items.json"}

func main() {
	var (
		base     = flag.String("base", "https://raw.githubusercontent.com/PrismarineJS/minecraft-data/master", "base url")
		platform = flag.String("platform", "pc", "platform of the data set")
		ver      = flag.String("version", "1.8", "version of the data set")
		out      = flag.String("o", "./catalog", "output dir path")
	)
	flag.Parse()

	if *out == "" {
		log.Fatal("output dir path required")
	}
	if *platform == "" {
		log.Fatal("platform required")
	}
	if *ver == "" {
		log.Fatal("version required")
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	// https://github.com/PrismarineJS/minecraft-data/tree/master/data/pc/1.8
	for _, name := range catalogFiles {
		url := fmt.Sprintf("%s/data/%s/%s/%s", *base, *platform, *ver, name)
		dst := filepath.Join(*out, name)

		log.Default().Printf("downloading %s", url)
		if err := get.GetFile(dst, url); err != nil {
			log.Fatalf("download %s: %v", name, err)
		}
	}

	log.Default().Printf("catalog written to %s", *out)
}
