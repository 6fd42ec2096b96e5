package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/CalebQ42/iochunks"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
)

func printRegion(host iochunks.Host, r iochunks.Region) {
	typ := "-"
	c, err := r.Open(host)
	if err == nil {
		mime, err := mimetype.DetectReader(c)
		if err == nil {
			typ = mime.String()
		}
		c.Close()
	}
	fmt.Printf("%-24s %12d %10s %-6s %s\n",
		r.Name,
		r.Start,
		humanize.IBytes(uint64(r.Size)),
		r.Compression,
		typ)
}

func main() {
	verbose := flag.Bool("v", false, "Verbose")
	list := flag.Bool("l", false, "List")
	long := flag.Bool("ll", false, "List with offsets, sizes and content types")
	raw := flag.Bool("d", false, "Don't decompress regions")
	only := flag.String("only", "", "Only use regions whose name matches this glob")
	routines := flag.Int("j", 0, "Number of regions to extract at once")
	flag.Parse()
	if len(flag.Args()) < 2 {
		fmt.Println("Please provide a file name, a manifest, and an extraction path")
		os.Exit(0)
	}
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	man, err := iochunks.LoadManifest(flag.Arg(1))
	if err != nil {
		logrus.Fatal(err)
	}
	regions := man.Filter(*only)
	if *list || *long {
		host, err := iochunks.OpenFile(flag.Arg(0))
		if err != nil {
			logrus.Fatal(err)
		}
		defer host.Close()
		for _, r := range regions {
			if *long {
				printRegion(host, r)
			} else {
				fmt.Println(r.Name)
			}
		}
		return
	}
	if len(flag.Args()) < 3 {
		fmt.Println("Please provide an extraction path")
		os.Exit(0)
	}
	op := iochunks.DefaultOptions()
	op.Verbose = *verbose
	op.Decompress = !*raw
	if *routines > 0 {
		op.Routines = *routines
	}
	logrus.WithFields(logrus.Fields{
		"file":    flag.Arg(0),
		"regions": len(regions),
		"output":  flag.Arg(2),
	}).Debug("Extracting")
	n := time.Now()
	err = iochunks.Extract(flag.Arg(0), regions, flag.Arg(2), op)
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Println("Took:", time.Since(n))
}
