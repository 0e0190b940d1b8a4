package main

import (
	"flag"
	"log"
	"time"

	"github.com/arbordb/coldecode/compression"
	"github.com/arbordb/coldecode/dispatch"
	"github.com/arbordb/coldecode/io"
	"github.com/arbordb/coldecode/schema"
	"github.com/fatih/color"
)

func testCycles(n int, label string, testSize int, cb func()) {

	before := time.Now()

	for i := 0; i < n; i++ {
		cb()
	}

	after := time.Since(before)

	perCycle := after.Nanoseconds() / int64(testSize)
	log.Printf(" %s per cycle : %d/ns", label, perCycle)
}

func loadBuffer(path string) []byte {
	reader := io.NewFileReader(path)
	if err := reader.Open(); err != nil {
		panic(err)
	}
	defer reader.Close()

	buf, err := reader.ReadAll()
	if err != nil {
		panic(err)
	}
	return buf
}

func dump(buf []byte, opts ...dispatch.Option) {
	if compression.LooksLikeLZ4Frame(buf) && len(opts) == 0 {
		color.Yellow("buffer starts with the lz4 frame magic number; pass -lz4 if this is an envelope-wrapped buffer")
	}

	summary, err := dispatch.Describe(buf, opts...)
	if err != nil {
		color.Red("describe failed: %s", err.Error())
		return
	}
	log.Printf(" << %s / %s, %d nulls >> ", summary.ColumnType, summary.CompressionType, summary.NullCount)

	it, err := dispatch.NewIterator(buf, opts...)
	if err != nil {
		color.Red("new_iterator failed: %s", err.Error())
		return
	}

	row := 0
	for it.HasNext() {
		if err := it.Next(); err != nil {
			color.Red("row %d: %s", row, err.Error())
			color.Red("%s", it.DumpContext(32))
			return
		}
		cell, isNull := it.Current()
		if isNull {
			color.Red("%5d: null", row)
		} else {
			color.Green("%5d: %v", row, schema.Project(cell))
		}
		row++
	}
}

func main() {
	path := flag.String("buf", "", "path to a column buffer to decode")
	bench := flag.Bool("bench", false, "time iteration instead of printing rows")
	lz4 := flag.Bool("lz4", false, "buf is wrapped in a single lz4 frame envelope")
	flag.Parse()

	if *path == "" {
		log.Fatal("usage: coldump -buf <path>")
	}

	buf := loadBuffer(*path)

	var opts []dispatch.Option
	if *lz4 {
		opts = append(opts, dispatch.WithEnvelope(dispatch.EnvelopeLZ4))
	}

	if !*bench {
		dump(buf, opts...)
		return
	}

	testCycles(1000, "decode", 1000, func() {
		it, err := dispatch.NewIterator(buf, opts...)
		if err != nil {
			panic(err)
		}
		for it.HasNext() {
			if err := it.Next(); err != nil {
				panic(err)
			}
			it.Current()
		}
	})
}
