//go:build !tinygo

// Command mkflash creates or inspects a host flash image for the watch face.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"zuluface/hal"
	"zuluface/persist"
	"zuluface/timesync"
)

const defaultFlashPath = "zuluface.flash"

func main() {
	var (
		outPath   string
		dumpPath  string
		flashSize uint
		offset    int64
		key       uint
	)
	flag.StringVar(&outPath, "out", "", "Create a fresh flash image at this path.")
	flag.StringVar(&dumpPath, "dump", "", "List the live records of an existing image.")
	flag.UintVar(&flashSize, "size", hal.DefaultFlashSizeBytes, "Flash image size (bytes).")
	flag.Int64Var(&offset, "offset", 0, "Clock offset to persist, in seconds (UTC = local + offset).")
	flag.UintVar(&key, "key", uint(timesync.OffsetKey), "Persist key for the offset.")
	flag.Parse()

	var err error
	switch {
	case dumpPath != "":
		err = dump(os.Stdout, dumpPath)
	case outPath != "":
		err = create(outPath, uint32(flashSize), uint32(key), timesync.Offset(offset))
	default:
		fmt.Fprintf(os.Stderr, "error: one of -out or -dump is required (e.g. -out %s)\n", defaultFlashPath)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func create(path string, size, key uint32, offset timesync.Offset) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %q: %w", path, err)
	}
	ff, err := hal.OpenFlashFile(path, size)
	if err != nil {
		return err
	}
	defer func() { _ = ff.Close() }()

	st, err := persist.OpenFlash(ff, persist.LastBlock(ff))
	if err != nil {
		return err
	}
	if err := timesync.NewOffsetStore(st, key).Save(offset); err != nil {
		return err
	}
	return ff.Close()
}

func dump(w io.Writer, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("stat %q: %w", path, err)
	}
	ff, err := hal.OpenFlashFile(path, 0)
	if err != nil {
		return err
	}
	defer func() { _ = ff.Close() }()

	base := persist.LastBlock(ff)
	st, err := persist.OpenFlash(ff, base)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "image %s: %d bytes, store at 0x%x, %d live keys\n", path, ff.SizeBytes(), base, st.Len())
	for _, k := range st.Keys() {
		v, _ := st.ReadInt(k)
		if k == timesync.OffsetKey {
			fmt.Fprintf(w, "key %d = %d (clock offset %s)\n", k, v, timesync.Offset(v).Duration())
			continue
		}
		fmt.Fprintf(w, "key %d = %d\n", k, v)
	}
	return nil
}
