// Command fastresume rewrites qBittorrent save paths across a directory of
// `*.fastresume` files, for example after a torrent library moved between
// disks. Patched copies are written to a separate directory so the originals
// stay intact.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/rctlmk/yabel/config"
	"github.com/rctlmk/yabel/resume"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		source string
		target string
		from   string
		to     string
		list   bool
		debug  bool
		dat    string
	)

	flagSet := pflag.NewFlagSet("fastresume", pflag.ContinueOnError)
	flagSet.StringVar(&source, "source", "resumes", "directory holding *.fastresume files")
	flagSet.StringVar(&target, "target", "patched-resumes", "directory the patched files are written to")
	flagSet.StringVar(&from, "old", "", "path fragment to replace")
	flagSet.StringVar(&to, "new", "", "replacement path fragment")
	flagSet.BoolVar(&list, "list", false, "only list save paths in the source directory")
	flagSet.StringVar(&dat, "resume-dat", "", "print the top-level keys of a resume.dat file and exit")
	flagSet.BoolVar(&debug, "debug", false, "enable debug logging")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if dat != "" {
		keys, err := resume.Keys(dat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return 0
	}

	c := config.NewConfig(config.WithDebug(debug), config.WithLoggingPrefix("fastresume"))
	p := resume.NewPatcher(c)

	if list {
		return printSavePaths(p, source)
	}

	if from == "" {
		fmt.Fprintln(os.Stderr, "error: --old is required")
		return 2
	}
	if err := p.Rewrite(source, target, []byte(from), []byte(to)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return printSavePaths(p, target)
}

func printSavePaths(p *resume.Patcher, dir string) int {
	paths, err := p.SavePaths(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %s\n", name, paths[name])
	}
	return 0
}
