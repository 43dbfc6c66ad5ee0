package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/jtruncate"
	"github.com/lestrrat-go/jtruncate/encoding"
	"github.com/lestrrat-go/jtruncate/internal/cliutil"
	"golang.org/x/text/transform"
)

type cmdopts struct {
	Length   int    `short:"l" long:"length" default:"-1"`
	Encoding string `long:"encoding"`
	Utf8     bool   `long:"utf8"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("jtruncate: version %s\n", jtruncate.Version)
}

func showUsage() {
	fmt.Printf(`Usage : jtruncate -l length [options] files ...
	Truncate the files (or stdin) to at most the given number of bytes
	without splitting a multi-byte Japanese character
	--length=n   : maximum byte length of the output (required)
	--encoding=e : skip detection and assume this encoding (euc|sjis|jis)
	--utf8       : transcode the truncated output to UTF-8 for display
	--version    : display the version of the jtruncate library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	if opts.Length < 0 {
		showUsage()
		return 1
	}

	tr := jtruncate.New()
	detect := jtruncate.DetectEncoding
	if opts.Encoding != "" {
		enc, ok := jtruncate.LookupEncoding(opts.Encoding)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown encoding %q\n", opts.Encoding)
			return 1
		}
		detect = func([]byte) jtruncate.Encoding { return enc }
		tr.SetDetector(jtruncate.DetectorFunc(detect))
	}

	inputCh := make(chan io.Reader)
	// buffered so the producer can report a failed Open and exit while
	// _main is still draining inputCh
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTty(os.Stdin.Fd()):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	ctx := context.Background()
	for in := range inputCh {
		buf, err := io.ReadAll(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		out, err := tr.Truncate(ctx, buf, opts.Length)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		if opts.Utf8 {
			out, err = toUtf8(out, detect(buf))
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
		}
		os.Stdout.Write(out)
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s", err)
		return 1
	default:
	}

	return 0
}

func toUtf8(b []byte, enc jtruncate.Encoding) ([]byte, error) {
	e := encoding.Load(enc.String())
	if e == nil {
		// ascii/unknown passes through untouched
		return b, nil
	}

	out, _, err := transform.Bytes(e.NewDecoder(), b)
	if err != nil {
		return nil, err
	}
	return out, nil
}
