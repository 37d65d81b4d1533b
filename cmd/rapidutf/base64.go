package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mnightingale/rapidutf"
	"github.com/mnightingale/rapidutf/stream"
)

type base64Options struct {
	decode   bool
	url      bool
	noPad    bool
	garbage  bool
	strict   bool
	wrap     int
	checksum bool
}

func (o *base64Options) options() rapidutf.Base64Options {
	var opts rapidutf.Base64Options
	switch {
	case o.url && o.noPad:
		opts = rapidutf.Base64URL
	case o.url:
		opts = rapidutf.Base64URLWithPadding
	case o.noPad:
		opts = rapidutf.Base64DefaultNoPadding
	default:
		opts = rapidutf.Base64Default
	}
	if o.decode && o.garbage {
		if o.url {
			return rapidutf.Base64URLAcceptGarbage
		}
		return rapidutf.Base64DefaultAcceptGarbage
	}
	return opts
}

func newBase64Command() *cobra.Command {
	var opts base64Options
	cmd := &cobra.Command{
		Use:   "base64 [file]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Encode or decode base64",
		Long:  "Encode or decode base64 (RFC 4648). Both directions stream the input.",
		Example: `rapidutf base64 --wrap 76 image.png
rapidutf base64 -d --url token.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.garbage && opts.strict {
				return errors.New("--ignore-garbage and --strict are mutually exclusive")
			}
			r, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer r.Close()
			if opts.decode {
				return base64Decode(cmd, r, name, &opts)
			}
			return base64Encode(cmd, r, &opts)
		},
	}
	fl := cmd.Flags()
	fl.BoolVarP(&opts.decode, "decode", "d", false, "decode instead of encode")
	fl.BoolVar(&opts.url, "url", false, "use the URL-safe alphabet")
	fl.BoolVar(&opts.noPad, "no-padding", false, "omit padding when encoding")
	fl.BoolVarP(&opts.garbage, "ignore-garbage", "i", false, "when decoding, skip characters outside the alphabet")
	fl.BoolVar(&opts.strict, "strict", false, "when decoding, require padding and zero trailing bits")
	fl.IntVarP(&opts.wrap, "wrap", "w", 0, "wrap encoded lines after this many characters (0 disables)")
	fl.BoolVar(&opts.checksum, "crc", false, "print the CRC-32 of the input to stderr after encoding")
	return cmd
}

func base64Encode(cmd *cobra.Command, r io.Reader, opts *base64Options) error {
	out := cmd.OutOrStdout()
	w := stream.NewBase64LineWriter(out, opts.options(), opts.wrap)
	if _, err := io.Copy(w, r); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if opts.wrap > 0 && w.Processed() > 0 {
		if _, err := io.WriteString(out, "\r\n"); err != nil {
			return err
		}
	}
	if opts.checksum {
		fmt.Fprintf(cmd.ErrOrStderr(), "crc32 %08x bytes %d\n", w.Sum32(), w.Processed())
	}
	return nil
}

func base64Decode(cmd *cobra.Command, r io.Reader, name string, opts *base64Options) error {
	lc := rapidutf.Loose
	if opts.strict {
		lc = rapidutf.Strict
	}
	dec := stream.NewBase64ReaderMode(r, opts.options(), lc)
	if _, err := io.Copy(cmd.OutOrStdout(), dec); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
