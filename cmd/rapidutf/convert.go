package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mnightingale/rapidutf"
)

var encodingFlags = map[string]rapidutf.Encoding{
	"utf8":    rapidutf.UTF8,
	"utf16le": rapidutf.UTF16LE,
	"utf16be": rapidutf.UTF16BE,
	"utf32le": rapidutf.UTF32LE,
	"utf32be": rapidutf.UTF32BE,
	"latin1":  rapidutf.Latin1,
}

func encodingFlagNames() string {
	names := make([]string, 0, len(encodingFlags))
	for n := range encodingFlags {
		names = append(names, n)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func parseEncoding(s string) (rapidutf.Encoding, error) {
	if e, ok := encodingFlags[strings.ToLower(strings.ReplaceAll(s, "-", ""))]; ok {
		return e, nil
	}
	return rapidutf.Unspecified, fmt.Errorf("unknown encoding %q (want one of %s)", s, encodingFlagNames())
}

type convertOptions struct {
	from, to string
	replace  bool
	bom      bool
}

func newConvertCommand() *cobra.Command {
	var opts convertOptions
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Transcode a file between Unicode encodings and Latin-1",
		Long: `Transcode a file between Unicode encodings and Latin-1.

The source encoding defaults to auto, which honours a byte order mark and
otherwise guesses. A leading byte order mark matching the source is dropped.`,
		Example: "rapidutf convert --from utf16le --to utf8 notes.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := convert(data, &opts)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&opts.from, "from", "auto", "source encoding: auto, "+encodingFlagNames())
	fl.StringVar(&opts.to, "to", "utf8", "target encoding: "+encodingFlagNames())
	fl.BoolVar(&opts.replace, "replace", false, "replace unpaired UTF-16 surrogates with U+FFFD instead of failing")
	fl.BoolVar(&opts.bom, "bom", false, "write a byte order mark for the target encoding")
	return cmd
}

func convert(data []byte, opts *convertOptions) ([]byte, error) {
	var from rapidutf.Encoding
	if opts.from == "auto" {
		from = rapidutf.AutodetectEncoding(data)
		if from == rapidutf.Unspecified {
			return nil, errors.New("cannot detect the source encoding")
		}
	} else {
		var err error
		if from, err = parseEncoding(opts.from); err != nil {
			return nil, err
		}
	}
	to, err := parseEncoding(opts.to)
	if err != nil {
		return nil, err
	}

	if bom := appendBOM(nil, from); len(bom) > 0 && bytes.HasPrefix(data, bom) {
		data = data[len(bom):]
	}
	u8, err := decodeToUTF8(data, from, opts.replace)
	if err != nil {
		return nil, err
	}
	var out []byte
	if opts.bom {
		out = appendBOM(out, to)
	}
	return encodeFromUTF8(out, u8, to)
}

func decodeToUTF8(data []byte, from rapidutf.Encoding, replace bool) ([]byte, error) {
	switch from {
	case rapidutf.UTF8:
		if r := rapidutf.ValidateUTF8WithErrors(data); !r.OK() {
			return nil, r.Err()
		}
		return data, nil
	case rapidutf.Latin1:
		return rapidutf.Latin1ToUTF8(data), nil
	case rapidutf.UTF16LE, rapidutf.UTF16BE:
		if len(data)%2 != 0 {
			return nil, fmt.Errorf("%s input has an odd number of bytes", from)
		}
		units := make([]uint16, len(data)/2)
		for i := range units {
			units[i] = binary.NativeEndian.Uint16(data[2*i:])
		}
		if replace {
			return utf16WithReplacement(units, from), nil
		}
		if from == rapidutf.UTF16BE {
			return rapidutf.UTF16BEToUTF8(units)
		}
		return rapidutf.UTF16LEToUTF8(units)
	case rapidutf.UTF32LE, rapidutf.UTF32BE:
		if len(data)%4 != 0 {
			return nil, fmt.Errorf("%s input length is not a multiple of 4", from)
		}
		var order binary.ByteOrder = binary.LittleEndian
		if from == rapidutf.UTF32BE {
			order = binary.BigEndian
		}
		values := make([]uint32, len(data)/4)
		for i := range values {
			values[i] = order.Uint32(data[4*i:])
		}
		return rapidutf.UTF32ToUTF8(values)
	}
	return nil, fmt.Errorf("cannot decode %s", from)
}

func utf16WithReplacement(units []uint16, e rapidutf.Encoding) []byte {
	if e == rapidutf.UTF16BE {
		dst := make([]byte, rapidutf.UTF8LengthFromUTF16BEWithReplacement(units).Count)
		return dst[:rapidutf.ConvertUTF16BEToUTF8WithReplacement(units, dst)]
	}
	dst := make([]byte, rapidutf.UTF8LengthFromUTF16LEWithReplacement(units).Count)
	return dst[:rapidutf.ConvertUTF16LEToUTF8WithReplacement(units, dst)]
}

func encodeFromUTF8(out, u8 []byte, to rapidutf.Encoding) ([]byte, error) {
	switch to {
	case rapidutf.UTF8:
		return append(out, u8...), nil
	case rapidutf.Latin1:
		l1, err := rapidutf.UTF8ToLatin1(u8)
		if err != nil {
			return nil, err
		}
		return append(out, l1...), nil
	case rapidutf.UTF16LE, rapidutf.UTF16BE:
		conv := rapidutf.UTF8ToUTF16LE
		if to == rapidutf.UTF16BE {
			conv = rapidutf.UTF8ToUTF16BE
		}
		units, err := conv(u8)
		if err != nil {
			return nil, err
		}
		for _, u := range units {
			out = binary.NativeEndian.AppendUint16(out, u)
		}
		return out, nil
	case rapidutf.UTF32LE, rapidutf.UTF32BE:
		values, err := rapidutf.UTF8ToUTF32(u8)
		if err != nil {
			return nil, err
		}
		var order binary.AppendByteOrder = binary.LittleEndian
		if to == rapidutf.UTF32BE {
			order = binary.BigEndian
		}
		for _, v := range values {
			out = order.AppendUint32(out, v)
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot encode %s", to)
}

func appendBOM(out []byte, e rapidutf.Encoding) []byte {
	switch e {
	case rapidutf.UTF8:
		return append(out, 0xef, 0xbb, 0xbf)
	case rapidutf.UTF16LE:
		return append(out, 0xff, 0xfe)
	case rapidutf.UTF16BE:
		return append(out, 0xfe, 0xff)
	case rapidutf.UTF32LE:
		return append(out, 0xff, 0xfe, 0x00, 0x00)
	case rapidutf.UTF32BE:
		return append(out, 0x00, 0x00, 0xfe, 0xff)
	}
	return out
}
