package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mnightingale/rapidutf"
)

type globalOptions struct {
	kernel   string
	logLevel string
}

func newRootCommand() *cobra.Command {
	var opts globalOptions
	cmd := &cobra.Command{
		Use:  "rapidutf",
		Long: "Validate, detect and transcode Unicode text, and encode or decode base64",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return before(cmd, &opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			_ = rapidutf.Logger().Sync()
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fl := cmd.PersistentFlags()
	fl.StringVar(&opts.kernel, "kernel", os.Getenv(rapidutf.ForceImplementationEnvVar), "implementation to use (see \"rapidutf kernels\")")
	fl.StringVar(&opts.logLevel, "log-level", "warn", "logging level")

	cmd.AddCommand(
		newKernelsCommand(),
		newValidateCommand(),
		newDetectCommand(),
		newConvertCommand(),
		newBase64Command(),
	)
	return cmd
}

func before(cmd *cobra.Command, opts *globalOptions) error {
	level, err := zapcore.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", opts.logLevel, err)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(cmd.ErrOrStderr()), level)
	rapidutf.SetLogger(zap.New(core))

	if opts.kernel != "" {
		if err := rapidutf.SetActiveImplementationByName(opts.kernel); err != nil {
			return fmt.Errorf("selecting kernel: %w", err)
		}
	}
	return nil
}

// openInput returns the file named by args, or standard input.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "<stdin>", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	r, name, err := openInput(cmd, args)
	if err != nil {
		return nil, "", err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", name, err)
	}
	return data, name, nil
}
