package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pkt.systems/pslog"

	failure "github.com/xgx-io/xgx-failure"
	"github.com/xgx-io/xgx-failure/failurelog"
)

const (
	formatKey = "format"
	fromKey   = "from"
	toKey     = "to"
)

func newRootCommand(logger pslog.Logger) *cobra.Command {
	cfg := viper.New()
	cmd := &cobra.Command{
		Use:           "failurectl",
		Short:         "failurectl renders and converts serialized failures",
		SilenceErrors: true,
		SilenceUsage:  true,
		Example: `
  # Print the derived message of a JSON failure
  echo '{"id":"EXAMPLE","attached":[{"id":"CHILD","code":7}]}' | failurectl render

  # Convert a YAML failure file to JSON
  failurectl convert failure.yaml --from yaml --to json
`,
	}
	cmd.AddCommand(newRenderCommand(cfg, logger))
	cmd.AddCommand(newConvertCommand(cfg, logger))
	return cmd
}

func newRenderCommand(cfg *viper.Viper, logger pslog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Decode a failure and print its message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := codecFromConfig(cfg, formatKey)
			if err != nil {
				return err
			}
			f, err := decodeInput(cmd, codec, args)
			if err != nil {
				return err
			}
			failurelog.Log(logger, "failure decoded", f)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), failure.Message(f))
			return err
		},
	}
	cmd.Flags().String("format", "json", "input format (json, yaml, toml)")
	mustBindFlag(cfg, formatKey, "FAILURECTL_FORMAT", cmd.Flags().Lookup("format"))
	return cmd
}

func newConvertCommand(cfg *viper.Viper, logger pslog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Re-encode a failure in another format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := codecFromConfig(cfg, fromKey)
			if err != nil {
				return err
			}
			to, err := codecFromConfig(cfg, toKey)
			if err != nil {
				return err
			}
			f, err := decodeInput(cmd, from, args)
			if err != nil {
				return err
			}
			out, err := to.Encode(f)
			if err != nil {
				return fmt.Errorf("encode %s: %w", to.Name(), err)
			}
			logger.Debug("failure converted", "from", from.Name(), "to", to.Name(), failurelog.KeyID, f.ID())
			w := cmd.OutOrStdout()
			if _, err := w.Write(out); err != nil {
				return err
			}
			if len(out) > 0 && out[len(out)-1] != '\n' {
				_, err = io.WriteString(w, "\n")
			}
			return err
		},
	}
	cmd.Flags().String("from", "json", "input format (json, yaml, toml)")
	cmd.Flags().String("to", "yaml", "output format (json, yaml, toml)")
	mustBindFlag(cfg, fromKey, "FAILURECTL_FROM", cmd.Flags().Lookup("from"))
	mustBindFlag(cfg, toKey, "FAILURECTL_TO", cmd.Flags().Lookup("to"))
	return cmd
}

func mustBindFlag(cfg *viper.Viper, key, env string, flag *pflag.Flag) {
	if flag == nil {
		panic(fmt.Sprintf("flag for key %s not found", key))
	}
	if err := cfg.BindPFlag(key, flag); err != nil {
		panic(err)
	}
	if env != "" {
		if err := cfg.BindEnv(key, env); err != nil {
			panic(err)
		}
	}
}

func codecFromConfig(cfg *viper.Viper, key string) (failure.Codec, error) {
	name := strings.TrimSpace(cfg.GetString(key))
	codec, ok := failure.CodecFor(name)
	if !ok {
		return nil, fmt.Errorf("unsupported --%s %q (want json, yaml or toml)", key, name)
	}
	return codec, nil
}

func decodeInput(cmd *cobra.Command, codec failure.Codec, args []string) (failure.Plain, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return failure.Plain{}, fmt.Errorf("read input: %w", err)
	}
	f, err := codec.Decode(data)
	if err != nil {
		return failure.Plain{}, fmt.Errorf("decode %s: %w", codec.Name(), err)
	}
	return f, nil
}
