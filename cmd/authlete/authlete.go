package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/authlete/authlete-go/api"
	"github.com/authlete/authlete-go/config"
	"github.com/authlete/authlete-go/dto"
	"github.com/authlete/authlete-go/internal/logging"
	"github.com/authlete/authlete-go/internal/version"
	"github.com/authlete/authlete-go/web"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/spf13/cobra"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

var errNoCommand = errors.New("no command given")

type cliOptions struct {
	configFile string
	fromEnv    bool
	logLevel   string
	loggers    ldlog.Loggers
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitCodeError
	}
	return exitCodeSuccess
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	rootCmd := &cobra.Command{
		Use:   "authlete",
		Short: "Call the Authlete API from the command line",
		Long: `authlete reads the Authlete configuration from a file (authlete.ini by default)
or from AUTHLETE_* environment variables and calls a few Authlete API operations.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLogLevel(opts.logLevel)
			if err != nil {
				return err
			}
			// stdout is reserved for command output
			opts.loggers = logging.NewLoggers(cmd.ErrOrStderr(), cmd.ErrOrStderr(), level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errNoCommand
		},
	}
	rootCmd.SetVersionTemplate(`{{printf "authlete version %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "",
		"configuration file location (default "+config.DefaultConfigurationFile+" or $"+config.ConfigurationFileVar+")")
	flags.BoolVar(&opts.fromEnv, "env", false, "read the configuration from AUTHLETE_* environment variables")
	flags.StringVar(&opts.logLevel, "log-level", "info", "minimum log level: debug, info, warn, error or none")

	rootCmd.AddCommand(
		newServiceCmd(opts),
		newConfigurationCmd(opts),
		newIntrospectCmd(opts),
		newJWKSCmd(opts),
		newBasicCmd(),
	)
	return rootCmd
}

func newServiceCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "service",
		Short: "Show the service identified by the configured service API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conf, err := makeClient(opts)
			if err != nil {
				return err
			}
			service, err := client.GetService(cmd.Context(), conf.GetServiceAPIKey().GetOrElse(""))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), service)
		},
	}
}

func newConfigurationCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "configuration",
		Short: "Show the OpenID Provider metadata of the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := makeClient(opts)
			if err != nil {
				return err
			}
			doc, err := client.GetServiceConfiguration(cmd.Context(), true)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		},
	}
}

func newIntrospectCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "introspect TOKEN",
		Short: "Introspect an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := makeClient(opts)
			if err != nil {
				return err
			}
			res, err := client.Introspection(cmd.Context(), &dto.IntrospectionRequest{Token: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newJWKSCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "jwks",
		Short: "List the public keys of the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := makeClient(opts)
			if err != nil {
				return err
			}
			jwks, err := client.GetServiceJWKSet(cmd.Context())
			if err != nil {
				return err
			}
			for _, key := range jwks.Keys {
				fmt.Fprintf(cmd.OutOrStdout(), "kid=%s alg=%s use=%s\n", key.KeyID, key.Algorithm, key.Use)
			}
			return nil
		},
	}
}

func newBasicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basic HEADER",
		Short: "Parse the value of a Basic Authorization header",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			creds := web.ParseBasicCredentials(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "userId:   %s\npassword: %s\n",
				creds.UserID().GetOrElse("<absent>"), creds.Password().GetOrElse("<absent>"))
		},
	}
}

func makeClient(opts *cliOptions) (*api.Client, config.Configuration, error) {
	var conf config.Configuration
	if opts.fromEnv {
		conf = config.NewEnvConfig(opts.loggers)
	} else {
		var err error
		if conf, err = config.NewFileConfig(opts.configFile, opts.loggers); err != nil {
			return nil, nil, err
		}
	}

	var httpConfig config.HTTPConfig
	if err := config.LoadHTTPConfigFromEnvironment(&httpConfig, opts.loggers); err != nil {
		return nil, nil, err
	}

	client, err := api.New(conf, api.WithLoggers(opts.loggers), api.WithHTTPConfig(httpConfig))
	if err != nil {
		return nil, nil, err
	}
	return client, conf, nil
}

func printJSON(w io.Writer, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
