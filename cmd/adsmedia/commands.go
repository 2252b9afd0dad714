package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adsmedia/mailbridge/internal/config"
	"github.com/adsmedia/mailbridge/internal/provider"
	adsmedia "github.com/adsmedia/mailbridge/sdk/go"
)

// cli carries state shared by every subcommand.
type cli struct {
	v   *viper.Viper
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), out: out}

	rootCmd := &cobra.Command{
		Use:           "adsmedia",
		Short:         "Command-line client for the ADSMedia email API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("api-key", "", "API key (falls back to "+provider.APIKeyEnv+")")
	flags.String("from-name", "", "default sender display name")
	flags.String("base-url", "", "API base URL")
	flags.Duration("timeout", 0, "timeout for each API call")

	c.v.BindPFlag("adsmedia.api_key", flags.Lookup("api-key"))
	c.v.BindPFlag("adsmedia.from_name", flags.Lookup("from-name"))
	c.v.BindPFlag("adsmedia.base_url", flags.Lookup("base-url"))
	c.v.BindPFlag("adsmedia.timeout", flags.Lookup("timeout"))

	rootCmd.AddCommand(
		c.pingCmd(),
		c.usageCmd(),
		c.checkCmd(),
		c.sendCmd(),
		c.batchCmd(),
		c.statusCmd(),
	)

	return rootCmd
}

func (c *cli) client() (*adsmedia.Client, error) {
	cfg, err := config.LoadWith(c.v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return provider.NewClient(cfg.ADSMedia)
}

// run builds the client, performs call and prints the response.
func (c *cli) run(ctx context.Context, call func(context.Context, *adsmedia.Client) (adsmedia.Response, error)) error {
	client, err := c.client()
	if err != nil {
		return err
	}

	resp, err := call(ctx, client)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func (c *cli) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test API connectivity and credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, client *adsmedia.Client) (adsmedia.Response, error) {
				return client.Ping(ctx)
			})
		},
	}
}

func (c *cli) usageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show account usage statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, client *adsmedia.Client) (adsmedia.Response, error) {
				return client.GetUsage(ctx)
			})
		},
	}
}

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [email]",
		Short: "Check whether an address is suppressed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, client *adsmedia.Client) (adsmedia.Response, error) {
				return client.CheckSuppression(ctx, args[0])
			})
		},
	}
}

func (c *cli) sendCmd() *cobra.Command {
	var req adsmedia.SendEmailRequest

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a single email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, client *adsmedia.Client) (adsmedia.Response, error) {
				return client.Send(ctx, req)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.To, "to", "", "recipient address")
	f.StringVar(&req.ToName, "to-name", "", "recipient display name")
	f.StringVar(&req.Subject, "subject", "", "subject line")
	f.StringVar(&req.HTML, "html", "", "HTML body")
	f.StringVar(&req.Text, "text", "", "plain-text body")
	f.StringVar(&req.FromName, "sender", "", "sender display name for this message")
	f.StringVar(&req.ReplyTo, "reply-to", "", "reply-to address")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("subject")

	return cmd
}

func (c *cli) batchCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Send a batch email described by a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			var req adsmedia.BatchEmailRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("failed to parse batch request: %w", err)
			}

			return c.run(cmd.Context(), func(ctx context.Context, client *adsmedia.Client) (adsmedia.Response, error) {
				return client.SendBatch(ctx, req)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON batch request, - for stdin")
	return cmd
}

func (c *cli) statusCmd() *cobra.Command {
	var query adsmedia.StatusQuery

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Look up the delivery status of a sent message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if query.MessageID == "" && query.SendID == 0 {
				return fmt.Errorf("one of --message-id or --send-id is required")
			}
			return c.run(cmd.Context(), func(ctx context.Context, client *adsmedia.Client) (adsmedia.Response, error) {
				return client.GetStatus(ctx, query)
			})
		},
	}

	cmd.Flags().StringVar(&query.MessageID, "message-id", "", "message ID returned by send")
	cmd.Flags().Int64Var(&query.SendID, "send-id", 0, "send ID returned by send")
	return cmd
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return data, nil
}
