package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/csheth/tinypal/internal/content"
)

func newFetchCmd(root *rootOptions) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Load the card lists once and print them",
		Long: `Fetch posts the configured profile to the personalization endpoint and
prints the returned cards as plain text. Useful for checking a deployment
without starting the terminal UI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch content.Kind(kind) {
			case "", content.KindDYK, content.KindFlash:
			default:
				return fmt.Errorf("--kind %q must be dyk or flash", kind)
			}
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			svc, err := buildServices(cfg, root.debug)
			if err != nil {
				return err
			}
			defer func() { _ = svc.logger.Sync() }()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			set, err := svc.fetcher.Fetch(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if kind == "" || content.Kind(kind) == content.KindDYK {
				printCards(out, content.KindDYK, set.DYKCards)
			}
			if kind == "" || content.Kind(kind) == content.KindFlash {
				printCards(out, content.KindFlash, set.FlashCards)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only print dyk or flash cards")
	return cmd
}

func printCards(w io.Writer, kind content.Kind, items []content.Item) {
	fmt.Fprintf(w, "%s cards: %d\n", kind, len(items))
	for idx, item := range items {
		fmt.Fprintf(w, "\n[%d/%d] %s\n", idx+1, len(items), item.ID)
		if item.Heading != "" {
			fmt.Fprintf(w, "  %s\n", item.Heading)
		}
		if ce := item.CauseAndEffect; ce != nil {
			fmt.Fprintf(w, "  %s -> %s\n", ce.Cause, ce.Effect)
		}
		if item.Content != "" {
			fmt.Fprintf(w, "  %s\n", item.Content)
		}
		if c := item.Citation; c != nil && c.Label != "" {
			fmt.Fprintf(w, "  source: %s\n", c.Label)
		}
		if item.ImageURL != "" {
			fmt.Fprintf(w, "  image: %s\n", item.ImageURL)
		}
		if item.CanActivate() {
			fmt.Fprintf(w, "  ask tinu: %s (%s)\n", item.Activation.Topic, item.Activation.Context)
		}
	}
}
