package main

import (
	"context"
	"fmt"
	"os"

	"outlookengine/api"
	"outlookengine/cmd"
	"outlookengine/internal/domain"
	"outlookengine/internal/logger"
	"outlookengine/internal/util"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func withDependencies(run func(ctx context.Context, handler *api.ApiHandler, args []string) error) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		ctx := logger.WithLogger(c.Context(), logger.New())
		return run(ctx, handler, args)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "outlook",
		Short:        "operator commands for the outlook engine",
		SilenceUsage: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "import-sources <file.csv>",
		Short: "create or update sources from a csv of dimension scores",
		Args:  cobra.ExactArgs(1),
		RunE: withDependencies(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			sources, err := handler.SourceService.ImportCSV(ctx, f)
			if err != nil {
				return err
			}
			util.Pprint(sources)
			return nil
		}),
	})

	root.AddCommand(&cobra.Command{
		Use:   "seed-outlooks",
		Short: "create a neutral default outlook for any horizon missing one",
		Args:  cobra.NoArgs,
		RunE: withDependencies(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			created, err := handler.OutlookService.SeedMissing(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("seeded %d outlooks\n", len(created))
			return nil
		}),
	})

	var horizon string
	evaluate := &cobra.Command{
		Use:   "evaluate",
		Short: "run an evaluation cycle for one or all horizons",
		Args:  cobra.NoArgs,
		RunE: withDependencies(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			if horizon == "" {
				results, err := handler.OutlookEvaluationApp.EvaluateAll(ctx)
				util.Pprint(results)
				return err
			}

			h, err := domain.ParseHorizon(horizon)
			if err != nil {
				return err
			}
			result, err := handler.OutlookEvaluationApp.EvaluateHorizon(ctx, h)
			util.Pprint(result)
			return err
		}),
	}
	evaluate.Flags().StringVar(&horizon, "horizon", "", "short, medium or long (default all)")
	root.AddCommand(evaluate)

	root.AddCommand(&cobra.Command{
		Use:   "recompute-scores",
		Short: "re-derive every source's weighted score from its dimensions",
		Args:  cobra.NoArgs,
		RunE: withDependencies(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			changed, err := handler.SourceService.RecomputeAll(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("updated %d sources\n", changed)
			return nil
		}),
	})

	return root
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
