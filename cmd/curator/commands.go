package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"news_curator/internal/api"
	"news_curator/internal/domain"
	"news_curator/internal/scheduler"
)

type wrapper func(runFunc) func(cmd *cobra.Command, args []string) error

func newServeCmd(withApp wrapper) *cobra.Command {
	var noRefresh bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and refresh feeds periodically",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if !noRefresh {
				sched := scheduler.NewScheduler(a.recommender, a.cfg.Refresh.Interval, a.cfg.Refresh.Timeout, a.logger)
				go func() {
					if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
						a.logger.Error("scheduler error", "error", err)
					}
				}()
			}

			e := api.NewServer(a.recommender, a.logger)
			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("starting http server", "addr", a.cfg.Server.Addr)
				if err := e.Start(a.cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err, ok := <-errCh:
				if ok {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
				a.logger.Info("received shutdown signal")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		}),
	}
	cmd.Flags().BoolVar(&noRefresh, "no-refresh", false, "serve without the periodic refresh")
	return cmd
}

func newRefreshCmd(withApp wrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch every configured feed once and merge into the store",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			stats, err := a.recommender.RefreshStats(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		}),
	}
}

func newRecommendCmd(withApp wrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Print the current reading list",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			articles, err := a.recommender.Recommend(ctx)
			if err != nil {
				return err
			}
			if articles == nil {
				articles = []domain.Article{}
			}
			return printJSON(cmd.OutOrStdout(), articles)
		}),
	}
}

func newFeedbackCmd(withApp wrapper) *cobra.Command {
	var (
		helpful bool
		reason  string
	)

	cmd := &cobra.Command{
		Use:   "feedback <article-id>",
		Short: "Mark an article helpful or not",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			err := a.recommender.RecordFeedback(ctx, args[0], helpful, reason)
			if errors.Is(err, domain.ErrArticleNotFound) {
				return fmt.Errorf("no article with id %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "feedback recorded")
			return nil
		}),
	}
	cmd.Flags().BoolVar(&helpful, "helpful", false, "whether the article was helpful")
	cmd.Flags().StringVar(&reason, "reason", "", "free-text reason")
	_ = cmd.MarkFlagRequired("helpful")
	return cmd
}

func newInterestsCmd(withApp wrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interests",
		Short: "Show or replace interest tags",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the interest tags",
		Args:  cobra.NoArgs,
		RunE: withApp(func(_ context.Context, cmd *cobra.Command, a *app, _ []string) error {
			return printJSON(cmd.OutOrStdout(), a.recommender.Interests())
		}),
	}

	set := &cobra.Command{
		Use:   "set [tag...]",
		Short: "Replace the interest tags; no tags clears them",
		RunE: withApp(func(_ context.Context, cmd *cobra.Command, a *app, args []string) error {
			tags := make([]domain.Category, 0, len(args))
			for _, arg := range args {
				tags = append(tags, domain.ParseCategory(arg))
			}
			if err := a.recommender.SetInterests(tags); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), a.recommender.Interests())
		}),
	}

	cmd.AddCommand(get, set)
	return cmd
}
