package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/nandanugg/apartment-notifier/config"
	"github.com/nandanugg/apartment-notifier/module/core"
	"github.com/nandanugg/apartment-notifier/module/core/domain"
	"github.com/nandanugg/apartment-notifier/module/core/service"
)

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <lat1> <lon1> <lat2> <lon2>",
		Short: "Great-circle distance in kilometers",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				vals[i] = v
			}
			km := service.Distance(
				domain.Coordinate{Lat: vals[0], Lon: vals[1]},
				domain.Coordinate{Lat: vals[2], Lon: vals[3]},
			)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%f\n", km)
			return err
		},
	}
}

func newAnnotateCmd() *cobra.Command {
	var (
		lat, lon float64
		where    string
	)
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Label a coordinate with its neighborhood and nearest station",
		RunE: func(cmd *cobra.Command, _ []string) error {
			geo, err := config.LoadGeoSettings(config.Load())
			if err != nil {
				return err
			}
			ann, err := service.NewAnnotator(geo).Annotate(&domain.Coordinate{Lat: lat, Lon: lon}, where)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ann)
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in decimal degrees")
	cmd.Flags().StringVar(&where, "where", "", "free-text location of the listing")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}

func newClearCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear unreacted listings if the owner posted the clear command",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			logger := config.NewLogger(cfg)

			api, err := config.NewSlack(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			svc := core.NewNotificationService(api, config.ChatSettings(cfg), logger)
			res, err := svc.CheckAndClear(ctx)
			if err != nil {
				return err
			}
			if !res.Requested {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no clear request found")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d messages\n", res.Deleted)
			return err
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	return cmd
}
