package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slotmatch/internal/api"
	"slotmatch/internal/app"
	"slotmatch/internal/service"
)

func NewMatchCmd() *cobra.Command {
	var (
		file    string
		pretty  bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank availability for a request read from a JSON file",
		Example: `  slotmatch match --file request.json --pretty
  cat request.json | slotmatch match --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, file)
			if err != nil {
				return err
			}
			defer in.Close()

			req, httpErr := api.DecodeMatchRequest(in)
			if httpErr != nil {
				return httpErr
			}

			logger := zap.NewNop()
			if verbose {
				logger = app.NewLogger("development", "stderr")
				defer logger.Sync()
			}
			res, err := service.NewAvailabilityService(logger).FindBestAvailability(req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(api.MatchResponse{Success: true, MatchResult: res})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "request JSON file, or - for stdin")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log matching details to stderr")
	cmd.MarkFlagRequired("file")
	return cmd
}

func openInput(cmd *cobra.Command, file string) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open request: %w", err)
	}
	return f, nil
}
