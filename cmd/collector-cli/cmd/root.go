package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"seoulopendata/lib/configutil"
	"seoulopendata/lib/datatable"
	"seoulopendata/lib/restyutil"
	"seoulopendata/lib/seoulapi"
	"seoulopendata/lib/tableimage"
	"seoulopendata/lib/telemetry"

	"github.com/mazen160/go-random"
	"github.com/spf13/cobra"
)

// Config supplies defaults from collector.json5 so a configured key
// doesn't have to be passed on every invocation. Explicit flags and
// arguments always win over it.
type Config struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
	Service string `json:"service"`
	Csv     string `json:"csv"`
	Image   string `json:"image"`
}

var (
	flagService string
	flagStart   int
	flagEnd     int
	flagCsv     string
	flagImage   string
	flagTitle   string
	flagMaxRows int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "collector-cli [api-key]",
	Short: "Downloads a Seoul open API dataset and exports it as a CSV file and a rendered table image.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCollect,
	// failures are reported through slog in Execute
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&flagService, "service", seoulapi.DefaultService, "dataset service identifier")
	flags.IntVar(&flagStart, "start", seoulapi.DefaultStartIndex, "start index of the inclusive row range")
	flags.IntVar(&flagEnd, "end", seoulapi.DefaultEndIndex, "end index of the inclusive row range")
	flags.StringVar(&flagCsv, "csv", "output/data.csv", "path to save the CSV file")
	flags.StringVar(&flagImage, "image", "output/data.png", "path to save the rendered table image")
	flags.StringVar(&flagTitle, "title", "", "optional title to display on the rendered image")
	flags.IntVar(&flagMaxRows, "max-rows", tableimage.DefaultMaxRows, "maximum number of rows to display in the image")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging plus raw HTTP transcripts")
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("collection failed", "err", err)
		os.Exit(1)
	}
}

func runCollect(cmd *cobra.Command, args []string) error {
	telemetry.InitSlog(flagVerbose)
	ctx := cmd.Context()

	config, err := configutil.ReadConfig[Config]("collector.json5")
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read collector.json5: %w", err)
	}
	applyConfig(cmd, config)

	apiKey := config.ApiKey
	if len(args) == 1 {
		apiKey = args[0]
	}
	if apiKey == "" {
		return fmt.Errorf("%w: no api key given (argument or collector.json5)", seoulapi.ErrBuild)
	}

	tel, err := telemetry.SetupFromEnv(ctx, "collector-cli")
	if err == nil {
		defer tel.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("setup telemetry: %w", err)
	}

	runId, err := random.String(8)
	if err != nil {
		runId = "unknown"
	}
	slog.Info(
		"starting collection",
		"run_id", runId,
		"service", flagService,
		"start", flagStart,
		"end", flagEnd,
	)

	if !seoulapi.IsKnownService(flagService) {
		suggestion := seoulapi.SuggestService(flagService)
		if suggestion != "" {
			slog.Warn(
				"service is not in the known catalog",
				"service", flagService,
				"did_you_mean", suggestion,
			)
		} else {
			slog.Warn("service is not in the known catalog", "service", flagService)
		}
	}

	client := seoulapi.NewClient(seoulapi.ClientOptions{BaseUrl: config.BaseUrl})
	if flagVerbose {
		client.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(
			filepath.Join(filepath.Dir(flagCsv), "http_debug"),
		))
	}

	table, err := client.FetchTable(ctx, apiKey, seoulapi.RequestParams{
		Service:    flagService,
		Format:     seoulapi.FormatJSON,
		StartIndex: flagStart,
		EndIndex:   flagEnd,
	})
	if err != nil {
		return err
	}

	err = datatable.WriteCSV(table, flagCsv)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	err = tableimage.Render(table, flagImage, tableimage.Params{
		Title:   flagTitle,
		MaxRows: flagMaxRows,
	})
	if err != nil {
		return fmt.Errorf("render image: %w", err)
	}

	datatable.Preview(table, os.Stdout, flagMaxRows)
	fmt.Printf("Saved CSV to %s\n", absOrSelf(flagCsv))
	fmt.Printf("Saved image to %s\n", absOrSelf(flagImage))
	return nil
}

func applyConfig(cmd *cobra.Command, config Config) {
	flags := cmd.Flags()
	if config.Service != "" && !flags.Changed("service") {
		flagService = config.Service
	}
	if config.Csv != "" && !flags.Changed("csv") {
		flagCsv = config.Csv
	}
	if config.Image != "" && !flags.Changed("image") {
		flagImage = config.Image
	}
}

func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
