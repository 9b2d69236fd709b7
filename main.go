package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"climate-insight/internal/api"
	"climate-insight/internal/config"
	"climate-insight/internal/logger"
	"climate-insight/internal/metrics"
	"climate-insight/internal/report"
)

var (
	inputFile    string
	empresa      string
	pais         string
	ciudad       string
	outputDir    string
	noCharts     bool
	sectionsFile string
)

var rootCmd = &cobra.Command{
	Use:   "climate-insight",
	Short: "Generates climate survey reports from Excel exports using LLM analysis",
	Long: `climate-insight loads an Excel export of an HR climate survey, enforces
the anonymity threshold (n >= 5 per segment), renders bar charts for scale
and categorical questions, and generates a sectioned narrative report
through a sequence of OpenAI calls, delivered as PDF plus a Markdown copy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real environments export the variables directly.
		_ = godotenv.Load()

		cfg := config.LoadAppConfig()

		log, err := logger.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("could not initialize logger: %w", err)
		}
		defer log.Sync()

		if noCharts {
			cfg.Charts.Enabled = false
		}

		client := api.NewOpenAIClient(cfg.OpenAI)
		m := metrics.NewMetrics()
		generator := report.NewGenerator(cfg, client, m, log)

		record, err := generator.Generate(report.Request{
			InputFile:     inputFile,
			Empresa:       empresa,
			Pais:          pais,
			Ciudad:        ciudad,
			OutputDir:     outputDir,
			IncludeCharts: cfg.Charts.Enabled,
			SectionsFile:  sectionsFile,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\n✅ Informe generado: %s\n", record.PDFPath)
		fmt.Printf("   Markdown: %s\n", record.MarkdownPath)
		fmt.Printf("   Secciones: %d, gráficos: %d, tokens: %d\n",
			len(record.SectionIDs), record.ChartsRendered, record.TotalTokens)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "path to the Excel survey file (.xlsx or .xls)")
	rootCmd.Flags().StringVarP(&empresa, "empresa", "e", "", "company name")
	rootCmd.Flags().StringVarP(&pais, "pais", "p", "", "country")
	rootCmd.Flags().StringVarP(&ciudad, "ciudad", "c", "", "city")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: OUTPUT_DIR or ./output)")
	rootCmd.Flags().BoolVar(&noCharts, "no-charts", false, "disable chart generation")
	rootCmd.Flags().StringVar(&sectionsFile, "sections", "", "custom section plan YAML (default: built-in plan)")

	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("empresa")
	_ = rootCmd.MarkFlagRequired("pais")
	_ = rootCmd.MarkFlagRequired("ciudad")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
