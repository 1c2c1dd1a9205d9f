package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nivandosoares/portfolio/pkg/cv"
	"github.com/nivandosoares/portfolio/pkg/portfolio"
)

//nolint:gochecknoglobals // Cobra boilerplate
var outDir string

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the CV as a PDF file",
	Long: `Lay out the portfolio data as a paginated A4 CV and write it into the
output directory as <name>-cv.pdf.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	exportCmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory to write the PDF into")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) (err error) {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	data, err := portfolio.Load(cfg.DataPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printNotice(out, cv.Started())

	artifact, err := cv.NewExporter().ExportPortfolio(cmd.Context(), data)
	if err != nil {
		printNotice(cmd.ErrOrStderr(), cv.Failed(err))
		return err
	}

	path, err := artifact.Save(outDir)
	if err != nil {
		printNotice(cmd.ErrOrStderr(), cv.Failed(err))
		return err
	}

	logger.Debug("cv written", "path", path, "pages", artifact.Pages, "bytes", len(artifact.Data))
	printNotice(out, cv.Succeeded())
	_, _ = fmt.Fprintf(out, "%s (%d pages)\n", path, artifact.Pages)
	return err
}

func noticeColor(kind cv.NoticeKind) *color.Color {
	switch kind {
	case cv.NoticeSuccess:
		return color.New(color.FgGreen, color.Bold)
	case cv.NoticeError:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}

func printNotice(w io.Writer, n cv.Notice) {
	_, _ = noticeColor(n.Kind).Fprint(w, n.Title)
	_, _ = fmt.Fprintf(w, ": %s\n", n.Description)
}
