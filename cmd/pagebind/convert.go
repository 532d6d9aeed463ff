package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pagebind/internal/pipeline"
	"github.com/pdiddy/pagebind/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [directory]",
	Short: "Combine a directory of images into one PDF",
	Long: `Convert scans a directory for image files (png, jpg, jpeg, bmp, gif,
tiff), scales each onto a page cell, and writes a single merged PDF into the
directory. The directory defaults to the working directory.

With --jobs, convert instead runs every conversion described in a YAML job
file and reports a batch summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Int("images-per-page", types.DefaultImagesPerPage, "images stacked on each page")
	convertCmd.Flags().Int("margin", types.DefaultMargin, "blank border around each image in pixels")
	convertCmd.Flags().Bool("label", false, "draw a running label above each image")
	convertCmd.Flags().String("label-prefix", types.DefaultLabelPrefix, "text before the label number")
	convertCmd.Flags().Bool("sort-by-time", false, "order images by file time instead of name")
	convertCmd.Flags().Bool("delete-images", false, "delete source images after the PDF is written")
	convertCmd.Flags().String("output", types.DefaultOutputName, "name of the merged PDF inside the directory")
	convertCmd.Flags().String("jobs", "", "YAML job file describing multiple conversions")

	// Config file and environment values back the flags under snake_case keys.
	for key, flag := range map[string]string{
		"images_per_page": "images-per-page",
		"margin":          "margin",
		"label_images":    "label",
		"label_prefix":    "label-prefix",
		"sort_by_time":    "sort-by-time",
		"delete_images":   "delete-images",
		"output":          "output",
	} {
		viper.BindPFlag(key, convertCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if jobsPath, _ := cmd.Flags().GetString("jobs"); jobsPath != "" {
		jf, err := pipeline.ReadJobFile(jobsPath)
		if err != nil {
			return err
		}
		summary := pipeline.RunJobs(cmd.Context(), jf, os.Stdout, nil)
		if summary.HasFailures() {
			return fmt.Errorf("%d job(s) failed", summary.Failed)
		}
		return nil
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	cfg := types.BatchConfig{
		Directory:     dir,
		ImagesPerPage: viper.GetInt("images_per_page"),
		DeleteImages:  viper.GetBool("delete_images"),
		Margin:        viper.GetInt("margin"),
		LabelImages:   viper.GetBool("label_images"),
		LabelPrefix:   viper.GetString("label_prefix"),
		SortByTime:    viper.GetBool("sort_by_time"),
		Output:        viper.GetString("output"),
	}

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("composing pages"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionThrottle(65*time.Millisecond),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}
		bar.Set(done)
	}

	_, err := pipeline.Run(cmd.Context(), cfg, os.Stdout, progress)
	return err
}
