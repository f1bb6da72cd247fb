// bmp-inspect dumps basic information about bitmap files: dimensions,
// pixel format, and for 32-bit images a color census and a compact
// alpha-channel RLE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellworks/bmp"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorGreen = lipgloss.Color("35")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel = lipgloss.NewStyle().Foreground(colorGray).Width(22)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleNote  = lipgloss.NewStyle().Foreground(colorGreen)
)

func row(label string, value any) string {
	return styleLabel.Render(label) + " = " + styleValue.Render(fmt.Sprint(value))
}

func report(path string, info *bmp.Info, verbose bool) {
	fmt.Println(styleTitle.Render("BITMAP FILE " + path))
	fmt.Println("    " + row("PIXEL WIDTH", info.Width))
	fmt.Println("    " + row("PIXEL HEIGHT", info.Height))
	fmt.Println("    " + row("PIXEL WIDTH % 128", info.WidthMod128))
	fmt.Println("    " + row("PIXEL FORMAT", info.Format))

	if info.Colors == nil {
		return
	}

	line := fmt.Sprintf("%d DISTINCT COLORS", len(info.Colors))
	if info.VariesOnlyInAlpha {
		line += styleNote.Render(" (varies only in alpha)")
	}
	fmt.Println("    " + line)
	if verbose {
		for _, cc := range info.Colors {
			c := cc.Color
			fmt.Printf("        %d, %d, %d, %d -> FOUND %d TIMES\n", c.R, c.G, c.B, c.A, cc.Count)
		}
	}

	if info.VariesOnlyInAlpha {
		fmt.Println("    " + row("ALPHA ONLY RLE LENGTH", info.RLELength()))
		if verbose {
			fmt.Println("        " + styleLabel.Render("ENCODED") + " = " + styleValue.Render(info.EncodedRLE()))
		}
	}
}

func inspect(logger *charmlog.Logger, path string, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	logger.Debug("inspecting", "file", path)
	info, err := bmp.Inspect(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	report(path, info, verbose)
	return nil
}

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:          "bmp-inspect <file>...",
		Short:        "Dump basic information about bitmap files",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Level: level})

			for _, path := range args {
				if err := inspect(logger, path, verbose); err != nil {
					return err
				}
			}
			return nil
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump the color census and RLE encoding")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
