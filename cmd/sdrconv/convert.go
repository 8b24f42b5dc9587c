package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sdrconv/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <frequencies.xml> <frequency_manager_config.json>",
	Short: "Merge SDR# bookmarks into an SDR++ frequency manager document",
	Long: `Convert reads the SDR# bookmark file, translates each entry's detector
mode into the SDR++ mode enum, groups entries into lists by group name, and
merges them into the SDR++ base document. Existing lists and bookmarks are
kept; the result is written to a new file (default: base path + ".new").

The mode table can be overridden with a "modes" map in the config file, e.g.:

  modes:
    nfm: 0
    wfm: 1
    am: 2
    usb: 4
    lsb: 5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		flatten, _ := cmd.Flags().GetBool("flatten")
		favPrefix, _ := cmd.Flags().GetBool("fav-prefix")
		report, _ := cmd.Flags().GetString("report")

		modes, err := modeOverrides()
		if err != nil {
			return err
		}

		_, err = convert.Run(convert.Options{
			SourcePath:      args[0],
			BasePath:        args[1],
			OutPath:         out,
			Modes:           modes,
			Flatten:         flatten,
			FavouritePrefix: favPrefix,
			ReportPath:      report,
		}, os.Stderr)
		return err
	},
}

func init() {
	convertCmd.Flags().String("out", "", "output path (default: base path + \".new\")")
	convertCmd.Flags().Bool("flatten", false, "put all bookmarks into the fallback list instead of per-group lists")
	convertCmd.Flags().Bool("fav-prefix", false, "prefix favourite bookmark names with \"★ \"")
	convertCmd.Flags().String("report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(convertCmd)
}

// modeOverrides reads the optional "modes" map from configuration. Returns
// nil when no override is configured, so the built-in table applies.
func modeOverrides() (map[string]int, error) {
	raw := viper.GetStringMap("modes")
	if len(raw) == 0 {
		return nil, nil
	}
	modes := make(map[string]int, len(raw))
	for token, v := range raw {
		code, err := toModeCode(v)
		if err != nil {
			return nil, fmt.Errorf("config modes.%s: %w", token, err)
		}
		modes[token] = code
	}
	return modes, nil
}

// toModeCode coerces a config value into an integer mode code.
func toModeCode(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("mode code %v is not an integer", n)
		}
		return int(n), nil
	case string:
		code, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("mode code %q is not an integer", n)
		}
		return code, nil
	default:
		return 0, fmt.Errorf("mode code %v (%T) is not an integer", v, v)
	}
}
