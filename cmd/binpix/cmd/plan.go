package cmd

import (
	"os"
	"strconv"

	"binpix/cli"
	"binpix/codec"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const flagAll = "all"

var planCmd = &cobra.Command{
	Use:   "plan <file|byte-count>",
	Short: "Shows the image dimensions an encode would use, without encoding.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		numBytes, err := resolveByteCount(args[0])
		if err != nil {
			return err
		}
		opts, err := planOptsFromFlags(cmd)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{
			"Width",
			"Height",
			"Pixels",
			"Capacity",
			"Padding",
		})

		all, _ := cmd.Flags().GetBool(flagAll)
		if all {
			for _, cand := range codec.SearchCandidates(numBytes) {
				appendPlan(table, cand)
			}
		} else {
			appendPlan(table, codec.PlanDimensions(numBytes, opts))
		}
		table.Render()
		return nil
	},
}

func resolveByteCount(arg string) (int64, error) {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		if n < 0 {
			return 0, errors.New("byte count must be non-negative")
		}
		return n, nil
	}
	info, err := os.Stat(arg)
	if err != nil {
		return 0, errors.Wrap(err, "error statting input file")
	}
	return info.Size(), nil
}

func appendPlan(table *tablewriter.Table, plan codec.Plan) {
	table.Append([]string{
		strconv.Itoa(plan.Width),
		strconv.Itoa(plan.Height),
		strconv.FormatInt(plan.Pixels(), 10),
		strconv.FormatInt(plan.Capacity(), 10),
		strconv.FormatInt(plan.Padding, 10),
	})
}

func init() {
	planCmd.Flags().IntP(cli.FlagWidth, "w", 0, "Constrains the plan to a specific width.")
	planCmd.Flags().IntP(cli.FlagHeight, "l", 0, "Constrains the plan to a specific height.")
	planCmd.Flags().BoolP(cli.FlagSquare, "s", false, "Plans only square images.")
	planCmd.Flags().Bool(flagAll, false, "Shows every candidate the dimension search visits.")
	rootCmd.AddCommand(planCmd)
}
