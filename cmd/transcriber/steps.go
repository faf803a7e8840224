package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/guide-transcriber/internal/steps"
)

var jsonOutput bool

var stepsCmd = &cobra.Command{
	Use:   "steps [TRANSCRIPT_FILE]",
	Short: "Extract the numbered steps from a local transcript",
	Example: `  transcriber steps transcript.txt
  transcriber steps transcript.txt --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read transcript: %w", err)
		}

		found := steps.Extract(string(data))
		out := cmd.OutOrStdout()

		if jsonOutput {
			return writeStepsJSON(out, found)
		}
		if len(found) == 0 {
			fmt.Fprintln(out, "No numbered steps found")
			return nil
		}
		fmt.Fprint(out, steps.Render(found))
		return nil
	},
}

func init() {
	stepsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the steps as a JSON array")
	rootCmd.AddCommand(stepsCmd)
}

func writeStepsJSON(w io.Writer, found []steps.Step) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(found)
}
