/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"strings"

	"github.com/eslsoft/conlang/internal/app"
	"github.com/eslsoft/conlang/internal/usecase"
	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:   "speak [text]",
	Short: "Simulate speech preview or audio export",
	RunE: func(cmd *cobra.Command, args []string) error {
		voice, _ := cmd.Flags().GetString("voice")
		export, _ := cmd.Flags().GetBool("export")
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			text, err := argsOrStdin(cmd, args)
			if err != nil {
				return err
			}
			run := c.Speech.Preview
			if export {
				run = c.Speech.Export
			}
			msg, err := run(text, voice)
			if err != nil {
				return err
			}
			cmd.Println(msg)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(speakCmd)
	speakCmd.Flags().String("voice", usecase.SpeechVoices[0], "voice: "+strings.Join(usecase.SpeechVoices, ", "))
	speakCmd.Flags().Bool("export", false, "prepare an export instead of a preview")
}
