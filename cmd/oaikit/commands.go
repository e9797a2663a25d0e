package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/client"
	"github.com/spetersoncode/oaikit/transport"
	"github.com/spf13/cobra"
)

type modelList struct {
	Data []struct {
		ID      string `json:"id"`
		OwnedBy string `json:"owned_by"`
	} `json:"data"`
}

type chatCompletion struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

type fileObject struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Purpose  string `json:"purpose"`
	Bytes    int64  `json:"bytes"`
}

func newModelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			list, err := client.Decode[modelList](c.Models().List(cmd.Context()))
			if err != nil {
				return err
			}
			for _, m := range list.Data {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.ID, m.OwnedBy)
			}
			return nil
		},
	}
}

func newChatCmd(a *app) *cobra.Command {
	var (
		model    string
		noStream bool
	)

	cmd := &cobra.Command{
		Use:   "chat <prompt>",
		Short: "Send a single chat message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			if model == "" {
				model = a.cfg.Model
			}
			params := oaikit.Params{
				"model": model,
				"messages": []map[string]string{
					{"role": "user", "content": strings.Join(args, " ")},
				},
			}
			out := cmd.OutOrStdout()

			if noStream {
				resp, err := client.Decode[chatCompletion](c.Chat(cmd.Context(), params))
				if err != nil {
					return err
				}
				if len(resp.Choices) > 0 {
					fmt.Fprintln(out, resp.Choices[0].Message.Content)
				}
				return nil
			}

			err = c.ChatStream(cmd.Context(), params, func(event transport.StreamEvent) error {
				var chunk chatChunk
				if err := json.Unmarshal(event.Data, &chunk); err != nil {
					return fmt.Errorf("decode chunk: %w", err)
				}
				for _, choice := range chunk.Choices {
					fmt.Fprint(out, choice.Delta.Content)
				}
				return nil
			})
			fmt.Fprintln(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "model to use (default $OAIKIT_MODEL)")
	cmd.Flags().BoolVar(&noStream, "no-stream", false, "wait for the full response")
	return cmd
}

func newFilesCmd(a *app) *cobra.Command {
	files := &cobra.Command{
		Use:   "files",
		Short: "Manage uploaded files",
	}

	var purpose string
	upload := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file; .jsonl files are validated first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			f, err := client.Decode[fileObject](c.Files().Upload(cmd.Context(), oaikit.Params{
				"file":    args[0],
				"purpose": purpose,
			}))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", f.ID, f.Filename, f.Purpose, f.Bytes)
			return nil
		},
	}
	upload.Flags().StringVarP(&purpose, "purpose", "p", "fine-tune", "file purpose")

	list := &cobra.Command{
		Use:   "list",
		Short: "List uploaded files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			resp, err := client.Decode[struct {
				Data []fileObject `json:"data"`
			}](c.Files().List(cmd.Context(), nil))
			if err != nil {
				return err
			}
			for _, f := range resp.Data {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", f.ID, f.Filename, f.Purpose, f.Bytes)
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an uploaded file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			if _, err := c.Files().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}

	files.AddCommand(upload, list, del)
	return files
}

// newTokensCmd estimates the token count of its arguments. It needs no
// credentials, so it skips the root setup.
func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <text>",
		Short: "Roughly estimate the token count of text",
		Args:  cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), oaikit.RoughTokenCount(strings.Join(args, " ")))
			return nil
		},
	}
}
