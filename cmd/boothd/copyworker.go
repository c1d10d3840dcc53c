package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const workerFileName = "pdf.worker.min.js"

// copyworkerCmd stages the PDF renderer's worker script into the client's
// served-assets directory before the client bundle is built. Package
// managers place pdfjs-dist in a few different layouts, so the known
// candidates are tried in order.
func copyworkerCmd() *cobra.Command {
	var clientDir string
	var outDir string
	cmd := &cobra.Command{
		Use:   "copyworker",
		Short: "copy the PDF worker script into the client assets directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := []string{
				filepath.Join(clientDir, "node_modules", "pdfjs-dist", "build", workerFileName),
				filepath.Join(clientDir, "node_modules", "pdfjs-dist", "legacy", "build", workerFileName),
				filepath.Join(clientDir, "node_modules", "react-pdf", "node_modules", "pdfjs-dist", "build", workerFileName),
			}
			for _, candidate := range candidates {
				if _, err := os.Stat(candidate); err != nil {
					continue
				}
				dest := filepath.Join(outDir, workerFileName)
				if err := copyFile(candidate, dest); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "copied %s -> %s\n", candidate, dest)
				return nil
			}
			return fmt.Errorf("%s not found under %s", workerFileName, clientDir)
		},
	}
	cmd.Flags().StringVar(&clientDir, "client-dir", "client", "client project directory")
	cmd.Flags().StringVar(&outDir, "out", filepath.Join("client", "public"), "served-assets output directory")
	return cmd
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
