package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// sizingCmd recommends how many server processes to run on this host:
// one per CPU core, capped so each process keeps its memory ceiling.
func sizingCmd() *cobra.Command {
	var memoryCeilingMB int
	var totalMemoryMB int
	cmd := &cobra.Command{
		Use:   "sizing",
		Short: "recommend a process count for this host",
		RunE: func(cmd *cobra.Command, args []string) error {
			cpus := runtime.NumCPU()
			total := totalMemoryMB
			if total == 0 {
				total = detectTotalMemoryMB()
			}

			procs := cpus
			if total > 0 && memoryCeilingMB > 0 {
				byMemory := total / memoryCeilingMB
				if byMemory < procs {
					procs = byMemory
				}
			}
			if procs < 1 {
				procs = 1
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cpus: %d\n", cpus)
			if total > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "total memory: %d MB\n", total)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "total memory: unknown (pass --total-mb)")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "memory ceiling per process: %d MB\n", memoryCeilingMB)
			fmt.Fprintf(cmd.OutOrStdout(), "recommended processes: %d\n", procs)
			return nil
		},
	}
	cmd.Flags().IntVar(&memoryCeilingMB, "memory-mb", 300, "memory ceiling per process in MB")
	cmd.Flags().IntVar(&totalMemoryMB, "total-mb", 0, "total host memory in MB (detected from /proc/meminfo when omitted)")
	return cmd
}

func detectTotalMemoryMB() int {
	file, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0
		}
		return kb / 1024
	}
	return 0
}
