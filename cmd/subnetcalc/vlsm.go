package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ccnalabs/subnetcalc"
)

var vlsmCmd = &cobra.Command{
	Use:     "vlsm <parent-address> <prefix-length> <hosts>...",
	Short:   "Allocate variable-length subnets for the given host counts",
	Example: "  subnetcalc vlsm 192.168.1.0 24 50 20 10",
	Args:    cobra.MinimumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		prefix, err := strconv.Atoi(args[1])
		if err != nil {
			log.WithError(err).Fatal("Invalid prefix length")
		}
		hosts := make([]int, 0, len(args)-2)
		for _, arg := range args[2:] {
			h, err := strconv.Atoi(arg)
			if err != nil {
				log.WithError(err).Fatalf("Invalid host count %q", arg)
			}
			hosts = append(hosts, h)
		}

		allocs, err := subnetcalc.Allocate(args[0], prefix, hosts)
		if err != nil {
			log.WithError(err).Fatal("Allocation failed")
		}
		if jsonOutput() {
			printJSON(allocs)
			return
		}

		w := newTabWriter()
		fmt.Fprintln(w, "NETWORK\tFIRST HOST\tLAST HOST\tBROADCAST\tTOTAL\tUSABLE")
		for _, a := range allocs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
				a.CIDR, a.FirstHost, a.LastHost, a.Broadcast, a.TotalHosts, a.UsableHosts)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(vlsmCmd)
}
