package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ccnalabs/subnetcalc"
)

var borrowCmd = &cobra.Command{
	Use:     "borrow <base-address> <prefix-length>",
	Short:   "Sweep the subnetting options available by borrowing host bits",
	Example: "  subnetcalc borrow 192.168.100.0 24",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		prefix, err := strconv.Atoi(args[1])
		if err != nil {
			log.WithError(err).Fatal("Invalid prefix length")
		}

		rows, err := subnetcalc.EnumerateBorrowOptions(args[0], prefix)
		if err != nil {
			log.WithError(err).Fatal("Enumeration failed")
		}
		if jsonOutput() {
			printJSON(rows)
			return
		}

		w := newTabWriter()
		fmt.Fprintln(w, "BORROWED\tMASK\tSUBNETS\tUSABLE HOSTS")
		for _, row := range rows {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", row.BitsBorrowed, row.Mask, row.Subnets, row.UsableHosts)
		}
		w.Flush()
	},
}

var hostsCmd = &cobra.Command{
	Use:     "hosts <cidr>",
	Short:   "List every usable host address of an IPv4 subnet",
	Example: "  subnetcalc hosts 192.168.1.0/26",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hosts, err := subnetcalc.ExpandHosts(args[0])
		if err != nil {
			log.WithError(err).Fatal("Host expansion failed")
		}
		if jsonOutput() {
			printJSON(hosts)
			return
		}
		for _, host := range hosts {
			fmt.Println(host)
		}
	},
}

func init() {
	rootCmd.AddCommand(borrowCmd)
	rootCmd.AddCommand(hostsCmd)
}
