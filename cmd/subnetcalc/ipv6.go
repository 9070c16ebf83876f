package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ccnalabs/subnetcalc"
)

var deriveCmd = &cobra.Command{
	Use:     "derive <cidr> <count>",
	Short:   "Derive sibling /64 blocks from a starting IPv6 subnet",
	Example: "  subnetcalc derive 2001:db8:acad:c8::/64 4",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		count, err := strconv.Atoi(args[1])
		if err != nil {
			log.WithError(err).Fatal("Invalid subnet count")
		}

		subnets, err := subnetcalc.DeriveSubnets(args[0], count)
		if err != nil {
			log.WithError(err).Fatal("Derivation failed")
		}
		if jsonOutput() {
			printJSON(subnets)
			return
		}
		for _, subnet := range subnets {
			fmt.Println(subnet)
		}
	},
}

var splitCmd = &cobra.Command{
	Use:     "split <cidr> <count>",
	Short:   "Halve an IPv6 subnet and list the resulting sub-blocks",
	Example: "  subnetcalc split 2001:db8::/64 2",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		count, err := strconv.Atoi(args[1])
		if err != nil {
			log.WithError(err).Fatal("Invalid subnet count")
		}

		subnets, err := subnetcalc.SplitSubnets(args[0], count)
		if err != nil {
			log.WithError(err).Fatal("Split failed")
		}
		if jsonOutput() {
			printJSON(subnets)
			return
		}
		for _, subnet := range subnets {
			fmt.Println(subnet)
		}
	},
}

func init() {
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(splitCmd)
}
